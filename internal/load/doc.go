// Package load is the compilation host: it discovers source files, loads
// their packages with full syntax and type information via
// golang.org/x/tools/go/packages, and hands the pipeline one parsed file per
// requested source plus one semantic resolver per package.
package load
