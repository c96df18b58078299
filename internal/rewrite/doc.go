// Package rewrite provides the transformation pipeline for source files.
//
// Transformations are expressed as byte-span edits against the original file
// contents rather than as printed syntax trees, so every byte outside an
// edited span survives the rewrite untouched. A transformer that finds
// nothing to do returns zero edits and the file renders back byte-identical.
//
// Key types:
//   - File: one parsed source file (path, raw bytes, AST, fileset)
//   - Edit: a half-open byte span to replace
//   - Annotation: a //typelift: directive to attach to a declaration
//   - Transformer: visit a file, return zero or more edits
//   - Pipeline: applies transformers in fixed order and writes back changes
package rewrite
