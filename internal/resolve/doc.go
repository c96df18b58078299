// Package resolve wraps go/types type information behind the read-only
// resolver the transformers consume.
//
// The resolver answers three kinds of questions:
//   - what type does an expression or a declared identifier have
//   - are two types semantically identical
//   - how is a type spelled at a given position (minimal, import-alias-aware
//     rendering versus the fully-qualified rendering)
//
// A question the type information cannot answer comes back as a nil type or
// a false ok; the transformers treat that as "no applicable transformation",
// never as an error.
package resolve
