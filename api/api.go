// Package api holds the controller base type that marks a struct as an
// HTTP-endpoint controller for the typelift rewriter.
//
// A struct that embeds Controller is picked up by the annotation-synthesis
// pass and receives baseline //typelift: directives plus per-method
// //typelift:produces directives inferred from its return statements.
package api

// Controller is the embeddable controller marker.
//
// The rewriter matches the marker by resolved type, not by source text, so
// aliased imports of this package are recognized as well.
type Controller struct{}
