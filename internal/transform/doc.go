// Package transform implements the two rewrite passes:
//
//   - VarType makes inferred-type variable declarations explicit. Plain
//     `var x = expr` declarations get the resolved type inserted, `for`-loop
//     init declarations get an explicit conversion around the initializer,
//     and `range` loops over member accesses get the element type spelled
//     out as a slice conversion.
//
//   - Annotate attaches //typelift: directives to controller structs (the
//     baseline authorize/apicontroller/route set) and to their methods (one
//     produces directive per distinct result kind the method can return).
//
// Both passes are driven purely by the semantic resolver; any node the
// resolver cannot account for is left alone.
package transform
