package transform

import (
	"go/ast"
	"go/token"
	"go/types"

	"typelift/internal/common"
	"typelift/internal/resolve"
	"typelift/internal/rewrite"
)

// VarType rewrites inferred-type declarations into their explicit form.
type VarType struct {
	res *resolve.Resolver
}

// NewVarType creates the type-substitution pass.
func NewVarType(res *resolve.Resolver) *VarType {
	return &VarType{res: res}
}

// Name implements rewrite.Transformer.
func (t *VarType) Name() string { return "vartype" }

// Rewrite implements rewrite.Transformer.
func (t *VarType) Rewrite(f *rewrite.File) ([]rewrite.Edit, error) {
	var edits []rewrite.Edit

	ast.Inspect(f.AST, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.DeclStmt:
			if e, ok := t.localDecl(f, n); ok {
				edits = append(edits, e)
			}

		case *ast.ForStmt:
			if e, ok := t.forInit(f, n); ok {
				edits = append(edits, e)
			}

		case *ast.RangeStmt:
			edits = append(edits, t.rangeLoop(f, n)...)
			// The range case owns its body: only top-level declarations of
			// the block are substituted, nested blocks are not revisited.
			return false
		}

		return true
	})

	return edits, nil
}

// localDecl handles `var x = expr` inside a function body. The declaration
// is substituted only when it declares exactly one variable with an
// initializer and no explicit type, and the declared type agrees with the
// initializer's type after untyped-constant defaulting.
func (t *VarType) localDecl(f *rewrite.File, stmt *ast.DeclStmt) (rewrite.Edit, bool) {
	gen, ok := stmt.Decl.(*ast.GenDecl)
	if !ok || gen.Tok != token.VAR || !common.IsSingle(gen.Specs) {
		return rewrite.Edit{}, false
	}

	spec, ok := gen.Specs[0].(*ast.ValueSpec)
	if !ok || common.IsMultiple(spec.Names) || spec.Type != nil || !common.IsSingle(spec.Values) {
		return rewrite.Edit{}, false
	}

	name := spec.Names[0]

	declared := t.res.DefinedType(name)
	initType := t.res.ConvertedTypeOf(spec.Values[0])
	if !t.res.Identical(declared, initType) {
		return rewrite.Edit{}, false
	}

	rendered, ok := t.res.MinimalName(declared, f.AST)
	if !ok {
		return rewrite.Edit{}, false
	}

	return rewrite.Insert(f.Offset(name.End()), " "+rendered), true
}

// forInit handles `for i := expr; ...`. Go cannot spell a type in the init
// position, so the explicit form wraps the initializer in a conversion using
// the qualified type name. The comparison uses the initializer's direct type
// with no untyped defaulting, so `for i := 0` stays as it is.
func (t *VarType) forInit(f *rewrite.File, loop *ast.ForStmt) (rewrite.Edit, bool) {
	assign, ok := loop.Init.(*ast.AssignStmt)
	if !ok || assign.Tok != token.DEFINE {
		return rewrite.Edit{}, false
	}
	if !common.IsSingle(assign.Lhs) || !common.IsSingle(assign.Rhs) {
		return rewrite.Edit{}, false
	}

	name, ok := assign.Lhs[0].(*ast.Ident)
	if !ok {
		return rewrite.Edit{}, false
	}

	rhs := assign.Rhs[0]
	if call, ok := rhs.(*ast.CallExpr); ok && t.res.IsConversion(call) {
		return rewrite.Edit{}, false
	}

	declared := t.res.DefinedType(name)
	if !convertible(declared) {
		return rewrite.Edit{}, false
	}
	if !t.res.Identical(declared, t.res.TypeOf(rhs)) {
		return rewrite.Edit{}, false
	}

	rendered, ok := t.res.QualifiedName(declared, f.AST)
	if !ok {
		return rewrite.Edit{}, false
	}

	start, end := f.Offset(rhs.Pos()), f.Offset(rhs.End())

	return rewrite.Replace(start, end, rendered+"("+f.Text(rhs.Pos(), rhs.End())+")"), true
}

// convertible reports whether a type can appear as an unparenthesized
// conversion operand: named, alias, or basic types only.
func convertible(t types.Type) bool {
	switch t.(type) {
	case *types.Named, *types.Alias, *types.Basic:
		return true
	default:
		return false
	}
}

// rangeLoop handles `for k, v := range x.Member`. Only member-access range
// operands are considered; the element type is spelled out by wrapping the
// operand in a slice conversion, and the top-level statements of the loop
// body get the localDecl substitution re-applied.
func (t *VarType) rangeLoop(f *rewrite.File, loop *ast.RangeStmt) []rewrite.Edit {
	sel, ok := loop.X.(*ast.SelectorExpr)
	if !ok {
		return nil
	}

	var edits []rewrite.Edit

	if loop.Tok == token.DEFINE {
		if e, ok := t.rangeOperand(f, sel); ok {
			edits = append(edits, e)
		}
	}

	if loop.Body != nil {
		for _, stmt := range loop.Body.List {
			ds, ok := stmt.(*ast.DeclStmt)
			if !ok {
				continue
			}

			if e, ok := t.localDecl(f, ds); ok {
				edits = append(edits, e)
			}
		}
	}

	return edits
}

// rangeOperand wraps the range operand in a conversion naming the element
// type. The element type must be spellable by its bare name at this position
// and the operand's underlying type must be a slice of it.
func (t *VarType) rangeOperand(f *rewrite.File, sel *ast.SelectorExpr) (rewrite.Edit, bool) {
	container := t.res.TypeOf(sel)

	elem, ok := t.res.ElementType(container)
	if !ok {
		return rewrite.Edit{}, false
	}

	simple, ok := t.res.SimpleName(elem)
	if !ok {
		return rewrite.Edit{}, false
	}

	minimal, ok := t.res.MinimalName(elem, f.AST)
	if !ok || minimal != simple {
		return rewrite.Edit{}, false
	}

	if !t.res.IsSliceOf(container, elem) {
		return rewrite.Edit{}, false
	}

	start, end := f.Offset(sel.Pos()), f.Offset(sel.End())

	return rewrite.Replace(start, end, "[]"+simple+"("+f.Text(sel.Pos(), sel.End())+")"), true
}
