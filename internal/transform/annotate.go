package transform

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"typelift/internal/common"
	"typelift/internal/resolve"
	"typelift/internal/rewrite"
	"typelift/result"
)

// DefaultControllerMarker is the resolved display name of the embeddable
// base type that marks a struct as a controller.
const DefaultControllerMarker = "typelift/api.Controller"

// Annotate synthesizes //typelift: directives on controller structs and
// their methods.
type Annotate struct {
	res    *resolve.Resolver
	marker string
}

// NewAnnotate creates the annotation-synthesis pass. An empty marker selects
// DefaultControllerMarker.
func NewAnnotate(res *resolve.Resolver, marker string) *Annotate {
	if marker == "" {
		marker = DefaultControllerMarker
	}

	return &Annotate{res: res, marker: marker}
}

// Name implements rewrite.Transformer.
func (t *Annotate) Name() string { return "annotate" }

// Rewrite implements rewrite.Transformer.
func (t *Annotate) Rewrite(f *rewrite.File) ([]rewrite.Edit, error) {
	var edits []rewrite.Edit

	for _, decl := range f.AST.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if e, ok := t.typeDecl(f, d); ok {
				edits = append(edits, e)
			}

		case *ast.FuncDecl:
			if e, ok := t.methodDecl(f, d); ok {
				edits = append(edits, e)
			}
		}
	}

	return edits, nil
}

// baseline returns the directive set every controller receives.
func baseline() []rewrite.Annotation {
	return []rewrite.Annotation{
		rewrite.NewAnnotation("authorize", ""),
		rewrite.NewAnnotation("apicontroller", ""),
		rewrite.NewAnnotation("route", `("api/[controller]")`),
	}
}

// typeDecl appends the baseline directives to a controller struct
// declaration. Grouped type blocks are not considered.
func (t *Annotate) typeDecl(f *rewrite.File, d *ast.GenDecl) (rewrite.Edit, bool) {
	if d.Tok != token.TYPE || !common.IsSingle(d.Specs) {
		return rewrite.Edit{}, false
	}

	spec, ok := d.Specs[0].(*ast.TypeSpec)
	if !ok || !t.isController(spec) {
		return rewrite.Edit{}, false
	}

	existing := append(rewrite.Directives(d.Doc), rewrite.Directives(spec.Doc)...)

	var lines []string

	for _, a := range baseline() {
		line := a.Render()

		// A candidate is appended only when no existing directive line
		// differs from it, so any unrelated directive suppresses the whole
		// baseline while an exactly matching one is duplicated.
		// TODO: revisit this presence test once the intended dedup semantics
		// are settled; see DESIGN.md.
		conflicting := slices.ContainsFunc(existing, func(e string) bool {
			return e != line
		})
		if !conflicting {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return rewrite.Edit{}, false
	}

	return rewrite.Insert(f.Offset(d.Pos()), strings.Join(lines, "\n")+"\n"), true
}

// isController reports whether the type spec declares a struct embedding the
// controller marker. The marker is matched by resolved type, so aliased
// imports and pointer embedding both count.
func (t *Annotate) isController(spec *ast.TypeSpec) bool {
	st, ok := spec.Type.(*ast.StructType)
	if !ok || st.Fields == nil {
		return false
	}

	for _, field := range st.Fields.List {
		if len(field.Names) > 0 {
			continue // embedded fields only
		}

		ft := t.res.TypeOf(field.Type)
		if ft == nil {
			continue
		}

		if p, ok := ft.(*types.Pointer); ok {
			ft = p.Elem()
		}

		if t.res.DisplayName(ft) == t.marker {
			return true
		}
	}

	return false
}

// methodDecl appends one produces directive per distinct result kind the
// method body can return.
func (t *Annotate) methodDecl(f *rewrite.File, d *ast.FuncDecl) (rewrite.Edit, bool) {
	if d.Recv == nil {
		return rewrite.Edit{}, false
	}

	kinds := t.collectKinds(d.Body)
	if len(kinds) == 0 {
		return rewrite.Edit{}, false
	}

	existing := rewrite.Directives(d.Doc)

	var lines []string

	for _, k := range kinds {
		line := k.Annotation().Render()
		if slices.Contains(existing, line) || slices.Contains(lines, line) {
			continue
		}

		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return rewrite.Edit{}, false
	}

	return rewrite.Insert(f.Offset(d.Pos()), strings.Join(lines, "\n")+"\n"), true
}

// collectKinds walks a method body and accumulates the result kinds its
// return statements can produce, in encounter order, deduplicated by kind.
// Function literals are not entered: a return inside a closure is not a
// result of the method.
func (t *Annotate) collectKinds(body *ast.BlockStmt) []result.Kind {
	if body == nil {
		return nil
	}

	var kinds []result.Kind

	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			return false

		case *ast.ReturnStmt:
			kinds = t.visitReturn(n, kinds)
		}

		return true
	})

	return kinds
}

// visitReturn classifies the first returned expression and extends the
// accumulator with any resolved result kind.
func (t *Annotate) visitReturn(ret *ast.ReturnStmt, acc []result.Kind) []result.Kind {
	expr, ok := common.First(ret.Results)
	if !ok {
		return acc
	}

	return t.classify(expr, acc)
}

// classify recognizes the return-expression shapes that map to result kinds:
// a composite literal (optionally behind &), and a call of a bare
// unqualified identifier, where the candidate name is the identifier text
// plus "Object" when the call carries arguments, plus "Result".
func (t *Annotate) classify(expr ast.Expr, acc []result.Kind) []result.Kind {
	switch e := expr.(type) {
	case *ast.ParenExpr:
		return t.classify(e.X, acc)

	case *ast.UnaryExpr:
		if e.Op == token.AND {
			return t.classify(e.X, acc)
		}

	case *ast.CompositeLit:
		if name, ok := literalTypeName(e.Type); ok {
			return addKind(acc, name)
		}

	case *ast.CallExpr:
		id, ok := e.Fun.(*ast.Ident)
		if !ok {
			return acc
		}

		suffix := ""
		if len(e.Args) > 0 {
			suffix = "Object"
		}

		return addKind(acc, strings.TrimSpace(id.Name+suffix+"Result"))
	}

	return acc
}

// literalTypeName returns the rightmost identifier of a composite literal's
// type expression.
func literalTypeName(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name, true
	case *ast.SelectorExpr:
		return e.Sel.Name, true
	case *ast.IndexExpr:
		return literalTypeName(e.X)
	default:
		return "", false
	}
}

// addKind resolves a candidate name through the catalog and appends the
// match, deduplicating by kind identity rather than by name.
func addKind(acc []result.Kind, name string) []result.Kind {
	k, ok := result.ResolveName(name)
	if !ok || slices.Contains(acc, k) {
		return acc
	}

	return append(acc, k)
}
