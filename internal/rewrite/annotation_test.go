package rewrite

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotation_Render(t *testing.T) {
	assert.Equal(t, "//typelift:authorize", NewAnnotation("authorize", "").Render())
	assert.Equal(t,
		`//typelift:produces (typeof(OkObjectResult), 200)`,
		NewAnnotation("produces", "(typeof(OkObjectResult), 200)").Render())
}

func TestNewAnnotation_TrimsArgs(t *testing.T) {
	a := NewAnnotation("route", "  (\"api/[controller]\")  ")
	assert.Equal(t, `//typelift:route ("api/[controller]")`, a.Render())
}

func TestDirectives(t *testing.T) {
	doc := &ast.CommentGroup{List: []*ast.Comment{
		{Text: "// WidgetController serves widgets."},
		{Text: "//typelift:authorize"},
		{Text: "//typelift:route (\"api/[controller]\")"},
		{Text: "// trailing prose"},
	}}

	lines := Directives(doc)
	assert.Equal(t, []string{
		"//typelift:authorize",
		`//typelift:route ("api/[controller]")`,
	}, lines)
}

func TestDirectives_NilGroup(t *testing.T) {
	assert.Empty(t, Directives(nil))
}
