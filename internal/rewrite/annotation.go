package rewrite

import (
	"go/ast"
	"strings"
)

// DirectivePrefix marks comment lines owned by the rewriter.
const DirectivePrefix = "//typelift:"

// Annotation is a named, optionally-parameterized directive attached to a
// declaration. Two annotations are the same annotation when their trimmed
// rendered lines are identical.
type Annotation struct {
	Name string
	Args string
}

// NewAnnotation builds an annotation from a directive name and raw argument
// text. The argument text is carried verbatim, unparsed.
func NewAnnotation(name, args string) Annotation {
	return Annotation{Name: name, Args: strings.TrimSpace(args)}
}

// Render returns the directive comment line for the annotation.
func (a Annotation) Render() string {
	if a.Args == "" {
		return DirectivePrefix + a.Name
	}

	return DirectivePrefix + a.Name + " " + a.Args
}

// Directives returns the trimmed //typelift: lines of a doc comment group.
// A nil group yields no lines.
func Directives(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}

	var lines []string
	for _, c := range doc.List {
		text := strings.TrimSpace(c.Text)
		if strings.HasPrefix(text, DirectivePrefix) {
			lines = append(lines, text)
		}
	}

	return lines
}
