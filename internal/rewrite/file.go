package rewrite

import (
	"go/ast"
	"go/token"
)

// File is one parsed source file flowing through the pipeline.
type File struct {
	// Path is the location the file was read from and will be written back to.
	Path string
	// Src is the raw file content the edit offsets refer to.
	Src []byte
	// AST is the parsed file.
	AST *ast.File
	// Fset is the fileset the AST positions belong to.
	Fset *token.FileSet
}

// Offset converts a token position into a byte offset into Src.
func (f *File) Offset(pos token.Pos) int {
	return f.Fset.Position(pos).Offset
}

// Text returns the source text between two token positions.
func (f *File) Text(start, end token.Pos) string {
	return string(f.Src[f.Offset(start):f.Offset(end)])
}
