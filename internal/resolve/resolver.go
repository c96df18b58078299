package resolve

import (
	"go/ast"
	"go/types"
	"strconv"
)

// Resolver maps syntax to symbol and type information for one package.
type Resolver struct {
	pkg  *types.Package
	info *types.Info
}

// New creates a Resolver over a type-checked package.
func New(pkg *types.Package, info *types.Info) *Resolver {
	return &Resolver{pkg: pkg, info: info}
}

// Package returns the package the resolver belongs to.
func (r *Resolver) Package() *types.Package {
	return r.pkg
}

// TypeOf returns the direct type of an expression, or nil if unknown.
func (r *Resolver) TypeOf(e ast.Expr) types.Type {
	return r.info.TypeOf(e)
}

// ConvertedTypeOf returns the type of an expression after untyped-constant
// defaulting: an untyped initializer like 5 resolves to int. Returns nil if
// the expression has no type.
func (r *Resolver) ConvertedTypeOf(e ast.Expr) types.Type {
	t := r.info.TypeOf(e)
	if t == nil {
		return nil
	}

	if b, ok := t.(*types.Basic); ok && b.Info()&types.IsUntyped != 0 {
		return types.Default(t)
	}

	return t
}

// DefinedType returns the type of the object an identifier declares,
// or nil if the identifier declares nothing.
func (r *Resolver) DefinedType(id *ast.Ident) types.Type {
	obj := r.info.Defs[id]
	if obj == nil {
		return nil
	}

	return obj.Type()
}

// Identical reports semantic type equality. Nil types never match.
func (r *Resolver) Identical(a, b types.Type) bool {
	if a == nil || b == nil {
		return false
	}

	return types.Identical(a, b)
}

// IsConversion reports whether a call expression is a type conversion.
func (r *Resolver) IsConversion(call *ast.CallExpr) bool {
	tv, ok := r.info.Types[call.Fun]
	return ok && tv.IsType()
}

// ElementType returns the element type of a container: the first type
// argument of a generic named instance, or the element of a slice or array.
func (r *Resolver) ElementType(t types.Type) (types.Type, bool) {
	if t == nil {
		return nil, false
	}

	if named, ok := t.(*types.Named); ok && named.TypeArgs().Len() > 0 {
		return named.TypeArgs().At(0), true
	}

	switch u := t.Underlying().(type) {
	case *types.Slice:
		return u.Elem(), true
	case *types.Array:
		return u.Elem(), true
	default:
		return nil, false
	}
}

// IsSliceOf reports whether t's underlying type is a slice of elem.
func (r *Resolver) IsSliceOf(t, elem types.Type) bool {
	if t == nil || elem == nil {
		return false
	}

	s, ok := t.Underlying().(*types.Slice)

	return ok && types.Identical(s.Elem(), elem)
}

// SimpleName returns the bare name of a named or basic type.
func (r *Resolver) SimpleName(t types.Type) (string, bool) {
	switch tt := t.(type) {
	case *types.Named:
		return tt.Obj().Name(), true
	case *types.Alias:
		return tt.Obj().Name(), true
	case *types.Basic:
		return tt.Name(), true
	default:
		return "", false
	}
}

// DisplayName renders a type with full package paths, e.g.
// "typelift/api.Controller". Used for marker comparisons, not for source text.
func (r *Resolver) DisplayName(t types.Type) string {
	return types.TypeString(t, nil)
}

// MinimalName renders a type the shortest way the file can legally spell it:
// types of the current package are unqualified, imported packages use their
// in-scope name (honoring aliases and dot imports). Reports false when some
// referenced package is not importable from the file.
func (r *Resolver) MinimalName(t types.Type, file *ast.File) (string, bool) {
	ok := true
	name := types.TypeString(t, func(p *types.Package) string {
		if p == r.pkg {
			return ""
		}

		local, found := importedName(file, p)
		if !found {
			ok = false
			return p.Name()
		}

		return local
	})

	return name, ok
}

// QualifiedName renders a type in its fully-qualified source form: always
// package-qualified for foreign packages (dot imports are rejected), bare for
// the current package. Reports false when the rendering would not compile.
func (r *Resolver) QualifiedName(t types.Type, file *ast.File) (string, bool) {
	ok := true
	name := types.TypeString(t, func(p *types.Package) string {
		if p == r.pkg {
			return ""
		}

		local, found := importedName(file, p)
		if !found || local == "" {
			ok = false
		}
		if local == "" {
			return p.Name()
		}

		return local
	})

	return name, ok
}

// importedName returns the name package p is bound to in the file's import
// block: the alias when one is given, "" for a dot import, and the package's
// own name otherwise.
func importedName(file *ast.File, p *types.Package) (string, bool) {
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != p.Path() {
			continue
		}

		if imp.Name == nil {
			return p.Name(), true
		}

		switch imp.Name.Name {
		case ".":
			return "", true
		case "_":
			continue
		default:
			return imp.Name.Name, true
		}
	}

	return "", false
}
