package load

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"typelift/internal/common"
	"typelift/internal/resolve"
	"typelift/internal/rewrite"
)

// Mode specifies what information to load from packages.
const Mode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Unit is one loaded package: the files requested for rewriting plus the
// semantic resolver shared by all of them.
type Unit struct {
	Path     string // package import path
	Resolver *resolve.Resolver
	Files    []*rewrite.File
}

// Load resolves the path argument (file or directory) into loaded units.
// A missing path is an explicit error; processing starts only after the
// whole input set type-checks.
func Load(path string) ([]*Unit, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	var files []string

	if info.IsDir() {
		files, err = Discover(path)
		if err != nil {
			return nil, fmt.Errorf("discovering files under %q: %w", path, err)
		}
	} else {
		files = []string{path}
	}

	if common.IsEmpty(files) {
		return nil, nil
	}

	return loadFiles(files)
}

// loadFiles loads the packages containing the given files and pairs each
// requested file with its package's resolver.
func loadFiles(files []string) ([]*Unit, error) {
	requested := make(map[string]struct{}, len(files))
	queries := make([]string, 0, len(files))

	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("resolving path %q: %w", f, err)
		}

		requested[abs] = struct{}{}
		queries = append(queries, "file="+abs)
	}

	cfg := &packages.Config{Mode: Mode}

	pkgs, err := packages.Load(cfg, queries...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	var units []*Unit

	seen := make(map[string]struct{}, len(pkgs))

	for _, pkg := range pkgs {
		if _, dup := seen[pkg.ID]; dup {
			continue
		}
		seen[pkg.ID] = struct{}{}

		unit, err := buildUnit(pkg, requested)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		if unit != nil {
			units = append(units, unit)
		}
	}

	return units, nil
}

// buildUnit turns one loaded package into a Unit, keeping only the files the
// caller asked for. Returns nil when none of the package's files were
// requested.
func buildUnit(pkg *packages.Package, requested map[string]struct{}) (*Unit, error) {
	unit := &Unit{
		Path:     pkg.PkgPath,
		Resolver: resolve.New(pkg.Types, pkg.TypesInfo),
	}

	for _, astFile := range pkg.Syntax {
		name := pkg.Fset.Position(astFile.Package).Filename

		if _, ok := requested[name]; !ok {
			continue
		}

		src, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		unit.Files = append(unit.Files, &rewrite.File{
			Path: name,
			Src:  src,
			AST:  astFile,
			Fset: pkg.Fset,
		})
	}

	if common.IsEmpty(unit.Files) {
		return nil, nil
	}

	return unit, nil
}
