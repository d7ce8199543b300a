// Package gopkg resolves scope from Go packages via
// golang.org/x/tools/go/packages. Named types map onto descriptors: structs
// become classes, interfaces stay interfaces, named basic types with a
// package-level const block become enums. An embedded struct is reported as
// the superclass, embedded interfaces as implemented interfaces, and slice
// fields as single-argument containers.
package gopkg

import (
	"fmt"
	"regexp"

	"golang.org/x/tools/go/packages"

	"plantuml-generator/internal/descriptor"
	"plantuml-generator/internal/scope"
)

// loadMode mirrors what the descriptor mapping needs: type information plus
// syntax for deprecation markers in doc comments.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Resolver loads Go packages and maps their named types to descriptors.
type Resolver struct {
	// Dir is the working directory for package loading.
	Dir      string
	Criteria scope.Criteria
}

// New creates a Resolver rooted at dir.
func New(dir string, criteria scope.Criteria) *Resolver {
	return &Resolver{Dir: dir, Criteria: criteria}
}

// Resolve loads the configured roots (package patterns) and builds the
// descriptor set. With an include pattern, everything under ./... is
// discovered first and filtered by qualified name; with roots, each root
// pattern yielding zero types fails the whole call.
func (r *Resolver) Resolve() ([]*descriptor.Type, error) {
	if r.Criteria.IncludePattern != "" {
		include, err := scope.CompilePattern(r.Criteria.IncludePattern)
		if err != nil {
			return nil, err
		}

		all, err := r.load("./...")
		if err != nil {
			return nil, err
		}

		var kept []*descriptor.Type
		for _, t := range all {
			if include.MatchString(t.QualifiedName) {
				kept = append(kept, t)
			}
		}

		return dedupe(kept), nil
	}

	var exclude *regexp.Regexp
	if r.Criteria.ExcludePattern != "" {
		var err error
		if exclude, err = scope.CompilePattern(r.Criteria.ExcludePattern); err != nil {
			return nil, err
		}
	}

	var kept []*descriptor.Type

	for _, root := range r.Criteria.Roots {
		types, err := r.load(root)
		if err != nil {
			return nil, err
		}

		if len(types) == 0 {
			return nil, &scope.ResolutionError{Root: root}
		}

		for _, t := range types {
			if exclude != nil && exclude.MatchString(t.QualifiedName) {
				continue
			}

			kept = append(kept, t)
		}
	}

	return dedupe(kept), nil
}

// load resolves one package pattern into descriptors.
func (r *Resolver) load(pattern string) ([]*descriptor.Type, error) {
	cfg := &packages.Config{Mode: loadMode, Dir: r.Dir}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, &scope.SourceReadError{Path: pattern, Err: err}
	}

	var types []*descriptor.Type

	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, &scope.SourceReadError{
				Path: pattern,
				Err:  fmt.Errorf("package %s: %v", pkg.PkgPath, pkg.Errors[0]),
			}
		}

		types = append(types, buildPackage(pkg)...)
	}

	return types, nil
}

func dedupe(types []*descriptor.Type) []*descriptor.Type {
	seen := make(map[string]bool, len(types))
	out := types[:0]

	for _, t := range types {
		if seen[t.QualifiedName] {
			continue
		}

		seen[t.QualifiedName] = true
		out = append(out, t)
	}

	return out
}
