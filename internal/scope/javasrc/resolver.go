// Package javasrc resolves scope by parsing Java source trees with
// tree-sitter. Each .java file under the source path is parsed once; the
// top-level type declarations become descriptors, and type references are
// resolved against the file's import table, the file's own package, and the
// set of all discovered types, in that order.
package javasrc

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"plantuml-generator/internal/descriptor"
	"plantuml-generator/internal/scope"
)

// Resolver scans a Java source tree.
type Resolver struct {
	// SourcePath is the directory walked for .java files.
	SourcePath string
	// Criteria selects types: either an include pattern over all discovered
	// qualified names, or package roots with an optional exclude pattern.
	Criteria scope.Criteria
}

// New creates a Resolver for the given source path and selection criteria.
func New(sourcePath string, criteria scope.Criteria) *Resolver {
	return &Resolver{SourcePath: sourcePath, Criteria: criteria}
}

// Resolve parses the source tree and returns the deduplicated, selected
// descriptor set. A scope root matching zero parsed types fails the whole
// call with a *scope.ResolutionError.
func (r *Resolver) Resolve() ([]*descriptor.Type, error) {
	units, err := r.parseTree()
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool)
	for _, u := range units {
		for _, rt := range u.types {
			known[u.qualify(rt.name)] = true
		}
	}

	var all []*descriptor.Type
	for _, u := range units {
		all = append(all, u.build(known)...)
	}

	selected, err := r.selectTypes(all)
	if err != nil {
		return nil, err
	}

	return dedupe(selected), nil
}

// parseTree walks the source path and parses every .java file.
func (r *Resolver) parseTree() ([]*fileUnit, error) {
	var units []*fileUnit

	err := filepath.WalkDir(r.SourcePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &scope.SourceReadError{Path: path, Err: err}
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), ".java") {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return &scope.SourceReadError{Path: path, Err: err}
		}

		units = append(units, parseFile(src))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return units, nil
}

// selectTypes applies the configured selection strategy.
func (r *Resolver) selectTypes(all []*descriptor.Type) ([]*descriptor.Type, error) {
	if r.Criteria.IncludePattern != "" {
		include, err := scope.CompilePattern(r.Criteria.IncludePattern)
		if err != nil {
			return nil, err
		}

		var kept []*descriptor.Type
		for _, t := range all {
			if include.MatchString(t.QualifiedName) {
				kept = append(kept, t)
			}
		}

		return kept, nil
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
		matched := 0

		for _, t := range all {
			if packageOf(t.QualifiedName) != root {
				continue
			}

			matched++

			if exclude != nil && exclude.MatchString(t.QualifiedName) {
				continue
			}

			kept = append(kept, t)
		}

		if matched == 0 {
			return nil, &scope.ResolutionError{Root: root}
		}
	}

	return kept, nil
}

func packageOf(qualifiedName string) string {
	if i := strings.LastIndex(qualifiedName, "."); i >= 0 {
		return qualifiedName[:i]
	}

	return ""
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
