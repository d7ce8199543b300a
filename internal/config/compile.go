package config

import (
	"fmt"
	"regexp"

	"plantuml-generator/internal/classdiagram"
	"plantuml-generator/internal/generator"
	"plantuml-generator/internal/scope"
)

// Compile turns the raw configuration into engine options. Blacklist
// patterns are compiled here and an invalid pattern fails the whole call
// with a *scope.PatternError; classifier and visibility names are parsed
// into their enum values.
func (c *Config) Compile() (generator.Options, error) {
	opts := generator.Options{
		HideClasses:   c.HideClasses,
		HideFields:    c.HideFields,
		HideMethods:   c.HideMethods,
		RemoveFields:  c.RemoveFields,
		RemoveMethods: c.RemoveMethods,
		SimplifyNames: c.SimplifyNames,
		Direction:     c.Direction,
	}

	var err error

	if opts.FieldBlacklist, err = compilePattern(c.FieldBlacklist); err != nil {
		return generator.Options{}, err
	}

	if opts.MethodBlacklist, err = compilePattern(c.MethodBlacklist); err != nil {
		return generator.Options{}, err
	}

	if opts.ExcludedFieldClassifiers, err = classifierSet(c.ExcludedFieldClassifiers); err != nil {
		return generator.Options{}, fmt.Errorf("excluded_field_classifiers: %w", err)
	}

	if opts.ExcludedMethodClassifiers, err = classifierSet(c.ExcludedMethodClassifiers); err != nil {
		return generator.Options{}, fmt.Errorf("excluded_method_classifiers: %w", err)
	}

	if opts.MaxFieldVisibility, err = visibilityCeiling(c.MaxFieldVisibility); err != nil {
		return generator.Options{}, fmt.Errorf("max_field_visibility: %w", err)
	}

	if opts.MaxMethodVisibility, err = visibilityCeiling(c.MaxMethodVisibility); err != nil {
		return generator.Options{}, fmt.Errorf("max_method_visibility: %w", err)
	}

	return opts, nil
}

func compilePattern(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}

	return scope.CompilePattern(expr)
}

func classifierSet(names []string) (map[classdiagram.ClassifierType]bool, error) {
	if len(names) == 0 {
		return nil, nil
	}

	set := make(map[classdiagram.ClassifierType]bool, len(names))

	for _, name := range names {
		ct, err := classdiagram.ParseClassifier(name)
		if err != nil {
			return nil, err
		}

		set[ct] = true
	}

	return set, nil
}

func visibilityCeiling(name string) (*classdiagram.VisibilityType, error) {
	if name == "" {
		return nil, nil
	}

	v, err := classdiagram.ParseVisibility(name)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
