// Package generator contains the diagram engine: the domain mapper that
// turns type descriptors into UML classes and relationships, the per-field
// relationship classifier, the member filter, and the serializer that
// renders the model as deterministic PlantUML text.
package generator

import (
	"regexp"

	"plantuml-generator/internal/classdiagram"
)

// Options is the compiled generation configuration. Patterns arrive here
// already compiled; building Options from raw user input (and failing on bad
// patterns) is the config package's job.
type Options struct {
	// HideClasses are emitted as "hide <name>" toggles in configuration
	// order. Hidden classes stay in the model.
	HideClasses []string
	HideFields  bool
	HideMethods bool

	// RemoveFields and RemoveMethods drop the whole member category from
	// the model before any other filtering.
	RemoveFields  bool
	RemoveMethods bool

	// FieldBlacklist and MethodBlacklist drop members whose name matches.
	// Config compiles these anchored, so patterns match whole names.
	FieldBlacklist  *regexp.Regexp
	MethodBlacklist *regexp.Regexp

	// ExcludedFieldClassifiers and ExcludedMethodClassifiers drop members
	// whose derived classifier is in the set.
	ExcludedFieldClassifiers  map[classdiagram.ClassifierType]bool
	ExcludedMethodClassifiers map[classdiagram.ClassifierType]bool

	// MaxFieldVisibility and MaxMethodVisibility are visibility ceilings.
	// nil admits every visibility, as does an explicit private ceiling.
	MaxFieldVisibility  *classdiagram.VisibilityType
	MaxMethodVisibility *classdiagram.VisibilityType

	// SimplifyNames switches display names to simple names and method
	// parameters to type-only rendering.
	SimplifyNames bool

	// Direction is a layout statement ("left to right direction" or "top to
	// bottom direction") rendered on its own line after the @startuml marker.
	Direction string
}

// visibilityOK applies a ceiling to a member visibility.
func visibilityOK(ceiling *classdiagram.VisibilityType, v classdiagram.VisibilityType) bool {
	if ceiling == nil {
		return true
	}

	return ceiling.Admits(v)
}
