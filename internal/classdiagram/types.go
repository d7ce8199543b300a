// Package classdiagram holds the abstract UML class-diagram model and the
// per-element PlantUML rendering.
//
// The model is deliberately dumb: every element knows how to render itself as
// one diagram text fragment, and nothing else. Relationship inference,
// filtering and document assembly live in internal/generator.
package classdiagram

import "fmt"

// VisibilityType is the UML visibility of a class, field or method,
// ordered loosest to strictest.
type VisibilityType int

const (
	VisibilityPublic VisibilityType = iota
	VisibilityProtected
	VisibilityPackagePrivate
	VisibilityPrivate
)

// Glyph returns the PlantUML visibility marker.
func (v VisibilityType) Glyph() string {
	switch v {
	case VisibilityPublic:
		return "+"
	case VisibilityProtected:
		return "#"
	case VisibilityPackagePrivate:
		return "~"
	case VisibilityPrivate:
		return "-"
	default:
		return ""
	}
}

// String returns the configuration-facing name of the visibility.
func (v VisibilityType) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityProtected:
		return "protected"
	case VisibilityPackagePrivate:
		return "package_private"
	case VisibilityPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// ParseVisibility parses a configuration-facing visibility name.
func ParseVisibility(s string) (VisibilityType, error) {
	switch s {
	case "public":
		return VisibilityPublic, nil
	case "protected":
		return VisibilityProtected, nil
	case "package_private":
		return VisibilityPackagePrivate, nil
	case "private":
		return VisibilityPrivate, nil
	default:
		return 0, fmt.Errorf("unknown visibility %q", s)
	}
}

// Admits reports whether a member with the given visibility passes this
// visibility ceiling. A ceiling admits only visibilities at or looser than
// itself; VisibilityPrivate admits everything.
func (v VisibilityType) Admits(member VisibilityType) bool {
	return member <= v
}

// ClassifierType is the static/abstract modifier combination of a member,
// distinct from visibility.
type ClassifierType int

const (
	ClassifierNone ClassifierType = iota
	ClassifierStatic
	ClassifierAbstract
	ClassifierAbstractStatic
)

// String returns the configuration-facing name of the classifier.
func (c ClassifierType) String() string {
	switch c {
	case ClassifierNone:
		return "none"
	case ClassifierStatic:
		return "static"
	case ClassifierAbstract:
		return "abstract"
	case ClassifierAbstractStatic:
		return "abstract_static"
	default:
		return "unknown"
	}
}

// ParseClassifier parses a configuration-facing classifier name.
func ParseClassifier(s string) (ClassifierType, error) {
	switch s {
	case "none":
		return ClassifierNone, nil
	case "static":
		return ClassifierStatic, nil
	case "abstract":
		return ClassifierAbstract, nil
	case "abstract_static":
		return ClassifierAbstractStatic, nil
	default:
		return 0, fmt.Errorf("unknown classifier %q", s)
	}
}

// braces returns the brace block rendered between the member prefix and the
// visibility glyph. The spacing is uneven on purpose: it reproduces the
// byte-level output of the reference diagrams.
func (c ClassifierType) braces() string {
	switch c {
	case ClassifierAbstractStatic:
		return " {static} {abstract}"
	case ClassifierAbstract:
		return " {abstract} "
	case ClassifierStatic:
		return " {static} "
	default:
		return ""
	}
}

// ClassType distinguishes the five supported kinds of diagram classes.
type ClassType int

const (
	ClassTypeClass ClassType = iota
	ClassTypeAbstractClass
	ClassTypeInterface
	ClassTypeEnum
	ClassTypeAnnotation
)

// template returns the PlantUML class declaration keyword(s).
func (t ClassType) template() string {
	switch t {
	case ClassTypeAbstractClass:
		return "abstract class"
	case ClassTypeInterface:
		return "interface"
	case ClassTypeEnum:
		return "enum"
	case ClassTypeAnnotation:
		return "annotation"
	default:
		return "class"
	}
}

// RelationshipType is the kind of a relationship between two classes.
type RelationshipType int

const (
	RelationshipInheritance RelationshipType = iota
	RelationshipRealization
	RelationshipAggregation
	RelationshipDirectedAssociation
	RelationshipAssociation
)

// arrow returns the PlantUML connector for this relationship kind. The
// source is always rendered on the left.
func (r RelationshipType) arrow() string {
	switch r {
	case RelationshipInheritance:
		return "--|>"
	case RelationshipRealization:
		return "..|>"
	case RelationshipAggregation:
		return "o--"
	case RelationshipDirectedAssociation:
		return "-->"
	default:
		return "--"
	}
}
