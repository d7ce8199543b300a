package classdiagram

import "strings"

// UMLField is one attribute line of a class. Enum constants are modeled as
// fields with an empty type name and render without the ": type" suffix.
type UMLField struct {
	Classifier ClassifierType
	Visibility VisibilityType
	Name       string
	// Type is the rendered type name. Empty for enum-constant placeholders.
	Type string
}

// DiagramText renders the field as a single diagram line. Field type names
// are rendered in full even in simplify mode.
func (f UMLField) DiagramText(simplify bool) string {
	var b strings.Builder

	b.WriteString("{field} ")
	b.WriteString(f.Classifier.braces())
	b.WriteString(f.Visibility.Glyph())
	b.WriteString(f.Name)

	if f.Type != "" {
		b.WriteString(" : ")
		b.WriteString(f.Type)
	}

	return b.String()
}
