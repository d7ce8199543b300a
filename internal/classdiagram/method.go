package classdiagram

import "strings"

// Parameter is one method parameter. Names are synthetic (derived from the
// parameter type and its position), so rendering order must follow
// declaration order exactly.
type Parameter struct {
	Name string
	Type string
}

// UMLMethod is one operation line of a class.
type UMLMethod struct {
	Classifier ClassifierType
	Visibility VisibilityType
	// ReturnType is the rendered result type. Empty means the method has no
	// declared result and the ": type" suffix is omitted.
	ReturnType string
	Name       string
	Parameters []Parameter
	// Stereotypes are rendered as trailing <<tag>> markers in declaration order.
	Stereotypes []string
}

// DiagramText renders the method as a single diagram line. In simplify mode
// parameters are rendered type-only; otherwise as "name : type". The
// spacing inside the parameter list reproduces the reference output
// byte-for-byte.
func (m UMLMethod) DiagramText(simplify bool) string {
	var b strings.Builder

	b.WriteString("{method} ")
	b.WriteString(m.Classifier.braces())
	b.WriteString(m.Visibility.Glyph())
	b.WriteString(m.Name)
	b.WriteString(" (")

	for i, p := range m.Parameters {
		if i > 0 {
			b.WriteString(",")
		}

		b.WriteString(" ")

		if !simplify {
			b.WriteString(p.Name)
			b.WriteString(" : ")
		}

		b.WriteString(p.Type)
		b.WriteString(" ")
	}

	b.WriteString(")")

	if m.ReturnType != "" {
		b.WriteString(" : ")
		b.WriteString(m.ReturnType)
	}

	for _, s := range m.Stereotypes {
		b.WriteString(" <<")
		b.WriteString(s)
		b.WriteString(">> ")
	}

	return b.String()
}
