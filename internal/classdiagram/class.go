package classdiagram

import "strings"

// UMLClass is one class block of the diagram. Instances are keyed by their
// qualified name in the generator's class table; Name is the display name
// (qualified, or simple when simplify mode is active).
type UMLClass struct {
	Visibility  VisibilityType
	Type        ClassType
	Fields      []UMLField
	Methods     []UMLMethod
	Name        string
	Stereotypes []string
}

// AddField appends a field, preserving declaration order.
func (c *UMLClass) AddField(f UMLField) {
	c.Fields = append(c.Fields, f)
}

// AddMethod appends a method, preserving declaration order.
func (c *UMLClass) AddMethod(m UMLMethod) {
	c.Methods = append(c.Methods, m)
}

// DiagramText renders the full class block: header line with the class-type
// template, visibility glyph and display name, then one indented line per
// field and method.
func (c *UMLClass) DiagramText(simplify bool) string {
	var b strings.Builder

	b.WriteString(c.Type.template())
	b.WriteString(" ")
	b.WriteString(c.Visibility.Glyph())
	b.WriteString(c.Name)

	for _, s := range c.Stereotypes {
		b.WriteString(" <<")
		b.WriteString(s)
		b.WriteString(">>")
	}

	b.WriteString(" {\n")

	for _, f := range c.Fields {
		b.WriteString("\t")
		b.WriteString(f.DiagramText(simplify))
		b.WriteString("\n")
	}

	for _, m := range c.Methods {
		b.WriteString("\t")
		b.WriteString(m.DiagramText(simplify))
		b.WriteString("\n")
	}

	b.WriteString("}")

	return b.String()
}

// SimpleName returns the last dot-separated segment of a qualified name.
func SimpleName(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}

	return qualified
}
