package classdiagram

import "strings"

// UMLRelationship is one directed relationship line. Source and Target are
// qualified names; direction is fixed at construction time and never
// re-derived during rendering.
type UMLRelationship struct {
	// FromMultiplicity and ToMultiplicity label the source and target ends
	// (aggregations carry "1" and "0..*"). Empty labels are omitted.
	FromMultiplicity string
	ToMultiplicity   string
	// Role is the owning field name for field-derived relationships.
	Role   string
	Source string
	Target string
	Kind   RelationshipType
}

// DiagramText renders the relationship with the source on the left. In
// simplify mode the endpoint names are shortened the same way class display
// names are; the arrow itself never changes.
func (r UMLRelationship) DiagramText(simplify bool) string {
	source, target := r.Source, r.Target
	if simplify {
		source, target = SimpleName(source), SimpleName(target)
	}

	var b strings.Builder

	b.WriteString(source)
	b.WriteString(" ")

	if r.FromMultiplicity != "" {
		b.WriteString("\"")
		b.WriteString(r.FromMultiplicity)
		b.WriteString("\" ")
	}

	b.WriteString(r.Kind.arrow())
	b.WriteString(" ")

	if r.ToMultiplicity != "" {
		b.WriteString("\"")
		b.WriteString(r.ToMultiplicity)
		b.WriteString("\" ")
	}

	b.WriteString(target)

	if r.Role != "" {
		b.WriteString(" : ")
		b.WriteString(r.Role)
	}

	return b.String()
}
