package generator

import (
	"sort"
	"strings"

	"plantuml-generator/internal/classdiagram"
)

// serialize renders the accumulated model as one PlantUML document. The
// blank-line framing reproduces the reference output byte-for-byte, so the
// exact WriteString sequence matters.
func (ctx *buildContext) serialize() string {
	order := ctx.classOrder()
	relationships := ctx.collectRelationships(order)

	var b strings.Builder

	b.WriteString("@startuml")

	if ctx.opts.Direction != "" {
		b.WriteString("\n")
		b.WriteString(ctx.opts.Direction)
	}

	b.WriteString("\n\n")

	for _, qualifiedName := range order {
		b.WriteString(ctx.classes[qualifiedName].DiagramText(ctx.opts.SimplifyNames))
		b.WriteString("\n\n")
	}

	b.WriteString("\n\n")

	// Relationships are ordered by their rendered line, not by a semantic
	// (source, target, kind) tuple. Stable, not grouped.
	lines := make([]string, 0, len(relationships))
	for _, r := range relationships {
		lines = append(lines, r.DiagramText(ctx.opts.SimplifyNames))
	}

	sort.Strings(lines)

	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	ctx.writeHideToggles(&b, len(order) > 0 || len(relationships) > 0)

	b.WriteString("\n\n@enduml")

	return b.String()
}

// classOrder returns the qualified names of the class table ordered
// ascending by display name (ties broken by qualified name, which matters in
// simplify mode). The map is unordered by construction, so this re-sort is
// what makes the class block deterministic.
func (ctx *buildContext) classOrder() []string {
	order := make([]string, 0, len(ctx.classes))
	for qualifiedName := range ctx.classes {
		order = append(order, qualifiedName)
	}

	sort.Slice(order, func(i, j int) bool {
		ni, nj := ctx.classes[order[i]].Name, ctx.classes[order[j]].Name
		if ni != nj {
			return ni < nj
		}

		return order[i] < order[j]
	})

	return order
}

// collectRelationships flattens the per-class relationship lists following
// the serialized class order.
func (ctx *buildContext) collectRelationships(order []string) []classdiagram.UMLRelationship {
	var rels []classdiagram.UMLRelationship
	for _, qualifiedName := range order {
		rels = append(rels, ctx.relationships[qualifiedName]...)
	}

	return rels
}

// writeHideToggles emits the hide block: the category toggles first, then
// one line per configured hidden class in configuration order. Nothing is
// emitted for an empty model.
func (ctx *buildContext) writeHideToggles(b *strings.Builder, hasContent bool) {
	if !hasContent {
		return
	}

	if ctx.opts.HideFields {
		b.WriteString("\nhide fields")
	}

	if ctx.opts.HideMethods {
		b.WriteString("\nhide methods")
	}

	for _, name := range ctx.opts.HideClasses {
		b.WriteString("\nhide ")
		b.WriteString(name)
	}
}
