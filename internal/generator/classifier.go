package generator

import (
	"plantuml-generator/internal/classdiagram"
	"plantuml-generator/internal/descriptor"
)

// classifyField decides whether a field denotes relationships or stays an
// attribute candidate. The returned slice is non-empty exactly when the
// field is consumed: a field is either a relationship or a literal
// attribute, never both.
//
// A List/Set-like single-argument container whose type argument resolves to
// an in-scope type yields one aggregation per resolved argument, with
// multiplicity "1" at the owner end and "0..*" at the target end. A
// non-container field whose own type is in scope yields one directed
// association. Everything else (out-of-scope types, primitives, unresolved
// type variables) is forwarded to the member filter.
func (ctx *buildContext) classifyField(owner *descriptor.Type, f descriptor.Field) []classdiagram.UMLRelationship {
	if f.Container {
		var rels []classdiagram.UMLRelationship

		for _, arg := range f.TypeArgs {
			if !ctx.inScope[arg] {
				continue
			}

			rels = append(rels, classdiagram.UMLRelationship{
				FromMultiplicity: "1",
				ToMultiplicity:   "0..*",
				Role:             f.Name,
				Source:           owner.QualifiedName,
				Target:           arg,
				Kind:             classdiagram.RelationshipAggregation,
			})
		}

		if len(rels) > 0 {
			return rels
		}

		// A container of out-of-scope arguments is not a relationship; the
		// field falls through with its raw container type.
		return nil
	}

	if ctx.inScope[f.TypeName] {
		return []classdiagram.UMLRelationship{{
			Role:   f.Name,
			Source: owner.QualifiedName,
			Target: f.TypeName,
			Kind:   classdiagram.RelationshipDirectedAssociation,
		}}
	}

	return nil
}
