package generator

import (
	"strings"

	"plantuml-generator/internal/classdiagram"
	"plantuml-generator/internal/descriptor"
	"plantuml-generator/internal/scope"
)

// Generator builds PlantUML class-diagram text from resolved type
// descriptors. A Generator carries only immutable options; every Generate
// call owns a fresh build context, so a single instance is safe to reuse
// across invocations.
type Generator struct {
	opts Options
}

// New creates a Generator with the given options.
func New(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Generate maps the descriptor set to the UML model and serializes it.
// Input order is irrelevant: descriptors are sorted by qualified name before
// mapping, and the serializer re-sorts the final model, so permuting the
// input never changes the output.
func (g *Generator) Generate(types []*descriptor.Type) string {
	ctx := newBuildContext(&g.opts, types)

	for _, t := range ctx.pending {
		ctx.mapType(t)
	}

	return ctx.serialize()
}

// Run resolves the scope and generates the diagram in one step. Any
// resolution failure aborts before mapping; no partial output is produced.
func Run(r scope.Resolver, opts Options) (string, error) {
	types, err := r.Resolve()
	if err != nil {
		return "", err
	}

	return New(opts).Generate(types), nil
}

// buildContext is the scratch state of one generation invocation: the sorted
// pending descriptor list, the class table and the relationship table, both
// keyed by qualified name.
type buildContext struct {
	opts          *Options
	pending       []*descriptor.Type
	inScope       map[string]bool
	classes       map[string]*classdiagram.UMLClass
	relationships map[string][]classdiagram.UMLRelationship
}

func newBuildContext(opts *Options, types []*descriptor.Type) *buildContext {
	pending := make([]*descriptor.Type, len(types))
	copy(pending, types)
	descriptor.SortByQualifiedName(pending)

	inScope := make(map[string]bool, len(pending))
	for _, t := range pending {
		inScope[t.QualifiedName] = true
	}

	return &buildContext{
		opts:          opts,
		pending:       pending,
		inScope:       inScope,
		classes:       make(map[string]*classdiagram.UMLClass, len(pending)),
		relationships: make(map[string][]classdiagram.UMLRelationship, len(pending)),
	}
}

// mapType derives the UMLClass for one descriptor together with its
// relationships to other in-scope types.
func (ctx *buildContext) mapType(t *descriptor.Type) {
	uml := &classdiagram.UMLClass{
		Visibility: classVisibility(t.Modifiers),
		Type:       classType(t),
		Name:       ctx.displayName(t),
	}
	ctx.classes[t.QualifiedName] = uml

	if uml.Type == classdiagram.ClassTypeEnum {
		// Enums carry their constants only; value data is dropped.
		for _, constant := range t.EnumConstants {
			uml.AddField(classdiagram.UMLField{
				Classifier: classdiagram.ClassifierNone,
				Visibility: classdiagram.VisibilityPublic,
				Name:       constant,
			})
		}
	} else {
		ctx.mapFields(t, uml)
		ctx.mapMethods(t, uml)
	}

	ctx.mapSuperClass(t)
	ctx.mapInterfaces(t)
	ctx.mapAnnotations(t)
}

// mapFields routes every declared field through the relationship classifier
// first; only fields that produced no relationship become attribute
// candidates for the member filter.
func (ctx *buildContext) mapFields(t *descriptor.Type, uml *classdiagram.UMLClass) {
	for _, f := range t.Fields {
		rels := ctx.classifyField(t, f)
		if len(rels) > 0 {
			ctx.addRelationships(t.QualifiedName, rels...)
			continue
		}

		if field, ok := ctx.filterField(t, f); ok {
			uml.AddField(field)
		}
	}
}

func (ctx *buildContext) mapMethods(t *descriptor.Type, uml *classdiagram.UMLClass) {
	for _, m := range t.Methods {
		if method, ok := ctx.filterMethod(t, m); ok {
			uml.AddMethod(method)
		}
	}
}

// mapSuperClass emits an inheritance relationship when the superclass is in
// scope.
func (ctx *buildContext) mapSuperClass(t *descriptor.Type) {
	if t.SuperClass == "" || !ctx.inScope[t.SuperClass] {
		return
	}

	ctx.addRelationships(t.QualifiedName, classdiagram.UMLRelationship{
		Source: t.QualifiedName,
		Target: t.SuperClass,
		Kind:   classdiagram.RelationshipInheritance,
	})
}

// mapInterfaces emits one realization per implemented in-scope interface.
func (ctx *buildContext) mapInterfaces(t *descriptor.Type) {
	for _, iface := range t.Interfaces {
		if !ctx.inScope[iface] {
			continue
		}

		ctx.addRelationships(t.QualifiedName, classdiagram.UMLRelationship{
			Source: t.QualifiedName,
			Target: iface,
			Kind:   classdiagram.RelationshipRealization,
		})
	}
}

// mapAnnotations emits a plain association to each in-scope annotation type.
// Annotations never receive field or method detail, only their presence as a
// relationship target.
func (ctx *buildContext) mapAnnotations(t *descriptor.Type) {
	for _, ann := range t.Annotations {
		if !ctx.inScope[ann] {
			continue
		}

		ctx.addRelationships(t.QualifiedName, classdiagram.UMLRelationship{
			Source: t.QualifiedName,
			Target: ann,
			Kind:   classdiagram.RelationshipAssociation,
		})
	}
}

func (ctx *buildContext) addRelationships(qualifiedName string, rels ...classdiagram.UMLRelationship) {
	ctx.relationships[qualifiedName] = append(ctx.relationships[qualifiedName], rels...)
}

func (ctx *buildContext) displayName(t *descriptor.Type) string {
	if ctx.opts.SimplifyNames {
		return t.SimpleName
	}

	return t.QualifiedName
}

// classVisibility derives the class-level visibility: private and protected
// are honored, everything else is public.
func classVisibility(mods descriptor.Modifiers) classdiagram.VisibilityType {
	switch {
	case mods.Has(descriptor.ModPrivate):
		return classdiagram.VisibilityPrivate
	case mods.Has(descriptor.ModProtected):
		return classdiagram.VisibilityProtected
	default:
		return classdiagram.VisibilityPublic
	}
}

// memberVisibility derives field/method visibility; members without an
// explicit visibility modifier are package private.
func memberVisibility(mods descriptor.Modifiers) classdiagram.VisibilityType {
	switch {
	case mods.Has(descriptor.ModPublic):
		return classdiagram.VisibilityPublic
	case mods.Has(descriptor.ModPrivate):
		return classdiagram.VisibilityPrivate
	case mods.Has(descriptor.ModProtected):
		return classdiagram.VisibilityProtected
	default:
		return classdiagram.VisibilityPackagePrivate
	}
}

func classType(t *descriptor.Type) classdiagram.ClassType {
	switch {
	case t.Kind == descriptor.KindAnnotation:
		return classdiagram.ClassTypeAnnotation
	case t.Kind == descriptor.KindEnum:
		return classdiagram.ClassTypeEnum
	case t.Kind == descriptor.KindInterface:
		return classdiagram.ClassTypeInterface
	case t.Modifiers.Has(descriptor.ModAbstract):
		return classdiagram.ClassTypeAbstractClass
	default:
		return classdiagram.ClassTypeClass
	}
}

// classifier derives the static/abstract classifier of a member.
func classifier(mods descriptor.Modifiers) classdiagram.ClassifierType {
	static, abstract := mods.Has(descriptor.ModStatic), mods.Has(descriptor.ModAbstract)

	switch {
	case static && abstract:
		return classdiagram.ClassifierAbstractStatic
	case static:
		return classdiagram.ClassifierStatic
	case abstract:
		return classdiagram.ClassifierAbstract
	default:
		return classdiagram.ClassifierNone
	}
}

// trimLangPrefix strips the java.lang package from rendered type names to
// keep diagrams readable. Names from other ecosystems pass through.
func trimLangPrefix(typeName string) string {
	return strings.TrimPrefix(typeName, "java.lang.")
}
