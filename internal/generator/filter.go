package generator

import (
	"fmt"
	"strings"

	"plantuml-generator/internal/classdiagram"
	"plantuml-generator/internal/descriptor"
)

// filterField applies the inclusion policy to an attribute candidate and
// derives its rendered form. The decision order is: removal toggle, name
// blacklist, classifier exclusion, visibility ceiling. A field with both a
// getter and a setter is upgraded to public before the ceiling applies,
// reflecting full external read/write access.
func (ctx *buildContext) filterField(t *descriptor.Type, f descriptor.Field) (classdiagram.UMLField, bool) {
	if ctx.opts.RemoveFields {
		return classdiagram.UMLField{}, false
	}

	if ctx.opts.FieldBlacklist != nil && ctx.opts.FieldBlacklist.MatchString(f.Name) {
		return classdiagram.UMLField{}, false
	}

	cls := classifier(f.Modifiers)
	if ctx.opts.ExcludedFieldClassifiers[cls] {
		return classdiagram.UMLField{}, false
	}

	vis := memberVisibility(f.Modifiers)
	if hasGetterAndSetter(f.Name, t.Methods) {
		vis = classdiagram.VisibilityPublic
	}

	if !visibilityOK(ctx.opts.MaxFieldVisibility, vis) {
		return classdiagram.UMLField{}, false
	}

	return classdiagram.UMLField{
		Classifier: cls,
		Visibility: vis,
		Name:       f.Name,
		Type:       trimLangPrefix(f.TypeName),
	}, true
}

// filterMethod applies the inclusion policy to a method and derives its
// rendered form. The decision order is: removal toggle, getter/setter
// suppression, name blacklist, classifier exclusion, visibility ceiling.
func (ctx *buildContext) filterMethod(t *descriptor.Type, m descriptor.Method) (classdiagram.UMLMethod, bool) {
	if ctx.opts.RemoveMethods {
		return classdiagram.UMLMethod{}, false
	}

	if isAccessorFor(m.Name, t.Fields) {
		return classdiagram.UMLMethod{}, false
	}

	if ctx.opts.MethodBlacklist != nil && ctx.opts.MethodBlacklist.MatchString(m.Name) {
		return classdiagram.UMLMethod{}, false
	}

	cls := classifier(m.Modifiers)
	if ctx.opts.ExcludedMethodClassifiers[cls] {
		return classdiagram.UMLMethod{}, false
	}

	vis := memberVisibility(m.Modifiers)
	if !visibilityOK(ctx.opts.MaxMethodVisibility, vis) {
		return classdiagram.UMLMethod{}, false
	}

	var stereotypes []string
	if m.Deprecated {
		stereotypes = append(stereotypes, "deprecated")
	}

	if m.Modifiers.Has(descriptor.ModSynchronized) {
		stereotypes = append(stereotypes, "synchronized")
	}

	return classdiagram.UMLMethod{
		Classifier:  cls,
		Visibility:  vis,
		ReturnType:  ctx.renderTypeName(m.ReturnType),
		Name:        m.Name,
		Parameters:  ctx.parameters(m.ParamTypes),
		Stereotypes: stereotypes,
	}, true
}

// parameters builds the synthetic parameter list. Names are derived from the
// simple type name and a 1-based ordinal, since the metadata carries no real
// parameter names.
func (ctx *buildContext) parameters(paramTypes []string) []classdiagram.Parameter {
	params := make([]classdiagram.Parameter, 0, len(paramTypes))
	for i, typeName := range paramTypes {
		params = append(params, classdiagram.Parameter{
			Name: fmt.Sprintf("param%s%d", classdiagram.SimpleName(typeName), i+1),
			Type: ctx.renderTypeName(typeName),
		})
	}

	return params
}

// renderTypeName renders a method-level type name, honoring simplify mode.
// Field types never pass through here: they keep their qualified form.
func (ctx *buildContext) renderTypeName(typeName string) string {
	if typeName == "" {
		return ""
	}

	if ctx.opts.SimplifyNames {
		return trimLangPrefix(classdiagram.SimpleName(typeName))
	}

	return trimLangPrefix(typeName)
}

// isAccessorFor reports whether a method named get*/is*/set* matches a
// declared field name (case-insensitively). Such accessors are redundant
// with the field's own line and are suppressed regardless of visibility
// configuration.
func isAccessorFor(methodName string, fields []descriptor.Field) bool {
	var suffix string

	switch {
	case strings.HasPrefix(methodName, "get"):
		suffix = methodName[len("get"):]
	case strings.HasPrefix(methodName, "is"):
		suffix = methodName[len("is"):]
	case strings.HasPrefix(methodName, "set"):
		suffix = methodName[len("set"):]
	default:
		return false
	}

	for _, f := range fields {
		if strings.EqualFold(f.Name, suffix) {
			return true
		}
	}

	return false
}

// hasGetterAndSetter reports whether the declared methods contain both a
// getter (get<name> or is<name>) and a setter (set<name>) for the field,
// matched case-insensitively.
func hasGetterAndSetter(fieldName string, methods []descriptor.Method) bool {
	getter := "get" + fieldName
	boolGetter := "is" + fieldName
	setter := "set" + fieldName

	var hasGetter, hasSetter bool

	for _, m := range methods {
		switch {
		case strings.EqualFold(m.Name, getter) || strings.EqualFold(m.Name, boolGetter):
			hasGetter = true
		case strings.EqualFold(m.Name, setter):
			hasSetter = true
		}

		if hasGetter && hasSetter {
			return true
		}
	}

	return false
}
