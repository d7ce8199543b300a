package javasrc

import (
	"strings"

	"plantuml-generator/internal/descriptor"
)

// containerBases are the raw type names treated as List/Set-like
// single-argument containers for aggregation inference.
var containerBases = map[string]bool{
	"List":           true,
	"Set":            true,
	"java.util.List": true,
	"java.util.Set":  true,
}

// qualify builds the qualified name of a type declared in this file.
func (u *fileUnit) qualify(name string) string {
	if u.pkg == "" {
		return name
	}

	return u.pkg + "." + name
}

// build turns the raw extraction into descriptors, resolving every type
// reference. Resolution order follows the import table, then the file's own
// package against the set of all discovered types, then the raw name as-is
// (primitives, java.lang types and unresolved type variables stay raw and
// will simply never match the in-scope set).
func (u *fileUnit) build(known map[string]bool) []*descriptor.Type {
	types := make([]*descriptor.Type, 0, len(u.types))

	for _, rt := range u.types {
		t := &descriptor.Type{
			QualifiedName: u.qualify(rt.name),
			SimpleName:    rt.name,
			Kind:          rt.kind,
			Modifiers:     rt.mods,
			SuperClass:    u.resolve(rt.superRaw, known),
			EnumConstants: rt.enumConstants,
		}

		for _, iface := range rt.interfacesRaw {
			t.Interfaces = append(t.Interfaces, u.resolve(iface, known))
		}

		for _, ann := range rt.annotations {
			t.Annotations = append(t.Annotations, u.resolve(ann, known))
		}

		for _, f := range rt.fields {
			t.Fields = append(t.Fields, u.buildField(f, known))
		}

		for _, m := range rt.methods {
			t.Methods = append(t.Methods, descriptor.Method{
				Name:       m.name,
				ReturnType: u.resolve(m.returnRaw, known),
				ParamTypes: u.resolveAll(m.paramRaws, known),
				Modifiers:  m.mods,
				Deprecated: m.deprecated,
			})
		}

		types = append(types, t)
	}

	return types
}

func (u *fileUnit) buildField(f rawField, known map[string]bool) descriptor.Field {
	base, args := splitGeneric(f.typeRaw)

	field := descriptor.Field{
		Name:      f.name,
		TypeName:  u.resolve(base, known),
		Modifiers: f.mods,
	}

	if containerBases[base] && len(args) == 1 {
		field.Container = true

		for _, arg := range args {
			argBase, _ := splitGeneric(arg)
			field.TypeArgs = append(field.TypeArgs, u.resolve(argBase, known))
		}
	}

	return field
}

func (u *fileUnit) resolveAll(raws []string, known map[string]bool) []string {
	if len(raws) == 0 {
		return nil
	}

	out := make([]string, len(raws))
	for i, raw := range raws {
		out[i] = u.resolve(raw, known)
	}

	return out
}

// resolve maps a raw source-level type reference to a qualified name
// candidate.
func (u *fileUnit) resolve(raw string, known map[string]bool) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	// Generic references resolve by their base name; the arguments are
	// handled separately where they matter (container fields).
	base, _ := splitGeneric(raw)

	if strings.Contains(base, ".") {
		return base
	}

	if full, ok := u.imports[base]; ok {
		return full
	}

	if u.pkg != "" && known[u.qualify(base)] {
		return u.qualify(base)
	}

	return base
}

// splitGeneric splits "List<Order>" into its base name and top-level type
// arguments. Nested generics stay intact inside their argument.
func splitGeneric(raw string) (string, []string) {
	raw = strings.TrimSpace(raw)

	open := strings.Index(raw, "<")
	if open < 0 || !strings.HasSuffix(raw, ">") {
		return raw, nil
	}

	base := strings.TrimSpace(raw[:open])
	inner := raw[open+1 : len(raw)-1]

	var args []string
	depth, start := 0, 0

	for i, r := range inner {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}

	if rest := strings.TrimSpace(inner[start:]); rest != "" {
		args = append(args, rest)
	}

	return base, args
}
