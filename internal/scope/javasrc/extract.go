package javasrc

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"plantuml-generator/internal/descriptor"
)

// fileUnit is the raw extraction of one parsed file: package name, import
// table and top-level type declarations with unresolved type references.
type fileUnit struct {
	pkg     string
	imports map[string]string // simple name -> fully qualified name
	types   []*rawType
}

type rawType struct {
	name          string
	kind          descriptor.Kind
	mods          descriptor.Modifiers
	annotations   []string // raw annotation names
	superRaw      string
	interfacesRaw []string
	fields        []rawField
	methods       []rawMethod
	enumConstants []string
}

type rawField struct {
	name    string
	typeRaw string
	mods    descriptor.Modifiers
}

type rawMethod struct {
	name       string
	returnRaw  string
	paramRaws  []string
	mods       descriptor.Modifiers
	deprecated bool
}

// parseFile parses one Java compilation unit and extracts its top-level type
// declarations. Nested types are not descended into: scope roots select
// directly contained types only.
func parseFile(src []byte) *fileUnit {
	parser := sitter.NewParser()
	parser.SetLanguage(sitter.NewLanguage(tree_sitter_java.Language()))

	tree := parser.Parse(src, nil)
	root := tree.RootNode()

	unit := &fileUnit{imports: make(map[string]string)}

	for i := uint(0); i < root.ChildCount(); i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}

		switch child.Kind() {
		case "package_declaration":
			unit.pkg = packageName(child, src)
		case "import_declaration":
			unit.addImport(child, src)
		case "class_declaration":
			unit.types = append(unit.types, extractType(child, src, descriptor.KindClass))
		case "interface_declaration":
			unit.types = append(unit.types, extractType(child, src, descriptor.KindInterface))
		case "enum_declaration":
			unit.types = append(unit.types, extractType(child, src, descriptor.KindEnum))
		case "annotation_type_declaration":
			unit.types = append(unit.types, extractType(child, src, descriptor.KindAnnotation))
		}
	}

	return unit
}

func packageName(node *sitter.Node, src []byte) string {
	if ident := findNamedChild(node, "scoped_identifier"); ident != nil {
		return text(ident, src)
	}

	if ident := findNamedChild(node, "identifier"); ident != nil {
		return text(ident, src)
	}

	return ""
}

// addImport records a single-type import. Wildcard and static imports carry
// no usable simple-name binding and are skipped.
func (u *fileUnit) addImport(node *sitter.Node, src []byte) {
	ident := findNamedChild(node, "scoped_identifier")
	if ident == nil {
		return
	}

	full := text(ident, src)
	if strings.HasSuffix(full, ".*") {
		return
	}

	parts := strings.Split(full, ".")
	u.imports[parts[len(parts)-1]] = full
}

func extractType(node *sitter.Node, src []byte, kind descriptor.Kind) *rawType {
	rt := &rawType{
		name: text(node.ChildByFieldName("name"), src),
		kind: kind,
	}
	rt.mods, rt.annotations = modifiersAndAnnotations(node, src)

	if super := node.ChildByFieldName("superclass"); super != nil {
		rt.superRaw = strings.TrimSpace(strings.TrimPrefix(text(super, src), "extends"))
	}

	if ifaces := interfacesNode(node); ifaces != nil {
		rt.interfacesRaw = typeList(ifaces, src)
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return rt
	}

	switch kind {
	case descriptor.KindEnum:
		for i := uint(0); i < body.NamedChildCount(); i++ {
			child := body.NamedChild(i)
			if child.Kind() == "enum_constant" {
				rt.enumConstants = append(rt.enumConstants, text(child.ChildByFieldName("name"), src))
			}
		}
	case descriptor.KindAnnotation:
		// Annotation members are never rendered; only the type itself
		// participates in the diagram.
	default:
		extractMembers(rt, body, src)
	}

	return rt
}

func extractMembers(rt *rawType, body *sitter.Node, src []byte) {
	for i := uint(0); i < body.NamedChildCount(); i++ {
		child := body.NamedChild(i)

		switch child.Kind() {
		case "field_declaration", "constant_declaration":
			extractFields(rt, child, src)
		case "method_declaration":
			rt.methods = append(rt.methods, extractMethod(child, src))
		}
	}
}

// extractFields handles one declaration line, which may declare several
// variables of the same type.
func extractFields(rt *rawType, node *sitter.Node, src []byte) {
	typeRaw := text(node.ChildByFieldName("type"), src)
	mods, _ := modifiersAndAnnotations(node, src)

	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child.Kind() != "variable_declarator" {
			continue
		}

		rt.fields = append(rt.fields, rawField{
			name:    text(child.ChildByFieldName("name"), src),
			typeRaw: typeRaw,
			mods:    mods,
		})
	}
}

func extractMethod(node *sitter.Node, src []byte) rawMethod {
	mods, annotations := modifiersAndAnnotations(node, src)

	m := rawMethod{
		name:      text(node.ChildByFieldName("name"), src),
		returnRaw: text(node.ChildByFieldName("type"), src),
		mods:      mods,
	}

	for _, ann := range annotations {
		if ann == "Deprecated" || strings.HasSuffix(ann, ".Deprecated") {
			m.deprecated = true
		}
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := uint(0); i < params.NamedChildCount(); i++ {
			param := params.NamedChild(i)

			switch param.Kind() {
			case "formal_parameter":
				m.paramRaws = append(m.paramRaws, text(param.ChildByFieldName("type"), src))
			case "spread_parameter":
				for j := uint(0); j < param.NamedChildCount(); j++ {
					child := param.NamedChild(j)
					if strings.Contains(child.Kind(), "type") {
						m.paramRaws = append(m.paramRaws, text(child, src)+"...")
						break
					}
				}
			}
		}
	}

	return m
}

// modifiersAndAnnotations splits a declaration's modifiers node into plain
// modifier keywords and annotation names (without the @ and arguments).
func modifiersAndAnnotations(node *sitter.Node, src []byte) (descriptor.Modifiers, []string) {
	modsNode := findNamedChild(node, "modifiers")
	if modsNode == nil {
		return nil, nil
	}

	var mods descriptor.Modifiers
	var annotations []string

	for i := uint(0); i < modsNode.ChildCount(); i++ {
		child := modsNode.Child(i)
		txt := text(child, src)

		if strings.Contains(child.Kind(), "annotation") {
			annotations = append(annotations, annotationName(txt))
		} else if txt != "" {
			mods = append(mods, descriptor.Modifier(txt))
		}
	}

	return mods, annotations
}

// annotationName strips the leading @ and any argument list.
func annotationName(raw string) string {
	name := strings.TrimPrefix(raw, "@")
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}

	return strings.TrimSpace(name)
}

func interfacesNode(node *sitter.Node) *sitter.Node {
	if n := node.ChildByFieldName("interfaces"); n != nil {
		return n
	}

	return findNamedChild(node, "extends_interfaces")
}

// typeList extracts the type names from a super_interfaces or
// extends_interfaces clause.
func typeList(node *sitter.Node, src []byte) []string {
	target := node
	if node.Kind() != "type_list" {
		if list := findNamedChild(node, "type_list"); list != nil {
			target = list
		}
	}

	var names []string

	for i := uint(0); i < target.NamedChildCount(); i++ {
		child := target.NamedChild(i)
		if strings.Contains(child.Kind(), "type") || child.Kind() == "identifier" {
			names = append(names, text(child, src))
		}
	}

	return names
}

func findNamedChild(node *sitter.Node, kind string) *sitter.Node {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child.Kind() == kind {
			return child
		}
	}

	return nil
}

func text(node *sitter.Node, src []byte) string {
	if node == nil {
		return ""
	}

	return node.Utf8Text(src)
}
