// Package descriptor defines the read-only type metadata consumed by the
// diagram generator. Scope resolvers (internal/scope/...) produce
// descriptors; the generator never inspects anything beyond them.
package descriptor

import "sort"

// Kind distinguishes the four descriptor kinds a resolver can report.
// Abstractness is a modifier, not a kind.
type Kind int

const (
	KindClass Kind = iota
	KindInterface
	KindEnum
	KindAnnotation
)

// Modifier names follow the Java modifier keywords; resolvers for other
// languages map their own concepts onto them.
type Modifier string

const (
	ModPublic       Modifier = "public"
	ModProtected    Modifier = "protected"
	ModPrivate      Modifier = "private"
	ModStatic       Modifier = "static"
	ModAbstract     Modifier = "abstract"
	ModFinal        Modifier = "final"
	ModSynchronized Modifier = "synchronized"
)

// Modifiers is the modifier set of a type or member.
type Modifiers []Modifier

// Has reports whether the set contains the given modifier.
func (m Modifiers) Has(mod Modifier) bool {
	for _, x := range m {
		if x == mod {
			return true
		}
	}

	return false
}

// Field is one declared field of a type.
type Field struct {
	Name string
	// TypeName is the qualified name of the declared (raw) type.
	TypeName  string
	Modifiers Modifiers
	// Container is true for List/Set-like single-argument container types.
	Container bool
	// TypeArgs holds the qualified names of resolved generic type
	// arguments. Unresolved type variables are never listed.
	TypeArgs []string
}

// Method is one declared method of a type.
type Method struct {
	Name string
	// ReturnType is the qualified result type name, empty if none.
	ReturnType string
	// ParamTypes are the qualified parameter type names in declaration order.
	ParamTypes []string
	Modifiers  Modifiers
	// Deprecated is set when the method carries a deprecation marker.
	Deprecated bool
}

// Type is the full descriptor of one in-scope type. Qualified names are the
// unique keys throughout the generator.
type Type struct {
	QualifiedName string
	SimpleName    string
	Kind          Kind
	Modifiers     Modifiers
	Fields        []Field
	Methods       []Method
	// SuperClass is the qualified name of the extended class, empty if none.
	SuperClass string
	Interfaces []string
	// Annotations are the qualified names of the type-level annotations.
	Annotations []string
	// EnumConstants carries the constant names for KindEnum descriptors.
	EnumConstants []string
}

// SortByQualifiedName orders descriptors ascending by qualified name.
// Both the mapper input and the serialized class list rely on this order
// for deterministic output.
func SortByQualifiedName(types []*Type) {
	sort.Slice(types, func(i, j int) bool {
		return types[i].QualifiedName < types[j].QualifiedName
	})
}
