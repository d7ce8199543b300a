package classdiagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibilityGlyphs(t *testing.T) {
	assert.Equal(t, "+", VisibilityPublic.Glyph())
	assert.Equal(t, "#", VisibilityProtected.Glyph())
	assert.Equal(t, "~", VisibilityPackagePrivate.Glyph())
	assert.Equal(t, "-", VisibilityPrivate.Glyph())
}

func TestVisibilityAdmits(t *testing.T) {
	assert.True(t, VisibilityPublic.Admits(VisibilityPublic))
	assert.False(t, VisibilityPublic.Admits(VisibilityProtected))
	assert.False(t, VisibilityPublic.Admits(VisibilityPrivate))

	assert.True(t, VisibilityProtected.Admits(VisibilityPublic))
	assert.True(t, VisibilityProtected.Admits(VisibilityProtected))
	assert.False(t, VisibilityProtected.Admits(VisibilityPackagePrivate))

	// A private ceiling admits everything.
	assert.True(t, VisibilityPrivate.Admits(VisibilityPrivate))
	assert.True(t, VisibilityPrivate.Admits(VisibilityPublic))
}

func TestParseVisibilityRoundTrip(t *testing.T) {
	for _, v := range []VisibilityType{
		VisibilityPublic, VisibilityProtected, VisibilityPackagePrivate, VisibilityPrivate,
	} {
		parsed, err := ParseVisibility(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}

	_, err := ParseVisibility("package")
	assert.Error(t, err)
}

func TestParseClassifierRoundTrip(t *testing.T) {
	for _, c := range []ClassifierType{
		ClassifierNone, ClassifierStatic, ClassifierAbstract, ClassifierAbstractStatic,
	} {
		parsed, err := ParseClassifier(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := ParseClassifier("final")
	assert.Error(t, err)
}

func TestFieldDiagramText(t *testing.T) {
	f := UMLField{Visibility: VisibilityPrivate, Name: "count", Type: "int"}
	assert.Equal(t, "{field} -count : int", f.DiagramText(false))

	static := UMLField{Classifier: ClassifierStatic, Visibility: VisibilityPublic, Name: "instance", Type: "Registry"}
	assert.Equal(t, "{field}  {static} +instance : Registry", static.DiagramText(false))

	both := UMLField{Classifier: ClassifierAbstractStatic, Visibility: VisibilityProtected, Name: "seed", Type: "long"}
	assert.Equal(t, "{field}  {static} {abstract}#seed : long", both.DiagramText(false))

	// Enum constants have no type and no suffix.
	constant := UMLField{Visibility: VisibilityPublic, Name: "ACTIVE"}
	assert.Equal(t, "{field} +ACTIVE", constant.DiagramText(false))

	// Simplify mode never touches field types.
	qualified := UMLField{Visibility: VisibilityPrivate, Name: "id", Type: "java.util.UUID"}
	assert.Equal(t, "{field} -id : java.util.UUID", qualified.DiagramText(true))
}

func TestMethodDiagramText(t *testing.T) {
	noArgs := UMLMethod{Visibility: VisibilityPublic, Name: "run", ReturnType: "void"}
	assert.Equal(t, "{method} +run () : void", noArgs.DiagramText(false))

	oneArg := UMLMethod{
		Visibility: VisibilityPublic,
		Name:       "accept",
		ReturnType: "boolean",
		Parameters: []Parameter{{Name: "paramString1", Type: "String"}},
	}
	assert.Equal(t, "{method} +accept ( paramString1 : String ) : boolean", oneArg.DiagramText(false))

	twoArgs := UMLMethod{
		Visibility: VisibilityProtected,
		Name:       "merge",
		Parameters: []Parameter{
			{Name: "paramint1", Type: "int"},
			{Name: "paramString2", Type: "String"},
		},
	}
	assert.Equal(t, "{method} #merge ( paramint1 : int , paramString2 : String )", twoArgs.DiagramText(false))
	assert.Equal(t, "{method} #merge ( int , String )", twoArgs.DiagramText(true))

	abstract := UMLMethod{
		Classifier: ClassifierAbstract,
		Visibility: VisibilityPublic,
		Name:       "render",
		ReturnType: "String",
	}
	assert.Equal(t, "{method}  {abstract} +render () : String", abstract.DiagramText(false))

	tagged := UMLMethod{
		Visibility:  VisibilityPublic,
		Name:        "legacy",
		ReturnType:  "void",
		Stereotypes: []string{"deprecated", "synchronized"},
	}
	assert.Equal(t, "{method} +legacy () : void <<deprecated>>  <<synchronized>> ", tagged.DiagramText(false))
}

func TestClassDiagramText(t *testing.T) {
	c := &UMLClass{
		Visibility: VisibilityPublic,
		Type:       ClassTypeClass,
		Name:       "com.example.Person",
	}
	c.AddField(UMLField{Visibility: VisibilityPrivate, Name: "name", Type: "String"})
	c.AddMethod(UMLMethod{Visibility: VisibilityPublic, Name: "work", ReturnType: "void"})

	expected := "class +com.example.Person {\n" +
		"\t{field} -name : String\n" +
		"\t{method} +work () : void\n" +
		"}"
	assert.Equal(t, expected, c.DiagramText(false))
}

func TestClassTemplates(t *testing.T) {
	cases := []struct {
		classType ClassType
		header    string
	}{
		{ClassTypeClass, "class +X {\n}"},
		{ClassTypeAbstractClass, "abstract class +X {\n}"},
		{ClassTypeInterface, "interface +X {\n}"},
		{ClassTypeEnum, "enum +X {\n}"},
		{ClassTypeAnnotation, "annotation +X {\n}"},
	}

	for _, tc := range cases {
		c := &UMLClass{Visibility: VisibilityPublic, Type: tc.classType, Name: "X"}
		assert.Equal(t, tc.header, c.DiagramText(false))
	}
}

func TestRelationshipDiagramText(t *testing.T) {
	inheritance := UMLRelationship{Source: "a.A", Target: "a.B", Kind: RelationshipInheritance}
	assert.Equal(t, "a.A --|> a.B", inheritance.DiagramText(false))
	assert.Equal(t, "A --|> B", inheritance.DiagramText(true))

	realization := UMLRelationship{Source: "a.A", Target: "a.Runner", Kind: RelationshipRealization}
	assert.Equal(t, "a.A ..|> a.Runner", realization.DiagramText(false))

	aggregation := UMLRelationship{
		FromMultiplicity: "1",
		ToMultiplicity:   "0..*",
		Role:             "items",
		Source:           "a.A",
		Target:           "a.B",
		Kind:             RelationshipAggregation,
	}
	assert.Equal(t, `a.A "1" o-- "0..*" a.B : items`, aggregation.DiagramText(false))

	directed := UMLRelationship{Role: "partner", Source: "a.A", Target: "a.B", Kind: RelationshipDirectedAssociation}
	assert.Equal(t, "a.A --> a.B : partner", directed.DiagramText(false))

	plain := UMLRelationship{Source: "a.A", Target: "a.Marker", Kind: RelationshipAssociation}
	assert.Equal(t, "a.A -- a.Marker", plain.DiagramText(false))
}

func TestSimpleName(t *testing.T) {
	assert.Equal(t, "Person", SimpleName("com.example.Person"))
	assert.Equal(t, "int", SimpleName("int"))
	assert.Equal(t, "Person", SimpleName("Person"))
}
