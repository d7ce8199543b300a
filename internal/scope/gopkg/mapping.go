package gopkg

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"plantuml-generator/internal/descriptor"
)

// buildPackage maps every exported shape of one loaded package.
func buildPackage(pkg *packages.Package) []*descriptor.Type {
	deprecated := deprecatedFuncs(pkg)
	constants := enumConstants(pkg)

	var out []*descriptor.Type

	pkgScope := pkg.Types.Scope()
	for _, name := range pkgScope.Names() {
		typeName, ok := pkgScope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		if t := buildType(pkg.PkgPath, named, deprecated, constants[name]); t != nil {
			out = append(out, t)
		}
	}

	return out
}

// buildType maps one named type, or returns nil for shapes with no diagram
// representation (named funcs, channels, basic types without constants).
func buildType(pkgPath string, named *types.Named, deprecated map[string]bool, constants []string) *descriptor.Type {
	name := named.Obj().Name()

	t := &descriptor.Type{
		QualifiedName: qualifiedName(pkgPath, name),
		SimpleName:    name,
		Modifiers:     exportModifiers(named.Obj().Exported()),
	}

	switch underlying := named.Underlying().(type) {
	case *types.Struct:
		t.Kind = descriptor.KindClass
		mapStructFields(t, underlying)
		mapMethods(t, named, deprecated)
	case *types.Interface:
		t.Kind = descriptor.KindInterface
		mapInterfaceMethods(t, underlying, deprecated, name)
	case *types.Basic:
		if len(constants) == 0 {
			return nil
		}

		t.Kind = descriptor.KindEnum
		t.EnumConstants = constants
	default:
		return nil
	}

	return t
}

// mapStructFields maps declared fields. The first embedded struct becomes
// the superclass, embedded interfaces become implemented interfaces, and
// slice fields become single-argument containers for aggregation inference.
func mapStructFields(t *descriptor.Type, st *types.Struct) {
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)

		if f.Embedded() {
			if mapEmbedded(t, f.Type()) {
				continue
			}
		}

		field := descriptor.Field{
			Name:      f.Name(),
			Modifiers: exportModifiers(f.Exported()),
		}

		if slice, ok := f.Type().Underlying().(*types.Slice); ok {
			field.Container = true
			field.TypeName = typeString(f.Type())
			field.TypeArgs = []string{typeString(slice.Elem())}
		} else {
			field.TypeName = typeString(f.Type())
		}

		t.Fields = append(t.Fields, field)
	}
}

func mapEmbedded(t *descriptor.Type, ft types.Type) bool {
	if ptr, ok := ft.(*types.Pointer); ok {
		ft = ptr.Elem()
	}

	named, ok := ft.(*types.Named)
	if !ok {
		return false
	}

	switch named.Underlying().(type) {
	case *types.Struct:
		if t.SuperClass == "" {
			t.SuperClass = typeString(named)
			return true
		}
	case *types.Interface:
		t.Interfaces = append(t.Interfaces, typeString(named))
		return true
	}

	return false
}

func mapMethods(t *descriptor.Type, named *types.Named, deprecated map[string]bool) {
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		t.Methods = append(t.Methods, buildMethod(m, deprecated[named.Obj().Name()+"."+m.Name()]))
	}
}

func mapInterfaceMethods(t *descriptor.Type, iface *types.Interface, deprecated map[string]bool, typeName string) {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		t.Methods = append(t.Methods, buildMethod(m, deprecated[typeName+"."+m.Name()]))
	}
}

func buildMethod(m *types.Func, isDeprecated bool) descriptor.Method {
	sig := m.Type().(*types.Signature)

	method := descriptor.Method{
		Name:       m.Name(),
		Modifiers:  exportModifiers(m.Exported()),
		Deprecated: isDeprecated,
	}

	for i := 0; i < sig.Params().Len(); i++ {
		method.ParamTypes = append(method.ParamTypes, typeString(sig.Params().At(i).Type()))
	}

	switch results := sig.Results(); results.Len() {
	case 0:
	case 1:
		method.ReturnType = typeString(results.At(0).Type())
	default:
		var parts []string
		for i := 0; i < results.Len(); i++ {
			parts = append(parts, typeString(results.At(i).Type()))
		}

		method.ReturnType = "(" + strings.Join(parts, ", ") + ")"
	}

	return method
}

// enumConstants groups package-level constants by the named type they
// belong to.
func enumConstants(pkg *packages.Package) map[string][]string {
	out := make(map[string][]string)

	pkgScope := pkg.Types.Scope()
	for _, name := range pkgScope.Names() {
		c, ok := pkgScope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}

		named, ok := c.Type().(*types.Named)
		if !ok || named.Obj().Pkg() != pkg.Types {
			continue
		}

		typeName := named.Obj().Name()
		out[typeName] = append(out[typeName], name)
	}

	return out
}

// deprecatedFuncs scans doc comments for the conventional "Deprecated:"
// marker. Keys are "Recv.Name" for methods and plain names for functions.
func deprecatedFuncs(pkg *packages.Package) map[string]bool {
	out := make(map[string]bool)

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Doc == nil || !strings.Contains(fd.Doc.Text(), "Deprecated:") {
				continue
			}

			key := fd.Name.Name
			if fd.Recv != nil && len(fd.Recv.List) > 0 {
				if recv := receiverTypeName(fd.Recv.List[0].Type); recv != "" {
					key = recv + "." + key
				}
			}

			out[key] = true
		}
	}

	return out
}

func receiverTypeName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return receiverTypeName(e.X)
	case *ast.IndexExpr:
		return receiverTypeName(e.X)
	case *ast.IndexListExpr:
		return receiverTypeName(e.X)
	default:
		return ""
	}
}

// exportModifiers maps Go exportedness onto the Java-flavored modifier set:
// exported is public, unexported is private.
func exportModifiers(exported bool) descriptor.Modifiers {
	if exported {
		return descriptor.Modifiers{descriptor.ModPublic}
	}

	return descriptor.Modifiers{descriptor.ModPrivate}
}

func qualifiedName(pkgPath, name string) string {
	return pkgPath + "." + name
}

// typeString renders a type reference so that named in-scope types match
// their descriptor's qualified name. Pointers are unwrapped: a *T field
// references T.
func typeString(t types.Type) string {
	switch tt := t.(type) {
	case *types.Pointer:
		return typeString(tt.Elem())
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() != nil {
			return qualifiedName(obj.Pkg().Path(), obj.Name())
		}

		return obj.Name()
	case *types.Basic:
		return tt.Name()
	case *types.Slice:
		return "[]" + typeString(tt.Elem())
	case *types.Map:
		return "map[" + typeString(tt.Key()) + "]" + typeString(tt.Elem())
	default:
		return t.String()
	}
}
