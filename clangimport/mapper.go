package clangimport

import (
	"fmt"

	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/location"
)

// fixedWidthIntName returns the Trill named-type spelling for a C
// integer type of the given bit width and signedness: C integer types
// map to fixed-width Trill ints of matching signedness and size.
func fixedWidthIntName(bits int, signed bool) (string, bool) {
	switch bits {
	case 8:
		if signed {
			return "Int8", true
		}
		return "UInt8", true
	case 16:
		if signed {
			return "Int16", true
		}
		return "UInt16", true
	case 32:
		if signed {
			return "Int32", true
		}
		return "UInt32", true
	case 64:
		if signed {
			return "Int64", true
		}
		return "UInt64", true
	default:
		return "", false
	}
}

// mapType translates one C wire type into its Trill TypeRef, per the
// mapping rules of the language reference. span is attached to every synthesized
// node; it carries no useful position, only the importing source's
// identity, since the upstream frontend gives this importer no
// column/line information to preserve.
func (imp *importer) mapType(span location.Span, t wireType) ast.TypeRef {
	switch t.Kind {
	case typeKindInt:
		name, ok := fixedWidthIntName(t.Bits, t.Signed)
		if !ok {
			imp.unsupportedType(span, fmt.Sprintf("%d-bit integer", t.Bits), "Int32")
			return ast.NewNamedTypeRef(span, "Int32")
		}
		return ast.NewNamedTypeRef(span, name)

	case typeKindFloat:
		return ast.NewNamedTypeRef(span, "Float")

	case typeKindDouble:
		return ast.NewNamedTypeRef(span, "Double")

	case typeKindBool:
		return ast.NewNamedTypeRef(span, "Bool")

	case typeKindVoid:
		return ast.NewNamedTypeRef(span, "Void")

	case typeKindPointer:
		// `T *` where T is unknown becomes `*Void`, per the language reference.
		if t.Pointee == nil || t.Pointee.Kind == typeKindUnknown {
			return ast.NewPointerTypeRef(span, ast.NewNamedTypeRef(span, "Void"))
		}
		pointee := imp.mapType(span, *t.Pointee)
		return ast.NewPointerTypeRef(span, pointee)

	case typeKindNamed:
		if t.Name == "" {
			imp.unsupportedType(span, "unnamed reference", "Void")
			return ast.NewNamedTypeRef(span, "Void")
		}
		return ast.NewNamedTypeRef(span, t.Name)

	default:
		imp.unsupportedType(span, fmt.Sprintf("type kind %q", t.Kind), "Void")
		return ast.NewNamedTypeRef(span, "Void")
	}
}
