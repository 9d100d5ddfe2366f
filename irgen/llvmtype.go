package irgen

import (
	"strings"

	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/types"
)

// llvmType renders t as the LLVM type its values are represented by.
// A named indirect type is always a pointer into its box's payload,
// per the language reference ("A value of indirect type T at IR level is a
// pointer into the payload"); a named non-indirect type is the struct
// value itself.
func (g *Generator) llvmType(t *types.Type) string {
	switch t.Kind() {
	case types.Int8, types.UInt8:
		return "i8"
	case types.Int16, types.UInt16:
		return "i16"
	case types.Int32, types.UInt32:
		return "i32"
	case types.Int64, types.UInt64, types.IntPlatform, types.UIntPlatform:
		return "i64"
	case types.Bool:
		return "i1"
	case types.Float:
		return "float"
	case types.Double:
		return "double"
	case types.Void:
		return "void"
	case types.Any:
		return "%Any"
	case types.Error:
		return "i8*"
	case types.Pointer:
		return g.llvmType(t.Pointee()) + "*"
	case types.Named:
		name := "%struct." + sanitizeName(t.Name())
		if g.isIndirect(t) {
			return name + "*"
		}
		return name
	case types.Tuple:
		var sb strings.Builder
		sb.WriteString("{ ")
		for i, elem := range t.Elements() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(g.llvmType(elem))
		}
		sb.WriteString(" }")
		return sb.String()
	case types.Function:
		return "i8*" // functions are passed as opaque pointers to their mangled symbol
	default:
		return "i8*"
	}
}

// isIndirect reports whether t names a TypeDecl sema recorded as
// `indirect`. Returns false for anything that is not a Named type, or
// whose declaration sema never resolved (a type-checking failure that
// already produced its own diagnostic upstream).
func (g *Generator) isIndirect(t *types.Type) bool {
	if t.Kind() != types.Named {
		return false
	}
	decl, ok := g.sema.DeclByID[t.DeclID()].(*ast.TypeDecl)
	if !ok {
		return false
	}
	return g.sema.Indirect[decl]
}

// sanitizeName strips characters LLVM identifiers cannot contain.
// Trill identifiers are already `[A-Za-z_][A-Za-z0-9_]*`, so in
// practice this is a no-op; it exists defensively for
// foreign (C-imported) names, which the Clang importer copies verbatim
// and which are not guaranteed to avoid punctuation LLVM's identifier
// grammar forbids unless quoted.
func sanitizeName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
