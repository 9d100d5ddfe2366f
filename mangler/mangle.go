package mangler

import (
	"strconv"
	"strings"

	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/types"
)

// prefix is the fixed marker the language reference puts at the start of every
// Trill symbol.
const prefix = "_W"

var primitiveCodes = map[types.Kind]string{
	types.Int8:         "i8",
	types.Int16:        "i16",
	types.Int32:        "i32",
	types.Int64:        "i64",
	types.IntPlatform:  "iW",
	types.UInt8:        "u8",
	types.UInt16:       "u16",
	types.UInt32:       "u32",
	types.UInt64:       "u64",
	types.UIntPlatform: "uW",
	types.Bool:         "B",
	types.Float:        "F",
	types.Double:       "D",
	types.Void:         "V",
	types.Any:          "A",
	types.Error:        "E",
}

// codesByLength lists primitiveCodes' values sorted longest-first, so
// the demangler can greedily match the correct code instead of
// stopping at a shorter code that happens to be a prefix of a longer
// one (e.g. "i16" must not be read as "i" followed by stray "16").
var codesByLength = sortedCodes()

func sortedCodes() []string {
	codes := make([]string, 0, len(primitiveCodes))
	for _, c := range primitiveCodes {
		codes = append(codes, c)
	}
	// Longest first; ties broken lexically for determinism.
	for i := 1; i < len(codes); i++ {
		for j := i; j > 0 && less(codes[j], codes[j-1]); j-- {
			codes[j], codes[j-1] = codes[j-1], codes[j]
		}
	}
	return codes
}

func less(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a < b
}

func lenPrefixed(s string) string {
	return strconv.Itoa(len(s)) + s
}

// typeCode renders t per the language reference's type grammar: `sN` for a
// primitive, `N<name>` for a user named type, `P<depth><base>` for a
// (possibly multi-level) pointer, `t<elems>T` for a tuple,
// `F<params>R<ret>` for a function type. It never produces the
// `A<elem>` array form the demangler reads: types has no array kind,
// since `[T]` is lowered to Pointer.
func typeCode(t *types.Type) string {
	switch t.Kind() {
	case types.Named:
		return "N" + lenPrefixed(t.Name())
	case types.Pointer:
		depth := 0
		base := t
		for base.Kind() == types.Pointer {
			depth++
			base = base.Pointee()
		}
		return "P" + strconv.Itoa(depth) + typeCode(base)
	case types.Tuple:
		var sb strings.Builder
		sb.WriteByte('t')
		for _, elem := range t.Elements() {
			sb.WriteString(typeCode(elem))
		}
		sb.WriteByte('T')
		return sb.String()
	case types.Function:
		var sb strings.Builder
		sb.WriteByte('F')
		for _, p := range t.Params() {
			sb.WriteString(typeCode(p))
		}
		if t.Variadic() {
			sb.WriteByte('V')
		}
		sb.WriteByte('R')
		sb.WriteString(typeCode(t.Result()))
		return sb.String()
	default:
		if code, ok := primitiveCodes[t.Kind()]; ok {
			return "s" + code
		}
		// Untyped/Invalid kinds never reach the mangler: every value
		// passed in has already been through type checking, which
		// defaults or rejects them before a declaration is emitted.
		return "s?"
	}
}

// MangleType renders a standalone *types.Type, as a parameter or
// return-type component would appear embedded in a larger symbol.
func MangleType(t *types.Type) string {
	return typeCode(t)
}

// argEncode renders one parameter per the language reference: `S<name><type>`
// when the call site uses a single name (no external label distinct
// from the internal one — this module treats a positional-only `_`
// label and a label identical to the internal name as the same
// "single-name" case, since either way a demangled call site needs
// only the one name), or `E<external><internal><type>` when the
// external and internal names differ.
func argEncode(p *ast.ParamDecl, t *types.Type) string {
	if p.ExternalLabel == "_" || p.ExternalLabel == p.Name {
		return "S" + lenPrefixed(p.Name) + typeCode(t)
	}
	return "E" + lenPrefixed(p.ExternalLabel) + lenPrefixed(p.Name) + typeCode(t)
}

func argsEncode(params []*ast.ParamDecl, paramTypes []*types.Type) string {
	var sb strings.Builder
	for i, p := range params {
		sb.WriteString(argEncode(p, paramTypes[i]))
	}
	return sb.String()
}

// MangleFunc mangles a free (non-member) function. paramTypes and ret
// are the already-resolved types sema/typecheck assigned to fn's
// parameters and return type.
func MangleFunc(fn *ast.FuncDecl, paramTypes []*types.Type, ret *types.Type) string {
	return prefix + "F" + lenPrefixed(fn.Name) + argsEncode(fn.Params, paramTypes) + "R" + typeCode(ret)
}

// MangleMethod mangles a type member function: instance (`M`) or
// static (`m`) depending on fn's Static attribute.
func MangleMethod(owner *ast.TypeDecl, fn *ast.FuncDecl, paramTypes []*types.Type, ret *types.Type) string {
	modifier := byte('M')
	if fn.Attributes().Has(ast.Static) {
		modifier = 'm'
	}
	return prefix + "F" + string(modifier) + lenPrefixed(owner.Name) + lenPrefixed(fn.Name) +
		argsEncode(fn.Params, paramTypes) + "R" + typeCode(ret)
}

// MangleInit mangles a type's initializer. An initializer has no
// mangled return component: its result is always owner by
// construction.
func MangleInit(owner *ast.TypeDecl, init *ast.InitDecl, paramTypes []*types.Type) string {
	return prefix + "F" + "I" + lenPrefixed(owner.Name) + argsEncode(init.Params, paramTypes)
}

// MangleDeinit mangles a type's deinitializer.
func MangleDeinit(owner *ast.TypeDecl) string {
	return prefix + "F" + "D" + lenPrefixed(owner.Name)
}

// MangleGetter mangles a computed property's getter accessor.
func MangleGetter(owner *ast.TypeDecl, getter *ast.PropertyGetterDecl, propType *types.Type) string {
	return prefix + "F" + "g" + lenPrefixed(owner.Name) + lenPrefixed(getter.Name) + "R" + typeCode(propType)
}

// MangleSetter mangles a computed property's setter accessor.
func MangleSetter(owner *ast.TypeDecl, setter *ast.PropertySetterDecl, paramType *types.Type) string {
	return prefix + "F" + "s" + lenPrefixed(owner.Name) + lenPrefixed(setter.Name) +
		argEncode(setter.Param, paramType)
}

// MangleSubscript mangles a subscript accessor. The grammar reserves
// the `S` modifier for this case, though this AST has no dedicated
// subscript-declaration node (the declaration variant list has none);
// kept for grammar completeness and so the
// demangler can round-trip a hand-built symbol using it.
func MangleSubscript(owner *ast.TypeDecl, paramTypes []*types.Type, elemType *types.Type) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString("F")
	sb.WriteString("S")
	sb.WriteString(lenPrefixed(owner.Name))
	for _, t := range paramTypes {
		sb.WriteString("S" + lenPrefixed("_") + typeCode(t))
	}
	sb.WriteString("R")
	sb.WriteString(typeCode(elemType))
	return sb.String()
}

// MangleOperator mangles an operator declaration.
func MangleOperator(op *ast.OperatorDecl) string {
	kind := byte('I') // infix
	if op.Prefix {
		kind = 'P'
	}
	return prefix + "F" + "O" + string(kind) + lenPrefixed(op.Symbol)
}

// MangleTypeDecl mangles a user type declaration's own symbol (used
// for its TypeMetadata constant).
func MangleTypeDecl(decl *ast.TypeDecl) string {
	return prefix + "T" + lenPrefixed(decl.Name)
}

// MangleProtocol mangles a protocol declaration's own symbol (used
// for its ProtocolMetadata constant).
func MangleProtocol(decl *ast.ProtocolDecl) string {
	return prefix + "P" + lenPrefixed(decl.Name)
}

// MangleGlobal mangles a top-level `var` (`G`) or `let` (`g`).
func MangleGlobal(v *ast.VarDecl, t *types.Type) string {
	letter := byte('G')
	if v.IsLet {
		letter = 'g'
	}
	return prefix + string(letter) + lenPrefixed(v.Name) + typeCode(t)
}

// MangleClosure mangles a closure literal. index distinguishes
// sibling closures within the same enclosing function and is assigned
// by the caller (irgen numbers closures in the order it lowers them);
// owner is nil for a closure written at top level.
func MangleClosure(owner *ast.FuncDecl, index int) string {
	ownerName := "top"
	if owner != nil {
		ownerName = owner.Name
	}
	return prefix + "C" + lenPrefixed(ownerName) + strconv.Itoa(index)
}

// MangleWitnessTable mangles the per-conformance witness table a type
// declaration gets for a protocol it conforms to.
func MangleWitnessTable(protocol *ast.ProtocolDecl, conforming *ast.TypeDecl) string {
	return prefix + "W" + lenPrefixed(protocol.Name) + lenPrefixed(conforming.Name)
}
