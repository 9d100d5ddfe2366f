package types

import (
	"slices"
	"strings"

	"github.com/trill-lang/trillc/ast"
)

// Type is one member of the closed type sum. The zero Type is not
// meaningful; construct primitives via the package-level singletons
// (Int32, Bool, …) and composite types via an Interner.
//
// Type values are immutable after construction. Equality is by value
// (the language reference: "Types interned by structural identity; equality is by
// value") — use Equal, not Go's == on *Type, since two logically equal
// types may be distinct pointers if produced by different Interners or
// constructed ad hoc outside of one.
type Type struct {
	kind Kind

	// Named
	name   string
	declID ast.DeclID

	// Pointer
	pointee *Type

	// Tuple
	elements []*Type

	// Function
	params   []*Type
	result   *Type
	variadic bool
}

// Kind returns the type's discriminant.
func (t *Type) Kind() Kind { return t.kind }

// Name returns the declared name of a Named type, or "" for any other
// kind.
func (t *Type) Name() string { return t.name }

// DeclID returns the ast.DeclID of a Named type's declaring TypeDecl
// or ProtocolDecl, or the zero DeclID for any other kind.
func (t *Type) DeclID() ast.DeclID { return t.declID }

// Pointee returns the referent of a Pointer type, or nil for any other
// kind.
func (t *Type) Pointee() *Type { return t.pointee }

// Elements returns a defensive copy of a Tuple type's element types,
// or nil for any other kind.
func (t *Type) Elements() []*Type { return slices.Clone(t.elements) }

// Params returns a defensive copy of a Function type's parameter
// types, or nil for any other kind.
func (t *Type) Params() []*Type { return slices.Clone(t.params) }

// Result returns a Function type's return type, or nil for any other
// kind.
func (t *Type) Result() *Type { return t.result }

// Variadic reports whether a Function type accepts a trailing variadic
// argument tail.
func (t *Type) Variadic() bool { return t.variadic }

// IsNumeric reports whether t is a fixed-width integer, Float, Double,
// or one of the untyped literal kinds.
func (t *Type) IsNumeric() bool {
	return t.kind.IsInteger() || t.kind == Float || t.kind == Double || t.kind.IsUntyped()
}

// Equal reports whether a and b denote the same type by structural
// value, independent of whether they were produced by the same
// Interner or by none at all. nil is only equal to nil.
func Equal(a, b *Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Named:
		return a.declID == b.declID && a.name == b.name
	case Pointer:
		return Equal(a.pointee, b.pointee)
	case Tuple:
		return equalTypeSlices(a.elements, b.elements)
	case Function:
		return a.variadic == b.variadic &&
			Equal(a.result, b.result) &&
			equalTypeSlices(a.params, b.params)
	default:
		// Every other kind is a singleton: equal kind implies equal type.
		return true
	}
}

func equalTypeSlices(a, b []*Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// String renders t in the spelling the language reference uses for the
// corresponding syntax: `*T`, `(T, U)`, `(T, U) -> R`, or a primitive
// or named type's bare name.
func (t *Type) String() string {
	if t == nil {
		return "<nil type>"
	}
	switch t.kind {
	case Named:
		return t.name
	case Pointer:
		return "*" + t.pointee.String()
	case Tuple:
		return "(" + joinTypes(t.elements) + ")"
	case Function:
		var sb strings.Builder
		sb.WriteByte('(')
		sb.WriteString(joinTypes(t.params))
		if t.variadic {
			if len(t.params) > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("...")
		}
		sb.WriteString(") -> ")
		sb.WriteString(t.result.String())
		return sb.String()
	default:
		return t.kind.String()
	}
}

func joinTypes(ts []*Type) string {
	parts := make([]string, len(ts))
	for i, elem := range ts {
		parts[i] = elem.String()
	}
	return strings.Join(parts, ", ")
}

// Singleton primitive types. Every primitive kind has exactly one
// Type value; there is no need to intern them since they carry no
// payload distinguishing one instance from another.
var (
	Int8Type         = &Type{kind: Int8}
	Int16Type        = &Type{kind: Int16}
	Int32Type        = &Type{kind: Int32}
	Int64Type        = &Type{kind: Int64}
	IntPlatformType  = &Type{kind: IntPlatform}
	UInt8Type        = &Type{kind: UInt8}
	UInt16Type       = &Type{kind: UInt16}
	UInt32Type       = &Type{kind: UInt32}
	UInt64Type       = &Type{kind: UInt64}
	UIntPlatformType = &Type{kind: UIntPlatform}
	BoolType         = &Type{kind: Bool}
	FloatType        = &Type{kind: Float}
	DoubleType       = &Type{kind: Double}
	VoidType         = &Type{kind: Void}
	AnyType          = &Type{kind: Any}
	ErrorType        = &Type{kind: Error}
	UntypedIntType   = &Type{kind: UntypedInt}
	UntypedFloatType = &Type{kind: UntypedFloat}
)
