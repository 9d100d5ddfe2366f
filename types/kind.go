package types

// Kind discriminates the members of the closed type sum the language reference
// "Types" defines.
type Kind uint8

const (
	// Invalid is the zero Kind; no valid Type has it.
	Invalid Kind = iota

	Int8
	Int16
	Int32
	Int64
	IntPlatform
	UInt8
	UInt16
	UInt32
	UInt64
	UIntPlatform

	Bool
	Float
	Double
	Void

	// Named is a user-declared struct or protocol type, identified by
	// the ast.DeclID of its TypeDecl or ProtocolDecl.
	Named

	// Tuple is a fixed-arity product of element types.
	Tuple

	// Function is args→ret, optionally variadic.
	Function

	// Pointer is `*T`; also what `[T]` array sugar lowers to per
	// the language reference's array-sugar open question.
	Pointer

	// Any is the existential box type: a type-metadata pointer plus an
	// inline-or-heap payload.
	Any

	// Error marks an expression whose type could not be determined;
	// the language reference: "a type-error node propagates without producing
	// cascading diagnostics".
	Error

	// UntypedInt and UntypedFloat are the "literal-int"/"literal-float"
	// kinds the language reference assigns to numeric literals before context
	// defaults or unifies them with a concrete type. They exist only
	// during type checking; no declared variable or parameter may have
	// an untyped type once checking completes.
	UntypedInt
	UntypedFloat
)

var kindNames = map[Kind]string{
	Invalid:      "<invalid>",
	Int8:         "Int8",
	Int16:        "Int16",
	Int32:        "Int32",
	Int64:        "Int64",
	IntPlatform:  "Int",
	UInt8:        "UInt8",
	UInt16:       "UInt16",
	UInt32:       "UInt32",
	UInt64:       "UInt64",
	UIntPlatform: "UInt",
	Bool:         "Bool",
	Float:        "Float",
	Double:       "Double",
	Void:         "Void",
	Named:        "named",
	Tuple:        "tuple",
	Function:     "function",
	Pointer:      "pointer",
	Any:          "Any",
	Error:        "error",
	UntypedInt:   "literal-int",
	UntypedFloat: "literal-float",
}

// String returns the spec's display name for k, or "<unknown kind>"
// for a value outside the closed set.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "<unknown kind>"
}

// IsInteger reports whether k is one of the ten fixed-width signed or
// unsigned integer kinds.
func (k Kind) IsInteger() bool {
	return k >= Int8 && k <= UIntPlatform
}

// IsSignedInteger reports whether k is one of the five signed integer
// kinds.
func (k Kind) IsSignedInteger() bool {
	return k >= Int8 && k <= IntPlatform
}

// IsUnsignedInteger reports whether k is one of the five unsigned
// integer kinds.
func (k Kind) IsUnsignedInteger() bool {
	return k >= UInt8 && k <= UIntPlatform
}

// IsUntyped reports whether k is a pre-defaulting literal kind.
func (k Kind) IsUntyped() bool {
	return k == UntypedInt || k == UntypedFloat
}
