package diag

// CodeCategory represents the compiler stage that owns an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// API layer that emits it. Most codes are emitted exclusively by their
// category's stage, but a few (E_INTERNAL, E_LIMIT_REACHED) are
// cross-cutting.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategoryLexer is for tokenization errors.
	CategoryLexer

	// CategoryParser is for syntax errors.
	CategoryParser

	// CategorySema is for name resolution, scope, and declaration errors.
	CategorySema

	// CategoryTypecheck is for type errors.
	CategoryTypecheck

	// CategoryImport is for C header import errors.
	CategoryImport

	// CategoryIRGen is for IR generation errors.
	CategoryIRGen

	// CategoryRuntime is for runtime ABI errors surfaced at compile time
	// (e.g. a malformed mangled symbol fed back through the demangler).
	CategoryRuntime
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategoryLexer:
		return "lexer"
	case CategoryParser:
		return "parser"
	case CategorySema:
		return "sema"
	case CategoryTypecheck:
		return "typecheck"
	case CategoryImport:
		return "import"
	case CategoryIRGen:
		return "irgen"
	case CategoryRuntime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_TYPE_MISMATCH").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	// It does not automatically trigger Result.LimitReached(); use
	// Collector.LimitReached() to check limit status. Callers may inject
	// this code manually when desired.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	// Use for conditions that should never occur in correct code.
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)

	// E_IO indicates a driver-level failure to read an input file or
	// decode a project configuration file. Distinct from E_INTERNAL:
	// an unreadable path is an ordinary user mistake, not a bug.
	E_IO = code("E_IO", CategorySentinel)
)

// Lexer codes.
var (
	// E_UNTERMINATED_STRING indicates a string literal is missing its closing quote.
	E_UNTERMINATED_STRING = code("E_UNTERMINATED_STRING", CategoryLexer)

	// E_UNTERMINATED_CHAR indicates a character literal is missing its closing quote.
	E_UNTERMINATED_CHAR = code("E_UNTERMINATED_CHAR", CategoryLexer)

	// E_UNTERMINATED_BLOCK_COMMENT indicates a /* comment is missing its closing */.
	E_UNTERMINATED_BLOCK_COMMENT = code("E_UNTERMINATED_BLOCK_COMMENT", CategoryLexer)

	// E_INVALID_ESCAPE indicates an unrecognized escape sequence in a string or
	// character literal.
	E_INVALID_ESCAPE = code("E_INVALID_ESCAPE", CategoryLexer)

	// E_INVALID_NUMBER indicates a malformed integer or floating-point literal.
	E_INVALID_NUMBER = code("E_INVALID_NUMBER", CategoryLexer)

	// E_INVALID_CHARACTER indicates a byte that cannot begin any valid token.
	E_INVALID_CHARACTER = code("E_INVALID_CHARACTER", CategoryLexer)

	// E_EMPTY_CHAR_LITERAL indicates a character literal with no content ('').
	E_EMPTY_CHAR_LITERAL = code("E_EMPTY_CHAR_LITERAL", CategoryLexer)

	// E_MULTI_CHAR_LITERAL indicates a character literal containing more than
	// one scalar value.
	E_MULTI_CHAR_LITERAL = code("E_MULTI_CHAR_LITERAL", CategoryLexer)

	// E_POUND_DIRECTIVE indicates a user-authored #error or #warning directive.
	E_POUND_DIRECTIVE = code("E_POUND_DIRECTIVE", CategoryLexer)

	// E_UNKNOWN_DIRECTIVE indicates a pound directive the lexer does not recognize.
	E_UNKNOWN_DIRECTIVE = code("E_UNKNOWN_DIRECTIVE", CategoryLexer)
)

// Parser codes.
var (
	// E_SYNTAX indicates a generic syntax error; prefer a more specific code
	// when one applies.
	E_SYNTAX = code("E_SYNTAX", CategoryParser)

	// E_EXPECTED_TOKEN indicates the parser expected a specific token kind
	// but found a different one.
	E_EXPECTED_TOKEN = code("E_EXPECTED_TOKEN", CategoryParser)

	// E_EXPECTED_EXPRESSION indicates an expression was expected but a
	// non-expression token was found.
	E_EXPECTED_EXPRESSION = code("E_EXPECTED_EXPRESSION", CategoryParser)

	// E_EXPECTED_DECLARATION indicates a top-level or member declaration was
	// expected.
	E_EXPECTED_DECLARATION = code("E_EXPECTED_DECLARATION", CategoryParser)

	// E_EXPECTED_TYPE indicates a type reference was expected.
	E_EXPECTED_TYPE = code("E_EXPECTED_TYPE", CategoryParser)

	// E_INVALID_MODIFIER_COMBINATION indicates two declaration modifiers were
	// combined in a way the grammar forbids (e.g. static on a protocol
	// requirement).
	E_INVALID_MODIFIER_COMBINATION = code("E_INVALID_MODIFIER_COMBINATION", CategoryParser)

	// E_UNEXPECTED_EOF indicates the source ended while a construct was still open.
	E_UNEXPECTED_EOF = code("E_UNEXPECTED_EOF", CategoryParser)
)

// Sema codes.
var (
	// E_REDECLARATION indicates a name is declared more than once in a scope
	// where that is not permitted.
	E_REDECLARATION = code("E_REDECLARATION", CategorySema)

	// E_UNDECLARED_IDENTIFIER indicates a reference to a name with no visible
	// declaration.
	E_UNDECLARED_IDENTIFIER = code("E_UNDECLARED_IDENTIFIER", CategorySema)

	// E_UNKNOWN_TYPE indicates a referenced type cannot be found.
	E_UNKNOWN_TYPE = code("E_UNKNOWN_TYPE", CategorySema)

	// E_DUPLICATE_CASE indicates an enum case name is reused within the same enum.
	E_DUPLICATE_CASE = code("E_DUPLICATE_CASE", CategorySema)

	// E_INVALID_MODIFIER indicates a modifier used in a context where it has
	// no meaning (e.g. mutating outside a method).
	E_INVALID_MODIFIER = code("E_INVALID_MODIFIER", CategorySema)

	// E_SELF_OUTSIDE_METHOD indicates self referenced outside a method body.
	E_SELF_OUTSIDE_METHOD = code("E_SELF_OUTSIDE_METHOD", CategorySema)

	// E_SHADOWED_DECLARATION indicates a declaration shadows an outer one in
	// a context flagged for shadow detection.
	E_SHADOWED_DECLARATION = code("E_SHADOWED_DECLARATION", CategorySema)

	// E_DECLARATION_CYCLE indicates a cycle in the declaration dependency
	// graph (e.g. a struct containing itself by value).
	E_DECLARATION_CYCLE = code("E_DECLARATION_CYCLE", CategorySema)

	// E_AMBIGUOUS_OVERLOAD indicates more than one overload candidate matches
	// equally well.
	E_AMBIGUOUS_OVERLOAD = code("E_AMBIGUOUS_OVERLOAD", CategorySema)

	// E_NO_MATCHING_OVERLOAD indicates no overload candidate matches the call.
	E_NO_MATCHING_OVERLOAD = code("E_NO_MATCHING_OVERLOAD", CategorySema)
)

// Typecheck codes.
var (
	// E_TYPE_MISMATCH indicates a value has the wrong type for its context.
	E_TYPE_MISMATCH = code("E_TYPE_MISMATCH", CategoryTypecheck)

	// E_INVALID_CAST indicates an `as` or `is` cast between incompatible types.
	E_INVALID_CAST = code("E_INVALID_CAST", CategoryTypecheck)

	// E_IMMUTABLE_ASSIGNMENT indicates an assignment to a non-mutable l-value.
	E_IMMUTABLE_ASSIGNMENT = code("E_IMMUTABLE_ASSIGNMENT", CategoryTypecheck)

	// E_INVALID_OPERAND indicates an operator applied to operand types it
	// does not support.
	E_INVALID_OPERAND = code("E_INVALID_OPERAND", CategoryTypecheck)

	// E_CANNOT_INFER indicates a literal or expression's type could not be
	// inferred from context.
	E_CANNOT_INFER = code("E_CANNOT_INFER", CategoryTypecheck)

	// E_ARITY_MISMATCH indicates a call's argument count does not match any
	// candidate signature.
	E_ARITY_MISMATCH = code("E_ARITY_MISMATCH", CategoryTypecheck)

	// E_MISSING_RETURN indicates a non-Void function has a path with no
	// return statement.
	E_MISSING_RETURN = code("E_MISSING_RETURN", CategoryTypecheck)

	// E_INVALID_CONTROL_FLOW indicates break/continue/return used where
	// control flow forbids it.
	E_INVALID_CONTROL_FLOW = code("E_INVALID_CONTROL_FLOW", CategoryTypecheck)

	// E_POINTER_ARITHMETIC indicates an invalid pointer arithmetic operation.
	E_POINTER_ARITHMETIC = code("E_POINTER_ARITHMETIC", CategoryTypecheck)

	// E_ANY_UNBOX_FAILURE indicates a runtime-checked Any downcast the
	// checker can statically prove never succeeds.
	E_ANY_UNBOX_FAILURE = code("E_ANY_UNBOX_FAILURE", CategoryTypecheck)
)

// Import codes.
var (
	// E_HEADER_NOT_FOUND indicates an imported C header could not be located.
	E_HEADER_NOT_FOUND = code("E_HEADER_NOT_FOUND", CategoryImport)

	// E_HEADER_PARSE indicates the translation unit for an imported header
	// could not be parsed.
	E_HEADER_PARSE = code("E_HEADER_PARSE", CategoryImport)

	// E_UNSUPPORTED_C_TYPE indicates a C type construct with no Trill
	// representation was encountered during import.
	E_UNSUPPORTED_C_TYPE = code("E_UNSUPPORTED_C_TYPE", CategoryImport)
)

// IRGen codes.
var (
	// E_MANGLING_FAILURE indicates a declaration could not be mangled to a
	// stable symbol name (e.g. an unsupported type shape reached codegen).
	E_MANGLING_FAILURE = code("E_MANGLING_FAILURE", CategoryIRGen)

	// E_UNSUPPORTED_CONSTRUCT indicates an AST construct with no lowering
	// reached IR generation.
	E_UNSUPPORTED_CONSTRUCT = code("E_UNSUPPORTED_CONSTRUCT", CategoryIRGen)
)

// Runtime codes.
var (
	// E_MALFORMED_SYMBOL indicates a mangled symbol name failed to demangle.
	E_MALFORMED_SYMBOL = code("E_MALFORMED_SYMBOL", CategoryRuntime)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	// Sentinel
	E_LIMIT_REACHED,
	E_INTERNAL,
	E_IO,
	// Lexer
	E_UNTERMINATED_STRING,
	E_UNTERMINATED_CHAR,
	E_UNTERMINATED_BLOCK_COMMENT,
	E_INVALID_ESCAPE,
	E_INVALID_NUMBER,
	E_INVALID_CHARACTER,
	E_EMPTY_CHAR_LITERAL,
	E_MULTI_CHAR_LITERAL,
	E_POUND_DIRECTIVE,
	E_UNKNOWN_DIRECTIVE,
	// Parser
	E_SYNTAX,
	E_EXPECTED_TOKEN,
	E_EXPECTED_EXPRESSION,
	E_EXPECTED_DECLARATION,
	E_EXPECTED_TYPE,
	E_INVALID_MODIFIER_COMBINATION,
	E_UNEXPECTED_EOF,
	// Sema
	E_REDECLARATION,
	E_UNDECLARED_IDENTIFIER,
	E_UNKNOWN_TYPE,
	E_DUPLICATE_CASE,
	E_INVALID_MODIFIER,
	E_SELF_OUTSIDE_METHOD,
	E_SHADOWED_DECLARATION,
	E_DECLARATION_CYCLE,
	E_AMBIGUOUS_OVERLOAD,
	E_NO_MATCHING_OVERLOAD,
	// Typecheck
	E_TYPE_MISMATCH,
	E_INVALID_CAST,
	E_IMMUTABLE_ASSIGNMENT,
	E_INVALID_OPERAND,
	E_CANNOT_INFER,
	E_ARITY_MISMATCH,
	E_MISSING_RETURN,
	E_INVALID_CONTROL_FLOW,
	E_POINTER_ARITHMETIC,
	E_ANY_UNBOX_FAILURE,
	// Import
	E_HEADER_NOT_FOUND,
	E_HEADER_PARSE,
	E_UNSUPPORTED_C_TYPE,
	// IRGen
	E_MANGLING_FAILURE,
	E_UNSUPPORTED_CONSTRUCT,
	// Runtime
	E_MALFORMED_SYMBOL,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
