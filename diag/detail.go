package diag

// Detail provides key-value context for diagnostic issues.
//
// Details are used to add structured information to issues that can be
// programmatically inspected by tools. Use the standard detail key constants
// to ensure consistent key naming across the codebase.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys for consistent diagnostic metadata.
//
// Use these constants to avoid stringly-typed drift and enable programmatic
// inspection of diagnostic details. Custom detail keys are permitted for
// domain-specific diagnostics; use lower_snake_case for custom keys.
const (
	// DetailKeyExpected is the expected type or value.
	DetailKeyExpected = "expected"

	// DetailKeyGot is the actual type or value received.
	DetailKeyGot = "got"

	// DetailKeyTypeName is the type name involved in the diagnostic.
	DetailKeyTypeName = "type"

	// DetailKeyDeclName is the declaration name involved (function, type,
	// variable, enum case).
	DetailKeyDeclName = "decl"

	// DetailKeyCandidateCount is the number of overload candidates considered.
	DetailKeyCandidateCount = "candidate_count"

	// DetailKeyModifier is the declaration modifier involved in a modifier
	// diagnostic (static, mutating, indirect, foreign, noreturn).
	DetailKeyModifier = "modifier"

	// DetailKeyOperator is the operator token involved.
	DetailKeyOperator = "operator"

	// DetailKeyHeaderPath is the C header path involved in an import diagnostic.
	DetailKeyHeaderPath = "header"

	// DetailKeyCType is the C type spelling involved in an import diagnostic.
	DetailKeyCType = "c_type"

	// DetailKeySymbol is the mangled or demangled symbol name involved.
	DetailKeySymbol = "symbol"

	// DetailKeyCycle is the cycle participants as a comma-joined list
	// (for declaration dependency cycle diagnostics).
	DetailKeyCycle = "cycle"
)

// ExpectedGot creates a pair of details for type mismatch diagnostics.
//
// This is the standard pattern for reporting "expected X, got Y" errors.
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// TypeAndDecl creates detail entries for diagnostics involving a specific
// declaration on a type (e.g. a redeclared method).
func TypeAndDecl(typeName, declName string) []Detail {
	return []Detail{
		{Key: DetailKeyTypeName, Value: typeName},
		{Key: DetailKeyDeclName, Value: declName},
	}
}
