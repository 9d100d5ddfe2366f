// Package types implements the semantic type system: the closed sum of
// primitive, named, tuple, function, pointer, Any, and error types,
// plus the two untyped literal kinds needed before a numeric literal
// defaults to a concrete type.
// Types are interned by structural identity through an Interner, and
// Equal compares any two Types by value regardless of which Interner
// (or none) produced them.
package types
