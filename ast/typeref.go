package ast

import "github.com/trill-lang/trillc/location"

// TypeRef is a syntactic type reference as written in source: a name,
// a pointer, a tuple, or a function signature. This is distinct from
// the semantic types.Type the type checker resolves it to — a TypeRef
// is what the parser saw; a types.Type is what it means, interned by
// structural identity. Sema attaches the resolved types.Type to each
// TypeRef without discarding the syntax, matching the "enriched, not
// rebuilt" AST lifecycle.
type TypeRef interface {
	Node
	typeRefNode()
}

// NamedTypeRef is a bare type name: `Int`, `Bool`, a user struct or
// protocol name.
type NamedTypeRef struct {
	base
	Name string
}

// NewNamedTypeRef creates a NamedTypeRef for name at span.
func NewNamedTypeRef(span location.Span, name string) *NamedTypeRef {
	return &NamedTypeRef{base: newBase(span, 0), Name: name}
}

func (*NamedTypeRef) typeRefNode() {}

// PointerTypeRef is `*T`. It also stands for `[T]`: per the language reference's
// "array sugar" open question, the parser desugars the bracket form
// into this same node with no distinguishing tag, so no later stage
// ever has to special-case an array type that does not otherwise
// exist.
type PointerTypeRef struct {
	base
	Pointee TypeRef
}

// NewPointerTypeRef creates a PointerTypeRef over pointee.
func NewPointerTypeRef(span location.Span, pointee TypeRef) *PointerTypeRef {
	return &PointerTypeRef{base: newBase(span, 0), Pointee: pointee}
}

func (*PointerTypeRef) typeRefNode() {}

// TupleTypeRef is `(T, U, …)`.
type TupleTypeRef struct {
	base
	Elements []TypeRef
}

// NewTupleTypeRef creates a TupleTypeRef over elements.
func NewTupleTypeRef(span location.Span, elements []TypeRef) *TupleTypeRef {
	return &TupleTypeRef{base: newBase(span, 0), Elements: elements}
}

func (*TupleTypeRef) typeRefNode() {}

// FunctionTypeRef is `(T, …) -> R`, optionally variadic.
type FunctionTypeRef struct {
	base
	Params   []TypeRef
	Result   TypeRef
	Variadic bool
}

// NewFunctionTypeRef creates a FunctionTypeRef.
func NewFunctionTypeRef(span location.Span, params []TypeRef, result TypeRef, variadic bool) *FunctionTypeRef {
	return &FunctionTypeRef{base: newBase(span, 0), Params: params, Result: result, Variadic: variadic}
}

func (*FunctionTypeRef) typeRefNode() {}
