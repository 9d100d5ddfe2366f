package ast

import (
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/token"
)

// Expr is implemented by every expression node variant the language reference
// names: literals, references, the postfix family (field lookup,
// subscript, call, tuple field lookup), closures, the operator family
// (infix, prefix, ternary), sizeof, and type references used in
// expression position.
type Expr interface {
	Node
	exprNode()
}

// IntLiteralExpr is an integer literal. Text is the raw lexed spelling
// (base prefix and digit separators intact); decoding to a value
// happens on demand via token.DecodeInt, kept out of the AST so a
// malformed literal doesn't block parsing.
type IntLiteralExpr struct {
	base
	Text string
}

func NewIntLiteralExpr(span location.Span, text string) *IntLiteralExpr {
	return &IntLiteralExpr{base: newBase(span, 0), Text: text}
}

func (*IntLiteralExpr) exprNode() {}

// FloatLiteralExpr is a floating-point literal, decoded on demand via
// token.DecodeFloat.
type FloatLiteralExpr struct {
	base
	Text string
}

func NewFloatLiteralExpr(span location.Span, text string) *FloatLiteralExpr {
	return &FloatLiteralExpr{base: newBase(span, 0), Text: text}
}

func (*FloatLiteralExpr) exprNode() {}

// CharLiteralExpr is a char literal, decoded on demand via
// token.DecodeChar.
type CharLiteralExpr struct {
	base
	Text string
}

func NewCharLiteralExpr(span location.Span, text string) *CharLiteralExpr {
	return &CharLiteralExpr{base: newBase(span, 0), Text: text}
}

func (*CharLiteralExpr) exprNode() {}

// StringLiteralExpr is a string literal, decoded on demand via
// token.DecodeString.
type StringLiteralExpr struct {
	base
	Text string
}

func NewStringLiteralExpr(span location.Span, text string) *StringLiteralExpr {
	return &StringLiteralExpr{base: newBase(span, 0), Text: text}
}

func (*StringLiteralExpr) exprNode() {}

// BoolLiteralExpr is `true` or `false`.
type BoolLiteralExpr struct {
	base
	Value bool
}

func NewBoolLiteralExpr(span location.Span, value bool) *BoolLiteralExpr {
	return &BoolLiteralExpr{base: newBase(span, 0), Value: value}
}

func (*BoolLiteralExpr) exprNode() {}

// NilLiteralExpr is `nil`.
type NilLiteralExpr struct {
	base
}

func NewNilLiteralExpr(span location.Span) *NilLiteralExpr {
	return &NilLiteralExpr{base: newBase(span, 0)}
}

func (*NilLiteralExpr) exprNode() {}

// VariableRefExpr names a variable, function, or other declaration by
// identifier. Resolved is the zero DeclID until sema assigns one; a
// variable reference and every other reference to the same declaration
// share a Resolved value once sema finishes, per the language reference invariant
// (iii).
type VariableRefExpr struct {
	base
	Name     string
	Resolved DeclID
}

func NewVariableRefExpr(span location.Span, name string) *VariableRefExpr {
	return &VariableRefExpr{base: newBase(span, 0), Name: name}
}

func (*VariableRefExpr) exprNode() {}

// PropertyRefExpr names a property with an implicit receiver (`.name`
// shorthand, e.g. inferring a property from context such as an
// initializer's `self`). Distinct from FieldLookupExpr, which names an
// explicit receiver.
type PropertyRefExpr struct {
	base
	Name     string
	Resolved DeclID
}

func NewPropertyRefExpr(span location.Span, name string) *PropertyRefExpr {
	return &PropertyRefExpr{base: newBase(span, 0), Name: name}
}

func (*PropertyRefExpr) exprNode() {}

// FieldLookupExpr is `receiver.name`.
type FieldLookupExpr struct {
	base
	Receiver Expr
	Name     string
	Resolved DeclID
}

func NewFieldLookupExpr(span location.Span, receiver Expr, name string) *FieldLookupExpr {
	return &FieldLookupExpr{base: newBase(span, 0), Receiver: receiver, Name: name}
}

func (*FieldLookupExpr) exprNode() {}

// SubscriptExpr is `receiver[index]`.
type SubscriptExpr struct {
	base
	Receiver Expr
	Index    Expr
}

func NewSubscriptExpr(span location.Span, receiver, index Expr) *SubscriptExpr {
	return &SubscriptExpr{base: newBase(span, 0), Receiver: receiver, Index: index}
}

func (*SubscriptExpr) exprNode() {}

// Arg is one argument in a function call, with the caller-supplied
// label (empty if the corresponding parameter has none).
type Arg struct {
	Label string
	Value Expr
}

// CallExpr is `callee(args…)`.
type CallExpr struct {
	base
	Callee Expr
	Args   []Arg
}

func NewCallExpr(span location.Span, callee Expr, args []Arg) *CallExpr {
	return &CallExpr{base: newBase(span, 0), Callee: callee, Args: args}
}

func (*CallExpr) exprNode() {}

// ClosureExpr is an inline function literal.
type ClosureExpr struct {
	base
	Params     []*ParamDecl
	ReturnType TypeRef // nil if unannotated; inferred by the type checker
	Body       *CompoundStmt
}

func NewClosureExpr(span location.Span, params []*ParamDecl, returnType TypeRef, body *CompoundStmt) *ClosureExpr {
	return &ClosureExpr{base: newBase(span, 0), Params: params, ReturnType: returnType, Body: body}
}

func (*ClosureExpr) exprNode() {}

// ParenExpr is a parenthesized expression, kept as its own node
// (rather than discarded) so diagnostics can point at the parentheses
// and so a tuple-vs-grouping-parens ambiguity stays resolvable later.
type ParenExpr struct {
	base
	Inner Expr
}

func NewParenExpr(span location.Span, inner Expr) *ParenExpr {
	return &ParenExpr{base: newBase(span, 0), Inner: inner}
}

func (*ParenExpr) exprNode() {}

// TupleExpr is `(a, b, …)` with two or more elements (a single
// parenthesized expression parses as ParenExpr, not a one-element
// tuple).
type TupleExpr struct {
	base
	Elements []Expr
}

func NewTupleExpr(span location.Span, elements []Expr) *TupleExpr {
	return &TupleExpr{base: newBase(span, 0), Elements: elements}
}

func (*TupleExpr) exprNode() {}

// TupleFieldLookupExpr is `receiver.0`, `receiver.1`, etc. — positional
// field access on a tuple value, distinct from FieldLookupExpr's
// by-name access on a struct.
type TupleFieldLookupExpr struct {
	base
	Receiver Expr
	Index    int
}

func NewTupleFieldLookupExpr(span location.Span, receiver Expr, index int) *TupleFieldLookupExpr {
	return &TupleFieldLookupExpr{base: newBase(span, 0), Receiver: receiver, Index: index}
}

func (*TupleFieldLookupExpr) exprNode() {}

// SizeofExpr is `sizeof(T)`.
type SizeofExpr struct {
	base
	Operand TypeRef
}

func NewSizeofExpr(span location.Span, operand TypeRef) *SizeofExpr {
	return &SizeofExpr{base: newBase(span, 0), Operand: operand}
}

func (*SizeofExpr) exprNode() {}

// InfixExpr is a binary operator application, including assignment
// (`=`, `+=`, …) and the cast operators `as`/`is`, which parse at cast
// precedence per the language reference's precedence table but share this node
// shape since they too combine a left operand, an operator, and a
// right operand (a TypeRefExpr for `as`/`is`).
type InfixExpr struct {
	base
	Op    token.Kind
	Left  Expr
	Right Expr
}

func NewInfixExpr(span location.Span, op token.Kind, left, right Expr) *InfixExpr {
	return &InfixExpr{base: newBase(span, 0), Op: op, Left: left, Right: right}
}

func (*InfixExpr) exprNode() {}

// PrefixExpr is a unary prefix operator application (`-x`, `!x`, `~x`,
// `&x`, `*x`).
type PrefixExpr struct {
	base
	Op      token.Kind
	Operand Expr
}

func NewPrefixExpr(span location.Span, op token.Kind, operand Expr) *PrefixExpr {
	return &PrefixExpr{base: newBase(span, 0), Op: op, Operand: operand}
}

func (*PrefixExpr) exprNode() {}

// TernaryExpr is `cond ? then : else`.
type TernaryExpr struct {
	base
	Cond Expr
	Then Expr
	Else Expr
}

func NewTernaryExpr(span location.Span, cond, then, els Expr) *TernaryExpr {
	return &TernaryExpr{base: newBase(span, 0), Cond: cond, Then: then, Else: els}
}

func (*TernaryExpr) exprNode() {}

// TypeRefExpr wraps a TypeRef appearing in expression position, e.g.
// the right operand of `as`/`is`, or a type name used to reach a static
// member (`Type.staticMember`).
type TypeRefExpr struct {
	base
	Type TypeRef
}

func NewTypeRefExpr(span location.Span, t TypeRef) *TypeRefExpr {
	return &TypeRefExpr{base: newBase(span, 0), Type: t}
}

func (*TypeRefExpr) exprNode() {}
