package typecheck

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/types"
)

// CastKind classifies what an explicit `as` cast actually does at IR
// level, per the language reference's Any-boxing rules. Recorded separately from
// Info.ExprTypes since the same target type can be reached by two very
// different lowerings (a plain bitcast vs. a runtime-checked unbox).
type CastKind int

const (
	// CastPrimitive is a numeric widen/narrow or pointer-to-pointer
	// reinterpret: representation changes, never traps.
	CastPrimitive CastKind = iota

	// CastBoxAny boxes a concrete value into an Any existential.
	// Infallible: the language reference describes Any as always able to hold any
	// value, inline or heap-boxed.
	CastBoxAny

	// CastUnboxAny unboxes an Any back to a concrete type: coercion
	// from Any to T requires an explicit `as` and inserts a
	// checked-cast that may trap at runtime.
	CastUnboxAny
)

// Info is the result of a completed Check pass.
type Info struct {
	// ExprTypes maps every expression the checker visited to its
	// assigned type. An expression absent from this map was never
	// reached (e.g. inside a branch of an AST the checker does not
	// walk) or its type could not be assigned; ExprTypes[e] for a
	// visited-but-failed expression is types.ErrorType, never nil.
	ExprTypes map[ast.Expr]*types.Type

	// Casts maps each `as`/`is` InfixExpr to the runtime behavior its
	// lowering needs. An `as` producing the same type as its operand,
	// or between numerically equal kinds, carries no entry.
	Casts map[*ast.InfixExpr]CastKind

	// Boxes marks an expression (an argument, assignment right-hand
	// side, or return value) that type-checked as a narrower concrete
	// type than its context requires an implicit Any box around it —
	// the language reference's "an implicit coercion from concrete T to Any
	// inserts an implicit bitcast-to-any node."
	Boxes map[ast.Expr]bool

	// Calls maps each call expression to the single overload chosen
	// after argument-based resolution narrows sema's recorded candidate
	// set. Absent for a call that failed to resolve (ambiguous or no
	// match); ExprTypes[call] is types.ErrorType in that case.
	Calls map[*ast.CallExpr]*ast.FuncDecl
}

func newInfo() *Info {
	return &Info{
		ExprTypes: make(map[ast.Expr]*types.Type),
		Casts:     make(map[*ast.InfixExpr]CastKind),
		Boxes:     make(map[ast.Expr]bool),
		Calls:     make(map[*ast.CallExpr]*ast.FuncDecl),
	}
}
