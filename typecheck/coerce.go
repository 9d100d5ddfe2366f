package typecheck

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/token"
	"github.com/trill-lang/trillc/types"
)

// defaultNumeric resolves an untyped literal kind to its concrete
// default per the language reference: an untyped int literal defaults to the
// platform Int, an untyped float literal to Double. Any other type
// passes through unchanged.
func (c *Checker) defaultNumeric(t *types.Type) *types.Type {
	switch t.Kind() {
	case types.UntypedInt:
		return types.IntPlatformType
	case types.UntypedFloat:
		return types.DoubleType
	default:
		return t
	}
}

// unifyNumeric reconciles two numeric operand types that meet at one
// expression (an infix arithmetic operator, a ternary's two branches):
// an untyped operand adopts the other side's concrete type; two
// untyped operands of the same literal family default together; two
// already-concrete types unify only if identical. Returns the unified
// type and whether unification succeeded.
func (c *Checker) unifyNumeric(a, b *types.Type) (*types.Type, bool) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return nil, false
	}
	aUntyped, bUntyped := a.Kind().IsUntyped(), b.Kind().IsUntyped()
	switch {
	case aUntyped && bUntyped:
		return c.defaultNumeric(a), types.Equal(c.defaultNumeric(a), c.defaultNumeric(b))
	case aUntyped:
		return b, true
	case bUntyped:
		return a, true
	default:
		return a, types.Equal(a, b)
	}
}

// describeType renders t the way a diagnostic should. A string literal
// has no dedicated primitive kind; it denotes the same `*UInt8` a
// `[UInt8]` array-sugar reference would (checkExprUncached). Showing
// that pointer spelling in a diagnostic reads as an internal
// representation leaking through, so this renders it as String,
// matching the literal's surface syntax. Every other type keeps its
// ordinary Type.String() spelling.
func describeType(t *types.Type) string {
	if t.Kind() == types.Pointer && t.Pointee().Kind() == types.UInt8 {
		return "String"
	}
	return t.String()
}

// assignable reports whether a value of type from may be used where a
// value of type to is expected, and whether doing so requires an
// implicit Any box (from is a concrete type, to is Any). An implicit
// coercion from concrete T to Any inserts an implicit bitcast-to-any
// node; every other direction (including Any-to-T) requires an
// explicit `as` and is not assignable.
func (c *Checker) assignable(from, to *types.Type) (ok, needsBox bool) {
	if from.Kind() == types.Error || to.Kind() == types.Error {
		return true, false
	}
	if to.Kind() == types.Any {
		if from.Kind() == types.Any {
			return true, false
		}
		return true, true
	}
	if from.Kind().IsUntyped() {
		if !to.IsNumeric() {
			return false, false
		}
		return types.Equal(c.defaultNumeric(from), to), false
	}
	return types.Equal(from, to), false
}

// checkExprExpected checks e in a position that carries an expected
// type (a var/let initializer against its declared type, a return
// value against the declared return type, an assignment's right-hand
// side, a call argument against its parameter type). Unlike the
// context-free checkExpr, this is the one place nil's type is decided:
// NilLiteralExpr has no type of its own outside of an expected pointer
// or Any target, so it is assigned expected directly rather than
// routed through checkExpr's bottom-up dispatch.
func (c *Checker) checkExprExpected(ctx bodyContext, e ast.Expr, expected *types.Type) *types.Type {
	if _, ok := e.(*ast.NilLiteralExpr); ok {
		if expected.Kind() != types.Pointer && expected.Kind() != types.Any && expected.Kind() != types.Error {
			c.report(diag.E_TYPE_MISMATCH, e.Span(), "nil is not assignable to "+expected.String())
			c.info.ExprTypes[e] = types.ErrorType
			return types.ErrorType
		}
		c.info.ExprTypes[e] = expected
		return expected
	}

	actual := c.checkExpr(ctx, e)
	ok, needsBox := c.assignable(actual, expected)
	if !ok {
		if actual.Kind() != types.Error && expected.Kind() != types.Error {
			c.report(diag.E_TYPE_MISMATCH, e.Span(),
				"cannot assign value of type "+describeType(actual)+" to "+describeType(expected))
		}
		return types.ErrorType
	}
	if needsBox {
		c.info.Boxes[e] = true
	}
	return expected
}

// isEquatable reports whether t is usable as a switch subject or case
// value per the language reference: every primitive, plus the one pointer shape
// a string literal denotes (`*UInt8`) so string switches type-check —
// general pointer equality by value is otherwise meaningless for a
// switch's by-value comparison.
func isEquatable(t *types.Type) bool {
	switch t.Kind() {
	case types.Bool, types.Float, types.Double, types.Error,
		types.Int8, types.Int16, types.Int32, types.Int64, types.IntPlatform,
		types.UInt8, types.UInt16, types.UInt32, types.UInt64, types.UIntPlatform,
		types.UntypedInt, types.UntypedFloat:
		return true
	case types.Pointer:
		return t.Pointee().Kind() == types.UInt8
	default:
		return false
	}
}

// checkInfix dispatches a binary InfixExpr by operator family:
// assignment, cast (`as`/`is`), pointer arithmetic, arithmetic,
// comparison, and logical.
func (c *Checker) checkInfix(ctx bodyContext, e *ast.InfixExpr) *types.Type {
	switch e.Op {
	case token.Assign:
		return c.checkAssign(ctx, e)
	case token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign,
		token.PercentAssign, token.AmpAssign, token.PipeAssign, token.CaretAssign,
		token.ShlAssign, token.ShrAssign:
		return c.checkCompoundAssign(ctx, e)
	case token.KwAs, token.KwIs:
		return c.checkCast(ctx, e)
	case token.AndAnd, token.OrOr:
		return c.checkLogical(ctx, e)
	case token.Eq, token.Ne, token.Lt, token.Le, token.Gt, token.Ge:
		return c.checkComparison(ctx, e)
	case token.Plus, token.Minus:
		return c.checkAdditive(ctx, e)
	default:
		return c.checkArithmetic(ctx, e)
	}
}

func (c *Checker) checkAssign(ctx bodyContext, e *ast.InfixExpr) *types.Type {
	target := c.checkExpr(ctx, e.Left)
	if !c.checkMutableTarget(ctx, e.Left) {
		c.report(diag.E_IMMUTABLE_ASSIGNMENT, e.Left.Span(), "cannot assign to an immutable value")
	}
	c.checkExprExpected(ctx, e.Right, target)
	return types.VoidType
}

func (c *Checker) checkCompoundAssign(ctx bodyContext, e *ast.InfixExpr) *types.Type {
	target := c.checkExpr(ctx, e.Left)
	if !c.checkMutableTarget(ctx, e.Left) {
		c.report(diag.E_IMMUTABLE_ASSIGNMENT, e.Left.Span(), "cannot assign to an immutable value")
	}
	rhs := c.checkExpr(ctx, e.Right)
	if target.Kind() == types.Pointer && (e.Op == token.PlusAssign || e.Op == token.MinusAssign) {
		if !rhs.IsNumeric() && rhs.Kind() != types.Error {
			c.report(diag.E_POINTER_ARITHMETIC, e.Span(), "pointer arithmetic requires an integer operand")
		}
		return types.VoidType
	}
	if _, ok := c.unifyNumeric(target, rhs); !ok && target.Kind() != types.Error && rhs.Kind() != types.Error {
		c.report(diag.E_INVALID_OPERAND, e.Span(), "operator "+e.Op.String()+" requires matching numeric operands")
	}
	return types.VoidType
}

// checkMutableTarget reports whether e denotes a mutable l-value: a
// `var`-declared variable or parameter, a field through a mutating
// method's self, or (recursively) a field/subscript of one. A `let`
// binding, an immutable self inside a non-mutating method, and every
// non-reference expression are not mutable.
func (c *Checker) checkMutableTarget(ctx bodyContext, e ast.Expr) bool {
	switch expr := e.(type) {
	case *ast.VariableRefExpr:
		d := c.sema.DeclByID[expr.Resolved]
		if v, ok := d.(*ast.VarDecl); ok {
			return !v.IsLet
		}
		if _, ok := d.(*ast.ParamDecl); ok {
			return true
		}
		return false
	case *ast.PropertyRefExpr:
		return ctx.mutating
	case *ast.FieldLookupExpr:
		if isSelfExpr(expr.Receiver) {
			return ctx.mutating
		}
		return c.checkMutableTarget(ctx, expr.Receiver)
	case *ast.SubscriptExpr:
		return c.checkMutableTarget(ctx, expr.Receiver)
	case *ast.TupleFieldLookupExpr:
		return c.checkMutableTarget(ctx, expr.Receiver)
	case *ast.PrefixExpr:
		if expr.Op == token.Star {
			return true // deref of any pointer is always a mutable l-value
		}
		return false
	default:
		return false
	}
}

func isSelfExpr(e ast.Expr) bool {
	ref, ok := e.(*ast.VariableRefExpr)
	return ok && ref.Name == "self"
}

func (c *Checker) checkLogical(ctx bodyContext, e *ast.InfixExpr) *types.Type {
	left := c.checkExpr(ctx, e.Left)
	right := c.checkExpr(ctx, e.Right)
	if left.Kind() != types.Bool && left.Kind() != types.Error {
		c.report(diag.E_TYPE_MISMATCH, e.Left.Span(), "operand must be Bool, got "+left.String())
	}
	if right.Kind() != types.Bool && right.Kind() != types.Error {
		c.report(diag.E_TYPE_MISMATCH, e.Right.Span(), "operand must be Bool, got "+right.String())
	}
	return types.BoolType
}

func (c *Checker) checkComparison(ctx bodyContext, e *ast.InfixExpr) *types.Type {
	left := c.checkExpr(ctx, e.Left)
	right := c.checkExpr(ctx, e.Right)
	if _, ok := c.unifyNumeric(left, right); ok {
		return types.BoolType
	}
	if types.Equal(left, right) {
		return types.BoolType
	}
	if left.Kind() != types.Error && right.Kind() != types.Error {
		c.report(diag.E_INVALID_OPERAND, e.Span(),
			"cannot compare "+describeType(left)+" and "+describeType(right))
	}
	return types.BoolType
}

// checkAdditive handles `+`/`-`, which alone among the arithmetic
// operators also serve pointer arithmetic: `*T + Int -> *T`,
// `*T - Int -> *T`, `*T - *T -> Int`.
func (c *Checker) checkAdditive(ctx bodyContext, e *ast.InfixExpr) *types.Type {
	left := c.checkExpr(ctx, e.Left)
	right := c.checkExpr(ctx, e.Right)

	if left.Kind() == types.Pointer {
		if right.Kind() == types.Pointer {
			if e.Op == token.Minus && types.Equal(left, right) {
				return types.IntPlatformType
			}
			c.report(diag.E_POINTER_ARITHMETIC, e.Span(), "cannot combine two pointers with "+e.Op.String())
			return types.ErrorType
		}
		if right.IsNumeric() {
			return left
		}
		if right.Kind() != types.Error {
			c.report(diag.E_POINTER_ARITHMETIC, e.Span(), "pointer arithmetic requires an integer operand")
		}
		return left
	}

	return c.checkArithmetic(ctx, e)
}

func (c *Checker) checkArithmetic(ctx bodyContext, e *ast.InfixExpr) *types.Type {
	left := c.checkExpr(ctx, e.Left)
	right := c.checkExpr(ctx, e.Right)
	unified, ok := c.unifyNumeric(left, right)
	if !ok {
		if left.Kind() != types.Error && right.Kind() != types.Error {
			c.report(diag.E_INVALID_OPERAND, e.Span(),
				"operator "+e.Op.String()+" requires matching numeric operands, got "+
					describeType(left)+" and "+describeType(right))
		}
		return types.ErrorType
	}
	return unified
}

// checkCast handles `as` and `is`, the only operators whose right
// operand is a TypeRefExpr rather than a value expression.
func (c *Checker) checkCast(ctx bodyContext, e *ast.InfixExpr) *types.Type {
	operand := c.checkExpr(ctx, e.Left)
	refExpr, ok := e.Right.(*ast.TypeRefExpr)
	if !ok {
		return types.ErrorType
	}
	target := c.resolveTypeRef(refExpr.Type)
	c.info.ExprTypes[refExpr] = target

	if e.Op == token.KwIs {
		if operand.Kind() != types.Any && operand.Kind() != types.Error {
			c.report(diag.E_INVALID_CAST, e.Span(), "`is` requires an Any operand, got "+describeType(operand))
		}
		return types.BoolType
	}

	switch {
	case operand.Kind() == types.Error || target.Kind() == types.Error:
		// already reported elsewhere
	case operand.Kind() == types.Any && target.Kind() == types.Any:
		c.info.Casts[e] = CastPrimitive
	case operand.Kind() == types.Any:
		c.info.Casts[e] = CastUnboxAny
	case target.Kind() == types.Any:
		c.info.Casts[e] = CastBoxAny
	case operand.IsNumeric() && target.IsNumeric():
		c.info.Casts[e] = CastPrimitive
	case operand.Kind() == types.Pointer && target.Kind() == types.Pointer:
		c.info.Casts[e] = CastPrimitive
	default:
		c.report(diag.E_INVALID_CAST, e.Span(),
			"cannot cast "+describeType(operand)+" to "+describeType(target))
	}
	return target
}

// checkPrefix handles the unary operators: `-`/`~` (numeric),
// `!` (Bool), `&` (address-of, requires a mutable-or-not l-value —
// any addressable expression), `*` (deref, requires a pointer).
func (c *Checker) checkPrefix(ctx bodyContext, e *ast.PrefixExpr) *types.Type {
	switch e.Op {
	case token.Minus, token.Tilde:
		t := c.checkExpr(ctx, e.Operand)
		if !t.IsNumeric() && t.Kind() != types.Error {
			c.report(diag.E_INVALID_OPERAND, e.Span(), "operator "+e.Op.String()+" requires a numeric operand, got "+t.String())
			return types.ErrorType
		}
		return t
	case token.Bang:
		t := c.checkExpr(ctx, e.Operand)
		if t.Kind() != types.Bool && t.Kind() != types.Error {
			c.report(diag.E_TYPE_MISMATCH, e.Span(), "operator ! requires a Bool operand, got "+t.String())
		}
		return types.BoolType
	case token.Amp:
		t := c.checkExpr(ctx, e.Operand)
		return c.interner.Pointer(t)
	case token.Star:
		t := c.checkExpr(ctx, e.Operand)
		if t.Kind() != types.Pointer {
			if t.Kind() != types.Error {
				c.report(diag.E_INVALID_OPERAND, e.Span(), "cannot dereference non-pointer type "+t.String())
			}
			return types.ErrorType
		}
		return t.Pointee()
	default:
		return types.ErrorType
	}
}
