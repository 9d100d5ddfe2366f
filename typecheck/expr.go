package typecheck

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/types"
)

// checkExpr assigns e a type, recording it in c.info.ExprTypes, and
// returns that type. It never returns nil; a failed expression gets
// types.ErrorType so the caller can keep walking without a nil check
// at every step.
func (c *Checker) checkExpr(ctx bodyContext, e ast.Expr) *types.Type {
	if t, ok := c.info.ExprTypes[e]; ok {
		return t
	}
	t := c.checkExprUncached(ctx, e)
	if t == nil {
		t = types.ErrorType
	}
	c.info.ExprTypes[e] = t
	return t
}

func (c *Checker) checkExprUncached(ctx bodyContext, e ast.Expr) *types.Type {
	switch expr := e.(type) {
	case *ast.IntLiteralExpr:
		return types.UntypedIntType
	case *ast.FloatLiteralExpr:
		return types.UntypedFloatType
	case *ast.CharLiteralExpr:
		return types.UInt8Type
	case *ast.StringLiteralExpr:
		// the language reference's closed type sum has no String primitive; a string
		// literal denotes the same `*UInt8` a `[UInt8]` array-sugar
		// reference would, consistent with how the parser already
		// lowers `[T]` to PointerTypeRef. stringType special-cases this
		// one pointer kind as Equatable for switch-subject purposes.
		return c.interner.Pointer(types.UInt8Type)
	case *ast.BoolLiteralExpr:
		return types.BoolType
	case *ast.NilLiteralExpr:
		return types.ErrorType // nil's type is only known from context; see checkNil call sites
	case *ast.VariableRefExpr:
		return c.checkVariableRef(ctx, expr)
	case *ast.PropertyRefExpr:
		return c.checkPropertyRef(ctx, expr)
	case *ast.FieldLookupExpr:
		return c.checkFieldLookup(ctx, expr)
	case *ast.SubscriptExpr:
		return c.checkSubscript(ctx, expr)
	case *ast.CallExpr:
		return c.checkCall(ctx, expr)
	case *ast.ClosureExpr:
		return c.checkClosure(ctx, expr)
	case *ast.ParenExpr:
		return c.checkExpr(ctx, expr.Inner)
	case *ast.TupleExpr:
		return c.checkTuple(ctx, expr)
	case *ast.TupleFieldLookupExpr:
		return c.checkTupleFieldLookup(ctx, expr)
	case *ast.SizeofExpr:
		c.resolveTypeRef(expr.Operand)
		return types.UIntPlatformType
	case *ast.InfixExpr:
		return c.checkInfix(ctx, expr)
	case *ast.PrefixExpr:
		return c.checkPrefix(ctx, expr)
	case *ast.TernaryExpr:
		return c.checkTernary(ctx, expr)
	case *ast.TypeRefExpr:
		c.resolveTypeRef(expr.Type)
		return types.VoidType
	default:
		return types.ErrorType
	}
}

// resolveTypeRef returns the type sema already resolved for ref, the
// same helper declaredType uses by a different name for an
// expression-position TypeRef rather than a declared return/field
// type.
func (c *Checker) resolveTypeRef(ref ast.TypeRef) *types.Type {
	return c.declaredType(ref)
}

func (c *Checker) checkVariableRef(ctx bodyContext, e *ast.VariableRefExpr) *types.Type {
	if !e.Resolved.Valid() {
		return types.ErrorType
	}
	d := c.sema.DeclByID[e.Resolved]
	return c.declType(d)
}

// checkPropertyRef resolves `.name` shorthand against the enclosing
// method's self type.
func (c *Checker) checkPropertyRef(ctx bodyContext, e *ast.PropertyRefExpr) *types.Type {
	if e.Resolved.Valid() {
		d := c.sema.DeclByID[e.Resolved]
		return c.declType(d)
	}
	if ctx.self == nil {
		c.report(diag.E_CANNOT_INFER, e.Span(), "property reference outside a method body")
		return types.ErrorType
	}
	return types.ErrorType
}

func (c *Checker) checkFieldLookup(ctx bodyContext, e *ast.FieldLookupExpr) *types.Type {
	c.checkExpr(ctx, e.Receiver)
	if !e.Resolved.Valid() {
		return types.ErrorType
	}
	d := c.sema.DeclByID[e.Resolved]
	return c.declType(d)
}

func (c *Checker) checkSubscript(ctx bodyContext, e *ast.SubscriptExpr) *types.Type {
	recv := c.checkExpr(ctx, e.Receiver)
	idx := c.checkExpr(ctx, e.Index)
	if recv.Kind() != types.Pointer {
		if recv.Kind() != types.Error {
			c.report(diag.E_INVALID_OPERAND, e.Span(), "subscript requires a pointer operand, got "+recv.String())
		}
		return types.ErrorType
	}
	if !idx.IsNumeric() && idx.Kind() != types.Error {
		c.report(diag.E_INVALID_OPERAND, e.Index.Span(), "subscript index must be numeric, got "+idx.String())
	}
	return recv.Pointee()
}

func (c *Checker) checkTuple(ctx bodyContext, e *ast.TupleExpr) *types.Type {
	elems := make([]*types.Type, len(e.Elements))
	for i, el := range e.Elements {
		elems[i] = c.defaultNumeric(c.checkExpr(ctx, el))
	}
	return c.interner.Tuple(elems)
}

func (c *Checker) checkTupleFieldLookup(ctx bodyContext, e *ast.TupleFieldLookupExpr) *types.Type {
	recv := c.checkExpr(ctx, e.Receiver)
	if recv.Kind() != types.Tuple {
		if recv.Kind() != types.Error {
			c.report(diag.E_INVALID_OPERAND, e.Span(), "positional field access requires a tuple, got "+recv.String())
		}
		return types.ErrorType
	}
	elems := recv.Elements()
	if e.Index < 0 || e.Index >= len(elems) {
		c.report(diag.E_INVALID_OPERAND, e.Span(), "tuple field index out of range")
		return types.ErrorType
	}
	return elems[e.Index]
}

func (c *Checker) checkClosure(ctx bodyContext, e *ast.ClosureExpr) *types.Type {
	params := make([]*types.Type, len(e.Params))
	for i, p := range e.Params {
		params[i] = c.declType(p)
	}
	ret := c.declaredType(e.ReturnType)
	inner := bodyContext{ret: ret}
	c.checkCompound(inner, e.Body)
	return c.interner.Function(params, ret, false)
}

func (c *Checker) checkTernary(ctx bodyContext, e *ast.TernaryExpr) *types.Type {
	cond := c.checkExpr(ctx, e.Cond)
	if cond.Kind() != types.Bool && cond.Kind() != types.Error {
		c.report(diag.E_TYPE_MISMATCH, e.Cond.Span(), "ternary condition must be Bool, got "+cond.String())
	}
	then := c.checkExpr(ctx, e.Then)
	els := c.checkExpr(ctx, e.Else)
	unified, ok := c.unifyNumeric(then, els)
	if ok {
		return unified
	}
	if types.Equal(then, els) {
		return then
	}
	if then.Kind() != types.Error && els.Kind() != types.Error {
		c.report(diag.E_TYPE_MISMATCH, e.Span(), "ternary branches have different types: "+then.String()+" and "+els.String())
	}
	return types.ErrorType
}

