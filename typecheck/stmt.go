package typecheck

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/types"
)

func (c *Checker) checkCompound(ctx bodyContext, body *ast.CompoundStmt) {
	if body == nil {
		return
	}
	for _, s := range body.Stmts {
		c.checkStmt(ctx, s)
	}
}

func (c *Checker) checkStmt(ctx bodyContext, s ast.Stmt) {
	switch stmt := s.(type) {
	case *ast.IfStmt:
		c.checkIf(ctx, stmt)
	case *ast.WhileStmt:
		c.checkWhile(ctx, stmt)
	case *ast.ForStmt:
		c.checkFor(ctx, stmt)
	case *ast.SwitchStmt:
		c.checkSwitch(ctx, stmt)
	case *ast.ReturnStmt:
		c.checkReturn(ctx, stmt)
	case *ast.BreakStmt:
		c.checkLoopControl(ctx, stmt.Span(), "break")
	case *ast.ContinueStmt:
		c.checkLoopControl(ctx, stmt.Span(), "continue")
	case *ast.ExprStmt:
		c.checkExpr(ctx, stmt.Value)
	case *ast.DeclStmt:
		c.checkDeclStmt(ctx, stmt)
	case *ast.CompoundStmt:
		c.checkCompound(ctx, stmt)
	case *ast.PoundDiagnosticStmt:
		// #error/#warning are lowered to diagnostics during sema
		// (ast.PoundDiagnosticStmt doc comment); nothing left to check.
	}
}

func (c *Checker) checkIf(ctx bodyContext, s *ast.IfStmt) {
	cond := c.checkExpr(ctx, s.Cond)
	if cond.Kind() != types.Bool && cond.Kind() != types.Error {
		c.report(diag.E_TYPE_MISMATCH, s.Cond.Span(), "if condition must be Bool, got "+cond.String())
	}
	c.checkCompound(ctx, s.Then)
	if s.Else != nil {
		c.checkStmt(ctx, s.Else)
	}
}

func (c *Checker) checkWhile(ctx bodyContext, s *ast.WhileStmt) {
	cond := c.checkExpr(ctx, s.Cond)
	if cond.Kind() != types.Bool && cond.Kind() != types.Error {
		c.report(diag.E_TYPE_MISMATCH, s.Cond.Span(), "while condition must be Bool, got "+cond.String())
	}
	inner := ctx
	inner.loopDepth++
	c.checkCompound(inner, s.Body)
}

func (c *Checker) checkFor(ctx bodyContext, s *ast.ForStmt) {
	if s.Init != nil {
		c.checkStmt(ctx, s.Init)
	}
	if s.Cond != nil {
		cond := c.checkExpr(ctx, s.Cond)
		if cond.Kind() != types.Bool && cond.Kind() != types.Error {
			c.report(diag.E_TYPE_MISMATCH, s.Cond.Span(), "for condition must be Bool, got "+cond.String())
		}
	}
	if s.Increment != nil {
		c.checkStmt(ctx, s.Increment)
	}
	inner := ctx
	inner.loopDepth++
	c.checkCompound(inner, s.Body)
}

func (c *Checker) checkSwitch(ctx bodyContext, s *ast.SwitchStmt) {
	subject := c.checkExpr(ctx, s.Subject)
	if !isEquatable(subject) {
		c.report(diag.E_INVALID_OPERAND, s.Subject.Span(), "switch subject type "+subject.String()+" is not equatable")
	}
	for _, kase := range s.Cases {
		for _, v := range kase.Values {
			valType := c.checkExpr(ctx, v)
			if _, ok := c.unifyNumeric(subject, valType); ok {
				continue
			}
			if !types.Equal(subject, valType) && subject.Kind() != types.Error && valType.Kind() != types.Error {
				c.report(diag.E_TYPE_MISMATCH, v.Span(),
					"case value type "+valType.String()+" does not match switch subject type "+subject.String())
			}
		}
		c.checkCompound(ctx, kase.Body)
	}
	if s.Default != nil {
		c.checkCompound(ctx, s.Default)
	}
}

func (c *Checker) checkReturn(ctx bodyContext, s *ast.ReturnStmt) {
	if s.Value == nil {
		if ctx.ret != nil && ctx.ret.Kind() != types.Void && ctx.ret.Kind() != types.Error {
			c.report(diag.E_TYPE_MISMATCH, s.Span(), "bare return in a function returning "+ctx.ret.String())
		}
		return
	}
	ret := ctx.ret
	if ret == nil {
		ret = types.VoidType
	}
	c.checkExprExpected(ctx, s.Value, ret)
}

func (c *Checker) checkLoopControl(ctx bodyContext, span location.Span, what string) {
	if ctx.loopDepth == 0 {
		c.report(diag.E_INVALID_CONTROL_FLOW, span, what+" used outside of a loop")
	}
}

func (c *Checker) checkDeclStmt(ctx bodyContext, s *ast.DeclStmt) {
	if v, ok := s.Decl.(*ast.VarDecl); ok {
		c.checkVarInit(ctx, v)
	}
}

// checkVarInit validates a var/let declaration's initializer against
// its declared type (inferring the declared type from the initializer
// when no type clause is present) per the language reference's var-decl
// inference rule, and enforces that a `let` always has an
// initializer.
func (c *Checker) checkVarInit(ctx bodyContext, v *ast.VarDecl) {
	// sema resolves a local var/let's declared TypeRef but, unlike a
	// stored field or top-level var, never records a DeclTypes entry
	// for it (sema.walkLocalDecl only declares the name into scope);
	// this is the one place that gap gets filled, uniformly for locals,
	// fields, and top-level vars alike.
	if v.Type != nil {
		c.sema.DeclTypes[v] = c.declaredType(v.Type)
	}

	if v.Init == nil {
		if v.IsLet {
			c.report(diag.E_CANNOT_INFER, v.Span(), "let declaration requires an initializer")
		}
		return
	}

	if v.Type == nil {
		init := c.defaultNumeric(c.checkExpr(ctx, v.Init))
		c.sema.DeclTypes[v] = init
		return
	}

	c.checkExprExpected(ctx, v.Init, c.sema.DeclTypes[v])
}

// checkMissingReturn reports when a non-Void function body has a
// control-flow path that falls off the end without a return. This is
// a structural (not data-flow-complete) check: a path "returns" if its
// last statement is a ReturnStmt, an if/else where both branches
// return, or a switch with a default where every case and the default
// return; anything else (a loop, since the language reference gives for/while no
// static iteration-count guarantee) is conservatively treated as
// falling through.
func (c *Checker) checkMissingReturn(body *ast.CompoundStmt, ret *types.Type) {
	if body == nil || ret == nil || ret.Kind() == types.Void || ret.Kind() == types.Error {
		return
	}
	if !stmtsReturn(body.Stmts) {
		c.report(diag.E_MISSING_RETURN, body.Span(), "missing return in a function returning "+ret.String())
	}
}

func stmtsReturn(stmts []ast.Stmt) bool {
	if len(stmts) == 0 {
		return false
	}
	return stmtReturns(stmts[len(stmts)-1])
}

func stmtReturns(s ast.Stmt) bool {
	switch stmt := s.(type) {
	case *ast.ReturnStmt:
		return true
	case *ast.CompoundStmt:
		return stmtsReturn(stmt.Stmts)
	case *ast.IfStmt:
		if stmt.Else == nil {
			return false
		}
		return stmtReturns(stmt.Then) && stmtReturns(stmt.Else)
	case *ast.SwitchStmt:
		if stmt.Default == nil {
			return false
		}
		for _, kase := range stmt.Cases {
			if !stmtReturns(kase.Body) {
				return false
			}
		}
		return stmtReturns(stmt.Default)
	default:
		return false
	}
}
