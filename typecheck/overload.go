package typecheck

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/types"
)

// checkCall resolves e's callee. Two paths exist: e.Callee names a
// declaration sema recorded a candidate set for (the common case —
// every call to a named function or initializer goes through
// overload resolution against argument types), or e.Callee is an
// arbitrary expression of Function type (a closure value, a function
// stored in a variable, a parameter) with no overloading to resolve.
func (c *Checker) checkCall(ctx bodyContext, e *ast.CallExpr) *types.Type {
	if candidates, ok := c.sema.Candidates[e]; ok {
		return c.resolveOverload(ctx, e, candidates)
	}

	// sema only builds a candidate set for a bare-name callee
	// (resolveCall's doc comment: "calls through anything other than a
	// bare name ... are left to the type checker, which has the
	// receiver/value type sema does not compute"). A method call's
	// callee is a FieldLookupExpr whose Name sema never resolves for
	// this reason; look up the receiver's declared methods here.
	if lookup, ok := e.Callee.(*ast.FieldLookupExpr); ok && !lookup.Resolved.Valid() {
		if candidates := c.methodCandidates(ctx, lookup); candidates != nil {
			return c.resolveOverload(ctx, e, candidates)
		}
	}

	calleeType := c.checkExpr(ctx, e.Callee)
	if calleeType.Kind() == types.Error {
		c.checkArgsAgainst(ctx, e, nil, false)
		return types.ErrorType
	}
	if calleeType.Kind() != types.Function {
		c.report(diag.E_INVALID_OPERAND, e.Span(), "cannot call a value of type "+calleeType.String())
		c.checkArgsAgainst(ctx, e, nil, false)
		return types.ErrorType
	}
	c.checkArgsAgainstTypes(ctx, e, calleeType.Params(), calleeType.Variadic())
	return calleeType.Result()
}

// methodCandidates collects the overload set for a method call's
// receiver.name callee: the receiver's checked type must be Named (or
// a Pointer to one, auto-dereferenced the way `.` already does for a
// field access), and every same-named FuncDecl member of that type's
// declaration is a candidate.
func (c *Checker) methodCandidates(ctx bodyContext, lookup *ast.FieldLookupExpr) []*ast.FuncDecl {
	recvType := c.checkExpr(ctx, lookup.Receiver)
	for recvType.Kind() == types.Pointer {
		recvType = recvType.Pointee()
	}
	if recvType.Kind() != types.Named {
		return nil
	}
	owner, ok := c.sema.DeclByID[recvType.DeclID()].(*ast.TypeDecl)
	if !ok {
		return nil
	}
	var candidates []*ast.FuncDecl
	for _, m := range owner.Members {
		if fn, ok := m.(*ast.FuncDecl); ok && fn.Name == lookup.Name {
			candidates = append(candidates, fn)
		}
	}
	return candidates
}

// resolveOverload narrows candidates to the single one whose arity,
// labels, and argument types match e.Args, per the language reference's
// "overload resolution narrows the candidate set sema recorded by
// argument count, external labels, and argument types; zero or more
// than one remaining candidate is an error."
func (c *Checker) resolveOverload(ctx bodyContext, e *ast.CallExpr, candidates []*ast.FuncDecl) *types.Type {
	// Argument expressions are checked once, against no expected type,
	// purely to obtain their own types for matching; checkExprExpected
	// against the chosen candidate's parameter types happens after a
	// single candidate is chosen, so literal defaulting/boxing reflect
	// the resolved signature.
	argTypes := make([]*types.Type, len(e.Args))
	for i, arg := range e.Args {
		argTypes[i] = c.defaultNumeric(c.checkExpr(ctx, arg.Value))
	}

	var matches []*ast.FuncDecl
	for _, fn := range candidates {
		if c.argsMatch(fn.Params, e.Args, argTypes) {
			matches = append(matches, fn)
		}
	}

	switch len(matches) {
	case 0:
		if allArgsOK(argTypes) {
			c.report(diag.E_ARITY_MISMATCH, e.Span(), "no overload of "+calleeName(e.Callee)+" matches these arguments")
		}
		return types.ErrorType
	case 1:
		fn := matches[0]
		c.info.Calls[e] = fn
		for i, arg := range e.Args {
			if i < len(fn.Params) {
				c.checkExprExpected(ctx, arg.Value, c.declType(fn.Params[i]))
			}
		}
		return c.declaredType(fn.ReturnType)
	default:
		c.report(diag.E_CANNOT_INFER, e.Span(), "ambiguous call to "+calleeName(e.Callee)+": more than one overload matches")
		return types.ErrorType
	}
}

func allArgsOK(argTypes []*types.Type) bool {
	for _, t := range argTypes {
		if t.Kind() == types.Error {
			return false
		}
	}
	return true
}

func calleeName(callee ast.Expr) string {
	switch e := callee.(type) {
	case *ast.VariableRefExpr:
		return e.Name
	case *ast.FieldLookupExpr:
		return e.Name
	default:
		return "<callee>"
	}
}

// argsMatch reports whether params accepts args given their already
// computed argTypes: arity compatible with params' trailing variadic
// parameter (if any), every external label matches, and every
// argument type is assignable to its parameter's type.
func (c *Checker) argsMatch(params []*ast.ParamDecl, args []ast.Arg, argTypes []*types.Type) bool {
	variadic := len(params) > 0 && params[len(params)-1].Variadic
	if variadic {
		if len(args) < len(params)-1 {
			return false
		}
	} else if len(args) != len(params) {
		return false
	}

	for i, arg := range args {
		var param *ast.ParamDecl
		if variadic && i >= len(params)-1 {
			param = params[len(params)-1]
		} else {
			param = params[i]
		}
		if !labelMatches(param, arg.Label) {
			return false
		}
		paramType := c.declType(param)
		ok, _ := c.assignable(argTypes[i], paramType)
		if !ok {
			return false
		}
	}
	return true
}

// labelMatches reports whether a call-site label satisfies param's
// external label: "_" means the parameter is positional and the call
// must supply no label; any other external label must match exactly.
func labelMatches(param *ast.ParamDecl, label string) bool {
	if param.ExternalLabel == "_" {
		return label == ""
	}
	return label == param.ExternalLabel
}

// checkArgsAgainstTypes checks a call's arguments against a bare
// Function type's parameter types (no labels, since a Function type
// carries none) when the callee is a function value rather than a
// named overload set.
func (c *Checker) checkArgsAgainstTypes(ctx bodyContext, e *ast.CallExpr, params []*types.Type, variadic bool) {
	for i, arg := range e.Args {
		switch {
		case i < len(params):
			c.checkExprExpected(ctx, arg.Value, params[i])
		case variadic && len(params) > 0:
			c.checkExprExpected(ctx, arg.Value, params[len(params)-1])
		default:
			c.checkExpr(ctx, arg.Value)
		}
	}
	if !variadic && len(e.Args) != len(params) {
		c.report(diag.E_ARITY_MISMATCH, e.Span(), "call has the wrong number of arguments")
	}
}

// checkArgsAgainst checks argument expressions with no expected type,
// used when the callee itself already failed to resolve so argument
// errors don't cascade on top of it.
func (c *Checker) checkArgsAgainst(ctx bodyContext, e *ast.CallExpr, params []*types.Type, variadic bool) {
	for _, arg := range e.Args {
		c.checkExpr(ctx, arg.Value)
	}
}
