package sema

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/token"
)

// funcContext carries the state that changes as the checker descends
// into a function-like body: the scope chain, whether a "self" is in
// play, and the type scope self resolves against.
type funcContext struct {
	scope    *Scope
	inMethod bool
	typeDecl *ast.TypeDecl // nil when inMethod is false
}

// walkBody creates a function-tier scope over ctx.scope, declares
// params into it, and walks body as a nested compound.
func (c *Checker) walkBody(ctx funcContext, params []*ast.ParamDecl, body *ast.CompoundStmt) {
	fnScope := newScope(FunctionScope, ctx.scope)
	for _, p := range params {
		if conflict, ok := fnScope.declare(p.Name, p); !ok {
			c.redeclaration(p.Name, p.Span(), conflict)
		}
	}
	ctx.scope = fnScope
	if body != nil {
		c.walkCompound(ctx, body)
	}
}

func (c *Checker) walkCompound(ctx funcContext, compound *ast.CompoundStmt) {
	inner := ctx
	inner.scope = newScope(CompoundScope, ctx.scope)
	for _, s := range compound.Stmts {
		c.walkStmt(inner, s)
	}
}

func (c *Checker) walkStmt(ctx funcContext, s ast.Stmt) {
	switch st := s.(type) {
	case *ast.CompoundStmt:
		c.walkCompound(ctx, st)
	case *ast.IfStmt:
		c.walkExpr(ctx, st.Cond)
		c.walkCompound(ctx, st.Then)
		if st.Else != nil {
			c.walkStmt(ctx, st.Else)
		}
	case *ast.WhileStmt:
		c.walkExpr(ctx, st.Cond)
		c.walkCompound(ctx, st.Body)
	case *ast.ForStmt:
		loop := ctx
		loop.scope = newScope(CompoundScope, ctx.scope)
		if st.Init != nil {
			c.walkStmt(loop, st.Init)
		}
		if st.Cond != nil {
			c.walkExpr(loop, st.Cond)
		}
		if st.Increment != nil {
			c.walkStmt(loop, st.Increment)
		}
		c.walkCompound(loop, st.Body)
	case *ast.SwitchStmt:
		c.walkExpr(ctx, st.Subject)
		c.checkDuplicateCases(st)
		for _, sc := range st.Cases {
			for _, v := range sc.Values {
				c.walkExpr(ctx, v)
			}
			c.walkCompound(ctx, sc.Body)
		}
		if st.Default != nil {
			c.walkCompound(ctx, st.Default)
		}
	case *ast.ReturnStmt:
		if st.Value != nil {
			c.walkExpr(ctx, st.Value)
		}
	case *ast.ExprStmt:
		c.walkExpr(ctx, st.Value)
	case *ast.DeclStmt:
		c.walkLocalDecl(ctx, st.Decl)
	case *ast.PoundDiagnosticStmt:
		c.lowerPoundDiagnostic(st)
	case *ast.BreakStmt, *ast.ContinueStmt:
		// Nothing to resolve.
	}
}

// walkLocalDecl declares a local var/let into the current compound
// scope, reporting a shadow warning when it reuses a name already bound
// in an enclosing scope, and a redeclaration error when it collides
// within the same scope.
func (c *Checker) walkLocalDecl(ctx funcContext, d ast.Decl) {
	v, ok := d.(*ast.VarDecl)
	if !ok {
		return
	}
	if v.Type != nil {
		c.resolveTypeRef(ctx.scope, v.Type)
	}
	if v.Init != nil {
		c.walkExpr(ctx, v.Init)
	}
	if ctx.scope.parent != nil {
		if _, shadowed := ctx.scope.parent.lookup(v.Name); shadowed {
			c.issues.Collect(diag.NewIssue(diag.Warning, diag.E_SHADOWED_DECLARATION,
				"'"+v.Name+"' shadows a declaration from an enclosing scope").
				WithSpan(v.Span()).Build())
		}
	}
	if conflict, ok := ctx.scope.declare(v.Name, v); !ok {
		c.redeclaration(v.Name, v.Span(), conflict)
	}
}

func (c *Checker) walkExpr(ctx funcContext, e ast.Expr) {
	switch ex := e.(type) {
	case *ast.VariableRefExpr:
		c.resolveVariableRef(ctx, ex)
	case *ast.PropertyRefExpr:
		c.resolvePropertyRef(ctx, ex)
	case *ast.FieldLookupExpr:
		c.walkExpr(ctx, ex.Receiver)
	case *ast.SubscriptExpr:
		c.walkExpr(ctx, ex.Receiver)
		c.walkExpr(ctx, ex.Index)
	case *ast.CallExpr:
		c.resolveCall(ctx, ex)
		for _, a := range ex.Args {
			c.walkExpr(ctx, a.Value)
		}
	case *ast.ClosureExpr:
		c.walkBody(ctx, ex.Params, ex.Body)
	case *ast.ParenExpr:
		c.walkExpr(ctx, ex.Inner)
	case *ast.TupleExpr:
		for _, el := range ex.Elements {
			c.walkExpr(ctx, el)
		}
	case *ast.TupleFieldLookupExpr:
		c.walkExpr(ctx, ex.Receiver)
	case *ast.SizeofExpr:
		c.resolveTypeRef(ctx.scope, ex.Operand)
	case *ast.InfixExpr:
		c.walkExpr(ctx, ex.Left)
		c.walkExpr(ctx, ex.Right)
	case *ast.PrefixExpr:
		c.walkExpr(ctx, ex.Operand)
	case *ast.TernaryExpr:
		c.walkExpr(ctx, ex.Cond)
		c.walkExpr(ctx, ex.Then)
		c.walkExpr(ctx, ex.Else)
	case *ast.TypeRefExpr:
		c.resolveTypeRef(ctx.scope, ex.Type)
	}
}

// resolveVariableRef resolves a bare identifier. "self" is special:
// valid only inside a method context, never looked up in scope.
func (c *Checker) resolveVariableRef(ctx funcContext, ex *ast.VariableRefExpr) {
	if ex.Name == "self" {
		if !ctx.inMethod {
			c.issues.Collect(diag.NewIssue(diag.Error, diag.E_SELF_OUTSIDE_METHOD,
				"'self' used outside a method").WithSpan(ex.Span()).Build())
		}
		return
	}
	entries, ok := ctx.scope.lookup(ex.Name)
	if !ok {
		c.issues.Collect(diag.NewIssue(diag.Error, diag.E_UNDECLARED_IDENTIFIER,
			"use of undeclared identifier '"+ex.Name+"'").WithSpan(ex.Span()).Build())
		return
	}
	if len(entries) == 1 {
		ex.Resolved = c.declID(entries[0])
	}
}

// resolvePropertyRef resolves the `.name` implicit-self shorthand,
// valid only inside a method whose enclosing type declares a member
// named name.
func (c *Checker) resolvePropertyRef(ctx funcContext, ex *ast.PropertyRefExpr) {
	if !ctx.inMethod || ctx.typeDecl == nil {
		c.issues.Collect(diag.NewIssue(diag.Error, diag.E_SELF_OUTSIDE_METHOD,
			"'."+ex.Name+"' used outside a method").WithSpan(ex.Span()).Build())
		return
	}
	for _, m := range ctx.typeDecl.Members {
		if m.DeclName() == ex.Name {
			ex.Resolved = c.declID(m)
			return
		}
	}
	c.issues.Collect(diag.NewIssue(diag.Error, diag.E_UNDECLARED_IDENTIFIER,
		"'"+ctx.typeDecl.Name+"' has no member '"+ex.Name+"'").WithSpan(ex.Span()).Build())
}

// resolveCall builds the overload candidate set for a named call site.
// Calls through anything other than a bare name (a method call, a
// closure invocation, a higher-order value) are
// left to the type checker, which has the receiver/value type sema
// does not compute.
func (c *Checker) resolveCall(ctx funcContext, call *ast.CallExpr) {
	name, ok := call.Callee.(*ast.VariableRefExpr)
	if !ok {
		c.walkExpr(ctx, call.Callee)
		return
	}
	entries, found := ctx.scope.lookup(name.Name)
	if !found {
		c.issues.Collect(diag.NewIssue(diag.Error, diag.E_UNDECLARED_IDENTIFIER,
			"use of undeclared identifier '"+name.Name+"'").WithSpan(name.Span()).Build())
		return
	}
	var candidates []*ast.FuncDecl
	for _, d := range entries {
		if fd, ok := d.(*ast.FuncDecl); ok {
			candidates = append(candidates, fd)
		}
	}
	if len(candidates) == 0 {
		// Not callable as a function; leave resolution of e.g. a
		// variable holding a closure value to the type checker.
		return
	}
	c.info.Candidates[call] = candidates
	if len(candidates) == 1 {
		name.Resolved = c.declID(candidates[0])
	}
}

// checkDuplicateCases reports E_DUPLICATE_CASE when the same literal
// value spelling appears in more than one case of the same switch.
func (c *Checker) checkDuplicateCases(sw *ast.SwitchStmt) {
	seen := make(map[string]bool)
	for _, sc := range sw.Cases {
		for _, v := range sc.Values {
			key, ok := literalKey(v)
			if !ok {
				continue
			}
			if seen[key] {
				c.issues.Collect(diag.NewIssue(diag.Error, diag.E_DUPLICATE_CASE,
					"duplicate case label").WithSpan(v.Span()).Build())
				continue
			}
			seen[key] = true
		}
	}
}

func literalKey(e ast.Expr) (string, bool) {
	switch lit := e.(type) {
	case *ast.IntLiteralExpr:
		return "int:" + lit.Text, true
	case *ast.FloatLiteralExpr:
		return "float:" + lit.Text, true
	case *ast.CharLiteralExpr:
		return "char:" + lit.Text, true
	case *ast.StringLiteralExpr:
		return "string:" + lit.Text, true
	case *ast.BoolLiteralExpr:
		if lit.Value {
			return "bool:true", true
		}
		return "bool:false", true
	default:
		return "", false
	}
}

// lowerPoundDiagnostic implements the language reference's "Pound diagnostics …
// are lowered to diagnostic emissions during Sema": the directive's own
// kind names the emitted severity.
func (c *Checker) lowerPoundDiagnostic(st *ast.PoundDiagnosticStmt) {
	sev := diag.Error
	if st.Kind == token.PoundWarning {
		sev = diag.Warning
	}
	c.issues.Collect(diag.NewIssue(sev, diag.E_POUND_DIRECTIVE, st.Message).
		WithSpan(st.Span()).Build())
}

func (c *Checker) redeclaration(name string, span location.Span, prior ast.Decl) {
	b := diag.NewIssue(diag.Error, diag.E_REDECLARATION,
		"'"+name+"' is already declared in this scope").WithSpan(span)
	if prior != nil {
		b = b.WithRelated(location.RelatedInfo{Span: prior.Span(), Message: location.MsgPreviousDefinition})
	}
	c.issues.Collect(b.Build())
}
