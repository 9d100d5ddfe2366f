package typecheck

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/sema"
	"github.com/trill-lang/trillc/types"
)

// bodyContext carries the information a function/initializer/accessor
// body needs while its statements and expressions are checked: the
// enclosing declared return type (for `return`), the receiver type
// when checking a method body (for `self` and bare property
// references), whether the enclosing method is `mutating` (gates
// assignment through `self`), and the current loop nesting (gates
// `break`/`continue`).
type bodyContext struct {
	ret       *types.Type
	self      *types.Type
	selfDecl  *ast.TypeDecl
	mutating  bool
	loopDepth int
}

// Checker runs the type-assignment and validation pass over one
// file's ast.Context, given the Info a prior sema.Analyze pass
// already produced. A Checker is single-use: construct one with
// NewChecker and call Check exactly once.
type Checker struct {
	ctx      *ast.Context
	interner *types.Interner
	sema     *sema.Info
	issues   *diag.Collector
	info     *Info

	owners map[ast.Decl]*ast.TypeDecl
}

// NewChecker creates a Checker over ctx, consulting semaInfo for
// resolved declaration types, candidate sets, and layouts, and interning
// any new types (e.g. a cast target) through interner — the same
// Interner the sema pass used, so types compare pointer-equal.
func NewChecker(ctx *ast.Context, interner *types.Interner, semaInfo *sema.Info) *Checker {
	return &Checker{
		ctx:      ctx,
		interner: interner,
		sema:     semaInfo,
		issues:   diag.NewCollectorUnlimited(),
		info:     newInfo(),
		owners:   make(map[ast.Decl]*ast.TypeDecl),
	}
}

// Check runs the full pass over file, returning the accumulated Info
// and the diagnostic result.
func (c *Checker) Check(file *ast.File) (*Info, diag.Result) {
	c.buildOwners(file)

	for _, d := range file.Decls {
		switch decl := d.(type) {
		case *ast.TypeDecl:
			c.checkTypeMembers(decl)
		case *ast.FuncDecl:
			c.checkFunc(decl)
		case *ast.VarDecl:
			c.checkTopLevelVar(decl)
		}
	}

	return c.info, c.issues.Result()
}

// buildOwners records, for every member of every TypeDecl reachable
// from file.Decls, the TypeDecl that owns it — sema already folded
// extension members into their target TypeDecl's Members (see
// sema.Checker.mergeExtensions), so walking TypeDecl.Members alone
// covers source-written and extension members alike.
func (c *Checker) buildOwners(file *ast.File) {
	for _, d := range file.Decls {
		td, ok := d.(*ast.TypeDecl)
		if !ok {
			continue
		}
		for _, m := range td.Members {
			c.owners[m] = td
		}
	}
}

func (c *Checker) checkTypeMembers(decl *ast.TypeDecl) {
	selfType := c.sema.DeclTypes[decl]
	for _, m := range decl.Members {
		switch member := m.(type) {
		case *ast.FuncDecl:
			c.checkMethod(decl, selfType, member)
		case *ast.InitDecl:
			if member.Body == nil {
				continue
			}
			ctx := bodyContext{ret: types.VoidType, self: selfType, selfDecl: decl, mutating: true}
			c.checkCompound(ctx, member.Body)
		case *ast.DeinitDecl:
			ctx := bodyContext{ret: types.VoidType, self: selfType, selfDecl: decl, mutating: true}
			c.checkCompound(ctx, member.Body)
		case *ast.PropertyGetterDecl:
			ret := c.declaredType(member.Type)
			ctx := bodyContext{ret: ret, self: selfType, selfDecl: decl}
			c.checkCompound(ctx, member.Body)
		case *ast.PropertySetterDecl:
			ctx := bodyContext{ret: types.VoidType, self: selfType, selfDecl: decl, mutating: true}
			c.checkCompound(ctx, member.Body)
		}
	}
}

func (c *Checker) checkMethod(owner *ast.TypeDecl, selfType *types.Type, fn *ast.FuncDecl) {
	if fn.Body == nil {
		return
	}
	ret := c.declaredType(fn.ReturnType)
	ctx := bodyContext{ret: ret}
	if !fn.Attributes().Has(ast.Static) {
		ctx.self = selfType
		ctx.selfDecl = owner
		ctx.mutating = fn.Attributes().Has(ast.Mutating)
	}
	c.checkCompound(ctx, fn.Body)
	c.checkMissingReturn(fn.Body, ret)
}

func (c *Checker) checkFunc(fn *ast.FuncDecl) {
	if fn.Body == nil {
		return
	}
	ret := c.declaredType(fn.ReturnType)
	ctx := bodyContext{ret: ret}
	c.checkCompound(ctx, fn.Body)
	c.checkMissingReturn(fn.Body, ret)
}

func (c *Checker) checkTopLevelVar(v *ast.VarDecl) {
	c.checkVarInit(bodyContext{}, v)
}

// declaredType resolves a TypeRef appearing on a function's return
// type or a computed property's declared type, defaulting to Void for
// an absent (omitted) return-type clause.
func (c *Checker) declaredType(ref ast.TypeRef) *types.Type {
	if ref == nil {
		return types.VoidType
	}
	if t, ok := c.sema.ResolvedTypes[ref]; ok {
		return t
	}
	// sema resolves every TypeRef it walks, including function return
	// types, so an absent entry means this TypeRef was never reached by
	// sema (should not happen for a well-formed tree); fall back to
	// error rather than panic so one malformed node doesn't abort the
	// whole pass.
	return types.ErrorType
}

// declType returns the type sema assigned to a declaration (variable,
// parameter, field, function), or types.ErrorType if sema never
// recorded one.
func (c *Checker) declType(d ast.Decl) *types.Type {
	if d == nil {
		return types.ErrorType
	}
	if t, ok := c.sema.DeclTypes[d]; ok {
		return t
	}
	if p, ok := d.(*ast.ParamDecl); ok {
		t := c.resolveParamType(p)
		c.sema.DeclTypes[p] = t
		return t
	}
	return types.ErrorType
}

func (c *Checker) resolveParamType(p *ast.ParamDecl) *types.Type {
	if t, ok := c.sema.ResolvedTypes[p.Type]; ok {
		return t
	}
	return types.ErrorType
}

// report collects a single-span Error diagnostic with code and
// message. Every typecheck diagnostic goes through here so dedup and
// sorting behave uniformly; callers needing a hint or related spans
// build with diag.NewIssue directly instead.
func (c *Checker) report(code diag.Code, span location.Span, message string) {
	c.issues.Collect(diag.NewIssue(diag.Error, code, message).WithSpan(span).Build())
}
