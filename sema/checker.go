package sema

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/types"
)

// fieldEntry pairs a stored field's declaration with its resolved
// semantic type, the unit layout.go's sizing arithmetic operates over.
type fieldEntry struct {
	decl *ast.VarDecl
	typ  *types.Type
}

// Checker runs the single-traversal semantic analysis pass over one
// file's ast.Context, producing an Info and a diag.Result. A Checker
// is single-use: construct one per file with
// NewChecker and call Analyze exactly once.
type Checker struct {
	ctx      *ast.Context
	interner *types.Interner
	issues   *diag.Collector
	info     *Info
	module   *Scope
	declIDs  map[ast.Decl]ast.DeclID

	fields     map[*ast.TypeDecl][]fieldEntry
	typeScopes map[*ast.TypeDecl]*Scope

	// layoutState/layoutStack drive resolveLayout's dependency-ordered
	// DFS over non-indirect field types: a type embedded by value must
	// have its own layout computed before the type containing it.
	layoutState map[*ast.TypeDecl]cycleState
	layoutStack []*ast.TypeDecl
}

// NewChecker creates a Checker over ctx, interning resolved types
// through interner. interner is typically shared across every file in
// a compilation so structurally identical types compare pointer-equal
// everywhere.
func NewChecker(ctx *ast.Context, interner *types.Interner) *Checker {
	return &Checker{
		ctx:         ctx,
		interner:    interner,
		issues:      diag.NewCollectorUnlimited(),
		info:        newInfo(),
		declIDs:     make(map[ast.Decl]ast.DeclID),
		fields:      make(map[*ast.TypeDecl][]fieldEntry),
		typeScopes:  make(map[*ast.TypeDecl]*Scope),
		layoutState: make(map[*ast.TypeDecl]cycleState),
	}
}

// register adds a sema-synthesized declaration (an implicit
// initializer, deinitializer, or parameter) to the arena, the same way
// the parser registers source-written member declarations.
func (c *Checker) register(d ast.Decl) ast.DeclID {
	id := c.ctx.AddDecl(d)
	c.declIDs[d] = id
	c.info.DeclByID[id] = d
	return id
}

// declID returns the DeclID for a declaration already present in the
// arena (every node the parser or clangimport produced), building the
// reverse index lazily on first use since ast.Context exposes no
// Decl→DeclID lookup of its own.
func (c *Checker) declID(d ast.Decl) ast.DeclID {
	if id, ok := c.declIDs[d]; ok {
		return id
	}
	for id := ast.DeclID(1); int(id) <= c.ctx.Len(); id++ {
		existing := c.ctx.Decl(id)
		c.declIDs[existing] = id
		c.info.DeclByID[id] = existing
		if existing == d {
			return id
		}
	}
	return 0
}

// isIndirect reports whether decl carries the `indirect` modifier.
func (c *Checker) isIndirect(decl *ast.TypeDecl) bool {
	return decl.Attributes().Has(ast.Indirect)
}

// declByID resolves a DeclID back to the Decl it was assigned to, or
// nil if id is unknown (the zero DeclID, or a Named type with no
// backing TypeDecl such as a protocol existential).
func (c *Checker) declByID(id ast.DeclID) ast.Decl {
	return c.info.DeclByID[id]
}

// Analyze runs the full pass over file, returning the accumulated Info
// and the diagnostic result.
func (c *Checker) Analyze(file *ast.File) (*Info, diag.Result) {
	c.primeDeclIndex()
	c.module = newScope(ModuleScope, nil)

	for _, d := range file.Decls {
		if _, ok := d.(*ast.ExtensionDecl); ok {
			continue
		}
		c.declareModule(d)
	}
	c.mergeExtensions(file.Decls)

	var typeDecls []*ast.TypeDecl
	for _, d := range file.Decls {
		if td, ok := d.(*ast.TypeDecl); ok {
			c.populateType(td)
			typeDecls = append(typeDecls, td)
		}
	}
	for _, td := range typeDecls {
		c.resolveLayout(td)
	}
	for _, td := range typeDecls {
		typeScope := c.typeScopes[td]
		for _, m := range td.Members {
			c.analyzeMember(td, typeScope, m)
		}
	}

	for _, d := range file.Decls {
		if fn, ok := d.(*ast.FuncDecl); ok && fn.Body != nil {
			c.walkBody(funcContext{scope: c.module, inMethod: false}, fn.Params, fn.Body)
		}
		if v, ok := d.(*ast.VarDecl); ok {
			c.analyzeTopLevelVar(v)
		}
	}

	c.checkModifiers()

	return c.info, c.issues.Result()
}

// primeDeclIndex walks the whole arena once up front so declID never
// has to fall back to its linear scan mid-pass.
func (c *Checker) primeDeclIndex() {
	for id := ast.DeclID(1); int(id) <= c.ctx.Len(); id++ {
		d := c.ctx.Decl(id)
		c.declIDs[d] = id
		c.info.DeclByID[id] = d
	}
}

// mergeExtensions folds each ExtensionDecl's members into the TypeDecl
// it names. An extension introduces no new module-scope name of its
// own — it is not declared alongside the type it extends — so this
// runs after declareModule rather than through it.
func (c *Checker) mergeExtensions(decls []ast.Decl) {
	for _, d := range decls {
		ext, ok := d.(*ast.ExtensionDecl)
		if !ok {
			continue
		}
		target := c.lookupTypeDecl(ext.TypeName)
		if target == nil {
			c.issues.Collect(diag.NewIssue(diag.Error, diag.E_UNKNOWN_TYPE,
				"'"+ext.TypeName+"' does not name a type").WithSpan(ext.Span()).Build())
			continue
		}
		target.Members = append(target.Members, ext.Members...)
	}
}

func (c *Checker) declareModule(d ast.Decl) {
	name := d.DeclName()
	if name == "" {
		return
	}
	if conflict, ok := c.module.declare(name, d); !ok {
		c.redeclaration(name, d.Span(), conflict)
	}
	if td, ok := d.(*ast.TypeDecl); ok {
		c.info.DeclTypes[td] = c.interner.Named(td.Name, c.declID(td))
	}
}

// populateType declares decl's type scope and stored fields and
// synthesizes any implicit initializer/deinitializer. It does not
// compute decl's layout or walk method bodies: layout computation runs
// afterward in dependency order across every type in the file (see
// resolveLayout), and member bodies are walked only once every type's
// scope exists, so a method on one type can reference another type
// declared later in the same file.
func (c *Checker) populateType(decl *ast.TypeDecl) {
	indirect := c.isIndirect(decl)
	c.info.Indirect[decl] = indirect
	typeScope := newScope(TypeScope, c.module)
	c.typeScopes[decl] = typeScope

	var fields []fieldEntry
	for _, m := range decl.Members {
		if v, ok := m.(*ast.VarDecl); ok {
			if conflict, ok := typeScope.declare(v.Name, v); !ok {
				c.redeclaration(v.Name, v.Span(), conflict)
			}
			var typ *types.Type
			if v.Type != nil {
				typ = c.resolveTypeRef(typeScope, v.Type)
			} else {
				typ = types.ErrorType
			}
			c.info.DeclTypes[v] = typ
			fields = append(fields, fieldEntry{decl: v, typ: typ})
			continue
		}
		if name := m.DeclName(); name != "" {
			if conflict, ok := typeScope.declare(name, m); !ok {
				c.redeclaration(name, m.Span(), conflict)
			}
		}
	}

	c.synthesizeMembers(decl, fields, indirect)
	c.fields[decl] = fields
}

func (c *Checker) analyzeMember(owner *ast.TypeDecl, typeScope *Scope, m ast.Decl) {
	ctx := funcContext{scope: typeScope, inMethod: true, typeDecl: owner}
	switch d := m.(type) {
	case *ast.FuncDecl:
		ctx.inMethod = !d.Attributes().Has(ast.Static)
		if d.Body != nil {
			c.walkBody(ctx, d.Params, d.Body)
		}
	case *ast.InitDecl:
		c.walkBody(ctx, d.Params, d.Body)
	case *ast.DeinitDecl:
		c.walkBody(ctx, nil, d.Body)
	case *ast.PropertyGetterDecl:
		c.walkBody(ctx, nil, d.Body)
	case *ast.PropertySetterDecl:
		var params []*ast.ParamDecl
		if d.Param != nil {
			params = []*ast.ParamDecl{d.Param}
		}
		c.walkBody(ctx, params, d.Body)
	}
}

func (c *Checker) analyzeTopLevelVar(v *ast.VarDecl) {
	var typ *types.Type
	if v.Type != nil {
		typ = c.resolveTypeRef(c.module, v.Type)
	}
	if v.Init != nil {
		c.walkExpr(funcContext{scope: c.module}, v.Init)
		if typ == nil {
			typ = types.ErrorType
		}
	}
	if typ == nil {
		typ = types.ErrorType
	}
	c.info.DeclTypes[v] = typ
}

func (c *Checker) reportCycle(chain []*ast.TypeDecl) {
	b := diag.NewIssue(diag.Error, diag.E_DECLARATION_CYCLE,
		"'"+chain[0].Name+"' has a cyclic stored-field layout").
		WithSpan(chain[0].Span())
	for _, link := range chain[1:] {
		b = b.WithRelated(location.RelatedInfo{Span: link.Span(), Message: location.MsgDeclaredHere})
	}
	c.issues.Collect(b.Build())
}
