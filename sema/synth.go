package sema

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/token"
)

// synthesizeMembers implements the language reference point 3: "every non-foreign
// type receives a member-wise initializer if none is declared; every
// `indirect type` receives a deinitializer stub if none is declared."
// The synthesized declarations are appended to decl.Members and
// registered in the arena so later passes (layout, IR generation) see
// them exactly like source-written members.
func (c *Checker) synthesizeMembers(decl *ast.TypeDecl, fields []fieldEntry, indirect bool) {
	if decl.Attributes().Has(ast.Foreign) {
		return
	}

	hasInit, hasDeinit := false, false
	for _, m := range decl.Members {
		switch m.(type) {
		case *ast.InitDecl:
			hasInit = true
		case *ast.DeinitDecl:
			hasDeinit = true
		}
	}

	if !hasInit {
		span := decl.Span()
		params := make([]*ast.ParamDecl, len(fields))
		body := make([]ast.Stmt, len(fields))
		for i, f := range fields {
			p := ast.NewParamDecl(span, f.decl.Name, f.decl.Name, f.decl.Type, false)
			p.SetAttributes(ast.Implicit)
			c.register(p)
			params[i] = p

			self := ast.NewVariableRefExpr(span, "self")
			assign := ast.NewInfixExpr(span, token.Assign,
				ast.NewFieldLookupExpr(span, self, f.decl.Name),
				ast.NewVariableRefExpr(span, f.decl.Name))
			body[i] = ast.NewExprStmt(span, assign)
		}
		init := ast.NewInitDecl(span, params, ast.NewCompoundStmt(span, body))
		init.SetAttributes(ast.Implicit)
		c.register(init)
		decl.Members = append(decl.Members, init)
	}

	if indirect && !hasDeinit {
		span := decl.Span()
		deinit := ast.NewDeinitDecl(span, ast.NewCompoundStmt(span, nil))
		deinit.SetAttributes(ast.Implicit)
		c.register(deinit)
		decl.Members = append(decl.Members, deinit)
	}
}
