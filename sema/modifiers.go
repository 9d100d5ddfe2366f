package sema

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/diag"
)

// checkModifiers implements the language reference point 6's "invalid modifiers
// (e.g. mutating on a non-method)" diagnostic: it walks every
// declaration in the arena and reports an attribute combination the
// grammar allows the parser to accept but that has no meaning at the
// declaration it landed on.
func (c *Checker) checkModifiers() {
	for id := ast.DeclID(1); int(id) <= c.ctx.Len(); id++ {
		d := c.ctx.Decl(id)
		attrs := d.Attributes()

		if attrs.Has(ast.Mutating) {
			if _, ok := d.(*ast.FuncDecl); !ok || !c.isMember(d) {
				c.invalidModifier(d, "mutating")
			}
		}
		if attrs.Has(ast.Static) {
			switch d.(type) {
			case *ast.FuncDecl, *ast.VarDecl:
				if !c.isMember(d) {
					c.invalidModifier(d, "static")
				}
			default:
				c.invalidModifier(d, "static")
			}
		}
		if attrs.Has(ast.Indirect) {
			if _, ok := d.(*ast.TypeDecl); !ok {
				c.invalidModifier(d, "indirect")
			}
		}
	}
}

// isMember reports whether d was registered as a member of some
// TypeDecl, ExtensionDecl, or ProtocolDecl rather than at module scope.
// A declaration's own arena slot carries no parent pointer, so
// membership is determined by checking whether d appears in any
// container's Members slice the module scope reached.
func (c *Checker) isMember(d ast.Decl) bool {
	for _, top := range c.module.names {
		for _, candidate := range top {
			if members, ok := membersOf(candidate); ok {
				for _, m := range members {
					if m == d {
						return true
					}
				}
			}
		}
	}
	return false
}

func membersOf(d ast.Decl) ([]ast.Decl, bool) {
	switch t := d.(type) {
	case *ast.TypeDecl:
		return t.Members, true
	case *ast.ExtensionDecl:
		return t.Members, true
	case *ast.ProtocolDecl:
		return t.Members, true
	default:
		return nil, false
	}
}

func (c *Checker) invalidModifier(d ast.Decl, name string) {
	c.issues.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_MODIFIER,
		"'"+name+"' has no meaning here").WithSpan(d.Span()).Build())
}
