package parser

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/token"
)

// modifierKeywords are the declaration-modifier tokens that may
// precede any declaration; each maps to the ast.Attributes bit it
// sets. They accumulate in any order and any combination — sema, not
// the parser, rejects a combination that doesn't make sense for the
// declaration it ends up attached to (the language reference "invalid
// modifiers").
var modifierKeywords = map[token.Kind]ast.Attributes{
	token.KwForeign:  ast.Foreign,
	token.KwStatic:   ast.Static,
	token.KwMutating: ast.Mutating,
	token.KwIndirect: ast.Indirect,
}

// parseModifiers consumes a run of leading modifier keywords and
// returns the attributes they set.
func (p *Parser) parseModifiers() ast.Attributes {
	var attrs ast.Attributes
	for {
		bit, ok := modifierKeywords[p.tok.Kind]
		if !ok {
			return attrs
		}
		p.advance()
		attrs |= bit
	}
}

// parseTopLevelDecl parses one module-level declaration: a function,
// type, type alias, extension, protocol, operator, or global
// var/let, with any leading modifiers.
func (p *Parser) parseTopLevelDecl() ast.Decl {
	attrs := p.parseModifiers()

	var d ast.Decl
	switch {
	case p.at(token.KwFunc):
		d = p.parseFuncDecl()
	case p.at(token.KwType):
		d = p.parseTypeOrAliasDecl()
	case p.at(token.KwExtension):
		d = p.parseExtensionDecl()
	case p.at(token.KwProtocol):
		d = p.parseProtocolDecl()
	case p.at(token.KwOperator):
		d = p.parseOperatorDecl()
	case p.atAny(token.KwVar, token.KwLet):
		d = p.parseVarDecl()
		if d != nil {
			p.consumeStmtTerminator()
		}
	default:
		p.errorf("expected a declaration, found %q", p.tok.Kind.String())
		return nil
	}
	if d == nil {
		return nil
	}
	if attrs != 0 {
		if setter, ok := d.(interface{ SetAttributes(ast.Attributes) }); ok {
			setter.SetAttributes(d.Attributes() | attrs)
		}
	}
	// Not registered here: ast.NewFile registers and roots every
	// top-level declaration itself once ParseFile returns the full
	// list, so registering here too would arena-allocate it twice.
	return d
}

// parseMemberDecl parses one declaration nested inside a `type`,
// `extension`, or `protocol` body: the same modifier-prefixed
// dispatch as a top-level declaration, plus the member-only forms
// init, deinit, and computed-property get/set accessors.
func (p *Parser) parseMemberDecl() ast.Decl {
	attrs := p.parseModifiers()

	var d ast.Decl
	switch {
	case p.at(token.KwFunc):
		d = p.parseFuncDecl()
	case p.at(token.KwInit):
		d = p.parseInitDecl()
	case p.at(token.KwDeinit):
		d = p.parseDeinitDecl()
	case p.at(token.KwType):
		d = p.parseTypeOrAliasDecl()
	default:
		// var/let members are intercepted by parseTypeBody before it
		// calls here, since a computed property can expand to more than
		// one declaration; this function never sees KwVar/KwLet.
		p.errorf("expected a member declaration, found %q", p.tok.Kind.String())
		return nil
	}
	if d == nil {
		return nil
	}
	if attrs != 0 {
		if setter, ok := d.(interface{ SetAttributes(ast.Attributes) }); ok {
			setter.SetAttributes(d.Attributes() | attrs)
		}
	}
	return p.register(d)
}

// parseVarDecl parses `var name: T = init` or `let name: T = init`.
// Type and initializer are each optional; typecheck reports a `let`
// that has no initializer.
func (p *Parser) parseVarDecl() ast.Decl {
	kw := p.advance() // consume 'var' or 'let'
	isLet := kw.Kind == token.KwLet

	name, ok := p.expect(token.Identifier, "a declaration name")
	if !ok {
		return nil
	}

	var typ ast.TypeRef
	if p.at(token.Colon) {
		p.advance()
		typ = p.parseTypeRef()
		if typ == nil {
			return nil
		}
	}

	var init ast.Expr
	end := name.Span
	if p.at(token.Assign) {
		p.advance()
		init = p.parseExpr()
		if init == nil {
			return nil
		}
		end = init.Span()
	} else if typ != nil {
		end = typ.Span()
	}

	return ast.NewVarDecl(location.Merge(kw.Span, end), isLet, name.Text, typ, init)
}

// parseFieldOrComputedProperty parses a type member that starts with
// `var` or `let`: either a stored field (`var name: T = init`),
// returned as a single VarDecl, or a computed property
// (`var name: T { get { … } set(v) { … } }`), returned as its getter
// and (if present) setter as separate member declarations. The two
// forms share a `name: T` prefix and are disambiguated by whether `{`
// follows it.
func (p *Parser) parseFieldOrComputedProperty() ([]ast.Decl, bool) {
	kw := p.advance() // consume 'var' or 'let'
	isLet := kw.Kind == token.KwLet

	name, ok := p.expect(token.Identifier, "a field name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, "':'"); !ok {
		return nil, false
	}
	typ := p.parseTypeRef()
	if typ == nil {
		return nil, false
	}

	if !p.at(token.LBrace) {
		var init ast.Expr
		end := typ.Span()
		if p.at(token.Assign) {
			p.advance()
			init = p.parseExpr()
			if init == nil {
				return nil, false
			}
			end = init.Span()
		}
		field := ast.NewVarDecl(location.Merge(kw.Span, end), isLet, name.Text, typ, init)
		p.consumeStmtTerminator()
		return []ast.Decl{field}, true
	}

	return p.parseComputedPropertyAccessors(name.Text, typ)
}

// parseParamList parses a Swift-style parameter list:
// `(extLabel intName: T, intName: T, …, rest: T...)`. Each parameter
// may give an external label distinct from its internal name; a
// single trailing `...` marks the last parameter variadic.
func (p *Parser) parseParamList() ([]*ast.ParamDecl, bool) {
	if _, ok := p.expect(token.LParen, "'('"); !ok {
		return nil, false
	}

	var params []*ast.ParamDecl
	if !p.at(token.RParen) {
		for {
			param, ok := p.parseParam()
			if !ok {
				return nil, false
			}
			params = append(params, param)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expect(token.RParen, "')'"); !ok {
		return nil, false
	}
	return params, true
}

// parseParam parses one parameter: `name: T`, `extLabel name: T`, or
// either form with a trailing `...` marking it variadic. A leading
// "_" external label (already the lexed identifier text) means the
// parameter is positional-only at call sites.
func (p *Parser) parseParam() (*ast.ParamDecl, bool) {
	start := p.tok.Span
	first, ok := p.expect(token.Identifier, "a parameter name")
	if !ok {
		return nil, false
	}

	externalLabel := first.Text
	name := first.Text
	if p.at(token.Identifier) {
		internal := p.advance()
		name = internal.Text
	}

	if _, ok := p.expect(token.Colon, "':'"); !ok {
		return nil, false
	}
	typ := p.parseTypeRef()
	if typ == nil {
		return nil, false
	}

	variadic := false
	end := typ.Span()
	if p.at(token.Ellipsis) {
		end = p.advance().Span
		variadic = true
	}

	param := ast.NewParamDecl(location.Merge(start, end), externalLabel, name, typ, variadic)
	p.register(param)
	return param, true
}

// parseFuncDecl parses `func name(params…) -> R { … }`, or with no
// body when the declaration carries the `foreign` modifier (checked by
// the caller, not here — this function parses a body only when `{`
// immediately follows the signature, and otherwise consumes an
// optional statement terminator).
func (p *Parser) parseFuncDecl() ast.Decl {
	start := p.advance().Span // consume 'func'
	name, ok := p.expect(token.Identifier, "a function name")
	if !ok {
		return nil
	}
	params, ok := p.parseParamList()
	if !ok {
		return nil
	}

	var returnType ast.TypeRef
	if p.at(token.Arrow) {
		p.advance()
		returnType = p.parseTypeRef()
		if returnType == nil {
			return nil
		}
	}

	end := name.Span
	if returnType != nil {
		end = returnType.Span()
	}

	var body *ast.CompoundStmt
	if p.at(token.LBrace) {
		body = p.parseCompoundStmt()
		end = body.Span()
	} else {
		p.consumeStmtTerminator()
	}

	return ast.NewFuncDecl(location.Merge(start, end), name.Text, params, returnType, body)
}

// parseInitDecl parses a type's `init(params…) { … }`.
func (p *Parser) parseInitDecl() ast.Decl {
	start := p.advance().Span // consume 'init'
	params, ok := p.parseParamList()
	if !ok {
		return nil
	}
	if !p.at(token.LBrace) {
		p.errorf("expected '{' to start the initializer body")
		return nil
	}
	body := p.parseCompoundStmt()
	return ast.NewInitDecl(location.Merge(start, body.Span()), params, body)
}

// parseDeinitDecl parses a type's `deinit { … }`.
func (p *Parser) parseDeinitDecl() ast.Decl {
	start := p.advance().Span // consume 'deinit'
	if !p.at(token.LBrace) {
		p.errorf("expected '{' to start the deinitializer body")
		return nil
	}
	body := p.parseCompoundStmt()
	return ast.NewDeinitDecl(location.Merge(start, body.Span()), body)
}

// parseTypeOrAliasDecl parses `type Name { … }` or `type Name = T`,
// distinguished by peeking past the name for `=`.
func (p *Parser) parseTypeOrAliasDecl() ast.Decl {
	start := p.advance().Span // consume 'type'
	name, ok := p.expect(token.Identifier, "a type name")
	if !ok {
		return nil
	}

	if p.at(token.Assign) {
		p.advance()
		target := p.parseTypeRef()
		if target == nil {
			return nil
		}
		decl := ast.NewTypeAliasDecl(location.Merge(start, target.Span()), name.Text, target)
		p.consumeStmtTerminator()
		return decl
	}

	members, end, ok := p.parseTypeBody()
	if !ok {
		return nil
	}
	return ast.NewTypeDecl(location.Merge(start, end), name.Text, members)
}

// parseExtensionDecl parses `extension Name { … }`.
func (p *Parser) parseExtensionDecl() ast.Decl {
	start := p.advance().Span // consume 'extension'
	name, ok := p.expect(token.Identifier, "a type name")
	if !ok {
		return nil
	}
	members, end, ok := p.parseTypeBody()
	if !ok {
		return nil
	}
	return ast.NewExtensionDecl(location.Merge(start, end), name.Text, members)
}

// parseProtocolDecl parses `protocol Name { … }`.
func (p *Parser) parseProtocolDecl() ast.Decl {
	start := p.advance().Span // consume 'protocol'
	name, ok := p.expect(token.Identifier, "a protocol name")
	if !ok {
		return nil
	}
	members, end, ok := p.parseTypeBody()
	if !ok {
		return nil
	}
	return ast.NewProtocolDecl(location.Merge(start, end), name.Text, members)
}

// parseTypeBody parses the `{ … }` member list shared by type,
// extension, and protocol declarations, including computed
// properties, whose get/set accessors each expand to their own member
// declaration in the returned list.
func (p *Parser) parseTypeBody() ([]ast.Decl, location.Span, bool) {
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, location.Span{}, false
	}

	var members []ast.Decl
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.atAny(token.KwVar, token.KwLet) {
			decls, ok := p.parseFieldOrComputedProperty()
			if !ok {
				p.syncToTopLevel()
				continue
			}
			for _, d := range decls {
				members = append(members, p.register(d))
			}
			continue
		}
		d := p.parseMemberDecl()
		if d == nil {
			p.syncToTopLevel()
			continue
		}
		members = append(members, d)
	}
	end, ok := p.expect(token.RBrace, "'}'")
	if !ok {
		return members, p.tok.Span, false
	}
	return members, end.Span, true
}

// parseComputedPropertyAccessors parses the `{ get { … } set(v) { … } }`
// body of a computed property named name with declared type typ, and
// returns its getter and (if present) setter as separate member
// declarations.
func (p *Parser) parseComputedPropertyAccessors(name string, typ ast.TypeRef) ([]ast.Decl, bool) {
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}

	var decls []ast.Decl
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		switch {
		case p.isContextualIdent("get"):
			start := p.advance().Span
			if !p.at(token.LBrace) {
				p.errorf("expected '{' to start the getter body")
				return nil, false
			}
			body := p.parseCompoundStmt()
			decls = append(decls, ast.NewPropertyGetterDecl(location.Merge(start, body.Span()), name, typ, body))

		case p.isContextualIdent("set"):
			start := p.advance().Span
			var param *ast.ParamDecl
			if p.at(token.LParen) {
				p.advance()
				if p.at(token.Identifier) {
					pn := p.advance()
					param = ast.NewParamDecl(pn.Span, pn.Text, pn.Text, nil, false)
					p.register(param)
				}
				if _, ok := p.expect(token.RParen, "')'"); !ok {
					return nil, false
				}
			}
			if !p.at(token.LBrace) {
				p.errorf("expected '{' to start the setter body")
				return nil, false
			}
			body := p.parseCompoundStmt()
			decls = append(decls, ast.NewPropertySetterDecl(location.Merge(start, body.Span()), name, param, body))

		default:
			p.errorf("expected 'get' or 'set' in a computed property body")
			return nil, false
		}
	}
	if _, ok := p.expect(token.RBrace, "'}'"); !ok {
		return nil, false
	}
	return decls, true
}

// isContextualIdent reports whether the current token is an
// identifier spelled exactly text — `get` and `set` are not reserved
// words, only recognized by spelling inside a computed property body.
func (p *Parser) isContextualIdent(text string) bool {
	return p.at(token.Identifier) && p.tok.Text == text
}

// parseOperatorDecl parses `operator symbol` or `operator prefix symbol`.
func (p *Parser) parseOperatorDecl() ast.Decl {
	start := p.advance().Span // consume 'operator'
	prefix := false
	if p.isContextualIdent("prefix") {
		p.advance()
		prefix = true
	}
	sym, ok := p.expectOperatorSymbol()
	if !ok {
		return nil
	}
	decl := ast.NewOperatorDecl(location.Merge(start, sym.Span), sym.Text, prefix)
	p.consumeStmtTerminator()
	return decl
}

// expectOperatorSymbol consumes the token spelling an operator's
// symbol: any punctuation/operator-kind token, reported by its
// canonical spelling.
func (p *Parser) expectOperatorSymbol() (token.Token, bool) {
	if token.IsKeyword(p.tok.Kind) || p.atAny(token.Identifier, token.EOF) {
		p.errorf("expected an operator symbol")
		return token.Token{}, false
	}
	tok := p.tok
	tok.Text = tok.Kind.String()
	p.advance()
	return tok, true
}
