package parser

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/token"
)

// parseStmt parses one statement. Returns nil (after reporting a
// diagnostic) on a syntax error; the caller is responsible for
// resynchronizing.
func (p *Parser) parseStmt() ast.Stmt {
	switch {
	case p.at(token.LBrace):
		return p.parseCompoundStmt()
	case p.at(token.KwIf):
		return p.parseIfStmt()
	case p.at(token.KwWhile):
		return p.parseWhileStmt()
	case p.at(token.KwFor):
		return p.parseForStmt()
	case p.at(token.KwSwitch):
		return p.parseSwitchStmt()
	case p.at(token.KwReturn):
		return p.parseReturnStmt()
	case p.at(token.KwBreak):
		tok := p.advance()
		p.consumeStmtTerminator()
		return ast.NewBreakStmt(tok.Span)
	case p.at(token.KwContinue):
		tok := p.advance()
		p.consumeStmtTerminator()
		return ast.NewContinueStmt(tok.Span)
	case p.atAny(token.KwVar, token.KwLet):
		d := p.parseVarDecl()
		if d == nil {
			return nil
		}
		p.consumeStmtTerminator()
		return ast.NewDeclStmt(d.Span(), d)
	case p.atAny(token.PoundError, token.PoundWarning):
		return p.parsePoundDiagnosticStmt()
	default:
		expr := p.parseExpr()
		if expr == nil {
			return nil
		}
		p.consumeStmtTerminator()
		return ast.NewExprStmt(expr.Span(), expr)
	}
}

// consumeStmtTerminator swallows a trailing ';' if present; the language reference's
// grammar treats it as optional (a `}` or the next statement's own
// starting token ends a statement just as well).
func (p *Parser) consumeStmtTerminator() {
	if p.at(token.Semicolon) {
		p.advance()
	}
}

// parseCompoundStmt parses a `{ … }` block.
func (p *Parser) parseCompoundStmt() *ast.CompoundStmt {
	start := p.advance().Span // consume '{'

	var stmts []ast.Stmt
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		s := p.parseStmt()
		if s == nil {
			p.syncStatement()
			continue
		}
		stmts = append(stmts, s)
	}
	end, ok := p.expect(token.RBrace, "'}'")
	if !ok {
		return ast.NewCompoundStmt(start, stmts)
	}
	return ast.NewCompoundStmt(location.Merge(start, end.Span), stmts)
}

// parseIfStmt parses `if cond { … }` with an optional `else` or
// `else if` continuation.
func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.advance().Span // consume 'if'
	cond := p.parseExpr()
	if cond == nil {
		return nil
	}
	if !p.at(token.LBrace) {
		p.errorf("expected '{' to start the if-branch body")
		return nil
	}
	then := p.parseCompoundStmt()

	span := location.Merge(start, then.Span())
	var els ast.Stmt
	if p.at(token.KwElse) {
		p.advance()
		switch {
		case p.at(token.KwIf):
			els = p.parseIfStmt()
		case p.at(token.LBrace):
			els = p.parseCompoundStmt()
		default:
			p.errorf("expected 'if' or '{' after 'else'")
			return nil
		}
		if els == nil {
			return nil
		}
		span = location.Merge(start, els.Span())
	}
	return ast.NewIfStmt(span, cond, then, els)
}

// parseWhileStmt parses `while cond { … }`.
func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.advance().Span // consume 'while'
	cond := p.parseExpr()
	if cond == nil {
		return nil
	}
	if !p.at(token.LBrace) {
		p.errorf("expected '{' to start the while body")
		return nil
	}
	body := p.parseCompoundStmt()
	return ast.NewWhileStmt(location.Merge(start, body.Span()), cond, body)
}

// parseForStmt parses the C-style `for init; cond; increment { … }`,
// where each of the three clauses may be omitted.
func (p *Parser) parseForStmt() ast.Stmt {
	start := p.advance().Span // consume 'for'

	var init ast.Stmt
	if !p.at(token.Semicolon) {
		init = p.parseForClauseStmt()
		if init == nil {
			return nil
		}
	}
	if _, ok := p.expect(token.Semicolon, "';'"); !ok {
		return nil
	}

	var cond ast.Expr
	if !p.at(token.Semicolon) {
		cond = p.parseExpr()
		if cond == nil {
			return nil
		}
	}
	if _, ok := p.expect(token.Semicolon, "';'"); !ok {
		return nil
	}

	var increment ast.Stmt
	if !p.at(token.LBrace) {
		increment = p.parseForClauseStmt()
		if increment == nil {
			return nil
		}
	}

	if !p.at(token.LBrace) {
		p.errorf("expected '{' to start the for body")
		return nil
	}
	body := p.parseCompoundStmt()
	return ast.NewForStmt(location.Merge(start, body.Span()), init, cond, increment, body)
}

// parseForClauseStmt parses one of a for-loop's init/increment
// clauses: either a var/let declaration or a bare expression, with no
// trailing terminator of its own (the surrounding ';'/'{' delimits it).
func (p *Parser) parseForClauseStmt() ast.Stmt {
	if p.atAny(token.KwVar, token.KwLet) {
		d := p.parseVarDecl()
		if d == nil {
			return nil
		}
		return ast.NewDeclStmt(d.Span(), d)
	}
	expr := p.parseExpr()
	if expr == nil {
		return nil
	}
	return ast.NewExprStmt(expr.Span(), expr)
}

// parseSwitchStmt parses `switch subject { case v, v: … default: … }`.
func (p *Parser) parseSwitchStmt() ast.Stmt {
	start := p.advance().Span // consume 'switch'
	subject := p.parseExpr()
	if subject == nil {
		return nil
	}
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil
	}

	var cases []*ast.SwitchCase
	var def *ast.CompoundStmt
	for p.atAny(token.KwCase, token.KwDefault) {
		if p.at(token.KwDefault) {
			p.advance()
			if _, ok := p.expect(token.Colon, "':'"); !ok {
				return nil
			}
			def = p.parseCaseBody()
			continue
		}

		p.advance() // consume 'case'
		var values []ast.Expr
		for {
			v := p.parseExpr()
			if v == nil {
				return nil
			}
			values = append(values, v)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
		if _, ok := p.expect(token.Colon, "':'"); !ok {
			return nil
		}
		body := p.parseCaseBody()
		cases = append(cases, &ast.SwitchCase{Values: values, Body: body})
	}

	end, ok := p.expect(token.RBrace, "'}'")
	if !ok {
		return nil
	}
	return ast.NewSwitchStmt(location.Merge(start, end.Span), subject, cases, def)
}

// parseCaseBody parses the statements of one switch arm, up to (but
// not consuming) the next `case`, `default`, or the closing `}`.
func (p *Parser) parseCaseBody() *ast.CompoundStmt {
	startSpan := p.tok.Span
	var stmts []ast.Stmt
	for !p.atAny(token.KwCase, token.KwDefault, token.RBrace, token.EOF) {
		s := p.parseStmt()
		if s == nil {
			p.syncStatement()
			continue
		}
		stmts = append(stmts, s)
	}
	span := startSpan
	if len(stmts) > 0 {
		span = location.Merge(stmts[0].Span(), stmts[len(stmts)-1].Span())
	}
	return ast.NewCompoundStmt(span, stmts)
}

// parseReturnStmt parses `return` or `return value`. A return is bare
// when the next token cannot start an expression (`}` or `;`).
func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.advance().Span // consume 'return'
	if p.at(token.Semicolon) || p.at(token.RBrace) {
		p.consumeStmtTerminator()
		return ast.NewReturnStmt(start, nil)
	}
	value := p.parseExpr()
	if value == nil {
		return nil
	}
	p.consumeStmtTerminator()
	return ast.NewReturnStmt(location.Merge(start, value.Span()), value)
}

// parsePoundDiagnosticStmt parses `#error "msg"` or `#warning "msg"`.
func (p *Parser) parsePoundDiagnosticStmt() ast.Stmt {
	kind := p.advance() // consume '#error' or '#warning'
	msgTok, ok := p.expect(token.StringLiteral, "a string literal message")
	if !ok {
		return nil
	}
	msg, err := token.DecodeString(msgTok.Text)
	if err != nil {
		p.errorf("invalid string literal: %v", err)
		return nil
	}
	p.consumeStmtTerminator()
	return ast.NewPoundDiagnosticStmt(location.Merge(kind.Span, msgTok.Span), kind.Kind, msg)
}
