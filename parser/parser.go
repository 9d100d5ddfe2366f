package parser

import (
	"fmt"

	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/lexer"
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/token"
)

// Parser turns one source file's token stream into an ast.File. A
// Parser pulls tokens lazily from a lexer.Lexer one at a time, keeping
// at most one token of lookahead buffered — the grammar never needs
// more.
type Parser struct {
	lx     *lexer.Lexer
	issues *diag.Collector
	ctx    *ast.Context

	tok    token.Token
	peeked *token.Token
}

// New creates a Parser over content from source, reporting lexer and
// parser diagnostics alike to issues.
func New(source location.SourceID, content []byte, issues *diag.Collector) *Parser {
	p := &Parser{
		lx:     lexer.New(source, content, issues),
		issues: issues,
		ctx:    ast.NewContext(source.String()),
	}
	p.tok = p.lx.Next()
	return p
}

// ParseFile parses a complete compilation unit: every top-level
// declaration, in source order, until EOF. A syntax error in one
// top-level declaration does not abort parsing the rest — the parser
// reports a diagnostic, resynchronizes, and continues, per the
// grammar's error-recovery rule.
func (p *Parser) ParseFile() *ast.File {
	var decls []ast.Decl
	for !p.at(token.EOF) {
		before := p.tok
		d := p.parseTopLevelDecl()
		if d != nil {
			decls = append(decls, d)
			continue
		}
		// parseTopLevelDecl already reported a diagnostic; resynchronize.
		// Guard against a parse that consumed no tokens at all, which
		// would otherwise loop forever.
		if p.tok == before {
			p.advance()
		}
		p.syncToTopLevel()
	}
	return ast.NewFile(p.ctx, decls)
}

// Context returns the ast.Context this parser registered every
// declaration into.
func (p *Parser) Context() *ast.Context { return p.ctx }

func (p *Parser) at(k token.Kind) bool { return p.tok.Kind == k }

func (p *Parser) atAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

// advance consumes and returns the current token, then refills it from
// the lookahead buffer or the lexer.
func (p *Parser) advance() token.Token {
	cur := p.tok
	if p.peeked != nil {
		p.tok = *p.peeked
		p.peeked = nil
	} else if !cur.IsEOF() {
		p.tok = p.lx.Next()
	}
	return cur
}

// peekNext returns the token after the current one without consuming
// either.
func (p *Parser) peekNext() token.Token {
	if p.peeked == nil {
		t := p.lx.Next()
		p.peeked = &t
	}
	return *p.peeked
}

// expect consumes the current token if it has kind k, reporting a
// diagnostic and leaving the cursor unmoved otherwise.
func (p *Parser) expect(k token.Kind, what string) (token.Token, bool) {
	if !p.at(k) {
		p.errorf("expected %s, found %q", what, p.tok.Kind.String())
		return token.Token{}, false
	}
	return p.advance(), true
}

func (p *Parser) errorf(format string, args ...any) {
	p.issues.Collect(
		diag.NewIssue(diag.Error, diag.E_SYNTAX, fmt.Sprintf(format, args...)).
			WithSpan(p.tok.Span).
			Build(),
	)
}

// topLevelStarters are the token kinds that begin a new top-level
// declaration; syncToTopLevel stops at the first one it finds so a
// malformed declaration doesn't swallow the rest of the file.
var topLevelStarters = []token.Kind{
	token.KwFunc, token.KwType, token.KwVar, token.KwLet,
	token.KwExtension, token.KwProtocol, token.KwOperator,
	token.KwForeign, token.KwStatic,
}

// syncToTopLevel discards tokens until the next `;`, `}`, a top-level
// starter keyword, or EOF, per the language reference's recovery rule.
func (p *Parser) syncToTopLevel() {
	for !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			return
		}
		if p.at(token.RBrace) || p.atAny(topLevelStarters...) {
			return
		}
		p.advance()
	}
}

// syncStatement discards tokens until the next `;`, `}`, or EOF, used
// to recover from a malformed statement inside a function body.
func (p *Parser) syncStatement() {
	for !p.at(token.EOF) && !p.at(token.RBrace) {
		if p.at(token.Semicolon) {
			p.advance()
			return
		}
		p.advance()
	}
}

// register adds d to the parser's Context arena so it has a DeclID
// other nodes can later resolve a reference to, then returns d
// unchanged for inline use at each declaration's construction site.
func (p *Parser) register(d ast.Decl) ast.Decl {
	p.ctx.AddDecl(d)
	return d
}
