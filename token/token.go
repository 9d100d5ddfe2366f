package token

import "github.com/trill-lang/trillc/location"

// Token is a tagged value produced by the lexer: {kind, text, range} per
// the language reference "Token". Text is the raw source spelling; decoded literal
// values (escaped strings, char scalars, numeric values) are computed
// on demand via Token's accessor methods rather than stored eagerly,
// since most tokens are never asked for their decoded value.
type Token struct {
	Kind Kind
	Text string
	Span location.Span
}

// New constructs a Token. There is no builder ceremony here (unlike
// diag.Issue) because Token carries no invariants beyond its three fields
// being set consistently, and it is produced exclusively by the lexer in
// a single hot loop where allocation-free construction matters.
func New(kind Kind, text string, span location.Span) Token {
	return Token{Kind: kind, Text: text, Span: span}
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

// IsEOF reports whether the token is the sentinel end-of-file token.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

// String renders the token for diagnostics and debugging, e.g.
// "IDENT(foo)" or "+" for single-spelling kinds.
func (t Token) String() string {
	switch t.Kind {
	case Identifier, IntLiteral, FloatLiteral, CharLiteral, StringLiteral:
		return t.Kind.String() + "(" + t.Text + ")"
	default:
		return t.Kind.String()
	}
}
