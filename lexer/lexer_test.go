package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/token"
)

func tokenize(t *testing.T, src string) ([]token.Token, *diag.Collector) {
	t.Helper()
	source := location.MustNewSourceID("test://lexer.trill")
	issues := diag.NewCollectorUnlimited()
	lx := New(source, []byte(src), issues)
	return lx.Tokenize(), issues
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLexer_EmptyInput(t *testing.T) {
	tokens, issues := tokenize(t, "")
	require.Len(t, tokens, 1)
	assert.True(t, tokens[0].IsEOF())
	assert.False(t, issues.HasErrors())
}

func TestLexer_Identifiers(t *testing.T) {
	tokens, _ := tokenize(t, "foo bar_baz _leading camelCase123")
	require.Len(t, tokens, 5) // 4 idents + EOF
	for i, want := range []string{"foo", "bar_baz", "_leading", "camelCase123"} {
		assert.Equal(t, token.Identifier, tokens[i].Kind)
		assert.Equal(t, want, tokens[i].Text)
	}
}

func TestLexer_Keywords(t *testing.T) {
	tokens, _ := tokenize(t, "func type var let if else return nil true false")
	want := []token.Kind{
		token.KwFunc, token.KwType, token.KwVar, token.KwLet, token.KwIf,
		token.KwElse, token.KwReturn, token.KwNil, token.KwTrue, token.KwFalse,
		token.EOF,
	}
	assert.Equal(t, want, kinds(tokens))
}

func TestLexer_IntegerLiterals(t *testing.T) {
	tokens, _ := tokenize(t, "42 0x1F 0o17 0b101 1_000_000")
	for i, want := range []string{"42", "0x1F", "0o17", "0b101", "1_000_000"} {
		assert.Equal(t, token.IntLiteral, tokens[i].Kind)
		assert.Equal(t, want, tokens[i].Text)
	}
}

func TestLexer_FloatLiterals(t *testing.T) {
	tokens, _ := tokenize(t, "3.14 1e10 1.5e-3 2.")
	assert.Equal(t, token.FloatLiteral, tokens[0].Kind)
	assert.Equal(t, "3.14", tokens[0].Text)
	assert.Equal(t, token.FloatLiteral, tokens[1].Kind)
	assert.Equal(t, "1e10", tokens[1].Text)
	assert.Equal(t, token.FloatLiteral, tokens[2].Kind)
	assert.Equal(t, "1.5e-3", tokens[2].Text)
	// "2." without a following digit: '.' is not part of the number.
	assert.Equal(t, token.IntLiteral, tokens[3].Kind)
	assert.Equal(t, "2", tokens[3].Text)
	assert.Equal(t, token.Dot, tokens[4].Kind)
}

func TestLexer_SuffixIsAdjacentIdentifier(t *testing.T) {
	tokens, _ := tokenize(t, "42u8")
	assert.Equal(t, token.IntLiteral, tokens[0].Kind)
	assert.Equal(t, "42", tokens[0].Text)
	assert.Equal(t, token.Identifier, tokens[1].Kind)
	assert.Equal(t, "u8", tokens[1].Text)
}

func TestLexer_StringLiteral(t *testing.T) {
	tokens, issues := tokenize(t, `"hello world"`)
	require.False(t, issues.HasErrors())
	assert.Equal(t, token.StringLiteral, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Text)
}

func TestLexer_StringLiteralWithEscapes(t *testing.T) {
	tokens, _ := tokenize(t, `"line\nbreak"`)
	assert.Equal(t, token.StringLiteral, tokens[0].Kind)
	assert.Equal(t, `line\nbreak`, tokens[0].Text)

	decoded, err := token.DecodeString(tokens[0].Text)
	require.NoError(t, err)
	assert.Equal(t, "line\nbreak", decoded)
}

func TestLexer_StringLiteralEscapedQuoteDoesNotTerminate(t *testing.T) {
	tokens, issues := tokenize(t, `"a\"b"`)
	require.False(t, issues.HasErrors())
	assert.Equal(t, `a\"b`, tokens[0].Text)
}

func TestLexer_UnterminatedString(t *testing.T) {
	_, issues := tokenize(t, `"unterminated`)
	assert.True(t, issues.HasErrors())
	result := issues.Result()
	msgs := result.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "unterminated string")
}

func TestLexer_CharLiteral(t *testing.T) {
	tokens, issues := tokenize(t, `'a'`)
	require.False(t, issues.HasErrors())
	assert.Equal(t, token.CharLiteral, tokens[0].Kind)
	assert.Equal(t, "a", tokens[0].Text)
}

func TestLexer_CharLiteralEscape(t *testing.T) {
	tokens, _ := tokenize(t, `'\n'`)
	assert.Equal(t, token.CharLiteral, tokens[0].Kind)
	decoded, err := token.DecodeChar(tokens[0].Text)
	require.NoError(t, err)
	assert.Equal(t, '\n', decoded)
}

func TestLexer_UnterminatedChar(t *testing.T) {
	_, issues := tokenize(t, `'a`)
	assert.True(t, issues.HasErrors())
}

func TestLexer_LineComment(t *testing.T) {
	tokens, _ := tokenize(t, "foo // this is a comment\nbar")
	require.Len(t, tokens, 3)
	assert.Equal(t, "foo", tokens[0].Text)
	assert.Equal(t, "bar", tokens[1].Text)
}

func TestLexer_BlockComment(t *testing.T) {
	tokens, issues := tokenize(t, "foo /* comment\nspanning lines */ bar")
	require.False(t, issues.HasErrors())
	require.Len(t, tokens, 3)
	assert.Equal(t, "foo", tokens[0].Text)
	assert.Equal(t, "bar", tokens[1].Text)
}

func TestLexer_UnterminatedBlockComment(t *testing.T) {
	_, issues := tokenize(t, "foo /* never closed")
	assert.True(t, issues.HasErrors())
	msgs := issues.Result().Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "unterminated block comment")
}

func TestLexer_PoundDirectives(t *testing.T) {
	tokens, issues := tokenize(t, `#function #file #error "msg" #warning "msg"`)
	require.False(t, issues.HasErrors())
	want := []token.Kind{
		token.PoundFunction, token.PoundFile, token.PoundError,
		token.StringLiteral, token.PoundWarning, token.StringLiteral,
		token.EOF,
	}
	assert.Equal(t, want, kinds(tokens))
}

func TestLexer_UnknownPoundDirective(t *testing.T) {
	_, issues := tokenize(t, "#bogus")
	assert.True(t, issues.HasErrors())
}

func TestLexer_Operators_GreedyLongestMatch(t *testing.T) {
	tokens, _ := tokenize(t, "<<= >> -> => == != && || ... + - * /")
	want := []token.Kind{
		token.ShlAssign, token.Shr, token.Arrow, token.FatArrow, token.Eq,
		token.Ne, token.AndAnd, token.OrOr, token.Ellipsis,
		token.Plus, token.Minus, token.Star, token.Slash, token.EOF,
	}
	assert.Equal(t, want, kinds(tokens))
}

func TestLexer_Punctuation(t *testing.T) {
	tokens, _ := tokenize(t, "(){}[],;:.")
	want := []token.Kind{
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.LBracket, token.RBracket, token.Comma, token.Semicolon,
		token.Colon, token.Dot, token.EOF,
	}
	assert.Equal(t, want, kinds(tokens))
}

func TestLexer_UnexpectedCharacterRecovers(t *testing.T) {
	tokens, issues := tokenize(t, "foo @ bar")
	assert.True(t, issues.HasErrors())
	// Lexing continues past the bad character and still yields both idents.
	require.Len(t, tokens, 3)
	assert.Equal(t, "foo", tokens[0].Text)
	assert.Equal(t, "bar", tokens[1].Text)
}

func TestLexer_SpanTracksLineAndColumn(t *testing.T) {
	tokens, _ := tokenize(t, "foo\n  bar")
	require.Len(t, tokens, 3)

	fooSpan := tokens[0].Span
	assert.Equal(t, 1, fooSpan.Start.Line)
	assert.Equal(t, 1, fooSpan.Start.Column)

	barSpan := tokens[1].Span
	assert.Equal(t, 2, barSpan.Start.Line)
	assert.Equal(t, 3, barSpan.Start.Column)
}

func TestLexer_UnicodeIdentifier(t *testing.T) {
	tokens, issues := tokenize(t, "café")
	require.False(t, issues.HasErrors())
	require.Len(t, tokens, 2)
	assert.Equal(t, token.Identifier, tokens[0].Kind)
	assert.Equal(t, "café", tokens[0].Text)
}

func TestLexer_Restartable(t *testing.T) {
	source := location.MustNewSourceID("test://restart.trill")
	issues := diag.NewCollectorUnlimited()
	lx := New(source, []byte("foo bar"), issues)

	first := lx.Next()
	assert.Equal(t, "foo", first.Text)

	second := lx.Next()
	assert.Equal(t, "bar", second.Text)

	third := lx.Next()
	assert.True(t, third.IsEOF())

	// Calling Next again after EOF keeps returning EOF.
	fourth := lx.Next()
	assert.True(t, fourth.IsEOF())
}
