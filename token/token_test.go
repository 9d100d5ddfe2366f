package token

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trill-lang/trillc/location"
)

func TestToken_Is(t *testing.T) {
	tok := New(Identifier, "foo", location.Span{})
	assert.True(t, tok.Is(Identifier))
	assert.False(t, tok.Is(KwFunc))
}

func TestToken_IsEOF(t *testing.T) {
	eof := New(EOF, "", location.Span{})
	assert.True(t, eof.IsEOF())

	ident := New(Identifier, "x", location.Span{})
	assert.False(t, ident.IsEOF())
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{New(Identifier, "foo", location.Span{}), "IDENT(foo)"},
		{New(IntLiteral, "42", location.Span{}), "INT(42)"},
		{New(Plus, "+", location.Span{}), "+"},
		{New(KwFunc, "func", location.Span{}), "func"},
		{New(EOF, "", location.Span{}), "EOF"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tok.String())
	}
}
