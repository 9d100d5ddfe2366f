package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_Keyword(t *testing.T) {
	kind, ok := Lookup("func")
	assert.True(t, ok)
	assert.Equal(t, KwFunc, kind)
}

func TestLookup_NotKeyword(t *testing.T) {
	kind, ok := Lookup("myVariable")
	assert.False(t, ok)
	assert.Equal(t, Kind(0), kind)
}

func TestLookup_AllSpecKeywords(t *testing.T) {
	words := []string{
		"func", "type", "indirect", "extension", "protocol", "var", "let",
		"if", "else", "for", "while", "switch", "case", "default", "break",
		"continue", "return", "nil", "true", "false", "as", "is", "sizeof",
		"init", "deinit", "foreign", "static", "mutating", "operator",
	}
	for _, w := range words {
		_, ok := Lookup(w)
		assert.True(t, ok, "expected %q to be a recognized keyword", w)
	}
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword(KwFunc))
	assert.True(t, IsKeyword(KwOperator))
	assert.False(t, IsKeyword(Identifier))
	assert.False(t, IsKeyword(Plus))
	assert.False(t, IsKeyword(EOF))
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{Identifier, "IDENT"},
		{KwFunc, "func"},
		{Plus, "+"},
		{Arrow, "->"},
		{Ellipsis, "..."},
		{PoundError, "#error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestKind_String_Unknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", Kind(99999).String())
}

func TestOperators_GreedyOrdering(t *testing.T) {
	ops := Operators()

	index := make(map[string]int, len(ops))
	for i, op := range ops {
		index[op.Text] = i
	}

	// Every multi-char operator must appear before any shorter operator
	// sharing its prefix, so a greedy longest-match scan picks it first.
	longBeforeShort := []struct{ long, short string }{
		{"<<=", "<<"}, {"<<", "<"},
		{">>=", ">>"}, {">>", ">"},
		{"==", "="}, {"!=", "!"}, {"<=", "<"}, {">=", ">"},
		{"&&", "&"}, {"||", "|"},
		{"+=", "+"}, {"-=", "-"}, {"*=", "*"}, {"/=", "/"}, {"%=", "%"},
		{"&=", "&"}, {"|=", "|"}, {"^=", "^"},
		{"->", "-"}, {"...", "."},
	}
	for _, pair := range longBeforeShort {
		longIdx, ok := index[pair.long]
		assert.True(t, ok, "missing operator %q", pair.long)
		shortIdx, ok := index[pair.short]
		assert.True(t, ok, "missing operator %q", pair.short)
		assert.Less(t, longIdx, shortIdx, "%q must be tried before %q", pair.long, pair.short)
	}
}

func TestLookupPound(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"function", PoundFunction},
		{"file", PoundFile},
		{"error", PoundError},
		{"warning", PoundWarning},
	}
	for _, tt := range tests {
		kind, ok := LookupPound(tt.name)
		assert.True(t, ok)
		assert.Equal(t, tt.want, kind)
	}
}

func TestLookupPound_Unknown(t *testing.T) {
	_, ok := LookupPound("unknown")
	assert.False(t, ok)
}
