// Package token defines the closed set of lexical token kinds, the Token
// value type, and literal-decoding helpers (integer/float numeric parsing,
// char/string escape expansion) shared by the lexer and parser.
package token
