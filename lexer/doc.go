// Package lexer tokenizes Trill source text into the token stream the
// parser consumes. See Lexer for the entry point.
package lexer
