// Package parser implements the predictive recursive-descent parser
// with operator-precedence climbing for infix expressions described in
// the language reference, producing a module-level ast.File from a lexer.Lexer's
// token stream.
package parser
