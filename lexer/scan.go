package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/token"
)

// skipWhitespaceAndComments advances past runs of whitespace, "//" line
// comments, and "/* ... */" block comments (non-nesting, per the language reference).
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEOF() {
		r := l.peek()
		switch {
		case unicode.IsSpace(r):
			l.advance()
		case r == '/' && l.peekAt(1) == '/':
			l.skipLineComment()
		case r == '/' && l.peekAt(1) == '*':
			l.skipBlockComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipLineComment() {
	for !l.atEOF() && l.peek() != '\n' {
		l.advance()
	}
}

func (l *Lexer) skipBlockComment() {
	startLine, startColumn, startPos := l.line, l.column, l.pos
	l.advance() // '/'
	l.advance() // '*'
	for {
		if l.atEOF() {
			l.reportSpanf(startLine, startColumn, startPos, "unterminated block comment")
			return
		}
		if l.peek() == '*' && l.peekAt(1) == '/' {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}
}

// reportSpanf reports a diagnostic over an explicit span rather than the
// in-progress token scan's markStart, used when the error location predates
// the current Next() call (e.g. an unterminated comment spans tokens).
func (l *Lexer) reportSpanf(startLine, startColumn, startPos int, format string, args ...any) {
	span := location.RangeWithBytes(l.source, startLine, startColumn, startPos, l.line, l.column, l.pos)
	l.issues.Collect(
		diag.NewIssue(diag.Error, diag.E_SYNTAX, fmt.Sprintf(format, args...)).
			WithSpan(span).
			Build(),
	)
}

// lexIdentifierOrKeyword scans `[A-Za-z_][A-Za-z0-9_]*` and classifies it
// against the closed keyword set.
func (l *Lexer) lexIdentifierOrKeyword() token.Token {
	var sb strings.Builder
	for !l.atEOF() && isIdentContinue(l.peek()) {
		sb.WriteRune(l.advance())
	}
	text := sb.String()
	if kind, ok := token.Lookup(text); ok {
		return l.emit(kind, text)
	}
	return l.emit(token.Identifier, text)
}

// lexNumber scans an integer or float literal per the language reference: decimal,
// 0x/0o/0b integer bases with '_' digit separators, or a float with '.'
// and/or an exponent. Trailing suffix-like letters are left for the next
// Next() call to lex as an adjacent identifier.
func (l *Lexer) lexNumber() token.Token {
	var sb strings.Builder

	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X' ||
		l.peekAt(1) == 'o' || l.peekAt(1) == 'O' ||
		l.peekAt(1) == 'b' || l.peekAt(1) == 'B') {
		sb.WriteRune(l.advance()) // '0'
		sb.WriteRune(l.advance()) // base letter
		for !l.atEOF() && (isHexDigit(l.peek()) || l.peek() == '_') {
			sb.WriteRune(l.advance())
		}
		return l.emit(token.IntLiteral, sb.String())
	}

	for !l.atEOF() && (isDigit(l.peek()) || l.peek() == '_') {
		sb.WriteRune(l.advance())
	}

	isFloat := false
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		isFloat = true
		sb.WriteRune(l.advance()) // '.'
		for !l.atEOF() && (isDigit(l.peek()) || l.peek() == '_') {
			sb.WriteRune(l.advance())
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		sb.WriteRune(l.advance())
		if l.peek() == '+' || l.peek() == '-' {
			sb.WriteRune(l.advance())
		}
		for !l.atEOF() && isDigit(l.peek()) {
			sb.WriteRune(l.advance())
		}
	}

	if isFloat {
		return l.emit(token.FloatLiteral, sb.String())
	}
	return l.emit(token.IntLiteral, sb.String())
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// lexString scans a `"..."` string literal, honoring backslash escapes so
// an escaped quote doesn't terminate the literal early. The emitted token's
// Text is the raw (still-escaped) content between the quotes; decoding
// happens on demand via token.DecodeString.
func (l *Lexer) lexString() token.Token {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.atEOF() {
			l.reportf("unterminated string literal")
			return l.emit(token.StringLiteral, sb.String())
		}
		r := l.peek()
		if r == '"' {
			l.advance()
			return l.emit(token.StringLiteral, sb.String())
		}
		if r == '\n' {
			l.reportf("unterminated string literal")
			return l.emit(token.StringLiteral, sb.String())
		}
		if r == '\\' {
			sb.WriteRune(l.advance())
			if !l.atEOF() {
				sb.WriteRune(l.advance())
			}
			continue
		}
		sb.WriteRune(l.advance())
	}
}

// lexChar scans a `'...'` char literal the same way lexString scans a
// string, but expects exactly one decoded scalar (validated later by
// token.DecodeChar, not here, so a malformed char literal still produces a
// recoverable token rather than aborting the scan).
func (l *Lexer) lexChar() token.Token {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.atEOF() {
			l.reportf("unterminated char literal")
			return l.emit(token.CharLiteral, sb.String())
		}
		r := l.peek()
		if r == '\'' {
			l.advance()
			return l.emit(token.CharLiteral, sb.String())
		}
		if r == '\n' {
			l.reportf("unterminated char literal")
			return l.emit(token.CharLiteral, sb.String())
		}
		if r == '\\' {
			sb.WriteRune(l.advance())
			if !l.atEOF() {
				sb.WriteRune(l.advance())
			}
			continue
		}
		sb.WriteRune(l.advance())
	}
}

// lexPound scans a `#name` directive and classifies it against the closed
// directive set (#function, #file, #error, #warning).
func (l *Lexer) lexPound() token.Token {
	l.advance() // '#'
	var sb strings.Builder
	for !l.atEOF() && isIdentContinue(l.peek()) {
		sb.WriteRune(l.advance())
	}
	name := sb.String()
	if kind, ok := token.LookupPound(name); ok {
		return l.emit(kind, "#"+name)
	}
	l.reportf("unknown directive #%s", name)
	return l.emit(token.Invalid, "#"+name)
}

// lexOperator matches the longest operator/punctuation spelling starting at
// the current position against the closed operator set.
func (l *Lexer) lexOperator() (token.Kind, string, bool) {
	for _, op := range token.Operators() {
		if l.matchesAt(op.Text) {
			for range op.Text {
				l.advance()
			}
			return op.Kind, op.Text, true
		}
	}
	return token.Invalid, "", false
}

// matchesAt reports whether text appears literally starting at the current
// position. text is always ASCII (the closed operator set), so byte
// comparison against the raw content is sufficient and avoids decoding.
func (l *Lexer) matchesAt(text string) bool {
	end := l.pos + len(text)
	if end > len(l.content) {
		return false
	}
	return string(l.content[l.pos:end]) == text
}
