// Package lexer implements the single-pass, restartable tokenizer described
// in the language reference: identifiers and keywords, numeric/char/string literals,
// greedy-longest-match operators, line and block comments, and pound
// directives, over a byte slice tied to one source file.
package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/token"
)

// Lexer tokenizes one source file's content. A Lexer is not safe for
// concurrent use; callers needing concurrent lexing create one Lexer per
// source, matching the driver's one-goroutine-per-compilation-unit model.
type Lexer struct {
	source  location.SourceID
	content []byte
	issues  *diag.Collector

	pos    int // byte offset of the next unread byte
	line   int // 1-based
	column int // 1-based, counts runes

	// startPos/startLine/startColumn mark the beginning of the token
	// currently being scanned, captured by markStart.
	startPos    int
	startLine   int
	startColumn int
}

// New creates a Lexer over content for the named source. Diagnostics for
// malformed literals are recorded on issues; the lexer always resynchronizes
// and continues rather than aborting, matching the language reference's "malformed
// literals emit a diagnostic and the lexer resynchronizes" rule.
func New(source location.SourceID, content []byte, issues *diag.Collector) *Lexer {
	return &Lexer{
		source:  source,
		content: content,
		issues:  issues,
		pos:     0,
		line:    1,
		column:  1,
	}
}

// Tokenize runs the lexer to completion and returns every token including
// the trailing EOF sentinel. Convenience wrapper over repeated Next calls
// for callers (tests, the parser's lookahead buffer) that want the full
// stream at once.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			return tokens
		}
	}
}

// Next scans and returns the next token, skipping whitespace and comments.
// Returns an EOF token once the input is exhausted; subsequent calls keep
// returning EOF.
func (l *Lexer) Next() token.Token {
	l.skipWhitespaceAndComments()

	l.markStart()
	if l.atEOF() {
		return l.emit(token.EOF, "")
	}

	r := l.peek()
	switch {
	case r == '"':
		return l.lexString()
	case r == '\'':
		return l.lexChar()
	case r == '#':
		return l.lexPound()
	case isDigit(r):
		return l.lexNumber()
	case isIdentStart(r):
		return l.lexIdentifierOrKeyword()
	default:
		if kind, text, ok := l.lexOperator(); ok {
			return l.emit(kind, text)
		}
		// Unrecognized byte: report and resynchronize past it so a single
		// stray character doesn't cascade into unbounded diagnostics.
		l.advance()
		l.reportf("unexpected character %q", string(r))
		return l.resyncAndRetry()
	}
}

// resyncAndRetry skips to the next whitespace or punctuation boundary, per
// the language reference's error-recovery rule, then produces the next real token.
func (l *Lexer) resyncAndRetry() token.Token {
	for !l.atEOF() {
		r := l.peek()
		if unicode.IsSpace(r) || isPunctuationStart(r) {
			break
		}
		l.advance()
	}
	return l.Next()
}

func (l *Lexer) markStart() {
	l.startPos = l.pos
	l.startLine = l.line
	l.startColumn = l.column
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.content)
}

// peek returns the rune at the current position without advancing.
// Returns utf8.RuneError at EOF.
func (l *Lexer) peek() rune {
	if l.atEOF() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRune(l.content[l.pos:])
	return r
}

// peekAt returns the rune offset runes ahead of the current position
// without advancing, by decoding forward. offset 0 is equivalent to peek.
func (l *Lexer) peekAt(offset int) rune {
	pos := l.pos
	var r rune
	for i := 0; i <= offset; i++ {
		if pos >= len(l.content) {
			return utf8.RuneError
		}
		var size int
		r, size = utf8.DecodeRune(l.content[pos:])
		pos += size
	}
	return r
}

// advance consumes the current rune and updates line/column tracking.
func (l *Lexer) advance() rune {
	if l.atEOF() {
		return utf8.RuneError
	}
	r, size := utf8.DecodeRune(l.content[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// span returns the span covering the token currently being scanned, from
// the last markStart to the current position.
func (l *Lexer) span() location.Span {
	return location.RangeWithBytes(l.source, l.startLine, l.startColumn, l.startPos, l.line, l.column, l.pos)
}

// emit builds the token for the in-progress scan using the given kind and
// text, with a span from markStart to the current position.
func (l *Lexer) emit(kind token.Kind, text string) token.Token {
	return token.New(kind, text, l.span())
}

func (l *Lexer) reportf(format string, args ...any) {
	l.issues.Collect(
		diag.NewIssue(diag.Error, diag.E_SYNTAX, fmt.Sprintf(format, args...)).
			WithSpan(l.span()).
			Build(),
	)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isPunctuationStart reports whether r can start an operator/punctuation
// token, used to find a safe resync boundary after a lex error.
func isPunctuationStart(r rune) bool {
	switch r {
	case '(', ')', '{', '}', '[', ']', ',', ';', ':', '.',
		'+', '-', '*', '/', '%', '&', '|', '^', '~', '!',
		'<', '>', '=', '?', '"', '\'', '#':
		return true
	default:
		return false
	}
}
