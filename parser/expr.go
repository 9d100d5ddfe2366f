package parser

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/token"
)

// precedence levels, low to high, per the language reference's table. Assignment
// is right-associative; everything else below call/subscript/field is
// left-associative.
const (
	precNone = iota
	precAssignment
	precTernary
	precLogicalOr
	precLogicalAnd
	precEquality
	precComparison
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precShift
	precAdditive
	precMultiplicative
	precCast
)

// binaryPrecedence reports the precedence level of k as an infix
// operator, or precNone if k never starts an infix expression.
func binaryPrecedence(k token.Kind) int {
	switch k {
	case token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.PercentAssign, token.AmpAssign, token.PipeAssign,
		token.CaretAssign, token.ShlAssign, token.ShrAssign:
		return precAssignment
	case token.Question:
		return precTernary
	case token.OrOr:
		return precLogicalOr
	case token.AndAnd:
		return precLogicalAnd
	case token.Eq, token.Ne:
		return precEquality
	case token.Lt, token.Le, token.Gt, token.Ge:
		return precComparison
	case token.Pipe:
		return precBitwiseOr
	case token.Caret:
		return precBitwiseXor
	case token.Amp:
		return precBitwiseAnd
	case token.Shl, token.Shr:
		return precShift
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative
	case token.KwAs, token.KwIs:
		return precCast
	default:
		return precNone
	}
}

// isRightAssociative reports whether the operator at precedence level
// prec binds its right operand before a same-level operator to its
// left — true only for assignment, per the language reference.
func isRightAssociative(prec int) bool {
	return prec == precAssignment
}

// parseExpr parses a full expression at the lowest precedence.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinaryExpr(precAssignment)
}

// parseBinaryExpr implements precedence climbing: it parses one
// operand at a level above prec (the unary/prefix/postfix chain),
// then repeatedly folds in infix operators whose precedence is at
// least prec, recursing at prec+1 (or prec, for a right-associative
// operator) to parse each right operand.
func (p *Parser) parseBinaryExpr(prec int) ast.Expr {
	left := p.parseCastExpr()
	if left == nil {
		return nil
	}

	for {
		opPrec := binaryPrecedence(p.tok.Kind)
		if opPrec < prec || opPrec == precNone {
			break
		}

		if opPrec == precTernary {
			left = p.parseTernaryTail(left)
			if left == nil {
				return nil
			}
			continue
		}

		op := p.advance()
		nextPrec := opPrec + 1
		if isRightAssociative(opPrec) {
			nextPrec = opPrec
		}
		right := p.parseBinaryExpr(nextPrec)
		if right == nil {
			return nil
		}
		left = ast.NewInfixExpr(location.Merge(left.Span(), right.Span()), op.Kind, left, right)
	}
	return left
}

// parseTernaryTail parses the `? then : else` continuation of a
// ternary expression whose condition is cond.
func (p *Parser) parseTernaryTail(cond ast.Expr) ast.Expr {
	p.advance() // consume '?'
	then := p.parseBinaryExpr(precTernary)
	if then == nil {
		return nil
	}
	if _, ok := p.expect(token.Colon, "':'"); !ok {
		return nil
	}
	els := p.parseBinaryExpr(precAssignment)
	if els == nil {
		return nil
	}
	return ast.NewTernaryExpr(location.Merge(cond.Span(), els.Span()), cond, then, els)
}

// parseCastExpr parses a prefix expression optionally followed by one
// or more `as T` / `is T` casts, which bind tighter than every binary
// operator but looser than prefix per the language reference.
func (p *Parser) parseCastExpr() ast.Expr {
	left := p.parsePrefixExpr()
	if left == nil {
		return nil
	}
	for p.atAny(token.KwAs, token.KwIs) {
		op := p.advance()
		typ := p.parseTypeRef()
		if typ == nil {
			return nil
		}
		right := ast.NewTypeRefExpr(typ.Span(), typ)
		left = ast.NewInfixExpr(location.Merge(left.Span(), right.Span()), op.Kind, left, right)
	}
	return left
}

// prefixOperators are the token kinds that start a PrefixExpr:
// negation, logical/bitwise not, address-of, and dereference.
func isPrefixOperator(k token.Kind) bool {
	switch k {
	case token.Minus, token.Bang, token.Tilde, token.Amp, token.Star:
		return true
	default:
		return false
	}
}

// parsePrefixExpr parses a (possibly empty) chain of prefix operators
// applied to a postfix expression.
func (p *Parser) parsePrefixExpr() ast.Expr {
	if isPrefixOperator(p.tok.Kind) {
		op := p.advance()
		operand := p.parsePrefixExpr()
		if operand == nil {
			return nil
		}
		return ast.NewPrefixExpr(location.Merge(op.Span, operand.Span()), op.Kind, operand)
	}
	return p.parsePostfixExpr()
}

// parsePostfixExpr parses a primary expression followed by any number
// of field lookups, tuple-field lookups, subscripts, and calls.
func (p *Parser) parsePostfixExpr() ast.Expr {
	expr := p.parsePrimaryExpr()
	if expr == nil {
		return nil
	}

	for {
		switch {
		case p.at(token.Dot):
			p.advance()
			expr = p.parseFieldOrTupleLookup(expr)
			if expr == nil {
				return nil
			}

		case p.at(token.LBracket):
			p.advance()
			index := p.parseExpr()
			if index == nil {
				return nil
			}
			end, ok := p.expect(token.RBracket, "']'")
			if !ok {
				return nil
			}
			expr = ast.NewSubscriptExpr(location.Merge(expr.Span(), end.Span), expr, index)

		case p.at(token.LParen):
			expr = p.parseCallTail(expr)
			if expr == nil {
				return nil
			}

		default:
			return expr
		}
	}
}

// parseFieldOrTupleLookup parses the member name after a consumed `.`:
// an integer literal selects a tuple field by position; an identifier
// selects a named field.
func (p *Parser) parseFieldOrTupleLookup(receiver ast.Expr) ast.Expr {
	if p.at(token.IntLiteral) {
		tok := p.advance()
		idx, err := token.DecodeInt(tok.Text)
		if err != nil {
			p.errorf("invalid tuple field index %q", tok.Text)
			return nil
		}
		return ast.NewTupleFieldLookupExpr(location.Merge(receiver.Span(), tok.Span), receiver, int(idx))
	}
	name, ok := p.expect(token.Identifier, "a field name")
	if !ok {
		return nil
	}
	return ast.NewFieldLookupExpr(location.Merge(receiver.Span(), name.Span), receiver, name.Text)
}

// parseCallTail parses the `(args…)` following a consumed callee,
// where each argument may carry a caller-supplied `label: value` form
// or be a bare value.
func (p *Parser) parseCallTail(callee ast.Expr) ast.Expr {
	p.advance() // consume '('

	var args []ast.Arg
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseArg()
			if !ok {
				return nil
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	end, ok := p.expect(token.RParen, "')'")
	if !ok {
		return nil
	}
	return ast.NewCallExpr(location.Merge(callee.Span(), end.Span), callee, args)
}

// parseArg parses one call argument, disambiguating `label: value`
// from a bare value by looking two tokens ahead: an identifier
// immediately followed by ':' is a label.
func (p *Parser) parseArg() (ast.Arg, bool) {
	if p.at(token.Identifier) && p.peekNext().Kind == token.Colon {
		label := p.advance()
		p.advance() // consume ':'
		value := p.parseExpr()
		if value == nil {
			return ast.Arg{}, false
		}
		return ast.Arg{Label: label.Text, Value: value}, true
	}
	value := p.parseExpr()
	if value == nil {
		return ast.Arg{}, false
	}
	return ast.Arg{Value: value}, true
}

// parsePrimaryExpr parses a literal, identifier reference, `.name`
// implicit-receiver property reference, parenthesized/tuple
// expression, closure literal, or `sizeof(T)`.
func (p *Parser) parsePrimaryExpr() ast.Expr {
	switch {
	case p.at(token.IntLiteral):
		tok := p.advance()
		return ast.NewIntLiteralExpr(tok.Span, tok.Text)

	case p.at(token.FloatLiteral):
		tok := p.advance()
		return ast.NewFloatLiteralExpr(tok.Span, tok.Text)

	case p.at(token.CharLiteral):
		tok := p.advance()
		return ast.NewCharLiteralExpr(tok.Span, tok.Text)

	case p.at(token.StringLiteral):
		tok := p.advance()
		return ast.NewStringLiteralExpr(tok.Span, tok.Text)

	case p.at(token.KwTrue):
		tok := p.advance()
		return ast.NewBoolLiteralExpr(tok.Span, true)

	case p.at(token.KwFalse):
		tok := p.advance()
		return ast.NewBoolLiteralExpr(tok.Span, false)

	case p.at(token.KwNil):
		tok := p.advance()
		return ast.NewNilLiteralExpr(tok.Span)

	case p.at(token.KwSizeof):
		return p.parseSizeofExpr()

	case p.at(token.Dot):
		tok := p.advance()
		name, ok := p.expect(token.Identifier, "a property name")
		if !ok {
			return nil
		}
		return ast.NewPropertyRefExpr(location.Merge(tok.Span, name.Span), name.Text)

	case p.at(token.Identifier):
		tok := p.advance()
		return ast.NewVariableRefExpr(tok.Span, tok.Text)

	case p.at(token.LBrace):
		return p.parseClosureExpr()

	case p.at(token.LParen):
		return p.parseParenOrTupleExpr()

	default:
		p.errorf("expected an expression, found %q", p.tok.Kind.String())
		return nil
	}
}

// parseSizeofExpr parses `sizeof(T)`.
func (p *Parser) parseSizeofExpr() ast.Expr {
	start := p.advance().Span // consume 'sizeof'
	if _, ok := p.expect(token.LParen, "'('"); !ok {
		return nil
	}
	operand := p.parseTypeRef()
	if operand == nil {
		return nil
	}
	end, ok := p.expect(token.RParen, "')'")
	if !ok {
		return nil
	}
	return ast.NewSizeofExpr(location.Merge(start, end.Span), operand)
}

// parseParenOrTupleExpr parses `(expr)` as a ParenExpr, or
// `(expr, expr, …)` with two or more elements as a TupleExpr.
func (p *Parser) parseParenOrTupleExpr() ast.Expr {
	start := p.advance().Span // consume '('

	first := p.parseExpr()
	if first == nil {
		return nil
	}

	if !p.at(token.Comma) {
		end, ok := p.expect(token.RParen, "')'")
		if !ok {
			return nil
		}
		return ast.NewParenExpr(location.Merge(start, end.Span), first)
	}

	elements := []ast.Expr{first}
	for p.at(token.Comma) {
		p.advance()
		elem := p.parseExpr()
		if elem == nil {
			return nil
		}
		elements = append(elements, elem)
	}
	end, ok := p.expect(token.RParen, "')'")
	if !ok {
		return nil
	}
	return ast.NewTupleExpr(location.Merge(start, end.Span), elements)
}

// parseClosureExpr parses an inline function literal:
// `{ (params…) -> R => stmts… }` or the bare-body form `{ stmts… }`
// with no parameter list, the closure analogue of a function type's
// `(T, …) -> R` written with `=>` in place of a body block's name.
func (p *Parser) parseClosureExpr() ast.Expr {
	start := p.advance().Span // consume '{'

	var params []*ast.ParamDecl
	var returnType ast.TypeRef
	if p.at(token.LParen) {
		var ok bool
		params, ok = p.parseParamList()
		if !ok {
			return nil
		}
		if p.at(token.Arrow) {
			p.advance()
			returnType = p.parseTypeRef()
			if returnType == nil {
				return nil
			}
		}
		if _, ok := p.expect(token.FatArrow, "'=>'"); !ok {
			return nil
		}
	}

	var stmts []ast.Stmt
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		s := p.parseStmt()
		if s == nil {
			p.syncStatement()
			continue
		}
		stmts = append(stmts, s)
	}
	end, ok := p.expect(token.RBrace, "'}'")
	if !ok {
		return nil
	}
	span := location.Merge(start, end.Span)
	body := ast.NewCompoundStmt(span, stmts)
	return ast.NewClosureExpr(span, params, returnType, body)
}
