package parser

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/token"
)

// parseTypeRef parses a type reference: a bare name, `*T`, `[T]`, a
// parenthesized tuple `(T, U, …)`, or a function signature
// `(T, …) -> R`, optionally variadic in its last parameter position.
func (p *Parser) parseTypeRef() ast.TypeRef {
	switch {
	case p.at(token.Star):
		start := p.advance().Span
		pointee := p.parseTypeRef()
		if pointee == nil {
			return nil
		}
		return ast.NewPointerTypeRef(location.Merge(start, pointee.Span()), pointee)

	case p.at(token.LBracket):
		// `[T]` is sugar for `*T`; desugar here so no later stage has to
		// special-case an array type that doesn't otherwise exist.
		start := p.advance().Span
		elem := p.parseTypeRef()
		if elem == nil {
			return nil
		}
		end, ok := p.expect(token.RBracket, "']'")
		if !ok {
			return nil
		}
		return ast.NewPointerTypeRef(location.Merge(start, end.Span), elem)

	case p.at(token.LParen):
		return p.parseParenOrFunctionTypeRef()

	case p.at(token.Identifier):
		tok := p.advance()
		return ast.NewNamedTypeRef(tok.Span, tok.Text)

	default:
		p.errorf("expected a type, found %q", p.tok.Kind.String())
		return nil
	}
}

// parseParenOrFunctionTypeRef parses `(T, U, …)` as a tuple, or
// `(T, U, …) -> R` (optionally with a trailing `...` marking the last
// element type as variadic) as a function signature. The two share a
// parenthesized element list, so both are parsed together and
// disambiguated by whether `->` follows the closing paren.
func (p *Parser) parseParenOrFunctionTypeRef() ast.TypeRef {
	start := p.advance().Span // consume '('

	var elements []ast.TypeRef
	variadic := false
	if !p.at(token.RParen) {
		for {
			if p.at(token.Ellipsis) {
				p.advance()
				variadic = true
				break
			}
			elem := p.parseTypeRef()
			if elem == nil {
				return nil
			}
			elements = append(elements, elem)
			if p.at(token.Ellipsis) {
				p.advance()
				variadic = true
				break
			}
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

	if p.at(token.Arrow) {
		p.advance()
		result := p.parseTypeRef()
		if result == nil {
			return nil
		}
		return ast.NewFunctionTypeRef(location.Merge(start, result.Span()), elements, result, variadic)
	}

	if variadic {
		p.errorf("'...' is only valid in a function type's parameter list")
		return nil
	}
	return ast.NewTupleTypeRef(location.Merge(start, end.Span), elements)
}
