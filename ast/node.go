package ast

import "github.com/trill-lang/trillc/location"

// Node is implemented by every AST node: expressions, declarations,
// statements, and type references alike.
type Node interface {
	// Span returns the node's source range. Implicit nodes (Attributes
	// Has Implicit) may return the zero Span, per the language reference invariant
	// (i): "every node has a source range unless implicit".
	Span() location.Span

	// Attributes returns the node's attribute bitset.
	Attributes() Attributes
}

// base is embedded by every concrete node type to provide the common
// Span/Attributes bookkeeping without repeating it on each node.
type base struct {
	span  location.Span
	attrs Attributes
}

// Span implements Node.
func (b base) Span() location.Span { return b.span }

// Attributes implements Node.
func (b base) Attributes() Attributes { return b.attrs }

// SetAttributes replaces the node's attribute bitset. Sema uses this to
// attach attributes (e.g. Indirect) inferred after parsing, consistent
// with nodes being enriched in place rather than rebuilt.
func (b *base) SetAttributes(attrs Attributes) { b.attrs = attrs }

func newBase(span location.Span, attrs Attributes) base {
	return base{span: span, attrs: attrs}
}
