package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trill-lang/trillc/location"
)

func testSpan() location.Span {
	return location.Point(location.MustNewSourceID("test://typeref.trill"), 1, 1)
}

func TestTypeRef_Variants(t *testing.T) {
	span := testSpan()
	named := NewNamedTypeRef(span, "Int")
	ptr := NewPointerTypeRef(span, named)
	tuple := NewTupleTypeRef(span, []TypeRef{named, ptr})
	fn := NewFunctionTypeRef(span, []TypeRef{named}, named, true)

	var refs []TypeRef = []TypeRef{named, ptr, tuple, fn}
	for _, r := range refs {
		assert.Equal(t, span, r.Span())
	}

	assert.Equal(t, "Int", named.Name)
	assert.Same(t, named, ptr.Pointee)
	assert.Len(t, tuple.Elements, 2)
	assert.True(t, fn.Variadic)
	assert.Same(t, named, fn.Result)
}
