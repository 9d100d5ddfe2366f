package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Int32, "Int32"},
		{IntPlatform, "Int"},
		{UIntPlatform, "UInt"},
		{Bool, "Bool"},
		{Float, "Float"},
		{Double, "Double"},
		{Void, "Void"},
		{Named, "named"},
		{Tuple, "tuple"},
		{Function, "function"},
		{Pointer, "pointer"},
		{Any, "Any"},
		{Error, "error"},
		{UntypedInt, "literal-int"},
		{UntypedFloat, "literal-float"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestKind_String_Unknown(t *testing.T) {
	assert.Equal(t, "<unknown kind>", Kind(255).String())
}

func TestKind_IsInteger(t *testing.T) {
	assert.True(t, Int8.IsInteger())
	assert.True(t, UIntPlatform.IsInteger())
	assert.False(t, Bool.IsInteger())
	assert.False(t, Float.IsInteger())
}

func TestKind_IsSignedUnsignedInteger(t *testing.T) {
	assert.True(t, Int32.IsSignedInteger())
	assert.False(t, Int32.IsUnsignedInteger())
	assert.True(t, UInt32.IsUnsignedInteger())
	assert.False(t, UInt32.IsSignedInteger())
}

func TestKind_IsUntyped(t *testing.T) {
	assert.True(t, UntypedInt.IsUntyped())
	assert.True(t, UntypedFloat.IsUntyped())
	assert.False(t, Int32.IsUntyped())
}
