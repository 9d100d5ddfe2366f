package runtime

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intMetadata() *TypeMetadata {
	return &TypeMetadata{Name: "Int", SizeInBits: 64}
}

func boolMetadata() *TypeMetadata {
	return &TypeMetadata{Name: "Bool", SizeInBits: 8}
}

func encodeInt(n int64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(n))
	return buf
}

func TestAny_SmallValueStaysInline(t *testing.T) {
	a := NewAny(intMetadata(), encodeInt(42))
	assert.True(t, a.IsInline())
	assert.Equal(t, int64(42), int64(binary.LittleEndian.Uint64(a.Bytes())))
}

func TestAny_OversizedValueIsBoxedOnHeap(t *testing.T) {
	big := make([]byte, AnyInlineCapacity+1)
	big[0] = 0xFF
	meta := &TypeMetadata{Name: "Big", SizeInBits: (AnyInlineCapacity + 1) * 8}
	a := NewAny(meta, big)

	require.False(t, a.IsInline())
	assert.Equal(t, big, a.Bytes())
}

func TestAny_Cast_SameTypeSucceeds(t *testing.T) {
	a := NewAny(intMetadata(), encodeInt(42))
	bytes := a.Cast(intMetadata())
	assert.Equal(t, int64(42), int64(binary.LittleEndian.Uint64(bytes)))
}

func TestAny_Cast_MismatchedTypeIsFatal(t *testing.T) {
	a := NewAny(intMetadata(), encodeInt(42))

	code, exited := withFatalCapture(t, func() {
		a.Cast(boolMetadata())
	})
	assert.True(t, exited)
	assert.Equal(t, 1, code)
}

func TestAny_CastOK_MismatchedTypeReturnsFalse(t *testing.T) {
	a := NewAny(intMetadata(), encodeInt(42))

	_, ok := a.CastOK(boolMetadata())
	assert.False(t, ok)

	bytes, ok := a.CastOK(intMetadata())
	require.True(t, ok)
	assert.Equal(t, int64(42), int64(binary.LittleEndian.Uint64(bytes)))
}

func TestAny_ExtractAndUpdateFieldRoundTrip(t *testing.T) {
	meta := &TypeMetadata{Name: "Pair", SizeInBits: 128, Fields: []*FieldMetadata{
		{Name: "a", Type: intMetadata(), OffsetBytes: 0},
		{Name: "b", Type: intMetadata(), OffsetBytes: 8},
	}}
	payload := append(encodeInt(1), encodeInt(2)...)
	a := NewAny(meta, payload)

	assert.Equal(t, int64(1), int64(binary.LittleEndian.Uint64(a.ExtractField(0, 8))))
	assert.Equal(t, int64(2), int64(binary.LittleEndian.Uint64(a.ExtractField(8, 8))))

	a.UpdateField(0, encodeInt(99))
	assert.Equal(t, int64(99), int64(binary.LittleEndian.Uint64(a.ExtractField(0, 8))))
}
