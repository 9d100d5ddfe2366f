package runtime

import "fmt"

// AnyInlineCapacity is the payload capacity the language reference reserves
// inside an Any box before a value must be heap-allocated instead: 24
// bytes, enough for any of the platform scalar types plus one pointer
// word of padding, matching the dual-word-plus-metadata header layout
// most existential-container ABIs use.
const AnyInlineCapacity = 24

// Any is the existential container a value gets boxed into when it is
// assigned to a variable of type `Any`: a type-metadata pointer plus
// either the value's bytes stored inline (when they fit in
// AnyInlineCapacity) or a pointer to a heap Box holding them. Which
// representation is in use is a property of the value's static size,
// never of the value itself, so a given TypeMetadata always produces
// boxes of the same shape.
type Any struct {
	Metadata *TypeMetadata
	inline   [AnyInlineCapacity]byte
	heap     *Box
}

// NewAny boxes value's bytes under metadata, choosing the inline or
// heap representation by len(value).
func NewAny(metadata *TypeMetadata, value []byte) *Any {
	a := &Any{Metadata: metadata}
	if len(value) <= AnyInlineCapacity {
		copy(a.inline[:], value)
		return a
	}
	box := AllocateIndirectType(len(value), nil)
	copy(box.Payload(), value)
	a.heap = box
	return a
}

// IsInline reports whether a's payload lives inside the box itself
// rather than behind a heap allocation.
func (a *Any) IsInline() bool {
	return a.heap == nil
}

// Bytes returns a's underlying value bytes, from whichever
// representation currently holds them.
func (a *Any) Bytes() []byte {
	if a.heap != nil {
		return a.heap.Payload()
	}
	return a.inline[:a.Metadata.SizeInBits/8]
}

// ExtractField reads size bytes at offset out of a's payload — the
// operation a generated field-access expression lowers to when its
// receiver is statically typed Any.
func (a *Any) ExtractField(offset, size int) []byte {
	bytes := a.Bytes()
	return bytes[offset : offset+size]
}

// UpdateField overwrites a's payload at offset with data — the
// counterpart generated code for a field assignment through an Any
// receiver lowers to.
func (a *Any) UpdateField(offset int, data []byte) {
	bytes := a.Bytes()
	copy(bytes[offset:], data)
}

// Cast implements the checked-cast operator `as`: it returns a's bytes
// if a's dynamic type is target, and calls FatalError — matching
// the language reference's scenario for `a as Bool` against a boxed Int — if not.
func (a *Any) Cast(target *TypeMetadata) []byte {
	if a.Metadata == nil || target == nil || a.Metadata.Name != target.Name {
		fromName := "<unknown>"
		if a.Metadata != nil {
			fromName = a.Metadata.Name
		}
		toName := "<unknown>"
		if target != nil {
			toName = target.Name
		}
		FatalError(fmt.Sprintf("checked cast failed: cannot convert %s to %s", fromName, toName))
	}
	return a.Bytes()
}

// CastOK implements the conditional-cast operator `as?`: it reports
// whether a's dynamic type is target without aborting the process on a
// mismatch, for `if let x = a as? T` style conditional unwraps.
func (a *Any) CastOK(target *TypeMetadata) ([]byte, bool) {
	if a.Metadata == nil || target == nil || a.Metadata.Name != target.Name {
		return nil, false
	}
	return a.Bytes(), true
}
