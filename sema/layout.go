package sema

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/types"
)

// platformPointerBits is this compiler's target pointer width. Trill
// has no cross-compilation story yet (the language reference names none), so a single
// fixed width stands in for IntPlatform/UIntPlatform and every pointer
// and indirect-type handle.
const platformPointerBits = 64

// anyLayoutBits is the existential box's fixed layout: a type-metadata
// pointer followed by a payload slot sized to fit any value stored
// inline or a pointer to a heap-boxed one.
const anyLayoutBits = platformPointerBits * 2

// sizeInBits returns t's size for layout purposes. types.Kind has no
// bit-width accessor of its own — Kind is a bare enum with a String
// method, and bit width is closed-form arithmetic over a fixed table
// this package alone needs, so it is written here rather than added to
// the types package. A Named type embedded by value reuses its own
// already-computed TypeLayout (resolveLayout processes dependencies
// before dependents); an indirect Named type, or one whose layout
// couldn't be computed (forward reference, cycle), sizes as a
// pointer-sized handle instead.
func (c *Checker) sizeInBits(t *types.Type) int {
	switch t.Kind() {
	case types.Int8, types.UInt8, types.Bool:
		return 8
	case types.Int16, types.UInt16:
		return 16
	case types.Int32, types.UInt32, types.Float:
		return 32
	case types.Int64, types.UInt64, types.Double,
		types.IntPlatform, types.UIntPlatform:
		return 64
	case types.Void:
		return 0
	case types.Pointer, types.Function:
		return platformPointerBits
	case types.Any:
		return anyLayoutBits
	case types.Tuple:
		var total int
		for _, elem := range t.Elements() {
			total += alignUp(c.sizeInBits(elem))
		}
		return total
	case types.Named:
		if td, ok := c.declByID(t.DeclID()).(*ast.TypeDecl); ok && !c.info.Indirect[td] {
			if layout, ok := c.info.Layouts[td]; ok {
				return layout.SizeBits
			}
		}
		return platformPointerBits
	default:
		return 0
	}
}

// alignUp rounds a bit width up to a whole byte: offsets accumulate
// with natural alignment to the field's size-in-bits rounded to bytes.
func alignUp(bits int) int {
	if bits%8 == 0 {
		return bits
	}
	return (bits/8 + 1) * 8
}

// computeLayout lays out fields in declaration order, accumulating
// offsets with byte alignment per field. indirect types reserve a
// pointer-sized box header before the first field.
func (c *Checker) computeLayout(fields []fieldEntry, indirect bool) *TypeLayout {
	layout := &TypeLayout{}
	offset := 0
	if indirect {
		offset = platformPointerBits
	}
	for _, f := range fields {
		size := alignUp(c.sizeInBits(f.typ))
		layout.Fields = append(layout.Fields, FieldLayout{
			Field:      f.decl,
			Type:       f.typ,
			OffsetBits: offset,
			SizeBits:   size,
		})
		offset += size
	}
	layout.SizeBits = offset
	return layout
}

// resolveLayout computes and caches decl's TypeLayout, first resolving
// the layout of every non-indirect type one of decl's fields embeds by
// value, so sizeInBits never has to fall back to a guessed width for
// them. The walk is a visited/visiting/done traversal over stored-field
// dependencies: a non-indirect type that reaches itself
// through a chain of by-value fields is reported via reportCycle and
// left without a layout (info.Layouts[decl] stays unset), since its
// true size is undefined. An indirect type never participates in the
// cycle — its fields sit behind a pointer-sized box header, so nothing
// it contains can make its own size unbounded.
func (c *Checker) resolveLayout(decl *ast.TypeDecl) *TypeLayout {
	if layout, ok := c.info.Layouts[decl]; ok {
		return layout
	}
	if c.isIndirect(decl) {
		layout := c.computeLayout(c.fields[decl], true)
		c.info.Layouts[decl] = layout
		c.layoutState[decl] = done
		return layout
	}

	switch c.layoutState[decl] {
	case visiting:
		return nil
	case done:
		return c.info.Layouts[decl]
	}

	c.layoutState[decl] = visiting
	c.layoutStack = append(c.layoutStack, decl)

	for _, f := range c.fields[decl] {
		if f.typ.Kind() != types.Named {
			continue
		}
		target, ok := c.declByID(f.typ.DeclID()).(*ast.TypeDecl)
		if !ok || target == decl || c.isIndirect(target) {
			continue
		}
		switch c.layoutState[target] {
		case done:
			continue
		case visiting:
			c.reportCycle(c.cycleChain(target))
			c.layoutStack = c.layoutStack[:len(c.layoutStack)-1]
			c.layoutState[decl] = done
			return nil
		default:
			c.resolveLayout(target)
		}
	}

	c.layoutStack = c.layoutStack[:len(c.layoutStack)-1]
	layout := c.computeLayout(c.fields[decl], false)
	c.info.Layouts[decl] = layout
	c.layoutState[decl] = done
	return layout
}

// cycleChain builds the ordered chain of TypeDecls from target's first
// occurrence on layoutStack through to the back-edge that found it
// again, for reportCycle's "previous definition"-style diagnostic.
func (c *Checker) cycleChain(target *ast.TypeDecl) []*ast.TypeDecl {
	for i, d := range c.layoutStack {
		if d == target {
			chain := append([]*ast.TypeDecl(nil), c.layoutStack[i:]...)
			return append(chain, target)
		}
	}
	return []*ast.TypeDecl{target, target}
}
