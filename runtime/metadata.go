package runtime

// FieldMetadata describes one stored field of a TypeMetadata, in
// declaration order. OffsetBytes is the field's byte offset within the
// owning type's layout, as irgen computed it while lowering the
// declaration.
type FieldMetadata struct {
	Name        string
	Type        *TypeMetadata
	OffsetBytes int
}

// TypeMetadata is the runtime descriptor the language reference emits one
// constant of per user-declared type: enough information for the Any
// existential box, a checked cast, or a debugger to describe a value
// without static type information. irgen emits one of these as an IR
// global per type declaration, named via mangler.MangleTypeDecl;
// PointerLevel lets a metadata value describe `T`, `*T`, `**T`, … with
// a single struct rather than a chain of wrapper records.
type TypeMetadata struct {
	Name            string
	Fields          []*FieldMetadata
	IsReferenceType bool
	SizeInBits      int
	FieldCount      int
	PointerLevel    int
}

// FieldByName returns the field named n, or nil if t has none.
func (t *TypeMetadata) FieldByName(n string) *FieldMetadata {
	for _, f := range t.Fields {
		if f.Name == n {
			return f
		}
	}
	return nil
}

// ProtocolMetadata is the runtime descriptor for a protocol
// declaration: its method set, in declaration order, so a witness
// table built against it can be indexed positionally.
type ProtocolMetadata struct {
	Name        string
	MethodNames []string
	MethodCount int
}

// WitnessTable is the per-conformance dispatch table the language reference
// describes: one slot per protocol method, holding the mangled symbol
// of the conforming type's implementation. mangler.MangleWitnessTable
// gives the symbol name for one; irgen does not emit witness tables.
type WitnessTable struct {
	Protocol   *ProtocolMetadata
	Conforming *TypeMetadata
	// Methods holds one mangled symbol per entry of Protocol.MethodNames,
	// in the same order; a protocol-typed call site indexes this slice
	// rather than dispatching through the conforming type's static name.
	Methods []string
}

// MethodSymbol returns the mangled implementation symbol bound to name,
// or "" if name is not one of w.Protocol's methods or has no binding.
func (w *WitnessTable) MethodSymbol(name string) string {
	for i, n := range w.Protocol.MethodNames {
		if n == name {
			if i < len(w.Methods) {
				return w.Methods[i]
			}
			return ""
		}
	}
	return ""
}
