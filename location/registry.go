package location

// PositionRegistry provides byte-offset-to-position conversion.
//
// This interface is the bridge between compiler passes that only track byte
// offsets (the lexer, the parser) and the diagnostic renderer, which needs
// line/column positions to produce source excerpts and LSP ranges.
//
// The primary implementation is internal/source.Manager.
//
// Design rationale:
//
//  1. Foundation tier placement: PositionRegistry is defined in location
//     (foundation tier) because the interface operates on location.Position and
//     location.SourceID — natural cohesion with the location package.
//
//  2. Decouples the diagnostic engine from the source-file manager: diag can
//     depend on this interface instead of internal/source directly, keeping
//     the dependency graph acyclic (diag sits below internal/source in no
//     package's import graph, so the inversion matters).
type PositionRegistry interface {
	// PositionAt converts a byte offset to a Position for the given source.
	//
	// Returns a zero Position (check via IsZero()) if:
	//   - The source is not registered
	//   - The byte offset is out of range
	//   - The byte offset is negative
	//
	// The returned Position has:
	//   - Line: 1-based line number
	//   - Column: 1-based rune offset from line start
	//   - Byte: The input byteOffset (echoed back for convenience)
	PositionAt(source SourceID, byteOffset int) Position
}
