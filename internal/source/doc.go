// Package source implements the compiler's source-file manager.
//
// A compilation's inputs are not always files. The driver may be invoked on
// a path, handed an in-memory buffer by an embedding tool or a test, asked
// to read a script from standard input, or need to attribute a declaration
// the compiler itself synthesizes (an implicit initializer, say) to no
// source at all. [File] models these four variants; [Manager] opens a File,
// assigns it a [location.SourceID], and fetches its content and line-split
// view on demand.
//
// This package does NOT perform diagnostic formatting or excerpt
// rendering — that responsibility belongs exclusively to the diag package,
// which depends on Manager only through the [location.PositionRegistry],
// diag.SourceProvider, and diag.LineIndexProvider interfaces it satisfies.
//
// # Responsibilities
//
//   - Open a source by identifier without necessarily reading it
//   - Read and cache full content on first request (stdin is read eagerly at
//     Open time, since it can only be drained once)
//   - Split content into lines and cache line-start byte offsets
//   - Convert a byte offset to a [location.Position] (PositionAt)
//
// # Newline and column handling
//
//   - \r\n, \n, and bare \r are each treated as a single line break
//   - Columns count runes (Unicode code points) from line start, not bytes
//   - Column and line numbers are 1-based
//
// # Concurrency
//
// Manager is safe for concurrent use. A single mutex guards both the
// content cache and the line-split cache; expensive work (reading a file,
// splitting it into lines) happens outside the lock, with only the final
// insertion into the cache map performed while holding it — so concurrent
// callers opening or reading the same source may duplicate work but always
// agree on the cached result.
//
// # Usage
//
//	mgr := source.NewManager()
//
//	id, err := mgr.Open(source.FromPath("main.tr"))
//	if err != nil {
//	    // handle open error (e.g. SourceID construction failure)
//	}
//
//	content, err := mgr.Contents(id)
//	if err != nil {
//	    // handle read error (e.g. file not found)
//	}
//
//	pos := mgr.PositionAt(id, byteOffset)
//	if !pos.IsZero() {
//	    // pos.Line, pos.Column, pos.Byte are populated
//	}
package source
