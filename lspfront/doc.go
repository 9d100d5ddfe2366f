// Package lspfront implements a Language Server Protocol front end for
// Trill source files.
//
// It is a thin consumer of the driver package: textDocument/didOpen and
// textDocument/didChange run a diagnostics-only compile over the
// document's current full text and publish the result as
// textDocument/publishDiagnostics. There is no incremental sync, no
// completion/hover/symbol/formatting support, and no cross-file
// workspace tracking — Trill has no multi-file import system, so a
// document's diagnostics depend only on that document's own text.
package lspfront
