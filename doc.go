// Package trillc implements a compiler for the Trill programming
// language: source text in, LLVM IR out, with a diagnostic engine,
// Clang importer, and reference-counted runtime in between.
//
// # Architecture Overview
//
// The module is organized into tiers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - location: source positions, spans, and canonical paths
//	  - diag: structured diagnostics with stable error codes
//
//	Front-end tier:
//	  - token: lexical token kinds and literal decoding
//	  - lexer: source text to token stream
//	  - ast: declaration/statement/expression tree and shared context
//	  - parser: token stream to ast.File
//	  - clangimport: foreign C declarations to ast.Decl
//
//	Middle tier:
//	  - types: the type system and its interner
//	  - sema: name resolution, scoping, pound-diagnostic lowering
//	  - typecheck: type inference and checking
//	  - mangler: canonical symbol names for typed declarations
//
//	Back-end tier:
//	  - irgen: typed AST to textual LLVM IR
//	  - runtime: the reference-counting and Any-boxing ABI irgen targets
//
//	Orchestration tier:
//	  - driver: the ordered, timed pass pipeline and concurrent parse step
//	  - lspfront: a Language Server Protocol diagnostics publisher
//	  - cmd/trillc: the command-line entrypoint
//
// # Entry Points
//
// Compiling a set of files to LLVM IR:
//
//	import "github.com/trill-lang/trillc/driver"
//	import "github.com/trill-lang/trillc/internal/source"
//
//	files := []source.File{source.FromPath("main.tr")}
//	result := driver.Compile(files, driver.CompileOptions{Stage: driver.StageIR})
//	if result.Diagnostics.HasErrors() {
//	    // result.Diagnostics holds every error/warning/note
//	}
//	// result.Context.IR holds the generated LLVM IR text
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/trill-lang/trillc/diag]: structured diagnostics
//   - [github.com/trill-lang/trillc/location]: source location tracking
//   - [github.com/trill-lang/trillc/ast]: the declaration/statement/expression tree
//   - [github.com/trill-lang/trillc/types]: the type system
//   - [github.com/trill-lang/trillc/sema]: name resolution and scoping
//   - [github.com/trill-lang/trillc/typecheck]: type inference and checking
//   - [github.com/trill-lang/trillc/irgen]: LLVM IR generation
//   - [github.com/trill-lang/trillc/runtime]: the ARC/Any runtime ABI
//   - [github.com/trill-lang/trillc/driver]: the pass pipeline
//   - [github.com/trill-lang/trillc/lspfront]: the LSP diagnostics publisher
package trillc
