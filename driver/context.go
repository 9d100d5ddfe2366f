package driver

import (
	"github.com/google/uuid"

	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/internal/source"
	"github.com/trill-lang/trillc/sema"
	"github.com/trill-lang/trillc/typecheck"
	"github.com/trill-lang/trillc/types"
)

// Context is the shared state every pass reads from and writes to, built
// once per Compile call and threaded through the whole Pipeline. Fields
// fill in incrementally as passes run: Sources, Interner, and File exist
// from the start; SemaInfo appears after the sema pass, CheckInfo after
// typecheck, IR after irgen. A pass that needs one of these and finds it
// nil was registered out of order relative to the pass that produces it
// — a pipeline-construction bug, not a recoverable condition.
type Context struct {
	// InvocationID identifies one Compile call; the driver's log lines
	// for that call carry it under the "invocation" key. Diagnostics do
	// not carry it, and lspfront's own request log lines do not include it.
	InvocationID uuid.UUID

	Sources  *source.Manager
	Interner *types.Interner
	File     *ast.File

	SemaInfo  *sema.Info
	CheckInfo *typecheck.Info
	IR        string
}

// NewContext builds a Context over an already-merged file, ready for its
// first pass.
func NewContext(sources *source.Manager, interner *types.Interner, file *ast.File) *Context {
	return &Context{
		InvocationID: uuid.New(),
		Sources:      sources,
		Interner:     interner,
		File:         file,
	}
}
