package driver

import (
	"time"

	"github.com/trill-lang/trillc/diag"
)

// Pass is one stage of the compilation pipeline. Run receives the shared
// Context every earlier pass has been enriching and reports whatever
// diagnostics its own stage produced.
type Pass interface {
	Name() string
	Run(ctx *Context) diag.Result
}

// PassFunc adapts a plain closure to the Pass interface — the common
// case for a stage that needs no state of its own beyond what Context
// already carries. Passes can be registered either as named closures
// or as typed pass objects; PassFunc is the closure form, and
// SemaPass/TypecheckPass/IRGenPass in passes.go are built with it, each
// closure reading ctx.File.Context.
type PassFunc struct {
	name string
	fn   func(*Context) diag.Result
}

// NewPassFunc builds a closure-backed Pass named name.
func NewPassFunc(name string, fn func(*Context) diag.Result) PassFunc {
	return PassFunc{name: name, fn: fn}
}

func (p PassFunc) Name() string { return p.name }

func (p PassFunc) Run(ctx *Context) diag.Result { return p.fn(ctx) }

// Timing records how long one pass took and whether it left the
// pipeline with an error diagnostic.
type Timing struct {
	Pass      string
	Duration  time.Duration
	HasErrors bool
}
