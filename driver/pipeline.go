package driver

import (
	"log/slog"
	"time"

	"github.com/trill-lang/trillc/diag"
)

// Pipeline holds an ordered list of passes and runs them in sequence,
// timing each and halting at the first pass whose run produced any
// error diagnostic. Cancellation is coarse: the driver checks
// "has errors" between passes and stops; there is no mid-pass
// cancellation contract.
type Pipeline struct {
	passes []Pass
	logger *slog.Logger
}

// NewPipeline builds an empty Pipeline logging through logger. A nil
// logger falls back to slog.Default() — Pipeline is the driver's own
// entry point, not library internals buried under it, so unlike e.g.
// sema or typecheck (which only ever emit diag.Issues, never log) it is
// allowed to default rather than require a logger from every caller.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger}
}

// Use appends pass to the ordered pipeline and returns the Pipeline for
// chaining.
func (p *Pipeline) Use(pass Pass) *Pipeline {
	p.passes = append(p.passes, pass)
	return p
}

// Run executes every registered pass in order against ctx, merging each
// pass's diagnostics into one Result (via a diag.Collector, so ordering
// and deduplication follow the same rules as any single pass's own
// diagnostics) and returning per-pass timings alongside it. Execution
// stops at the first pass whose own Result.HasErrors() is true.
func (p *Pipeline) Run(ctx *Context) (diag.Result, []Timing) {
	collector := diag.NewCollectorUnlimited()
	timings := make([]Timing, 0, len(p.passes))

	for _, pass := range p.passes {
		start := time.Now()
		result := pass.Run(ctx)
		elapsed := time.Since(start)

		collector.Merge(result)
		timings = append(timings, Timing{Pass: pass.Name(), Duration: elapsed, HasErrors: result.HasErrors()})

		p.logger.Debug("pass finished",
			"invocation", ctx.InvocationID,
			"pass", pass.Name(),
			"duration", elapsed,
			"errors", result.HasErrors())

		if result.HasErrors() {
			p.logger.Info("pipeline halted on error",
				"invocation", ctx.InvocationID,
				"pass", pass.Name())
			break
		}
	}

	return collector.Result(), timings
}
