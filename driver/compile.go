package driver

import (
	"log/slog"

	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/internal/source"
	"github.com/trill-lang/trillc/types"
)

// CompileResult is everything a Compile call produces: the merged
// diagnostics, per-pass timings, and whatever artifacts the passes that
// actually ran left on the Context (CompileResult.Context.IR is empty
// unless opts.Stage was StageIR; .SemaInfo/.CheckInfo are likewise nil
// until their pass has run).
type CompileResult struct {
	Context     *Context
	Diagnostics diag.Result
	Timings     []Timing
}

// Compile runs the concurrent lex/parse/merge step over files, then the
// pipeline named by opts.Stage, returning as soon as either the pipeline
// finishes or a pass leaves the diagnostics in an error state —
// Compile does not keep running passes past that point any more than
// Pipeline.Run does.
func Compile(files []source.File, opts CompileOptions) *CompileResult {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mgr := source.NewManager()
	interner := types.NewInterner()

	file, parseResult := ParseFiles(mgr, files, opts.ModuleName)
	ctx := NewContext(mgr, interner, file)

	logger.Info("compile started",
		"invocation", ctx.InvocationID,
		"files", len(files),
		"stage", opts.Stage)

	if parseResult.HasErrors() || opts.Stage == StageParse {
		return &CompileResult{Context: ctx, Diagnostics: parseResult}
	}

	pipeline := NewPipeline(logger)
	pipeline.Use(SemaPass())
	if opts.Stage != StageSema {
		pipeline.Use(TypecheckPass())
	}
	if opts.Stage == StageIR {
		pipeline.Use(IRGenPass())
	}

	pipelineResult, timings := pipeline.Run(ctx)

	merged := diag.NewCollectorUnlimited()
	merged.Merge(parseResult)
	merged.Merge(pipelineResult)

	logger.Info("compile finished",
		"invocation", ctx.InvocationID,
		"errors", merged.HasErrors(),
		"passes", len(timings))

	return &CompileResult{Context: ctx, Diagnostics: merged.Result(), Timings: timings}
}
