package driver

import "log/slog"

// Stage selects how far the pipeline runs, the core-side half of the
// CLI's "Mode" contract in the language reference (the CLI itself — argument parsing,
// file writing, JIT execution — is the thin collaborator named out of
// scope in the language reference; Stage is the piece of that contract the driver
// actually implements).
type Stage int

const (
	// StageIR runs the full pipeline through IR generation.
	StageIR Stage = iota
	// StageTypecheck stops after typecheck, skipping irgen entirely —
	// the core half of the CLI's "diagnostics-only" mode.
	StageTypecheck
	// StageSema stops after sema, skipping typecheck and irgen.
	StageSema
	// StageParse runs only the concurrent lex/parse/merge step.
	StageParse
)

// CompileOptions configures one Compile call.
type CompileOptions struct {
	// ModuleName identifies the merged shared ast.Context for
	// diagnostics and debugging output.
	ModuleName string

	Stage Stage

	// Config supplies the project-level settings (target triple,
	// optimization level, importer/stdlib toggles) a CLI or LSP front
	// end would otherwise pass as repeated flags.
	Config ProjectConfig

	// Logger receives pass-timing and pipeline-halt events. Nil selects
	// slog.Default().
	Logger *slog.Logger
}
