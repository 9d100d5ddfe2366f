package driver

import (
	"log/slog"

	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/irgen"
	"github.com/trill-lang/trillc/sema"
	"github.com/trill-lang/trillc/typecheck"
)

// SemaPass runs name resolution, scope tracking, implicit-declaration
// synthesis, and layout computation over ctx.File (the language reference),
// recording the result on ctx.SemaInfo for every later pass to consume.
func SemaPass() Pass {
	return NewPassFunc("sema", func(ctx *Context) diag.Result {
		checker := sema.NewChecker(ctx.File.Context, ctx.Interner)
		info, result := checker.Analyze(ctx.File)
		ctx.SemaInfo = info
		return result
	})
}

// TypecheckPass runs unification, overload resolution, and coercion
// insertion over ctx.File (the language reference). Must run after SemaPass — it
// consumes ctx.SemaInfo, which is nil until sema has run.
func TypecheckPass() Pass {
	return NewPassFunc("typecheck", func(ctx *Context) diag.Result {
		checker := typecheck.NewChecker(ctx.File.Context, ctx.Interner, ctx.SemaInfo)
		info, result := checker.Check(ctx.File)
		ctx.CheckInfo = info
		return result
	})
}

// IRGenPass lowers ctx.File to textual LLVM IR honoring the runtime ABI
// (the language reference). Must run after both SemaPass and TypecheckPass.
func IRGenPass() Pass {
	return NewPassFunc("irgen", func(ctx *Context) diag.Result {
		gen := irgen.NewGenerator(ctx.SemaInfo, ctx.CheckInfo)
		out, result := gen.Generate(ctx.File)
		ctx.IR = out
		return result
	})
}

// StandardPipeline returns the sema → typecheck → irgen pipeline every
// ordinary compilation runs. Diagnostics-only invocations (CLI's
// "diagnostics-only" mode, per the language reference) build a shorter Pipeline
// directly from SemaPass and TypecheckPass instead, skipping IRGenPass
// since no artifact is wanted.
func StandardPipeline(logger *slog.Logger) *Pipeline {
	return NewPipeline(logger).
		Use(SemaPass()).
		Use(TypecheckPass()).
		Use(IRGenPass())
}
