// Command trillc is the thin entrypoint that wires driver.Compile to
// stdin/stdout and an optional LSP stdio server.
//
// Argument parsing, timing-table rendering, and artifact writing are the
// "thin collaborators" the language reference names as out of scope for the compiler
// proper — this file is deliberately the one place in the module that
// stays on the standard library's flag package rather than a third-party
// CLI framework, since there is nothing here for such a framework to do
// beyond what flag already does.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/driver"
	"github.com/trill-lang/trillc/internal/source"
	"github.com/trill-lang/trillc/lspfront"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, errCompileFailed) {
			fmt.Fprintf(os.Stderr, "trillc: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("trillc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		stage      = fs.String("stage", "ir", "how far to run the pipeline: parse, sema, typecheck, ir")
		moduleName = fs.String("module", "main", "module name attached to merged diagnostics")
		output     = fs.String("o", "", "output path for generated IR; defaults to stdout")
		jsonOut    = fs.Bool("json", false, "emit diagnostics as JSON instead of rendered text")
		logLevel   = fs.String("log-level", "warn", "log level: error|warn|info|debug")
		lsp        = fs.Bool("lsp", false, "run as a Language Server Protocol server over stdio instead of compiling")
		showVer    = fs.Bool("version", false, "print version and exit")
	)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: trillc [flags] <file.tr>... | -\n\n")
		fs.SetOutput(os.Stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		fs.Usage()
		return fmt.Errorf("parse flags: %w", err)
	}

	if *showVer {
		fmt.Printf("trillc %s\n", version)
		return nil
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *lsp {
		server := lspfront.NewServer(logger)
		return server.RunStdio()
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		fs.Usage()
		return fmt.Errorf("no input files (pass a path, or - for stdin)")
	}

	stageValue, err := parseStage(*stage)
	if err != nil {
		return err
	}

	files := make([]source.File, len(inputs))
	for i, path := range inputs {
		if path == "-" {
			files[i] = source.FromStdin(os.Stdin)
		} else {
			files[i] = source.FromPath(path)
		}
	}

	result := driver.Compile(files, driver.CompileOptions{
		ModuleName: *moduleName,
		Stage:      stageValue,
		Logger:     logger,
	})

	if err := reportDiagnostics(result, *jsonOut); err != nil {
		return err
	}

	if result.Diagnostics.HasErrors() {
		return errCompileFailed
	}

	if stageValue == driver.StageIR && result.Context.IR != "" {
		return writeIR(result.Context.IR, *output)
	}

	return nil
}

// errCompileFailed carries no message of its own — reportDiagnostics
// already printed every diagnostic that explains why, so main's error
// print would only repeat the last line a second time.
var errCompileFailed = errors.New("")

func reportDiagnostics(result *driver.CompileResult, asJSON bool) error {
	if asJSON {
		renderer := diag.NewRenderer()
		raw := renderer.FormatResultJSON(result.Diagnostics)
		var buf strings.Builder
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			_, err := os.Stdout.Write(raw)
			return err
		}
		fmt.Println(buf.String())
		return nil
	}

	if result.Diagnostics.Len() == 0 {
		return nil
	}
	renderer := diag.NewRenderer(diag.WithSourceProvider(result.Context.Sources))
	_, err := fmt.Fprint(os.Stderr, renderer.FormatResult(result.Diagnostics))
	return err
}

func writeIR(ir, output string) error {
	if output == "" {
		fmt.Println(ir)
		return nil
	}
	if err := os.WriteFile(output, []byte(ir), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}

func parseStage(name string) (driver.Stage, error) {
	switch name {
	case "parse":
		return driver.StageParse, nil
	case "sema":
		return driver.StageSema, nil
	case "typecheck":
		return driver.StageTypecheck, nil
	case "ir":
		return driver.StageIR, nil
	default:
		return 0, fmt.Errorf("unknown -stage %q (want parse, sema, typecheck, or ir)", name)
	}
}

func parseLogLevel(name string) (slog.Level, error) {
	switch name {
	case "error":
		return slog.LevelError, nil
	case "warn":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("invalid log level: %q", name)
	}
}
