package driver

import (
	"runtime"
	"sync"

	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/internal/source"
	"github.com/trill-lang/trillc/parser"
)

// parseResult holds one file's parse output before merging, indexed
// back to its position in the input-file list so the merge in
// ParseFiles can restore deterministic order regardless of which
// goroutine finished first.
type parseResult struct {
	decls  []ast.Decl
	issues diag.Result
}

// ParseFiles opens every file in files, then lexes and parses them
// concurrently across a worker pool sized to GOMAXPROCS — the language reference:
// "lexing and parsing of multiple source files proceed concurrently
// using a worker pool sized to available cores". Each file's parse
// produces its own private ast.Context; ParseFiles merges every file's
// top-level declarations into one freshly created shared ast.Context,
// re-registering them in files' original order: "the driver then merges
// these into one shared context in a deterministic order (by the
// input-file list). No pass after parsing observes partial merges" — so
// the *ast.File this returns is the only state any later pass ever sees.
//
// moduleName names the shared context for diagnostics and debugging
// output only; it carries no semantic meaning of its own.
func ParseFiles(mgr *source.Manager, files []source.File, moduleName string) (*ast.File, diag.Result) {
	results := make([]parseResult, len(files))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = parseOne(mgr, files[i])
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	sharedCtx := ast.NewContext(moduleName)
	collector := diag.NewCollectorUnlimited()
	var merged []ast.Decl
	for _, r := range results {
		collector.Merge(r.issues)
		merged = append(merged, r.decls...)
	}

	return ast.NewFile(sharedCtx, merged), collector.Result()
}

// parseOne opens and parses a single file. A failure to open or read the
// file never panics the driver — it is an ordinary E_IO diagnostic, the
// same as any other recoverable compile-time failure (the language reference tier
// 1), just one the source-file layer rather than the lexer raises.
func parseOne(mgr *source.Manager, f source.File) parseResult {
	id, err := mgr.Open(f)
	if err != nil {
		return ioFailure(err)
	}
	content, err := mgr.Contents(id)
	if err != nil {
		return ioFailure(err)
	}

	issues := diag.NewCollectorUnlimited()
	p := parser.New(id, content, issues)
	file := p.ParseFile()

	return parseResult{decls: file.Decls, issues: issues.Result()}
}

func ioFailure(err error) parseResult {
	issues := diag.NewCollectorUnlimited()
	issues.Collect(diag.NewIssue(diag.Error, diag.E_IO, err.Error()).Build())
	return parseResult{issues: issues.Result()}
}
