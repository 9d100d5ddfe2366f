// Package diag provides structured diagnostics for the Trill compiler.
//
// This package sits at the foundation tier alongside [location], providing the
// single diagnostic infrastructure used across lexing, parsing, semantic
// analysis, type checking, C header import, and IR generation.
//
// # Design Principles
//
// The diag package follows several key design principles:
//
//   - Structured data, string-last presentation: Location is stored as data
//     ([location.Span]), never embedded in message strings.
//   - Immutable results: [Result] stores issues in unexported fields and exposes
//     accessor methods that return defensive copies.
//   - Stable error codes: [Code] values are stable identifiers that tools can
//     match on, even when message text changes. The Code type uses an unexported
//     struct to enforce a closed set of valid codes.
//   - Deterministic ordering: [Collector.Result] sorts issues by source, position,
//     and code to ensure stable output across runs.
//   - Builder pattern: [IssueBuilder] is the only valid construction path for
//     [Issue] values, eliminating common construction mistakes.
//   - Precomputed counts: [Collector] maintains O(1) severity queries via
//     precomputed counts updated during collection.
//
// # Entry Point Pattern
//
// Every compiler stage follows a consistent pattern:
//
//   - err != nil: catastrophic failure (I/O, internal corruption, runtime failures)
//   - err == nil and !result.OK(): the input is ill-formed, represented as
//     structured issues rather than a Go error
//   - err == nil and result.OK(): success (may still include warnings or notes)
//
// # Severity Semantics
//
// [Severity] is an ordered enumeration where lower values are more severe:
//
//   - [Error]: a lexical, syntactic, semantic, or type error that prevents
//     compilation from succeeding
//   - [Warning]: a condition worth flagging that does not by itself prevent
//     compilation
//   - [Note]: supplementary information, either standalone or referenced from
//     another issue's related-location list
//
// The [Severity.IsFailure] method returns true only for Error, matching the
// !result.OK() check.
//
// # Issue Construction
//
// Issues must be constructed using [NewIssue] and [IssueBuilder]:
//
//	issue := diag.NewIssue(diag.Error, diag.E_REDECLARATION, `"Point" is already declared`).
//	    WithSpan(span).
//	    WithHint("rename one of the declarations").
//	    WithRelated(location.RelatedInfo{Span: previousSpan, Message: "previous declaration here"}).
//	    Build()
//
// Direct struct literal construction bypasses validity checks and will cause
// panics when the issue is collected.
//
// # Collection and Results
//
// Use [Collector] to aggregate issues during compilation:
//
//	collector := diag.NewCollector(100) // limit of 100 issues
//	collector.Collect(issue)
//	result := collector.Result()
//
//	if !result.OK() {
//	    // report failure to the caller
//	}
//
// [Collector] is thread-safe and provides O(1) severity queries via
// [Collector.OK], [Collector.HasErrors], and [Collector.LimitReached].
//
// # Rendering
//
// The [Renderer] provides formatting for multiple output formats:
//
//   - Text output with optional source excerpts and ANSI colors
//   - JSON output with stable wire format
//   - LSP-compatible diagnostics with UTF-16 character offsets
//
// Example:
//
//	renderer := diag.NewRenderer(
//	    diag.WithSourceProvider(provider),
//	    diag.WithExcerpts(true),
//	)
//	output := renderer.FormatResult(result)
//
// # Package Dependencies
//
// diag imports only stdlib and [location]. It must not import any higher-level
// compiler stage, so that every stage can depend on diag without creating an
// import cycle.
package diag
