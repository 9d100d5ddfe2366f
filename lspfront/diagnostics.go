package lspfront

import (
	"log/slog"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/driver"
	"github.com/trill-lang/trillc/internal/source"
)

// compileDocument runs a diagnostics-only compile over a single document's
// current text. StageTypecheck stops short of irgen — an LSP client never
// needs the generated IR, only the diagnostics.
func compileDocument(uri, text string, logger *slog.Logger) *driver.CompileResult {
	files := []source.File{source.FromBuffer(uri, []byte(text))}
	return driver.Compile(files, driver.CompileOptions{
		ModuleName: uri,
		Stage:      driver.StageTypecheck,
		Logger:     logger,
	})
}

// convertDiagnostics renders a compile's diagnostics as LSP Diagnostics.
// Every diagnostic is attached to the document that was compiled: Trill has
// no cross-file import system, so nothing in a CompileResult can name a
// different document than the one that produced it.
func convertDiagnostics(result *driver.CompileResult) []protocol.Diagnostic {
	renderer := diag.NewRenderer(
		diag.WithSourceProvider(result.Context.Sources),
		diag.WithLSPByteFallback(diag.LSPByteFallbackApproximate),
	)

	diagnostics := make([]protocol.Diagnostic, 0)

	for issue := range result.Diagnostics.Issues() {
		var diagRange protocol.Range
		var severity int
		var code, message string
		var relatedInfo []protocol.DiagnosticRelatedInformation

		if issue.Span().IsZero() {
			diagRange = protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 0},
			}
			severity = diag.SeverityToLSP(issue.Severity())
			code = issue.Code().String()
			message = issue.Message()
		} else {
			lspDiag := renderer.LSPDiagnostic(issue)
			if lspDiag == nil {
				continue
			}
			diagRange = protocol.Range{
				Start: protocol.Position{
					Line:      toUInteger(lspDiag.Range.Start.Line),
					Character: toUInteger(lspDiag.Range.Start.Character),
				},
				End: protocol.Position{
					Line:      toUInteger(lspDiag.Range.End.Line),
					Character: toUInteger(lspDiag.Range.End.Character),
				},
			}
			severity = lspDiag.Severity
			code = lspDiag.Code
			message = lspDiag.Message
			relatedInfo = convertRelatedInfo(lspDiag.RelatedInformation)
		}

		src := "trillc"
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:              diagRange,
			Severity:           convertSeverity(severity),
			Code:               &protocol.IntegerOrString{Value: code},
			Source:             &src,
			Message:            message,
			RelatedInformation: relatedInfo,
		})
	}

	return diagnostics
}

// toUInteger safely converts an int to protocol.UInteger, clamping
// negative values to 0.
func toUInteger(n int) protocol.UInteger {
	if n < 0 {
		return 0
	}
	return protocol.UInteger(n)
}

func convertSeverity(severity int) *protocol.DiagnosticSeverity {
	var s protocol.DiagnosticSeverity
	switch severity {
	case diag.LSPSeverityError:
		s = protocol.DiagnosticSeverityError
	case diag.LSPSeverityWarning:
		s = protocol.DiagnosticSeverityWarning
	case diag.LSPSeverityInformation:
		s = protocol.DiagnosticSeverityInformation
	case diag.LSPSeverityHint:
		s = protocol.DiagnosticSeverityHint
	default:
		s = protocol.DiagnosticSeverityError
	}
	return &s
}

func convertRelatedInfo(related []diag.LSPRelatedInfo) []protocol.DiagnosticRelatedInformation {
	if len(related) == 0 {
		return nil
	}

	result := make([]protocol.DiagnosticRelatedInformation, 0, len(related))
	for _, rel := range related {
		result = append(result, protocol.DiagnosticRelatedInformation{
			Location: protocol.Location{
				URI: rel.Location.URI,
				Range: protocol.Range{
					Start: protocol.Position{
						Line:      toUInteger(rel.Location.Range.Start.Line),
						Character: toUInteger(rel.Location.Range.Start.Character),
					},
					End: protocol.Position{
						Line:      toUInteger(rel.Location.Range.End.Line),
						Character: toUInteger(rel.Location.Range.End.Character),
					},
				},
			},
			Message: rel.Message,
		})
	}
	return result
}
