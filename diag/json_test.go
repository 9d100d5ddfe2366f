package diag

import (
	"encoding/json"
	"testing"

	"github.com/trill-lang/trillc/location"
)

func TestFormatIssueJSON_Basic(t *testing.T) {
	r := NewRenderer()
	issue := NewIssue(Error, E_SYNTAX, "unexpected token").Build()

	data := r.FormatIssueJSON(issue)

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded["severity"] != "error" {
		t.Errorf("severity = %v; want %q", decoded["severity"], "error")
	}
	if decoded["code"] != "E_SYNTAX" {
		t.Errorf("code = %v; want %q", decoded["code"], "E_SYNTAX")
	}
	if decoded["message"] != "unexpected token" {
		t.Errorf("message = %v; want %q", decoded["message"], "unexpected token")
	}
	if _, present := decoded["span"]; present {
		t.Error("span should be omitted when unset")
	}
	if _, present := decoded["hint"]; present {
		t.Error("hint should be omitted when unset")
	}
}

func TestFormatIssueJSON_WithSpan(t *testing.T) {
	r := NewRenderer()
	source := location.MustNewSourceID("test://module.trill")
	issue := NewIssue(Error, E_SYNTAX, "msg").
		WithSpan(location.Span{
			Source: source,
			Start:  location.Position{Line: 1, Column: 1, Byte: 0},
			End:    location.Position{Line: 1, Column: 5, Byte: 4},
		}).
		Build()

	data := r.FormatIssueJSON(issue)

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	span, ok := decoded["span"].(map[string]any)
	if !ok {
		t.Fatalf("span should be present, got: %v", decoded["span"])
	}
	if span["source"] != source.String() {
		t.Errorf("source = %v; want %q", span["source"], source.String())
	}

	start, ok := span["start"].(map[string]any)
	if !ok {
		t.Fatalf("start should be present")
	}
	if start["line"] != float64(1) || start["column"] != float64(1) {
		t.Errorf("start = %v", start)
	}
	if _, present := start["byte"]; !present {
		t.Error("byte should be present when offset is known")
	}
}

func TestFormatIssueJSON_ByteOffsetOmittedWhenUnknown(t *testing.T) {
	r := NewRenderer()
	source := location.MustNewSourceID("test://module.trill")
	issue := NewIssue(Error, E_SYNTAX, "msg").
		WithSpan(location.Span{
			Source: source,
			Start:  location.Position{Line: 1, Column: 1, Byte: -1},
			End:    location.Position{Line: 1, Column: 5, Byte: -1},
		}).
		Build()

	data := r.FormatIssueJSON(issue)

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	span := decoded["span"].(map[string]any)
	start := span["start"].(map[string]any)

	if _, present := start["byte"]; present {
		t.Error("byte should be omitted when offset is unknown (-1)")
	}
}

func TestFormatIssueJSON_ByteOffsetZeroEmitted(t *testing.T) {
	r := NewRenderer()
	source := location.MustNewSourceID("test://module.trill")
	issue := NewIssue(Error, E_SYNTAX, "msg").
		WithSpan(location.Span{
			Source: source,
			Start:  location.Position{Line: 1, Column: 1, Byte: 0},
			End:    location.Position{Line: 1, Column: 1, Byte: 0},
		}).
		Build()

	data := r.FormatIssueJSON(issue)

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	span := decoded["span"].(map[string]any)
	start := span["start"].(map[string]any)

	byteVal, present := start["byte"]
	if !present {
		t.Fatal("byte 0 should be emitted, not omitted")
	}
	if byteVal != float64(0) {
		t.Errorf("byte = %v; want 0", byteVal)
	}
}

func TestFormatIssueJSON_WithHint(t *testing.T) {
	r := NewRenderer()
	issue := NewIssue(Error, E_SYNTAX, "msg").
		WithHint("try this instead").
		Build()

	data := r.FormatIssueJSON(issue)

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded["hint"] != "try this instead" {
		t.Errorf("hint = %v; want %q", decoded["hint"], "try this instead")
	}
}

func TestFormatIssueJSON_WithHighlights(t *testing.T) {
	r := NewRenderer()
	source := location.MustNewSourceID("test://module.trill")
	issue := NewIssue(Error, E_TYPE_MISMATCH, "msg").
		WithSpan(location.Point(source, 1, 1)).
		WithHighlights(
			location.Point(source, 1, 10),
			location.Point(source, 1, 20),
		).
		Build()

	data := r.FormatIssueJSON(issue)

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	highlights, ok := decoded["highlights"].([]any)
	if !ok {
		t.Fatalf("highlights should be present, got: %v", decoded["highlights"])
	}
	if len(highlights) != 2 {
		t.Errorf("len(highlights) = %d; want 2", len(highlights))
	}
}

func TestFormatIssueJSON_NoHighlightsOmitted(t *testing.T) {
	r := NewRenderer()
	issue := NewIssue(Error, E_SYNTAX, "msg").Build()

	data := r.FormatIssueJSON(issue)

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if _, present := decoded["highlights"]; present {
		t.Error("highlights should be omitted when empty")
	}
}

func TestFormatIssueJSON_WithRelated(t *testing.T) {
	r := NewRenderer()
	source := location.MustNewSourceID("test://module.trill")
	issue := NewIssue(Error, E_REDECLARATION, "msg").
		WithRelated(location.RelatedInfo{
			Message: "first declared here",
			Span:    location.Point(source, 3, 1),
		}).
		Build()

	data := r.FormatIssueJSON(issue)

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	related, ok := decoded["related"].([]any)
	if !ok || len(related) != 1 {
		t.Fatalf("related should have 1 entry, got: %v", decoded["related"])
	}

	entry := related[0].(map[string]any)
	if entry["message"] != "first declared here" {
		t.Errorf("message = %v", entry["message"])
	}
	if _, present := entry["span"]; !present {
		t.Error("related span should be present")
	}
}

func TestFormatIssueJSON_RelatedWithoutSpan(t *testing.T) {
	r := NewRenderer()
	issue := NewIssue(Error, E_REDECLARATION, "msg").
		WithRelated(location.RelatedInfo{Message: "context only"}).
		Build()

	data := r.FormatIssueJSON(issue)

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	related := decoded["related"].([]any)
	entry := related[0].(map[string]any)
	if _, present := entry["span"]; present {
		t.Error("related span should be omitted when zero")
	}
}

func TestFormatIssueJSON_WithDetails(t *testing.T) {
	r := NewRenderer()
	issue := NewIssue(Error, E_TYPE_MISMATCH, "msg").
		WithDetails(Detail{Key: DetailKeyTypeName, Value: "Int"}).
		Build()

	data := r.FormatIssueJSON(issue)

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	details, ok := decoded["details"].([]any)
	if !ok || len(details) != 1 {
		t.Fatalf("details should have 1 entry, got: %v", decoded["details"])
	}

	entry := details[0].(map[string]any)
	if entry["key"] != string(DetailKeyTypeName) {
		t.Errorf("key = %v", entry["key"])
	}
	if entry["value"] != "Int" {
		t.Errorf("value = %v", entry["value"])
	}
}

func TestFormatResultJSON_Empty(t *testing.T) {
	r := NewRenderer()
	data := r.FormatResultJSON(OK())

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	issues, ok := decoded["issues"].([]any)
	if !ok {
		t.Fatalf("issues should be an array, got: %v", decoded["issues"])
	}
	if len(issues) != 0 {
		t.Errorf("len(issues) = %d; want 0", len(issues))
	}
	if _, present := decoded["limitReached"]; present {
		t.Error("limitReached should be omitted when not reached")
	}
}

func TestFormatResultJSON_MultipleIssues(t *testing.T) {
	c := NewCollector(0)
	c.Collect(NewIssue(Error, E_SYNTAX, "first").Build())
	c.Collect(NewIssue(Warning, E_INVALID_MODIFIER, "second").Build())

	r := NewRenderer()
	data := r.FormatResultJSON(c.Result())

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	issues := decoded["issues"].([]any)
	if len(issues) != 2 {
		t.Fatalf("len(issues) = %d; want 2", len(issues))
	}
}

func TestFormatResultJSON_LimitReached(t *testing.T) {
	c := NewCollector(1)
	c.Collect(NewIssue(Error, E_SYNTAX, "first").Build())
	c.Collect(NewIssue(Error, E_SYNTAX, "second").Build())

	r := NewRenderer()
	data := r.FormatResultJSON(c.Result())

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded["limitReached"] != true {
		t.Errorf("limitReached = %v; want true", decoded["limitReached"])
	}
	if decoded["limit"] != float64(1) {
		t.Errorf("limit = %v; want 1", decoded["limit"])
	}
	if decoded["droppedCount"] != float64(1) {
		t.Errorf("droppedCount = %v; want 1", decoded["droppedCount"])
	}
}

func TestFormatResultJSON_LimitFieldsOmittedWhenNotReached(t *testing.T) {
	c := NewCollector(0)
	c.Collect(NewIssue(Error, E_SYNTAX, "first").Build())

	r := NewRenderer()
	data := r.FormatResultJSON(c.Result())

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if _, present := decoded["limit"]; present {
		t.Error("limit should be omitted when not reached")
	}
	if _, present := decoded["droppedCount"]; present {
		t.Error("droppedCount should be omitted when not reached")
	}
}

func TestToSpanWire_ZeroSpanIsNil(t *testing.T) {
	got := toSpanWire(location.Span{})
	if got != nil {
		t.Errorf("toSpanWire(zero) = %v; want nil", got)
	}
}

func TestToPositionWire_UnknownByteOmitted(t *testing.T) {
	pos := location.Position{Line: 1, Column: 1, Byte: -1}
	wire := toPositionWire(pos)

	if wire.Byte != nil {
		t.Errorf("Byte = %v; want nil for unknown offset", wire.Byte)
	}
}

func TestToPositionWire_ZeroByteEmitted(t *testing.T) {
	pos := location.Position{Line: 1, Column: 1, Byte: 0}
	wire := toPositionWire(pos)

	if wire.Byte == nil {
		t.Fatal("Byte should not be nil for offset 0")
	}
	if *wire.Byte != 0 {
		t.Errorf("Byte = %d; want 0", *wire.Byte)
	}
}

func TestFormatIssueJSON_RoundTripViaWireStruct(t *testing.T) {
	r := NewRenderer()
	source := location.MustNewSourceID("test://module.trill")
	issue := NewIssue(Warning, E_INVALID_MODIFIER, "modifier clash").
		WithSpan(location.Span{
			Source: source,
			Start:  location.Position{Line: 2, Column: 3, Byte: 10},
			End:    location.Position{Line: 2, Column: 8, Byte: 15},
		}).
		WithHint("remove one of the modifiers").
		WithHighlights(location.Point(source, 2, 20)).
		WithRelated(location.RelatedInfo{Message: "related", Span: location.Point(source, 1, 1)}).
		WithDetails(Detail{Key: DetailKeyTypeName, Value: "X"}).
		Build()

	data := r.FormatIssueJSON(issue)

	var wire issueWire
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("failed to unmarshal into issueWire: %v", err)
	}

	if wire.Severity != "warning" {
		t.Errorf("Severity = %q; want %q", wire.Severity, "warning")
	}
	if wire.Code != "E_INVALID_MODIFIER" {
		t.Errorf("Code = %q; want %q", wire.Code, "E_INVALID_MODIFIER")
	}
	if wire.Message != "modifier clash" {
		t.Errorf("Message = %q", wire.Message)
	}
	if wire.Span == nil {
		t.Fatal("Span should not be nil")
	}
	if wire.Hint != "remove one of the modifiers" {
		t.Errorf("Hint = %q", wire.Hint)
	}
	if len(wire.Highlights) != 1 {
		t.Errorf("len(Highlights) = %d; want 1", len(wire.Highlights))
	}
	if len(wire.Related) != 1 {
		t.Errorf("len(Related) = %d; want 1", len(wire.Related))
	}
	if len(wire.Details) != 1 {
		t.Errorf("len(Details) = %d; want 1", len(wire.Details))
	}
}
