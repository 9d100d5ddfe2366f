package diag

import (
	"strings"
	"testing"
)

func TestOK(t *testing.T) {
	r := OK()

	if !r.OK() {
		t.Error("OK().OK() = false; want true")
	}
	if r.HasErrors() {
		t.Error("OK().HasErrors() = true; want false")
	}
	if r.Len() != 0 {
		t.Errorf("OK().Len() = %d; want 0", r.Len())
	}
	if r.LimitReached() {
		t.Error("OK().LimitReached() = true; want false")
	}
	if r.DroppedCount() != 0 {
		t.Errorf("OK().DroppedCount() = %d; want 0", r.DroppedCount())
	}
}

func TestResult_SeverityQueries(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error").Build(),
		NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build(),
		NewIssue(Note, E_INTERNAL, "note").Build(),
	}

	r := newResult(issues, 0, false, 0)

	if r.OK() {
		t.Error("OK() = true; want false (has error)")
	}
	if !r.HasErrors() {
		t.Error("HasErrors() = false; want true")
	}
	if !r.HasWarnings() {
		t.Error("HasWarnings() = false; want true")
	}
	if !r.HasNotes() {
		t.Error("HasNotes() = false; want true")
	}

	counts := r.SeverityCounts()
	if counts.Errors != 1 {
		t.Errorf("SeverityCounts().Errors = %d; want 1", counts.Errors)
	}
	if counts.Warnings != 1 {
		t.Errorf("SeverityCounts().Warnings = %d; want 1", counts.Warnings)
	}
	if counts.Notes != 1 {
		t.Errorf("SeverityCounts().Notes = %d; want 1", counts.Notes)
	}
}

func TestResult_OKWithWarnings(t *testing.T) {
	issues := []Issue{
		NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build(),
		NewIssue(Note, E_INTERNAL, "note").Build(),
	}

	r := newResult(issues, 0, false, 0)

	// Result should be OK because there are no Error issues
	if !r.OK() {
		t.Error("OK() = false; want true (only warnings and notes)")
	}
	if r.HasErrors() {
		t.Error("HasErrors() = true; want false (only warnings and notes)")
	}
}

func TestResult_LimitTracking(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error").Build(),
	}

	r := newResult(issues, 10, true, 5)

	if !r.LimitReached() {
		t.Error("LimitReached() = false; want true")
	}
	if r.DroppedCount() != 5 {
		t.Errorf("DroppedCount() = %d; want 5", r.DroppedCount())
	}
	if r.Limit() != 10 {
		t.Errorf("Limit() = %d; want 10", r.Limit())
	}
}

func TestResult_Issues_Iterator(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "first").Build(),
		NewIssue(Warning, E_INVALID_MODIFIER, "second").Build(),
		NewIssue(Error, E_TYPE_MISMATCH, "third").Build(),
	}

	r := newResult(issues, 0, false, 0)

	var count int
	var messages []string
	for issue := range r.Issues() {
		count++
		messages = append(messages, issue.Message())
	}

	if count != 3 {
		t.Errorf("Issues() yielded %d; want 3", count)
	}
	if messages[0] != "first" || messages[1] != "second" || messages[2] != "third" {
		t.Errorf("Issues() order wrong: %v", messages)
	}
}

func TestResult_Issues_EarlyBreak(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "first").Build(),
		NewIssue(Error, E_SYNTAX, "second").Build(),
		NewIssue(Error, E_SYNTAX, "third").Build(),
	}

	r := newResult(issues, 0, false, 0)

	var count int
	for range r.Issues() {
		count++
		if count == 2 {
			break
		}
	}

	if count != 2 {
		t.Errorf("early break yielded %d; want 2", count)
	}
}

func TestResult_IssuesSlice_DeepCopy(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "original").
			WithDetails(Detail{Key: DetailKeyTypeName, Value: "original"}).
			Build(),
	}

	r := newResult(issues, 0, false, 0)

	slice := r.IssuesSlice()

	// Modify returned slice's details (via the clone)
	details := slice[0].Details()
	details[0].Value = "modified"

	// Original should be unchanged
	for issue := range r.Issues() {
		issueDetails := issue.Details()
		if issueDetails[0].Value == "modified" {
			t.Error("IssuesSlice returned reference, not deep copy")
		}
	}
}

func TestResult_IssuesSlice_NilForEmpty(t *testing.T) {
	r := OK()

	if slice := r.IssuesSlice(); slice != nil {
		t.Error("IssuesSlice() should be nil for empty result")
	}
}

func TestResult_Errors(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error").Build(),
		NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build(),
	}

	r := newResult(issues, 0, false, 0)

	var count int
	for issue := range r.Errors() {
		if issue.Severity() != Error {
			t.Errorf("Errors() yielded %s issue", issue.Severity())
		}
		count++
	}

	if count != 1 {
		t.Errorf("Errors() yielded %d; want 1", count)
	}
}

func TestResult_ErrorsSlice(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error1").Build(),
		NewIssue(Error, E_TYPE_MISMATCH, "error2").Build(),
		NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build(),
	}

	r := newResult(issues, 0, false, 0)

	slice := r.ErrorsSlice()
	if len(slice) != 2 {
		t.Fatalf("ErrorsSlice() len = %d; want 2", len(slice))
	}
}

func TestResult_ErrorsSlice_NilForEmpty(t *testing.T) {
	issues := []Issue{
		NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build(),
	}

	r := newResult(issues, 0, false, 0)

	if slice := r.ErrorsSlice(); slice != nil {
		t.Error("ErrorsSlice() should be nil when no errors")
	}
}

func TestResult_Warnings(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error").Build(),
		NewIssue(Warning, E_INVALID_MODIFIER, "warning1").Build(),
		NewIssue(Warning, E_SHADOWED_DECLARATION, "warning2").Build(),
	}

	r := newResult(issues, 0, false, 0)

	var count int
	for issue := range r.Warnings() {
		if issue.Severity() != Warning {
			t.Errorf("Warnings() yielded %s issue", issue.Severity())
		}
		count++
	}

	if count != 2 {
		t.Errorf("Warnings() yielded %d; want 2", count)
	}
}

func TestResult_WarningsSlice(t *testing.T) {
	issues := []Issue{
		NewIssue(Warning, E_INVALID_MODIFIER, "warning1").Build(),
		NewIssue(Warning, E_SHADOWED_DECLARATION, "warning2").Build(),
	}

	r := newResult(issues, 0, false, 0)

	slice := r.WarningsSlice()
	if len(slice) != 2 {
		t.Fatalf("WarningsSlice() len = %d; want 2", len(slice))
	}
}

func TestResult_BySeverity(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error").Build(),
		NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build(),
		NewIssue(Note, E_INTERNAL, "note").Build(),
	}

	r := newResult(issues, 0, false, 0)

	for _, sev := range []Severity{Error, Warning, Note} {
		var count int
		for issue := range r.BySeverity(sev) {
			if issue.Severity() != sev {
				t.Errorf("BySeverity(%s) yielded %s issue", sev, issue.Severity())
			}
			count++
		}
		if count != 1 {
			t.Errorf("BySeverity(%s) yielded %d; want 1", sev, count)
		}
	}
}

func TestResult_BySeveritySlice(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error1").Build(),
		NewIssue(Error, E_TYPE_MISMATCH, "error2").Build(),
	}

	r := newResult(issues, 0, false, 0)

	slice := r.BySeveritySlice(Error)
	if len(slice) != 2 {
		t.Fatalf("BySeveritySlice(Error) len = %d; want 2", len(slice))
	}

	// Warning slice should be nil
	if slice := r.BySeveritySlice(Warning); slice != nil {
		t.Error("BySeveritySlice(Warning) should be nil when no warnings")
	}
}

func TestResult_IssuesAtLeastAsSevereAs(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error").Build(),
		NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build(),
		NewIssue(Note, E_INTERNAL, "note").Build(),
	}

	r := newResult(issues, 0, false, 0)

	tests := []struct {
		threshold Severity
		wantCount int
	}{
		{Error, 1},   // Only Error
		{Warning, 2}, // Error + Warning
		{Note, 3},    // All
	}

	for _, tt := range tests {
		t.Run(tt.threshold.String(), func(t *testing.T) {
			var count int
			for issue := range r.IssuesAtLeastAsSevereAs(tt.threshold) {
				if !issue.Severity().IsAtLeastAsSevereAs(tt.threshold) {
					t.Errorf("IssuesAtLeastAsSevereAs(%s) yielded %s issue",
						tt.threshold, issue.Severity())
				}
				count++
			}
			if count != tt.wantCount {
				t.Errorf("IssuesAtLeastAsSevereAs(%s) yielded %d; want %d",
					tt.threshold, count, tt.wantCount)
			}
		})
	}
}

func TestResult_IssuesAtLeastAsSevereAsSlice(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error").Build(),
		NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build(),
		NewIssue(Note, E_INTERNAL, "note").Build(),
	}

	r := newResult(issues, 0, false, 0)

	slice := r.IssuesAtLeastAsSevereAsSlice(Warning)
	if len(slice) != 2 {
		t.Fatalf("IssuesAtLeastAsSevereAsSlice(Warning) len = %d; want 2", len(slice))
	}

	errOnly := newResult([]Issue{NewIssue(Warning, E_INVALID_MODIFIER, "w").Build()}, 0, false, 0)
	if slice := errOnly.IssuesAtLeastAsSevereAsSlice(Error); slice != nil {
		t.Errorf("IssuesAtLeastAsSevereAsSlice(Error) = %v; want nil", slice)
	}
}

func TestResult_Messages(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error message").Build(),
		NewIssue(Warning, E_INVALID_MODIFIER, "warning message").Build(),
	}

	r := newResult(issues, 0, false, 0)

	messages := r.Messages()
	if len(messages) != 1 {
		t.Fatalf("Messages() len = %d; want 1", len(messages))
	}
	if messages[0] != "error message" {
		t.Errorf("Messages()[0] = %q; want %q", messages[0], "error message")
	}
}

func TestResult_Messages_NilForEmpty(t *testing.T) {
	issues := []Issue{
		NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build(),
	}

	r := newResult(issues, 0, false, 0)

	if messages := r.Messages(); messages != nil {
		t.Error("Messages() should be nil when no errors")
	}
}

func TestResult_MessagesAtOrAbove(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error").Build(),
		NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build(),
		NewIssue(Note, E_INTERNAL, "note").Build(),
	}

	r := newResult(issues, 0, false, 0)

	messages := r.MessagesAtOrAbove(Warning)
	if len(messages) != 2 {
		t.Fatalf("MessagesAtOrAbove(Warning) len = %d; want 2", len(messages))
	}
}

func TestResult_String_OK(t *testing.T) {
	r := OK()

	if s := r.String(); s != "OK" {
		t.Errorf("String() = %q; want %q", s, "OK")
	}
}

func TestResult_String_WithErrors(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "syntax error").Build(),
		NewIssue(Error, E_TYPE_MISMATCH, "type mismatch").Build(),
	}

	r := newResult(issues, 0, false, 0)

	s := r.String()
	if !strings.Contains(s, "2 error(s)") {
		t.Errorf("String() should contain error count: %q", s)
	}
	if !strings.Contains(s, "E_SYNTAX") {
		t.Errorf("String() should contain error code: %q", s)
	}
}

func TestResult_String_WithLimitReached(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error").Build(),
	}

	r := newResult(issues, 10, true, 5)

	s := r.String()
	if !strings.Contains(s, "limit reached") {
		t.Errorf("String() should contain limit info: %q", s)
	}
	if !strings.Contains(s, "5 dropped") {
		t.Errorf("String() should contain dropped count: %q", s)
	}
}

func TestResult_Immutability(t *testing.T) {
	// Result should not be constructable with arbitrary issues via public API.
	// The only public ways to get a Result are OK() and Collector.Result().
	r := OK()
	if !r.OK() {
		t.Error("OK() should return OK result")
	}

	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "test").Build(),
	}
	r = newResult(issues, 0, false, 0)

	slice1 := r.IssuesSlice()
	slice2 := r.IssuesSlice()

	if len(slice1) == 0 {
		t.Fatal("IssuesSlice returned empty")
	}

	// The slices should be independent
	if &slice1[0] == &slice2[0] {
		t.Error("IssuesSlice returned same backing array")
	}
}

// TestResult_IssuesAtLeastAsSevereAs_InvalidThreshold verifies that
// IssuesAtLeastAsSevereAs and IssuesAtLeastAsSevereAsSlice behave consistently
// when given an invalid severity threshold (> Note).
func TestResult_IssuesAtLeastAsSevereAs_InvalidThreshold(t *testing.T) {
	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error").Build(),
		NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build(),
		NewIssue(Note, E_INTERNAL, "note").Build(),
	}
	r := newResult(issues, 0, false, 0)

	// Invalid threshold (Severity(255) is > Note). IsAtLeastAsSevereAs is
	// s <= threshold, so an out-of-range threshold is satisfied by every
	// valid severity.
	invalidThreshold := Severity(255)

	iteratorCount := 0
	for range r.IssuesAtLeastAsSevereAs(invalidThreshold) {
		iteratorCount++
	}

	slice := r.IssuesAtLeastAsSevereAsSlice(invalidThreshold)
	sliceCount := len(slice)

	if iteratorCount != len(issues) {
		t.Errorf("iterator count = %d; want %d (all issues)", iteratorCount, len(issues))
	}
	if sliceCount != len(issues) {
		t.Errorf("slice count = %d; want %d (all issues)", sliceCount, len(issues))
	}
	if iteratorCount != sliceCount {
		t.Errorf("iterator count (%d) != slice count (%d); should be consistent",
			iteratorCount, sliceCount)
	}
}

func TestSeverityCounts_ZeroValue(t *testing.T) {
	var counts SeverityCounts
	if counts.Errors != 0 || counts.Warnings != 0 || counts.Notes != 0 {
		t.Errorf("zero SeverityCounts = %+v; want all zero", counts)
	}
}
