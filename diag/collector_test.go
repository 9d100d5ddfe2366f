package diag

import (
	"fmt"
	"sync"
	"testing"

	"github.com/trill-lang/trillc/location"
)

func TestNewCollector(t *testing.T) {
	c := NewCollector(100)

	if c.Len() != 0 {
		t.Errorf("Len() = %d; want 0", c.Len())
	}
	if !c.OK() {
		t.Error("OK() = false; want true for empty collector")
	}
	if c.LimitReached() {
		t.Error("LimitReached() = true; want false")
	}
}

func TestCollector_Collect(t *testing.T) {
	c := NewCollector(0) // No limit

	issue := NewIssue(Error, E_SYNTAX, "test error").Build()
	c.Collect(issue)

	if c.Len() != 1 {
		t.Errorf("Len() = %d; want 1", c.Len())
	}
	if c.OK() {
		t.Error("OK() = true; want false after collecting error")
	}
	if !c.HasErrors() {
		t.Error("HasErrors() = false; want true")
	}
}

func TestCollector_Collect_PanicOnZeroValue(t *testing.T) {
	c := NewCollector(0)

	defer func() {
		r := recover()
		if r == nil {
			t.Error("Collect(Issue{}) should panic")
		}
		if s, ok := r.(string); !ok || s != "diag.Collector.Collect: zero-value Issue" {
			t.Errorf("panic message = %v; want 'zero-value Issue'", r)
		}
	}()

	c.Collect(Issue{})
}

func TestCollector_Collect_PanicOnInvalidIssue(t *testing.T) {
	c := NewCollector(0)

	// Issue with code but no message
	invalidIssue := Issue{code: E_SYNTAX}

	defer func() {
		r := recover()
		if r == nil {
			t.Error("Collect(invalid issue) should panic")
		}
	}()

	c.Collect(invalidIssue)
}

func TestCollector_Collect_PanicOnInvalidSeverity(t *testing.T) {
	c := NewCollector(0)

	// Issue with invalid severity (255 is not a valid Severity value)
	invalidIssue := Issue{
		severity: Severity(255),
		code:     E_SYNTAX,
		message:  "test",
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Error("Collect(issue with invalid severity) should panic")
		}
	}()

	c.Collect(invalidIssue)
}

func TestCollector_CollectAll(t *testing.T) {
	c := NewCollector(0)

	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "error 1").Build(),
		NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build(),
		NewIssue(Error, E_TYPE_MISMATCH, "error 2").Build(),
	}

	c.CollectAll(issues)

	if c.Len() != 3 {
		t.Errorf("Len() = %d; want 3", c.Len())
	}
}

func TestCollector_CollectAll_PanicOnInvalid(t *testing.T) {
	c := NewCollector(0)

	issues := []Issue{
		NewIssue(Error, E_SYNTAX, "valid").Build(),
		{}, // Zero value - invalid
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("CollectAll with invalid issue should panic")
		}
	}()

	c.CollectAll(issues)
}

func TestCollector_Merge(t *testing.T) {
	c1 := NewCollector(0)
	c1.Collect(NewIssue(Error, E_SYNTAX, "error 1").Build())
	c1.Collect(NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build())

	result := c1.Result()

	c2 := NewCollector(0)
	c2.Collect(NewIssue(Error, E_TYPE_MISMATCH, "error 2").Build())
	c2.Merge(result)

	if c2.Len() != 3 {
		t.Errorf("Len() = %d; want 3 after merge", c2.Len())
	}
}

func TestCollector_Limit(t *testing.T) {
	c := NewCollector(2)

	c.Collect(NewIssue(Error, E_SYNTAX, "first").Build())
	c.Collect(NewIssue(Error, E_SYNTAX, "second").Build())

	if c.LimitReached() {
		t.Error("LimitReached() = true; want false (at limit but not over)")
	}

	c.Collect(NewIssue(Error, E_SYNTAX, "third").Build())

	if !c.LimitReached() {
		t.Error("LimitReached() = false; want true")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d; want 2 (limit)", c.Len())
	}
	if c.DroppedCount() != 1 {
		t.Errorf("DroppedCount() = %d; want 1", c.DroppedCount())
	}
}

func TestCollector_Result_Sorted(t *testing.T) {
	source := location.MustNewSourceID("test://b.trill")
	sourceA := location.MustNewSourceID("test://a.trill")

	c := NewCollector(0)

	// Add issues in non-sorted order
	c.Collect(NewIssue(Error, E_SYNTAX, "b:10").WithSpan(location.Point(source, 10, 1)).Build())
	c.Collect(NewIssue(Error, E_SYNTAX, "a:5").WithSpan(location.Point(sourceA, 5, 1)).Build())
	c.Collect(NewIssue(Error, E_SYNTAX, "b:1").WithSpan(location.Point(source, 1, 1)).Build())

	result := c.Result()

	var messages []string
	for issue := range result.Issues() {
		messages = append(messages, issue.Message())
	}

	// Should be sorted: a.trill first, then b.trill by line
	expected := []string{"a:5", "b:1", "b:10"}
	for i, msg := range messages {
		if msg != expected[i] {
			t.Errorf("Issue[%d].Message() = %q; want %q", i, msg, expected[i])
		}
	}
}

func TestCollector_Result_Cached(t *testing.T) {
	c := NewCollector(0)
	c.Collect(NewIssue(Error, E_SYNTAX, "test").Build())

	result1 := c.Result()
	result2 := c.Result()

	// Results should be equal (cached)
	if result1.Len() != result2.Len() {
		t.Error("cached results should be equal")
	}

	// Collect invalidates cache
	c.Collect(NewIssue(Warning, E_INVALID_MODIFIER, "another").Build())
	result3 := c.Result()

	if result3.Len() != 2 {
		t.Errorf("Len() = %d; want 2 after new collect", result3.Len())
	}
}

func TestCollector_Result_Independent(t *testing.T) {
	c := NewCollector(0)
	c.Collect(NewIssue(Error, E_SYNTAX, "first").Build())

	result1 := c.Result()

	c.Collect(NewIssue(Error, E_TYPE_MISMATCH, "second").Build())

	// result1 should still have only 1 issue
	if result1.Len() != 1 {
		t.Errorf("result1.Len() = %d; want 1 (should be independent)", result1.Len())
	}

	result2 := c.Result()
	if result2.Len() != 2 {
		t.Errorf("result2.Len() = %d; want 2", result2.Len())
	}
}

func TestCollector_SeverityQueries(t *testing.T) {
	c := NewCollector(0)

	// Initially OK
	if !c.OK() {
		t.Error("empty collector should be OK")
	}
	if c.HasErrors() {
		t.Error("empty collector should not have errors")
	}

	// Add warning - still OK
	c.Collect(NewIssue(Warning, E_INVALID_MODIFIER, "warning").Build())
	if !c.OK() {
		t.Error("collector with only warnings should be OK")
	}
	if c.HasErrors() {
		t.Error("collector with only warnings should not have errors")
	}

	// Add error - not OK
	c.Collect(NewIssue(Error, E_SYNTAX, "error").Build())
	if c.OK() {
		t.Error("collector with error should not be OK")
	}
	if !c.HasErrors() {
		t.Error("collector with error should have errors")
	}
}

// TestCollector_Dedup_DropsDuplicateRenderedForm verifies that an issue whose
// rendered form (source, position, code, severity, message) exactly matches
// one already collected is silently dropped and does not count against
// DroppedCount or LimitReached.
func TestCollector_Dedup_DropsDuplicateRenderedForm(t *testing.T) {
	source := location.MustNewSourceID("test://a.trill")
	span := location.Point(source, 3, 7)

	c := NewCollector(0)
	c.Collect(NewIssue(Error, E_UNDECLARED_IDENTIFIER, "undeclared identifier 'x'").WithSpan(span).Build())
	c.Collect(NewIssue(Error, E_UNDECLARED_IDENTIFIER, "undeclared identifier 'x'").WithSpan(span).Build())
	c.Collect(NewIssue(Error, E_UNDECLARED_IDENTIFIER, "undeclared identifier 'x'").WithSpan(span).Build())

	if c.Len() != 1 {
		t.Errorf("Len() = %d; want 1 (duplicates dropped)", c.Len())
	}
	if c.DroppedCount() != 0 {
		t.Errorf("DroppedCount() = %d; want 0 (dedup is not a limit drop)", c.DroppedCount())
	}
	if c.LimitReached() {
		t.Error("LimitReached() = true; want false (dedup never triggers limit)")
	}
}

// TestCollector_Dedup_DistinctFormsKept verifies issues whose rendered forms
// differ even slightly (message, span, severity, or code) are all kept.
func TestCollector_Dedup_DistinctFormsKept(t *testing.T) {
	source := location.MustNewSourceID("test://a.trill")
	span := location.Point(source, 3, 7)

	c := NewCollector(0)
	c.Collect(NewIssue(Error, E_UNDECLARED_IDENTIFIER, "undeclared identifier 'x'").WithSpan(span).Build())
	c.Collect(NewIssue(Error, E_UNDECLARED_IDENTIFIER, "undeclared identifier 'y'").WithSpan(span).Build())
	c.Collect(NewIssue(Warning, E_UNDECLARED_IDENTIFIER, "undeclared identifier 'x'").WithSpan(span).Build())
	c.Collect(NewIssue(Error, E_SYNTAX, "undeclared identifier 'x'").WithSpan(span).Build())
	c.Collect(NewIssue(Error, E_UNDECLARED_IDENTIFIER, "undeclared identifier 'x'").WithSpan(location.Point(source, 4, 7)).Build())

	if c.Len() != 5 {
		t.Errorf("Len() = %d; want 5 (all forms distinct)", c.Len())
	}
}

// TestCollector_Dedup_IgnoresLimit verifies dedup is checked before the limit
// check, so repeated identical issues never consume limit capacity.
func TestCollector_Dedup_IgnoresLimit(t *testing.T) {
	source := location.MustNewSourceID("test://a.trill")
	span := location.Point(source, 1, 1)

	c := NewCollector(1)
	for range 10 {
		c.Collect(NewIssue(Error, E_SYNTAX, "same issue").WithSpan(span).Build())
	}

	if c.Len() != 1 {
		t.Errorf("Len() = %d; want 1", c.Len())
	}
	if c.LimitReached() {
		t.Error("LimitReached() = true; want false (only one distinct issue ever collected)")
	}
	if c.DroppedCount() != 0 {
		t.Errorf("DroppedCount() = %d; want 0", c.DroppedCount())
	}

	// A genuinely new issue should still respect the limit.
	c.Collect(NewIssue(Error, E_SYNTAX, "different issue").WithSpan(span).Build())
	if !c.LimitReached() {
		t.Error("LimitReached() = false; want true after a distinct issue exceeds the limit")
	}
	if c.DroppedCount() != 1 {
		t.Errorf("DroppedCount() = %d; want 1", c.DroppedCount())
	}
}

// TestCollector_Dedup_Merge verifies that Merge also applies dedup semantics.
func TestCollector_Dedup_Merge(t *testing.T) {
	source := location.MustNewSourceID("test://a.trill")
	span := location.Point(source, 1, 1)

	c1 := NewCollector(0)
	c1.Collect(NewIssue(Error, E_SYNTAX, "dup").WithSpan(span).Build())
	result := c1.Result()

	c2 := NewCollector(0)
	c2.Collect(NewIssue(Error, E_SYNTAX, "dup").WithSpan(span).Build())
	c2.Merge(result)

	if c2.Len() != 1 {
		t.Errorf("Len() = %d; want 1 (merge deduplicates against existing issues)", c2.Len())
	}
}

func TestCollector_ThreadSafety(t *testing.T) {
	c := NewCollector(0)

	var wg sync.WaitGroup
	numGoroutines := 10
	issuesPerGoroutine := 100

	// Concurrent writes. Each issue is made distinct via goroutine id and
	// index so none collide under dedup.
	for i := range numGoroutines {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := range issuesPerGoroutine {
				issue := NewIssue(Error, E_SYNTAX, fmt.Sprintf("g%d-i%d", id, j)).
					WithDetails(Detail{Key: "id", Value: fmt.Sprintf("%d", id)}).
					WithDetails(Detail{Key: "j", Value: fmt.Sprintf("%d", j)}).
					Build()
				c.Collect(issue)
			}
		}(i)
	}

	// Concurrent reads during writes
	for range numGoroutines / 2 {
		wg.Go(func() {
			for range issuesPerGoroutine {
				_ = c.OK()
				_ = c.HasErrors()
				_ = c.Len()
			}
		})
	}

	wg.Wait()

	expected := numGoroutines * issuesPerGoroutine
	if c.Len() != expected {
		t.Errorf("Len() = %d; want %d", c.Len(), expected)
	}
}

func TestCollector_ThreadSafety_Result(t *testing.T) {
	c := NewCollector(0)

	var wg sync.WaitGroup

	// Writers
	for g := range 5 {
		wg.Go(func() {
			for i := range 50 {
				c.Collect(NewIssue(Error, E_SYNTAX, fmt.Sprintf("g%d-i%d", g, i)).Build())
			}
		})
	}

	// Readers requesting Result during writes
	for range 3 {
		wg.Go(func() {
			for range 20 {
				result := c.Result()
				// Just access the result to ensure no race
				_ = result.Len()
				_ = result.OK()
			}
		})
	}

	wg.Wait()
}

func TestCollector_ThreadSafety_Merge(t *testing.T) {
	// Create a source result with distinct issues
	source := NewCollector(0)
	for i := range 10 {
		source.Collect(NewIssue(Error, E_SYNTAX, fmt.Sprintf("source-%d", i)).Build())
	}
	sourceResult := source.Result()

	// Concurrent merges
	c := NewCollector(0)
	var wg sync.WaitGroup

	for range 5 {
		wg.Go(func() {
			c.Merge(sourceResult)
		})
	}

	wg.Wait()

	// Merge deduplicates, so repeated merges of the same result should not
	// grow the collector beyond the source's 10 distinct issues.
	if c.Len() != 10 {
		t.Errorf("Len() = %d; want 10 (merges of identical issues deduplicate)", c.Len())
	}
}

func TestCollector_NoLimit(t *testing.T) {
	c := NewCollector(0) // 0 means no limit

	// Add many distinct issues
	for i := range 1000 {
		c.Collect(NewIssue(Error, E_SYNTAX, fmt.Sprintf("issue %d", i)).Build())
	}

	if c.Len() != 1000 {
		t.Errorf("Len() = %d; want 1000", c.Len())
	}
	if c.LimitReached() {
		t.Error("LimitReached() = true; want false (no limit)")
	}
}

func TestCollector_NegativeLimit(t *testing.T) {
	c := NewCollector(-1) // Negative means no limit

	for i := range 100 {
		c.Collect(NewIssue(Error, E_SYNTAX, fmt.Sprintf("issue %d", i)).Build())
	}

	if c.Len() != 100 {
		t.Errorf("Len() = %d; want 100", c.Len())
	}
	if c.LimitReached() {
		t.Error("LimitReached() = true; want false (negative = no limit)")
	}
}

// -----------------------------------------------------------------------------
// Deterministic Ordering Tests
// -----------------------------------------------------------------------------

func TestCompareIssues_SpanOrdering(t *testing.T) {
	sourceA := location.MustNewSourceID("test://a.trill")
	sourceB := location.MustNewSourceID("test://b.trill")

	issueA1 := NewIssue(Error, E_SYNTAX, "msg").WithSpan(location.Point(sourceA, 1, 1)).Build()
	issueA5 := NewIssue(Error, E_SYNTAX, "msg").WithSpan(location.Point(sourceA, 5, 1)).Build()
	issueB1 := NewIssue(Error, E_SYNTAX, "msg").WithSpan(location.Point(sourceB, 1, 1)).Build()

	if cmp := compareIssues(issueA1, issueA5); cmp >= 0 {
		t.Errorf("compareIssues(a:1, a:5) = %d; want < 0", cmp)
	}
	if cmp := compareIssues(issueA5, issueB1); cmp >= 0 {
		t.Errorf("compareIssues(a:5, b:1) = %d; want < 0 (source takes precedence)", cmp)
	}
}

func TestCompareIssues_CodeTieBreaker(t *testing.T) {
	source := location.MustNewSourceID("test://a.trill")
	span := location.Point(source, 1, 1)

	// Same span, different code
	issueSyntax := NewIssue(Error, E_SYNTAX, "same message").WithSpan(span).Build()
	issueTypeMismatch := NewIssue(Error, E_TYPE_MISMATCH, "same message").WithSpan(span).Build()

	cmp := compareIssues(issueSyntax, issueTypeMismatch)
	if cmp == 0 {
		t.Fatal("compareIssues should distinguish issues with different codes")
	}
	// Reversing should flip the sign
	if rev := compareIssues(issueTypeMismatch, issueSyntax); (cmp < 0) == (rev < 0) {
		t.Errorf("compareIssues is not antisymmetric: cmp=%d rev=%d", cmp, rev)
	}
}

func TestCompareIssues_SeverityTieBreaker(t *testing.T) {
	source := location.MustNewSourceID("test://a.trill")

	// Same span, same code, different severity
	errorIssue := NewIssue(Error, E_SYNTAX, "same message").
		WithSpan(location.Point(source, 1, 1)).
		Build()
	warningIssue := NewIssue(Warning, E_SYNTAX, "same message").
		WithSpan(location.Point(source, 1, 1)).
		Build()

	// Error (severity 0) < Warning (severity 1) numerically
	if cmp := compareIssues(errorIssue, warningIssue); cmp >= 0 {
		t.Errorf("compareIssues(Error, Warning) = %d; want < 0", cmp)
	}
}

func TestCompareIssues_MessageTieBreaker(t *testing.T) {
	source := location.MustNewSourceID("test://a.trill")

	// Same span, same code, same severity, different message
	issueA := NewIssue(Error, E_SYNTAX, "aaa").
		WithSpan(location.Point(source, 1, 1)).
		Build()
	issueB := NewIssue(Error, E_SYNTAX, "bbb").
		WithSpan(location.Point(source, 1, 1)).
		Build()

	if cmp := compareIssues(issueA, issueB); cmp >= 0 {
		t.Errorf("compareIssues(aaa, bbb) = %d; want < 0", cmp)
	}
}

func TestCompareIssues_HintTieBreaker(t *testing.T) {
	source := location.MustNewSourceID("test://a.trill")

	// Same everything except hint
	issueA := NewIssue(Error, E_SYNTAX, "msg").
		WithSpan(location.Point(source, 1, 1)).
		WithHint("hint A").
		Build()
	issueB := NewIssue(Error, E_SYNTAX, "msg").
		WithSpan(location.Point(source, 1, 1)).
		WithHint("hint B").
		Build()

	if cmp := compareIssues(issueA, issueB); cmp >= 0 {
		t.Errorf("compareIssues(hintA, hintB) = %d; want < 0", cmp)
	}
}

func TestCompareIssues_TotalOrder_IdenticalIssuesEqual(t *testing.T) {
	source := location.MustNewSourceID("test://a.trill")

	issue := NewIssue(Error, E_SYNTAX, "msg").
		WithSpan(location.Point(source, 1, 1)).
		WithHint("hint").
		WithDetails(Detail{Key: "k", Value: "v"}).
		Build()

	// Identical issues should compare equal
	if cmp := compareIssues(issue, issue); cmp != 0 {
		t.Errorf("compareIssues(issue, issue) = %d; want 0", cmp)
	}
}

func TestCollector_DeterministicOrdering_Concurrent(t *testing.T) {
	// This test verifies that Result() produces deterministic output
	// regardless of the order in which issues are collected concurrently.
	const (
		numRuns       = 5
		numGoroutines = 10
		issuesPerG    = 20
	)

	source := location.MustNewSourceID("test://a.trill")

	// Run multiple times to detect non-determinism
	var referenceOrder []string

	for run := range numRuns {
		c := NewCollector(0)
		var wg sync.WaitGroup

		// Collect issues concurrently with intentionally overlapping attributes
		for g := range numGoroutines {
			wg.Add(1)
			go func(goroutineID int) {
				defer wg.Done()
				for i := range issuesPerG {
					// Each message is unique (A00-A19, B00-B19, etc.) to ensure
					// any reordering instability is detectable.
					msg := fmt.Sprintf("%c%02d", 'A'+goroutineID, i)
					issue := NewIssue(Error, E_SYNTAX, msg).
						WithSpan(location.Point(source, 1, 1)).
						Build()
					c.Collect(issue)
				}
			}(g)
		}

		wg.Wait()

		// Extract ordered messages
		result := c.Result()
		var messages []string
		for issue := range result.Issues() {
			messages = append(messages, issue.Message())
		}

		if run == 0 {
			referenceOrder = messages
		} else {
			// Verify same order as first run
			if len(messages) != len(referenceOrder) {
				t.Fatalf("run %d: got %d issues; want %d", run, len(messages), len(referenceOrder))
			}
			for i, msg := range messages {
				if msg != referenceOrder[i] {
					t.Errorf("run %d: Issue[%d] = %q; want %q (non-deterministic ordering)",
						run, i, msg, referenceOrder[i])
					break
				}
			}
		}
	}
}

func TestCollector_DeterministicOrdering_MixedSpans(t *testing.T) {
	sourceA := location.MustNewSourceID("test://a.trill")
	sourceB := location.MustNewSourceID("test://b.trill")

	c := NewCollector(0)

	// Add in deliberately scrambled order
	c.Collect(NewIssue(Error, E_SYNTAX, "span-b-10").WithSpan(location.Point(sourceB, 10, 1)).Build())
	c.Collect(NewIssue(Error, E_SYNTAX, "span-a-1").WithSpan(location.Point(sourceA, 1, 1)).Build())
	c.Collect(NewIssue(Error, E_SYNTAX, "span-a-5").WithSpan(location.Point(sourceA, 5, 1)).Build())
	c.Collect(NewIssue(Warning, E_SYNTAX, "span-a-1-warn").WithSpan(location.Point(sourceA, 1, 1)).Build())

	result := c.Result()
	var messages []string
	for issue := range result.Issues() {
		messages = append(messages, issue.Message())
	}

	expected := []string{
		"span-a-1",      // a.trill:1:1, Error
		"span-a-1-warn", // a.trill:1:1, Warning (severity > Error)
		"span-a-5",      // a.trill:5:1
		"span-b-10",     // b.trill:10:1
	}

	if len(messages) != len(expected) {
		t.Fatalf("got %d issues; want %d", len(messages), len(expected))
	}
	for i, msg := range messages {
		if msg != expected[i] {
			t.Errorf("Issue[%d] = %q; want %q", i, msg, expected[i])
		}
	}
}

// TestNewCollector_NormalizesNegativeLimit verifies that negative limits
// are normalized to 0 (unlimited) in NewCollector.
func TestNewCollector_NormalizesNegativeLimit(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{-100, 0},
		{-1, 0},
		{0, 0},
		{1, 1},
		{100, 100},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("limit=%d", tt.input), func(t *testing.T) {
			c := NewCollector(tt.input)
			result := c.Result()

			if result.Limit() != tt.expected {
				t.Errorf("NewCollector(%d).Result().Limit() = %d; want %d",
					tt.input, result.Limit(), tt.expected)
			}
		})
	}
}

// TestNewCollector_NegativeLimitActsAsUnlimited verifies that negative limits
// result in unlimited collection (no issues are dropped).
func TestNewCollector_NegativeLimitActsAsUnlimited(t *testing.T) {
	c := NewCollector(-1)

	// Collect many distinct issues
	for i := range 100 {
		issue := NewIssue(Error, E_SYNTAX, fmt.Sprintf("error %d", i)).Build()
		c.Collect(issue)
	}

	if c.Len() != 100 {
		t.Errorf("Len() = %d; want 100 (unlimited)", c.Len())
	}
	if c.LimitReached() {
		t.Error("LimitReached() = true; want false (unlimited)")
	}
	if c.DroppedCount() != 0 {
		t.Errorf("DroppedCount() = %d; want 0 (unlimited)", c.DroppedCount())
	}
}

func TestNewCollectorUnlimited(t *testing.T) {
	c := NewCollectorUnlimited()
	for i := range 50 {
		c.Collect(NewIssue(Error, E_SYNTAX, fmt.Sprintf("error %d", i)).Build())
	}

	if c.Len() != 50 {
		t.Errorf("Len() = %d; want 50", c.Len())
	}
	if c.LimitReached() {
		t.Error("LimitReached() = true; want false")
	}
}
