package diag

import "github.com/trill-lang/trillc/location"

// Issue represents a single diagnostic issue.
//
// Issue is immutable after construction. All fields are unexported to preserve
// immutability; use accessor methods to read values. Construct Issues using
// [NewIssue] and [IssueBuilder].
//
// Direct struct literal construction bypasses validity checks and will cause
// panics when the issue is collected via [Collector.Collect].
//
// Zero-value note: The Go zero value for Severity is Error (value 0). When
// constructing Issue literals in tests, set severity explicitly to avoid
// unintentionally creating Error issues.
type Issue struct {
	span       location.Span          // primary source location; check HasSpan() or span.IsZero()
	severity   Severity               // issue severity level
	code       Code                   // stable programmatic identifier
	message    string                 // human-readable description (no embedded locations)
	hint       string                 // optional resolution suggestion
	highlights []location.Span        // additional spans to underline alongside span, same message
	related    []location.RelatedInfo // additional locations (e.g., "previous definition here")
	details    []Detail               // additional key-value context
}

// Severity returns the issue's severity level.
func (i Issue) Severity() Severity {
	return i.severity
}

// Code returns the issue's stable programmatic identifier.
func (i Issue) Code() Code {
	return i.code
}

// Message returns the human-readable description.
//
// Messages should not contain embedded locations; use [Issue.Span] for
// location information.
func (i Issue) Message() string {
	return i.message
}

// Span returns the primary source location span.
//
// Use [Issue.HasSpan] to check if the span is present, or check span.IsZero().
func (i Issue) Span() location.Span {
	return i.span
}

// Hint returns the optional resolution suggestion.
func (i Issue) Hint() string {
	return i.hint
}

// HasSpan reports whether the issue has a non-zero span.
//
// Use this instead of manually checking Span().IsZero() for clarity.
func (i Issue) HasSpan() bool {
	return !i.span.IsZero()
}

// IsZero reports whether the issue is a zero value.
//
// A zero-value issue has no code and no message.
func (i Issue) IsZero() bool {
	return i.code.IsZero() && i.message == ""
}

// IsValid reports whether the issue has the minimum required fields set.
//
// An issue is valid if it has:
//   - A valid code (not zero)
//   - A non-empty message
//   - A valid severity (not an undefined value like Severity(255))
//
// This method exists for documentation and testing; production code using
// [IssueBuilder] never needs to call it because the builder guarantees validity.
func (i Issue) IsValid() bool {
	return !i.code.IsZero() &&
		i.message != "" &&
		i.severity <= Note
}

// Highlights returns a copy of the additional spans to underline alongside
// the primary span, e.g. both operand spans of a binary expression whose
// types disagree.
//
// Returns nil if no highlights are present. The returned slice is a
// defensive copy; modifications do not affect the original issue.
func (i Issue) Highlights() []location.Span {
	if len(i.highlights) == 0 {
		return nil
	}
	cp := make([]location.Span, len(i.highlights))
	copy(cp, i.highlights)
	return cp
}

// Related returns a copy of the related location information.
//
// Returns nil if no related info is present. The returned slice is a defensive
// copy; modifications do not affect the original issue.
//
// Ordering contract: When related locations represent an ordered sequence
// (e.g., import cycles, call chains), slice order is significant: index 0
// is the first step, index N-1 is the last. For unordered collections,
// order is arbitrary but stable.
func (i Issue) Related() []location.RelatedInfo {
	if len(i.related) == 0 {
		return nil
	}
	cp := make([]location.RelatedInfo, len(i.related))
	copy(cp, i.related)
	return cp
}

// Details returns a copy of the detail key-value pairs.
//
// Returns nil if no details are present. The returned slice is a defensive
// copy; modifications do not affect the original issue.
func (i Issue) Details() []Detail {
	if len(i.details) == 0 {
		return nil
	}
	cp := make([]Detail, len(i.details))
	copy(cp, i.details)
	return cp
}

// Clone returns a deep copy of the issue.
//
// INVARIANT: All slice element types (Span, RelatedInfo, Detail) must not
// contain mutable reference fields (maps, slices, pointers, funcs, chans).
// Strings are permitted (immutable). If mutable reference fields are ever
// added to these types, this method must be updated to deep-copy their
// targets to preserve immutability guarantees.
func (i Issue) Clone() Issue {
	clone := i
	if len(i.highlights) > 0 {
		clone.highlights = make([]location.Span, len(i.highlights))
		copy(clone.highlights, i.highlights)
	}
	if len(i.related) > 0 {
		clone.related = make([]location.RelatedInfo, len(i.related))
		copy(clone.related, i.related)
	}
	if len(i.details) > 0 {
		clone.details = make([]Detail, len(i.details))
		copy(clone.details, i.details)
	}
	return clone
}

// renderedForm returns a string capturing everything that makes two Issues
// observably distinct to a consumer, used by [Collector] to deduplicate
// issues emitted more than once for the same underlying problem (e.g. a
// cascading type error reported once per use of an already-ill-typed name).
func (i Issue) renderedForm() string {
	var sb []byte
	sb = append(sb, i.span.Source.String()...)
	sb = append(sb, ':')
	sb = append(sb, i.span.Start.String()...)
	sb = append(sb, ':')
	sb = append(sb, i.code.String()...)
	sb = append(sb, ':')
	sb = append(sb, byte('0'+i.severity))
	sb = append(sb, ':')
	sb = append(sb, i.message...)
	return string(sb)
}
