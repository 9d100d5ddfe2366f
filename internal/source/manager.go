package source

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/trill-lang/trillc/location"
)

// entry holds the cached state for one opened source. content and lines are
// nil until first requested; lineOffsets is computed alongside lines.
type entry struct {
	file        File
	content     []byte
	contentErr  error
	haveContent bool
	lineOffsets []int
	lines       []string
	haveLines   bool
}

// Manager opens sources by identifier and memoizes their content and
// line-split views.
//
// Manager is thread-safe for concurrent access. A single mutex guards both
// caches; expensive work (reading a file, splitting lines) happens outside
// the lock and is only inserted into the map while holding it, so two
// goroutines racing to open or read the same source each do their own work
// but agree on which result is kept.
//
// Manager implements [location.PositionRegistry] via PositionAt.
type Manager struct {
	mu      sync.Mutex
	entries map[location.SourceID]*entry
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{entries: make(map[location.SourceID]*entry)}
}

var _ location.PositionRegistry = (*Manager)(nil)

// Open registers f and returns its identity. Open does not read content;
// content is fetched lazily on first call to Contents or Lines, except for
// [KindStdin] sources, which are read immediately since standard input can
// only be drained once and a later caller must see the same bytes as an
// earlier one.
//
// Opening the same identity twice is permitted; the File most recently
// passed to Open is discarded in favor of the first (content, once read, is
// cached against the identity — not the File).
func (m *Manager) Open(f File) (location.SourceID, error) {
	id, err := f.identify()
	if err != nil {
		return location.SourceID{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[id]; ok {
		return id, nil
	}
	e := &entry{file: f}
	m.entries[id] = e

	if f.kind == KindStdin {
		content, readErr := f.read()
		e.content = content
		e.contentErr = readErr
		e.haveContent = true
	}

	return id, nil
}

// Contents returns the full content of the source identified by id, reading
// and caching it on first call. Returns an error if id was never opened, or
// if reading its underlying content failed.
//
// The returned slice must not be mutated by the caller.
func (m *Manager) Contents(id location.SourceID) ([]byte, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if e.haveContent {
		content, contentErr := e.content, e.contentErr
		m.mu.Unlock()
		return content, contentErr
	}
	f := e.file
	m.mu.Unlock()

	content, readErr := f.read()

	m.mu.Lock()
	defer m.mu.Unlock()
	if !e.haveContent {
		e.content = content
		e.contentErr = readErr
		e.haveContent = true
	}
	return e.content, e.contentErr
}

// Content implements [diag.SourceProvider]. It resolves span.Source via
// Contents, turning any read error into ok=false.
func (m *Manager) Content(span location.Span) ([]byte, bool) {
	content, err := m.Contents(span.Source)
	if err != nil {
		return nil, false
	}
	return content, true
}

// Lines returns the source split into lines (line terminators stripped),
// computing and caching the split on first call.
func (m *Manager) Lines(id location.SourceID) ([]string, error) {
	content, err := m.Contents(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	e := m.entries[id]
	if e.haveLines {
		lines := e.lines
		m.mu.Unlock()
		return lines, nil
	}
	m.mu.Unlock()

	lines := splitLines(content)
	offsets := lineOffsetsFromLines(content, lines)

	m.mu.Lock()
	defer m.mu.Unlock()
	if !e.haveLines {
		e.lines = lines
		e.lineOffsets = offsets
		e.haveLines = true
	}
	return e.lines, nil
}

// PositionAt converts a byte offset in the given source to a [location.Position].
//
// This method implements [location.PositionRegistry]. It returns a zero
// Position (see [location.Position.IsZero]) if id was never opened, its
// content failed to read, or byteOffset is out of range.
func (m *Manager) PositionAt(id location.SourceID, byteOffset int) location.Position {
	content, err := m.Contents(id)
	if err != nil {
		return location.UnknownPosition()
	}
	if byteOffset < 0 || byteOffset > len(content) {
		return location.UnknownPosition()
	}

	if _, err := m.Lines(id); err != nil {
		return location.UnknownPosition()
	}

	m.mu.Lock()
	offsets := m.entries[id].lineOffsets
	m.mu.Unlock()

	line := findLine(offsets, byteOffset)
	lineStart := offsets[line-1]
	column := countRunesInRange(content, lineStart, byteOffset)

	return location.NewPosition(line, column, byteOffset)
}

// LineStartByte returns the byte offset of the start of the given 1-based
// line. This method implements diag.LineIndexProvider. Returns (0, false) if
// id was never opened, its content failed to read, or line is out of range.
func (m *Manager) LineStartByte(id location.SourceID, line int) (int, bool) {
	if _, err := m.Lines(id); err != nil {
		return 0, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	offsets := m.entries[id].lineOffsets
	if line < 1 || line > len(offsets) {
		return 0, false
	}
	return offsets[line-1], true
}

// Has reports whether id has been opened.
func (m *Manager) Has(id location.SourceID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[id]
	return ok
}

// Len returns the number of opened sources.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Manager) lookup(id location.SourceID) (*entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return nil, fmt.Errorf("source: %s was never opened", id.String())
	}
	return e, nil
}

// splitLines splits content into lines with terminators stripped, treating
// \n, \r\n, and a bare \r as line breaks.
func splitLines(content []byte) []string {
	normalized := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	normalized = bytes.ReplaceAll(normalized, []byte("\r"), []byte("\n"))
	return strings.Split(string(normalized), "\n")
}

// lineOffsetsFromLines recomputes byte offsets of each line start directly
// from content, independent of splitLines' terminator normalization.
func lineOffsetsFromLines(content []byte, lines []string) []int {
	offsets := make([]int, 0, len(lines))
	offsets = append(offsets, 0)
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			offsets = append(offsets, i+1)
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				offsets = append(offsets, i+2)
				i++
			} else {
				offsets = append(offsets, i+1)
			}
		}
	}
	if len(offsets) > len(lines) {
		offsets = offsets[:len(lines)]
	}
	return offsets
}

// findLine returns the 1-based line number owning byteOffset via binary
// search over lineOffsets (the byte offset at which each line starts).
func findLine(lineOffsets []int, byteOffset int) int {
	lo, hi := 0, len(lineOffsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lineOffsets[mid] <= byteOffset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}

// countRunesInRange counts runes in content[start:end) and returns a 1-based
// column, consistent with location.Position's "1-based, counts runes" contract.
func countRunesInRange(content []byte, start, end int) int {
	if start >= end {
		return 1
	}
	return 1 + len([]rune(string(content[start:end])))
}

// keys returns all opened identifiers, primarily for tests and diagnostics.
func (m *Manager) keys() []location.SourceID {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]location.SourceID, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b location.SourceID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}
