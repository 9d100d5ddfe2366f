package source

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/trill-lang/trillc/location"
)

// Kind distinguishes the four ways a compilation can obtain source text.
type Kind int

const (
	// KindPath identifies a source read from the filesystem.
	KindPath Kind = iota
	// KindBuffer identifies an in-memory buffer, e.g. a string handed to the
	// compiler by an embedding host or a test.
	KindBuffer
	// KindStdin identifies the process's standard input stream, read once in
	// full and then treated as an ordinary in-memory buffer.
	KindStdin
	// KindNone identifies the synthetic "no source" sentinel used for
	// synthesized declarations (implicit initializers, builtin types) that
	// have no textual origin.
	KindNone
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindBuffer:
		return "buffer"
	case KindStdin:
		return "stdin"
	case KindNone:
		return "none"
	default:
		return "unknown"
	}
}

// File describes a source the compiler should open, before its content has
// been read. Construct one with FromPath, FromBuffer, FromStdin, or None.
type File struct {
	kind Kind
	path string // KindPath only
	url  string // KindBuffer only; synthetic if caller didn't supply one
	data []byte // KindBuffer only
	r    io.Reader
}

// FromPath describes a source that will be read from the given filesystem
// path when its content is first requested.
func FromPath(path string) File {
	return File{kind: KindPath, path: path}
}

// FromBuffer describes an in-memory source. If url is empty, Manager mints a
// synthetic "buffer:<uuid>" identifier so the source still has a stable,
// unique identity for diagnostics and position tracking.
func FromBuffer(url string, data []byte) File {
	return File{kind: KindBuffer, url: url, data: data}
}

// FromStdin describes the process's standard input. r is read to EOF once,
// when Manager.Open registers the source.
func FromStdin(r io.Reader) File {
	return File{kind: KindStdin, r: r}
}

// None returns the sentinel source used for declarations synthesized by the
// compiler itself rather than parsed from text.
func None() File {
	return File{kind: KindNone}
}

// identify computes the File's location.SourceID without reading content.
func (f File) identify() (location.SourceID, error) {
	switch f.kind {
	case KindPath:
		return location.SourceIDFromPath(f.path)
	case KindBuffer:
		url := f.url
		if url == "" {
			url = "buffer:" + uuid.NewString()
		}
		return location.NewSourceID(url), nil
	case KindStdin:
		return location.NewSourceID("<stdin>"), nil
	case KindNone:
		return location.NewSourceID("none:unnamed"), nil
	default:
		return location.SourceID{}, fmt.Errorf("source: unknown file kind %d", f.kind)
	}
}

// read loads the File's full content. Manager caches the first result it
// stores; concurrent first requests for one source may each call read.
func (f File) read() ([]byte, error) {
	switch f.kind {
	case KindPath:
		content, err := os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("source: reading %s: %w", f.path, err)
		}
		return content, nil
	case KindBuffer:
		return f.data, nil
	case KindStdin:
		content, err := io.ReadAll(f.r)
		if err != nil {
			return nil, fmt.Errorf("source: reading stdin: %w", err)
		}
		return content, nil
	case KindNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("source: unknown file kind %d", f.kind)
	}
}
