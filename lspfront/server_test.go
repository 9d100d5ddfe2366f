package lspfront

import (
	"log/slog"
	"os"
	"testing"
)

func TestNewServer(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	s := NewServer(logger)

	if s == nil {
		t.Fatal("NewServer() returned nil")
	}
	if s.logger == nil {
		t.Error("server.logger is nil")
	}
	if s.server == nil {
		t.Error("server.server is nil")
	}
	if s.documents == nil {
		t.Error("server.documents is nil")
	}
}

func TestNewServer_NilLogger(t *testing.T) {
	t.Parallel()

	s := NewServer(nil)

	if s.logger == nil {
		t.Error("server.logger is nil after passing nil to NewServer")
	}
}

func TestServer_DocumentMap_TracksOpenBuffers(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	s := NewServer(logger)

	uri := "file:///test/add.tr"
	s.mu.Lock()
	s.documents[uri] = &document{version: 1, text: "func add(a: Int, b: Int) -> Int { return a + b }\n"}
	_, present := s.documents[uri]
	s.mu.Unlock()
	if !present {
		t.Fatal("document not recorded after open")
	}

	s.mu.Lock()
	delete(s.documents, uri)
	_, stillPresent := s.documents[uri]
	s.mu.Unlock()
	if stillPresent {
		t.Error("document still present after close")
	}
}
