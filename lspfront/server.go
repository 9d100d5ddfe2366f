package lspfront

import (
	"fmt"
	"log/slog"
	"sync"

	// commonlog is a dependency glsp pulls in for its own internal logging.
	// We silence it in NewServer via commonlog.Configure(0, nil) since this
	// server logs entirely through slog. The blank import of the "simple"
	// backend is required by glsp at runtime regardless.
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple" // required backend for glsp
)

const serverName = "trillc-lsp"

// document is the server's record of one open buffer: whatever text the
// client most recently sent, independent of what is on disk.
type document struct {
	version int
	text    string
}

// Server is the Trill language server. It holds no cross-document state
// beyond the open buffers themselves — each compile is scoped to a single
// document's current text.
type Server struct {
	logger  *slog.Logger
	handler protocol.Handler
	server  *server.Server

	mu        sync.Mutex
	documents map[string]*document
}

// NewServer creates a Trill language server. If logger is nil,
// slog.Default() is used.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger:    logger.With(slog.String("component", "lspfront")),
		documents: make(map[string]*document),
	}

	commonlog.Configure(0, nil)

	s.handler = protocol.Handler{
		Initialize:  s.initialize,
		Initialized: s.initialized,
		Shutdown:    s.shutdown,
		Exit:        s.exit,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
	}

	s.server = server.NewServer(&s.handler, serverName, false)

	return s
}

// RunStdio runs the server over stdio transport.
func (s *Server) RunStdio() error {
	if err := s.server.RunStdio(); err != nil {
		return fmt.Errorf("lspfront: run stdio: %w", err)
	}
	return nil
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	s.logger.Info("initialize request received")

	capabilities := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindFull
	if syncOpts, ok := capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions); ok {
		syncOpts.Change = &syncKind
	}

	version := "dev"
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	s.logger.Info("server initialized")
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	s.logger.Info("shutdown request received")
	return nil
}

func (s *Server) exit(ctx *glsp.Context) error {
	s.logger.Info("exit notification received")
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.logger.Debug("textDocument/didOpen", slog.String("uri", uri))

	s.mu.Lock()
	s.documents[uri] = &document{version: int(params.TextDocument.Version), text: params.TextDocument.Text}
	s.mu.Unlock()

	s.analyzeAndPublish(ctx, uri)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.logger.Debug("textDocument/didChange", slog.String("uri", uri))

	var lastFullChange *protocol.TextDocumentContentChangeEventWhole
	for _, rawChange := range params.ContentChanges {
		if change, ok := rawChange.(protocol.TextDocumentContentChangeEventWhole); ok {
			lastFullChange = &change
		}
	}
	if lastFullChange == nil {
		s.logger.Warn("ignoring non-full-text change (server advertises full sync only)",
			slog.String("uri", uri))
		return nil
	}

	s.mu.Lock()
	s.documents[uri] = &document{version: int(params.TextDocument.Version), text: lastFullChange.Text}
	s.mu.Unlock()

	s.analyzeAndPublish(ctx, uri)
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.logger.Debug("textDocument/didClose", slog.String("uri", uri))

	s.mu.Lock()
	delete(s.documents, uri)
	s.mu.Unlock()

	if ctx != nil {
		ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}

// analyzeAndPublish compiles the document's current text through the
// typecheck stage (diagnostics only — no point paying for irgen on every
// keystroke) and publishes the resulting diagnostics for that document's
// URI.
func (s *Server) analyzeAndPublish(ctx *glsp.Context, uri string) {
	s.mu.Lock()
	doc, ok := s.documents[uri]
	s.mu.Unlock()
	if !ok {
		return
	}

	result := compileDocument(uri, doc.text, s.logger)
	diagnostics := convertDiagnostics(result)

	if ctx != nil {
		ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: diagnostics,
		})
	}
}
