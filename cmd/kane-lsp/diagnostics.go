package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kane-format/kane/encode"
	"github.com/kane-format/kane/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	results []token.Result
	// where lexing stopped
	end token.Pos
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := lexDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func lexDocument(uri, content string, version int32) *document {
	doc := &document{uri: uri, content: content, version: version}
	tk := token.NewTokenizer(strings.NewReader(content))
	for tok, err := range tk.All() {
		doc.results = append(doc.results, token.Result{Token: tok, Err: err, Span: tk.Span()})
	}
	doc.end = tk.Pos()
	return doc
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := diagnosticsOf(doc)
	s.log.Debug("publishing diagnostics", "uri", doc.uri, "version", doc.version, "count", len(diagnostics))
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics,
	})
	if err != nil {
		s.log.Warn("could not publish diagnostics", "uri", doc.uri, "error", err)
	}
}

// diagnosticsOf reports every lexical error in doc, and a warning where
// lexing stopped short of the end of the content.
func diagnosticsOf(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, r := range doc.results {
		if r.Err == nil {
			continue
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    rangeOf(r.Span),
			Severity: protocol.DiagnosticSeverityError,
			Code:     encode.ErrKind(r.Err),
			Message:  r.Err.Error(),
			Source:   "kane",
		})
	}
	off := offsetOf(doc.content, doc.end)
	if off < len(doc.content) {
		start := posOf(doc.end)
		end := start
		end.Character++
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    protocol.Range{Start: start, End: end},
			Severity: protocol.DiagnosticSeverityWarning,
			Message:  fmt.Sprintf("unrecognized character %q; the rest of the document is not tokenized", rune(doc.content[off])),
			Source:   "kane",
		})
	}
	return diagnostics
}

func posOf(p token.Pos) protocol.Position {
	return protocol.Position{Line: uint32(p.Line), Character: uint32(p.Col)}
}

func rangeOf(s token.Span) protocol.Range {
	return protocol.Range{Start: posOf(s.Start), End: posOf(s.End)}
}

// offsetOf returns the byte offset of p in content, or len(content) if p
// lies beyond it.
func offsetOf(content string, p token.Pos) int {
	line, col := 0, 0
	for i := 0; i < len(content); i++ {
		if line == p.Line && col == p.Col {
			return i
		}
		if content[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return len(content)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if s.docs.get(uri) == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole document
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
