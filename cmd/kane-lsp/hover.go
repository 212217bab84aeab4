package main

import (
	"context"
	"fmt"

	"github.com/kane-format/kane/encode"
	"github.com/kane-format/kane/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	r := resultAt(doc.results, params.Position)
	if r == nil {
		return nil, nil
	}
	text := hoverText(*r)
	if text == "" {
		return nil, nil
	}
	rng := rangeOf(r.Span)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
		Range: &rng,
	}, nil
}

// resultAt returns the result whose span covers p.
func resultAt(rs []token.Result, p protocol.Position) *token.Result {
	for i := range rs {
		rng := rangeOf(rs[i].Span)
		if inRange(p, rng) {
			return &rs[i]
		}
	}
	return nil
}

func hoverText(r token.Result) string {
	if r.Err != nil {
		return fmt.Sprintf("**%s**\n\n%s", encode.ErrKind(r.Err), r.Err.Error())
	}
	switch r.Token.Kind {
	case token.TIdentifier:
		return fmt.Sprintf("**Identifier** `%s`", r.Token.Text)
	case token.TInt:
		return fmt.Sprintf("**Int** `%d` (32 bit)", r.Token.Int)
	case token.TFloat:
		return fmt.Sprintf("**Float** `%s` (32 bit)", r.Token.Lexeme())
	case token.TComma:
		return "**Comma**"
	}
	return ""
}
