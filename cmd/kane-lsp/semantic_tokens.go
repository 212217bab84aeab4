package main

import (
	"context"

	"github.com/kane-format/kane/token"

	"go.lsp.dev/protocol"
)

// semanticTokenTypes is the legend; indices are the encoded token types.
var semanticTokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenVariable,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
}

const (
	semVariable uint32 = iota
	semNumber
	semOperator
)

func semanticType(k token.Kind) (uint32, bool) {
	switch k {
	case token.TIdentifier:
		return semVariable, true
	case token.TInt, token.TFloat:
		return semNumber, true
	case token.TComma:
		return semOperator, true
	}
	return 0, false
}

// semanticTokens delta encodes the tokens of rs starting inside rng, or
// all of them if rng is nil.
func semanticTokens(rs []token.Result, rng *protocol.Range) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for _, r := range rs {
		if r.Err != nil {
			continue
		}
		tt, ok := semanticType(r.Token.Kind)
		if !ok {
			continue
		}
		start := posOf(r.Span.Start)
		if rng != nil && !inRange(start, *rng) {
			continue
		}
		length := uint32(r.Span.End.Col - r.Span.Start.Col)
		deltaLine := start.Line - prevLine
		deltaChar := start.Character
		if deltaLine == 0 {
			deltaChar -= prevChar
		}
		data = append(data, deltaLine, deltaChar, length, tt, 0)
		prevLine, prevChar = start.Line, start.Character
	}
	return data
}

func before(a, b protocol.Position) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Character < b.Character)
}

func inRange(p protocol.Position, rng protocol.Range) bool {
	return !before(p, rng.Start) && before(p, rng.End)
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokens(doc.results, nil)}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokens(doc.results, &params.Range)}, nil
}
