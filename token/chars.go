package token

import (
	"bufio"
	"io"
)

const defaultBufferSize = 4096

// CharStream is a single pass sequence of characters with one character
// of lookahead. Each byte of the source is one character.
//
// Both methods return io.EOF once the source is exhausted. Any other
// error means the source failed; it is returned from then on.
type CharStream interface {
	// Peek returns the next character without consuming it.
	Peek() (byte, error)
	// Advance consumes and returns the next character.
	Advance() (byte, error)
}

type byteStream struct {
	r    *bufio.Reader
	c    byte
	full bool
	err  error
}

// NewCharStream returns a CharStream reading r through a buffer of
// size bytes (4096 when size <= 0).
func NewCharStream(r io.Reader, size int) CharStream {
	if size <= 0 {
		size = defaultBufferSize
	}
	return &byteStream{r: bufio.NewReaderSize(r, size)}
}

func (s *byteStream) Peek() (byte, error) {
	if s.full {
		return s.c, nil
	}
	if s.err != nil {
		return 0, s.err
	}
	c, err := s.r.ReadByte()
	if err != nil {
		s.err = err
		return 0, err
	}
	s.c = c
	s.full = true
	return c, nil
}

func (s *byteStream) Advance() (byte, error) {
	c, err := s.Peek()
	if err != nil {
		return 0, err
	}
	s.full = false
	return c, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isLineTerm(c byte) bool {
	return c == '\n'
}
