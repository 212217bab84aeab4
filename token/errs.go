package token

import (
	"errors"
	"fmt"
)

var (
	ErrRead  = errors.New("read failure")
	ErrParse = errors.New("parse error")
	ErrCast  = errors.New("cast error")
)

// ReadError reports that the source failed while a character was needed.
type ReadError struct {
	Pos Pos
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s at %s: %s", ErrRead, e.Pos, e.Err)
}

func (e *ReadError) Unwrap() []error {
	return []error{ErrRead, e.Err}
}

// ParseError reports an unexpected character. Pos is the position after
// the character was consumed.
type ParseError struct {
	Pos  Pos
	Char byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: found %q at %s", ErrParse, rune(e.Char), e.Pos)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// CastError reports a numeric lexeme that did not convert to its type.
type CastError struct {
	Pos  Pos
	Text string
	Err  error
}

func (e *CastError) Error() string {
	return fmt.Sprintf("%s: unable to cast %q at %s", ErrCast, e.Text, e.Pos)
}

func (e *CastError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCast}
	}
	return []error{ErrCast, e.Err}
}

// ErrPos returns the position carried by err if it is, or wraps, one of
// the tokenizer errors.
func ErrPos(err error) (Pos, bool) {
	var (
		re *ReadError
		pe *ParseError
		ce *CastError
	)
	switch {
	case errors.As(err, &pe):
		return pe.Pos, true
	case errors.As(err, &ce):
		return ce.Pos, true
	case errors.As(err, &re):
		return re.Pos, true
	}
	return Pos{}, false
}
