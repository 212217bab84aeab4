package token

import (
	"context"
	"errors"
	"io"
	"iter"
	"log/slog"
	"strconv"

	"github.com/kane-format/kane/debug"
)

type state int

const (
	sStart state = iota
	sInt
	sFloat
	sIdentifier
	sWhitespace
	sPunctuation
)

func (s state) String() string {
	switch s {
	case sStart:
		return "Start"
	case sInt:
		return "LexingInt"
	case sFloat:
		return "LexingFloat"
	case sIdentifier:
		return "LexingIdentifier"
	case sWhitespace:
		return "LexingWhitespace"
	case sPunctuation:
		return "LexingPunctuation"
	}
	return "?"
}

type action int

const (
	// consume the lookahead and continue in the next state
	aAdvance action = iota
	// finalize the lexeme accumulated so far
	aEmit
	// the lookahead is unexpected in this state
	aFail
	// no further tokens
	aEnd
)

// transition decides what to do in state s given lookahead c. eof is set
// when the source is exhausted, in which case c is meaningless.
func transition(s state, c byte, eof bool) (state, action) {
	switch s {
	case sStart:
		switch {
		case eof:
			return s, aEnd
		case c == '-' || isDigit(c):
			return sInt, aAdvance
		case isAlnum(c):
			return sIdentifier, aAdvance
		case isSpace(c):
			return sWhitespace, aAdvance
		case c == ',':
			return sPunctuation, aAdvance
		}
		return s, aEnd
	case sInt:
		switch {
		case eof, isSpace(c), c == ',':
			return s, aEmit
		case isDigit(c):
			return s, aAdvance
		case c == '.':
			return sFloat, aAdvance
		}
	case sFloat:
		switch {
		case eof, isSpace(c), c == ',':
			return s, aEmit
		case isDigit(c):
			return s, aAdvance
		}
	case sIdentifier:
		switch {
		case eof, isSpace(c):
			return s, aEmit
		case isAlnum(c):
			return s, aAdvance
		}
	case sWhitespace:
		if !eof && isSpace(c) {
			return s, aAdvance
		}
		return s, aEmit
	case sPunctuation:
		// c is the character consumed on entry, not a lookahead.
		if c == ',' {
			return s, aEmit
		}
	}
	return s, aFail
}

// Tokenizer produces the token sequence of a character stream. It is
// single pass and performs no error recovery: after an error the next
// call to Next continues from wherever the stream sits.
type Tokenizer struct {
	cs  CharStream
	log *slog.Logger

	pos  Pos
	span Span
	buf  []byte

	// error queued behind an identifier that ended on a bad character
	pending     error
	pendingSpan Span

	done bool
}

// NewTokenizer returns a Tokenizer reading r.
func NewTokenizer(r io.Reader, opts ...TokenOpt) *Tokenizer {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	return NewTokenizerFromStream(NewCharStream(r, opt.bufSize), opts...)
}

// NewTokenizerFromStream returns a Tokenizer over an existing CharStream.
func NewTokenizerFromStream(cs CharStream, opts ...TokenOpt) *Tokenizer {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	if opt.log == nil && debug.Tokenize() {
		opt.log = debug.TraceLogger()
	}
	return &Tokenizer{cs: cs, log: opt.log}
}

// Pos returns the current position, just after the last consumed character.
func (t *Tokenizer) Pos() Pos {
	return t.pos
}

// Span returns the span of the result last returned by Next.
func (t *Tokenizer) Span() Span {
	return t.span
}

// Next returns the next token, or an error describing why no token could
// be formed. At the end of the sequence it returns io.EOF.
func (t *Tokenizer) Next() (Token, error) {
	if t.pending != nil {
		err := t.pending
		t.pending = nil
		t.span = t.pendingSpan
		return Token{}, err
	}
	if t.done {
		return Token{}, io.EOF
	}
	t.buf = t.buf[:0]
	t.span = Span{Start: t.pos, End: t.pos}
	s := sStart
	for {
		var (
			c   byte
			eof bool
			err error
		)
		if s == sPunctuation {
			c = t.buf[len(t.buf)-1]
		} else {
			c, err = t.cs.Peek()
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return t.readFailure(err)
			}
			eof = true
		}
		next, act := transition(s, c, eof)
		t.trace(s, next, act, c, eof)
		switch act {
		case aEnd:
			t.done = true
			return Token{}, io.EOF
		case aAdvance:
			if err := t.advance(); err != nil {
				return t.readFailure(err)
			}
			s = next
		case aEmit:
			t.span.End = t.pos
			return t.finish(s)
		case aFail:
			return t.fail(s, c)
		}
	}
}

// All returns the remaining sequence as an iterator. Iteration stops at
// the end of the sequence or when the caller stops.
func (t *Tokenizer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := t.Next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) {
				return
			}
		}
	}
}

func (t *Tokenizer) advance() error {
	c, err := t.cs.Advance()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return err
	}
	t.pos.advance(c)
	t.buf = append(t.buf, c)
	return nil
}

func (t *Tokenizer) readFailure(err error) (Token, error) {
	t.done = true
	t.span.End = t.pos
	return Token{}, &ReadError{Pos: t.pos, Err: err}
}

func (t *Tokenizer) finish(s state) (Token, error) {
	switch s {
	case sInt:
		v, err := strconv.ParseInt(string(t.buf), 10, 32)
		if err != nil {
			return Token{}, t.castErr(err)
		}
		return Int(int32(v)), nil
	case sFloat:
		v, err := strconv.ParseFloat(string(t.buf), 32)
		if err != nil {
			return Token{}, t.castErr(err)
		}
		return Float(float32(v)), nil
	case sIdentifier:
		return Identifier(string(t.buf)), nil
	case sWhitespace:
		return Whitespace(), nil
	default:
		return Comma(), nil
	}
}

func (t *Tokenizer) castErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		err = ne.Err
	}
	return &CastError{Pos: t.pos, Text: string(t.buf), Err: err}
}

func (t *Tokenizer) fail(s state, c byte) (Token, error) {
	if s == sPunctuation {
		t.span.End = t.pos
		return Token{}, &ParseError{Pos: t.pos, Char: c}
	}
	end := t.pos
	if err := t.advance(); err != nil {
		return t.readFailure(err)
	}
	perr := &ParseError{Pos: t.pos, Char: c}
	if s != sIdentifier {
		t.span.End = t.pos
		return Token{}, perr
	}
	tok := Identifier(string(t.buf[:len(t.buf)-1]))
	t.pending = perr
	t.pendingSpan = Span{Start: end, End: t.pos}
	t.span.End = end
	return tok, nil
}

func (t *Tokenizer) trace(from, to state, act action, c byte, eof bool) {
	if t.log == nil || !t.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	la := "EOF"
	if !eof {
		la = strconv.QuoteRune(rune(c))
	}
	t.log.Debug("transition",
		"from", from.String(),
		"to", to.String(),
		"action", int(act),
		"lookahead", la,
		"pos", t.pos.String())
}
