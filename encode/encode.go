package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/kane-format/kane/format"
	"github.com/kane-format/kane/token"

	"github.com/goccy/go-yaml"
)

// Record is the rendered form of one token or error.
type Record struct {
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Kind    string `json:"kind" yaml:"kind"`
	Value   any    `json:"value" yaml:"value"`
	Line    int    `json:"line" yaml:"line"`
	Col     int    `json:"col" yaml:"col"`
	EndLine int    `json:"endLine" yaml:"endLine"`
	EndCol  int    `json:"endCol" yaml:"endCol"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ErrKind names the kind of a tokenizer error, or returns "" if err is
// not one.
func ErrKind(err error) string {
	switch {
	case errors.Is(err, token.ErrParse):
		return "ParseError"
	case errors.Is(err, token.ErrCast):
		return "CastError"
	case errors.Is(err, token.ErrRead):
		return "ReadFailure"
	}
	return ""
}

// RecordOf converts r. Errors are placed at the position they carry.
func RecordOf(path string, r token.Result) Record {
	rec := Record{
		Path:    path,
		Line:    r.Span.Start.Line,
		Col:     r.Span.Start.Col,
		EndLine: r.Span.End.Line,
		EndCol:  r.Span.End.Col,
	}
	if r.Err == nil {
		rec.Kind = r.Token.Kind.String()
		rec.Value = r.Token.Value()
		return rec
	}
	rec.Kind = ErrKind(r.Err)
	if rec.Kind == "" {
		rec.Kind = "Error"
	}
	rec.Error = r.Err.Error()
	if pos, ok := token.ErrPos(r.Err); ok {
		rec.Line, rec.Col = pos.Line, pos.Col
	}
	return rec
}

type EncState struct {
	format format.Format
	path   string
	colors *Colors
}

// Encoder writes records to an underlying writer as they arrive.
type Encoder struct {
	w  io.Writer
	es *EncState
}

func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return &Encoder{w: w, es: es}
}

func (e *Encoder) Encode(r token.Result) error {
	rec := RecordOf(e.es.path, r)
	switch e.es.format {
	case format.JSONFormat:
		d, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return writeString(e.w, string(d)+"\n")
	case format.YAMLFormat:
		d, err := yaml.Marshal([]Record{rec})
		if err != nil {
			return err
		}
		_, err = e.w.Write(d)
		return err
	default:
		return writeString(e.w, e.text(r, rec))
	}
}

func (e *Encoder) text(r token.Result, rec Record) string {
	c := e.es.colors
	if c == nil {
		c = &Colors{Default: colorDefault, Pos: colorDefault, Error: colorDefault}
	}
	pos := fmt.Sprintf("%d:%d", rec.Line, rec.Col)
	if rec.Path != "" {
		pos = rec.Path + ":" + pos
	}
	if r.Err != nil {
		return fmt.Sprintf("%s\t%s\t%s\n", c.Pos(pos), c.Error(rec.Kind), r.Err.Error())
	}
	val := ""
	switch r.Token.Kind {
	case token.TIdentifier:
		val = strconv.Quote(r.Token.Text)
	case token.TInt, token.TFloat:
		val = r.Token.Lexeme()
	}
	kind := c.Color(r.Token.Kind, rec.Kind)
	if val == "" {
		return fmt.Sprintf("%s\t%s\n", c.Pos(pos), kind)
	}
	return fmt.Sprintf("%s\t%s\t%s\n", c.Pos(pos), kind, c.Color(r.Token.Kind, val))
}

// Encode writes every result in rs.
func Encode(w io.Writer, rs []token.Result, opts ...EncodeOption) error {
	e := NewEncoder(w, opts...)
	for i := range rs {
		if err := e.Encode(rs[i]); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
