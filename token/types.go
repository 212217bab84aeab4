package token

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	TIdentifier Kind = iota
	TInt
	TFloat
	TComma
	TWhitespace
)

var kindNames = map[Kind]string{
	TIdentifier: "Identifier",
	TInt:        "Int",
	TFloat:      "Float",
	TComma:      "Comma",
	TWhitespace: "Whitespace",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a token kind>", int(k))
	}
	return []byte(s), nil
}

// ParseKind returns the Kind named s, as produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown token kind %q", s)
}

// Token is a classified lexeme. Only the field matching Kind is set:
// Text for identifiers, Int and Float for numbers.
type Token struct {
	Kind  Kind
	Text  string
	Int   int32
	Float float32
}

func Identifier(s string) Token { return Token{Kind: TIdentifier, Text: s} }
func Int(v int32) Token         { return Token{Kind: TInt, Int: v} }
func Float(v float32) Token     { return Token{Kind: TFloat, Float: v} }
func Comma() Token              { return Token{Kind: TComma} }
func Whitespace() Token         { return Token{Kind: TWhitespace} }

// Value returns the payload of t: a string, int32, float32 or nil.
func (t Token) Value() any {
	switch t.Kind {
	case TIdentifier:
		return t.Text
	case TInt:
		return t.Int
	case TFloat:
		return t.Float
	default:
		return nil
	}
}

// Lexeme renders t back to source text. Whitespace renders as a single
// space since the run it came from is not kept.
func (t Token) Lexeme() string {
	switch t.Kind {
	case TIdentifier:
		return t.Text
	case TInt:
		return strconv.FormatInt(int64(t.Int), 10)
	case TFloat:
		return strconv.FormatFloat(float64(t.Float), 'f', -1, 32)
	case TComma:
		return ","
	default:
		return " "
	}
}

func (t Token) String() string {
	switch t.Kind {
	case TIdentifier:
		return fmt.Sprintf("Identifier(%q)", t.Text)
	case TInt:
		return fmt.Sprintf("Int(%d)", t.Int)
	case TFloat:
		return fmt.Sprintf("Float(%s)", t.Lexeme())
	default:
		return t.Kind.String()
	}
}
