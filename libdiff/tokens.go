// Package libdiff computes lexical differences between token streams.
package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/kane-format/kane/token"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) prefix() string {
	switch o {
	case Insert:
		return "+ "
	case Delete:
		return "- "
	default:
		return "  "
	}
}

// Edit is a run of tokens that are equal, inserted or deleted.
type Edit struct {
	Op     Op
	Tokens []string
}

// Line renders a token for comparison. Whitespace tokens render as ""
// and are left out of diffs.
func Line(t token.Token) string {
	switch t.Kind {
	case token.TWhitespace:
		return ""
	case token.TComma:
		return ","
	case token.TIdentifier:
		return t.Text
	default:
		return t.Kind.String() + " " + t.Lexeme()
	}
}

// Lines renders toks with Line, leaving out whitespace.
func Lines(toks []token.Token) []string {
	res := make([]string, 0, len(toks))
	for _, t := range toks {
		if ln := Line(t); ln != "" {
			res = append(res, ln)
		}
	}
	return res
}

func join(toks []token.Token) string {
	b := &strings.Builder{}
	for _, ln := range Lines(toks) {
		b.WriteString(ln)
		b.WriteByte('\n')
	}
	return b.String()
}

// DiffTokens returns the edits turning from into to, ignoring whitespace.
func DiffTokens(from, to []token.Token) []Edit {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(join(from), join(to))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	res := make([]Edit, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		if diff.Text == "" {
			continue
		}
		var op Op
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		toks := strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n")
		if n := len(res); n > 0 && res[n-1].Op == op {
			res[n-1].Tokens = append(res[n-1].Tokens, toks...)
			continue
		}
		res = append(res, Edit{Op: op, Tokens: toks})
	}
	return res
}

// Changed reports whether any edit is an insertion or deletion.
func Changed(edits []Edit) bool {
	for i := range edits {
		if edits[i].Op != Equal {
			return true
		}
	}
	return false
}

// Write renders edits one token per line, prefixed by "+ ", "- " or
// two spaces. When context >= 0, runs of equal tokens are cut down to
// context tokens on each side of a change.
func Write(w io.Writer, edits []Edit, context int) error {
	for i, e := range edits {
		toks := e.Tokens
		if e.Op == Equal && context >= 0 {
			toks = trimEqual(toks, context, i > 0, i < len(edits)-1)
		}
		for _, t := range toks {
			if _, err := fmt.Fprintf(w, "%s%s\n", e.Op.prefix(), t); err != nil {
				return err
			}
		}
	}
	return nil
}

func trimEqual(toks []string, n int, before, after bool) []string {
	var head, tail []string
	if before {
		head = toks[:min(n, len(toks))]
	}
	if after {
		tail = toks[max(len(toks)-n, 0):]
	}
	if len(head)+len(tail) >= len(toks) {
		return toks
	}
	res := make([]string, 0, len(head)+len(tail)+1)
	res = append(res, head...)
	res = append(res, "...")
	return append(res, tail...)
}
