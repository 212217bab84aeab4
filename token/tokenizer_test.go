package token

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

var errBoom = errors.New("boom")

func render(rs []Result) []string {
	var res []string
	for _, r := range rs {
		var (
			pe *ParseError
			ce *CastError
			re *ReadError
		)
		var s string
		switch {
		case r.Err == nil:
			s = r.Token.String()
		case errors.As(r.Err, &pe):
			s = fmt.Sprintf("ParseError(%q @%d:%d)", rune(pe.Char), pe.Pos.Line, pe.Pos.Col)
		case errors.As(r.Err, &ce):
			s = fmt.Sprintf("CastError(%q @%d:%d)", ce.Text, ce.Pos.Line, ce.Pos.Col)
		case errors.As(r.Err, &re):
			s = "ReadFailure"
		default:
			s = "?" + r.Err.Error()
		}
		res = append(res, s)
	}
	return res
}

func lex(s string, opts ...TokenOpt) []string {
	return render(Collect(strings.NewReader(s), opts...))
}

func TestTokenizerScenarios(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "mixed",
			in:   "12,3.5,ab\n",
			want: []string{"Int(12)", "Comma", "Float(3.5)", "Comma", `Identifier("ab")`, "Whitespace"},
		},
		{
			name: "ints and commas",
			in:   "1,22,333",
			want: []string{"Int(1)", "Comma", "Int(22)", "Comma", "Int(333)"},
		},
		{
			name: "negative int",
			in:   "-42",
			want: []string{"Int(-42)"},
		},
		{
			name: "negative float",
			in:   "-12.25",
			want: []string{"Float(-12.25)"},
		},
		{
			name: "float then whitespace",
			in:   "0.5 \t1.25",
			want: []string{"Float(0.5)", "Whitespace", "Float(1.25)"},
		},
		{
			name: "bad char after digits",
			in:   "1x",
			want: []string{"ParseError('x' @0:2)"},
		},
		{
			name: "identifier then comma",
			in:   "ab,",
			want: []string{`Identifier("ab")`, "ParseError(',' @0:3)"},
		},
		{
			name: "identifier then dot",
			in:   "ab.c d",
			want: []string{`Identifier("ab")`, "ParseError('.' @0:3)", `Identifier("c")`, "Whitespace", `Identifier("d")`},
		},
		{
			name: "continues after error",
			in:   "1x,2",
			want: []string{"ParseError('x' @0:2)", "Comma", "Int(2)"},
		},
		{
			name: "bad char in fraction",
			in:   "1.5e3",
			want: []string{"ParseError('e' @0:4)", "Int(3)"},
		},
		{
			name: "second dot",
			in:   "1.2.3",
			want: []string{"ParseError('.' @0:4)", "Int(3)"},
		},
		{
			name: "int overflow",
			in:   "2147483648",
			want: []string{"CastError(\"2147483648\" @0:10)"},
		},
		{
			name: "int max",
			in:   "2147483647,-2147483648",
			want: []string{"Int(2147483647)", "Comma", "Int(-2147483648)"},
		},
		{
			name: "lone minus",
			in:   "- 1",
			want: []string{"CastError(\"-\" @0:1)", "Whitespace", "Int(1)"},
		},
		{
			name: "float overflow",
			in:   "1" + strings.Repeat("0", 40) + ".0",
			want: []string{fmt.Sprintf("CastError(%q @0:43)", "1"+strings.Repeat("0", 40)+".0")},
		},
		{
			name: "identifier with digits",
			in:   "mesh01 node2",
			want: []string{`Identifier("mesh01")`, "Whitespace", `Identifier("node2")`},
		},
		{
			name: "digit leading identifier goes numeric",
			in:   "2abc",
			want: []string{"ParseError('a' @0:2)", `Identifier("bc")`},
		},
		{
			name: "unknown leading char ends sequence",
			in:   "#comment 1,2",
			want: nil,
		},
		{
			name: "unknown char after token ends sequence",
			in:   "1 #2",
			want: []string{"Int(1)", "Whitespace"},
		},
		{
			name: "non-ascii is not a letter",
			in:   "\xe9t\xe9",
			want: nil,
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := lex(c.in)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("lex(%q) mismatch (-want +got):\n%s", c.in, diff)
			}
		})
	}
}

func TestTokenizerIntRuns(t *testing.T) {
	runs := []string{"0", "7", "10", "123", "0042", "99999"}
	in := strings.Join(runs, ",")
	var want []string
	for i, r := range runs {
		if i > 0 {
			want = append(want, "Comma")
		}
		v, err := strconv.ParseInt(r, 10, 32)
		if err != nil {
			t.Fatal(err)
		}
		want = append(want, fmt.Sprintf("Int(%d)", v))
	}
	if diff := cmp.Diff(want, lex(in)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerFloatValue(t *testing.T) {
	cases := []struct {
		in   string
		want float32
	}{
		{"3.5", 3.5},
		{"-3.5", -3.5},
		{"0.125", 0.125},
		{"-0.0", 0},
		{"10.01", 10.01},
	}
	for _, c := range cases {
		toks, err := Tokenize(strings.NewReader(c.in))
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if len(toks) != 1 || toks[0].Kind != TFloat {
			t.Fatalf("%q: got %v", c.in, toks)
		}
		if toks[0].Float != c.want {
			t.Errorf("%q: got %v, want %v", c.in, toks[0].Float, c.want)
		}
	}
}

func TestTokenizerWhitespaceCollapses(t *testing.T) {
	for n := 1; n <= 64; n++ {
		in := strings.Repeat(" \t\n\r", n)[:n]
		got := lex(in)
		if diff := cmp.Diff([]string{"Whitespace"}, got); diff != "" {
			t.Fatalf("n=%d: mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestTokenizerPositions(t *testing.T) {
	tk := NewTokenizer(strings.NewReader("ab\ncd"))

	tok, err := tk.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok != Identifier("ab") {
		t.Fatalf("got %v", tok)
	}
	if got, want := tk.Pos(), (Pos{Line: 0, Col: 2}); got != want {
		t.Errorf("after ab: pos %v, want %v", got, want)
	}

	tok, err = tk.Next()
	if err != nil || tok.Kind != TWhitespace {
		t.Fatalf("got %v, %v", tok, err)
	}
	if got, want := tk.Pos(), (Pos{Line: 1, Col: 0}); got != want {
		t.Errorf("after newline: pos %v, want %v", got, want)
	}

	tok, err = tk.Next()
	if err != nil || tok != Identifier("cd") {
		t.Fatalf("got %v, %v", tok, err)
	}
	want := Span{Start: Pos{Line: 1, Col: 0}, End: Pos{Line: 1, Col: 2}}
	if got := tk.Span(); got != want {
		t.Errorf("cd span %v, want %v", got, want)
	}

	if _, err := tk.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestTokenizerSpans(t *testing.T) {
	rs := Collect(strings.NewReader("ab,  12\nx"))
	want := []Span{
		{Pos{0, 0}, Pos{0, 2}},
		{Pos{0, 2}, Pos{0, 3}},
		{Pos{0, 3}, Pos{0, 5}},
		{Pos{0, 5}, Pos{0, 7}},
		{Pos{0, 7}, Pos{1, 0}},
		{Pos{1, 0}, Pos{1, 1}},
	}
	got := make([]Span, len(rs))
	for i := range rs {
		got[i] = rs[i].Span
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerEndIsSticky(t *testing.T) {
	tk := NewTokenizer(strings.NewReader("a"))
	if _, err := tk.Next(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := tk.Next(); err != io.EOF {
			t.Fatalf("call %d: expected io.EOF, got %v", i, err)
		}
	}
}

func TestTokenizerDeterministic(t *testing.T) {
	in := "node root\n  mesh plane 1,2,3.5 -4, x\n#tail"
	first := lex(in)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, lex(in)); diff != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, diff)
		}
	}
}

func TestTokenizerSmallBuffer(t *testing.T) {
	in := strings.Repeat("vertex 1.5,-2,3 ", 100)
	if diff := cmp.Diff(lex(in), lex(in, WithBufferSize(16))); diff != "" {
		t.Errorf("buffer size changed results (-default +small):\n%s", diff)
	}
}

func TestTokenizerReadFailure(t *testing.T) {
	t.Run("mid token", func(t *testing.T) {
		r := io.MultiReader(strings.NewReader("12"), iotest.ErrReader(errBoom))
		tk := NewTokenizer(r)
		_, err := tk.Next()
		if !errors.Is(err, ErrRead) || !errors.Is(err, errBoom) {
			t.Fatalf("expected read failure wrapping boom, got %v", err)
		}
		var re *ReadError
		if !errors.As(err, &re) || re.Pos != (Pos{Line: 0, Col: 2}) {
			t.Errorf("unexpected read error %#v", err)
		}
		if _, err := tk.Next(); err != io.EOF {
			t.Errorf("expected io.EOF after read failure, got %v", err)
		}
	})
	t.Run("at start", func(t *testing.T) {
		got := render(Collect(iotest.ErrReader(errBoom)))
		if diff := cmp.Diff([]string{"ReadFailure"}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("after tokens", func(t *testing.T) {
		r := io.MultiReader(strings.NewReader("1, "), iotest.ErrReader(errBoom))
		got := render(Collect(r))
		want := []string{"Int(1)", "Comma", "ReadFailure"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("advance fails after peek", func(t *testing.T) {
		tk := NewTokenizerFromStream(&flakyStream{data: "ab", failAdvanceAt: 1})
		_, err := tk.Next()
		if !errors.Is(err, ErrRead) || !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("expected read failure, got %v", err)
		}
	})
}

// flakyStream reports characters on Peek but runs dry on the
// failAdvanceAt'th Advance.
type flakyStream struct {
	data          string
	i             int
	failAdvanceAt int
}

func (f *flakyStream) Peek() (byte, error) {
	if f.i >= len(f.data) {
		return 0, io.EOF
	}
	return f.data[f.i], nil
}

func (f *flakyStream) Advance() (byte, error) {
	if f.i == f.failAdvanceAt {
		return 0, io.EOF
	}
	c, err := f.Peek()
	if err != nil {
		return 0, err
	}
	f.i++
	return c, nil
}

func TestTokenizeStopsAtFirstError(t *testing.T) {
	toks, err := Tokenize(strings.NewReader("a b 1x c"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	want := []Token{Identifier("a"), Whitespace(), Identifier("b"), Whitespace()}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestAllStopsWhenCallerStops(t *testing.T) {
	tk := NewTokenizer(strings.NewReader("a,b c"))
	n := 0
	for range tk.All() {
		n++
		if n == 2 {
			break
		}
	}
	tok, err := tk.Next()
	if err != nil {
		t.Fatal(err)
	}
	if want := `Identifier("b")`; tok.String() != want {
		t.Errorf("got %s, want %s", tok, want)
	}
}

func TestTokenizerTrace(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, err := Tokenize(strings.NewReader("1.5"), WithLogger(log)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"from=Start", "to=LexingInt", "to=LexingFloat", "lookahead=EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q:\n%s", want, out)
		}
	}
}

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		s    state
		c    byte
		eof  bool
		next state
		act  action
	}{
		{sStart, '-', false, sInt, aAdvance},
		{sStart, '5', false, sInt, aAdvance},
		{sStart, 'q', false, sIdentifier, aAdvance},
		{sStart, '\n', false, sWhitespace, aAdvance},
		{sStart, ',', false, sPunctuation, aAdvance},
		{sStart, '.', false, sStart, aEnd},
		{sStart, 0, true, sStart, aEnd},
		{sInt, '.', false, sFloat, aAdvance},
		{sInt, ',', false, sInt, aEmit},
		{sInt, '-', false, sInt, aFail},
		{sFloat, '.', false, sFloat, aFail},
		{sFloat, 0, true, sFloat, aEmit},
		{sIdentifier, ',', false, sIdentifier, aFail},
		{sIdentifier, '9', false, sIdentifier, aAdvance},
		{sWhitespace, 'a', false, sWhitespace, aEmit},
		{sWhitespace, 0, true, sWhitespace, aEmit},
		{sPunctuation, ',', false, sPunctuation, aEmit},
		{sPunctuation, ';', false, sPunctuation, aFail},
	}
	for _, c := range cases {
		next, act := transition(c.s, c.c, c.eof)
		if next != c.next || act != c.act {
			t.Errorf("transition(%s, %q, %v) = (%s, %d), want (%s, %d)",
				c.s, c.c, c.eof, next, act, c.next, c.act)
		}
	}
}
