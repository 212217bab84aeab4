// Package eval compiles expressions that select tokens from a stream.
//
// Expressions are written in the expr language and see the fields of
// [Env]; for example
//
//	kind == "Int" && int > 10
//	isError || line in 3..5
package eval

import (
	"fmt"

	"github.com/kane-format/kane/token"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is what a filter expression sees for one result.
type Env struct {
	Index   int     `expr:"index"`
	Kind    string  `expr:"kind"`
	Text    string  `expr:"text"`
	Int     int     `expr:"int"`
	Float   float64 `expr:"float"`
	Line    int     `expr:"line"`
	Col     int     `expr:"col"`
	IsError bool    `expr:"isError"`
	Error   string  `expr:"error"`
}

// EnvOf builds the environment of the index'th result r.
func EnvOf(index int, r token.Result) Env {
	env := Env{
		Index: index,
		Line:  r.Span.Start.Line,
		Col:   r.Span.Start.Col,
	}
	if r.Err != nil {
		env.IsError = true
		env.Error = r.Err.Error()
		if pos, ok := token.ErrPos(r.Err); ok {
			env.Line, env.Col = pos.Line, pos.Col
		}
		return env
	}
	env.Kind = r.Token.Kind.String()
	switch r.Token.Kind {
	case token.TInt:
		env.Int = int(r.Token.Int)
		env.Float = float64(r.Token.Int)
	case token.TFloat:
		env.Float = float64(r.Token.Float)
	}
	env.Text = r.Token.Lexeme()
	return env
}

// Filter is a compiled token selection expression.
type Filter struct {
	src string
	prg *vm.Program
}

// Compile compiles src, which must evaluate to a bool.
func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("could not compile filter %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match reports whether the index'th result r is selected.
func (f *Filter) Match(index int, r token.Result) (bool, error) {
	out, err := expr.Run(f.prg, EnvOf(index, r))
	if err != nil {
		return false, fmt.Errorf("error evaluating filter %q: %w", f.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q produced %T, not bool", f.src, out)
	}
	return b, nil
}
