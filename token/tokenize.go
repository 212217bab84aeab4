package token

import (
	"fmt"
	"io"
)

// Result is one element of a token sequence: either a token or an error,
// with the span of input it covers.
type Result struct {
	Token Token
	Err   error
	Span  Span
}

// Tokenize returns the tokens of r, stopping at the first error.
func Tokenize(r io.Reader, opts ...TokenOpt) ([]Token, error) {
	t := NewTokenizer(r, opts...)
	var res []Token
	for tok, err := range t.All() {
		if err != nil {
			return res, err
		}
		res = append(res, tok)
	}
	return res, nil
}

// Collect drains r, keeping going after errors, and returns every result
// in order.
func Collect(r io.Reader, opts ...TokenOpt) []Result {
	t := NewTokenizer(r, opts...)
	var res []Result
	for tok, err := range t.All() {
		res = append(res, Result{Token: tok, Err: err, Span: t.Span()})
	}
	return res
}

// Errors returns the errors among rs.
func Errors(rs []Result) []error {
	var errs []error
	for i := range rs {
		if rs[i].Err != nil {
			errs = append(errs, rs[i].Err)
		}
	}
	return errs
}

// PrintTokens writes the tokens of r to w one per line, in the form of
// Token.String. It stops at the first error, which is written as its
// message and returned.
func PrintTokens(w io.Writer, r io.Reader, opts ...TokenOpt) error {
	t := NewTokenizer(r, opts...)
	for tok, err := range t.All() {
		if err != nil {
			if _, werr := fmt.Fprintln(w, err); werr != nil {
				return werr
			}
			return err
		}
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return err
		}
	}
	return nil
}
