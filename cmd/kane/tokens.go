package main

import (
	"fmt"
	"io"

	"github.com/kane-format/kane/encode"
	"github.com/kane-format/kane/eval"
	"github.com/kane-format/kane/load"
	"github.com/kane-format/kane/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		cfg.Tokens.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var filter *eval.Filter
	if cfg.Where != "" {
		filter, err = eval.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	failed := false
	if len(args) == 0 {
		failed, err = tokensReader(cfg, cc.Out, cc.In, "", filter)
		if err != nil {
			return err
		}
	}
	for _, file := range args {
		fFailed, err := tokensFile(cfg, cc.Out, file, filter)
		if err != nil {
			return err
		}
		failed = failed || fFailed
		if fFailed && !cfg.Keep {
			break
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func tokensFile(cfg *TokensConfig, w io.Writer, file string, filter *eval.Filter) (bool, error) {
	f, err := load.Open(file)
	if err != nil {
		return false, err
	}
	defer f.Close()
	return tokensReader(cfg, w, f, file, filter)
}

// tokensReader writes the results of lexing r to w. It reports whether a
// lexical error was seen; the returned error is for everything else.
func tokensReader(cfg *TokensConfig, w io.Writer, r io.Reader, path string, filter *eval.Filter) (bool, error) {
	cfg.logger().Debug("tokenizing", "path", path)
	enc := encode.NewEncoder(w, cfg.encOpts(w, path)...)
	tk := token.NewTokenizer(r)
	failed := false
	i := 0
	for tok, lexErr := range tk.All() {
		res := token.Result{Token: tok, Err: lexErr, Span: tk.Span()}
		idx := i
		i++
		if lexErr != nil {
			failed = true
		}
		show := lexErr != nil || tok.Kind != token.TWhitespace || cfg.Whitespace
		if show && filter != nil {
			ok, err := filter.Match(idx, res)
			if err != nil {
				return failed, err
			}
			show = ok
		}
		if show {
			if err := enc.Encode(res); err != nil {
				return failed, fmt.Errorf("error writing result %d: %w", idx, err)
			}
		}
		if lexErr != nil && !cfg.Keep {
			break
		}
	}
	return failed, nil
}
