package main

import (
	"fmt"
	"io"

	"github.com/kane-format/kane/encode"
	"github.com/kane-format/kane/load"
	"github.com/kane-format/kane/token"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	n := 0
	if len(args) == 0 {
		n, err = checkReader(cfg, cc.Out, cc.In, "<stdin>")
		if err != nil {
			return err
		}
	}
	for _, file := range args {
		fn, err := checkFile(cfg, cc.Out, file)
		if err != nil {
			return err
		}
		n += fn
	}
	if n > 0 {
		cfg.logger().Info("lexical errors found", "count", n)
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, w io.Writer, file string) (int, error) {
	f, err := load.Open(file)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return checkReader(cfg, w, f, file)
}

// checkReader lexes all of r and reports each error as
// "name:line:col: kind: message" with a 1-based line. Columns are
// reported as is: an error's column is that of the character that
// caused it, counted from 1.
func checkReader(cfg *CheckConfig, w io.Writer, r io.Reader, name string) (int, error) {
	errs := token.Errors(token.Collect(r))
	if cfg.Quiet {
		return len(errs), nil
	}
	c := cfg.colors(w)
	for _, lexErr := range errs {
		pos, _ := token.ErrPos(lexErr)
		loc := fmt.Sprintf("%s:%d:%d", name, pos.Line+1, max(pos.Col, 1))
		kind := encode.ErrKind(lexErr)
		if c != nil {
			loc = c.Pos(loc)
			kind = c.Error(kind)
		}
		if _, err := fmt.Fprintf(w, "%s: %s: %s\n", loc, kind, lexErr); err != nil {
			return len(errs), err
		}
	}
	return len(errs), nil
}
