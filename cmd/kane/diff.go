package main

import (
	"fmt"
	"io"

	"github.com/kane-format/kane/libdiff"
	"github.com/kane-format/kane/load"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	differs, err := diffFiles(cfg, cc.Out, args[0], args[1])
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffFiles(cfg *DiffConfig, w io.Writer, from, to string) (bool, error) {
	a, err := load.Tokens(from)
	if err != nil {
		return false, err
	}
	b, err := load.Tokens(to)
	if err != nil {
		return false, err
	}
	edits := libdiff.DiffTokens(a, b)
	if !libdiff.Changed(edits) {
		return false, nil
	}
	cfg.logger().Debug("files differ", "from", from, "to", to, "edits", len(edits))
	if cfg.format().IsJSON() {
		d, err := libdiff.JSONPatch(edits)
		if err != nil {
			return true, err
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return true, err
	}
	if err := libdiff.Write(w, edits, cfg.Context); err != nil {
		return true, fmt.Errorf("error writing diff: %w", err)
	}
	return true, nil
}
