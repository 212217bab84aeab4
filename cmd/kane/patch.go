package main

import (
	"fmt"
	"io"

	"github.com/kane-format/kane/libdiff"
	"github.com/kane-format/kane/load"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 args, got %v", cli.ErrUsage, args)
	}
	return patchFile(cfg, cc.Out, args[0], args[1])
}

// patchFile writes the token lines of file after applying the json patch
// in patchPath, one per line.
func patchFile(cfg *PatchConfig, w io.Writer, file, patchPath string) error {
	toks, err := load.Tokens(file)
	if err != nil {
		return err
	}
	d, err := load.ReadFile(patchPath)
	if err != nil {
		return err
	}
	lines, err := libdiff.ApplyJSONPatch(toks, d)
	if err != nil {
		return fmt.Errorf("%s: %w", patchPath, err)
	}
	cfg.logger().Debug("patched", "file", file, "patch", patchPath, "tokens", len(lines))
	for _, ln := range lines {
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return err
		}
	}
	return nil
}
