package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kane-format/kane/encode"
	"github.com/kane-format/kane/format"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Log  *slog.Logger
	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.OutFormat = &f
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.TextFormat
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.Log
}

func (cfg *MainConfig) encOpts(w io.Writer, path string) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
		encode.EncodePath(path),
	}
	if !cfg.format().IsText() {
		return res
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

// colors returns the colors to use writing to w, or nil for none. An
// explicit -color wins; otherwise colors are used on terminals.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		color.NoColor = false
		return encode.NewColors()
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return nil
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

type TokensConfig struct {
	*MainConfig
	Whitespace bool   `cli:"name=ws desc='include whitespace tokens'"`
	Keep       bool   `cli:"name=k desc='keep going after lexical errors'"`
	Where      string `cli:"name=where desc='only print results matching an expr filter'"`

	Tokens *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit status'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Context int `cli:"name=c desc='unchanged tokens to show around changes (-1 for all)'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
