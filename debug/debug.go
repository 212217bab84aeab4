package debug

import (
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	LSP      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("KANE_DEBUG_TOKENIZE")
	d.LSP = boolEnv("KANE_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func LSP() bool {
	return d.LSP
}

// Logger returns a text logger on stderr whose level comes from
// KANE_LOG_LEVEL (debug, info, warn, error; default info).
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel(os.Getenv("KANE_LOG_LEVEL")),
	}))
}

// TraceLogger returns a debug level text logger on stderr.
func TraceLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func slogLevel(v string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
