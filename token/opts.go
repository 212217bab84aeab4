package token

import "log/slog"

type tokenOpts struct {
	bufSize int
	log     *slog.Logger
}

type TokenOpt func(*tokenOpts)

// WithBufferSize sets the read buffer size of the character stream.
func WithBufferSize(n int) TokenOpt {
	return func(o *tokenOpts) { o.bufSize = n }
}

// WithLogger traces state transitions to l at debug level.
func WithLogger(l *slog.Logger) TokenOpt {
	return func(o *tokenOpts) { o.log = l }
}
