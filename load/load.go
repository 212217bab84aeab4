// Package load reads kane scene files from disk.
package load

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/kane-format/kane/token"
)

type ErrKind int

const (
	NotFound ErrKind = iota
	CouldNotRead
	CouldNotParse
)

func (k ErrKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case CouldNotRead:
		return "could not read"
	case CouldNotParse:
		return "could not parse"
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

// FileError reports a failure to load the file at Path.
type FileError struct {
	Kind ErrKind
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Kind, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Stdin is the path naming standard input.
const Stdin = "-"

// Open opens path for reading. The path "-" opens standard input, which
// is not closed by the returned closer.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		kind := CouldNotRead
		if errors.Is(err, fs.ErrNotExist) {
			kind = NotFound
		}
		return nil, &FileError{Kind: kind, Path: path, Err: err}
	}
	return f, nil
}

// ReadFile returns the contents of path.
func ReadFile(path string) ([]byte, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := io.ReadAll(f)
	if err != nil {
		return nil, &FileError{Kind: CouldNotRead, Path: path, Err: err}
	}
	return d, nil
}

// Tokens returns the tokens of the file at path, failing on the first
// lexical error.
func Tokens(path string, opts ...token.TokenOpt) ([]token.Token, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	toks, err := token.Tokenize(f, opts...)
	if err != nil {
		kind := CouldNotParse
		if errors.Is(err, token.ErrRead) {
			kind = CouldNotRead
		}
		return nil, &FileError{Kind: kind, Path: path, Err: err}
	}
	return toks, nil
}
