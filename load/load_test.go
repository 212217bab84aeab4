package load

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kane-format/kane/token"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestReadFile(t *testing.T) {
	p := writeFile(t, "plane.kane", "mesh plane\n")
	d, err := ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "mesh plane\n" {
		t.Errorf("got %q", d)
	}
}

func TestReadFileNotFound(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.kane")
	_, err := ReadFile(p)
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FileError, got %v", err)
	}
	if fe.Kind != NotFound || fe.Path != p {
		t.Errorf("got kind %s path %q", fe.Kind, fe.Path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected error to wrap fs.ErrNotExist")
	}
}

func TestFileErrorOwnsPath(t *testing.T) {
	path := []byte("scene.kane")
	err := &FileError{Kind: CouldNotRead, Path: string(path)}
	path[0] = 'X'
	if err.Path != "scene.kane" {
		t.Errorf("path changed to %q", err.Path)
	}
	if got, want := err.Error(), "scene.kane: could not read"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTokens(t *testing.T) {
	p := writeFile(t, "v.kane", "vertex 1,2,3.5")
	toks, err := Tokens(p)
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Token{
		token.Identifier("vertex"), token.Whitespace(),
		token.Int(1), token.Comma(), token.Int(2), token.Comma(), token.Float(3.5),
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokensParseFailure(t *testing.T) {
	p := writeFile(t, "bad.kane", "vertex 1x")
	_, err := Tokens(p)
	var fe *FileError
	if !errors.As(err, &fe) || fe.Kind != CouldNotParse {
		t.Fatalf("expected CouldNotParse, got %v", err)
	}
	if !errors.Is(err, token.ErrParse) {
		t.Error("expected error to wrap token.ErrParse")
	}
	if pos, ok := token.ErrPos(err); !ok || pos != (token.Pos{Line: 0, Col: 9}) {
		t.Errorf("got pos %v, %v", pos, ok)
	}
}
