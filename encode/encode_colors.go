package encode

import (
	"strings"

	"github.com/kane-format/kane/token"

	"github.com/fatih/color"
)

type Colors struct {
	Default func(string, ...any) string
	Pos     func(string, ...any) string
	Error   func(string, ...any) string
	Map     map[token.Kind]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Pos:     color.RGB(96, 96, 96).SprintfFunc(),
		Error:   color.New(color.FgRed, color.Bold).SprintfFunc(),
		Map:     map[token.Kind]func(string, ...any) string{},
	}
	colors.Map[token.TIdentifier] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[token.TInt] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[token.TFloat] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[token.TComma] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[token.TWhitespace] = color.BlueString
	escape := func(f func(string, ...any) string) func(string, ...any) string {
		return func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	for k, f := range colors.Map {
		colors.Map[k] = escape(f)
	}
	colors.Pos = escape(colors.Pos)
	colors.Error = escape(colors.Error)
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k token.Kind, s string) string {
	return c.Get(k)(s)
}

func (c *Colors) Get(k token.Kind) func(string, ...any) string {
	f := c.Map[k]
	if f == nil {
		return c.Default
	}
	return f
}
