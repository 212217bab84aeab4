package eval

import (
	"fmt"
	"strings"

	"github.com/kane-format/kane/token"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("isKind", func(params ...any) (any, error) {
			if len(params) != 2 {
				return nil, fmt.Errorf("isKind expects a kind and a name, got %d args", len(params))
			}
			k, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("isKind: kind must be a string, got %T", params[0])
			}
			name, ok := params[1].(string)
			if !ok {
				return nil, fmt.Errorf("isKind: name must be a string, got %T", params[1])
			}
			want, err := token.ParseKind(name)
			if err != nil {
				return nil, err
			}
			return strings.EqualFold(k, want.String()), nil
		},
			new(func(string, string) bool)),
	}
}
