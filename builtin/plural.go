package builtin

import (
	"github.com/rickb777/plural"

	"github.com/on-the-ground/pipe_ive_go/transform"
)

// Default plural forms; "%v" receives the quantity.
const (
	DefaultPluralZero = "nothing"
	DefaultPluralOne  = "%v item"
	DefaultPluralMany = "%v items"
)

// Plural phrases a quantity using zero/one/many form arguments, all optional.
func Plural() transform.Spec {
	return transform.Spec{
		Name:     "plural",
		Pure:     true,
		MaxArgs:  3,
		Defaults: []any{DefaultPluralZero, DefaultPluralOne, DefaultPluralMany},
		New: func() transform.Transform {
			return transform.Func(func(value any, args ...any) (any, error) {
				zero, err := stringArg("plural", 0, args)
				if err != nil {
					return nil, err
				}
				one, err := stringArg("plural", 1, args)
				if err != nil {
					return nil, err
				}
				many, err := stringArg("plural", 2, args)
				if err != nil {
					return nil, err
				}

				switch value.(type) {
				case int, int64, uint, uint64, float64:
					return plural.FromZero(zero, one, many).Format(value)
				default:
					return nil, InputTypeError{Transform: "plural", Value: value}
				}
			})
		},
	}
}
