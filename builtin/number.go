package builtin

import (
	"github.com/govalues/decimal"

	"github.com/on-the-ground/pipe_ive_go/transform"
)

// DefaultNumberScale is the number of fractional digits kept by default.
const DefaultNumberScale = 2

// Number renders a numeric value as a fixed-point decimal string, rounding
// half-to-even to the optional scale argument.
func Number() transform.Spec {
	return transform.Spec{
		Name:     "number",
		Pure:     true,
		MaxArgs:  1,
		Defaults: []any{DefaultNumberScale},
		New: func() transform.Transform {
			return transform.Func(func(value any, args ...any) (any, error) {
				scale, err := intArg("number", 0, args)
				if err != nil {
					return nil, err
				}

				var d decimal.Decimal
				switch v := value.(type) {
				case decimal.Decimal:
					d = v
				case float64:
					d, err = decimal.NewFromFloat64(v)
				case int:
					d, err = decimal.New(int64(v), 0)
				case int64:
					d, err = decimal.New(v, 0)
				case string:
					d, err = decimal.Parse(v)
				default:
					return nil, InputTypeError{Transform: "number", Value: value}
				}
				if err != nil {
					return nil, err
				}

				return d.Round(scale).String(), nil
			})
		},
	}
}
