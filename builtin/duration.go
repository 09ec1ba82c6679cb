package builtin

import (
	"time"

	"github.com/rickb777/period"

	"github.com/on-the-ground/pipe_ive_go/transform"
)

// Duration renders a time.Duration as an ISO-8601 period string
// (90 minutes -> "PT1H30M").
func Duration() transform.Spec {
	return transform.Spec{
		Name: "duration",
		Pure: true,
		New: func() transform.Transform {
			return transform.Func(func(value any, _ ...any) (any, error) {
				d, ok := value.(time.Duration)
				if !ok {
					return nil, InputTypeError{Transform: "duration", Value: value}
				}
				p := period.NewOf(d)
				return p.String(), nil
			})
		},
	}
}
