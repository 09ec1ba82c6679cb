package builtin

import (
	"time"

	"github.com/rickb777/date/v2"

	"github.com/on-the-ground/pipe_ive_go/transform"
)

// DefaultDateLayout formats dates as ISO-8601 calendar dates.
const DefaultDateLayout = "2006-01-02"

// Date formats a time.Time or date.Date with an optional layout argument.
func Date() transform.Spec {
	return transform.Spec{
		Name:     "date",
		Pure:     true,
		MaxArgs:  1,
		Defaults: []any{DefaultDateLayout},
		New: func() transform.Transform {
			return transform.Func(func(value any, args ...any) (any, error) {
				layout, err := stringArg("date", 0, args)
				if err != nil {
					return nil, err
				}
				switch v := value.(type) {
				case time.Time:
					return v.Format(layout), nil
				case date.Date:
					return v.Format(layout), nil
				default:
					return nil, InputTypeError{Transform: "date", Value: value}
				}
			})
		},
	}
}
