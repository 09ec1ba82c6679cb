package builtin

import (
	"reflect"

	"github.com/on-the-ground/pipe_ive_go/transform"
)

// SliceToEnd is the sentinel end argument meaning "through the last element".
const SliceToEnd = -1

// Slice returns a subsequence of a string or slice value, with optional
// start (default 0) and end (default SliceToEnd) arguments. Bounds are
// clamped to the input length rather than erroring.
func Slice() transform.Spec {
	return transform.Spec{
		Name:     "slice",
		Pure:     true,
		MaxArgs:  2,
		Defaults: []any{0, SliceToEnd},
		New: func() transform.Transform {
			return transform.Func(func(value any, args ...any) (any, error) {
				start, err := intArg("slice", 0, args)
				if err != nil {
					return nil, err
				}
				end, err := intArg("slice", 1, args)
				if err != nil {
					return nil, err
				}

				switch v := value.(type) {
				case string:
					runes := []rune(v)
					lo, hi := clampWindow(start, end, len(runes))
					return string(runes[lo:hi]), nil
				default:
					rv := reflect.ValueOf(value)
					if rv.Kind() != reflect.Slice {
						return nil, InputTypeError{Transform: "slice", Value: value}
					}
					lo, hi := clampWindow(start, end, rv.Len())
					return rv.Slice(lo, hi).Interface(), nil
				}
			})
		},
	}
}

func clampWindow(start, end, length int) (int, int) {
	if end == SliceToEnd || end > length {
		end = length
	}
	if start < 0 {
		start = 0
	}
	if start > length {
		start = length
	}
	if end < start {
		end = start
	}
	return start, end
}
