package builtin

import (
	"encoding/json"

	"github.com/on-the-ground/pipe_ive_go/transform"
)

// JSON renders any marshalable value as a compact JSON string.
func JSON() transform.Spec {
	return transform.Spec{
		Name: "json",
		Pure: true,
		New: func() transform.Transform {
			return transform.Func(func(value any, _ ...any) (any, error) {
				raw, err := json.Marshal(value)
				if err != nil {
					return nil, err
				}
				return string(raw), nil
			})
		},
	}
}
