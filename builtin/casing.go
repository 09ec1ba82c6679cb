package builtin

import (
	"strings"

	"github.com/on-the-ground/pipe_ive_go/transform"
)

// Uppercase maps a string to its upper-case form.
func Uppercase() transform.Spec {
	return casing("uppercase", strings.ToUpper)
}

// Lowercase maps a string to its lower-case form.
func Lowercase() transform.Spec {
	return casing("lowercase", strings.ToLower)
}

func casing(name string, mapFn func(string) string) transform.Spec {
	return transform.Spec{
		Name: name,
		Pure: true,
		New: func() transform.Transform {
			return transform.Func(func(value any, _ ...any) (any, error) {
				s, ok := value.(string)
				if !ok {
					return nil, InputTypeError{Transform: name, Value: value}
				}
				return mapFn(s), nil
			})
		},
	}
}
