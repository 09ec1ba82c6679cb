package transform

import "github.com/on-the-ground/pipe_ive_go/shared/helper"

// EvaluateAs evaluates the binding and asserts the result to T.
// Returns a zero value and error if evaluation fails or the type mismatches.
func EvaluateAs[T any](b *Binding, value any, args ...any) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return b.Evaluate(value, args...)
	})
}

// MustEvaluateAs is the panic-on-failure variant of EvaluateAs.
func MustEvaluateAs[T any](b *Binding, value any, args ...any) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return b.Evaluate(value, args...)
	})
}
