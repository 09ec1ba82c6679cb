package builtin

import "fmt"

// InputTypeError reports a base value the transform cannot handle.
type InputTypeError struct {
	Transform string
	Value     any
}

func (e InputTypeError) Error() string {
	return fmt.Sprintf("builtin: %s cannot transform value of type %T", e.Transform, e.Value)
}

// ArgTypeError reports an extra argument of an unexpected type.
type ArgTypeError struct {
	Transform string
	Index     int
	Value     any
}

func (e ArgTypeError) Error() string {
	return fmt.Sprintf("builtin: %s argument %d has unexpected type %T", e.Transform, e.Index, e.Value)
}

func stringArg(name string, idx int, args []any) (string, error) {
	s, ok := args[idx].(string)
	if !ok {
		return "", ArgTypeError{Transform: name, Index: idx, Value: args[idx]}
	}
	return s, nil
}

func intArg(name string, idx int, args []any) (int, error) {
	n, ok := args[idx].(int)
	if !ok {
		return 0, ArgTypeError{Transform: name, Index: idx, Value: args[idx]}
	}
	return n, nil
}
