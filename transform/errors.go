package transform

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidSpec rejects a malformed registration.
	ErrInvalidSpec = errors.New("transform: invalid spec")

	// ErrBindingTornDown is returned when a destroyed binding is evaluated.
	ErrBindingTornDown = errors.New("transform: binding has been torn down")
)

// UnknownTransformError reports a binding referencing a name absent from the
// registry. This is fatal at construction time: there is no fallback and the
// binding is never created.
type UnknownTransformError struct{ Name string }

func (e UnknownTransformError) Error() string {
	return "transform: unknown transform " + strconv.Quote(e.Name)
}

// ArityError reports an extra-argument count outside the declared signature.
type ArityError struct {
	Name string
	Got  int
	Min  int
	Max  int
}

func (e ArityError) Error() string {
	if e.Min == e.Max {
		return fmt.Sprintf("transform: %s takes %d extra argument(s), got %d", e.Name, e.Max, e.Got)
	}
	return fmt.Sprintf("transform: %s takes %d..%d extra argument(s), got %d", e.Name, e.Min, e.Max, e.Got)
}
