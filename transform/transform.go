package transform

import "fmt"

// MaxExtraArgs bounds how many arguments a transform may declare beyond its
// base value.
const MaxExtraArgs = 3

// Transform maps a base value plus bound extra arguments to an output value.
// Implementations may keep per-instance state; each binding owns exactly one
// instance and never shares it.
type Transform interface {
	Transform(value any, args ...any) (any, error)
}

// TeardownHook is implemented by transforms that must release resources when
// their owning binding is destroyed. The hook fires exactly once.
type TeardownHook interface {
	Teardown()
}

// Func adapts a plain function to the Transform interface.
type Func func(value any, args ...any) (any, error)

func (f Func) Transform(value any, args ...any) (any, error) {
	return f(value, args...)
}

// Spec describes one named transform registration.
type Spec struct {
	// Name resolves the transform at binding construction time.
	Name string

	// Pure marks the transform as memoizable: a binding reuses its last
	// result while every argument stays identical.
	Pure bool

	// MaxArgs is how many extra arguments the transform accepts beyond the
	// base value, at most MaxExtraArgs.
	MaxArgs int

	// Defaults fills omitted trailing arguments. Arguments before the
	// defaulted tail are required, so len(Defaults) <= MaxArgs.
	Defaults []any

	// New constructs a fresh instance. Called once per binding.
	New func() Transform
}

// requiredArgs is the number of extra arguments a binding must declare.
func (s Spec) requiredArgs() int {
	return s.MaxArgs - len(s.Defaults)
}

func (s Spec) validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidSpec)
	case s.New == nil:
		return fmt.Errorf("%w: %q has no factory", ErrInvalidSpec, s.Name)
	case s.MaxArgs < 0 || s.MaxArgs > MaxExtraArgs:
		return fmt.Errorf("%w: %q declares %d extra arguments, want 0..%d",
			ErrInvalidSpec, s.Name, s.MaxArgs, MaxExtraArgs)
	case len(s.Defaults) > s.MaxArgs:
		return fmt.Errorf("%w: %q declares %d defaults for %d arguments",
			ErrInvalidSpec, s.Name, len(s.Defaults), s.MaxArgs)
	}
	return nil
}
