// Package builtin provides the stock transforms shipped with the module:
// string casing, date/number/duration formatting, pluralization, slicing and
// JSON rendering. All of them are pure.
//
// Register installs every builtin into a registry:
//
//	reg := transform.NewRegistry()
//	if err := builtin.Register(reg); err != nil { ... }
package builtin

import "github.com/on-the-ground/pipe_ive_go/transform"

// Register installs all builtin transforms into r.
func Register(r *transform.Registry) error {
	for _, spec := range Specs() {
		if err := r.Register(spec); err != nil {
			return err
		}
	}
	return nil
}

// Specs returns the registration specs of every builtin transform.
func Specs() []transform.Spec {
	return []transform.Spec{
		Uppercase(),
		Lowercase(),
		Date(),
		Number(),
		Duration(),
		Plural(),
		Slice(),
		JSON(),
	}
}
