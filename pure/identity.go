package pure

import "reflect"

// Identical reports whether a and b are the same value under host identity:
// primitives and other comparable values compare by ==, reference values
// (slices, maps, channels, functions) compare by the pointer they carry.
// Two distinct values with equal contents are NOT identical.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Slice:
		// Same backing array and same window.
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	default:
		if !va.Comparable() {
			// A non-comparable value has no usable identity.
			return false
		}
		return va.Equal(vb)
	}
}

// IdenticalArgs compares two argument vectors element-wise with Identical.
// A single differing element makes the whole vectors non-identical.
func IdenticalArgs(xs, ys []any) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !Identical(xs[i], ys[i]) {
			return false
		}
	}
	return true
}
