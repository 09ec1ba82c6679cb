package transform_test

import (
	"testing"

	"github.com/on-the-ground/pipe_ive_go/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constSpec(name string, out any) transform.Spec {
	return transform.Spec{
		Name: name,
		Pure: true,
		New: func() transform.Transform {
			return transform.Func(func(_ any, _ ...any) (any, error) {
				return out, nil
			})
		},
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := transform.NewRegistry()
	require.NoError(t, reg.Register(constSpec("upper", "UP")))

	spec, ok := reg.Lookup("upper")
	assert.True(t, ok)
	assert.Equal(t, "upper", spec.Name)

	_, ok = reg.Lookup("nope")
	assert.False(t, ok)
}

func TestRegistry_DuplicateNameLastWriteWins(t *testing.T) {
	reg := transform.NewRegistry()
	require.NoError(t, reg.Register(constSpec("duplicatePipe", "first")))
	require.NoError(t, reg.Register(constSpec("duplicatePipe", "second")))

	b, err := transform.NewBinding(reg, "duplicatePipe", 0)
	require.NoError(t, err)
	defer b.Teardown()

	out, err := b.Evaluate("whatever")
	require.NoError(t, err)
	// Only the later registration is visible.
	assert.Equal(t, "second", out)
}

func TestRegistry_RejectsInvalidSpecs(t *testing.T) {
	reg := transform.NewRegistry()
	factory := func() transform.Transform {
		return transform.Func(func(v any, _ ...any) (any, error) { return v, nil })
	}

	cases := map[string]transform.Spec{
		"empty name":        {New: factory},
		"nil factory":       {Name: "x"},
		"too many args":     {Name: "x", New: factory, MaxArgs: transform.MaxExtraArgs + 1},
		"negative args":     {Name: "x", New: factory, MaxArgs: -1},
		"too many defaults": {Name: "x", New: factory, MaxArgs: 1, Defaults: []any{1, 2}},
	}
	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			err := reg.Register(spec)
			assert.ErrorIs(t, err, transform.ErrInvalidSpec)
		})
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := transform.NewRegistry()
	require.NoError(t, reg.Register(constSpec("zulu", nil)))
	require.NoError(t, reg.Register(constSpec("alpha", nil)))
	require.NoError(t, reg.Register(constSpec("mike", nil)))

	assert.Equal(t, []string{"alpha", "mike", "zulu"}, reg.Names())
}
