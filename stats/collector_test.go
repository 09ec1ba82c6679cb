package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/on-the-ground/pipe_ive_go/stats"
	"github.com/on-the-ground/pipe_ive_go/template"
	"github.com/on-the-ground/pipe_ive_go/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityRegistry(t *testing.T, pure bool) *transform.Registry {
	t.Helper()
	reg := transform.NewRegistry()
	err := reg.Register(transform.Spec{
		Name: "echo",
		Pure: pure,
		New: func() transform.Transform {
			return transform.Func(func(v any, _ ...any) (any, error) { return v, nil })
		},
	})
	require.NoError(t, err)
	return reg
}

func TestNewConfig_ClampsToMinimums(t *testing.T) {
	cfg := stats.NewConfig(0, -3)
	assert.Equal(t, 1, cfg.BufferSize)
	assert.Equal(t, 1, cfg.NumWorkers)
}

func TestCollector_CountsInvocationsAndCacheHits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	collector, closeCollector := stats.NewCollector(ctx, stats.NewConfig(8, 2))
	defer closeCollector()

	scope := template.NewScope(identityRegistry(t, true), template.WithObserver(collector))
	defer scope.Teardown()

	b, err := scope.Bind("echo", 0)
	require.NoError(t, err)

	_, _ = b.Evaluate("bob")  // miss: invocation
	_, _ = b.Evaluate("bob")  // hit
	_, _ = b.Evaluate("bart") // miss: invocation

	require.Eventually(t, func() bool {
		counts := collector.Snapshot()["echo"]
		return counts.Invocations == 2 && counts.CacheHits == 1
	}, time.Second, 5*time.Millisecond)
}

func TestCollector_ImpureBindingsNeverHit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	collector, closeCollector := stats.NewCollector(ctx, stats.NewConfig(8, 1))
	defer closeCollector()

	scope := template.NewScope(identityRegistry(t, false), template.WithObserver(collector))
	defer scope.Teardown()

	b, err := scope.Bind("echo", 0)
	require.NoError(t, err)

	_, _ = b.Evaluate("bob")
	_, _ = b.Evaluate("bob")

	require.Eventually(t, func() bool {
		counts := collector.Snapshot()["echo"]
		return counts.Invocations == 2 && counts.CacheHits == 0
	}, time.Second, 5*time.Millisecond)
}

func TestCollector_DropsEventsAfterClose(t *testing.T) {
	ctx := context.Background()
	collector, closeCollector := stats.NewCollector(ctx, stats.NewConfig(1, 1))

	scope := template.NewScope(identityRegistry(t, true), template.WithObserver(collector))
	defer scope.Teardown()

	b, err := scope.Bind("echo", 0)
	require.NoError(t, err)

	closeCollector()
	closeCollector() // idempotent

	// Must not block or panic.
	_, err = b.Evaluate("bob")
	require.NoError(t, err)
}
