// Package stats aggregates binding evaluation telemetry off the evaluation
// path. Events are fanned out to workers partitioned by binding ID, so the
// per-binding event order is preserved while the evaluating goroutine never
// waits on bookkeeping.
package stats

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/pipe_ive_go/stats/internal/dispatch"
	"github.com/on-the-ground/pipe_ive_go/transform"
)

// Config sizes the collector's worker pool.
type Config struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1
}

// NewConfig clamps sizes to their minimums.
func NewConfig(bufferSize, numWorkers int) Config {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return Config{BufferSize: bufferSize, NumWorkers: numWorkers}
}

// Kind classifies an evaluation event.
type Kind uint8

const (
	// KindInvocation records an actual transform invocation.
	KindInvocation Kind = iota
	// KindCacheHit records a memoized result returned without invoking.
	KindCacheHit
)

// Event is one evaluation outcome routed through the collector.
type Event struct {
	BindingID string
	Transform string
	Kind      Kind
}

// PartitionKey keeps each binding's events on one worker.
func (e Event) PartitionKey() string { return e.BindingID }

// Counts is a snapshot of one transform's evaluation totals.
type Counts struct {
	Invocations uint64
	CacheHits   uint64
}

// Option configures a collector at construction.
type Option func(*Collector)

// WithLogger replaces the collector's no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Collector) { c.logger = logger }
}

// Collector implements transform.Observer by counting invocations and cache
// hits per transform name. Snapshots are eventually consistent with the
// evaluations that produced them: events travel through buffered queues.
type Collector struct {
	id         string
	ctx        context.Context
	dispatcher dispatch.Dispatcher[Event]
	counts     sync.Map // transform name -> *tally
	logger     *zap.Logger
	closeFn    func()
	closed     bool
}

type tally struct {
	invocations atomic.Uint64
	hits        atomic.Uint64
}

// NewCollector starts the collector's workers.
//
//   - Returns the collector and a teardown function.
//   - The teardown function should be called when the collector is no longer
//     needed; events observed after that are dropped.
func NewCollector(ctx context.Context, config Config, opts ...Option) (*Collector, func()) {
	ctx, cancelFn := context.WithCancel(ctx)
	c := &Collector{
		id:      uuid.New().String(),
		ctx:     ctx,
		logger:  zap.NewNop(),
		closeFn: cancelFn,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.dispatcher = dispatch.NewPartitioned(ctx, config.NumWorkers, config.BufferSize, c.consume)

	c.logger.Debug("stats collector started",
		zap.String("collectorId", c.id),
		zap.Int("numWorkers", config.NumWorkers),
		zap.Int("bufferSize", config.BufferSize),
	)
	return c, c.Close
}

// Close stops the workers. Safe to call more than once.
func (c *Collector) Close() {
	if !c.closed {
		c.closeFn()
		c.closed = true
		c.logger.Debug("stats collector closed", zap.String("collectorId", c.id))
	}
}

// ObserveEvaluation implements transform.Observer. Events arriving after
// Close are dropped rather than blocking or panicking.
func (c *Collector) ObserveEvaluation(ev transform.Evaluation) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("evaluation event dropped after close",
				zap.String("collectorId", c.id),
				zap.String("transform", ev.Transform),
			)
		}
	}()

	msg := Event{
		BindingID: ev.BindingID,
		Transform: ev.Transform,
		Kind:      KindInvocation,
	}
	if ev.CacheHit {
		msg.Kind = KindCacheHit
	}

	select {
	case <-c.ctx.Done():
	case c.dispatcher.ChannelOf(msg) <- msg:
	}
}

func (c *Collector) consume(_ context.Context, ev Event) {
	t := c.tallyFor(ev.Transform)
	switch ev.Kind {
	case KindCacheHit:
		t.hits.Add(1)
	default:
		t.invocations.Add(1)
	}
}

func (c *Collector) tallyFor(name string) *tally {
	actual, _ := c.counts.LoadOrStore(name, &tally{})
	return actual.(*tally)
}

// Snapshot returns the current totals per transform name.
func (c *Collector) Snapshot() map[string]Counts {
	out := make(map[string]Counts)
	c.counts.Range(func(key, value any) bool {
		t := value.(*tally)
		out[key.(string)] = Counts{
			Invocations: t.invocations.Load(),
			CacheHits:   t.hits.Load(),
		}
		return true
	})
	return out
}
