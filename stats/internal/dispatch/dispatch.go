package dispatch

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Partitionable routes a message to a stable worker by key: messages sharing
// a PartitionKey are always handled by the same goroutine, preserving their
// relative order.
type Partitionable interface {
	PartitionKey() string
}

// Dispatcher hands out the channel a message must be sent on.
type Dispatcher[T any] interface {
	ChannelOf(msg T) chan T
}

// --- single queue ---

type single[T any] struct {
	ch chan T
}

func (q single[T]) ChannelOf(_ T) chan T { return q.ch }

// NewSingle starts one worker draining a buffered queue until ctx is done.
func NewSingle[T any](
	ctx context.Context,
	bufferSize int,
	handle func(context.Context, T),
) Dispatcher[T] {
	ch := make(chan T, bufferSize)
	ready := make(chan struct{})

	go func(ch chan T) {
		defer close(ch)
		close(ready)
		for {
			select {
			case msg := <-ch:
				handle(ctx, msg)
			case <-ctx.Done():
				return
			}
		}
	}(ch)

	<-ready

	return single[T]{ch: ch}
}

// --- partitioned queues ---

type partitioned[T Partitionable] struct {
	chs []chan T
}

func (q partitioned[T]) ChannelOf(msg T) chan T {
	return q.chs[indexFor(msg.PartitionKey(), len(q.chs))]
}

// NewPartitioned starts numWorkers workers, each draining its own buffered
// queue until ctx is done. Messages are assigned to queues by hashing their
// partition key.
func NewPartitioned[T Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handle func(context.Context, T),
) Dispatcher[T] {
	chs := make([]chan T, numWorkers)
	ready := sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		ready.Add(1)
		ch := make(chan T, bufferSize)
		go func(ch chan T) {
			defer close(ch)
			ready.Done()
			for {
				select {
				case msg := <-ch:
					handle(ctx, msg)
				case <-ctx.Done():
					return
				}
			}
		}(ch)
		chs[i] = ch
	}
	ready.Wait()
	return partitioned[T]{chs: chs}
}

func indexFor(key string, numChs int) int {
	if numChs <= 1 {
		return 0
	}
	return int(xxhash.Sum64String(key) % uint64(numChs))
}
