// Package modules holds the view state of each learning module. Controllers
// are driven from a single event loop; only the Task closures they hand out
// run on other goroutines, and those never touch controller state.
package modules

import (
	"context"
	"sync/atomic"

	"github.com/abhisek/elan/internal/logger"
)

// Phase is the lifecycle of a content fetch.
type Phase int

const (
	PhaseIdle    Phase = iota // Nothing requested yet
	PhaseLoading              // Fetch in flight
	PhaseReady                // Content (possibly empty) available
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	}
	return "unknown"
}

// generations is shared by every controller so a completion can only ever
// match the fetch that produced it.
var generations atomic.Uint64

// Loaded is the completion of a Task.
type Loaded[T any] struct {
	Gen   uint64
	Value T
	Err   error
}

// Task performs a fetch. It is safe to run on any goroutine.
type Task[T any] func() Loaded[T]

type fetcher[T any] struct {
	name   string
	log    *logger.Logger
	phase  Phase
	gen    uint64
	cancel context.CancelFunc
	value  T
}

func newFetcher[T any](name string, log *logger.Logger) fetcher[T] {
	if log == nil {
		log = logger.Nop()
	}
	return fetcher[T]{name: name, log: log}
}

// start supersedes any fetch in flight and returns the task for fn.
func (f *fetcher[T]) start(ctx context.Context, fn func(context.Context) (T, error)) Task[T] {
	f.Stop()

	gen := generations.Add(1)
	ctx, cancel := context.WithCancel(ctx)
	f.gen = gen
	f.cancel = cancel
	f.phase = PhaseLoading
	var zero T
	f.value = zero

	return func() Loaded[T] {
		defer cancel()
		v, err := fn(ctx)
		return Loaded[T]{Gen: gen, Value: v, Err: err}
	}
}

// finish records a completion. It reports false, changing nothing, when the
// completion belongs to a superseded or stopped fetch.
func (f *fetcher[T]) finish(r Loaded[T]) bool {
	if f.phase != PhaseLoading || r.Gen != f.gen {
		return false
	}
	f.cancel = nil
	f.phase = PhaseReady
	if r.Err != nil {
		f.log.Warn("content fetch failed", "module", f.name, "error", r.Err)
		var zero T
		f.value = zero
		return true
	}
	f.value = r.Value
	return true
}

// Stop cancels the fetch in flight, if any. Its completion will be ignored.
func (f *fetcher[T]) Stop() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	if f.phase == PhaseLoading {
		f.phase = PhaseIdle
	}
	f.gen = 0
}

// Phase returns the current fetch phase.
func (f *fetcher[T]) Phase() Phase {
	return f.phase
}

// Loading reports whether a fetch is in flight.
func (f *fetcher[T]) Loading() bool {
	return f.phase == PhaseLoading
}
