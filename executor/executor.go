// Package executor provides the "submit a unit of async work" abstraction
// used by the parallel and timeout composites and by the task adapter's
// timed attempts, plus a default worker-pool implementation (unbounded
// unless built with NewBoundedPool).
package executor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	_ "go.uber.org/automaxprocs" // adjusts GOMAXPROCS to the container CPU quota on import
)

// ErrFutureCancelled is returned by Future.Get when the unit was cancelled
// before or during execution.
var ErrFutureCancelled = errors.New("executor: future cancelled")

// Unit is a computation submitted to an Executor; it receives the unit's
// own context. It must honor ctx cancellation on a best-effort basis.
type Unit func(ctx context.Context) (any, error)

// Future represents a unit of work in flight.
type Future interface {
	// Get blocks until the unit completes or ctx is done, whichever
	// comes first.
	Get(ctx context.Context) (any, error)
	// Cancel requests cancellation of the unit. Best-effort: units that
	// ignore ctx cancellation run to completion regardless.
	Cancel()
}

// Executor submits units of async work and tracks their completion.
type Executor interface {
	Submit(unit Unit) Future
	// Shutdown releases underlying resources, waiting up to ctx's
	// deadline for in-flight units to finish.
	Shutdown(ctx context.Context) error
}

// future is the default Future implementation: a single-assignment result
// channel plus a cancel func bound to the unit's own context.
type future struct {
	done   chan struct{}
	result any
	err    error
	cancel context.CancelFunc

	cancelled atomic.Bool
}

func (f *future) Get(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *future) Cancel() {
	f.cancelled.Store(true)
	f.cancel()
}

func (f *future) complete(result any, err error) {
	f.result = result
	f.err = err
	close(f.done)
}

// Pool is an unbounded-by-default, optionally bounded, goroutine-backed
// Executor. Grounded on the worker-pool lifecycle pattern (buffered work
// intake, background completion tracking, graceful drain) used by the
// composition runtime's own parallel composite.
type Pool struct {
	sem           *semaphore.Weighted // nil means unbounded
	maxConcurrent int64               // 0 means unbounded

	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
}

// NewPool creates an unbounded pool: every Submit spawns its own
// goroutine immediately. This matches spec.md §4.14's default
// implementation ("an unbounded thread pool that grows as needed").
func NewPool() *Pool {
	return &Pool{closeCh: make(chan struct{})}
}

// NewBoundedPool creates a pool that admits at most maxConcurrent units
// running at once; further Submit calls block until a slot frees up.
func NewBoundedPool(maxConcurrent int64) *Pool {
	return &Pool{
		sem:           semaphore.NewWeighted(maxConcurrent),
		maxConcurrent: maxConcurrent,
		closeCh:       make(chan struct{}),
	}
}

func (p *Pool) Submit(unit Unit) Future {
	ctx, cancel := context.WithCancel(context.Background())
	f := &future{done: make(chan struct{}), cancel: cancel}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		f.complete(nil, errors.New("executor: pool is shut down"))
		cancel()
		return f
	}
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		defer cancel()

		if p.sem != nil {
			if err := p.sem.Acquire(ctx, 1); err != nil {
				f.complete(nil, err)
				return
			}
			defer p.sem.Release(1)
		}

		result, err := unit(ctx)
		f.complete(result, err)
	}()

	return f
}

// RunConcurrent runs each unit to completion concurrently, bounded by the
// pool's configured concurrency limit (unbounded if the pool has none),
// and returns the first error encountered. It cancels the shared context
// for the remaining units as soon as one fails, mirroring errgroup's
// standard fail-fast fan-out.
func (p *Pool) RunConcurrent(ctx context.Context, units []func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if p.maxConcurrent > 0 {
		g.SetLimit(int(p.maxConcurrent))
	}
	for _, u := range units {
		g.Go(func() error {
			return u(gctx)
		})
	}
	return g.Wait()
}

// Shutdown marks the pool closed to new submissions and waits for
// in-flight units to finish, or for ctx to expire, whichever comes first.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
