// Package ratelimit provides four interchangeable admission-control
// algorithms sharing one acquire/try-acquire contract: fixed-window,
// sliding-window, token-bucket, and leaky-bucket.
package ratelimit

import (
	"context"
	"time"

	"github.com/taucore/workflow/sleeper"
)

// Limiter is the shared rate-limiting contract. All implementations are
// internally thread-safe. They read time as time.Now().UnixNano(), which
// is wall-clock time, not a monotonic reading: a jump of the system clock
// shifts their windows, refill and leak accordingly.
type Limiter interface {
	// Acquire blocks until one permit is available. Returns an error if
	// ctx is cancelled while waiting.
	Acquire(ctx context.Context) error

	// TryAcquire returns immediately: true if a permit was taken.
	TryAcquire() bool

	// TryAcquireTimeout blocks at most timeout, returning whether a
	// permit was taken.
	TryAcquireTimeout(ctx context.Context, timeout time.Duration) bool

	// AvailablePermits is a best-effort advisory snapshot, not
	// synchronised with future acquires.
	AvailablePermits() int

	// Reset returns the limiter to its initial state.
	Reset()

	// Metrics returns a point-in-time usage snapshot for dashboards.
	Metrics() Metrics
}

// Metrics is a host-facing usage snapshot, mirroring the shape of
// bulkhead-style concurrency metrics elsewhere in the ecosystem.
type Metrics struct {
	Used      int
	Available int
	Capacity  int
}

// acquireLoop is the shared acquire() implementation for limiters whose
// TryAcquire is cheap to poll: try, and if it misses, sleep for the
// duration the caller computes from its own internal state, then retry.
// nextWait must return the duration to wait before the next attempt.
func acquireLoop(ctx context.Context, sl sleeper.Sleeper, tryAcquire func() bool, nextWait func() time.Duration) error {
	for {
		if tryAcquire() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		wait := nextWait()
		if wait <= 0 {
			continue
		}
		if err := sl.Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// tryAcquireTimeoutLoop is the shared tryAcquire(timeout) implementation:
// poll tryAcquire, sleeping for the limiter's computed wait (capped at the
// time left) between polls, until the deadline.
func tryAcquireTimeoutLoop(ctx context.Context, sl sleeper.Sleeper, timeout time.Duration, tryAcquire func() bool, nextWait func() time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if tryAcquire() {
			return true
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		wait := nextWait()
		if wait > remaining {
			wait = remaining
		}
		if wait <= 0 {
			return false
		}
		if err := sl.Sleep(ctx, wait); err != nil {
			return false
		}
	}
}
