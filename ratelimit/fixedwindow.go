package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/taucore/workflow/sleeper"
)

// FixedWindow admits up to N permits per window of width W. Documented
// boundary effect: up to 2N acquires can succeed across a single window
// boundary (N near the end of one window, N at the start of the next).
type FixedWindow struct {
	limit  int
	width  time.Duration
	sleeper sleeper.Sleeper

	mu               sync.Mutex
	windowStartNanos int64
	usedInWindow     int
}

// NewFixedWindow constructs a fixed-window limiter admitting up to limit
// permits per window of the given width.
func NewFixedWindow(limit int, width time.Duration) *FixedWindow {
	return NewFixedWindowWithSleeper(limit, width, sleeper.Default)
}

// NewFixedWindowWithSleeper is NewFixedWindow with an injectable Sleeper.
func NewFixedWindowWithSleeper(limit int, width time.Duration, sl sleeper.Sleeper) *FixedWindow {
	return &FixedWindow{
		limit:            limit,
		width:            width,
		sleeper:          sl,
		windowStartNanos: time.Now().UnixNano(),
	}
}

func (f *FixedWindow) rolloverLocked(nowNanos int64) {
	if nowNanos >= f.windowStartNanos+f.width.Nanoseconds() {
		f.windowStartNanos = nowNanos
		f.usedInWindow = 0
	}
}

func (f *FixedWindow) TryAcquire() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rolloverLocked(time.Now().UnixNano())
	if f.usedInWindow < f.limit {
		f.usedInWindow++
		return true
	}
	return false
}

func (f *FixedWindow) waitForNextWindow() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now().UnixNano()
	f.rolloverLocked(now)
	if f.usedInWindow < f.limit {
		return 0
	}
	return time.Duration(f.windowStartNanos + f.width.Nanoseconds() - now)
}

func (f *FixedWindow) Acquire(ctx context.Context) error {
	return acquireLoop(ctx, f.sleeper, f.TryAcquire, f.waitForNextWindow)
}

func (f *FixedWindow) TryAcquireTimeout(ctx context.Context, timeout time.Duration) bool {
	return tryAcquireTimeoutLoop(ctx, f.sleeper, timeout, f.TryAcquire, f.waitForNextWindow)
}

func (f *FixedWindow) AvailablePermits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rolloverLocked(time.Now().UnixNano())
	return f.limit - f.usedInWindow
}

func (f *FixedWindow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.windowStartNanos = time.Now().UnixNano()
	f.usedInWindow = 0
}

func (f *FixedWindow) Metrics() Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rolloverLocked(time.Now().UnixNano())
	return Metrics{
		Used:      f.usedInWindow,
		Available: f.limit - f.usedInWindow,
		Capacity:  f.limit,
	}
}
