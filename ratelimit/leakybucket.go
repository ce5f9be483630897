package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/taucore/workflow/sleeper"
)

// LeakyBucket admits a request by adding one unit of "water"; water leaks
// out continuously at LeakRate per LeakPeriod. A request is admitted only
// if adding its unit keeps water at or below Capacity.
type LeakyBucket struct {
	capacity   float64
	leakRate   float64
	leakPeriod time.Duration
	sleeper    sleeper.Sleeper

	mu             sync.Mutex
	water          float64
	lastLeakNanos  int64
}

// NewLeakyBucket constructs a leaky-bucket limiter.
func NewLeakyBucket(capacity, leakRate float64, leakPeriod time.Duration) *LeakyBucket {
	return NewLeakyBucketWithSleeper(capacity, leakRate, leakPeriod, sleeper.Default)
}

// NewLeakyBucketWithSleeper is NewLeakyBucket with an injectable Sleeper.
func NewLeakyBucketWithSleeper(capacity, leakRate float64, leakPeriod time.Duration, sl sleeper.Sleeper) *LeakyBucket {
	return &LeakyBucket{
		capacity:      capacity,
		leakRate:      leakRate,
		leakPeriod:    leakPeriod,
		sleeper:       sl,
		lastLeakNanos: time.Now().UnixNano(),
	}
}

func (l *LeakyBucket) leakLocked(nowNanos int64) {
	elapsed := nowNanos - l.lastLeakNanos
	if elapsed <= 0 {
		return
	}
	l.lastLeakNanos = nowNanos
	rate := l.leakRate / float64(l.leakPeriod.Nanoseconds())
	leaked := float64(elapsed) * rate
	if l.water-leaked < 0 {
		l.water = 0
	} else {
		l.water -= leaked
	}
}

func (l *LeakyBucket) TryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.leakLocked(time.Now().UnixNano())
	if l.water+1 <= l.capacity {
		l.water++
		return true
	}
	return false
}

func (l *LeakyBucket) waitForSpace() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.leakLocked(time.Now().UnixNano())
	if l.water+1 <= l.capacity {
		return 0
	}
	excess := l.water - l.capacity + 1
	secondsPerUnit := l.leakPeriod.Seconds() / l.leakRate
	return time.Duration(excess * secondsPerUnit * float64(time.Second))
}

func (l *LeakyBucket) Acquire(ctx context.Context) error {
	return acquireLoop(ctx, l.sleeper, l.TryAcquire, l.waitForSpace)
}

func (l *LeakyBucket) TryAcquireTimeout(ctx context.Context, timeout time.Duration) bool {
	return tryAcquireTimeoutLoop(ctx, l.sleeper, timeout, l.TryAcquire, l.waitForSpace)
}

func (l *LeakyBucket) AvailablePermits() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.leakLocked(time.Now().UnixNano())
	return int(l.capacity - l.water)
}

func (l *LeakyBucket) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.water = 0
	l.lastLeakNanos = time.Now().UnixNano()
}

func (l *LeakyBucket) Metrics() Metrics {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.leakLocked(time.Now().UnixNano())
	return Metrics{
		Used:      int(l.water),
		Available: int(l.capacity - l.water),
		Capacity:  int(l.capacity),
	}
}
