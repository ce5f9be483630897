package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/taucore/workflow/sleeper"
)

// TokenBucket admits up to Capacity tokens up front, refilling at
// RefillTokens per RefillPeriod. Initial state allows a cold burst up to
// Capacity.
type TokenBucket struct {
	capacity     float64
	refillTokens float64
	refillPeriod time.Duration
	sleeper      sleeper.Sleeper

	mu              sync.Mutex
	tokens          float64
	lastRefillNanos int64
}

// NewTokenBucket constructs a token-bucket limiter. capacity is the
// maximum burst size; refillTokens are added every refillPeriod.
func NewTokenBucket(capacity float64, refillTokens float64, refillPeriod time.Duration) *TokenBucket {
	return NewTokenBucketWithSleeper(capacity, refillTokens, refillPeriod, sleeper.Default)
}

// NewTokenBucketWithSleeper is NewTokenBucket with an injectable Sleeper,
// for deterministic tests.
func NewTokenBucketWithSleeper(capacity, refillTokens float64, refillPeriod time.Duration, sl sleeper.Sleeper) *TokenBucket {
	return &TokenBucket{
		capacity:        capacity,
		refillTokens:    refillTokens,
		refillPeriod:    refillPeriod,
		sleeper:         sl,
		tokens:          capacity,
		lastRefillNanos: time.Now().UnixNano(),
	}
}

func (t *TokenBucket) refillLocked(nowNanos int64) {
	elapsed := nowNanos - t.lastRefillNanos
	if elapsed <= 0 {
		return
	}
	t.lastRefillNanos = nowNanos
	rate := t.refillTokens / float64(t.refillPeriod.Nanoseconds())
	if refilled := t.tokens + float64(elapsed)*rate; refilled < t.capacity {
		t.tokens = refilled
	} else {
		t.tokens = t.capacity
	}
}

func (t *TokenBucket) TryAcquire() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refillLocked(time.Now().UnixNano())
	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) waitForOneToken() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refillLocked(time.Now().UnixNano())
	if t.tokens >= 1 {
		return 0
	}
	deficit := 1 - t.tokens
	secondsPerToken := t.refillPeriod.Seconds() / t.refillTokens
	return time.Duration(deficit * secondsPerToken * float64(time.Second))
}

func (t *TokenBucket) Acquire(ctx context.Context) error {
	return acquireLoop(ctx, t.sleeper, t.TryAcquire, t.waitForOneToken)
}

func (t *TokenBucket) TryAcquireTimeout(ctx context.Context, timeout time.Duration) bool {
	return tryAcquireTimeoutLoop(ctx, t.sleeper, timeout, t.TryAcquire, t.waitForOneToken)
}

func (t *TokenBucket) AvailablePermits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refillLocked(time.Now().UnixNano())
	return int(t.tokens)
}

func (t *TokenBucket) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tokens = t.capacity
	t.lastRefillNanos = time.Now().UnixNano()
}

func (t *TokenBucket) Metrics() Metrics {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refillLocked(time.Now().UnixNano())
	available := int(t.tokens)
	return Metrics{
		Used:      int(t.capacity) - available,
		Available: available,
		Capacity:  int(t.capacity),
	}
}
