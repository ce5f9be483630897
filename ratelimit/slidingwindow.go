package ratelimit

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/taucore/workflow/sleeper"
)

// SlidingWindow admits up to N permits in any trailing window of width W,
// tracked via a monotonic deque of acquire timestamps. Memory is O(N).
type SlidingWindow struct {
	limit   int
	width   time.Duration
	sleeper sleeper.Sleeper

	mu        sync.Mutex
	timestamps *list.List // nanoseconds, oldest at Front
}

// NewSlidingWindow constructs a sliding-window limiter admitting up to
// limit permits in any trailing window of the given width.
func NewSlidingWindow(limit int, width time.Duration) *SlidingWindow {
	return NewSlidingWindowWithSleeper(limit, width, sleeper.Default)
}

// NewSlidingWindowWithSleeper is NewSlidingWindow with an injectable Sleeper.
func NewSlidingWindowWithSleeper(limit int, width time.Duration, sl sleeper.Sleeper) *SlidingWindow {
	return &SlidingWindow{
		limit:      limit,
		width:      width,
		sleeper:    sl,
		timestamps: list.New(),
	}
}

func (s *SlidingWindow) evictLocked(nowNanos int64) {
	cutoff := nowNanos - s.width.Nanoseconds()
	for s.timestamps.Len() > 0 {
		front := s.timestamps.Front()
		if front.Value.(int64) > cutoff {
			break
		}
		s.timestamps.Remove(front)
	}
}

func (s *SlidingWindow) TryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UnixNano()
	s.evictLocked(now)
	if s.timestamps.Len() < s.limit {
		s.timestamps.PushBack(now)
		return true
	}
	return false
}

func (s *SlidingWindow) waitForSlot() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UnixNano()
	s.evictLocked(now)
	if s.timestamps.Len() < s.limit {
		return 0
	}
	oldest := s.timestamps.Front().Value.(int64)
	return time.Duration(oldest + s.width.Nanoseconds() - now)
}

func (s *SlidingWindow) Acquire(ctx context.Context) error {
	return acquireLoop(ctx, s.sleeper, s.TryAcquire, s.waitForSlot)
}

func (s *SlidingWindow) TryAcquireTimeout(ctx context.Context, timeout time.Duration) bool {
	return tryAcquireTimeoutLoop(ctx, s.sleeper, timeout, s.TryAcquire, s.waitForSlot)
}

func (s *SlidingWindow) AvailablePermits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked(time.Now().UnixNano())
	return s.limit - s.timestamps.Len()
}

func (s *SlidingWindow) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timestamps.Init()
}

func (s *SlidingWindow) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked(time.Now().UnixNano())
	return Metrics{
		Used:      s.timestamps.Len(),
		Available: s.limit - s.timestamps.Len(),
		Capacity:  s.limit,
	}
}
