package policy_test

import (
	"testing"
	"time"

	"github.com/taucore/workflow/policy"
)

func TestConstantBackoff(t *testing.T) {
	b := policy.ConstantBackoff{Delay: 50 * time.Millisecond}
	for attempt := 1; attempt <= 3; attempt++ {
		if got := b.Compute(attempt); got != 50*time.Millisecond {
			t.Errorf("attempt %d: Compute = %v, want 50ms", attempt, got)
		}
	}
}

func TestLinearBackoff(t *testing.T) {
	b := policy.LinearBackoff{Base: 100 * time.Millisecond}
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 300 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := b.Compute(tt.attempt); got != tt.want {
			t.Errorf("attempt %d: Compute = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestExponentialBackoff(t *testing.T) {
	b := policy.ExponentialBackoff{Base: 100 * time.Millisecond}
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{4, 800 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := b.Compute(tt.attempt); got != tt.want {
			t.Errorf("attempt %d: Compute = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestExponentialBackoff_Cap(t *testing.T) {
	b := policy.ExponentialBackoff{Base: 100 * time.Millisecond, Cap: 300 * time.Millisecond}
	if got := b.Compute(4); got != 300*time.Millisecond {
		t.Errorf("Compute(4) = %v, want capped 300ms", got)
	}
}

func TestExponentialWithJitterBackoff_WithinBounds(t *testing.T) {
	b := policy.ExponentialWithJitterBackoff{Base: 100 * time.Millisecond, JitterFraction: 0.5}
	base := 100 * time.Millisecond // attempt 1: 2^0 * base = base
	lo := time.Duration(float64(base) * 0.5)
	hi := time.Duration(float64(base) * 1.5)

	for i := 0; i < 50; i++ {
		got := b.Compute(1)
		if got < lo || got > hi {
			t.Fatalf("Compute(1) = %v, want within [%v, %v]", got, lo, hi)
		}
	}
}

func TestExponentialWithJitterBackoff_NoJitterIsDeterministic(t *testing.T) {
	b := policy.ExponentialWithJitterBackoff{Base: 100 * time.Millisecond}
	if got := b.Compute(2); got != 200*time.Millisecond {
		t.Errorf("Compute(2) = %v, want 200ms", got)
	}
}
