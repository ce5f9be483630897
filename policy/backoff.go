// Package policy provides retry policies, backoff strategies, and timeout
// policies used to decorate tasks and composites.
package policy

import (
	"math"
	"math/rand/v2"
	"time"
)

// BackoffStrategy computes the delay before a given retry attempt.
// attemptIndex is 1-based and refers to the attempt that just failed.
type BackoffStrategy interface {
	Compute(attemptIndex int) time.Duration
}

// ConstantBackoff always returns the same delay.
type ConstantBackoff struct {
	Delay time.Duration
}

func (b ConstantBackoff) Compute(attemptIndex int) time.Duration {
	return b.Delay
}

// LinearBackoff returns base * attemptIndex.
type LinearBackoff struct {
	Base time.Duration
}

func (b LinearBackoff) Compute(attemptIndex int) time.Duration {
	return b.Base * time.Duration(attemptIndex)
}

// ExponentialBackoff returns base * 2^(attemptIndex-1), capped at Cap (if
// Cap > 0).
type ExponentialBackoff struct {
	Base time.Duration
	Cap  time.Duration
}

func (b ExponentialBackoff) Compute(attemptIndex int) time.Duration {
	multiplier := math.Pow(2, float64(attemptIndex-1))
	d := time.Duration(float64(b.Base) * multiplier)
	if b.Cap > 0 && d > b.Cap {
		d = b.Cap
	}
	return d
}

// ExponentialWithJitterBackoff returns base * 2^(attemptIndex-1), capped at
// Cap, then scaled by a uniformly random multiplicative factor in
// [1-JitterFraction, 1+JitterFraction].
type ExponentialWithJitterBackoff struct {
	Base          time.Duration
	Cap           time.Duration
	JitterFraction float64
}

func (b ExponentialWithJitterBackoff) Compute(attemptIndex int) time.Duration {
	base := ExponentialBackoff{Base: b.Base, Cap: b.Cap}.Compute(attemptIndex)
	if b.JitterFraction <= 0 {
		return base
	}
	// uniform in [1-j, 1+j]
	factor := 1 - b.JitterFraction + rand.Float64()*2*b.JitterFraction
	return time.Duration(float64(base) * factor)
}
