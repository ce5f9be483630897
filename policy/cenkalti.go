package policy

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// FromBackoffLib adapts a github.com/cenkalti/backoff/v4 BackOff as a
// BackoffStrategy, so hosts already depending on that library's tuned
// exponential-backoff implementation can reuse it here instead of
// re-deriving equivalent constants.
//
// attemptIndex is ignored: the underlying BackOff is inherently stateful
// and advances on every NextBackOff call, so Compute must be called
// exactly once per attempt, in order, for the sequence to match the
// library's intended behavior.
type FromBackoffLib struct {
	backoff backoff.BackOff
}

// NewFromBackoffLib wraps b as a BackoffStrategy.
func NewFromBackoffLib(b backoff.BackOff) *FromBackoffLib {
	return &FromBackoffLib{backoff: b}
}

// NewExponentialBackoffLib builds a FromBackoffLib backed by the library's
// default ExponentialBackOff tuning.
func NewExponentialBackoffLib() *FromBackoffLib {
	return NewFromBackoffLib(backoff.NewExponentialBackOff())
}

func (f *FromBackoffLib) Compute(attemptIndex int) time.Duration {
	d := f.backoff.NextBackOff()
	if d == backoff.Stop {
		return 0
	}
	return d
}

// Reset resets the underlying BackOff's internal state, for reuse across
// independent retry sequences.
func (f *FromBackoffLib) Reset() {
	f.backoff.Reset()
}
