package task

import (
	"context"
	"errors"

	"github.com/taucore/workflow/errs"
	"github.com/taucore/workflow/executor"
	"github.com/taucore/workflow/policy"
	"github.com/taucore/workflow/sleeper"
	"github.com/taucore/workflow/wfcontext"
)

// Run executes descriptor against ctx, applying its retry and timeout
// policies in the order spec'd for the task adapter: a timeout bounds
// each individual attempt, and retries only consider raw task failures —
// never engine-produced timeout errors. Attempts are 1-based.
func Run(ctx *wfcontext.Context, name string, d Descriptor, sl sleeper.Sleeper, exec executor.Executor) error {
	retry := d.Retry
	if retry == nil {
		retry = policy.NoRetryPolicy()
	}
	if sl == nil {
		sl = sleeper.Default
	}

	attempt := 0
	for {
		attempt++
		err := attemptOnce(ctx, name, d.Task, d.Timeout, exec)
		if err == nil {
			return nil
		}

		if errs.KindOf(err) != errs.KindTask {
			// Engine-produced failure (timeout, interruption): retry
			// policies never see these.
			return err
		}

		if !retry.ShouldRetry(attempt, err) {
			return err
		}

		if backoff := retry.BackoffFor(attempt); backoff > 0 {
			if sleepErr := sl.Sleep(ctx, backoff); sleepErr != nil {
				return &errs.InterruptedError{Cause: sleepErr}
			}
		}
	}
}

func attemptOnce(ctx *wfcontext.Context, name string, t Task, timeout *policy.TimeoutPolicy, exec executor.Executor) error {
	if timeout == nil {
		if err := t.Execute(ctx); err != nil {
			return &errs.TaskError{Name: name, Err: err}
		}
		return nil
	}

	e := exec
	ownsExecutor := e == nil
	if ownsExecutor {
		pool := executor.NewPool()
		e = pool
		// Shut down without waiting, so a timed-out task that ignores
		// cancellation does not hold the attempt past its timeout.
		defer func() { go pool.Shutdown(context.Background()) }()
	}

	future := e.Submit(func(goCtx context.Context) (any, error) {
		return nil, t.Execute(ctx.WithGoContext(goCtx))
	})

	getCtx, cancel := context.WithTimeout(context.Background(), timeout.Duration)
	defer cancel()

	_, getErr := future.Get(getCtx)
	if errors.Is(getErr, context.DeadlineExceeded) || errors.Is(getErr, context.Canceled) {
		future.Cancel()
		return &errs.TimeoutError{Name: name}
	}
	if getErr != nil {
		return &errs.TaskError{Name: name, Err: getErr}
	}
	return nil
}
