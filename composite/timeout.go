package composite

import (
	"context"
	"time"

	"github.com/taucore/workflow/config"
	"github.com/taucore/workflow/errs"
	"github.com/taucore/workflow/executor"
	"github.com/taucore/workflow/observability"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

type timeoutWorkflow struct {
	name    string
	inner   Workflow
	timeout time.Duration
	exec    executor.Executor
}

// Timeout bounds inner's execution by a wall-clock duration. On expiry it
// attempts to cancel the in-flight unit and fails with a timeout error; if
// inner completes after cancellation, its context mutations remain
// observable (the engine never rolls them back).
func Timeout(inner Workflow, timeoutMillis int64) Workflow {
	return NewTimeout(config.TimeoutConfig{TimeoutMillis: timeoutMillis}, nil, inner)
}

func NewTimeout(cfg config.TimeoutConfig, exec executor.Executor, inner Workflow) Workflow {
	return &timeoutWorkflow{
		name:    resolveName(cfg.Name, &nameCounters.timeout, "timeout"),
		inner:   inner,
		timeout: time.Duration(cfg.TimeoutMillis) * time.Millisecond,
		exec:    exec,
	}
}

func (w *timeoutWorkflow) Name() string { return w.name }

func (w *timeoutWorkflow) Execute(ctx *wfcontext.Context) result.WorkflowResult {
	return execute(w.name, ctx, func(ctx *wfcontext.Context) outcome {
		exec := w.exec
		ownsExecutor := exec == nil
		if ownsExecutor {
			pool := executor.NewPool()
			exec = pool
			// Shut down without waiting: an expired inner unit may still be
			// running and must not delay the timeout result.
			defer func() { go pool.Shutdown(context.Background()) }()
		}

		future := exec.Submit(func(goCtx context.Context) (any, error) {
			return w.inner.Execute(ctx.WithGoContext(goCtx)), nil
		})

		getCtx, cancel := context.WithTimeout(context.Background(), w.timeout)
		defer cancel()

		v, getErr := future.Get(getCtx)
		if getErr != nil {
			future.Cancel()

			ctx.Observer().OnEvent(ctx, observability.Event{
				Type:      EventTimeoutExpire,
				Level:     observability.LevelWarning,
				Timestamp: time.Now(),
				Source:    w.name,
				Data:      map[string]any{"timeout_ms": w.timeout.Milliseconds()},
			})

			return failed(&errs.TimeoutError{Name: w.name})
		}

		res, _ := v.(result.WorkflowResult)
		if res.Status() == result.FAILED {
			return failed(res.Err())
		}
		return success()
	})
}
