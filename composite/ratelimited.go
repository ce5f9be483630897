package composite

import (
	"time"

	"github.com/taucore/workflow/config"
	"github.com/taucore/workflow/errs"
	"github.com/taucore/workflow/observability"
	"github.com/taucore/workflow/ratelimit"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

type rateLimitedWorkflow struct {
	name    string
	inner   Workflow
	limiter ratelimit.Limiter
}

// RateLimited gates inner's execution behind limiter.Acquire. A single
// limiter instance may be shared across many RateLimited wrappers to
// enforce a common admission budget.
func RateLimited(inner Workflow, limiter ratelimit.Limiter) Workflow {
	return NewRateLimited(config.DefaultRateLimitedConfig(), inner, limiter)
}

func NewRateLimited(cfg config.RateLimitedConfig, inner Workflow, limiter ratelimit.Limiter) Workflow {
	return &rateLimitedWorkflow{
		name:    resolveName(cfg.Name, &nameCounters.rateLimited, "rate-limited"),
		inner:   inner,
		limiter: limiter,
	}
}

func (w *rateLimitedWorkflow) Name() string { return w.name }

func (w *rateLimitedWorkflow) Execute(ctx *wfcontext.Context) result.WorkflowResult {
	return execute(w.name, ctx, func(ctx *wfcontext.Context) outcome {
		ctx.Observer().OnEvent(ctx, observability.Event{
			Type:      EventRateLimitWait,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    w.name,
		})

		if err := w.limiter.Acquire(ctx); err != nil {
			return failed(&errs.RateLimitInterruptedError{Cause: err})
		}

		res := w.inner.Execute(ctx)
		if res.Status() == result.FAILED {
			return failed(res.Err())
		}
		return success()
	})
}
