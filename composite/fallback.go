package composite

import (
	"github.com/taucore/workflow/config"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

type fallbackWorkflow struct {
	name     string
	primary  Workflow
	fallback Workflow
}

// Fallback invokes primary; if it succeeds, its result is returned
// unchanged. If it fails, fallback runs against the same context
// (including whatever primary mutated before failing) and its result is
// returned unmodified. Chains are built by nesting Fallback composites.
func Fallback(primary, fallback Workflow) Workflow {
	return NewFallback(config.DefaultFallbackConfig(), primary, fallback)
}

func NewFallback(cfg config.FallbackConfig, primary, fallback Workflow) Workflow {
	return &fallbackWorkflow{
		name:     resolveName(cfg.Name, &nameCounters.fallback, "fallback"),
		primary:  primary,
		fallback: fallback,
	}
}

func (w *fallbackWorkflow) Name() string { return w.name }

func (w *fallbackWorkflow) Execute(ctx *wfcontext.Context) result.WorkflowResult {
	return execute(w.name, ctx, func(ctx *wfcontext.Context) outcome {
		primaryRes := w.primary.Execute(ctx)
		if primaryRes.Status() != result.FAILED {
			if primaryRes.Status() == result.SKIPPED {
				return skipped()
			}
			return success()
		}

		fallbackRes := w.fallback.Execute(ctx)
		if fallbackRes.Status() == result.FAILED {
			return failed(fallbackRes.Err())
		}
		if fallbackRes.Status() == result.SKIPPED {
			return skipped()
		}
		return success()
	})
}
