package composite

import (
	"time"

	"github.com/taucore/workflow/config"
	"github.com/taucore/workflow/errs"
	"github.com/taucore/workflow/observability"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

// Predicate evaluates a context once to decide which branch a conditional
// composite takes.
type Predicate func(ctx *wfcontext.Context) (bool, error)

type conditionalWorkflow struct {
	name      string
	predicate Predicate
	whenTrue  Workflow
	whenFalse Workflow
}

// Conditional builds a two-branch composite. whenFalse may be nil: a
// false predicate with no else-branch returns SUCCESS.
func Conditional(predicate Predicate, whenTrue, whenFalse Workflow) Workflow {
	return NewConditional(config.DefaultConditionalConfig(), predicate, whenTrue, whenFalse)
}

func NewConditional(cfg config.ConditionalConfig, predicate Predicate, whenTrue, whenFalse Workflow) Workflow {
	return &conditionalWorkflow{
		name:      resolveName(cfg.Name, &nameCounters.conditional, "conditional"),
		predicate: predicate,
		whenTrue:  whenTrue,
		whenFalse: whenFalse,
	}
}

func (w *conditionalWorkflow) Name() string { return w.name }

func (w *conditionalWorkflow) Execute(ctx *wfcontext.Context) result.WorkflowResult {
	return execute(w.name, ctx, func(ctx *wfcontext.Context) outcome {
		ctx.Observer().OnEvent(ctx, observability.Event{
			Type:      EventConditionalEvaluate,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    w.name,
		})

		matched, err := w.predicate(ctx)
		if err != nil {
			return failed(&errs.PredicateError{Err: err})
		}

		if matched {
			res := w.whenTrue.Execute(ctx)
			if res.Status() == result.FAILED {
				return failed(res.Err())
			}
			return success()
		}

		if w.whenFalse == nil {
			return success()
		}

		res := w.whenFalse.Execute(ctx)
		if res.Status() == result.FAILED {
			return failed(res.Err())
		}
		return success()
	})
}
