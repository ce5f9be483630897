package composite

import (
	"time"

	"github.com/taucore/workflow/config"
	"github.com/taucore/workflow/errs"
	"github.com/taucore/workflow/observability"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

// Reserved context keys set by a saga composite before compensation runs,
// per spec.md §6's reserved-keys list. Callers running a saga must not
// use these keys for unrelated purposes.
const (
	SagaFailureCauseKey = "SAGA_FAILURE_CAUSE"
	SagaFailedStepKey   = "SAGA_FAILED_STEP"
)

// SagaStep is one step of a saga: action runs in the forward phase,
// compensation (optional) runs in backward recovery if a later step
// fails. A step without a compensation is never compensated.
type SagaStep struct {
	Name         string
	Action       Workflow
	Compensation Workflow
}

func (s SagaStep) hasCompensation() bool { return s.Compensation != nil }

type sagaWorkflow struct {
	name  string
	steps []SagaStep
}

// Saga builds a saga composite: steps run forward in order; on the first
// failure, already-succeeded compensation-eligible steps are compensated
// in reverse order.
func Saga(steps ...SagaStep) Workflow {
	return NewSaga(config.DefaultSagaConfig(), steps...)
}

func NewSaga(cfg config.SagaConfig, steps ...SagaStep) Workflow {
	return &sagaWorkflow{
		name:  resolveName(cfg.Name, &nameCounters.saga, "saga"),
		steps: steps,
	}
}

func (w *sagaWorkflow) Name() string { return w.name }

func (w *sagaWorkflow) Execute(ctx *wfcontext.Context) result.WorkflowResult {
	return execute(w.name, ctx, func(ctx *wfcontext.Context) outcome {
		var compensationEligible []SagaStep

		for _, step := range w.steps {
			res := step.Action.Execute(ctx)
			if res.Status() == result.FAILED {
				return w.compensate(ctx, compensationEligible, step.Name, res.Err())
			}
			if step.hasCompensation() {
				compensationEligible = append(compensationEligible, step)
			}
		}

		return success()
	})
}

func (w *sagaWorkflow) compensate(ctx *wfcontext.Context, eligible []SagaStep, failedStep string, cause error) outcome {
	ctx.Put(SagaFailureCauseKey, cause)
	ctx.Put(SagaFailedStepKey, failedStep)

	var compensationFailures []errs.CompensationFailure
	for i := len(eligible) - 1; i >= 0; i-- {
		step := eligible[i]

		ctx.Observer().OnEvent(ctx, observability.Event{
			Type:      EventSagaCompensate,
			Level:     observability.LevelInfo,
			Timestamp: time.Now(),
			Source:    w.name,
			Data:      map[string]any{"step": step.Name},
		})

		res := step.Compensation.Execute(ctx)
		if res.Status() == result.FAILED {
			compensationFailures = append(compensationFailures, errs.CompensationFailure{
				Step: step.Name,
				Err:  res.Err(),
			})
		}
	}

	return failed(&errs.SagaCompensationError{
		FailedStep:  failedStep,
		Cause:       cause,
		Compensated: compensationFailures,
	})
}
