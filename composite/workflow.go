package composite

import (
	"fmt"
	"time"

	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

// Workflow is a composable unit that runs to produce a Result; it may
// embed child workflows.
type Workflow interface {
	Execute(ctx *wfcontext.Context) result.WorkflowResult
	Name() string
}

// outcome is the internal, timestamp-free shape a composite body returns;
// execute() stamps it with startedAt/completedAt and turns it into a
// result.WorkflowResult.
type outcome struct {
	status result.Status
	err    error
}

func success() outcome { return outcome{status: result.SUCCESS} }
func skipped() outcome { return outcome{status: result.SKIPPED} }
func failed(err error) outcome {
	if err == nil {
		err = fmt.Errorf("composite: failed outcome with nil error")
	}
	return outcome{status: result.FAILED, err: err}
}

// execute runs body under the lifecycle protocol common to every workflow:
// capture startedAt, notify listeners of the start, run the body, wrap its
// outcome into a Result, notify success or failure, and never let a panic
// escape. Every composite's Execute method is a thin wrapper around this.
func execute(name string, ctx *wfcontext.Context, body func(ctx *wfcontext.Context) outcome) (res result.WorkflowResult) {
	startedAt := time.Now()
	ctx.Listeners().NotifyStart(name, ctx)

	defer func() {
		if r := recover(); r != nil {
			res = result.Failed(startedAt, time.Now(), fmt.Errorf("workflow %q panicked: %v", name, r))
		}
		if res.Status() == result.FAILED {
			ctx.Listeners().NotifyFailure(name, ctx, res.Err())
		} else {
			ctx.Listeners().NotifySuccess(name, ctx, res)
		}
	}()

	out := body(ctx)
	completedAt := time.Now()

	switch out.status {
	case result.FAILED:
		res = result.Failed(startedAt, completedAt, out.err)
	case result.SKIPPED:
		res = result.Skipped(startedAt, completedAt)
	default:
		res = result.Success(startedAt, completedAt)
	}
	return res
}
