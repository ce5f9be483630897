package composite

import (
	"github.com/taucore/workflow/config"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

type sequentialWorkflow struct {
	name     string
	children []Workflow
}

// Sequential builds an ordered composite: children run in order against
// the same context reference, and the first FAILED child aborts the
// remaining ones.
func Sequential(children ...Workflow) Workflow {
	return NewSequential(config.DefaultSequentialConfig(), children...)
}

func NewSequential(cfg config.SequentialConfig, children ...Workflow) Workflow {
	return &sequentialWorkflow{
		name:     resolveName(cfg.Name, &nameCounters.sequential, "sequential"),
		children: children,
	}
}

func (w *sequentialWorkflow) Name() string { return w.name }

func (w *sequentialWorkflow) Execute(ctx *wfcontext.Context) result.WorkflowResult {
	return execute(w.name, ctx, func(ctx *wfcontext.Context) outcome {
		for _, child := range w.children {
			res := child.Execute(ctx)
			if res.Status() == result.FAILED {
				return failed(res.Err())
			}
		}
		return success()
	})
}
