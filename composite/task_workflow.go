package composite

import (
	"github.com/taucore/workflow/config"
	"github.com/taucore/workflow/executor"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/sleeper"
	"github.com/taucore/workflow/task"
	"github.com/taucore/workflow/wfcontext"
)

type taskWorkflow struct {
	name       string
	descriptor task.Descriptor
	sleeper    sleeper.Sleeper
	exec       executor.Executor
}

// TaskWorkflow wraps a bare task as a Workflow with no retry or timeout.
func TaskWorkflow(t task.Task) Workflow {
	return NewTaskWorkflow(config.DefaultTaskWorkflowConfig(), task.Descriptor{Task: t}, nil, nil)
}

// TaskWorkflowFromDescriptor wraps a Descriptor (carrying optional retry
// and timeout policies) as a Workflow.
func TaskWorkflowFromDescriptor(d task.Descriptor) Workflow {
	return NewTaskWorkflow(config.DefaultTaskWorkflowConfig(), d, nil, nil)
}

// NewTaskWorkflow builds a task adapter workflow. sl and exec may be nil
// to use the package defaults (sleeper.Default and an owned executor.Pool
// created per attempt when the descriptor has a timeout policy).
func NewTaskWorkflow(cfg config.TaskWorkflowConfig, d task.Descriptor, sl sleeper.Sleeper, exec executor.Executor) Workflow {
	return &taskWorkflow{
		name:       resolveName(cfg.Name, &nameCounters.task, "task"),
		descriptor: d,
		sleeper:    sl,
		exec:       exec,
	}
}

func (w *taskWorkflow) Name() string { return w.name }

func (w *taskWorkflow) Execute(ctx *wfcontext.Context) result.WorkflowResult {
	return execute(w.name, ctx, func(ctx *wfcontext.Context) outcome {
		if err := task.Run(ctx, w.name, w.descriptor, w.sleeper, w.exec); err != nil {
			return failed(err)
		}
		return success()
	})
}
