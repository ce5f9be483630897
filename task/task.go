package task

import (
	"github.com/taucore/workflow/policy"
	"github.com/taucore/workflow/wfcontext"
)

// Task is a single unit of work external to the engine. Tasks are
// externally supplied and treated as opaque; a failure is wrapped into a
// typed task-error by whatever adapts the task into a Workflow.
type Task interface {
	Execute(ctx *wfcontext.Context) error
}

// Func adapts a plain function to the Task interface.
type Func func(ctx *wfcontext.Context) error

func (f Func) Execute(ctx *wfcontext.Context) error { return f(ctx) }

// Descriptor is an immutable bundle decorating a task with optional
// retry and timeout policies for use by the task adapter workflow. A nil
// Retry means no retry; a nil Timeout means no wall-clock bound.
type Descriptor struct {
	Task    Task
	Retry   policy.RetryPolicy
	Timeout *policy.TimeoutPolicy
}
