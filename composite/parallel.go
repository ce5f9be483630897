package composite

import (
	"context"
	"time"

	"github.com/taucore/workflow/config"
	"github.com/taucore/workflow/executor"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

// ParallelFailure aggregates the failures observed from a parallel
// composite's children: Cause is the first failure in submission order,
// Others holds any further failures observed before the composite
// returned.
type ParallelFailure struct {
	Cause  error
	Others []error
}

func (e *ParallelFailure) Error() string {
	return e.Cause.Error()
}

// Unwrap exposes the cause and every other observed failure so errors.Is
// and errors.As can search across all of them.
func (e *ParallelFailure) Unwrap() []error {
	all := make([]error, 0, len(e.Others)+1)
	all = append(all, e.Cause)
	all = append(all, e.Others...)
	return all
}

type parallelWorkflow struct {
	name         string
	children     []Workflow
	failFast     bool
	shareContext bool
	exec         executor.Executor
}

// Parallel builds a parallel composite using the spec defaults: failFast
// disabled, context shared across children, and a fresh unbounded pool
// owned and shut down by each Execute call.
func Parallel(children ...Workflow) Workflow {
	return NewParallel(config.DefaultParallelConfig(), nil, children...)
}

// NewParallel builds a parallel composite. A nil exec means the composite
// creates and tears down its own executor.Pool per Execute call; a
// non-nil exec is shared and never shut down by the composite (the host
// owns its lifecycle).
func NewParallel(cfg config.ParallelConfig, exec executor.Executor, children ...Workflow) Workflow {
	return &parallelWorkflow{
		name:         resolveName(cfg.Name, &nameCounters.parallel, "parallel"),
		children:     children,
		failFast:     cfg.FailFast(),
		shareContext: cfg.ShareContext(),
		exec:         exec,
	}
}

func (w *parallelWorkflow) Name() string { return w.name }

func (w *parallelWorkflow) Execute(ctx *wfcontext.Context) result.WorkflowResult {
	return execute(w.name, ctx, func(ctx *wfcontext.Context) outcome {
		if len(w.children) == 0 {
			return success()
		}

		exec := w.exec
		ownsExecutor := exec == nil
		if ownsExecutor {
			pool := executor.NewPool()
			exec = pool
			// Shut down without waiting: fail-fast must not block on
			// cancelled children that ignore cancellation.
			defer func() { go pool.Shutdown(context.Background()) }()
		}

		futures := make([]executor.Future, len(w.children))
		for i, child := range w.children {
			effectiveCtx := ctx
			if !w.shareContext {
				effectiveCtx = ctx.Copy()
			}
			child := child
			futures[i] = exec.Submit(func(goCtx context.Context) (any, error) {
				return child.Execute(effectiveCtx.WithGoContext(goCtx)), nil
			})
		}

		return w.await(futures)
	})
}

type parallelCompletion struct {
	index int
	res   result.WorkflowResult
}

func (w *parallelWorkflow) await(futures []executor.Future) outcome {
	ch := make(chan parallelCompletion, len(futures))
	for i, f := range futures {
		i, f := i, f
		go func() {
			v, getErr := f.Get(context.Background())
			if getErr != nil {
				ch <- parallelCompletion{index: i, res: result.Failed(time.Now(), time.Now(), getErr)}
				return
			}
			res, _ := v.(result.WorkflowResult)
			ch <- parallelCompletion{index: i, res: res}
		}()
	}

	results := make([]result.WorkflowResult, len(futures))
	for seen := 0; seen < len(futures); seen++ {
		c := <-ch
		results[c.index] = c.res

		if w.failFast && c.res.Status() == result.FAILED {
			for _, f := range futures {
				f.Cancel()
			}
			return aggregateFailures(results)
		}
	}
	return aggregateFailures(results)
}

func aggregateFailures(results []result.WorkflowResult) outcome {
	var cause error
	var others []error

	for _, r := range results {
		if r.Status() != result.FAILED {
			continue
		}
		if cause == nil {
			cause = r.Err()
		} else {
			others = append(others, r.Err())
		}
	}

	if cause == nil {
		return success()
	}
	return failed(&ParallelFailure{Cause: cause, Others: others})
}
