package composite_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/taucore/workflow/composite"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

func TestParallel_Empty_Succeeds(t *testing.T) {
	wf := composite.Parallel()
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.SUCCESS {
		t.Errorf("Status() = %v, want SUCCESS", res.Status())
	}
}

func TestParallel_AllSucceed(t *testing.T) {
	var count atomic.Int32
	child := composite.TaskWorkflow(taskFunc(func(ctx *wfcontext.Context) error {
		count.Add(1)
		return nil
	}))

	wf := composite.Parallel(child, child, child)
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.SUCCESS {
		t.Fatalf("Status() = %v, want SUCCESS", res.Status())
	}
	if count.Load() != 3 {
		t.Errorf("count = %d, want 3", count.Load())
	}
}

func TestParallel_Scenario2_FailFastCancellation(t *testing.T) {
	slow := composite.TaskWorkflow(taskFunc(func(ctx *wfcontext.Context) error {
		time.Sleep(1000 * time.Millisecond)
		return nil
	}))
	fastFail := composite.TaskWorkflow(taskFunc(func(ctx *wfcontext.Context) error {
		time.Sleep(10 * time.Millisecond)
		return errors.New("fast failure")
	}))

	wf := composite.NewParallel(
		parallelFailFastConfig(),
		nil,
		slow, fastFail,
	)

	start := time.Now()
	res := wf.Execute(wfcontext.New(nil, nil))
	elapsed := time.Since(start)

	if res.Status() != result.FAILED {
		t.Fatalf("Status() = %v, want FAILED", res.Status())
	}
	if elapsed > 200*time.Millisecond {
		t.Errorf("elapsed = %v, want well under 1000ms (fail-fast should not wait on slow child)", elapsed)
	}
}

func TestParallel_NoFailFast_WaitsForAll(t *testing.T) {
	var count atomic.Int32
	errA := errors.New("A failed")
	a := composite.TaskWorkflow(taskFunc(func(ctx *wfcontext.Context) error {
		count.Add(1)
		return errA
	}))
	b := composite.TaskWorkflow(taskFunc(func(ctx *wfcontext.Context) error {
		count.Add(1)
		return nil
	}))

	wf := composite.Parallel(a, b)
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.FAILED {
		t.Fatalf("Status() = %v, want FAILED", res.Status())
	}
	if count.Load() != 2 {
		t.Errorf("count = %d, want 2 (both children should run without fail-fast)", count.Load())
	}
}

func TestParallel_IsolatedContext_DoesNotMergeMutations(t *testing.T) {
	ctx := wfcontext.New(nil, nil)
	child := composite.TaskWorkflow(taskFunc(func(ctx *wfcontext.Context) error {
		ctx.Put("leaked", true)
		return nil
	}))

	cfg := parallelIsolatedConfig()
	wf := composite.NewParallel(cfg, nil, child)
	wf.Execute(ctx)

	if ctx.ContainsKey("leaked") {
		t.Error("isolated-context children must not merge mutations back into the parent")
	}
}

func TestParallel_Scenario8_DurationAtLeastMax(t *testing.T) {
	a := composite.TaskWorkflow(taskFunc(func(ctx *wfcontext.Context) error {
		time.Sleep(30 * time.Millisecond)
		return nil
	}))
	b := composite.TaskWorkflow(taskFunc(func(ctx *wfcontext.Context) error {
		time.Sleep(60 * time.Millisecond)
		return nil
	}))

	wf := composite.Parallel(a, b)
	start := time.Now()
	wf.Execute(wfcontext.New(nil, nil))
	elapsed := time.Since(start)

	if elapsed < 60*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 60ms (max of children)", elapsed)
	}
	if elapsed >= 90*time.Millisecond {
		t.Errorf("elapsed = %v, want < sum of children (90ms) given parallelism", elapsed)
	}
}
