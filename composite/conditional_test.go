package composite_test

import (
	"errors"
	"testing"

	"github.com/taucore/workflow/composite"
	"github.com/taucore/workflow/errs"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

func TestConditional_TrueInvokesWhenTrueOnly(t *testing.T) {
	var invoked []string
	whenTrue := &recordingWorkflow{name: "true-branch", invoked: &invoked, status: result.SUCCESS}
	whenFalse := &recordingWorkflow{name: "false-branch", invoked: &invoked, status: result.SUCCESS}

	wf := composite.Conditional(func(ctx *wfcontext.Context) (bool, error) { return true, nil }, whenTrue, whenFalse)
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.SUCCESS {
		t.Fatalf("Status() = %v, want SUCCESS", res.Status())
	}
	if len(invoked) != 1 || invoked[0] != "true-branch" {
		t.Errorf("invoked = %v, want [true-branch]", invoked)
	}
}

func TestConditional_FalseInvokesWhenFalseOnly(t *testing.T) {
	var invoked []string
	whenTrue := &recordingWorkflow{name: "true-branch", invoked: &invoked, status: result.SUCCESS}
	whenFalse := &recordingWorkflow{name: "false-branch", invoked: &invoked, status: result.SUCCESS}

	wf := composite.Conditional(func(ctx *wfcontext.Context) (bool, error) { return false, nil }, whenTrue, whenFalse)
	wf.Execute(wfcontext.New(nil, nil))

	if len(invoked) != 1 || invoked[0] != "false-branch" {
		t.Errorf("invoked = %v, want [false-branch]", invoked)
	}
}

func TestConditional_Scenario6_NoElse(t *testing.T) {
	var invoked []string
	whenTrue := &recordingWorkflow{name: "true-branch", invoked: &invoked, status: result.SUCCESS}

	wf := composite.Conditional(func(ctx *wfcontext.Context) (bool, error) { return false, nil }, whenTrue, nil)
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.SUCCESS {
		t.Errorf("Status() = %v, want SUCCESS", res.Status())
	}
	if len(invoked) != 0 {
		t.Errorf("invoked = %v, want no branch invoked", invoked)
	}
}

func TestConditional_PredicateError(t *testing.T) {
	cause := errors.New("boom")
	wf := composite.Conditional(func(ctx *wfcontext.Context) (bool, error) { return false, cause }, nil, nil)
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.FAILED {
		t.Fatalf("Status() = %v, want FAILED", res.Status())
	}
	if errs.KindOf(res.Err()) != errs.KindPredicate {
		t.Errorf("Kind = %v, want KindPredicate", errs.KindOf(res.Err()))
	}
}

func TestConditional_RoundTrip_TrueEqualsBranch(t *testing.T) {
	var invoked []string
	a := &recordingWorkflow{name: "a", invoked: &invoked, status: result.SUCCESS}

	wf := composite.Conditional(func(ctx *wfcontext.Context) (bool, error) { return true, nil }, a, nil)
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.SUCCESS || len(invoked) != 1 || invoked[0] != "a" {
		t.Errorf("Conditional(true, a, _) should behave as a; invoked=%v status=%v", invoked, res.Status())
	}
}
