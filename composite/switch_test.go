package composite_test

import (
	"testing"

	"github.com/taucore/workflow/composite"
	"github.com/taucore/workflow/errs"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

func TestSwitch_InvokesMatchedBranch(t *testing.T) {
	var invoked []string
	x := &recordingWorkflow{name: "x", invoked: &invoked, status: result.SUCCESS}
	y := &recordingWorkflow{name: "y", invoked: &invoked, status: result.SUCCESS}

	wf := composite.Switch(
		func(ctx *wfcontext.Context) (string, error) { return "x", nil },
		map[string]composite.Workflow{"x": x, "y": y},
		nil,
	)
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.SUCCESS {
		t.Fatalf("Status() = %v, want SUCCESS", res.Status())
	}
	if len(invoked) != 1 || invoked[0] != "x" {
		t.Errorf("invoked = %v, want [x]", invoked)
	}
}

func TestSwitch_RoundTrip_SingleBranch(t *testing.T) {
	var invoked []string
	a := &recordingWorkflow{name: "a", invoked: &invoked, status: result.SUCCESS}

	wf := composite.Switch(
		func(ctx *wfcontext.Context) (string, error) { return "x", nil },
		map[string]composite.Workflow{"x": a},
		nil,
	)
	wf.Execute(wfcontext.New(nil, nil))

	if len(invoked) != 1 || invoked[0] != "a" {
		t.Errorf("Switch(const x, {x: a}, _) should behave as a; invoked=%v", invoked)
	}
}

func TestSwitch_KeysAreCaseInsensitive(t *testing.T) {
	var invoked []string
	a := &recordingWorkflow{name: "a", invoked: &invoked, status: result.SUCCESS}

	wf := composite.Switch(
		func(ctx *wfcontext.Context) (string, error) { return "UPPER", nil },
		map[string]composite.Workflow{"upper": a},
		nil,
	)
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.SUCCESS || len(invoked) != 1 {
		t.Errorf("case-insensitive lookup failed: status=%v invoked=%v", res.Status(), invoked)
	}
}

func TestSwitch_UnmatchedWithDefault(t *testing.T) {
	var invoked []string
	def := &recordingWorkflow{name: "default", invoked: &invoked, status: result.SUCCESS}

	wf := composite.Switch(
		func(ctx *wfcontext.Context) (string, error) { return "z", nil },
		map[string]composite.Workflow{"x": &recordingWorkflow{name: "x", invoked: &invoked, status: result.SUCCESS}},
		def,
	)
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.SUCCESS {
		t.Fatalf("Status() = %v, want SUCCESS", res.Status())
	}
	if len(invoked) != 1 || invoked[0] != "default" {
		t.Errorf("invoked = %v, want [default]", invoked)
	}
}

func TestSwitch_UnmatchedWithoutDefault_NoMatchingBranchError(t *testing.T) {
	wf := composite.Switch(
		func(ctx *wfcontext.Context) (string, error) { return "z", nil },
		map[string]composite.Workflow{},
		nil,
	)
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.FAILED {
		t.Fatalf("Status() = %v, want FAILED", res.Status())
	}
	if errs.KindOf(res.Err()) != errs.KindNoMatchingBranch {
		t.Errorf("Kind = %v, want KindNoMatchingBranch", errs.KindOf(res.Err()))
	}
}

func TestSwitch_SelectorError(t *testing.T) {
	wf := composite.Switch(
		func(ctx *wfcontext.Context) (string, error) { return "", assertErr },
		map[string]composite.Workflow{},
		nil,
	)
	res := wf.Execute(wfcontext.New(nil, nil))

	if errs.KindOf(res.Err()) != errs.KindSelector {
		t.Errorf("Kind = %v, want KindSelector", errs.KindOf(res.Err()))
	}
}
