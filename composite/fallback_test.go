package composite_test

import (
	"errors"
	"testing"

	"github.com/taucore/workflow/composite"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

func TestFallback_PrimarySucceeds_RoundTrip(t *testing.T) {
	var invoked []string
	primary := &recordingWorkflow{name: "primary", invoked: &invoked, status: result.SUCCESS}
	fallback := &recordingWorkflow{name: "fallback", invoked: &invoked, status: result.SUCCESS}

	wf := composite.Fallback(primary, fallback)
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.SUCCESS {
		t.Fatalf("Status() = %v, want SUCCESS", res.Status())
	}
	if len(invoked) != 1 || invoked[0] != "primary" {
		t.Errorf("Fallback(w succeeding, _) should behave as w; invoked=%v", invoked)
	}
}

func TestFallback_PrimaryFails_InvokesFallback(t *testing.T) {
	var invoked []string
	primary := &recordingWorkflow{name: "primary", invoked: &invoked, status: result.FAILED, err: errors.New("down")}
	fallback := &recordingWorkflow{name: "fallback", invoked: &invoked, status: result.SUCCESS}

	wf := composite.Fallback(primary, fallback)
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.SUCCESS {
		t.Fatalf("Status() = %v, want SUCCESS", res.Status())
	}
	if len(invoked) != 2 || invoked[0] != "primary" || invoked[1] != "fallback" {
		t.Errorf("invoked = %v, want [primary fallback]", invoked)
	}
}

func TestFallback_BothFail_ReturnsFallbackError(t *testing.T) {
	var invoked []string
	primaryErr := errors.New("primary down")
	fallbackErr := errors.New("fallback down")
	primary := &recordingWorkflow{name: "primary", invoked: &invoked, status: result.FAILED, err: primaryErr}
	fallback := &recordingWorkflow{name: "fallback", invoked: &invoked, status: result.FAILED, err: fallbackErr}

	wf := composite.Fallback(primary, fallback)
	res := wf.Execute(wfcontext.New(nil, nil))

	if res.Status() != result.FAILED {
		t.Fatalf("Status() = %v, want FAILED", res.Status())
	}
	if !errors.Is(res.Err(), fallbackErr) {
		t.Errorf("Err() = %v, want fallback's error unmodified", res.Err())
	}
}

func TestFallback_SeesPrimaryMutations(t *testing.T) {
	ctx := wfcontext.New(nil, nil)
	primary := composite.TaskWorkflow(taskFunc(func(ctx *wfcontext.Context) error {
		ctx.Put("partial", "state")
		return errors.New("partial failure")
	}))
	fallback := composite.TaskWorkflow(taskFunc(func(ctx *wfcontext.Context) error {
		if !ctx.ContainsKey("partial") {
			t.Error("fallback should see mutations primary made before failing")
		}
		return nil
	}))

	composite.Fallback(primary, fallback).Execute(ctx)
}
