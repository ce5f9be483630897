// Package result defines the outcome value every workflow execution returns.
package result

import (
	"time"

	"github.com/taucore/workflow/errs"
)

// Status is the terminal state of a workflow execution.
type Status int

const (
	// SUCCESS indicates the workflow completed without error.
	SUCCESS Status = iota
	// FAILED indicates the workflow completed with an error.
	FAILED
	// SKIPPED indicates the workflow explicitly did no work.
	SKIPPED
)

func (s Status) String() string {
	switch s {
	case SUCCESS:
		return "SUCCESS"
	case FAILED:
		return "FAILED"
	case SKIPPED:
		return "SKIPPED"
	default:
		return "UNKNOWN"
	}
}

// WorkflowResult is the immutable outcome of a single Workflow.Execute call.
// FAILED implies Err is non-nil; SUCCESS and SKIPPED imply Err is nil.
type WorkflowResult struct {
	status      Status
	startedAt   time.Time
	completedAt time.Time
	err         error
}

// Success builds a SUCCESS result spanning [startedAt, completedAt].
func Success(startedAt, completedAt time.Time) WorkflowResult {
	return WorkflowResult{status: SUCCESS, startedAt: startedAt, completedAt: completedAt}
}

// Skipped builds a SKIPPED result spanning [startedAt, completedAt].
func Skipped(startedAt, completedAt time.Time) WorkflowResult {
	return WorkflowResult{status: SKIPPED, startedAt: startedAt, completedAt: completedAt}
}

// Failed builds a FAILED result. Panics if err is nil — a FAILED result
// must always carry a cause.
func Failed(startedAt, completedAt time.Time, err error) WorkflowResult {
	if err == nil {
		panic("result: Failed requires a non-nil error")
	}
	return WorkflowResult{status: FAILED, startedAt: startedAt, completedAt: completedAt, err: err}
}

// Status returns the terminal status.
func (r WorkflowResult) Status() Status { return r.status }

// StartedAt returns the moment execution began.
func (r WorkflowResult) StartedAt() time.Time { return r.startedAt }

// CompletedAt returns the moment execution finished.
func (r WorkflowResult) CompletedAt() time.Time { return r.completedAt }

// Err returns the failure cause, or nil for SUCCESS/SKIPPED.
func (r WorkflowResult) Err() error { return r.err }

// Duration is CompletedAt - StartedAt.
func (r WorkflowResult) Duration() time.Duration {
	return r.completedAt.Sub(r.startedAt)
}

// Kind returns the error taxonomy kind of Err, or errs.KindNone if the
// result did not fail or the error does not carry a Kind.
func (r WorkflowResult) Kind() errs.Kind {
	if r.err == nil {
		return errs.KindNone
	}
	return errs.KindOf(r.err)
}
