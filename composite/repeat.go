package composite

import (
	"github.com/taucore/workflow/config"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

type repeatWorkflow struct {
	name     string
	inner    Workflow
	times    int
	indexVar string
}

// Repeat runs inner `times` iterations in sequence, fail-fast on any
// FAILED iteration. times=0 returns SUCCESS without invoking inner.
func Repeat(inner Workflow, times int) Workflow {
	return NewRepeat(config.RepeatConfig{Times: times}, inner)
}

func NewRepeat(cfg config.RepeatConfig, inner Workflow) Workflow {
	return &repeatWorkflow{
		name:     resolveName(cfg.Name, &nameCounters.repeat, "repeat"),
		inner:    inner,
		times:    cfg.Times,
		indexVar: cfg.IndexVar,
	}
}

func (w *repeatWorkflow) Name() string { return w.name }

func (w *repeatWorkflow) Execute(ctx *wfcontext.Context) result.WorkflowResult {
	return execute(w.name, ctx, func(ctx *wfcontext.Context) outcome {
		for i := 0; i < w.times; i++ {
			if w.indexVar != "" {
				ctx.Put(w.indexVar, i)
			}
			res := w.inner.Execute(ctx)
			if res.Status() == result.FAILED {
				return failed(res.Err())
			}
		}
		return success()
	})
}
