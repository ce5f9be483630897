package composite

import (
	"reflect"

	"github.com/taucore/workflow/config"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

type forEachWorkflow struct {
	name     string
	inner    Workflow
	itemsKey string
	itemVar  string
	indexVar string
}

// ForEach reads the list stored at itemsKey and runs inner once per
// element, sequentially, fail-fast. Absent or empty lists return SUCCESS
// without invoking inner.
func ForEach(inner Workflow, itemsKey, itemVar string) Workflow {
	return NewForEach(config.ForEachConfig{ItemsKey: itemsKey, ItemVar: itemVar}, inner)
}

func NewForEach(cfg config.ForEachConfig, inner Workflow) Workflow {
	return &forEachWorkflow{
		name:     resolveName(cfg.Name, &nameCounters.forEach, "foreach"),
		inner:    inner,
		itemsKey: cfg.ItemsKey,
		itemVar:  cfg.ItemVar,
		indexVar: cfg.IndexVar,
	}
}

func (w *forEachWorkflow) Name() string { return w.name }

func (w *forEachWorkflow) Execute(ctx *wfcontext.Context) result.WorkflowResult {
	return execute(w.name, ctx, func(ctx *wfcontext.Context) outcome {
		raw, ok := ctx.Get(w.itemsKey)
		if !ok {
			return success()
		}

		items := reflect.ValueOf(raw)
		if items.Kind() != reflect.Slice {
			return success()
		}

		for i := 0; i < items.Len(); i++ {
			ctx.Put(w.itemVar, items.Index(i).Interface())
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
