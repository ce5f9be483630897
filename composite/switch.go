package composite

import (
	"strings"
	"time"

	"github.com/taucore/workflow/config"
	"github.com/taucore/workflow/errs"
	"github.com/taucore/workflow/observability"
	"github.com/taucore/workflow/result"
	"github.com/taucore/workflow/wfcontext"
)

// Selector computes the branch key for a switch composite.
type Selector func(ctx *wfcontext.Context) (string, error)

type switchWorkflow struct {
	name     string
	selector Selector
	branches map[string]Workflow
	def      Workflow
}

// Switch builds a multi-way branching composite. Branch keys are
// normalised to lower-case on both insert and lookup, so lookups are
// case-insensitive.
func Switch(selector Selector, branches map[string]Workflow, def Workflow) Workflow {
	return NewSwitch(config.DefaultSwitchConfig(), selector, branches, def)
}

func NewSwitch(cfg config.SwitchConfig, selector Selector, branches map[string]Workflow, def Workflow) Workflow {
	normalised := make(map[string]Workflow, len(branches))
	for key, wf := range branches {
		normalised[strings.ToLower(key)] = wf
	}
	return &switchWorkflow{
		name:     resolveName(cfg.Name, &nameCounters.switchTag, "switch"),
		selector: selector,
		branches: normalised,
		def:      def,
	}
}

func (w *switchWorkflow) Name() string { return w.name }

func (w *switchWorkflow) Execute(ctx *wfcontext.Context) result.WorkflowResult {
	return execute(w.name, ctx, func(ctx *wfcontext.Context) outcome {
		key, err := w.selector(ctx)
		if err != nil {
			return failed(&errs.SelectorError{Err: err})
		}
		normalisedKey := strings.ToLower(key)

		branch, found := w.branches[normalisedKey]
		if !found {
			if w.def == nil {
				return failed(&errs.NoMatchingBranchError{Key: key})
			}
			branch = w.def
		}

		ctx.Observer().OnEvent(ctx, observability.Event{
			Type:      EventSwitchSelect,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    w.name,
			Data:      map[string]any{"key": key, "matched": found},
		})

		res := branch.Execute(ctx)
		if res.Status() == result.FAILED {
			return failed(res.Err())
		}
		return success()
	})
}
