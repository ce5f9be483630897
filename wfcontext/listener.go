package wfcontext

import (
	"sync"
	"time"

	"github.com/taucore/workflow/observability"
	"github.com/taucore/workflow/result"
)

// Listener observes workflow lifecycle events. Implementations must not
// panic-propagate out of the engine: a panic inside a listener call is
// recovered, logged, and does not affect delivery to other listeners or
// the workflow's own result.
type Listener interface {
	OnStart(name string, ctx *Context)
	OnSuccess(name string, ctx *Context, res result.WorkflowResult)
	OnFailure(name string, ctx *Context, err error)
}

// ListenerRegistry is a thread-safe set of Listeners, shared by reference
// across a Context and any Context produced from it via Copy.
type ListenerRegistry struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewListenerRegistry creates an empty registry.
func NewListenerRegistry() *ListenerRegistry {
	return &ListenerRegistry{}
}

// Register adds l to the registry.
func (r *ListenerRegistry) Register(l Listener) {
	r.mu.Lock()
	r.listeners = append(r.listeners, l)
	r.mu.Unlock()
}

func (r *ListenerRegistry) snapshot() []Listener {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Listener, len(r.listeners))
	copy(out, r.listeners)
	return out
}

// NotifyStart invokes OnStart on every registered listener.
func (r *ListenerRegistry) NotifyStart(name string, ctx *Context) {
	for _, l := range r.snapshot() {
		r.safeCall(ctx, name, func() { l.OnStart(name, ctx) })
	}
}

// NotifySuccess invokes OnSuccess on every registered listener.
func (r *ListenerRegistry) NotifySuccess(name string, ctx *Context, res result.WorkflowResult) {
	for _, l := range r.snapshot() {
		r.safeCall(ctx, name, func() { l.OnSuccess(name, ctx, res) })
	}
}

// NotifyFailure invokes OnFailure on every registered listener.
func (r *ListenerRegistry) NotifyFailure(name string, ctx *Context, err error) {
	for _, l := range r.snapshot() {
		r.safeCall(ctx, name, func() { l.OnFailure(name, ctx, err) })
	}
}

func (r *ListenerRegistry) safeCall(ctx *Context, workflowName string, call func()) {
	defer func() {
		if rec := recover(); rec != nil {
			ctx.Observer().OnEvent(ctx, observability.Event{
				Type:      EventListenerPanic,
				Level:     observability.LevelError,
				Timestamp: time.Now(),
				Source:    workflowName,
				Data:      map[string]any{"recovered": rec},
			})
		}
	}()
	call()
}
