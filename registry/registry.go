// Package registry provides a thread-safe, named lookup table for
// Workflow values — a supplement to the core composition runtime, which
// is otherwise unaware of any naming scheme beyond each workflow's own
// Name(). Hosts use it to publish workflows by a stable key and resolve
// them elsewhere (a CLI, a test harness, a saga step referencing another
// workflow by name) without passing references by hand.
package registry

import (
	"fmt"
	"sync"

	"github.com/taucore/workflow/composite"
)

// Registry is a thread-safe named collection of workflows. The zero
// value is not usable; construct with New.
type Registry struct {
	mu        sync.RWMutex
	workflows map[string]composite.Workflow
}

func New() *Registry {
	return &Registry{workflows: make(map[string]composite.Workflow)}
}

// Register adds wf under name. Returns ErrAlreadyExists if name is
// already registered; use Replace to overwrite deliberately.
func (r *Registry) Register(name string, wf composite.Workflow) error {
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.workflows[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}
	r.workflows[name] = wf
	return nil
}

// Replace registers wf under name, overwriting any existing entry.
func (r *Registry) Replace(name string, wf composite.Workflow) error {
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.workflows[name] = wf
	return nil
}

// Get retrieves the workflow registered under name.
func (r *Registry) Get(name string) (composite.Workflow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wf, exists := r.workflows[name]
	return wf, exists
}

// MustGet retrieves the workflow registered under name, panicking if
// none is registered. Intended for wiring code at startup, where a
// missing workflow is a programming error rather than a runtime
// condition to handle.
func (r *Registry) MustGet(name string) composite.Workflow {
	wf, exists := r.Get(name)
	if !exists {
		panic(fmt.Sprintf("registry: no workflow registered under %q", name))
	}
	return wf
}

// Names returns the names of every registered workflow, in no
// particular order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.workflows))
	for name := range r.workflows {
		names = append(names, name)
	}
	return names
}

// Unregister removes the entry for name, if any.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workflows, name)
}
