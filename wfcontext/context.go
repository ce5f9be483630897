// Package wfcontext provides the thread-safe typed key-value store shared
// across a single workflow execution: namespace scoping, filtered shallow
// copy, typed-key access, and the listener registry attached to it.
package wfcontext

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taucore/workflow/observability"
)

// store is the mutex-guarded map backing a Context. It is shared by
// pointer between a Context and every view derived via WithGoContext, but
// NOT shared after Copy/CopyFiltered, which detach into a fresh store.
type store struct {
	mu   sync.RWMutex
	data map[string]any
}

// Context is a thread-safe mapping from string keys to arbitrary values,
// plus an attached listener registry. It embeds context.Context so
// composites can thread cancellation (Done/Err/Deadline) through the same
// value that carries workflow data, the idiomatic Go analogue of the
// engine's "interrupt the calling thread" model.
type Context struct {
	context.Context

	store     *store
	id        string
	observer  observability.Observer
	listeners *ListenerRegistry
}

// New creates an empty Context. A nil parent defaults to
// context.Background(); a nil observer defaults to observability.NoOpObserver{}.
func New(parent context.Context, observer observability.Observer) *Context {
	if parent == nil {
		parent = context.Background()
	}
	if observer == nil {
		observer = observability.NoOpObserver{}
	}

	c := &Context{
		Context:   parent,
		store:     &store{data: make(map[string]any)},
		id:        uuid.New().String(),
		observer:  observer,
		listeners: NewListenerRegistry(),
	}

	c.observer.OnEvent(parent, observability.Event{
		Type:      EventContextCreate,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "wfcontext",
		Data:      map[string]any{"id": c.id},
	})

	return c
}

// ID is the identity of this context, generated at New and carried
// through WithGoContext. Copy and CopyFiltered generate a fresh ID.
func (c *Context) ID() string { return c.id }

// Observer returns the observer attached to this context.
func (c *Context) Observer() observability.Observer { return c.observer }

// Listeners returns the shared listener registry.
func (c *Context) Listeners() *ListenerRegistry { return c.listeners }

// DetachListeners rebinds this context's listener registry to a fresh,
// empty one. Contexts produced by Copy before the detach keep the old
// (now independent) registry.
func (c *Context) DetachListeners() {
	c.listeners = NewListenerRegistry()
}

// Put writes key=value, visible to any concurrent reader once Put returns.
func (c *Context) Put(key string, value any) {
	c.store.mu.Lock()
	c.store.data[key] = value
	c.store.mu.Unlock()
}

// Get reads key. The bool is false if the key is absent.
func (c *Context) Get(key string) (any, bool) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	v, ok := c.store.data[key]
	return v, ok
}

// ContainsKey reports whether key is present.
func (c *Context) ContainsKey(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Delete removes key, if present.
func (c *Context) Delete(key string) {
	c.store.mu.Lock()
	delete(c.store.data, key)
	c.store.mu.Unlock()
}

// Copy produces a new Context whose map is a shallow duplicate of this
// one at the moment of the call: value references are shared, but future
// Put/Delete calls on either context do not propagate to the other. The
// listener registry is retained by reference.
func (c *Context) Copy() *Context {
	return c.CopyFiltered(func(string) bool { return true })
}

// CopyFiltered is Copy restricted to keys satisfying predicate.
func (c *Context) CopyFiltered(predicate func(key string) bool) *Context {
	c.store.mu.RLock()
	newData := make(map[string]any, len(c.store.data))
	for k, v := range c.store.data {
		if predicate(k) {
			newData[k] = v
		}
	}
	n := len(c.store.data)
	c.store.mu.RUnlock()

	cp := &Context{
		Context:   c.Context,
		store:     &store{data: newData},
		id:        uuid.New().String(),
		observer:  c.observer,
		listeners: c.listeners,
	}

	c.observer.OnEvent(c.Context, observability.Event{
		Type:      EventContextCopy,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "wfcontext",
		Data:      map[string]any{"sourceKeys": n, "copiedKeys": len(newData)},
	})

	return cp
}

// WithGoContext returns a view of this Context bound to goCtx for
// cancellation purposes, sharing the same underlying data store, id,
// observer, and listener registry. Composites use this to thread a
// derived cancellable context (e.g. for fail-fast or timeout) through
// children without duplicating workflow data.
func (c *Context) WithGoContext(goCtx context.Context) *Context {
	return &Context{
		Context:   goCtx,
		store:     c.store,
		id:        c.id,
		observer:  c.observer,
		listeners: c.listeners,
	}
}

// Scope returns a handle whose Put/Get read and write this context under
// keys rekeyed with prefix + "." + key.
func (c *Context) Scope(prefix string) *Scope {
	return &Scope{ctx: c, prefix: prefix}
}

// Scope is a namespaced view over a Context. Nested scopes compose their
// prefixes by concatenation.
type Scope struct {
	ctx    *Context
	prefix string
}

func (s *Scope) key(key string) string { return s.prefix + "." + key }

func (s *Scope) Put(key string, value any) { s.ctx.Put(s.key(key), value) }

func (s *Scope) Get(key string) (any, bool) { return s.ctx.Get(s.key(key)) }

func (s *Scope) ContainsKey(key string) bool { return s.ctx.ContainsKey(s.key(key)) }

func (s *Scope) Delete(key string) { s.ctx.Delete(s.key(key)) }

// Scope returns a nested scope whose prefix concatenates with this one's.
func (s *Scope) Scope(nested string) *Scope {
	return &Scope{ctx: s.ctx, prefix: s.prefix + "." + nested}
}
