// Package composite implements the workflow composition runtime: the
// Workflow interface, the ten composites that combine Workflow values
// into larger ones (sequential, parallel, conditional, switch, fallback,
// saga, timeout, rate-limited, repeat, foreach), the task adapter that
// wraps a task as a Workflow, and the shared lifecycle/listener protocol
// all eleven obey.
//
// Every composite is effectively immutable once built and is safe to
// execute concurrently, any number of times, from any goroutine.
package composite
