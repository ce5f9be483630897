// Package task provides the leaf unit of work the engine composes: Task,
// the immutable Descriptor bundling a task with optional retry/timeout
// policies, and the attempt loop that applies them in the order spec'd
// for the task adapter workflow (timeout bounds each individual retry
// attempt, not the whole retry loop).
package task
