package wfcontext

import "github.com/taucore/workflow/observability"

const (
	EventContextCreate observability.EventType = "context.create"
	EventContextCopy   observability.EventType = "context.copy"
	EventContextPut    observability.EventType = "context.put"

	EventListenerPanic observability.EventType = "listener.panic"
)
