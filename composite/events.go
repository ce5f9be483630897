package composite

import "github.com/taucore/workflow/observability"

const (
	EventConditionalEvaluate observability.EventType = "conditional.evaluate"
	EventSwitchSelect        observability.EventType = "switch.select"
	EventSagaCompensate      observability.EventType = "saga.compensate"
	EventParallelCancel      observability.EventType = "parallel.cancel"
	EventTimeoutExpire       observability.EventType = "timeout.expire"
	EventRateLimitWait       observability.EventType = "ratelimit.wait"
)
