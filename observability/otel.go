package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// OTelObserver records events as OTel metric counters and, when a span is
// active on the event's context, as span events. Construct with
// NewOTelObserver against any metric.Meter (e.g. from an SDK MeterProvider).
type OTelObserver struct {
	eventCount metric.Int64Counter
}

// NewOTelObserver creates an OTelObserver backed by the given meter.
func NewOTelObserver(meter metric.Meter) (*OTelObserver, error) {
	eventCount, err := meter.Int64Counter(
		"workflow.events.total",
		metric.WithDescription("Total number of observability events emitted by the workflow engine"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	return &OTelObserver{eventCount: eventCount}, nil
}

func (o *OTelObserver) OnEvent(ctx context.Context, event Event) {
	attrs := []attribute.KeyValue{
		attribute.String("type", string(event.Type)),
		attribute.String("source", event.Source),
		attribute.String("level", event.Level.String()),
	}
	o.eventCount.Add(ctx, 1, metric.WithAttributes(attrs...))

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		spanAttrs := make([]attribute.KeyValue, 0, len(event.Data)+1)
		spanAttrs = append(spanAttrs, attribute.String("source", event.Source))
		for k, v := range event.Data {
			spanAttrs = append(spanAttrs, attribute.String(k, toAttrString(v)))
		}
		span.AddEvent(string(event.Type), trace.WithAttributes(spanAttrs...))
	}
}

func toAttrString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
