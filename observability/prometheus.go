package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusObserver increments a CounterVec keyed by event type, level, and
// source for every event observed.
type PrometheusObserver struct {
	counter *prometheus.CounterVec
}

// NewPrometheusObserver creates a PrometheusObserver and registers its
// counter vector with reg. Passing nil registers against the default
// registerer.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workflow_events_total",
			Help: "Total number of observability events emitted by the workflow engine.",
		},
		[]string{"type", "level", "source"},
	)

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, err
			}
			counter = existing
		} else {
			return nil, err
		}
	}

	return &PrometheusObserver{counter: counter}, nil
}

func (o *PrometheusObserver) OnEvent(ctx context.Context, event Event) {
	o.counter.WithLabelValues(string(event.Type), event.Level.String(), event.Source).Inc()
}
