package observability

import (
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	observers = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
	}
	mutex sync.RWMutex
)

func init() {
	if otelObs, err := NewOTelObserver(otel.GetMeterProvider().Meter("github.com/taucore/workflow")); err == nil {
		observers["otel"] = otelObs
	}
	if promObs, err := NewPrometheusObserver(prometheus.DefaultRegisterer); err == nil {
		observers["prometheus"] = promObs
	}
}

// GetObserver returns a registered observer by name.
// Pre-registered observers: "noop" (NoOpObserver), "slog" (default logger),
// and, when their construction succeeds at init, "otel" (global
// MeterProvider) and "prometheus" (default registerer).
func GetObserver(name string) (Observer, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	obs, exists := observers[name]
	if !exists {
		return nil, fmt.Errorf("unknown observer: %s", name)
	}
	return obs, nil
}

// RegisterObserver adds or replaces a named observer in the global registry.
func RegisterObserver(name string, observer Observer) {
	mutex.Lock()
	defer mutex.Unlock()

	observers[name] = observer
}
