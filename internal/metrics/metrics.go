// Package metrics exposes Prometheus instrumentation for conversions.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Conversion outcomes.
const (
	OutcomeSuccess          = "success"
	OutcomeValidationFailed = "validation_failed"
	OutcomeRenderFailed     = "render_failed"
	OutcomeBadRequest       = "bad_request"
)

// Metrics provides observability for the conversion pipeline.
type Metrics struct {
	registry *prometheus.Registry

	// Conversion attempts by outcome
	ConversionRequests *prometheus.CounterVec

	// Validation failures by rule
	ValidationFailures *prometheus.CounterVec

	// Validate plus render latency
	ConversionDuration prometheus.Histogram
}

// New creates a Metrics instance registered on its own registry, together
// with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		ConversionRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "conversion_requests_total",
			Help: "Total JSON to XML conversions by outcome",
		}, []string{"outcome"}),

		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Total documents rejected by business rule",
		}, []string{"rule"}),

		ConversionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "conversion_duration_seconds",
			Help:    "Duration of validation plus XML rendering",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
	}
}

// IncrementOutcome records a finished conversion attempt.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.ConversionRequests.WithLabelValues(outcome).Inc()
	}
}

// IncrementValidationFailure records a document rejected by rule.
func (m *Metrics) IncrementValidationFailure(rule string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(rule).Inc()
	}
}

// ObserveConversion records how long a conversion took.
func (m *Metrics) ObserveConversion(d time.Duration) {
	if m != nil {
		m.ConversionDuration.Observe(d.Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
