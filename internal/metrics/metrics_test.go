package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementOutcome(t *testing.T) {
	m := New()
	m.IncrementOutcome(OutcomeSuccess)
	m.IncrementOutcome(OutcomeSuccess)
	m.IncrementOutcome(OutcomeValidationFailed)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ConversionRequests.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConversionRequests.WithLabelValues(OutcomeValidationFailed)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ConversionRequests.WithLabelValues(OutcomeRenderFailed)))
}

func TestIncrementValidationFailure(t *testing.T) {
	m := New()
	m.IncrementValidationFailure("status")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("status")))
}

func TestObserveConversion(t *testing.T) {
	m := New()
	m.ObserveConversion(3 * time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.ConversionDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementOutcome(OutcomeSuccess)
		m.IncrementValidationFailure("status")
		m.ObserveConversion(time.Second)
	})
}

func TestInstancesDoNotShareRegistry(t *testing.T) {
	a, b := New(), New()
	a.IncrementOutcome(OutcomeSuccess)

	assert.Equal(t, 0.0, testutil.ToFloat64(b.ConversionRequests.WithLabelValues(OutcomeSuccess)))
}

func TestHandler(t *testing.T) {
	m := New()
	m.IncrementOutcome(OutcomeRenderFailed)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `conversion_requests_total{outcome="render_failed"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
