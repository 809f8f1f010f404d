package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demosvc/demo-microservice/internal/metrics"
)

func TestMiddleware_CountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	}

	counter := m.RequestsTotal.WithLabelValues("GET", "/", "200")
	assert.Equal(t, float64(3), testutil.ToFloat64(counter))
}

func TestMiddleware_LabelsStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	counter := m.RequestsTotal.WithLabelValues("GET", "/missing", "404")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))
}

func TestMiddleware_InFlightReturnsToZero(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsInFlight))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, float64(0), testutil.ToFloat64(m.RequestsInFlight))
}

func TestNew_RegistersAllInstruments(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	// Touch each vec so it has at least one child to gather.
	m.RequestsTotal.WithLabelValues("GET", "/", "200").Inc()
	m.RequestDuration.WithLabelValues("GET", "/").Observe(0.01)
	m.RequestsInFlight.Set(0)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["http_requests_total"])
	assert.True(t, names["http_request_duration_seconds"])
	assert.True(t, names["http_requests_in_flight"])
}
