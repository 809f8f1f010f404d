package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/demosvc/demo-microservice/internal/api/handler"
	apimw "github.com/demosvc/demo-microservice/internal/api/middleware"
	"github.com/demosvc/demo-microservice/internal/config"
	"github.com/demosvc/demo-microservice/internal/metrics"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	cfg *config.Config,
	m *metrics.Metrics,
	reg prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)          // recover panics, return 500
	r.Use(chimw.RealIP)             // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(1<<20)) // 1 MB max request body
	r.Use(apimw.CorrelationID)      // X-Correlation-ID inject / echo
	r.Use(apimw.RequestLogger(logger))
	r.Use(m.Middleware)
	// Throttle last so shed requests still show up in logs and metrics.
	r.Use(apimw.Throttle(cfg.RateLimit))

	// --- handler instances ---
	gh := handler.NewGreetingHandler(cfg.GreetingMessage, cfg.ServiceVersion)
	hh := handler.NewHealthHandler(cfg.ServiceName)

	// --- routes ---
	r.Get("/", gh.Greet)
	r.Get("/health", hh.Health)

	// Raw Prometheus scrape endpoint (for Prometheus server / Grafana)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}
