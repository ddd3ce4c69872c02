package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/synphony-backend/internal/config"
	"github.com/heartmarshall/synphony-backend/internal/transport/middleware"
	"github.com/heartmarshall/synphony-backend/internal/transport/rest"
)

type routeRegistrar interface {
	Register(mux *http.ServeMux)
}

// RouterDeps are the handlers and collaborators NewRouter mounts.
type RouterDeps struct {
	Health   *rest.HealthHandler
	API      routeRegistrar
	Registry *prometheus.Registry
	Limiter  *middleware.RateLimiter
}

// NewRouter builds the HTTP handler: health probes, metrics, and the API
// behind the middleware chain. Probes and metrics are exempt from rate
// limiting.
func NewRouter(cfg *config.Config, logger *slog.Logger, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	exempt := []string{"/live", "/ready", "/health"}
	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
	}

	if cfg.Metrics.Enabled && deps.Registry != nil {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry}))
		exempt = append(exempt, cfg.Metrics.Path)
		mws = append(mws, middleware.NewMetrics(deps.Registry).Middleware())
	}

	deps.API.Register(mux)

	mws = append(mws, middleware.CORS(cfg.CORS))
	if cfg.RateLimit.Enabled && deps.Limiter != nil {
		mws = append(mws, deps.Limiter.Limit(cfg.RateLimit.RequestsPerMin, exempt...))
	}

	return middleware.Chain(mws...)(mux)
}
