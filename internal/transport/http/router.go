// Package httptransport assembles the public HTTP surface: middleware order,
// access gates and the operational endpoints.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lawsearch/internal/platform/metrics"
	"lawsearch/internal/platform/middleware"
	"lawsearch/pkg/platform/httputil"
)

// Registrar mounts a feature's routes.
type Registrar interface {
	Register(r chi.Router)
}

// Config holds everything NewRouter wires together.
type Config struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	RequestTimeout time.Duration
	Allowlist      *middleware.IPAllowlist
	TrustedProxies *middleware.IPAllowlist
	Credentials    middleware.BasicCredentials
	Handlers       []Registrar
}

// NewRouter wires all public endpoints. Health checks sit outside the access
// gates so probes never need credentials.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.TrustedProxies(cfg.TrustedProxies))
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Recovery(cfg.Logger))

	r.Get("/healthz", handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Logger(cfg.Logger))
		r.Use(middleware.LatencyMiddleware(cfg.Metrics))
		r.Use(middleware.RequireAllowedIP(cfg.Allowlist, cfg.Logger, cfg.Metrics))
		r.Use(middleware.RequireBasicAuth(cfg.Credentials, cfg.Logger, cfg.Metrics))

		if cfg.Gatherer != nil {
			r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(cfg.RequestTimeout))
			for _, h := range cfg.Handlers {
				h.Register(r)
			}
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
