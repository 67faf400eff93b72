package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bagdasarian/octofit-tracker/internal/handler"
)

func NewRouter(h *handler.Handler, health *handler.HealthHandler, corsCfg CORSConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(exposeRequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(cors(corsCfg))
	r.Use(middleware.StripSlashes)
	r.Use(metrics)

	r.Get("/healthz", health.Healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	h.Routes(r)

	return r
}
