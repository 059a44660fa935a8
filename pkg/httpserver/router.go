package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router mounts the operational endpoints:
//
//	GET /metrics  Prometheus exposition of gatherer
//	GET /livez    liveness, always 200 while the process serves
//	GET /readyz   readiness, 200 only when every check passes
func Router(gatherer prometheus.Gatherer, log *slog.Logger, checks ...CheckFunc) http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/livez", HealthCheckHandler(log))
	r.Get("/readyz", HealthCheckHandler(log, checks...))
	return r
}
