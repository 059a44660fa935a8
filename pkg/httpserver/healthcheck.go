package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/precond/pkg/logger"
)

// CheckFunc reports whether a dependency is ready to serve.
type CheckFunc func(context.Context) error

// HealthCheckHandler returns a handler usable for liveness and readiness.
//
//   - Liveness: with no checks the handler returns 200 OK with body "ALIVE".
//   - Readiness: with checks it runs each one with the request context and
//     returns 200 OK with body "READY" when all pass, or 503 Service
//     Unavailable with body "NOT_READY" on the first failure.
func HealthCheckHandler(log *slog.Logger, checks ...CheckFunc) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		ctx := r.Context()
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.WarnContext(ctx, "readiness check failed", logger.Component("httpserver"), logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
