package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/precond/pkg/httpserver"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouter(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "precond_test_total", Help: "test counter"})
	reg.MustRegister(counter)
	counter.Add(3)

	ready := false
	h := httpserver.Router(reg, nil, func(context.Context) error {
		if !ready {
			return errors.New("not subscribed")
		}
		return nil
	})

	t.Run("metrics", func(t *testing.T) {
		rec := get(t, h, "/metrics")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "precond_test_total 3")
	})

	t.Run("liveness", func(t *testing.T) {
		rec := get(t, h, "/livez")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("readiness follows checks", func(t *testing.T) {
		rec := get(t, h, "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())

		ready = true
		rec = get(t, h, "/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(t, h, "/nope").Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/metrics", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
