package metrics_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matthew11k/outreach/internal/common/metrics"
)

func serve(t *testing.T, server *metrics.MetricsServer, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestMetricsServer_Health(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := func(context.Context) error { return nil }

	t.Run("all dependencies up", func(t *testing.T) {
		server := metrics.NewMetricsServer(0, logger,
			metrics.HealthCheck{Name: "postgres", Probe: ok},
			metrics.HealthCheck{Name: "redis", Probe: ok},
		)

		rec := serve(t, server, "/health")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("failing dependency is named", func(t *testing.T) {
		server := metrics.NewMetricsServer(0, logger,
			metrics.HealthCheck{Name: "postgres", Probe: ok},
			metrics.HealthCheck{Name: "redis", Probe: func(context.Context) error { return errors.New("connection refused") }},
		)

		rec := serve(t, server, "/health")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "redis unavailable", rec.Body.String())
	})
}

func TestMetricsServer_ExposesMetrics(t *testing.T) {
	metrics.RecordPass("channel_sync", nil, 0)

	server := metrics.NewMetricsServer(0, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := serve(t, server, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "passes_total")
}
