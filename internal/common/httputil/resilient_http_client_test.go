package httputil_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthew11k/outreach/internal/common/httputil"
	"github.com/matthew11k/outreach/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func lenientConfig() *config.Config {
	return &config.Config{
		ExternalRequestTimeout:     5 * time.Second,
		RetryCount:                 3,
		RetryBackoff:               20 * time.Millisecond,
		RetryableStatusCodes:       []int{408, 500, 502, 503, 504, 420, 429},
		CBSlidingWindowSize:        100,
		CBMinimumRequiredCalls:     100,
		CBFailureRateThreshold:     100,
		CBPermittedCallsInHalfOpen: 10,
		CBWaitDurationInOpenState:  10 * time.Second,
	}
}

func TestResilientClient_RetriesServerErrors(t *testing.T) {
	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&requestCount, 1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		_, _ = w.Write([]byte(`{"id": 1}`))
	}))
	defer server.Close()

	client := httputil.NewResilientClient(lenientConfig(), testLogger(), "gateway_test")

	resp, err := client.R().Get(server.URL + "/self")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, int32(3), atomic.LoadInt32(&requestCount), "2 неудачных запроса и 1 успешный")
}

func TestResilientClient_FloodWaitIsNotRetried(t *testing.T) {
	for _, status := range []int{httputil.StatusFloodWait, http.StatusTooManyRequests} {
		var requestCount int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&requestCount, 1)
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"code": "FLOOD_WAIT", "retry_after": 30}`))
		}))

		client := httputil.NewResilientClient(lenientConfig(), testLogger(), "flood_test")

		resp, err := client.R().Post(server.URL + "/messages")

		require.NoError(t, err)
		assert.Equal(t, status, resp.StatusCode())
		assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount), "flood wait не повторяется")

		server.Close()
	}
}

func TestResilientClient_PlatformErrorsPassThrough(t *testing.T) {
	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"code": "CHANNEL_PRIVATE"}`))
	}))
	defer server.Close()

	cfg := lenientConfig()
	cfg.CBMinimumRequiredCalls = 1
	cfg.CBFailureRateThreshold = 1

	client := httputil.NewResilientClient(cfg, testLogger(), "forbidden_test")

	for range 3 {
		resp, err := client.R().Get(server.URL + "/resolve")

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode())
		assert.Contains(t, string(resp.Body()), "CHANNEL_PRIVATE")
	}

	assert.Equal(t, int32(3), atomic.LoadInt32(&requestCount), "403 не открывает circuit breaker")
}

func TestResilientClient_BreakerOpensAndFailsFast(t *testing.T) {
	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := lenientConfig()
	cfg.RetryCount = 1
	cfg.CBSlidingWindowSize = 1
	cfg.CBMinimumRequiredCalls = 1
	cfg.CBFailureRateThreshold = 100
	cfg.CBPermittedCallsInHalfOpen = 1
	cfg.CBWaitDurationInOpenState = 2 * time.Second

	client := httputil.NewResilientClient(cfg, testLogger(), "breaker_test")

	_, err := client.R().Get(server.URL + "/dialogs")
	require.Error(t, err)

	seen := atomic.LoadInt32(&requestCount)

	start := time.Now()
	_, err = client.R().Get(server.URL + "/dialogs")
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	assert.Less(t, elapsed, 200*time.Millisecond, "открытый breaker отвечает сразу")
	assert.Equal(t, seen, atomic.LoadInt32(&requestCount), "запрос не дошел до сервера")
}

func TestResilientClient_BreakerRecoversAfterWait(t *testing.T) {
	var healthy atomic.Bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := lenientConfig()
	cfg.RetryCount = 0
	cfg.CBSlidingWindowSize = 1
	cfg.CBMinimumRequiredCalls = 1
	cfg.CBFailureRateThreshold = 100
	cfg.CBPermittedCallsInHalfOpen = 1
	cfg.CBWaitDurationInOpenState = 100 * time.Millisecond

	client := httputil.NewResilientClient(cfg, testLogger(), "recover_test")

	_, err := client.R().Get(server.URL + "/self")
	require.Error(t, err)

	healthy.Store(true)
	time.Sleep(150 * time.Millisecond)

	resp, err := client.R().Get(server.URL + "/self")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}
