package platform_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthew11k/outreach/internal/common/httputil"
	"github.com/matthew11k/outreach/internal/config"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/platform"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGateway(t *testing.T, handler http.HandlerFunc) *platform.GatewayClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		ExternalRequestTimeout:     5 * time.Second,
		RetryCount:                 0,
		CBSlidingWindowSize:        100,
		CBMinimumRequiredCalls:     100,
		CBFailureRateThreshold:     100,
		CBPermittedCallsInHalfOpen: 1,
		CBWaitDurationInOpenState:  time.Second,
	}

	return platform.NewGatewayClient(
		httputil.NewResilientClient(cfg, discardLogger(), "gateway_test"),
		server.URL+"/",
		"secret",
		"main",
		100,
		discardLogger(),
	)
}

func TestGatewayClient_ResolveEntity(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/sessions/main/entities/resolve", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "@news", body["ref"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 42, "access_hash": 7, "kind": "channel", "username": "news"}`))
	})

	entity, err := gateway.ResolveEntity(context.Background(), "@news")

	require.NoError(t, err)
	assert.Equal(t, int64(42), entity.ID)
	assert.Equal(t, int64(7), entity.AccessHash)
	assert.Equal(t, "news", entity.Username)
}

func TestGatewayClient_FetchHistoryQuery(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sessions/main/channels/42/history", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("access_hash"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages": [{"id": 3, "chat_id": 42, "text": "@alice"}]}`))
	})

	messages, err := gateway.FetchHistory(context.Background(), &models.Entity{ID: 42, AccessHash: 7}, 5)

	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "@alice", messages[0].Text)
}

func TestGatewayClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		kind   models.StatusKind
	}{
		{"forbidden status", http.StatusForbidden, ``, platform.ErrForbidden, models.StatusForbidden},
		{"not found status", http.StatusNotFound, ``, platform.ErrNotFound, models.StatusNotFound},
		{"flood wait status", httputil.StatusFloodWait, `{"code": "FLOOD_WAIT", "retry_after": 30}`, platform.ErrRateLimited, models.StatusRateLimited},
		{"private channel code", http.StatusBadRequest, `{"code": "CHANNEL_PRIVATE"}`, platform.ErrForbidden, models.StatusForbidden},
		{"unknown username code", http.StatusBadRequest, `{"code": "USERNAME_NOT_OCCUPIED", "extra": [1, 2]}`, platform.ErrNotFound, models.StatusNotFound},
		{"server error", http.StatusInternalServerError, ``, platform.ErrConnection, models.StatusConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := gateway.SendMessage(context.Background(), "@alice", "привет")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.kind, platform.Classify(err))
		})
	}
}

func TestGatewayClient_CanceledContext(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gateway.BlockUser(ctx, "@alice")

	assert.ErrorIs(t, err, platform.ErrConnection)
}
