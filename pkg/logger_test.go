package pkg_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthew11k/outreach/pkg"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pkg.ParseLevel(tt.in), tt.in)
	}
}

func TestNewLogger_TagsServiceAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := pkg.NewLogger(&buf, "engine", "warn")

	logger.Info("не попадет в вывод")
	logger.Warn("канал недоступен", "channel", "@news")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "engine", record["service"])
	assert.Equal(t, "канал недоступен", record["msg"])
	assert.Equal(t, "@news", record["channel"])
}
