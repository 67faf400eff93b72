package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/octofit-tracker/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("json по умолчанию", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(config.LogConfig{Level: "info", Format: "json"}, &buf)

		logger.Debug("hidden")
		logger.Info("leaderboard recomputed", slog.Int("entries", 10))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "leaderboard recomputed", record["msg"])
		assert.Equal(t, float64(10), record["entries"])
	})

	t.Run("текстовый формат", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(config.LogConfig{Level: "debug", Format: "text"}, &buf)

		logger.Debug("seed started")

		assert.Contains(t, buf.String(), "msg=\"seed started\"")
	})
}
