package internal

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"WARN", slog.LevelWarn},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.input), "level %q", tt.input)
	}
}

func TestNewLoggerHandlerByEnv(t *testing.T) {
	var buf bytes.Buffer

	NewLogger(&buf, "production", "info").Info("started")
	assert.True(t, strings.HasPrefix(buf.String(), "{"), "production logs are JSON")

	buf.Reset()
	NewLogger(&buf, "development", "info").Info("started")
	assert.False(t, strings.HasPrefix(buf.String(), "{"), "development logs are text")
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	NewLogger(&buf, "production", "error").Info("suppressed")
	assert.Empty(t, buf.String())
}
