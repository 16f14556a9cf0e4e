package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"news-notes/internal/logger"

	"github.com/stretchr/testify/assert"
)

func captureLogger(level slog.Level) *bytes.Buffer {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	logger.SetLogger(slog.New(handler))
	return &buf
}

func TestLogger_Info(t *testing.T) {
	buf := captureLogger(slog.LevelInfo)

	logger.Info("test message",
		slog.String("key", "value"),
		slog.Int("count", 42),
	)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
	assert.Contains(t, output, "42")
}

func TestLogger_Error(t *testing.T) {
	buf := captureLogger(slog.LevelError)

	logger.Error("error occurred",
		slog.String("error", "test error"),
	)

	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "test error")
}

func TestLogger_WithRequestID(t *testing.T) {
	buf := captureLogger(slog.LevelInfo)

	logger.WithRequestID("req-123").Info("handled")

	output := buf.String()
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "req-123")
}

func TestLogger_WithUser(t *testing.T) {
	buf := captureLogger(slog.LevelInfo)

	logger.WithUser("user-42").Info("note created")

	output := buf.String()
	assert.Contains(t, output, "user_id")
	assert.Contains(t, output, "user-42")
}

func TestLogger_DebugFilteredAtInfoLevel(t *testing.T) {
	buf := captureLogger(slog.LevelInfo)

	logger.Debug("hidden")

	assert.Empty(t, buf.String())
}
