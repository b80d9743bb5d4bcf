package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_InfoMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo))

	logger.Info("loading dump")

	out := buf.String()
	assert.Contains(t, out, "loading dump")
	assert.NotContains(t, out, colorRed)
	assert.NotContains(t, out, colorYellow)
}

func TestHandler_ErrorMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo))

	logger.Error("parse failed")

	out := buf.String()
	assert.Contains(t, out, "parse failed")
	assert.Contains(t, out, colorRed)
	assert.Contains(t, out, colorReset)
}

func TestHandler_WarnMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo))

	logger.Warn("row skipped")

	assert.Contains(t, buf.String(), colorYellow)
}

func TestHandler_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     slog.Level
		logFunc   func(*slog.Logger)
		shouldLog bool
	}{
		{"info handler logs info", slog.LevelInfo, func(l *slog.Logger) { l.Info("x") }, true},
		{"info handler filters debug", slog.LevelInfo, func(l *slog.Logger) { l.Debug("x") }, false},
		{"debug handler logs debug", slog.LevelDebug, func(l *slog.Logger) { l.Debug("x") }, true},
		{"error handler filters info", slog.LevelError, func(l *slog.Logger) { l.Info("x") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(NewHandler(&buf, tt.level))

			tt.logFunc(logger)
			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestHandler_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo))

	logger.Info("rows loaded", "count", 42)

	assert.Contains(t, buf.String(), "count=42")
}

func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelInfo)

	grouped := h.WithGroup("export")
	require.NotEqual(t, h, grouped)

	slog.New(grouped).Info("workbook written")
	assert.Contains(t, buf.String(), "[export]")

	assert.Equal(t, h, h.WithGroup(""))
}

func TestSetDefault(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	SetDefault(true)
	require.NotNil(t, slog.Default())
	assert.True(t, slog.Default().Enabled(nil, slog.LevelDebug))
}
