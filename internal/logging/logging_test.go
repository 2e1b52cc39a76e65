package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	logger.Info("test message")
}

func TestDefault(t *testing.T) {
	t.Run("nil returns discard", func(t *testing.T) {
		logger := Default(nil)
		assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	})

	t.Run("non-nil returns same logger", func(t *testing.T) {
		var buf bytes.Buffer
		original := slog.New(slog.NewTextHandler(&buf, nil))
		assert.Same(t, original, Default(original))
	})
}

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	quiet := New(&buf, false)
	quiet.Info("hidden")
	assert.Empty(t, buf.String())
	quiet.Warn("shown")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	loud := New(&buf, true)
	loud.Debug("details", "component", "scan")
	assert.Contains(t, buf.String(), "component=scan")
}
