package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureHandler struct {
	level   slog.Level
	records []slog.Record
}

func (c *captureHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level
}

func (c *captureHandler) Handle(_ context.Context, record slog.Record) error {
	c.records = append(c.records, record)
	return nil
}

func (c *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return c }
func (c *captureHandler) WithGroup(string) slog.Handler      { return c }

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	info := &captureHandler{level: slog.LevelInfo}
	errOnly := &captureHandler{level: slog.LevelError}
	logger := slog.New(NewMultiHandler(info, errOnly))

	logger.Info("routine")
	logger.Error("broken")

	require.Len(t, info.records, 2)
	require.Len(t, errOnly.records, 1)
	assert.Equal(t, "broken", errOnly.records[0].Message)
}

func TestMultiHandler_EnabledWhenAnyHandlerIs(t *testing.T) {
	errOnly := &captureHandler{level: slog.LevelError}
	m := NewMultiHandler(errOnly)

	assert.False(t, m.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, m.Enabled(context.Background(), slog.LevelError))
}
