package logger

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Test that logger functions don't panic
	ctx := context.Background()

	Initialize()

	t.Run("Info", func(t *testing.T) {
		Info("Test info message", "component", "test")
	})

	t.Run("InfoContext", func(t *testing.T) {
		InfoContext(ctx, "Test info message", "key", "value", "number", 42)
	})

	t.Run("Warn", func(t *testing.T) {
		Warn("Test warning message", "component", "test")
	})

	t.Run("WarnContext", func(t *testing.T) {
		WarnContext(ctx, "Test warning message", "component", "test")
	})

	t.Run("Error", func(t *testing.T) {
		Error("Test error message", "error", "sample error")
	})

	t.Run("ErrorContext", func(t *testing.T) {
		ErrorContext(ctx, "Test error message", "error", "sample error")
	})

	t.Run("Debug", func(t *testing.T) {
		Debug("Test debug message", "debug", true)
	})

	t.Run("DebugContext", func(t *testing.T) {
		DebugContext(ctx, "Test debug message", "debug", true)
	})
}

func TestWithMethods(t *testing.T) {
	assert.NotNil(t, With("service", "test"))
	assert.NotNil(t, WithGroup("test_group"))
}

func TestDisableCapturesToConsole(t *testing.T) {
	Disable()
	defer Enable()

	before := Console().Count()
	Error("captured while disabled", "reason", "test")

	require.Greater(t, Console().Count(), before)
	recent := Console().Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, "captured while disabled", recent[0].Message)
	assert.Contains(t, recent[0].Attrs, "reason=test")
}

func TestConsoleBufferRing(t *testing.T) {
	buf := NewConsoleBuffer(3)
	for i := 0; i < 5; i++ {
		buf.Add(Entry{
			Time:    time.Now(),
			Level:   slog.LevelInfo,
			Message: string(rune('a' + i)),
		})
	}

	assert.Equal(t, 3, buf.Count())

	recent := buf.Recent(3)
	require.Len(t, recent, 3)
	// Newest first; oldest two were evicted.
	assert.Equal(t, "e", recent[0].Message)
	assert.Equal(t, "d", recent[1].Message)
	assert.Equal(t, "c", recent[2].Message)

	buf.Clear()
	assert.Equal(t, 0, buf.Count())
	assert.Nil(t, buf.Recent(5))
}

func TestFormatLevel(t *testing.T) {
	assert.Equal(t, "INF", FormatLevel(slog.LevelInfo))
	assert.Equal(t, "DBG", FormatLevel(slog.LevelDebug))
	assert.Equal(t, "WRN", FormatLevel(slog.LevelWarn))
	assert.Equal(t, "ERR", FormatLevel(slog.LevelError))
}

func TestEntryString(t *testing.T) {
	ts := time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC)
	e := Entry{Time: ts, Level: slog.LevelWarn, Message: "slow response", Attrs: "ms=1200"}
	assert.Equal(t, "09:30:00 WRN slow response ms=1200", e.String())

	bare := Entry{Time: ts, Level: slog.LevelInfo, Message: "ready"}
	assert.Equal(t, "09:30:00 INF ready", bare.String())
}
