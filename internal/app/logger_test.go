package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelWarn,
		"loud":  slog.LevelWarn,
	}

	for input, want := range testCases {
		logger := newLogger(&Config{LogLevel: input}, &bytes.Buffer{})

		require.True(t, logger.Enabled(context.Background(), want), "level %q", input)
		require.False(t, logger.Enabled(context.Background(), want-1), "level %q", input)
	}
}

func TestNewLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := newLogger(&Config{LogLevel: "info", LogFormat: "json"}, buf)

	logger.Info("Value resolved.", "to", "5")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "Value resolved.", record["msg"])
	require.Equal(t, "5", record["to"])
}
