package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.raw), "level %q", tt.raw)
	}
}

// The loggers are process-wide, so a single test covers the file output.
func TestLoggersWriteJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "navbug.log")
	SetPath(path)
	SetQuietStdout(true)
	t.Cleanup(Close)

	SetRawLevel("warn")
	Get().Info("hidden")
	Get().Warn("shown", "tab", 2)
	SetInternalLevel(slog.LevelDebug)
	Internal().Debug("plumbing")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var lines []map[string]any
	for _, raw := range bytes.Split(bytes.TrimSpace(data), []byte("\n")) {
		var line map[string]any
		require.NoError(t, json.Unmarshal(raw, &line))
		lines = append(lines, line)
	}
	require.Len(t, lines, 2)
	assert.Equal(t, "shown", lines[0]["msg"])
	assert.Equal(t, float64(2), lines[0]["tab"])
	assert.Equal(t, "plumbing", lines[1]["msg"])
	assert.Equal(t, "navbug", lines[1]["component"])
}
