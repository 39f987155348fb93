package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hearwise.log")
	logger, err := New(Config{Path: path, Level: "info"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("session started", zap.String("session_id", "s1"), zap.Int("frequency_hz", 1000))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "session started", entry["message"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "s1", entry["session_id"])
	assert.EqualValues(t, 1000, entry["frequency_hz"])
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Config{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}

func TestConsoleCoreOnlyWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := zap.New(newConsoleCore(&buf))
	logger.Info("quiet")
	logger.Warn("audio unavailable")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "audio unavailable")
	assert.Contains(t, out, zapcore.WarnLevel.CapitalString())
}
