package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSONFile(t *testing.T) {
	t.Cleanup(func() { _ = Setup(DefaultConfig()) })

	path := filepath.Join(t.TempDir(), "fic.log")
	require.NoError(t, Setup(LogConfig{
		Level:      "debug",
		Format:     "json",
		TimeFormat: time.RFC3339,
		Output:     path,
	}))

	toolLog := WithTool("dispatcher", "list_invoices", "req-1")
	toolLog.Info().Msg("Tool call started")
	clientLog := WithComponent("fic-client")
	clientLog.Debug().Msg("API call completed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "dispatcher", entry["component"])
	assert.Equal(t, "list_invoices", entry["tool"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "caller")
}

func TestSetup_LevelFilters(t *testing.T) {
	t.Cleanup(func() { _ = Setup(DefaultConfig()) })

	path := filepath.Join(t.TempDir(), "fic.log")
	require.NoError(t, Setup(LogConfig{Level: "WARN", Format: "json", Output: path}))

	xLog := WithComponent("x")
	xLog.Info().Msg("dropped")
	xLog.Warn().Msg("kept")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestSetup_InvalidLevel(t *testing.T) {
	assert.Error(t, Setup(LogConfig{Level: "loud", Output: "stderr"}))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "stderr", cfg.Output)
	assert.Equal(t, "info", cfg.Level)
}
