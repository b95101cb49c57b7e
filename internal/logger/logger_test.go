package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "convert.log")
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	}

	log := NewWithFileConfig("info", cfg, false)
	log.Debug("hidden")
	log.Info("rasterized", zap.Int("solid", 42))
	log.Warn("degenerate triangles", zap.Int("count", 3))
	require.NoError(t, log.Sync())

	f, err := os.Open(logFile)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, entries, 2)
	assert.Equal(t, "rasterized", entries[0]["msg"])
	assert.Equal(t, "info", entries[0]["level"])
	assert.EqualValues(t, 42, entries[0]["solid"])
	assert.Equal(t, "warn", entries[1]["level"])
}

func TestNoOutputs(t *testing.T) {
	log := NewWithFileConfig("debug", FileConfig{}, false)
	require.NotNil(t, log)
	log.Info("discarded")
}
