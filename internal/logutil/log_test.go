package logutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLogger(t *testing.T) {
	defer Close()

	path := filepath.Join(t.TempDir(), "autocomplete.log")
	require.NoError(t, InitLogger(&Config{Level: "info", Format: "json", File: path}))

	Debug("hidden")
	Info("tree built", zap.Int("nodes", 3))
	require.NoError(t, Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"tree built"`)
	require.Contains(t, string(data), `"nodes":3`)
	require.NotContains(t, string(data), "hidden")
}

func TestInitLoggerRejectsBadConfig(t *testing.T) {
	defer SetLevel(zapcore.InfoLevel)
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())
	SetLevel(zapcore.WarnLevel)

	require.Error(t, InitLogger(&Config{Level: "loud"}))
	require.Error(t, InitLogger(&Config{Level: "debug", Format: "xml"}))
	require.Error(t, InitLogger(&Config{Level: "debug", File: filepath.Join(t.TempDir(), "missing", "x.log")}))

	// A rejected config changes neither the level nor the logger.
	require.Equal(t, zapcore.WarnLevel, appLevel.Level())
	Warn("still here")
	require.Equal(t, 1, logs.Len())
}

func TestCloseReleasesLogFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	require.NoError(t, InitLogger(&Config{Level: "info", File: first}))
	Info("loaded")
	require.NoError(t, InitLogger(&Config{Level: "info", File: second}))
	Info("queried")
	require.NoError(t, Close())
	Info("dropped")

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	require.Contains(t, string(data), "loaded")
	require.NotContains(t, string(data), "queried")

	data, err = os.ReadFile(second)
	require.NoError(t, err)
	require.Contains(t, string(data), "queried")
	require.NotContains(t, string(data), "dropped")
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(zap.NewNop())

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	Warn("arena nearly full", zap.Int("available", 12))
	Error("arena exhausted")

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, int64(12), entries[0].ContextMap()["available"])
	require.Equal(t, "arena exhausted", entries[1].Message)
}
