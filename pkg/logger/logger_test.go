package logger

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
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "json")
	l.Debug("hello", "connection_id", "c1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "c1", entry["connection_id"])
}

func TestNewTextLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "text")
	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.Warn("kept")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "client.log")
	require.NoError(t, Init(Config{Level: "info", Format: "json", OutputPaths: []string{path}}))
	t.Cleanup(func() {
		_ = Sync()
		_ = Init(Config{})
	})

	Named("acapy").Info("ready")
	require.NoError(t, Sync())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"component":"acapy"`)
	assert.Contains(t, string(content), `"msg":"ready"`)
}

func TestLInitialisesDefault(t *testing.T) {
	assert.NotNil(t, L())
	assert.NotNil(t, Named("test"))
}

func TestReinitKeepsEarlierOutputsOpen(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	t.Cleanup(func() {
		_ = Sync()
		_ = Init(Config{})
	})

	require.NoError(t, Init(Config{OutputPaths: []string{first}}))
	held := Named("client")

	require.NoError(t, Init(Config{OutputPaths: []string{second}}))
	held.Info("after reinit")
	L().Info("new logger")
	require.NoError(t, Sync())

	content, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"after reinit"`)

	content, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"new logger"`)
	assert.NotContains(t, string(content), "after reinit")
}
