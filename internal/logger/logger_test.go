package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: false, Output: &buf})
	Error("dropped")
	require.Empty(t, buf.String())
}

func TestInit_TextLevel(t *testing.T) {
	t.Cleanup(func() { Init(Options{}) })

	var buf bytes.Buffer
	Init(Options{Enabled: true, Output: &buf, Level: slog.LevelWarn})

	Info("hidden")
	Warn("shown", "order", "in-order")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "order=in-order")
}

func TestInit_JSON(t *testing.T) {
	t.Cleanup(func() { Init(Options{}) })

	var buf bytes.Buffer
	Init(Options{Enabled: true, Output: &buf, Level: slog.LevelDebug, JSON: true})
	Debug("loaded tree", "nodes", 7)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "loaded tree", rec["msg"])
	require.InDelta(t, 7, rec["nodes"], 0)
}
