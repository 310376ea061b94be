package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "models/model_quantized.onnx", cfg.Engine.ModelPath)
	assert.Equal(t, "models/vocab.txt", cfg.Engine.VocabPath)
	assert.Equal(t, 0.5, cfg.Engine.GateThreshold)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TRIAGE_MODEL_PATH", "/opt/models/distilbert.onnx")
	t.Setenv("TRIAGE_GATE_THRESHOLD", "0.6")
	t.Setenv("TRIAGE_ADDR", "127.0.0.1:9090")
	t.Setenv("TRIAGE_LOG_FORMAT", "json")

	cfg := Load()

	assert.Equal(t, "/opt/models/distilbert.onnx", cfg.Engine.ModelPath)
	assert.Equal(t, 0.6, cfg.Engine.GateThreshold)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvBadFloatFallsBack(t *testing.T) {
	t.Setenv("TRIAGE_GATE_THRESHOLD", "not-a-number")

	cfg := Load()
	assert.Equal(t, 0.5, cfg.Engine.GateThreshold)
}

func TestLoadFileOverlaysEnv(t *testing.T) {
	t.Setenv("TRIAGE_ADDR", ":7070")

	path := filepath.Join(t.TempDir(), "triage.yaml")
	body := []byte("engine:\n  model_path: /srv/model.onnx\n  gate_threshold: 0.55\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	// File fields win.
	assert.Equal(t, "/srv/model.onnx", cfg.Engine.ModelPath)
	assert.Equal(t, 0.55, cfg.Engine.GateThreshold)
	// Env-derived fields absent from the file survive.
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "models/vocab.txt", cfg.Engine.VocabPath)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: [unclosed"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
