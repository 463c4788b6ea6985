package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the search paths at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(15), cfg.TargetOpset)
	assert.True(t, cfg.EnableOptimizer)
	assert.Equal(t, "onnxcommon", cfg.Producer.Name)
	assert.Equal(t, Version, cfg.Producer.Version)
	assert.Equal(t, "", cfg.Model.Domain)
	assert.Equal(t, int64(0), cfg.Model.Version)
	assert.Equal(t, "onnxcommon.log", cfg.Log.File)
	assert.False(t, cfg.Log.Debug)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "onnxcommon.yaml"), []byte(`
target_opset: 11
producer:
  name: skl2onnx
model:
  domain: ai.zerfoo
  version: 3
`), 0o644))
	t.Setenv("ONNXCOMMON_LOG_FILE", "/tmp/custom.log")
	t.Setenv("ONNXCOMMON_ENABLE_OPTIMIZER", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(11), cfg.TargetOpset)
	assert.Equal(t, "skl2onnx", cfg.Producer.Name)
	assert.Equal(t, Version, cfg.Producer.Version)
	assert.Equal(t, "ai.zerfoo", cfg.Model.Domain)
	assert.Equal(t, int64(3), cfg.Model.Version)
	assert.Equal(t, "/tmp/custom.log", cfg.Log.File)
	assert.False(t, cfg.EnableOptimizer)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  debug: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Log.Debug)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsBadOpset(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target_opset: 0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target_opset")
}
