package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesJSONWithRunID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "onnxcommon.log")

	cleanup, err := Setup(Config{File: path, RunID: "run-1"})
	require.NoError(t, err)
	assert.Equal(t, path, Path())

	L().Info("model.built", "nodes", 3)
	L().Debug("hidden")
	require.NoError(t, cleanup())
	assert.Empty(t, Path())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, records, 1)
	assert.Equal(t, "model.built", records[0]["msg"])
	assert.Equal(t, "run-1", records[0]["run_id"])
	assert.Equal(t, float64(3), records[0]["nodes"])
}

func TestSetupDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Setup(Config{File: path, Debug: true})
	require.NoError(t, err)

	L().Debug("visible")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
	assert.Contains(t, string(data), "logger.initialized")
}

func TestSetupEmptyPath(t *testing.T) {
	_, err := Setup(Config{})
	require.Error(t, err)
	assert.NotNil(t, L())
	assert.Empty(t, Path())
}
