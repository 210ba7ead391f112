package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local", "cinifilme.log")

	log, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("shown")
	_ = log.Sync()

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["msg"])
	assert.Equal(t, "info", lines[0]["level"])
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cinifilme.log")

	log, err := New(Options{Level: "warn", File: path, Verbose: true})
	require.NoError(t, err)
	log.Debug("visible")
	_ = log.Sync()

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "debug", lines[0]["level"])
}

func TestNew_NoFileIsNop(t *testing.T) {
	log, err := New(Options{})
	require.NoError(t, err)
	assert.NotNil(t, log)
	log.Info("dropped")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	assert.ErrorContains(t, err, "logging:")
}
