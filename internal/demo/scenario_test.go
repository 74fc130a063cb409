package demo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultScenario(t *testing.T) {
	sc := DefaultScenario()
	require.NoError(t, sc.Validate())
	assert.Len(t, sc.Statements, 8)
	assert.Equal(t, 2*time.Second, sc.pause())
	assert.Equal(t, 3*time.Second, sc.settle())
}

func TestLoadScenario(t *testing.T) {
	path := writeFile(t, `
participant = "Omar"
pause_seconds = 0.5
statements = [
  "We need Go and Kubernetes.",
  "Start within 3 months.",
]
`)
	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "Omar", sc.Participant)
	assert.Equal(t, []string{"We need Go and Kubernetes.", "Start within 3 months."}, sc.Statements)
	assert.Equal(t, 500*time.Millisecond, sc.pause())
	assert.Equal(t, 3*time.Second, sc.settle(), "unset fields keep defaults")
	assert.Equal(t, 1024, sc.AudioSamples)
}

func TestLoadScenarioErrors(t *testing.T) {
	_, err := LoadScenario(writeFile(t, `participant = "Omar"`))
	assert.ErrorContains(t, err, "statement")

	_, err = LoadScenario(writeFile(t, `statements = [`))
	assert.ErrorContains(t, err, "decoding scenario")

	_, err = LoadScenario(writeFile(t, "statements = [\"x\"]\npause_seconds = -1.0"))
	assert.ErrorContains(t, err, "negative")

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
