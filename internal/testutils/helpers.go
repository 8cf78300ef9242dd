package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/duet/pkg/puzzle"
	"github.com/stretchr/testify/require"
)

// SetupInputs creates a temporary directory holding one "dayNN.txt" file
// per entry and returns its absolute path.
// It fails the test immediately on error.
func SetupInputs(t *testing.T, inputs map[puzzle.Day]string) string {
	t.Helper()

	dir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	for day, text := range inputs {
		path := filepath.Join(dir, day.String()+".txt")
		require.NoError(t, os.WriteFile(path, []byte(text), 0o644), "Failed to write input for %s", day)
	}
	return dir
}

// WriteConfig writes a config file named name into dir and returns its path.
func WriteConfig(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644), "Failed to write config")
	return path
}
