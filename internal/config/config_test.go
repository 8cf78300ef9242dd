package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/duet/internal/config"
	"github.com/aretw0/duet/pkg/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "duet.yaml", `
inputs: puzzles
pattern: "input-{{n}}.txt"
log_level: debug
metrics: "true"
days:
  day18:
    input: custom/duet.txt
  "23":
    disabled: 1
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "puzzles", cfg.Inputs)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.Metrics)
	assert.True(t, cfg.ForDay(23).Disabled)
	assert.False(t, cfg.ForDay(18).Disabled)

	assert.Equal(t, filepath.Join("puzzles", "custom", "duet.txt"), cfg.InputPath(18))
	assert.Equal(t, filepath.Join("puzzles", "input-7.txt"), cfg.InputPath(7))
}

func TestLoad_JSON(t *testing.T) {
	path := write(t, "duet.json", `{"log_format": "json", "days": {"day07": {"input": "/abs/tower.txt"}}}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "resources", cfg.Inputs)
	assert.Equal(t, "/abs/tower.txt", cfg.InputPath(puzzle.Day(7)))
	assert.Equal(t, filepath.Join("resources", "day09.txt"), cfg.InputPath(9))
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":      "inputs: [unclosed",
		"unknown key": "colour: blue",
		"bad format":  "log_format: xml",
		"bad day":     "days:\n  day99:\n    disabled: true",
		"wrong type":  "days: 3",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, "duet.yaml", content))
			assert.Error(t, err)
		})
	}
}
