package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultMaxSteps, cfg.MaxSteps)
	assert.Equal(t, DefaultFPS, cfg.FPS)
	assert.Equal(t, DefaultTapeWidth, cfg.TapeWidth)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Empty(t, cfg.Input)
	assert.Empty(t, cfg.Batch)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmsim.yaml")
	require.NoError(t, Save(path, &Config{
		Input:    "abba",
		MaxSteps: 500,
		FPS:      20,
		Batch:    []string{"ab", "aba"},
	}))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "abba", cfg.Input)
	assert.Equal(t, 500, cfg.MaxSteps)
	assert.Equal(t, 20, cfg.FPS)
	assert.Equal(t, []string{"ab", "aba"}, cfg.Batch)
	// Unset fields keep zero values from the saved struct, not defaults.
	assert.Equal(t, 0, cfg.DelayMS)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TMSIM_MAX_STEPS", "77")
	t.Setenv("TMSIM_DATA", "/tmp/runs")
	t.Setenv("TMSIM_NO_COLOR", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.MaxSteps)
	assert.Equal(t, "/tmp/runs", cfg.DataDir)
	assert.True(t, cfg.NoColor)
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	assert.Contains(t, names, "even")
	assert.Contains(t, names, "mismatch")

	cfg := GetPreset("even")
	require.NotNil(t, cfg)
	assert.Equal(t, "abba", cfg.Input)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)

	// Returned preset is a copy.
	cfg.Input = "changed"
	assert.Equal(t, "abba", GetPreset("even").Input)

	assert.Nil(t, GetPreset("nope"))
}
