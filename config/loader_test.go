package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	cfg, err := Load([]string{"--slices=12", "--sphere", "--seed=42"})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Slices)
	assert.True(t, cfg.Sphere)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, Default().Lambda, cfg.Lambda)
}

func TestLoadFileThenFlagOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cdtmc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slices: 20\ntargetVolume: 500\n"), 0o644))

	cfg, err := Load([]string{"--config=" + path, "--target-volume=999"})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Slices)
	assert.Equal(t, 999, cfg.TargetVolume)
}

func TestLoadRejectsTooFewSlices(t *testing.T) {
	_, err := Load([]string{"--slices=2"})
	assert.Error(t, err)
}
