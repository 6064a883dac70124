package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	v, err := newViper("testdata/pvector.yaml")
	require.NoError(t, err)
	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 2, cfg.Transform.Workers)
	assert.True(t, cfg.Transform.Degrees)
	assert.True(t, cfg.Transform.Sort)
	assert.Equal(t, []Step{
		{Op: "translate", X: 1},
		{Op: "rotateZ", Angle: 90},
		{Op: "scale", Amount: 2},
	}, cfg.Transform.Steps)
	assert.Equal(t, 64, cfg.Sample.Count)
	assert.Equal(t, 2, cfg.Sample.Dims)
	assert.Equal(t, uint64(5), cfg.Sample.Seed)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := newViper("")
	require.NoError(t, err)
	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Transform.Workers)
	assert.Empty(t, cfg.Transform.Steps)
	assert.Equal(t, 1000, cfg.Sample.Count)
	assert.Equal(t, 3, cfg.Sample.Dims)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PVECTOR_SAMPLE_DIMS", "2")
	t.Setenv("PVECTOR_TRANSFORM_WORKERS", "9")

	v, err := newViper("")
	require.NoError(t, err)
	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Sample.Dims)
	assert.Equal(t, 9, cfg.Transform.Workers)
}

func TestLoadConfigEnvOutputs(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PVECTOR_TRANSFORM_OUTPUT", "from-env")
	t.Setenv("PVECTOR_SAMPLE_OUTPUT", "samples.obj")
	t.Setenv("PVECTOR_TRANSFORM_SEED", "42")

	v, err := newViper("")
	require.NoError(t, err)
	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Transform.Output)
	assert.Equal(t, "samples.obj", cfg.Sample.Output)
	assert.Equal(t, uint64(42), cfg.Transform.Seed)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := newViper(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"format":  "log:\n  format: xml\n",
		"workers": "transform:\n  workers: 0\n",
		"dims":    "sample:\n  dims: 4\n",
		"count":   "sample:\n  count: -1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pvector.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))

			v, err := newViper(path)
			require.NoError(t, err)
			_, err = loadConfig(v)
			assert.Error(t, err)
		})
	}
}
