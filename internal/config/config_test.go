package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "full", cfg.Unlambda.Profile)
	assert.Zero(t, cfg.Unlambda.MaxSteps)
	assert.False(t, cfg.Unlambda.Trace)
}

func TestLoadMissingPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDecodesTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unlambda.toml")
	contents := "[unlambda]\nprofile = \"minimal\"\nmax_steps = 5000\ntrace = true\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "minimal", cfg.Unlambda.Profile)
	assert.Equal(t, 5000, cfg.Unlambda.MaxSteps)
	assert.True(t, cfg.Unlambda.Trace)
}

func TestConfigTOMLRoundTrip(t *testing.T) {
	want := Config{Unlambda: Unlambda{Profile: "minimal", MaxSteps: 100, Trace: true}}

	var buf bytes.Buffer
	require.NoError(t, toml.NewEncoder(&buf).Encode(want))

	var got Config
	_, err := toml.Decode(buf.String(), &got)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
