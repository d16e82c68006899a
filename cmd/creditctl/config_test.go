package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	_ = cfg

	cfg, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "hive", cfg.Asset)
	assert.Equal(t, uint64(100), cfg.FeeBps)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creditctl.toml")
	require.NoError(t, os.WriteFile(path, []byte("asset = \"hbd\"\nfee_bps = 250\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "hbd", cfg.Asset)
	assert.Equal(t, uint64(250), cfg.FeeBps)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creditctl.toml")
	require.NoError(t, os.WriteFile(path, []byte("asset = [broken"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}
