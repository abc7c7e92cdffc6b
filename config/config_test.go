package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobysharp/btcdev/params"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "btcdev.conf")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, rest, err := Load([]string{"ec-new"})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, []string{"ec-new"}, rest)
	assert.Equal(t, &params.MainNetParams, cfg.Net())
}

func TestLoadFileAndPrecedence(t *testing.T) {
	path := writeConfig(t, "[Application Options]\nnetwork=testnet\ndebuglevel=debug\ndetails=true\n")

	cfg, _, err := Load([]string{"--configfile", path})
	require.NoError(t, err)
	assert.Equal(t, "testnet", cfg.Network)
	assert.Equal(t, "debug", cfg.DebugLevel)
	assert.True(t, cfg.Details)

	cfg, _, err = Load([]string{"-C", path, "--network", "regnet"})
	require.NoError(t, err)
	assert.Equal(t, "regnet", cfg.Network)
	assert.Equal(t, "debug", cfg.DebugLevel)
}

func TestLoadErrors(t *testing.T) {
	_, _, err := Load([]string{"--network", "simnet"})
	assert.Error(t, err)

	_, _, err = Load([]string{"--debuglevel", "loud"})
	assert.Error(t, err)

	_, _, err = Load([]string{"--configfile", filepath.Join(t.TempDir(), "missing.conf")})
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	cfg := Default()
	require.NoError(t, ParseFile(cfg, writeConfig(t, "[Application Options]\nmetrics=true\n")))
	assert.True(t, cfg.Metrics)
	assert.Error(t, ParseFile(cfg, filepath.Join(t.TempDir(), "missing.conf")))
}

func TestApply(t *testing.T) {
	defer func() { params.ActiveNetParams = &params.MainNetParams }()
	cfg := Default()
	cfg.Network = "testnet"
	require.NoError(t, cfg.Apply())
	assert.Equal(t, &params.TestNetParams, params.ActiveNetParams)

	cfg.DebugLevel = "nope"
	assert.Error(t, cfg.Apply())
	require.NoError(t, Default().Apply())
}
