package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.True(t, strings.HasSuffix(c.DataFile, filepath.Join(".passvault", "passvault.json")))
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 3, c.MaxLoginAttempts)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.NotEmpty(t, cfg.DataFile)
	assert.Equal(t, 3, cfg.MaxLoginAttempts)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("PASSVAULT_DATA", "/tmp/vault.json")
	t.Setenv("PASSVAULT_MAX_LOGIN_ATTEMPTS", "5")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "/tmp/vault.json", cfg.DataFile)
	assert.Equal(t, 5, cfg.MaxLoginAttempts)
	assert.Equal(t, "info", cfg.LogLevel, "untouched fields keep their defaults")
}
