package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the passvault CLI.
//
// Fields:
//   - DataFile: location of the JSON vault store.
//   - LogLevel: zap level name (debug, info, warn, error).
//   - MaxLoginAttempts: administrator login attempts before the session is
//     refused.
type Config struct {
	DataFile         string `env:"PASSVAULT_DATA" json:"data_file"`
	LogLevel         string `env:"PASSVAULT_LOG_LEVEL" json:"log_level"`
	MaxLoginAttempts int    `env:"PASSVAULT_MAX_LOGIN_ATTEMPTS" json:"max_login_attempts"`
}

// LoadDefaults populates c with sensible defaults. The vault lives under the
// user's home directory.
func (c *Config) LoadDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.DataFile = filepath.Join(home, ".passvault", "passvault.json")
	c.LogLevel = "info"
	c.MaxLoginAttempts = 3
}

// LoadConfig constructs a Config by layering sources, later ones taking
// precedence: defaults, then a JSON config file (if given via -c/-config),
// then environment variables, then command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
