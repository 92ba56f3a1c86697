package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; variables
// already exported win over the file.
//
// Recognized variables (see the struct tags on Config):
//
//	PASSVAULT_DATA                path to the vault store file
//	PASSVAULT_LOG_LEVEL           zap level name
//	PASSVAULT_MAX_LOGIN_ATTEMPTS  login attempt limit
func parseEnv(cfg *Config) {
	_ = godotenv.Load()
	_ = env.Parse(cfg)
}
