package config

import (
	"encoding/json"
	"os"

	"github.com/avidalv/passvault/internal/flagx"
)

// parseJSON overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (see
// flagx.JSONConfigFlags); when neither is given, nothing is loaded. Only
// keys present in the file override earlier values. Read or unmarshal errors
// panic; configuration is resolved before anything else runs.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc struct {
		DataFile         *string `json:"data_file"`
		LogLevel         *string `json:"log_level"`
		MaxLoginAttempts *int    `json:"max_login_attempts"`
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataFile != nil {
		cfg.DataFile = *jc.DataFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.MaxLoginAttempts != nil {
		cfg.MaxLoginAttempts = *jc.MaxLoginAttempts
	}
}
