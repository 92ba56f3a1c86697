// Package config loads runtime configuration for the passvault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables (PASSVAULT_*), with optional .env file support.
//  4. Command-line flags (-f, -l, -n), which override everything else.
//
// The store location override (PASSVAULT_DATA / -f / data_file) is the one
// external knob the vault core depends on; everything else is presentation
// and logging detail.
//
// # JSON schema
//
//	{
//	  "data_file": "/home/user/.passvault/passvault.json",
//	  "log_level": "info",
//	  "max_login_attempts": 3
//	}
package config
