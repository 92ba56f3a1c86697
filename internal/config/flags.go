package config

import (
	"flag"
	"os"

	"github.com/avidalv/passvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-f string   path to the vault store file
//	-l string   log level (debug, info, warn, error)
//	-n int      administrator login attempts
//
// Only the flags listed here are parsed; os.Args is filtered through
// flagx.FilterArgs so flags owned by other components are left alone.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-l", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataFile, "f", cfg.DataFile, "path to the vault store file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.IntVar(&cfg.MaxLoginAttempts, "n", cfg.MaxLoginAttempts, "administrator login attempts")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
