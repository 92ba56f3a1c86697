package main

import (
	"context"
	"fmt"
	"os"

	"github.com/avidalv/passvault/internal/cli"
	"github.com/avidalv/passvault/internal/config"
	"github.com/avidalv/passvault/internal/logging"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "passvault:", err)
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	app := cli.NewApp(cfg, logger)
	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "session ended with error", "error", err)
		return err
	}
	return nil
}
