package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/avidalv/passvault/internal/auth"
	"github.com/avidalv/passvault/internal/common"
	"github.com/avidalv/passvault/internal/config"
	"github.com/avidalv/passvault/internal/logging"
	"github.com/avidalv/passvault/internal/service"
	"github.com/avidalv/passvault/internal/store"
)

// App owns the interactive session: configuration, the vault service, the
// authenticator, and the session secret held only in memory between login
// and exit.
type App struct {
	config *config.Config
	vault  *service.Vault
	auth   *auth.Authenticator
	secret []byte
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp wires the vault stack: file store at the configured path, vault
// service on top, authenticator, and stdin/stdout for the terminal.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	st := store.New(cfg.DataFile, log)
	return &App{
		config: cfg,
		vault:  service.New(st, log),
		auth:   auth.New(log),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		log:    log,
	}
}

// Run drives one session: administrator login, store bootstrap (including
// the one-time legacy migration), then the command loop. It returns
// common.ErrorAuthExhausted when no session secret could be established.
// The secret is wiped before Run returns.
func (a *App) Run(ctx context.Context) error {
	if err := a.login(ctx); err != nil {
		return err
	}
	defer func() {
		common.WipeByteArray(a.secret)
		a.secret = nil
	}()

	if err := a.vault.Init(ctx, a.secret); err != nil {
		a.log.Error(ctx, "store bootstrap failed", "error", err)
		return err
	}

	runREPL(ctx, a, a.reader, a.out)
	return nil
}
