package cli

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avidalv/passvault/internal/auth"
	"github.com/avidalv/passvault/internal/common"
	"github.com/avidalv/passvault/internal/config"
	"github.com/avidalv/passvault/internal/logging"
	"github.com/avidalv/passvault/internal/service"
	"github.com/avidalv/passvault/internal/store"
)

// newTestApp builds an App wired to a temp store, scripted stdin and a
// capture buffer instead of the real terminal.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{
		DataFile:         filepath.Join(t.TempDir(), "vault.json"),
		LogLevel:         "info",
		MaxLoginAttempts: 3,
	}
	var out bytes.Buffer
	st := store.New(cfg.DataFile, logging.Nop{})
	return &App{
		config: cfg,
		vault:  service.New(st, logging.Nop{}),
		auth:   auth.New(logging.Nop{}),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
		log:    logging.Nop{},
	}, &out
}

func TestRun_FullSession(t *testing.T) {
	// Login, add a credential, list it, then exit. Password reads are
	// scripted through the terminal seam: one for login, one for add.
	input := strings.Join([]string{
		"admin",       // login username
		"add",         // command
		"example.com", // site
		"alice",       // username
		"list",        // command
		"",            // sort option: keep order
		"",            // filter: keep all
		"exit",
	}, "\n") + "\n"
	stubPasswords(t, "1234", "hunter2")

	app, out := newTestApp(t, input)
	require.NoError(t, app.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Access granted.")
	assert.Contains(t, text, "Credential stored.")
	assert.Contains(t, text, "example.com")
	assert.Contains(t, text, "alice")
	assert.Contains(t, text, "hunter2")
	assert.Contains(t, text, "Bye!")

	assert.Nil(t, app.secret, "session secret must be wiped after Run")

	entries, err := store.New(app.config.DataFile, logging.Nop{}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "example.com", entries[0].Site)
}

func TestRun_RetryThenSuccess(t *testing.T) {
	input := "admin\nadmin\nexit\n"
	stubPasswords(t, "wrong", "1234")

	app, out := newTestApp(t, input)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Invalid credentials.")
	assert.Contains(t, out.String(), "Access granted.")
}

func TestRun_AuthExhausted(t *testing.T) {
	input := "admin\nadmin\nadmin\n"
	stubPasswords(t, "nope", "nope", "nope")

	app, out := newTestApp(t, input)
	err := app.Run(context.Background())
	require.ErrorIs(t, err, common.ErrorAuthExhausted)
	assert.Contains(t, out.String(), "Login attempts exhausted.")
}

func TestEditCommand_UpdatesSite(t *testing.T) {
	// Seed one credential, then edit only the site through the prompts.
	seed, _ := newTestApp(t, "")
	seed.secret = []byte("1234")
	require.NoError(t, seed.vault.Init(context.Background(), seed.secret))
	require.NoError(t, seed.vault.Add(context.Background(), "old.com", "bob", "pw", seed.secret))

	input := strings.Join([]string{
		"1",       // select the only record
		"new.com", // new site
		"",        // keep username
	}, "\n") + "\n"
	stubPasswords(t, "") // empty password keeps the old one

	app, out := newTestApp(t, input)
	app.config.DataFile = seed.config.DataFile
	app.vault = seed.vault
	app.secret = []byte("1234")

	require.NoError(t, app.Edit(context.Background()))
	assert.Contains(t, out.String(), "Credential updated.")

	listed, err := app.vault.List(context.Background(), app.secret)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "new.com", listed[0].Entry.Site)
	assert.Equal(t, "bob", listed[0].Entry.Username)
	assert.Equal(t, "pw", listed[0].Password)
}

func TestDeleteCommand_RemovesEntry(t *testing.T) {
	seed, _ := newTestApp(t, "")
	seed.secret = []byte("1234")
	require.NoError(t, seed.vault.Init(context.Background(), seed.secret))
	require.NoError(t, seed.vault.Add(context.Background(), "gone.com", "bob", "pw", seed.secret))

	app, out := newTestApp(t, "1\n")
	app.vault = seed.vault
	app.secret = []byte("1234")

	require.NoError(t, app.Delete(context.Background()))
	assert.Contains(t, out.String(), "Removed credential for gone.com (bob).")

	listed, err := app.vault.List(context.Background(), app.secret)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestDeleteCommand_CancelKeepsEntry(t *testing.T) {
	seed, _ := newTestApp(t, "")
	seed.secret = []byte("1234")
	require.NoError(t, seed.vault.Init(context.Background(), seed.secret))
	require.NoError(t, seed.vault.Add(context.Background(), "keep.com", "bob", "pw", seed.secret))

	app, _ := newTestApp(t, "0\n")
	app.vault = seed.vault
	app.secret = []byte("1234")

	require.NoError(t, app.Delete(context.Background()))

	listed, err := app.vault.List(context.Background(), app.secret)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
