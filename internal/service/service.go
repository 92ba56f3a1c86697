package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avidalv/passvault/internal/common"
	"github.com/avidalv/passvault/internal/cryptox"
	"github.com/avidalv/passvault/internal/logging"
	"github.com/avidalv/passvault/internal/models"
)

// Store is the persistence surface the vault service needs. The file-backed
// implementation lives in internal/store.
type Store interface {
	Load(ctx context.Context) ([]models.Entry, error)
	Save(ctx context.Context, entries []models.Entry) error
	EnsureInitialized(ctx context.Context, secret []byte) error
}

// ListedEntry is one row of a vault listing: the stored entry plus its
// decrypted password, or the per-row decryption failure when the ciphertext
// does not decode under the supplied secret.
type ListedEntry struct {
	Entry    models.Entry
	Password string
	Err      error
}

// Vault is the stateless façade binding the store and the entry model into
// the operations the presentation layer calls. Every operation is atomic at
// the file level: full load, mutate in memory, full save. The session secret
// is passed explicitly to each call that touches ciphertext; it is never
// retained here.
type Vault struct {
	store Store
	log   logging.Logger
}

func New(store Store, log logging.Logger) *Vault {
	return &Vault{store: store, log: log}
}

// Init bootstraps the store for a fresh session, running the one-time legacy
// migration when needed.
func (v *Vault) Init(ctx context.Context, secret []byte) error {
	return v.store.EnsureInitialized(ctx, secret)
}

// Add validates, encrypts, and appends a new credential.
func (v *Vault) Add(ctx context.Context, site, username, password string, secret []byte) error {
	entry, err := models.NewEntry(site, username, password, secret)
	if err != nil {
		return err
	}

	entries := v.loadFailOpen(ctx)
	entries = append(entries, *entry)
	return v.store.Save(ctx, entries)
}

// List returns every entry together with its decrypted password. A row whose
// ciphertext fails to decode under secret carries the failure in Err; it
// does not abort the rest of the listing.
//
// When the store file itself is unreadable the listing is empty and the
// returned error wraps common.ErrorStorageCorrupt. That error is a warning:
// the vault behaves as empty, so callers can keep operating.
func (v *Vault) List(ctx context.Context, secret []byte) ([]ListedEntry, error) {
	entries, err := v.store.Load(ctx)
	if err != nil {
		v.log.Warn(ctx, "store unreadable, listing empty vault", "error", err)
		return []ListedEntry{}, err
	}

	listed := make([]ListedEntry, 0, len(entries))
	for _, e := range entries {
		row := ListedEntry{Entry: e}
		row.Password, row.Err = cryptox.DecryptPassword(e.PasswordEncrypted, secret)
		listed = append(listed, row)
	}
	return listed, nil
}

// Edit updates the entry at index. Empty arguments keep the current values;
// a non-empty password recomputes hash and ciphertext together. An index out
// of range reports common.ErrorNotFound without writing.
func (v *Vault) Edit(ctx context.Context, index int, newSite, newUsername, newPassword string, secret []byte) (models.Entry, error) {
	entries := v.loadFailOpen(ctx)
	if index < 0 || index >= len(entries) {
		return models.Entry{}, fmt.Errorf("entry %d: %w", index, common.ErrorNotFound)
	}

	entry := &entries[index]
	entry.UpdateIdentity(newSite, newUsername)
	if newPassword != "" {
		if err := entry.UpdatePassword(newPassword, secret); err != nil {
			return models.Entry{}, err
		}
	}

	if err := v.store.Save(ctx, entries); err != nil {
		return models.Entry{}, err
	}
	return *entry, nil
}

// Remove deletes the entry at index and returns it. An index out of range
// reports common.ErrorNotFound and leaves the store file untouched.
func (v *Vault) Remove(ctx context.Context, index int) (models.Entry, error) {
	entries := v.loadFailOpen(ctx)
	if index < 0 || index >= len(entries) {
		return models.Entry{}, fmt.Errorf("entry %d: %w", index, common.ErrorNotFound)
	}

	removed := entries[index]
	entries = append(entries[:index], entries[index+1:]...)
	if err := v.store.Save(ctx, entries); err != nil {
		return models.Entry{}, err
	}
	return removed, nil
}

// loadFailOpen loads the vault, degrading a corrupt store file to an empty
// vault with a warning instead of blocking the operation.
func (v *Vault) loadFailOpen(ctx context.Context) []models.Entry {
	entries, err := v.store.Load(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorStorageCorrupt) {
			v.log.Warn(ctx, "store unreadable, continuing with empty vault", "error", err)
			return []models.Entry{}
		}
		v.log.Error(ctx, "unexpected load failure", "error", err)
		return []models.Entry{}
	}
	return entries
}
