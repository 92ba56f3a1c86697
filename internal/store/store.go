package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/avidalv/passvault/internal/common"
	"github.com/avidalv/passvault/internal/filex"
	"github.com/avidalv/passvault/internal/logging"
	"github.com/avidalv/passvault/internal/models"
)

// FileStore persists the full vault as a pretty-printed JSON array of
// records at a single injected path. It holds no state between calls; every
// operation reads or rewrites the whole file.
type FileStore struct {
	path string
	log  logging.Logger
}

// New binds a FileStore to the given file path.
func New(path string, log logging.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Path returns the store file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads all entries from the store file.
//
// A missing file yields an empty vault and no error. A file that exists but
// cannot be parsed yields an empty vault plus an error wrapping
// common.ErrorStorageCorrupt; callers are expected to fail open (treat the
// vault as empty) and surface the error as a warning.
func (s *FileStore) Load(ctx context.Context) ([]models.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Entry{}, nil
		}
		return []models.Entry{}, fmt.Errorf("reading %s: %v: %w", s.path, err, common.ErrorStorageCorrupt)
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return []models.Entry{}, fmt.Errorf("parsing %s: %v: %w", s.path, err, common.ErrorStorageCorrupt)
	}

	entries := make([]models.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, models.FromRecord(r))
	}
	return entries, nil
}

// Save rewrites the store file with the full entry sequence. The content is
// written to a uniquely named temporary file in the same directory and
// renamed into place, so a partially written store is never observable.
func (s *FileStore) Save(ctx context.Context, entries []models.Entry) error {
	records := make([]models.Record, 0, len(entries))
	for i := range entries {
		records = append(records, entries[i].ToRecord())
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing vault: %w", err)
	}
	data = append(data, '\n')

	if _, err := filex.EnsureParentDir(s.path); err != nil {
		return err
	}

	tmp := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp-"+uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}

	s.log.Debug(ctx, "vault saved", "path", s.path, "entries", len(entries))
	return nil
}
