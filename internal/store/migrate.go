package store

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/avidalv/passvault/internal/models"
)

// legacyFileName is the store name used by the old line-oriented format.
const legacyFileName = "password_manager.txt"

// EnsureInitialized bootstraps the store. It is idempotent: when the
// current-format file already exists it does nothing.
//
// Otherwise it looks for a legacy plain-text store (consecutive groups of
// three lines encoding site, username, and password). Each well-formed group
// is re-encrypted with the session secret and written to the new store; the
// legacy file is then renamed with a .bak suffix so migration runs at most
// once. Malformed trailing groups are skipped, not fatal. With no legacy
// file present an empty store is written.
func (s *FileStore) EnsureInitialized(ctx context.Context, secret []byte) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	}

	legacy := s.findLegacyFile()
	if legacy == "" {
		return s.Save(ctx, []models.Entry{})
	}

	entries, err := s.parseLegacyFile(ctx, legacy, secret)
	if err != nil {
		return err
	}

	if err := s.Save(ctx, entries); err != nil {
		return err
	}

	bak := legacy + ".bak"
	if err := os.Rename(legacy, bak); err != nil {
		s.log.Warn(ctx, "could not rename legacy store", "path", legacy, "error", err)
	} else {
		s.log.Info(ctx, "legacy store migrated", "from", legacy, "entries", len(entries))
	}
	return nil
}

// legacyCandidates returns possible locations of the old text store: the
// store path with a .txt extension, then the well-known name in the store
// directory and the working directory.
func (s *FileStore) legacyCandidates() []string {
	ext := filepath.Ext(s.path)
	candidates := []string{
		strings.TrimSuffix(s.path, ext) + ".txt",
		filepath.Join(filepath.Dir(s.path), legacyFileName),
	}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, legacyFileName))
	}
	return candidates
}

func (s *FileStore) findLegacyFile() string {
	seen := make(map[string]struct{})
	for _, c := range s.legacyCandidates() {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			return c
		}
	}
	return ""
}

// parseLegacyFile reads the old format: non-empty lines in groups of three
// (site, username, password), each optionally prefixed with a human-readable
// label before ": ". An incomplete trailing group is skipped.
func (s *FileStore) parseLegacyFile(ctx context.Context, path string, secret []byte) ([]models.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	entries := make([]models.Entry, 0, len(lines)/3)
	for i := 0; i+2 < len(lines); i += 3 {
		site := stripLabel(lines[i])
		username := stripLabel(lines[i+1])
		password := stripLabel(lines[i+2])

		e, err := models.NewEntry(site, username, password, secret)
		if err != nil {
			s.log.Warn(ctx, "skipping malformed legacy record", "line", i+1, "error", err)
			continue
		}
		entries = append(entries, *e)
	}
	return entries, nil
}

// stripLabel drops an optional "label: " prefix from a legacy line.
func stripLabel(line string) string {
	if idx := strings.Index(line, ": "); idx >= 0 {
		return line[idx+2:]
	}
	return line
}
