// Package filex contains small filesystem helpers shared by the store and
// configuration layers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the parent directory of path (mode 0700) if it
// does not exist yet and returns it. Used to bootstrap the vault directory
// before the first save.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
