package output

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// Writer persists a rendered document to a destination
type Writer interface {
	WriteFile(path, content string) error
}

// File writes documents to the local filesystem
type File struct{}

func (File) WriteFile(path, content string) error {
	return WriteFile(path, content)
}

// WriteFile replaces the file at path with content encoded as UTF-8.
// An advisory lock under the temp dir keeps two runs from interleaving writes to the same file.
// The file is closed on every path and the first error is returned.
func WriteFile(path, content string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	lock := flock.New(lockPath(path))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil && err == nil {
			err = fmt.Errorf("failed to unlock %s: %w", path, unlockErr)
		}
	}()

	//truncate only once we own the lock
	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", path, err)
	}
	if _, err := f.WriteString(strings.ToValidUTF8(content, "�")); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	return nil
}

// lockPath names the lock file for path, keyed by its absolute form so
// relative and absolute spellings of one file share a lock.
func lockPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	sum := sha256.Sum256([]byte(path))
	return filepath.Join(os.TempDir(), "posting-cleaner-"+hex.EncodeToString(sum[:8])+".lock")
}
