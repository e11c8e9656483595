// Package runlock enforces one concurrent check per scan root. Scheduled runs
// can overlap when a tree is large; the advisory lock makes the second run
// fail fast instead of doubling the I/O load.
package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld reports that another process already holds the lock for a root.
var ErrHeld = errors.New("another check is already running for this directory")

// Lock is an advisory file lock scoped to one scan root.
type Lock struct {
	path string
	lock *flock.Flock
}

// Acquire takes the advisory lock for root, failing fast when another process
// already holds it. Roots are resolved to absolute paths first so different
// spellings of the same directory contend for the same lock. The lock file
// lives in the system temp directory and carries no data.
func Acquire(root string) (*Lock, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve lock root: %w", err)
	}

	path := lockPath(abs)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHeld, abs)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock. The file stays behind; flock semantics make a
// leftover file harmless.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}

func lockPath(root string) string {
	sum := sha256.Sum256([]byte(root))
	return filepath.Join(os.TempDir(), fmt.Sprintf("archivecheck-%s.lock", hex.EncodeToString(sum[:8])))
}
