// Package discover walks a directory tree and reduces the archive files it
// finds to one representative path per logical archive, collapsing
// multi-volume sets along the way.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory marks an invalid scan root. Callers treat it as fatal: no
// partial scan is attempted.
var ErrNotDirectory = errors.New("not a directory")

// Options adjusts the tree walk.
type Options struct {
	// ExcludeDirs lists directory names that are skipped wholesale during the
	// walk. Names are matched against the entry name, not the full path.
	ExcludeDirs []string
}

// Scan walks root and returns one representative path per logical archive,
// sorted by path. Plain archives represent themselves; multi-volume sets are
// collapsed to a single volume each: the first volume for 7z sets, the
// terminal .zip (falling back to the first fragment) for ZIP sets.
func Scan(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
		}
		return nil, fmt.Errorf("stat scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	excluded := make(map[string]struct{}, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		if name = strings.TrimSpace(name); name != "" {
			excluded[name] = struct{}{}
		}
	}

	groups := newVolumeGroups()
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := excluded[d.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		groups.add(path)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", root, walkErr)
	}

	return groups.representatives(), nil
}
