package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// StubBinaries writes exit-zero stub executables for the provided names into
// a fresh directory and prepends it to PATH for the duration of the test.
// The directory is returned so callers can add richer stubs next to them.
func StubBinaries(t *testing.T, names ...string) string {
	t.Helper()

	binDir := t.TempDir()
	for _, name := range names {
		StubBinary(t, binDir, name, "#!/bin/sh\nexit 0\n")
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return binDir
}

// StubBinary writes a single executable script under dir and returns its path.
func StubBinary(t testing.TB, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}
