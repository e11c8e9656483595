package deps

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func writeStub(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

func TestResolveSevenZipProbesCandidates(t *testing.T) {
	binDir := t.TempDir()
	want := writeStub(t, binDir, "7zz")
	t.Setenv("PATH", binDir)

	path, err := ResolveSevenZip("")
	if err != nil {
		t.Fatalf("ResolveSevenZip: %v", err)
	}
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}
}

func TestResolveSevenZipPrefersEarlierCandidate(t *testing.T) {
	binDir := t.TempDir()
	want := writeStub(t, binDir, "7z")
	writeStub(t, binDir, "7zz")
	t.Setenv("PATH", binDir)

	path, err := ResolveSevenZip("")
	if err != nil {
		t.Fatalf("ResolveSevenZip: %v", err)
	}
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}
}

func TestResolveSevenZipExplicitOverride(t *testing.T) {
	binDir := t.TempDir()
	writeStub(t, binDir, "7z")
	explicit := writeStub(t, binDir, "custom-7z")
	t.Setenv("PATH", binDir)

	path, err := ResolveSevenZip(explicit)
	if err != nil {
		t.Fatalf("ResolveSevenZip: %v", err)
	}
	if path != explicit {
		t.Fatalf("expected %s, got %s", explicit, path)
	}
}

func TestResolveSevenZipNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := ResolveSevenZip("")
	if err == nil {
		t.Fatal("expected error when no candidate is installed")
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Fatalf("expected exec.ErrNotFound, got %v", err)
	}
}

func TestCheckSevenZipReportsMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	status := CheckSevenZip("")
	if status.Available {
		t.Fatal("expected 7-Zip to be unavailable")
	}
	if status.Detail == "" {
		t.Fatal("expected detail message when 7-Zip is unavailable")
	}
	if !status.Optional {
		t.Fatal("expected 7-Zip requirement to be optional")
	}
}

func TestCheckSevenZipReportsResolvedPath(t *testing.T) {
	binDir := t.TempDir()
	want := writeStub(t, binDir, "7za")
	t.Setenv("PATH", binDir)

	status := CheckSevenZip("")
	if !status.Available {
		t.Fatalf("expected 7-Zip to be available, got detail %q", status.Detail)
	}
	if status.Command != want {
		t.Fatalf("expected command %q, got %q", want, status.Command)
	}
}
