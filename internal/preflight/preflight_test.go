package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"archivecheck/internal/config"
	"archivecheck/internal/deps"
	"archivecheck/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckSevenZipTool_Found(t *testing.T) {
	binDir := t.TempDir()
	want := testsupport.StubBinary(t, binDir, "7z", "#!/bin/sh\nexit 0\n")
	t.Setenv("PATH", binDir)

	cfg := config.Default()
	result := CheckSevenZipTool(&cfg)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if result.Detail != want {
		t.Fatalf("expected resolved path %q, got %q", want, result.Detail)
	}
}

func TestCheckSevenZipTool_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	cfg := config.Default()
	result := CheckSevenZipTool(&cfg)
	if result.Passed {
		t.Fatal("expected failure when no 7-Zip binary is installed")
	}
	if !result.Optional {
		t.Fatal("expected tool check to be optional")
	}
	if result.Detail != deps.SevenZipInstallHint {
		t.Fatalf("expected install hint, got: %s", result.Detail)
	}
}

func TestCheckSystemDeps(t *testing.T) {
	binDir := t.TempDir()
	want := testsupport.StubBinary(t, binDir, "7zz", "#!/bin/sh\nexit 0\n")
	t.Setenv("PATH", binDir)

	cfg := config.Default()
	statuses := CheckSystemDeps(&cfg)
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}
	if !statuses[0].Available {
		t.Fatalf("expected 7-Zip to be available, got: %s", statuses[0].Detail)
	}
	if statuses[0].Command != want {
		t.Fatalf("unexpected command: %s", statuses[0].Command)
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	results := RunAll(nil, t.TempDir())
	if results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll_ReportsRootAndTool(t *testing.T) {
	binDir := t.TempDir()
	testsupport.StubBinary(t, binDir, "7z", "#!/bin/sh\nexit 0\n")
	t.Setenv("PATH", binDir)

	cfg := config.Default()
	results := RunAll(&cfg, t.TempDir())
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("check %q failed: %s", r.Name, r.Detail)
		}
	}
	if results[0].Name != "Scan root" || results[1].Name != "7-Zip" {
		t.Fatalf("unexpected check names: %q, %q", results[0].Name, results[1].Name)
	}
}

func TestRunAll_MissingToolIsOptional(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	cfg := config.Default()
	results := RunAll(&cfg, t.TempDir())
	var tool Result
	for _, r := range results {
		if r.Name == "7-Zip" {
			tool = r
		}
	}
	if tool.Name == "" {
		t.Fatal("expected 7-Zip check in results")
	}
	if tool.Passed {
		t.Fatal("expected failure when no 7-Zip binary is installed")
	}
	if !tool.Optional {
		t.Fatal("expected 7-Zip check to be optional")
	}
}
