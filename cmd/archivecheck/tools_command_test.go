package main

import (
	"encoding/json"
	"testing"

	"archivecheck/internal/testsupport"
)

func TestToolsReportsMissingTool(t *testing.T) {
	setupCommandEnv(t)

	stdout, _, err := runCLI(t, "tools", "--config", writeQuietConfig(t))
	if err != nil {
		t.Fatalf("tools: %v", err)
	}
	requireContains(t, stdout, "7-Zip")
	requireContains(t, stdout, "[WARN]")
	requireContains(t, stdout, "install 7-Zip")
}

func TestToolsReportsResolvedTool(t *testing.T) {
	setupCommandEnv(t)
	binDir := t.TempDir()
	want := testsupport.StubBinary(t, binDir, "7zz", "#!/bin/sh\nexit 0\n")
	t.Setenv("PATH", binDir)

	stdout, _, err := runCLI(t, "tools", "--config", writeQuietConfig(t))
	if err != nil {
		t.Fatalf("tools: %v", err)
	}
	requireContains(t, stdout, "[OK] Ready (command: "+want+")")
}

func TestToolsJSONOutput(t *testing.T) {
	setupCommandEnv(t)

	stdout, _, err := runCLI(t, "tools", "-o", "json", "--config", writeQuietConfig(t))
	if err != nil {
		t.Fatalf("tools: %v", err)
	}

	var statuses []struct {
		Name      string `json:"name"`
		Optional  bool   `json:"optional"`
		Available bool   `json:"available"`
		Detail    string `json:"detail"`
	}
	if err := json.Unmarshal([]byte(stdout), &statuses); err != nil {
		t.Fatalf("decode statuses: %v\noutput: %s", err, stdout)
	}
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}
	if statuses[0].Name != "7-Zip" || !statuses[0].Optional {
		t.Fatalf("unexpected status: %+v", statuses[0])
	}
	if statuses[0].Available {
		t.Fatal("expected 7-Zip to be unavailable with an empty PATH")
	}
	if statuses[0].Detail == "" {
		t.Fatal("expected a detail message for the missing tool")
	}
}
