package logging_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"archivecheck/internal/config"
	"archivecheck/internal/logging"
	"archivecheck/internal/services"
)

func newFileLogger(t *testing.T, opts logging.Options) (*slog.Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	opts.OutputPaths = []string{path}
	logger, err := logging.New(opts)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return logger, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(data)
}

func TestConsoleFormatSingleLine(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Level: "info", Format: "console"})

	component := logging.NewComponentLogger(logger, "checker")
	component.Info("run complete",
		logging.Int("passed", 3),
		logging.Error(errors.New("boom: failed")))

	contents := readLog(t, path)
	if !strings.Contains(contents, " INFO checker: run complete") {
		t.Fatalf("expected component-prefixed message, got %q", contents)
	}
	if !strings.Contains(contents, "passed=3") {
		t.Fatalf("expected passed attribute, got %q", contents)
	}
	if !strings.Contains(contents, `error="boom: failed"`) {
		t.Fatalf("expected quoted error attribute, got %q", contents)
	}
	if strings.Contains(contents, "component=") {
		t.Fatalf("component should render as prefix, not attribute: %q", contents)
	}
	if strings.Count(contents, "\n") != 1 {
		t.Fatalf("expected exactly one line, got %q", contents)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Level: "info", Format: "console"})
	logger.Info("message without caller")

	if contents := readLog(t, path); strings.Contains(contents, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", contents)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Level: "debug", Format: "console"})
	logger.Info("message with caller")

	if contents := readLog(t, path); !strings.Contains(contents, ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", contents)
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Level: "chatty", Format: "console"})
	logger.Debug("hidden")
	logger.Info("visible")

	contents := readLog(t, path)
	if strings.Contains(contents, "hidden") {
		t.Fatalf("debug record should be suppressed, got %q", contents)
	}
	if !strings.Contains(contents, "visible") {
		t.Fatalf("info record should be emitted, got %q", contents)
	}
}

func TestJSONFormat(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Level: "info", Format: "json"})
	logger.Info("structured", logging.String("archive", "/data/set.7z"))

	line := strings.TrimSpace(readLog(t, path))
	var record map[string]any
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		t.Fatalf("unmarshal log line %q: %v", line, err)
	}
	if record["msg"] != "structured" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["level"] != "info" {
		t.Fatalf("unexpected level: %v", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatal("expected ts field")
	}
	if record["archive"] != "/data/set.7z" {
		t.Fatalf("unexpected archive field: %v", record["archive"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsRunFields(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Level: "info", Format: "console"})

	ctx := services.WithRunID(context.Background(), "run-42")
	ctx = services.WithArchive(ctx, "/data/backup.zip")
	logging.WithContext(ctx, logger).Info("checking")

	contents := readLog(t, path)
	if !strings.Contains(contents, "run_id=run-42") {
		t.Fatalf("expected run_id field, got %q", contents)
	}
	if !strings.Contains(contents, "archive=/data/backup.zip") {
		t.Fatalf("expected archive field, got %q", contents)
	}
}

func TestWithContextWithoutFieldsReturnsLogger(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Level: "info", Format: "console"})
	logging.WithContext(context.Background(), logger).Info("plain")

	contents := readLog(t, path)
	if strings.Contains(contents, "run_id=") || strings.Contains(contents, "archive=") {
		t.Fatalf("expected no context fields, got %q", contents)
	}
}

func TestNewFromConfigAppendsToConfiguredFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Path = filepath.Join(t.TempDir(), "logs", "archivecheck.log")

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Warn("tool missing")

	contents := readLog(t, cfg.Logging.Path)
	if !strings.Contains(contents, "WARN") || !strings.Contains(contents, "tool missing") {
		t.Fatalf("expected warning in log file, got %q", contents)
	}
}

func TestNewFromConfigNilUsesDefaults(t *testing.T) {
	logger, err := logging.NewFromConfig(nil)
	if err != nil {
		t.Fatalf("NewFromConfig(nil) returned error: %v", err)
	}
	if logger == nil {
		t.Fatal("expected usable logger")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("goes nowhere", logging.Error(errors.New("ignored")))
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should report disabled")
	}
}
