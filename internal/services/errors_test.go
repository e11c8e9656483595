package services_test

import (
	"errors"
	"strings"
	"testing"

	"archivecheck/internal/archive"
	"archivecheck/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "p7zip", "test", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"p7zip", "test", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestFailureOutcomeMapping(t *testing.T) {
	corruptErr := services.Wrap(services.ErrCorrupt, "verify", "read", "checksum mismatch", nil)
	if outcome := services.FailureOutcome(corruptErr); outcome != archive.OutcomeInvalid {
		t.Fatalf("expected invalid for corruption, got %s", outcome)
	}

	formatErr := services.Wrap(services.ErrFormat, "verify", "open", "bad signature", errors.New("io"))
	if outcome := services.FailureOutcome(formatErr); outcome != archive.OutcomeInvalid {
		t.Fatalf("expected invalid for format error, got %s", outcome)
	}

	timeoutErr := services.Wrap(services.ErrTimeout, "p7zip", "test", "deadline", nil)
	if outcome := services.FailureOutcome(timeoutErr); outcome != archive.OutcomeUnverifiable {
		t.Fatalf("expected unverifiable for timeout, got %s", outcome)
	}

	missingErr := services.Wrap(services.ErrNotFound, "p7zip", "resolve", "no binary", nil)
	if outcome := services.FailureOutcome(missingErr); outcome != archive.OutcomeUnverifiable {
		t.Fatalf("expected unverifiable for missing tool, got %s", outcome)
	}

	ioErr := services.Wrap(services.ErrIO, "verify", "open", "permission denied", nil)
	if outcome := services.FailureOutcome(ioErr); outcome != archive.OutcomeUnverifiable {
		t.Fatalf("expected unverifiable for i/o error, got %s", outcome)
	}

	if outcome := services.FailureOutcome(nil); outcome != archive.OutcomeValid {
		t.Fatalf("expected valid for nil error, got %s", outcome)
	}
}
