package services

import (
	"errors"
	"fmt"
	"strings"

	"archivecheck/internal/archive"
)

var (
	ErrExternalTool  = errors.New("external tool error")
	ErrCorrupt       = errors.New("archive corrupt")
	ErrFormat        = errors.New("archive format error")
	ErrIO            = errors.New("i/o error")
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
	ErrTimeout       = errors.New("timeout")
	ErrUnsupported   = errors.New("unsupported archive")
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later outcome classification. The marker should
// be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FailureOutcome maps a verification error to the outcome recorded for that
// archive. Corruption and format errors mean the archive was examined and
// rejected; every other failure means the check itself could not run.
func FailureOutcome(err error) archive.Outcome {
	if err == nil {
		return archive.OutcomeValid
	}
	switch {
	case errors.Is(err, ErrCorrupt), errors.Is(err, ErrFormat):
		return archive.OutcomeInvalid
	default:
		return archive.OutcomeUnverifiable
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
