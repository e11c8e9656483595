package logging

import (
	"context"
	"log/slog"

	"archivecheck/internal/services"
)

// Field keys shared by every subsystem so log lines stay greppable.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldArchive   = "archive"
)

// ContextFields extracts the run-scoped attrs carried by ctx: the check-run
// identifier and, inside a worker, the archive being verified.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	var fields []slog.Attr
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, String(FieldRunID, id))
	}
	if path, ok := services.ArchiveFromContext(ctx); ok {
		fields = append(fields, String(FieldArchive, path))
	}
	return fields
}

// WithContext returns logger augmented with ContextFields(ctx). A nil logger
// falls back to the nop logger so call sites need no guard.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(asArgs(fields)...)
}
