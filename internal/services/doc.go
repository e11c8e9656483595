// Package services defines shared utilities consumed by the verification
// pipeline and external tool integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and archive paths for
//     logging and tracing.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent verification outcomes (invalid vs unverifiable).
//
// Use these helpers when wiring new verification logic so operational
// behaviour (error handling, observability) stays uniform across a run.
package services
