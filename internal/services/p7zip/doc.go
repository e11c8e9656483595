// Package p7zip mediates access to the 7-Zip CLI used for archive testing.
//
// It normalizes command invocation, captures tool output for diagnostics, and
// exposes a testable interface for the verification dispatcher. Multi-volume
// archives can only be tested here: the tool re-joins volumes itself, a
// capability the embedded decoders lack.
//
// Prefer this package over ad-hoc exec.Command usage when interacting with
// 7-Zip so timeout handling and outcome classification remain consistent.
package p7zip
