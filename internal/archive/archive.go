// Package archive defines the vocabulary shared by discovery, verification,
// and reporting: archive kinds, verification outcomes, and per-archive results.
package archive

import "time"

// Kind classifies a representative path by format and volume layout.
type Kind string

const (
	KindPlain7z  Kind = "7z"
	KindSplit7z  Kind = "7z-split"
	KindPlainZip Kind = "zip"
	KindSplitZip Kind = "zip-split"
	KindUnknown  Kind = "unknown"
)

// Split reports whether the kind names a multi-volume archive. Split archives
// can only be verified by the external tool, which re-joins volumes itself.
func (k Kind) Split() bool {
	return k == KindSplit7z || k == KindSplitZip
}

// Outcome is the result of verifying a single archive.
type Outcome string

const (
	// OutcomeValid: the archive was checked and is intact.
	OutcomeValid Outcome = "valid"
	// OutcomeInvalid: the archive was checked and found corrupted or malformed.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeUnverifiable: the archive could not be checked at all (missing
	// external tool, I/O error, unknown format, or timeout).
	OutcomeUnverifiable Outcome = "unverifiable"
)

// Passed reports whether the outcome counts toward the passed total.
func (o Outcome) Passed() bool {
	return o == OutcomeValid
}

// Result captures the verification of one representative archive path.
type Result struct {
	Path    string
	Kind    Kind
	Outcome Outcome
	// Detail carries the diagnostic for non-valid outcomes: decoder error,
	// tool output excerpt, or an install hint when the tool is missing.
	Detail  string
	Elapsed time.Duration
}
