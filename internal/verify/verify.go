// Package verify classifies representative archive paths and dispatches each
// to the integrity check that can actually examine it: the embedded decoders
// for self-contained archives, the external 7-Zip tool for multi-volume sets
// and for containers the decoders reject.
package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"archivecheck/internal/archive"
	"archivecheck/internal/deps"
	"archivecheck/internal/logging"
	"archivecheck/internal/services"
	"archivecheck/internal/services/p7zip"
)

// defaultProbeLimit bounds the sibling search that distinguishes a standalone
// .zip from the terminal volume of a split set.
const defaultProbeLimit = 99

// Option configures the verifier.
type Option func(*Verifier)

// WithProbeLimit overrides how many .zNN sibling names are probed per archive.
func WithProbeLimit(limit int) Option {
	return func(v *Verifier) {
		if limit > 0 {
			v.probeLimit = limit
		}
	}
}

// WithLogger attaches a logger for per-archive diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Verifier) {
		if logger != nil {
			v.logger = logging.NewComponentLogger(logger, "verify")
		}
	}
}

// Verifier turns representative paths into verification results. It holds no
// per-archive state: every Verify call is independent, so callers may invoke
// it concurrently.
type Verifier struct {
	tool       p7zip.Tester
	probeLimit int
	logger     *slog.Logger
}

// New constructs a verifier. tool may be nil when no 7-Zip binary is
// installed; multi-volume archives then come back unverifiable with an
// install hint instead of failing the whole run.
func New(tool p7zip.Tester, opts ...Option) *Verifier {
	v := &Verifier{
		tool:       tool,
		probeLimit: defaultProbeLimit,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Classify infers an archive kind from the path string and the presence of
// sibling volume files. No archive content is read.
func (v *Verifier) Classify(path string) archive.Kind {
	name := strings.ToLower(filepath.Base(path))

	if base, index, ok := trailingNumericSuffix(name); ok {
		// The first volume stands for the whole set. Later indexes only
		// surface when earlier volumes are missing; send those to the tool
		// too so its "missing volume" diagnostic reaches the report.
		if index == 1 || strings.HasSuffix(base, ".7z") {
			return archive.KindSplit7z
		}
	}
	if strings.HasSuffix(name, ".zip") || strings.HasSuffix(name, ".z01") {
		base := path[:len(path)-4] // ".zip" and ".z01" strip the same length
		if v.hasZipSiblings(base) {
			return archive.KindSplitZip
		}
	}
	if strings.HasSuffix(name, ".zip") {
		return archive.KindPlainZip
	}
	if strings.Contains(name, ".7z") {
		return archive.KindPlain7z
	}
	return archive.KindUnknown
}

// Verify checks one representative path and returns its result. Failures are
// always contained to the result; Verify never returns an error.
func (v *Verifier) Verify(ctx context.Context, path string) archive.Result {
	start := time.Now()
	kind := v.Classify(path)

	ctx = services.WithArchive(ctx, path)
	log := logging.WithContext(ctx, v.logger).With(
		logging.String("kind", string(kind)),
	)
	log.Debug("verifying archive")

	outcome, detail := v.dispatch(ctx, path, kind)
	elapsed := time.Since(start)

	if outcome.Passed() {
		log.Debug("archive verified", logging.Duration("elapsed", elapsed))
	} else {
		log.Warn("archive check did not pass",
			logging.String("outcome", string(outcome)),
			logging.String("detail", detail),
			logging.Duration("elapsed", elapsed))
	}

	return archive.Result{
		Path:    path,
		Kind:    kind,
		Outcome: outcome,
		Detail:  detail,
		Elapsed: elapsed,
	}
}

func (v *Verifier) dispatch(ctx context.Context, path string, kind archive.Kind) (archive.Outcome, string) {
	switch kind {
	case archive.KindSplit7z, archive.KindSplitZip:
		if v.tool == nil {
			return archive.OutcomeUnverifiable,
				"multi-volume archives need the external tool; " + deps.SevenZipInstallHint
		}
		return outcomeFrom(v.tool.Test(ctx, path))
	case archive.KindPlain7z:
		return v.embeddedThenTool(ctx, path, checkSevenZip)
	case archive.KindPlainZip:
		return v.embeddedThenTool(ctx, path, checkZip)
	default:
		return outcomeFrom(services.Wrap(services.ErrUnsupported, "verify", "dispatch",
			"no decoder or tool handles this name", nil))
	}
}

// embeddedThenTool runs the embedded decoder first. When the decoder rejects
// the container outright the external tool gets the final word: it reads more
// dialects than the embedded decoders do. Checksum failures inside a
// recognized container are definitive and skip the tool.
func (v *Verifier) embeddedThenTool(ctx context.Context, path string, check func(string) error) (archive.Outcome, string) {
	err := check(path)
	if err == nil {
		return archive.OutcomeValid, ""
	}
	if errors.Is(err, services.ErrFormat) && v.tool != nil {
		return outcomeFrom(v.tool.Test(ctx, path))
	}
	return services.FailureOutcome(err), err.Error()
}

func outcomeFrom(err error) (archive.Outcome, string) {
	if err == nil {
		return archive.OutcomeValid, ""
	}
	return services.FailureOutcome(err), err.Error()
}

// hasZipSiblings reports whether any numbered volume sits next to the given
// suffix-stripped base path. Both lower and upper case suffix spellings are
// probed since the set may have been produced on a case-insensitive system.
func (v *Verifier) hasZipSiblings(base string) bool {
	for i := 1; i <= v.probeLimit; i++ {
		if _, err := os.Stat(fmt.Sprintf("%s.z%02d", base, i)); err == nil {
			return true
		}
		if _, err := os.Stat(fmt.Sprintf("%s.Z%02d", base, i)); err == nil {
			return true
		}
	}
	return false
}

// trailingNumericSuffix splits a lower-cased file name into the part before
// its final dot and the numeric value after it.
func trailingNumericSuffix(name string) (base string, index int, ok bool) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || dot == len(name)-1 {
		return "", 0, false
	}
	suffix := name[dot+1:]
	for i := 0; i < len(suffix); i++ {
		if suffix[i] < '0' || suffix[i] > '9' {
			return "", 0, false
		}
	}
	index, err := strconv.Atoi(suffix)
	if err != nil {
		return "", 0, false
	}
	return name[:dot], index, true
}
