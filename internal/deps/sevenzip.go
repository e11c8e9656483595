package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// SevenZipCandidates lists the conventional 7-Zip binary names, probed in
// order: 7z ships with p7zip, 7zz with the official 7-Zip releases, 7za with
// the standalone p7zip build.
var SevenZipCandidates = []string{"7z", "7zz", "7za"}

// SevenZipInstallHint is surfaced whenever a check needs the external tool
// and none of the candidate binaries is installed.
const SevenZipInstallHint = "install 7-Zip (p7zip package, or 7zz from 7-zip.org) to verify multi-volume archives"

// ResolveSevenZip locates the external archive tester. An explicit command
// overrides the candidate probe and may be a bare name or a path; the empty
// string means probe the conventional names on PATH.
func ResolveSevenZip(explicit string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		path, err := exec.LookPath(explicit)
		if err != nil {
			return "", fmt.Errorf("resolve 7-Zip binary %q: %w", explicit, err)
		}
		return path, nil
	}
	for _, name := range SevenZipCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no 7-Zip binary found (tried %s): %w",
		strings.Join(SevenZipCandidates, ", "), exec.ErrNotFound)
}

// CheckSevenZip reports which 7-Zip binary verification will execute, probing
// the same way ResolveSevenZip does.
func CheckSevenZip(explicit string) Status {
	result := Status{
		Name:        "7-Zip",
		Description: "Required for multi-volume archives, fallback for plain ones",
		Optional:    true,
	}
	path, err := ResolveSevenZip(explicit)
	if err != nil {
		if command := strings.TrimSpace(explicit); command != "" {
			result.Command = command
		} else {
			result.Command = strings.Join(SevenZipCandidates, ", ")
		}
		result.Detail = err.Error()
		return result
	}
	result.Command = path
	result.Available = true
	return result
}
