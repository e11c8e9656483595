package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"archivecheck/internal/config"
	"archivecheck/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and can be read
// and traversed. Write access is not required; verification never modifies
// the tree it scans.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckSevenZipTool reports whether the external tester is installed. The
// check is optional: embedded decoders cover single-part archives, only
// multi-volume sets hard-require the tool.
func CheckSevenZipTool(cfg *config.Config) Result {
	status := deps.CheckSevenZip(cfg.SevenZipBinary())
	if status.Available {
		return Result{Name: status.Name, Passed: true, Optional: true, Detail: status.Command}
	}
	return Result{Name: status.Name, Optional: true, Detail: deps.SevenZipInstallHint}
}

// CheckSystemDeps evaluates the external binaries verification can call.
// The tools command uses this to render the dependency table.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	return []deps.Status{deps.CheckSevenZip(cfg.SevenZipBinary())}
}
