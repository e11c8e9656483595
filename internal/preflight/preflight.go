package preflight

import (
	"archivecheck/internal/config"
)

// Result reports the outcome of a single preflight check. Optional marks
// checks whose failure degrades a run instead of blocking it.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll executes the readiness checks for a verification run over root.
func RunAll(cfg *config.Config, root string) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("Scan root", root),
		CheckSevenZipTool(cfg),
	}
}
