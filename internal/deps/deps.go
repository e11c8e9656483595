// Package deps reports on the external binaries verification may execute.
package deps

// Status reports the availability of an external dependency. The json tags
// shape the tools command's machine-readable output.
type Status struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Detail      string `json:"detail,omitempty"`
}
