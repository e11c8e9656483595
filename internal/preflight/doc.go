// Package preflight provides readiness checks for the scan root and the
// external tool a verification run may call.
//
// These checks run in two contexts:
//   - The check command calls RunAll before scanning so an unreadable root
//     fails fast instead of surfacing as per-archive errors.
//   - The tools command uses CheckSystemDeps to display which external
//     binaries verification will execute.
package preflight
