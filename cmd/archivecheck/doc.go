// Package main hosts the archivecheck CLI entrypoint and command graph.
//
// The cobra-based command tree resolves configuration, assembles the
// verification stack, and renders reports. Keep this package lean: the heavy
// lifting lives in the internal packages (discover, verify, checker) so
// commands stay declarative.
package main
