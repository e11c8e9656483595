// Package config loads, normalizes, and validates archivecheck configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ARCHIVECHECK_TOOL. The Config type centralizes every knob the CLI needs,
// allowing scan exclusions, verification parallelism, and external tool
// settings to be discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized values, canonical log formats, and clear validation errors.
package config
