package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeScan()
	c.normalizeVerify()
	return c.normalizeLogging()
}

func (c *Config) normalizeScan() {
	if len(c.Scan.ExcludeDirs) == 0 {
		return
	}
	dirs := make([]string, 0, len(c.Scan.ExcludeDirs))
	seen := make(map[string]struct{}, len(c.Scan.ExcludeDirs))
	for _, dir := range c.Scan.ExcludeDirs {
		trimmed := strings.TrimSpace(dir)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		dirs = append(dirs, trimmed)
	}
	c.Scan.ExcludeDirs = dirs
}

func (c *Config) normalizeVerify() {
	c.Verify.Tool = strings.TrimSpace(c.Verify.Tool)
	if c.Verify.Tool == "" {
		if value, ok := os.LookupEnv("ARCHIVECHECK_TOOL"); ok {
			c.Verify.Tool = strings.TrimSpace(value)
		}
	}
	// The split ZIP naming scheme carries two-digit volume numbers, so probing
	// past .z99 can never match.
	if c.Verify.ZipProbeLimit > defaultZipProbeLimit {
		c.Verify.ZipProbeLimit = defaultZipProbeLimit
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Path = strings.TrimSpace(c.Logging.Path)
	if c.Logging.Path != "" {
		expanded, err := expandPath(c.Logging.Path)
		if err != nil {
			return fmt.Errorf("logging.path: %w", err)
		}
		c.Logging.Path = expanded
	}
	return nil
}
