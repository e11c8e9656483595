package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	return c.validateVerify()
}

func (c *Config) validateScan() error {
	for _, dir := range c.Scan.ExcludeDirs {
		if strings.ContainsAny(dir, `/\`) {
			return fmt.Errorf("scan.exclude_dirs entries must be bare directory names, got %q", dir)
		}
	}
	return nil
}

func (c *Config) validateVerify() error {
	positive := []struct {
		key   string
		value int
	}{
		{"verify.jobs", c.Verify.Jobs},
		{"verify.tool_timeout", c.Verify.ToolTimeout},
		{"verify.zip_probe_limit", c.Verify.ZipProbeLimit},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.key)
		}
	}
	return nil
}
