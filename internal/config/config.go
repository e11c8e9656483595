package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

const defaultConfigLocation = "~/.config/archivecheck/config.toml"

// Scan contains configuration for directory discovery.
type Scan struct {
	ExcludeDirs []string `toml:"exclude_dirs"`
}

// Verify contains configuration for archive verification.
type Verify struct {
	Jobs          int    `toml:"jobs"`
	Tool          string `toml:"tool"`
	ToolTimeout   int    `toml:"tool_timeout"`
	ZipProbeLimit int    `toml:"zip_probe_limit"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	Path   string `toml:"path"`
}

// Config encapsulates all configuration values for archivecheck.
//
// Configuration sections by subsystem:
//   - Scan: directory walk behavior (excluded directory names)
//   - Verify: worker count, external 7-Zip binary, tool timeout, volume probing
//   - Logging: log format and level
type Config struct {
	Scan    Scan    `toml:"scan"`
	Verify  Verify  `toml:"verify"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigLocation)
}

// Load locates, parses, and validates a configuration file. The returned config
// has string fields trimmed and normalized.
func Load(path string) (*Config, string, bool, error) {
	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		if err := decodeFile(resolvedPath, &cfg); err != nil {
			return nil, "", false, err
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// decodeFile overlays the TOML file at path onto cfg.
func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		return statExplicitConfig(path)
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("archivecheck.toml")
	if err != nil {
		return "", false, err
	}

	for _, candidate := range []string{defaultPath, projectPath} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return defaultPath, false, nil
}

func statExplicitConfig(path string) (string, bool, error) {
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	switch _, err := os.Stat(expanded); {
	case err == nil:
		return expanded, true, nil
	case errors.Is(err, fs.ErrNotExist):
		return expanded, false, nil
	default:
		return "", false, fmt.Errorf("stat config: %w", err)
	}
}

// ToolTimeout returns the external tool timeout as a duration.
func (c *Config) ToolTimeout() time.Duration {
	return time.Duration(c.Verify.ToolTimeout) * time.Second
}

// SevenZipBinary returns the configured 7-Zip executable, or empty when the
// binary should be discovered on PATH.
func (c *Config) SevenZipBinary() string {
	return c.Verify.Tool
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if rest, ok := strings.CutPrefix(pathValue, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		switch {
		case rest == "":
			pathValue = home
		case rest[0] == '/' || rest[0] == '\\':
			pathValue = filepath.Join(home, rest[1:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
