package main

import (
	"strings"
	"sync"

	"archivecheck/internal/config"
)

// configInfo is the result of one config.Load call: the effective settings
// plus where they came from.
type configInfo struct {
	cfg    *config.Config
	path   string
	exists bool
}

// commandContext shares lazily loaded configuration between commands so the
// file is parsed at most once per invocation.
type commandContext struct {
	configFlag *string

	once    sync.Once
	info    configInfo
	loadErr error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// load resolves and parses the configuration once, caching both success and
// failure for subsequent callers.
func (c *commandContext) load() (configInfo, error) {
	c.once.Do(func() {
		var flag string
		if c.configFlag != nil {
			flag = strings.TrimSpace(*c.configFlag)
		}
		cfg, path, exists, err := config.Load(flag)
		if err != nil {
			c.loadErr = err
			return
		}
		c.info = configInfo{cfg: cfg, path: path, exists: exists}
	})
	return c.info, c.loadErr
}

// ensureConfig is the accessor for commands that only need the settings.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	info, err := c.load()
	return info.cfg, err
}
