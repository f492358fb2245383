package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig configures the page module.
type AppConfig struct {
	// BasePath is the mount point of the pages; route paths resolve relative to it.
	BasePath string `toml:"base_path"`
}

func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return validateBasePath(c.BasePath)
}

func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv("APP_BASE_PATH"); v != "" {
		c.BasePath = v
	}
}

// validateBasePath enforces the single-segment prefix modules are mounted under.
func validateBasePath(p string) error {
	if !strings.HasPrefix(p, "/") || len(p) < 2 {
		return fmt.Errorf("invalid base_path %q: must be a path segment such as /app", p)
	}
	if strings.Contains(p[1:], "/") {
		return fmt.Errorf("invalid base_path %q: must be a single path segment", p)
	}
	return nil
}
