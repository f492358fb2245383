package formdata

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/docker/go-units"
)

// Env maps environment variable names for session configuration.
type Env struct {
	CookieName    string
	Secure        string
	IdleTimeout   string
	SweepInterval string
	MaxSessions   string
	MaxFormSize   string
}

// Config controls session binding and form submission limits.
type Config struct {
	CookieName    string `toml:"cookie_name"`
	Secure        bool   `toml:"secure"`
	IdleTimeout   string `toml:"idle_timeout"`
	SweepInterval string `toml:"sweep_interval"`
	// MaxSessions caps live sessions; new visitors get 503 beyond it.
	MaxSessions int `toml:"max_sessions"`
	// MaxFormSize is a human-readable size such as "64KB".
	MaxFormSize    string `toml:"max_form_size"`
	maxFormSizeVal int64
}

func (c *Config) IdleTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.IdleTimeout)
	return d
}

func (c *Config) SweepIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.SweepInterval)
	return d
}

// MaxFormSizeBytes returns MaxFormSize parsed during Finalize.
func (c *Config) MaxFormSizeBytes() int64 {
	return c.maxFormSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the session configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.CookieName != "" {
		c.CookieName = overlay.CookieName
	}
	if overlay.Secure {
		c.Secure = true
	}
	if overlay.IdleTimeout != "" {
		c.IdleTimeout = overlay.IdleTimeout
	}
	if overlay.SweepInterval != "" {
		c.SweepInterval = overlay.SweepInterval
	}
	if overlay.MaxSessions != 0 {
		c.MaxSessions = overlay.MaxSessions
	}
	if overlay.MaxFormSize != "" {
		c.MaxFormSize = overlay.MaxFormSize
	}
}

func (c *Config) loadDefaults() {
	if c.CookieName == "" {
		c.CookieName = "loyalty_session"
	}
	if c.IdleTimeout == "" {
		c.IdleTimeout = "30m"
	}
	if c.SweepInterval == "" {
		c.SweepInterval = "1m"
	}
	if c.MaxSessions == 0 {
		c.MaxSessions = 10000
	}
	if c.MaxFormSize == "" {
		c.MaxFormSize = "64KB"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.CookieName != "" {
		if v := os.Getenv(env.CookieName); v != "" {
			c.CookieName = v
		}
	}
	if env.Secure != "" {
		if v := os.Getenv(env.Secure); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Secure = b
			}
		}
	}
	if env.IdleTimeout != "" {
		if v := os.Getenv(env.IdleTimeout); v != "" {
			c.IdleTimeout = v
		}
	}
	if env.SweepInterval != "" {
		if v := os.Getenv(env.SweepInterval); v != "" {
			c.SweepInterval = v
		}
	}
	if env.MaxSessions != "" {
		if v := os.Getenv(env.MaxSessions); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxSessions = n
			}
		}
	}
	if env.MaxFormSize != "" {
		if v := os.Getenv(env.MaxFormSize); v != "" {
			c.MaxFormSize = v
		}
	}
}

func (c *Config) validate() error {
	if c.CookieName == "" {
		return fmt.Errorf("cookie_name required")
	}
	if _, err := time.ParseDuration(c.IdleTimeout); err != nil {
		return fmt.Errorf("invalid idle_timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.SweepInterval); err != nil {
		return fmt.Errorf("invalid sweep_interval: %w", err)
	}

	if c.MaxSessions < 0 {
		return fmt.Errorf("max_sessions must not be negative")
	}

	size, err := units.FromHumanSize(c.MaxFormSize)
	if err != nil {
		return fmt.Errorf("invalid max_form_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_form_size must be positive")
	}
	c.maxFormSizeVal = size

	return nil
}
