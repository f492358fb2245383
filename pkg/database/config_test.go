package database_test

import (
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/loyalty-lab/pkg/database"
)

func validConfig() *database.Config {
	return &database.Config{Name: "loyalty", User: "loyalty", Password: "secret"}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "localhost" || cfg.Port != 5432 {
		t.Errorf("host=%s port=%d", cfg.Host, cfg.Port)
	}
	if cfg.SSLMode != "disable" {
		t.Errorf("SSLMode = %q", cfg.SSLMode)
	}
	if cfg.ConnMaxLifetimeDuration() != 15*time.Minute {
		t.Errorf("ConnMaxLifetime = %v", cfg.ConnMaxLifetimeDuration())
	}
	if cfg.ConnTimeoutDuration() != 5*time.Second {
		t.Errorf("ConnTimeout = %v", cfg.ConnTimeoutDuration())
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*database.Config)
	}{
		{"missing name", func(c *database.Config) { c.Name = "" }},
		{"missing user", func(c *database.Config) { c.User = "" }},
		{"bad lifetime", func(c *database.Config) { c.ConnMaxLifetime = "forever" }},
		{"bad timeout", func(c *database.Config) { c.ConnTimeout = "soon" }},
		{"bad ssl mode", func(c *database.Config) { c.SSLMode = "sometimes" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Finalize(nil); err == nil {
				t.Error("Finalize() should return error")
			}
		})
	}
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PORT", "6543")
	t.Setenv("TEST_DB_SSL", "require")
	t.Setenv("TEST_DB_MIGRATE", "true")

	cfg := validConfig()
	err := cfg.Finalize(&database.Env{
		Host:        "TEST_DB_HOST",
		Port:        "TEST_DB_PORT",
		SSLMode:     "TEST_DB_SSL",
		AutoMigrate: "TEST_DB_MIGRATE",
	})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "db.internal" || cfg.Port != 6543 || cfg.SSLMode != "require" || !cfg.AutoMigrate {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfig_Dsn(t *testing.T) {
	cfg := validConfig()
	cfg.Finalize(nil)

	want := "host=localhost port=5432 dbname=loyalty user=loyalty password=secret sslmode=disable"
	if got := cfg.Dsn(); got != want {
		t.Errorf("Dsn() = %q, want %q", got, want)
	}
}

func TestConfig_URL(t *testing.T) {
	cfg := validConfig()
	cfg.Password = "p@ss word"
	cfg.Finalize(nil)

	got := cfg.URL()
	if !strings.HasPrefix(got, "pgx5://loyalty:") {
		t.Errorf("URL() = %q", got)
	}
	if !strings.Contains(got, "@localhost:5432/loyalty?sslmode=disable") {
		t.Errorf("URL() = %q", got)
	}
	if strings.Contains(got, "p@ss word") {
		t.Errorf("URL() did not escape password: %q", got)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := validConfig()
	cfg.Merge(&database.Config{Host: "other", AutoMigrate: true})

	if cfg.Host != "other" || !cfg.AutoMigrate || cfg.Name != "loyalty" {
		t.Errorf("cfg = %+v", cfg)
	}
}
