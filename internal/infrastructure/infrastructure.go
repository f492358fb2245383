// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, sessions) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/loyalty-lab/internal/config"
	"github.com/JaimeStill/loyalty-lab/internal/formdata"
	"github.com/JaimeStill/loyalty-lab/migrations"
	"github.com/JaimeStill/loyalty-lab/pkg/database"
	"github.com/JaimeStill/loyalty-lab/pkg/lifecycle"
	"github.com/JaimeStill/loyalty-lab/pkg/logging"
)

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Sessions  *formdata.Sessions

	sweepInterval time.Duration
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, migrations.FS, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	sessions := formdata.NewSessions(cfg.Session.IdleTimeoutDuration(), cfg.Session.MaxSessions, logger)

	return &Infrastructure{
		Lifecycle:     lc,
		Logger:        logger,
		Database:      db,
		Sessions:      sessions,
		sweepInterval: cfg.Session.SweepIntervalDuration(),
	}, nil
}

// Start initializes all infrastructure systems and registers them with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	i.Sessions.Start(i.Lifecycle, i.sweepInterval)
	return nil
}
