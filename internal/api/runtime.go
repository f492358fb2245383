package api

import (
	"github.com/JaimeStill/loyalty-lab/internal/config"
	"github.com/JaimeStill/loyalty-lab/internal/infrastructure"
	"github.com/JaimeStill/loyalty-lab/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	CookieName string
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	scoped := *infra
	scoped.Logger = infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &scoped,
		Pagination:     cfg.API.Pagination,
		CookieName:     cfg.Session.CookieName,
	}
}
