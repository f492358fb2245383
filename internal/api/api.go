// Package api assembles the JSON API module: registrations, the caller's
// session form state, and the OpenAPI document describing both.
package api

import (
	"net/http"

	"github.com/JaimeStill/loyalty-lab/internal/config"
	"github.com/JaimeStill/loyalty-lab/internal/infrastructure"
	"github.com/JaimeStill/loyalty-lab/pkg/middleware"
	"github.com/JaimeStill/loyalty-lab/pkg/module"
	"github.com/JaimeStill/loyalty-lab/pkg/openapi"
)

// NewModule creates the API module mounted at cfg.API.BasePath. The domain
// systems it builds are returned so the app module can share them.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, *Domain, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, cfg.API.BasePath, runtime, domain)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, domain, nil
}
