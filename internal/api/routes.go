package api

import (
	"net/http"

	"github.com/JaimeStill/loyalty-lab/internal/formdata"
	"github.com/JaimeStill/loyalty-lab/internal/registrations"
	"github.com/JaimeStill/loyalty-lab/pkg/openapi"
	"github.com/JaimeStill/loyalty-lab/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, spec *openapi.Spec, basePath string, runtime *Runtime, domain *Domain) {
	registrationsHandler := registrations.NewHandler(domain.Registrations, runtime.Logger, runtime.Pagination)
	sessionHandler := formdata.NewHandler(runtime.Sessions, runtime.CookieName, runtime.Logger)

	routes.Register(
		mux,
		basePath,
		spec,
		registrationsHandler.Routes(),
		sessionHandler.Routes(),
	)
}
