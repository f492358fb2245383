// Package app provides the loyalty web application module: the page route
// table, embedded templates, and the handlers that read and write the
// visitor's form state.
package app

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/loyalty-lab/internal/formdata"
	"github.com/JaimeStill/loyalty-lab/internal/registrations"
	"github.com/JaimeStill/loyalty-lab/pkg/module"
	"github.com/JaimeStill/loyalty-lab/pkg/web"
)

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

// NewModule creates the app module mounted at basePath. Page requests are
// bound to the visitor's session; public files and unmatched paths are served
// without one.
func NewModule(
	basePath string,
	sessions *formdata.Sessions,
	sessionCfg *formdata.Config,
	regs registrations.System,
	logger *slog.Logger,
) (*module.Module, error) {
	table, err := Routes()
	if err != nil {
		return nil, err
	}

	allViews := append(table.Views(), errorViews...)
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		allViews,
	)
	if err != nil {
		return nil, err
	}

	h := newHandler(table, ts, regs, logger.With("module", "app"))

	bind := formdata.Bind(sessions, sessionCfg)
	return module.New(basePath, buildRouter(h, ts, bind)), nil
}

// allowedMethods lists the methods accepted on page paths.
const allowedMethods = "GET, HEAD, POST"

func buildRouter(h *handler, ts *web.TemplateSet, bind func(http.Handler) http.Handler) http.Handler {
	r := web.NewRouter()
	r.SetFallback(h.fallback(ts.ErrorHandler(layout, errorViews[0], http.StatusNotFound)))

	submits := map[string]http.HandlerFunc{
		RouteLoyalty:  h.savePhoneNumber,
		RouteRegister: h.saveRegistration,
		RouteSummary:  h.submitRegistration,
	}

	for _, route := range h.table.Routes() {
		r.Handle("GET "+route.Pattern(), bind(h.show(route)))
		if submit, ok := submits[route.Name]; ok {
			r.Handle("POST "+route.Pattern(), bind(submit))
		}
	}

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}
