package app

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/loyalty-lab/internal/formdata"
	"github.com/JaimeStill/loyalty-lab/internal/pages"
	"github.com/JaimeStill/loyalty-lab/internal/registrations"
	"github.com/JaimeStill/loyalty-lab/pkg/web"
	"github.com/google/uuid"
)

// viewModel is the Data passed to every page template.
type viewModel struct {
	Form         formdata.FormData
	Routes       []pages.Route
	Current      string
	Registration *registrations.Registration
	Error        string
}

type handler struct {
	table  *pages.Table
	ts     *web.TemplateSet
	regs   registrations.System
	logger *slog.Logger
}

func newHandler(table *pages.Table, ts *web.TemplateSet, regs registrations.System, logger *slog.Logger) *handler {
	return &handler{
		table:  table,
		ts:     ts,
		regs:   regs,
		logger: logger,
	}
}

func (h *handler) show(route pages.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := formdata.FromContext(r.Context())
		if err != nil {
			h.fail(w, http.StatusInternalServerError, err)
			return
		}

		vm := h.model(route, state)

		if route.Name == RouteSummary {
			if raw := r.URL.Query().Get("registration"); raw != "" {
				vm.Registration, vm.Error = h.findRegistration(r, raw)
			}
		}

		h.render(w, route, http.StatusOK, vm)
	}
}

func (h *handler) savePhoneNumber(w http.ResponseWriter, r *http.Request) {
	state, ok := h.parse(w, r)
	if !ok {
		return
	}

	state.SetPhoneNumber(r.PostForm.Get("phone_number"))
	h.redirect(w, r, RouteRegister, "")
}

func (h *handler) saveRegistration(w http.ResponseWriter, r *http.Request) {
	state, ok := h.parse(w, r)
	if !ok {
		return
	}

	state.SetRegistration(formdata.RegistrationData{
		Name:     r.PostForm.Get("name"),
		Birthday: r.PostForm.Get("birthday"),
		Email:    r.PostForm.Get("email"),
	})
	h.redirect(w, r, RouteSummary, "")
}

func (h *handler) submitRegistration(w http.ResponseWriter, r *http.Request) {
	state, ok := h.parse(w, r)
	if !ok {
		return
	}

	reg, err := h.regs.Create(r.Context(), registrations.CommandFromForm(state.Snapshot()))
	if err != nil {
		h.logger.Error("registration submit failed", "error", err)
		route, _ := h.table.Named(RouteSummary)
		vm := h.model(route, state)
		vm.Error = "Your registration could not be saved. Please try again."
		h.render(w, route, registrations.MapHTTPStatus(err), vm)
		return
	}

	h.redirect(w, r, RouteSummary, "registration="+reg.ID.String())
}

func (h *handler) parse(w http.ResponseWriter, r *http.Request) (*formdata.State, bool) {
	state, err := formdata.FromContext(r.Context())
	if err != nil {
		h.fail(w, http.StatusInternalServerError, err)
		return nil, false
	}

	if err := r.ParseForm(); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		h.fail(w, status, err)
		return nil, false
	}

	return state, true
}

func (h *handler) findRegistration(r *http.Request, raw string) (*registrations.Registration, string) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, "Unknown registration."
	}

	reg, err := h.regs.Find(r.Context(), id)
	if err != nil {
		if !errors.Is(err, registrations.ErrNotFound) {
			h.logger.Error("registration lookup failed", "id", id, "error", err)
		}
		return nil, "Unknown registration."
	}
	return reg, ""
}

func (h *handler) model(route pages.Route, state *formdata.State) viewModel {
	return viewModel{
		Form:    state.Snapshot(),
		Routes:  h.table.Routes(),
		Current: route.Path,
	}
}

func (h *handler) render(w http.ResponseWriter, route pages.Route, status int, vm viewModel) {
	if err := h.ts.Execute(w, layout, route.View, status, vm); err != nil {
		h.logger.Error("render failed", "view", route.View.Template, "error", err)
	}
}

func (h *handler) redirect(w http.ResponseWriter, r *http.Request, name, query string) {
	route, ok := h.table.Named(name)
	if !ok {
		h.fail(w, http.StatusInternalServerError, pages.ErrNotFound)
		return
	}

	target := web.JoinPath(h.ts.BasePath(), route.Path)
	if query != "" {
		target += "?" + query
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *handler) fail(w http.ResponseWriter, status int, err error) {
	h.logger.Error("page error", "status", status, "error", err)
	http.Error(w, http.StatusText(status), status)
}

// fallback handles requests no page pattern matched. Undeclared paths render
// notFound, declared paths reached through a non-canonical spelling redirect
// to the declared path, and any other method on a declared path gets 405.
func (h *handler) fallback(notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route, err := h.table.Resolve(r.URL.Path)
		if err != nil {
			notFound(w, r)
			return
		}

		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodPost:
			if r.URL.Path != route.Path {
				target := web.JoinPath(h.ts.BasePath(), route.Path)
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusPermanentRedirect)
				return
			}
		}

		w.Header().Set("Allow", allowedMethods)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}
