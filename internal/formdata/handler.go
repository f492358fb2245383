package formdata

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/loyalty-lab/pkg/handlers"
	"github.com/JaimeStill/loyalty-lab/pkg/routes"
)

// Handler exposes the caller's session form state as JSON.
type Handler struct {
	sessions   *Sessions
	cookieName string
	logger     *slog.Logger
}

func NewHandler(sessions *Sessions, cookieName string, logger *slog.Logger) *Handler {
	return &Handler{
		sessions:   sessions,
		cookieName: cookieName,
		logger:     logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/session",
		Tags:        []string{"Session"},
		Description: "Form state of the caller's session",
		Schemas:     schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Find, OpenAPI: findOp},
		},
	}
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	_, state, err := h.sessions.Lookup(r, h.cookieName)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, state.Snapshot())
}
