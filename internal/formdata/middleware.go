package formdata

import (
	"net/http"

	"github.com/google/uuid"
)

// Bind returns middleware that attaches the visitor's State to the request
// context, creating a session and setting its cookie on first visit.
// Request bodies are capped at the configured max form size. When the
// registry is full, cookieless requests get 503.
//
// Wrap only handlers that read or write form state.
func Bind(sessions *Sessions, cfg *Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, state, err := sessions.Lookup(r, cfg.CookieName)
			if err != nil {
				id, state, err = sessions.Create()
				if err != nil {
					sessions.logger.Warn("session rejected", "error", err)
					w.Header().Set("Retry-After", "60")
					http.Error(w, http.StatusText(MapHTTPStatus(err)), MapHTTPStatus(err))
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    id.String(),
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			if r.Body != nil && cfg.MaxFormSizeBytes() > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxFormSizeBytes())
			}

			ctx := WithSessionID(WithState(r.Context(), state), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Lookup resolves the session named by the request cookie without creating one.
func (s *Sessions) Lookup(r *http.Request, cookieName string) (uuid.UUID, *State, error) {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return uuid.Nil, nil, ErrSessionNotFound
	}

	id, err := uuid.Parse(c.Value)
	if err != nil {
		return uuid.Nil, nil, ErrSessionNotFound
	}

	st, ok := s.Get(id)
	if !ok {
		return uuid.Nil, nil, ErrSessionNotFound
	}
	return id, st, nil
}
