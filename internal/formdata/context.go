package formdata

import (
	"context"

	"github.com/google/uuid"
)

type contextKey int

const (
	stateKey contextKey = iota
	sessionKey
)

// WithState returns a copy of ctx carrying s.
func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, stateKey, s)
}

// FromContext returns the State carried by ctx.
func FromContext(ctx context.Context) (*State, error) {
	s, ok := ctx.Value(stateKey).(*State)
	if !ok || s == nil {
		return nil, ErrNoState
	}
	return s, nil
}

// WithSessionID returns a copy of ctx carrying the session id.
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionKey, id)
}

// SessionID returns the session id carried by ctx, or uuid.Nil.
func SessionID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(sessionKey).(uuid.UUID)
	return id
}
