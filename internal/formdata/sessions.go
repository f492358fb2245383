package formdata

import (
	"log/slog"
	"sync"
	"time"

	"github.com/JaimeStill/loyalty-lab/pkg/lifecycle"
	"github.com/google/uuid"
)

type entry struct {
	state *State
	seen  time.Time
}

// Sessions owns one State per visitor session and evicts sessions left idle
// longer than the configured timeout.
type Sessions struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
	idle    time.Duration
	limit   int
	now     func() time.Time
	logger  *slog.Logger
}

// NewSessions creates an empty registry. A zero idle timeout disables
// eviction and a zero limit leaves the number of sessions unbounded.
func NewSessions(idle time.Duration, limit int, logger *slog.Logger) *Sessions {
	return &Sessions{
		entries: make(map[uuid.UUID]*entry),
		idle:    idle,
		limit:   limit,
		now:     time.Now,
		logger:  logger.With("system", "sessions"),
	}
}

// Create registers a new session with an empty State. ErrSessionLimit is
// returned once the registry holds limit sessions.
func (s *Sessions) Create() (uuid.UUID, *State, error) {
	id := uuid.New()
	st := New()

	s.mu.Lock()
	if s.limit > 0 && len(s.entries) >= s.limit {
		s.mu.Unlock()
		return uuid.Nil, nil, ErrSessionLimit
	}
	s.entries[id] = &entry{state: st, seen: s.now()}
	s.mu.Unlock()

	s.logger.Debug("session created", "id", id)
	return id, st, nil
}

// Get returns the State for id and marks the session as seen.
func (s *Sessions) Get(id uuid.UUID) (*State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	e.seen = s.now()
	return e.state, true
}

func (s *Sessions) Remove(id uuid.UUID) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep removes sessions not seen since now minus the idle timeout and
// returns how many were removed.
func (s *Sessions) Sweep(now time.Time) int {
	if s.idle <= 0 {
		return 0
	}

	cutoff := now.Add(-s.idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if e.seen.Before(cutoff) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Start runs Sweep every interval until the coordinator shuts down.
func (s *Sessions) Start(lc *lifecycle.Coordinator, interval time.Duration) {
	if s.idle <= 0 || interval <= 0 {
		s.logger.Info("session eviction disabled")
		return
	}

	s.logger.Info("starting session sweeper", "idle_timeout", s.idle, "interval", interval)

	lc.OnShutdown(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-lc.Context().Done():
				s.logger.Info("session sweeper stopped")
				return
			case t := <-ticker.C:
				if n := s.Sweep(t); n > 0 {
					s.logger.Info("idle sessions evicted", "count", n, "remaining", s.Len())
				}
			}
		}
	})
}
