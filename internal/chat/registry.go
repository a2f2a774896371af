package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nortedigital/pagebot/pkg/logging"
)

// DefaultSessionTTL is how long an idle session is kept.
const DefaultSessionTTL = 30 * time.Minute

// ErrSessionNotFound is returned for unknown or evicted session IDs.
var ErrSessionNotFound = errors.New("chat: session not found")

// Registry keeps one in-memory Session per visitor and evicts idle ones.
type Registry struct {
	opts     Options
	ttl      time.Duration
	interval time.Duration
	logger   *logging.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry whose sessions share opts.
func NewRegistry(opts Options, logger *logging.Logger) *Registry {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Registry{
		opts:     opts,
		ttl:      DefaultSessionTTL,
		interval: time.Minute,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// WithTTL overrides the idle timeout.
func (r *Registry) WithTTL(d time.Duration) *Registry {
	if d > 0 {
		r.ttl = d
	}
	return r
}

// WithInterval overrides how often Run sweeps.
func (r *Registry) WithInterval(d time.Duration) *Registry {
	if d > 0 {
		r.interval = d
	}
	return r
}

// Create starts a new session under a fresh ID.
func (r *Registry) Create() *Session {
	s := NewSession(uuid.NewString(), r.opts)
	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()
	r.logger.Debug("chat session created", "session_id", s.ID())
	return s
}

// Get returns a live session.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// GetOrCreate returns the session for id, or a new one when id is empty or
// unknown.
func (r *Registry) GetOrCreate(id string) *Session {
	if id != "" {
		if s, err := r.Get(id); err == nil {
			return s
		}
	}
	return r.Create()
}

// Delete drops a session.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many.
func (r *Registry) Sweep() int {
	cutoff := r.opts.Now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, s := range r.sessions {
		if s.LastActive().Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		r.logger.Info("chat sessions evicted", "count", evicted, "remaining", len(r.sessions))
	}
	return evicted
}

// Run sweeps periodically until ctx ends.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
