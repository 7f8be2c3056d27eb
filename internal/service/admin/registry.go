package admin

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	service "github.com/nathan-pham/gradcap-mvp/internal/service/pathway"
)

// SessionGauge receives the number of live sessions.
type SessionGauge interface {
	SetActiveSessions(n int)
}

// Registry keeps one Session per browser and drops sessions idle for longer
// than the TTL.
type Registry struct {
	accessor *service.Accessor
	logger   *zap.Logger
	recorder Recorder
	gauge    SessionGauge
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) { r.now = now }
}

// WithMetrics reports saves, notifications and the session count.
func WithMetrics(recorder Recorder, gauge SessionGauge) RegistryOption {
	return func(r *Registry) {
		r.recorder = recorder
		r.gauge = gauge
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(accessor *service.Accessor, ttl time.Duration, logger *zap.Logger, opts ...RegistryOption) *Registry {
	r := &Registry{
		accessor: accessor,
		logger:   logger,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the session for id, creating a new one with a fresh id when id
// is empty, unknown or expired. created reports whether the caller must load
// the new session and hand its id back to the browser.
func (r *Registry) Get(id string) (session *Session, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if e, ok := r.sessions[id]; ok {
		if now.Sub(e.lastSeen) <= r.ttl {
			e.lastSeen = now
			return e.session, false
		}
		delete(r.sessions, id)
	}

	newID := uuid.NewString()
	session = NewSession(newID, r.accessor, r.logger, r.recorder)
	r.sessions[newID] = &entry{session: session, lastSeen: now}
	r.reportLocked()
	return session, true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep removes expired sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		r.logger.Debug("Expired admin sessions removed", zap.Int("removed", removed))
		r.reportLocked()
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
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

func (r *Registry) reportLocked() {
	if r.gauge != nil {
		r.gauge.SetActiveSessions(len(r.sessions))
	}
}
