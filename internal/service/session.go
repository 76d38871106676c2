package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lotview/auction-ui-api/internal/adapters/redis"
	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
	"github.com/lotview/auction-ui-api/internal/ports"
)

// SessionManagerOptions groups dependencies for SessionManager.
type SessionManagerOptions struct {
	Sessions ports.SessionStore
	TTL      time.Duration // session lifetime, floor 24h
	Logger   *slog.Logger

	// OnLogout runs after a session ends, whether by explicit logout or
	// expiry. Optional. The handler layer uses it to clear cookies and
	// signal the client back to the login view.
	OnLogout func(sessionID string)

	// Now overrides the clock (tests). Optional.
	Now func() time.Time
}

// SessionManager owns the session lifecycle: creation with a fixed
// absolute expiry, restoration on each request, and teardown. Every live
// session has one scheduled expiry timer; any mutation cancels and
// reschedules it, so a session never fires two logouts.
type SessionManager struct {
	sessions ports.SessionStore
	ttl      time.Duration
	logger   *slog.Logger
	onLogout func(sessionID string)
	now      func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer
}

const minSessionTTL = 24 * time.Hour

// NewSessionManager constructs a SessionManager.
func NewSessionManager(opts SessionManagerOptions) *SessionManager {
	ttl := opts.TTL
	if ttl < minSessionTTL {
		ttl = minSessionTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &SessionManager{
		sessions: opts.Sessions,
		ttl:      ttl,
		logger:   logger,
		onLogout: opts.OnLogout,
		now:      now,
		timers:   make(map[string]*time.Timer),
	}
}

// Login creates a session for the given profile and backend credential.
// It always succeeds: a storage failure is logged and the session is
// returned anyway, degraded to this process's lifetime. The user is never
// bounced back to the login screen over a persistence hiccup.
func (m *SessionManager) Login(ctx context.Context, profile domainauth.Profile, cred ports.Credential) domainauth.Session {
	now := m.now()
	sess := domainauth.Session{
		ID:           uuid.NewString(),
		Profile:      profile,
		BackendToken: string(cred),
		CreatedAt:    now,
		ExpiresAt:    now.Add(m.ttl),
	}

	if err := m.sessions.Save(ctx, sess); err != nil {
		m.logger.ErrorContext(ctx, "session save failed, continuing unpersisted",
			"session_id", sess.ID, "error", err)
	}

	m.schedule(sess.ID, sess.ExpiresAt)
	return sess
}

// Restore loads the session for a request. Absent, corrupt, or otherwise
// unreadable sessions come back as nil with no error; an expired session
// is logged out on the spot. A nil session simply means "not signed in".
func (m *SessionManager) Restore(ctx context.Context, id string) *domainauth.Session {
	if id == "" {
		return nil
	}

	sess, err := m.sessions.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, redis.ErrNotFound) {
			m.logger.WarnContext(ctx, "session restore failed", "session_id", id, "error", err)
		}
		return nil
	}

	if sess.Expired(m.now()) {
		m.Logout(ctx, id)
		return nil
	}

	// The timer map is empty after a restart; restoring re-arms it.
	m.scheduleIfMissing(sess.ID, sess.ExpiresAt)
	return &sess
}

// Logout ends a session. Idempotent: a missing session is not an error,
// and the OnLogout hook fires exactly once per call.
func (m *SessionManager) Logout(ctx context.Context, id string) {
	if id == "" {
		return
	}

	m.cancel(id)

	if err := m.sessions.Delete(ctx, id); err != nil {
		m.logger.WarnContext(ctx, "session delete failed", "session_id", id, "error", err)
	}

	if m.onLogout != nil {
		m.onLogout(id)
	}
}

// Extend pushes a session's expiry out to now+TTL and reschedules its
// timer. Used when a deployment opts into sliding sessions.
func (m *SessionManager) Extend(ctx context.Context, sess domainauth.Session) domainauth.Session {
	sess.ExpiresAt = m.now().Add(m.ttl)
	if err := m.sessions.Save(ctx, sess); err != nil {
		m.logger.ErrorContext(ctx, "session extend save failed",
			"session_id", sess.ID, "error", err)
	}
	m.schedule(sess.ID, sess.ExpiresAt)
	return sess
}

// Close cancels all pending expiry timers. Sessions stay in the store;
// their TTL remains the durable guarantee.
func (m *SessionManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.timers {
		t.Stop()
		delete(m.timers, id)
	}
}

// schedule arms the expiry timer for a session, replacing any existing one.
func (m *SessionManager) schedule(id string, expiresAt time.Time) {
	d := expiresAt.Sub(m.now())
	if d <= 0 {
		go m.expire(id)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.timers[id]; ok {
		prev.Stop()
	}
	m.timers[id] = time.AfterFunc(d, func() { m.expire(id) })
}

func (m *SessionManager) scheduleIfMissing(id string, expiresAt time.Time) {
	m.mu.Lock()
	_, exists := m.timers[id]
	m.mu.Unlock()
	if !exists {
		m.schedule(id, expiresAt)
	}
}

func (m *SessionManager) cancel(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.timers[id]; ok {
		t.Stop()
		delete(m.timers, id)
	}
}

// expire is the timer callback: log the session out with a fresh context
// since the request that created it is long gone.
func (m *SessionManager) expire(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	m.logger.InfoContext(ctx, "session expired", "session_id", id)
	m.Logout(ctx, id)
}
