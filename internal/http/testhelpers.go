package httpx

import (
	"context"
	"net/http"
	"sync"
	"time"

	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
)

// fakeSessions is an in-memory SessionRestorer for handler tests.
type fakeSessions struct {
	mu        sync.Mutex
	sessions  map[string]*domainauth.Session
	loggedOut []string
}

func newFakeSessions(sessions ...*domainauth.Session) *fakeSessions {
	f := &fakeSessions{sessions: make(map[string]*domainauth.Session)}
	for _, s := range sessions {
		f.sessions[s.ID] = s
	}
	return f
}

func (f *fakeSessions) Restore(_ context.Context, id string) *domainauth.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions[id]
}

func (f *fakeSessions) Logout(_ context.Context, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	f.loggedOut = append(f.loggedOut, id)
}

// testSession builds a live session with the given role.
func testSession(role domainauth.Role) *domainauth.Session {
	now := time.Now()
	return &domainauth.Session{
		ID: "sess-1",
		Profile: domainauth.Profile{
			Name:  "Test User",
			Email: "test@example.com",
			Role:  role,
		},
		BackendToken: "backend-token-1",
		CreatedAt:    now,
		ExpiresAt:    now.Add(24 * time.Hour),
	}
}

// withSessionCookie attaches the session cookie to a test request.
func withSessionCookie(r *http.Request, id string) *http.Request {
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: id})
	return r
}
