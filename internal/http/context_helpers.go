package httpx

import (
	"context"

	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
	"github.com/lotview/auction-ui-api/internal/ports"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session from context and a boolean indicating presence.
func SessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// credentialFromContext returns the backend credential of the current
// session, empty when unauthenticated. An empty credential still goes to
// the backend; its 401 drives the usual teardown.
func credentialFromContext(ctx context.Context) ports.Credential {
	if sess, ok := SessionFromContext(ctx); ok {
		return ports.Credential(sess.BackendToken)
	}
	return ""
}
