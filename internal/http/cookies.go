package httpx

import (
	"net/http"
	"strings"
	"time"

	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
)

const sessionCookieName = "session_id"

func requestIsSecure(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// setSessionCookie attaches the session cookie, expiring alongside the
// server-side session.
func setSessionCookie(w http.ResponseWriter, r *http.Request, domain string, sess domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		Expires:  sess.ExpiresAt,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearCookie clears a cookie by setting it to expire immediately. It
// mirrors the attributes used when setting cookies so deletion sticks
// across browsers.
func clearCookie(w http.ResponseWriter, r *http.Request, domain, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
