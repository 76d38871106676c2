package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/service"
)

// AuthServiceInterface defines the auth operations the handlers need.
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (domainauth.Session, error)
	Logout(ctx context.Context, sess *domainauth.Session)
	Register(ctx context.Context, sess *domainauth.Session, in model.RegisterInput) error
	BeginSSO(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteSSO(ctx context.Context, in service.CompleteSSOInput) (domainauth.Session, error)
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	Sessions     SessionRestorer
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Authenticated bool                `json:"authenticated"`
	Profile       *domainauth.Profile `json:"profile,omitempty"`
	ExpiresAt     string              `json:"expires_at,omitempty"`
}

// Login handles credential login.
// POST /api/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sess, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.renderLoginError(w, r, err)
		return
	}

	setSessionCookie(w, r, h.CookieDomain, sess)
	WriteJSON(w, http.StatusOK, sessionResponse{
		Authenticated: true,
		Profile:       &sess.Profile,
		ExpiresAt:     sess.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// renderLoginError maps login failures. A 401 here means bad credentials;
// there is no session to tear down yet.
func (h *AuthHandlers) renderLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *model.ValidationError
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "invalid_credentials",
			Err:     errors.New("email or password is incorrect"),
		})
	case errors.As(err, &verr):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_request", Err: verr})
	case errors.Is(err, model.ErrBackendUnavailable):
		WriteError(w, ErrorParams{
			Code:    http.StatusServiceUnavailable,
			ErrCode: "backend_unreachable",
			Err:     errors.New("auction service is unreachable, try again"),
		})
	default:
		h.logger().ErrorContext(r.Context(), "login failed", "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusBadGateway,
			ErrCode: "backend_error",
			Err:     errors.New("login is temporarily unavailable"),
		})
	}
}

// Logout ends the current session.
// POST /api/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if sess := h.Sessions.Restore(r.Context(), cookie.Value); sess != nil {
			h.Svc.Logout(r.Context(), sess)
		}
	}

	clearCookie(w, r, h.CookieDomain, sessionCookieName)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
}

// Register creates a user account. Admin only; the route wraps this in
// RequireRole.
// POST /api/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var in model.RegisterInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	sess, _ := SessionFromContext(r.Context())
	if err := h.Svc.Register(r.Context(), sess, in); err != nil {
		re := backendErrorRenderer{Sessions: h.Sessions, CookieDomain: h.CookieDomain}
		re.render(w, r, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

// Session reports the current authentication state.
// GET /api/session.
func (h *AuthHandlers) Session(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
		return
	}

	sess := h.Sessions.Restore(r.Context(), cookie.Value)
	if sess == nil {
		clearCookie(w, r, h.CookieDomain, sessionCookieName)
		WriteJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
		return
	}

	WriteJSON(w, http.StatusOK, sessionResponse{
		Authenticated: true,
		Profile:       &sess.Profile,
		ExpiresAt:     sess.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// SSOLogin initiates the SSO flow.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) SSOLogin(w http.ResponseWriter, r *http.Request) {
	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))

	result, err := h.Svc.BeginSSO(r.Context(), redirectURI)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     err,
		})
		return
	}

	h.setOAuthCookies(w, r, oauthCookieParams{State: result.State, Nonce: result.Nonce, RedirectURI: redirectURI})
	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// SSOCallback completes the SSO flow.
// GET /auth/callback?code=<code>&state=<state>.
func (h *AuthHandlers) SSOCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_code",
			Err:     errors.New("authorization code is required"),
		})
		return
	}
	if state == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_state",
			Err:     errors.New("state parameter is required"),
		})
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value != state {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errors.New("invalid or missing state parameter"),
		})
		return
	}
	nonceCookie, err := r.Cookie("oauth_nonce")
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_nonce",
			Err:     errors.New("missing nonce parameter"),
		})
		return
	}

	sess, err := h.Svc.CompleteSSO(r.Context(), service.CompleteSSOInput{
		Code:  code,
		State: state,
		Nonce: nonceCookie.Value,
	})
	if err != nil {
		h.logger().ErrorContext(r.Context(), "sso completion failed", "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_completion_failed",
			Err:     errors.New("could not complete sign-in"),
		})
		return
	}

	setSessionCookie(w, r, h.CookieDomain, sess)
	clearCookie(w, r, h.CookieDomain, "oauth_state")
	clearCookie(w, r, h.CookieDomain, "oauth_nonce")

	redirectURI := "/"
	if rc, cookieErr := r.Cookie("oauth_redirect"); cookieErr == nil {
		redirectURI = safeRedirectPath(rc.Value)
	}
	clearCookie(w, r, h.CookieDomain, "oauth_redirect")

	http.Redirect(w, r, redirectURI, http.StatusFound)
}

// oauthCookieParams groups values needed to set OAuth cookies.
type oauthCookieParams struct {
	State       string
	Nonce       string
	RedirectURI string
}

// setOAuthCookies stores OAuth state, nonce, and the post-login redirect
// in secure cookies.
func (h *AuthHandlers) setOAuthCookies(w http.ResponseWriter, r *http.Request, p oauthCookieParams) {
	isSecure := requestIsSecure(r)
	set := func(name, value string) {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    value,
			Path:     "/",
			Domain:   h.CookieDomain,
			HttpOnly: true,
			Secure:   isSecure,
			MaxAge:   600,
			SameSite: http.SameSiteLaxMode,
		})
	}
	set("oauth_state", p.State)
	set("oauth_nonce", p.Nonce)
	set("oauth_redirect", p.RedirectURI)
}

// safeRedirectPath allows only relative paths so the flow can never
// bounce the browser to another origin.
func safeRedirectPath(raw string) string {
	if raw == "" {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return raw
}
