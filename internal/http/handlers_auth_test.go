package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/service"
)

// mockAuthService is a test double for AuthServiceInterface.
type mockAuthService struct {
	loginFunc       func(ctx context.Context, email, password string) (domainauth.Session, error)
	logoutFunc      func(ctx context.Context, sess *domainauth.Session)
	registerFunc    func(ctx context.Context, sess *domainauth.Session, in model.RegisterInput) error
	beginSSOFunc    func(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	completeSSOFunc func(ctx context.Context, in service.CompleteSSOInput) (domainauth.Session, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (domainauth.Session, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return *testSession(domainauth.RoleUser), nil
}

func (m *mockAuthService) Logout(ctx context.Context, sess *domainauth.Session) {
	if m.logoutFunc != nil {
		m.logoutFunc(ctx, sess)
	}
}

func (m *mockAuthService) Register(ctx context.Context, sess *domainauth.Session, in model.RegisterInput) error {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, sess, in)
	}
	return nil
}

func (m *mockAuthService) BeginSSO(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error) {
	if m.beginSSOFunc != nil {
		return m.beginSSOFunc(ctx, redirectURL)
	}
	return &service.BeginLoginResult{
		AuthURL: "https://idp.example.com/auth?state=test-state",
		State:   "test-state",
		Nonce:   "test-nonce",
	}, nil
}

func (m *mockAuthService) CompleteSSO(ctx context.Context, in service.CompleteSSOInput) (domainauth.Session, error) {
	if m.completeSSOFunc != nil {
		return m.completeSSOFunc(ctx, in)
	}
	return *testSession(domainauth.RoleUser), nil
}

func cookieByName(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := w.Result()
	defer func() { _ = res.Body.Close() }()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandlers_Login_Success(t *testing.T) {
	h := &AuthHandlers{Svc: &mockAuthService{}, Sessions: newFakeSessions()}

	body := strings.NewReader(`{"email":"test@example.com","password":"hunter2"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookie := cookieByName(t, w, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "sess-1", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Authenticated)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "test@example.com", resp.Profile.Email)
	assert.NotEmpty(t, resp.ExpiresAt)
}

func TestAuthHandlers_Login_BadCredentials(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (domainauth.Session, error) {
			return domainauth.Session{}, model.ErrUnauthorized
		},
	}
	h := &AuthHandlers{Svc: svc, Sessions: newFakeSessions()}

	body := strings.NewReader(`{"email":"test@example.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_credentials", resp["error"])
	assert.Nil(t, cookieByName(t, w, sessionCookieName))
}

func TestAuthHandlers_Login_Validation(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (domainauth.Session, error) {
			return domainauth.Session{}, model.Validationf("email is required")
		},
	}
	h := &AuthHandlers{Svc: svc, Sessions: newFakeSessions()}

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"","password":"x"}`))
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp["error"])
	assert.Equal(t, "email is required", resp["message"])
}

func TestAuthHandlers_Login_BackendDown(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (domainauth.Session, error) {
			return domainauth.Session{}, model.ErrBackendUnavailable
		},
	}
	h := &AuthHandlers{Svc: svc, Sessions: newFakeSessions()}

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"a@b.c","password":"x"}`))
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "backend_unreachable", resp["error"])
}

func TestAuthHandlers_Login_InvalidJSON(t *testing.T) {
	h := &AuthHandlers{Svc: &mockAuthService{}, Sessions: newFakeSessions()}

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlers_Logout(t *testing.T) {
	sess := testSession(domainauth.RoleUser)
	sessions := newFakeSessions(sess)

	var loggedOut *domainauth.Session
	svc := &mockAuthService{
		logoutFunc: func(ctx context.Context, s *domainauth.Session) { loggedOut = s },
	}
	h := &AuthHandlers{Svc: svc, Sessions: sessions}

	req := withSessionCookie(httptest.NewRequest(http.MethodPost, "/api/logout", nil), sess.ID)
	w := httptest.NewRecorder()

	h.Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, loggedOut)
	assert.Equal(t, sess.ID, loggedOut.ID)

	cookie := cookieByName(t, w, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandlers_Logout_NoSession(t *testing.T) {
	h := &AuthHandlers{Svc: &mockAuthService{}, Sessions: newFakeSessions()}

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	w := httptest.NewRecorder()

	h.Logout(w, req)

	// Logout is idempotent; no cookie still answers 200.
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandlers_Session_Authenticated(t *testing.T) {
	sess := testSession(domainauth.RoleAdmin)
	h := &AuthHandlers{Svc: &mockAuthService{}, Sessions: newFakeSessions(sess)}

	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/session", nil), sess.ID)
	w := httptest.NewRecorder()

	h.Session(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Authenticated)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, domainauth.RoleAdmin, resp.Profile.Role)
}

func TestAuthHandlers_Session_ExpiredCookie(t *testing.T) {
	h := &AuthHandlers{Svc: &mockAuthService{}, Sessions: newFakeSessions()}

	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/session", nil), "gone")
	w := httptest.NewRecorder()

	h.Session(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Authenticated)

	// Stale cookie cleared.
	cookie := cookieByName(t, w, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}

func TestAuthHandlers_SSOLogin(t *testing.T) {
	h := &AuthHandlers{Svc: &mockAuthService{}, Sessions: newFakeSessions()}

	req := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=/auctions", nil)
	w := httptest.NewRecorder()

	h.SSOLogin(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://idp.example.com/auth?state=test-state", w.Header().Get("Location"))

	state := cookieByName(t, w, "oauth_state")
	require.NotNil(t, state)
	assert.Equal(t, "test-state", state.Value)
	nonce := cookieByName(t, w, "oauth_nonce")
	require.NotNil(t, nonce)
	assert.Equal(t, "test-nonce", nonce.Value)
	redirect := cookieByName(t, w, "oauth_redirect")
	require.NotNil(t, redirect)
	assert.Equal(t, "/auctions", redirect.Value)
}

func TestAuthHandlers_SSOCallback_Success(t *testing.T) {
	var gotInput service.CompleteSSOInput
	svc := &mockAuthService{
		completeSSOFunc: func(ctx context.Context, in service.CompleteSSOInput) (domainauth.Session, error) {
			gotInput = in
			return *testSession(domainauth.RoleUser), nil
		},
	}
	h := &AuthHandlers{Svc: svc, Sessions: newFakeSessions()}

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=test-state", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "test-state"})
	req.AddCookie(&http.Cookie{Name: "oauth_nonce", Value: "test-nonce"})
	req.AddCookie(&http.Cookie{Name: "oauth_redirect", Value: "/auctions"})
	w := httptest.NewRecorder()

	h.SSOCallback(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auctions", w.Header().Get("Location"))
	assert.Equal(t, "abc", gotInput.Code)
	assert.Equal(t, "test-state", gotInput.State)
	assert.Equal(t, "test-nonce", gotInput.Nonce)

	cookie := cookieByName(t, w, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "sess-1", cookie.Value)
}

func TestAuthHandlers_SSOCallback_StateMismatch(t *testing.T) {
	h := &AuthHandlers{Svc: &mockAuthService{}, Sessions: newFakeSessions()}

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=evil", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "test-state"})
	w := httptest.NewRecorder()

	h.SSOCallback(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_state", resp["error"])
}

func TestAuthHandlers_SSOCallback_MissingCode(t *testing.T) {
	h := &AuthHandlers{Svc: &mockAuthService{}, Sessions: newFakeSessions()}

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?state=test-state", nil)
	w := httptest.NewRecorder()

	h.SSOCallback(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/auctions", "/auctions"},
		{"/auctions?page=2", "/auctions?page=2"},
		{"https://evil.example.com/", "/"},
		{"//evil.example.com/", "/"},
		{"no-leading-slash", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, safeRedirectPath(tt.in), "input %q", tt.in)
	}
}

func TestSetSessionCookie_ExpiresWithSession(t *testing.T) {
	sess := *testSession(domainauth.RoleUser)
	sess.ExpiresAt = time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	w := httptest.NewRecorder()
	setSessionCookie(w, req, "", sess)

	cookie := cookieByName(t, w, sessionCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Expires.Equal(sess.ExpiresAt))
}
