package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Gateway  ports.AuctionGateway
	Provider ports.AuthProvider // oauth/mock mode only
	Roles    ports.RoleMapper   // oauth/mock mode only
	Sessions *SessionManager
}

// AuthService runs both login flows: credential login proxied to the
// auction backend, and the SSO code flow. Either way the result is a
// managed session.
type AuthService struct {
	gateway  ports.AuctionGateway
	provider ports.AuthProvider
	roles    ports.RoleMapper
	sessions *SessionManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		gateway:  opts.Gateway,
		provider: opts.Provider,
		roles:    opts.Roles,
		sessions: opts.Sessions,
	}
}

// Login verifies credentials against the auction backend and opens a
// session carrying the backend's token. ErrUnauthorized means bad
// credentials here, not an expired session.
func (s *AuthService) Login(ctx context.Context, email, password string) (domainauth.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domainauth.Session{}, model.Validationf("email and password are required")
	}

	profile, cred, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("backend login: %w", err)
	}

	return s.sessions.Login(ctx, profile, cred), nil
}

// Logout tears the session down and best-effort invalidates the backend
// credential. The local session dies regardless of what the backend says.
func (s *AuthService) Logout(ctx context.Context, sess *domainauth.Session) {
	if sess == nil {
		return
	}
	if sess.BackendToken != "" {
		// The backend call may fail; the credential dies with the
		// session either way.
		_ = s.gateway.Logout(ctx, ports.Credential(sess.BackendToken))
	}
	s.sessions.Logout(ctx, sess.ID)
}

// Register creates a user account through the backend. Admin only,
// enforced at the route layer.
func (s *AuthService) Register(ctx context.Context, sess *domainauth.Session, in model.RegisterInput) error {
	if sess == nil {
		return model.ErrUnauthorized
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return model.Validationf("email and password are required")
	}
	return s.gateway.Register(ctx, ports.Credential(sess.BackendToken), in)
}

// BeginLoginResult contains the result of beginning an SSO login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginSSO initiates the SSO flow and returns the provider auth URL with
// state and nonce. Only available when an AuthProvider is configured.
func (s *AuthService) BeginSSO(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if s.provider == nil {
		return nil, errors.New("sso is not configured")
	}
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteSSOInput groups parameters for completing an SSO login flow.
type CompleteSSOInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteSSO exchanges the code for an identity, maps groups to a role,
// and opens a session. SSO sessions carry no backend credential; backend
// calls made on their behalf rely on the backend trusting the service.
func (s *AuthService) CompleteSSO(ctx context.Context, in CompleteSSOInput) (domainauth.Session, error) {
	if s.provider == nil {
		return domainauth.Session{}, errors.New("sso is not configured")
	}
	if in.Code == "" {
		return domainauth.Session{}, errors.New("authorization code is required")
	}
	if in.State == "" {
		return domainauth.Session{}, errors.New("state parameter is required")
	}
	if in.Nonce == "" {
		return domainauth.Session{}, errors.New("nonce parameter is required")
	}

	identity, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  in.Code,
		State: in.State,
		Nonce: in.Nonce,
	})
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("exchange authorization code: %w", err)
	}

	role := domainauth.RoleGuest
	if s.roles != nil {
		role = s.roles.Map(identity.Groups)
	}

	profile := domainauth.Profile{
		Name:  strings.TrimSpace(identity.FirstName + " " + identity.LastName),
		Email: identity.Email,
		Role:  role,
	}

	return s.sessions.Login(ctx, profile, ""), nil
}
