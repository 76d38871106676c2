package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeBackend verifies credentials against the auction backend's login endpoint.
	AuthModeBackend AuthMode = "backend"
	// AuthModeOAuth uses OAuth/OIDC for authentication (enterprise SSO deployments).
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "backend", "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: backend, oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"lotview"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"lotview"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	Name  string `env:"NAME"  envDefault:"Dev User"`
	Email string `env:"EMAIL" envDefault:"dev@example.com"`
	Role  string `env:"ROLE"  envDefault:"admin"`
}

// minSessionTTL is the floor for session lifetime. A session's expiry is
// always at least creation time + 24 hours.
const minSessionTTL = 24 * time.Hour

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"backend"`

	// SessionTTL is the absolute session lifetime. Values below 24h are clamped up.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// AdminGroup is the IdP group granting admin rights (oauth mode).
	AdminGroup string `env:"ADMIN_GROUP" envDefault:"auction-admins"`

	// UserGroup is the IdP group granting regular access (oauth mode).
	UserGroup string `env:"USER_GROUP" envDefault:"auction-users"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL < minSessionTTL {
		a.SessionTTL = minSessionTTL
	}
}
