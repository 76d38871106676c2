package bootstrap

import (
	"log/slog"

	"github.com/lotview/auction-ui-api/config"
	"github.com/lotview/auction-ui-api/internal/adapters/devauth"
	"github.com/lotview/auction-ui-api/internal/adapters/oidc"
	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
	"github.com/lotview/auction-ui-api/internal/ports"
)

// BuildAuthProvider creates the SSO identity provider for the configured
// auth mode. Backend mode verifies credentials against the auction
// backend's login endpoint and needs no provider; oauth and mock modes
// return one, or nil when their configuration is incomplete.
//
//nolint:ireturn // callers need the port, not a concrete provider.
func BuildAuthProvider(cfg config.AuthConfig, logger *slog.Logger) ports.AuthProvider {
	switch cfg.Mode {
	case config.AuthModeOAuth:
		return buildOIDCProvider(cfg, logger)
	case config.AuthModeMock:
		return buildDevProvider(cfg, logger)
	default:
		return nil
	}
}

//nolint:ireturn // callers need the port, not a concrete provider.
func buildOIDCProvider(cfg config.AuthConfig, logger *slog.Logger) ports.AuthProvider {
	oauth := cfg.OAuth
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		if logger != nil {
			logger.Warn("oauth mode selected but required config missing; sso disabled",
				"discovery_url_empty", oauth.DiscoveryURL == "",
				"client_id_empty", oauth.ClientID == "",
				"client_secret_empty", oauth.ClientSecret == "",
			)
		}
		return nil
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
		LogoutURL:    oauth.LogoutURL,
	})
	if err != nil {
		if logger != nil {
			logger.Warn("failed to create oidc provider, sso disabled", "error", err)
		}
		return nil
	}
	return prov
}

//nolint:ireturn // callers need the port, not a concrete provider.
func buildDevProvider(cfg config.AuthConfig, logger *slog.Logger) ports.AuthProvider {
	prov, err := devauth.NewProvider(devauth.Config{
		Name:   cfg.DevAuth.Name,
		Email:  cfg.DevAuth.Email,
		Groups: devGroups(cfg),
		// session duration defaults inside provider
	})
	if err != nil {
		if logger != nil {
			logger.Warn("failed to create dev auth provider, sso disabled", "error", err)
		}
		return nil
	}
	return prov
}

// devGroups maps the configured dev role onto the IdP group names the
// role mapper expects, so mock mode exercises the same mapping path as
// oauth mode.
func devGroups(cfg config.AuthConfig) []string {
	if domainauth.ParseRole(cfg.DevAuth.Role) == domainauth.RoleAdmin {
		return []string{cfg.AdminGroup}
	}
	return []string{cfg.UserGroup}
}
