package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/lotview/auction-ui-api/config"
	"github.com/lotview/auction-ui-api/internal/adapters/authroles"
	"github.com/lotview/auction-ui-api/internal/adapters/backend"
	redisadapter "github.com/lotview/auction-ui-api/internal/adapters/redis"
	"github.com/lotview/auction-ui-api/internal/service"
)

// ServiceContainer holds all initialized services and the adapters they
// share, so both the HTTP entrypoint and the admin CLI wire up the same
// way.
type ServiceContainer struct {
	Gateway  *backend.Client
	Sessions *service.SessionManager
	Auth     *service.AuthService
	Auctions *service.AuctionService
	Users    *service.UserService
	Scraper  *service.ScraperService

	redisClient redis.UniversalClient
}

// ServicesConfig contains dependencies for building the service container.
type ServicesConfig struct {
	Config      config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices builds the full service graph: the backend gateway, the
// redis-backed session store and counts cache, and the services on top.
func NewServices(cfg ServicesConfig) (*ServiceContainer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	gateway, err := backend.NewClient(backend.Config{
		BaseURL:    cfg.Config.Backend.BaseURL,
		Timeout:    cfg.Config.Backend.Timeout,
		RetryLimit: cfg.Config.Backend.RetryLimit,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create backend client: %w", err)
	}

	sessionStore := redisadapter.NewSessionStore(cfg.RedisClient, logger)
	countsCache := redisadapter.NewCountsCache(cfg.RedisClient, cfg.Config.Backend.CountsCacheTTL, logger)

	sessions := service.NewSessionManager(service.SessionManagerOptions{
		Sessions: sessionStore,
		TTL:      cfg.Config.Auth.SessionTTL,
		Logger:   logger,
	})

	auth := service.NewAuthService(service.AuthServiceOptions{
		Gateway:  gateway,
		Provider: BuildAuthProvider(cfg.Config.Auth, logger),
		Roles: authroles.StaticRoleMapper{
			AdminGroup: cfg.Config.Auth.AdminGroup,
			UserGroup:  cfg.Config.Auth.UserGroup,
		},
		Sessions: sessions,
	})

	auctions := service.NewAuctionService(service.AuctionServiceOptions{
		Gateway: gateway,
		Counts:  countsCache,
		Logger:  logger,
	})

	users := service.NewUserService(service.UserServiceOptions{
		Gateway: gateway,
	})

	scraper := service.NewScraperService(service.ScraperServiceOptions{
		Gateway:    gateway,
		Invalidate: countsCache.Invalidate,
	})

	return &ServiceContainer{
		Gateway:     gateway,
		Sessions:    sessions,
		Auth:        auth,
		Auctions:    auctions,
		Users:       users,
		Scraper:     scraper,
		redisClient: cfg.RedisClient,
	}, nil
}

// Close releases service resources: expiry timers first, then the redis
// connection they write through.
func (c *ServiceContainer) Close(ctx context.Context, logger *slog.Logger) {
	if c == nil {
		return
	}
	if c.Sessions != nil {
		c.Sessions.Close()
	}
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil && logger != nil {
			logger.WarnContext(ctx, "close redis client", "error", err)
		}
	}
}
