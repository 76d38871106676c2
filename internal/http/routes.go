package httpx

import (
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth     AuthServiceInterface
	Auctions AuctionsServiceInterface
	Users    UsersServiceInterface
	Scraper  ScraperServiceInterface
	Sessions SessionRestorer

	CookieDomain string
	// SSOEnabled exposes the /auth/* browser flow; backend and mock auth
	// modes use /api/login only.
	SSOEnabled bool
	Logger     *slog.Logger
	Now        func() time.Time // optional, tests
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	errs := backendErrorRenderer{Sessions: services.Sessions, CookieDomain: services.CookieDomain}
	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		Sessions:     services.Sessions,
		CookieDomain: services.CookieDomain,
		Logger:       logger,
	}
	auctionHandlers := &AuctionHandlers{Svc: services.Auctions, Errors: errs}
	calendarHandlers := &CalendarHandlers{Svc: services.Auctions, Errors: errs, Now: services.Now}
	userHandlers := &UserHandlers{Svc: services.Users, Errors: errs}
	scraperHandlers := &ScraperHandlers{Svc: services.Scraper, Errors: errs}

	registerAuthRoutes(mux, authHandlers, services)
	registerAuctionRoutes(mux, auctionHandlers, calendarHandlers, services.Sessions)
	registerAdminRoutes(mux, userHandlers, scraperHandlers, services.Sessions)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return Logging(logger)(Recover(logger)(mux))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, services RouterServices) {
	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("POST /api/logout", h.Logout)
	mux.HandleFunc("GET /api/session", h.Session)

	admin := RequireRole(services.Sessions, domainauth.RoleAdmin)
	mux.Handle("POST /api/register", admin(http.HandlerFunc(h.Register)))

	if services.SSOEnabled {
		mux.HandleFunc("GET /auth/login", h.SSOLogin)
		mux.HandleFunc("GET /auth/callback", h.SSOCallback)
		mux.HandleFunc("POST /auth/logout", h.Logout)
	}
}

func registerAuctionRoutes(mux *http.ServeMux, auctions *AuctionHandlers, cal *CalendarHandlers, sessions SessionRestorer) {
	auth := RequireAuth(sessions)

	mux.Handle("GET /api/auctions", auth(http.HandlerFunc(auctions.List)))
	mux.Handle("GET /api/auctions-status", auth(http.HandlerFunc(auctions.Statuses)))
	mux.Handle("GET /api/auction_counts", auth(http.HandlerFunc(auctions.Counts)))
	mux.Handle("GET /api/auctions-by-date", auth(http.HandlerFunc(auctions.ByDate)))
	mux.Handle("GET /api/auctions/download", auth(http.HandlerFunc(auctions.Download)))

	mux.Handle("GET /api/calendar", auth(http.HandlerFunc(cal.Month)))
	mux.Handle("GET /api/calendar/day", auth(http.HandlerFunc(cal.Day)))
}

func registerAdminRoutes(mux *http.ServeMux, users *UserHandlers, scraper *ScraperHandlers, sessions SessionRestorer) {
	admin := RequireRole(sessions, domainauth.RoleAdmin)

	mux.Handle("GET /api/analysis", admin(http.HandlerFunc(users.Analysis)))
	mux.Handle("GET /api/users", admin(http.HandlerFunc(users.List)))
	mux.Handle("GET /api/users/{id}", admin(http.HandlerFunc(users.Get)))
	mux.Handle("PUT /api/users/{id}", admin(http.HandlerFunc(users.Update)))
	mux.Handle("DELETE /api/users/{id}", admin(http.HandlerFunc(users.Delete)))

	mux.Handle("GET /api/scraper/details", admin(http.HandlerFunc(scraper.Details)))
	mux.Handle("POST /api/scraper/start", admin(http.HandlerFunc(scraper.Start)))
	mux.Handle("POST /api/scraper/schedule", admin(http.HandlerFunc(scraper.Schedule)))
	mux.Handle("POST /api/scraper/next_run_range", admin(http.HandlerFunc(scraper.NextRunRange)))
	mux.Handle("POST /api/scraper/daily_run_range", admin(http.HandlerFunc(scraper.DailyRunRange)))
}
