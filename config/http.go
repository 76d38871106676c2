package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the base URL of the application (e.g., "https://auctions.example.com").
	// Used for generating absolute URLs such as pagination links.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// ReadTimeoutSeconds and WriteTimeoutSeconds bound request handling.
	ReadTimeoutSeconds  int `env:"HTTP_READ_TIMEOUT_SECONDS"  envDefault:"30"`
	WriteTimeoutSeconds int `env:"HTTP_WRITE_TIMEOUT_SECONDS" envDefault:"60"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.ReadTimeoutSeconds < 1 {
		h.ReadTimeoutSeconds = 30
	}
	// CSV export streams the full filtered set; keep the write window generous.
	if h.WriteTimeoutSeconds < 1 {
		h.WriteTimeoutSeconds = 60
	}
}
