package config

import "time"

// BackendConfig contains configuration for the auction backend REST API.
// The backend owns persistence, authentication verification, and the
// scraper; this service only calls it over HTTP.
type BackendConfig struct {
	// BaseURL is the root of the backend API, including any path prefix
	// (e.g., "http://localhost:5000/api").
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:5000/api"`

	// Timeout bounds each backend request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`

	// RetryLimit is the number of retries for idempotent GET requests.
	RetryLimit int `env:"RETRY_LIMIT" envDefault:"2"`

	// CountsCacheTTL is how long per-filter auction-count maps are cached.
	// Month navigation in the calendar re-reads counts frequently; a short
	// TTL keeps that cheap without serving stale data for long.
	CountsCacheTTL time.Duration `env:"COUNTS_CACHE_TTL" envDefault:"60s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	if b.Timeout <= 0 {
		b.Timeout = 30 * time.Second
	}
	if b.RetryLimit < 0 {
		b.RetryLimit = 0
	}
	if b.CountsCacheTTL <= 0 {
		b.CountsCacheTTL = 60 * time.Second
	}
}
