package ports

import (
	"context"
	"io"

	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
	"github.com/lotview/auction-ui-api/internal/domain/model"
)

// Credential is the opaque token the auction backend issued at login. It
// is carried on every call made on a user's behalf. An empty credential is
// sent as-is; the backend answers 401 and the caller's session is torn
// down through the usual path.
type Credential string

// CSVExport is a streamed CSV download from the backend.
// Close the body when done.
type CSVExport struct {
	Body     io.ReadCloser
	Filename string
}

// AuctionGateway is the typed client for every auction-backend endpoint
// this service consumes. Implementations classify failures into the
// model error taxonomy (ErrUnauthorized, ValidationError,
// ErrBackendUnavailable, ErrNotFound).
type AuctionGateway interface {
	// Login verifies credentials and returns the user profile plus the
	// backend credential for subsequent calls.
	Login(ctx context.Context, email, password string) (domainauth.Profile, Credential, error)

	// Logout invalidates the backend credential. Best-effort.
	Logout(ctx context.Context, cred Credential) error

	// Register creates a user account (admin operation).
	Register(ctx context.Context, cred Credential, in model.RegisterInput) error

	// ListAuctions fetches one page of the filtered auction list.
	ListAuctions(ctx context.Context, cred Credential, f model.AuctionFilters, page int) (model.AuctionPage, error)

	// Statuses returns the distinct auction status values for the filter dropdown.
	Statuses(ctx context.Context, cred Credential) ([]string, error)

	// Counts returns the sparse date→count mapping for the calendar,
	// keyed MM/DD/YYYY, restricted by the same filters as the list.
	Counts(ctx context.Context, cred Credential, f model.AuctionFilters) (map[string]int, error)

	// AuctionsByDate returns the auctions on one calendar day (MM/DD/YYYY).
	AuctionsByDate(ctx context.Context, cred Credential, date string) ([]model.Auction, error)

	// DownloadCSV streams the filtered auction set as CSV with the exact
	// same filter parameters as the current list query.
	DownloadCSV(ctx context.Context, cred Credential, f model.AuctionFilters) (*CSVExport, error)

	// Analysis returns the dashboard overview aggregate.
	Analysis(ctx context.Context, cred Credential) (model.Analysis, error)

	// User management (admin operations).
	ListUsers(ctx context.Context, cred Credential) ([]model.User, error)
	GetUser(ctx context.Context, cred Credential, id int) (model.User, error)
	UpdateUser(ctx context.Context, cred Credential, id int, in model.UserUpdate) error
	DeleteUser(ctx context.Context, cred Credential, id int) error

	// Scraper control and scheduling.
	ScraperDetails(ctx context.Context, cred Credential) (model.ScraperDetails, error)
	StartScraper(ctx context.Context, cred Credential) error
	SetSchedule(ctx context.Context, cred Credential, in model.ScheduleInput) error
	SetNextRunRange(ctx context.Context, cred Credential, rng model.RunRange) error
	SetDailyRunRange(ctx context.Context, cred Credential, rng model.RunRange) error
}
