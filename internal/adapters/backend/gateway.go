package backend

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/ports"
)

// loginResponse is the backend's login envelope. The profile fields sit
// flat on the response, not nested.
type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

// Login verifies credentials against POST /login. The backend issues its
// credential as an HttpOnly cookie on the response; we lift it off and
// hand it to the session layer.
func (c *Client) Login(ctx context.Context, email, password string) (domainauth.Profile, ports.Credential, error) {
	resp, err := c.send(ctx, callOpts{
		method: http.MethodPost,
		path:   "/login",
		body:   map[string]string{"email": email, "password": password},
	})
	if err != nil {
		return domainauth.Profile{}, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := classify(resp, "/login"); err != nil {
		return domainauth.Profile{}, "", err
	}

	var out loginResponse
	if err := decodeBody(resp, &out); err != nil {
		return domainauth.Profile{}, "", err
	}

	cred := credentialFromCookies(resp.Cookies())
	if cred == "" {
		return domainauth.Profile{}, "", errors.New("login response carried no credential cookie")
	}

	profile := domainauth.Profile{
		Name:  out.Name,
		Email: out.Email,
		Role:  domainauth.ParseRole(out.Role),
	}
	return profile, cred, nil
}

// Logout invalidates the backend credential via POST /logout.
func (c *Client) Logout(ctx context.Context, cred ports.Credential) error {
	return c.call(ctx, callOpts{method: http.MethodPost, path: "/logout", cred: cred})
}

// Register creates a user account via POST /register.
func (c *Client) Register(ctx context.Context, cred ports.Credential, in model.RegisterInput) error {
	return c.call(ctx, callOpts{method: http.MethodPost, path: "/register", cred: cred, body: in})
}

// auctionsResponse is the envelope of GET /auctions.
type auctionsResponse struct {
	Success    bool            `json:"success"`
	Auctions   []model.Auction `json:"auctions"`
	TotalPages int             `json:"total_pages"`
}

// ListAuctions fetches one page of the filtered list. Missing fields are
// default-filled here: nil auctions become an empty slice and a zero
// total_pages becomes one page, so views never branch on absence.
func (c *Client) ListAuctions(
	ctx context.Context,
	cred ports.Credential,
	f model.AuctionFilters,
	page int,
) (model.AuctionPage, error) {
	var out auctionsResponse
	err := c.call(ctx, callOpts{
		method: http.MethodGet,
		path:   "/auctions",
		query:  model.PageQuery(f, page),
		cred:   cred,
		out:    &out,
	})
	if err != nil {
		return model.AuctionPage{}, err
	}

	if out.Auctions == nil {
		out.Auctions = []model.Auction{}
	}
	if out.TotalPages < 1 {
		out.TotalPages = 1
	}
	return model.AuctionPage{Auctions: out.Auctions, TotalPages: out.TotalPages}, nil
}

// Statuses returns the distinct status values from GET /auctions-status.
func (c *Client) Statuses(ctx context.Context, cred ports.Credential) ([]string, error) {
	var out struct {
		Statuses []string `json:"auction_status"`
	}
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/auctions-status", cred: cred, out: &out})
	if err != nil {
		return nil, err
	}
	if out.Statuses == nil {
		out.Statuses = []string{}
	}
	return out.Statuses, nil
}

// Counts returns the sparse date→count mapping from GET /auction_counts.
// The response is a bare JSON object keyed by MM/DD/YYYY.
func (c *Client) Counts(
	ctx context.Context,
	cred ports.Credential,
	f model.AuctionFilters,
) (map[string]int, error) {
	out := map[string]int{}
	err := c.call(ctx, callOpts{
		method: http.MethodGet,
		path:   "/auction_counts",
		query:  f.Query(),
		cred:   cred,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AuctionsByDate returns the auctions on one day via GET /auctions-by-date.
func (c *Client) AuctionsByDate(
	ctx context.Context,
	cred ports.Credential,
	date string,
) ([]model.Auction, error) {
	var out struct {
		Auctions []model.Auction `json:"auctions"`
	}
	q := url.Values{}
	q.Set("date", date)
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/auctions-by-date", query: q, cred: cred, out: &out})
	if err != nil {
		return nil, err
	}
	if out.Auctions == nil {
		out.Auctions = []model.Auction{}
	}
	return out.Auctions, nil
}

// DownloadCSV streams GET /auctions/download with the exact filter
// parameters of the current list query. The caller owns the body.
func (c *Client) DownloadCSV(
	ctx context.Context,
	cred ports.Credential,
	f model.AuctionFilters,
) (*ports.CSVExport, error) {
	resp, err := c.send(ctx, callOpts{
		method: http.MethodGet,
		path:   "/auctions/download",
		query:  f.Query(),
		cred:   cred,
	})
	if err != nil {
		return nil, err
	}

	if err := classify(resp, "/auctions/download"); err != nil {
		_ = resp.Body.Close()
		return nil, err
	}

	name := filenameFromDisposition(resp.Header.Get("Content-Disposition"))
	if name == "" {
		name = fmt.Sprintf("auctions_%s.csv", time.Now().Format("20060102_150405"))
	}
	return &ports.CSVExport{Body: resp.Body, Filename: name}, nil
}

// Analysis returns the dashboard aggregate from GET /analysis.
func (c *Client) Analysis(ctx context.Context, cred ports.Credential) (model.Analysis, error) {
	var out struct {
		Success       bool `json:"success"`
		TotalUsers    int  `json:"total_users"`
		TotalAuctions int  `json:"total_auctions"`
	}
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/analysis", cred: cred, out: &out})
	if err != nil {
		return model.Analysis{}, err
	}
	return model.Analysis{TotalUsers: out.TotalUsers, TotalAuctions: out.TotalAuctions}, nil
}

// ListUsers returns all accounts from GET /users.
func (c *Client) ListUsers(ctx context.Context, cred ports.Credential) ([]model.User, error) {
	var out struct {
		Success bool         `json:"success"`
		Users   []model.User `json:"users"`
	}
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/users", cred: cred, out: &out})
	if err != nil {
		return nil, err
	}
	if out.Users == nil {
		out.Users = []model.User{}
	}
	return out.Users, nil
}

// GetUser returns one account from GET /users/{id}.
func (c *Client) GetUser(ctx context.Context, cred ports.Credential, id int) (model.User, error) {
	var out struct {
		Success bool       `json:"success"`
		User    model.User `json:"user"`
	}
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/users/" + strconv.Itoa(id), cred: cred, out: &out})
	if err != nil {
		return model.User{}, err
	}
	return out.User, nil
}

// UpdateUser edits an account via PUT /users/{id}.
func (c *Client) UpdateUser(ctx context.Context, cred ports.Credential, id int, in model.UserUpdate) error {
	return c.call(ctx, callOpts{
		method: http.MethodPut,
		path:   "/users/" + strconv.Itoa(id),
		cred:   cred,
		body:   in,
	})
}

// DeleteUser removes an account via DELETE /users/{id}.
func (c *Client) DeleteUser(ctx context.Context, cred ports.Credential, id int) error {
	return c.call(ctx, callOpts{method: http.MethodDelete, path: "/users/" + strconv.Itoa(id), cred: cred})
}

// ScraperDetails reports the scraper's last run and schedule from
// GET /scraper/details.
func (c *Client) ScraperDetails(ctx context.Context, cred ports.Credential) (model.ScraperDetails, error) {
	var out model.ScraperDetails
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/scraper/details", cred: cred, out: &out})
	if err != nil {
		return model.ScraperDetails{}, err
	}
	return out, nil
}

// StartScraper triggers an immediate run via POST /scraper/start.
func (c *Client) StartScraper(ctx context.Context, cred ports.Credential) error {
	return c.call(ctx, callOpts{method: http.MethodPost, path: "/scraper/start", cred: cred})
}

// SetSchedule updates the scraper schedule via POST /scraper/schedule.
func (c *Client) SetSchedule(ctx context.Context, cred ports.Credential, in model.ScheduleInput) error {
	return c.call(ctx, callOpts{method: http.MethodPost, path: "/scraper/schedule", cred: cred, body: in})
}

// SetNextRunRange restricts the one-off run via POST /scraper/next_run_range.
func (c *Client) SetNextRunRange(ctx context.Context, cred ports.Credential, rng model.RunRange) error {
	body := map[string]string{"next_run_from": rng.From, "next_run_to": rng.To}
	return c.call(ctx, callOpts{method: http.MethodPost, path: "/scraper/next_run_range", cred: cred, body: body})
}

// SetDailyRunRange restricts the daily run via POST /scraper/daily_run_range.
func (c *Client) SetDailyRunRange(ctx context.Context, cred ports.Credential, rng model.RunRange) error {
	body := map[string]string{"daily_run_from": rng.From, "daily_run_to": rng.To}
	return c.call(ctx, callOpts{method: http.MethodPost, path: "/scraper/daily_run_range", cred: cred, body: body})
}

// credentialFromCookies extracts the backend credential from login
// response cookies.
func credentialFromCookies(cookies []*http.Cookie) ports.Credential {
	for _, ck := range cookies {
		if ck.Name == credentialCookie && ck.Value != "" {
			return ports.Credential(ck.Value)
		}
	}
	return ""
}

// filenameFromDisposition pulls the attachment filename off a
// Content-Disposition header, empty when absent or malformed.
func filenameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
