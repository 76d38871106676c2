package backend

// Package backend implements ports.AuctionGateway against the auction
// backend's REST API. All response classification lives here: call sites
// see the model error taxonomy, never raw status codes.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/ports"
)

// credentialCookie is the backend's auth cookie name. The backend sets it
// on login; we replay it on every subsequent call.
const credentialCookie = "access_token"

// Config holds configuration for the backend client.
type Config struct {
	// BaseURL is the backend API root including any path prefix.
	BaseURL string
	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration
	// RetryLimit is the number of retries for idempotent GETs.
	RetryLimit int
	// Client overrides the HTTP client (tests). Optional.
	Client *http.Client
	// Logger for retry/decode warnings. Optional.
	Logger *slog.Logger
}

// Client is the HTTP implementation of ports.AuctionGateway.
type Client struct {
	baseURL    string
	client     *http.Client
	retryLimit int
	logger     *slog.Logger
}

// Compile-time conformance to the gateway port.
var _ ports.AuctionGateway = (*Client)(nil)

// NewClient builds a backend API client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("backend base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parse backend base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	retries := cfg.RetryLimit
	if retries < 0 {
		retries = 0
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    base,
		client:     hc,
		retryLimit: retries,
		logger:     logger,
	}, nil
}

// callOpts describes one backend request.
type callOpts struct {
	method string
	path   string
	query  url.Values
	cred   ports.Credential
	body   any // JSON-encoded when non-nil
	out    any // JSON-decoded into when non-nil
}

// call performs a request with classification. GETs are retried with a
// short linear backoff; mutations are attempted once.
func (c *Client) call(ctx context.Context, opts callOpts) error {
	attempts := 1
	if opts.method == http.MethodGet {
		attempts = c.retryLimit + 1
	}

	var lastErr error
	for attempt := range attempts {
		lastErr = c.doOnce(ctx, opts)
		if lastErr == nil || !errors.Is(lastErr, model.ErrBackendUnavailable) {
			return lastErr
		}
		if attempt < attempts-1 {
			// Simple linear backoff to avoid thundering retries.
			delay := time.Duration(attempt+1) * 200 * time.Millisecond
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %w", model.ErrBackendUnavailable, ctx.Err())
			case <-time.After(delay):
			}
			c.logger.WarnContext(ctx, "retrying backend request",
				"path", opts.path, "attempt", attempt+1, "error", lastErr)
		}
	}
	return lastErr
}

func (c *Client) doOnce(ctx context.Context, opts callOpts) error {
	resp, err := c.send(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := classify(resp, opts.path); err != nil {
		return err
	}

	if opts.out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(opts.out); err != nil {
		return fmt.Errorf("decode %s response: %w", opts.path, err)
	}
	return nil
}

// send builds and executes the request, mapping transport failures to
// ErrBackendUnavailable. The caller owns the response body.
func (c *Client) send(ctx context.Context, opts callOpts) (*http.Response, error) {
	target := c.baseURL + opts.path
	if len(opts.query) > 0 {
		target += "?" + opts.query.Encode()
	}

	var body io.Reader
	if opts.body != nil {
		encoded, err := json.Marshal(opts.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", opts.path, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, opts.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", opts.path, err)
	}
	if opts.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.cred != "" {
		req.AddCookie(&http.Cookie{Name: credentialCookie, Value: string(opts.cred)})
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrBackendUnavailable, err)
	}
	return resp, nil
}

// decodeBody JSON-decodes a response body the caller still owns.
func decodeBody(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", resp.Request.URL.Path, err)
	}
	return nil
}

// apiMessage is the backend's error envelope: {"success": false, "message": "..."}
// with "error" used by a couple of older endpoints.
type apiMessage struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	ErrMsg  string `json:"error"`
}

func (m apiMessage) text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.ErrMsg
}

// classify maps a non-2xx response to the model error taxonomy. The body
// is consumed for error responses.
func classify(resp *http.Response, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var msg apiMessage
	// Best effort; an unreadable error body still classifies by status.
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &msg)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", path, model.ErrUnauthorized)
	case http.StatusForbidden:
		return fmt.Errorf("%s: %w", path, model.ErrForbidden)
	case http.StatusBadRequest:
		return &model.ValidationError{Message: msg.text()}
	case http.StatusNotFound:
		if t := msg.text(); t != "" {
			return fmt.Errorf("%s: %s: %w", path, t, model.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", path, model.ErrNotFound)
	default:
		if t := msg.text(); t != "" {
			return fmt.Errorf("backend %s: status %d: %s", path, resp.StatusCode, t)
		}
		return fmt.Errorf("backend %s: status %d", path, resp.StatusCode)
	}
}
