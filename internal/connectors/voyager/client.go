package voyager

import (
	"context"
	"io"
	"net/http"

	"github.com/custodia-labs/tenure-cli/internal/core/ports/driven"
)

// csrfToken is the dummy CSRF pair value. The endpoint only requires
// the JSESSIONID cookie and Csrf-Token header to match.
const csrfToken = "a"

// Ensure Client implements both connector ports.
var (
	_ driven.ProfileSearcher  = (*Client)(nil)
	_ driven.DocumentExporter = (*Client)(nil)
)

// Client speaks to the voyager-style API. It implements the search
// (Result Paginator) and export (Document Acquirer transport) ports.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *RateLimiter
}

// NewClient creates a connector client from configuration.
func NewClient(cfg Config) (*Client, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: NewRateLimiter(cfg.RequestsPerSecond),
	}, nil
}

// do sends one authenticated request through the rate limiter.
// The caller owns the response body.
func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	if rlErr := c.limiter.CheckRateLimit(resp); rlErr != nil {
		drainAndClose(resp.Body)
		return nil, rlErr
	}
	return resp, nil
}

// authorize attaches the session cookies and CSRF pair.
func (c *Client) authorize(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: "JSESSIONID", Value: csrfToken})
	req.AddCookie(&http.Cookie{Name: "li_at", Value: c.cfg.SessionCookie})
	req.Header.Set("Csrf-Token", csrfToken)
}

// drainAndClose discards the remaining body so the connection can be
// reused.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
