package voyager

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
)

const (
	// DefaultBaseURL is the external source's base URL.
	DefaultBaseURL = "https://www.linkedin.com"

	// DefaultSearchQueryID identifies the people-search GraphQL query.
	DefaultSearchQueryID = "ef3d0937fb65bd7812e32e5a85028e79"

	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Config holds the connector configuration.
type Config struct {
	// BaseURL is the source's base URL. Tests point it at a local
	// server.
	BaseURL string

	// SessionCookie is the li_at session cookie value.
	SessionCookie string

	// SearchQueryID identifies the search GraphQL query version.
	SearchQueryID string

	// PageSize is the number of results requested per search page.
	PageSize int

	// RequestsPerSecond throttles outgoing requests.
	RequestsPerSecond float64

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// FromSettings builds a connector config from pipeline settings,
// applying connector defaults for unset fields.
func FromSettings(s domain.Settings) Config {
	cfg := Config{
		BaseURL:           s.BaseURL,
		SessionCookie:     s.SessionCookie,
		SearchQueryID:     DefaultSearchQueryID,
		PageSize:          s.PageSize,
		RequestsPerSecond: s.RequestsPerSecond,
		Timeout:           DefaultTimeout,
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.SearchQueryID == "" {
		c.SearchQueryID = DefaultSearchQueryID
	}
	if c.PageSize <= 0 {
		c.PageSize = domain.DefaultPageSize
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = domain.DefaultRequestsPerSecond
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.SessionCookie == "" {
		return fmt.Errorf("%w: session cookie is required", domain.ErrInvalidInput)
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("%w: base URL must be http(s)", domain.ErrInvalidInput)
	}
	return nil
}
