package domain

import (
	"errors"
	"fmt"
	"time"
)

// Default pipeline settings.
const (
	// DefaultPageSize is the search page size.
	DefaultPageSize = 10

	// DefaultMaxRetries caps download retry attempts.
	DefaultMaxRetries = 3

	// DefaultInitialBackoff is the first retry delay.
	DefaultInitialBackoff = time.Second

	// DefaultMaxBackoff caps the retry delay.
	DefaultMaxBackoff = 30 * time.Second

	// DefaultUpstreamErrorLimit is how many consecutive failed search
	// pages are tolerated before the run aborts.
	DefaultUpstreamErrorLimit = 3

	// DefaultRequestsPerSecond throttles calls to the external source.
	DefaultRequestsPerSecond = 1.0
)

// Settings holds the pipeline configuration.
type Settings struct {
	// SessionCookie is the li_at session cookie carried on every
	// request to the external source.
	SessionCookie string `toml:"session_cookie"`

	// BaseURL is the external source's base URL. Tests point it at a
	// local server.
	BaseURL string `toml:"base_url"`

	// PageSize is the search page size.
	PageSize int `toml:"page_size"`

	// MaxRetries caps download retry attempts per profile.
	MaxRetries int `toml:"max_retries"`

	// UpstreamErrorLimit is how many consecutive failed search pages
	// are tolerated before the run aborts. Zero means the first
	// upstream error is fatal.
	UpstreamErrorLimit int `toml:"upstream_error_limit"`

	// RequestsPerSecond throttles calls to the external source.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// ArchiveDir is where exported documents are stored, one file per
	// profile. Empty means ~/.tenure/documents.
	ArchiveDir string `toml:"archive_dir"`

	// DataDir is where the database lives. Empty means ~/.tenure/data.
	DataDir string `toml:"data_dir"`
}

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() Settings {
	return Settings{
		PageSize:           DefaultPageSize,
		MaxRetries:         DefaultMaxRetries,
		UpstreamErrorLimit: DefaultUpstreamErrorLimit,
		RequestsPerSecond:  DefaultRequestsPerSecond,
	}
}

// Validate checks the settings are usable for a network run.
func (s Settings) Validate() error {
	if s.SessionCookie == "" {
		return fmt.Errorf("%w: session_cookie is required", ErrInvalidInput)
	}
	if s.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be positive", ErrInvalidInput)
	}
	if s.MaxRetries < 0 {
		return fmt.Errorf("%w: max_retries must not be negative", ErrInvalidInput)
	}
	if s.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: requests_per_second must be positive", ErrInvalidInput)
	}
	return nil
}

// ErrSettingsNotFound indicates no config file exists yet.
var ErrSettingsNotFound = errors.New("settings not found")
