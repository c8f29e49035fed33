package voyager

import (
	"errors"
	"fmt"
	"time"
)

// Connector-specific errors.
var (
	// ErrMalformedPayload indicates the search endpoint returned a
	// payload the connector could not decode.
	ErrMalformedPayload = errors.New("voyager: malformed search payload")

	// ErrEmptyReference indicates the export trigger returned a
	// response with no download reference.
	ErrEmptyReference = errors.New("voyager: export response carries no download reference")
)

// APIError represents a non-success response from the search endpoint.
// Pages that fail with an APIError may be skipped or abort the run per
// pipeline configuration.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("voyager: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// DownloadError represents a transport failure while fetching exported
// document bytes.
type DownloadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *DownloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("voyager: download failed (URL: %s): %v", e.URL, e.Err)
	}
	return fmt.Sprintf("voyager: download failed with status %d (URL: %s)", e.StatusCode, e.URL)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure is worth retrying. Transport
// errors and server-side statuses are; client errors are not.
func (e *DownloadError) Retryable() bool {
	if e.Err != nil {
		return true
	}
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// RateLimitError represents a rate limit rejection with its retry hint.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("voyager: rate limit exceeded, retry after %s", e.RetryAfter)
}

// Retryable lets the pipeline's retry policy wait out the limit.
func (e *RateLimitError) Retryable() bool {
	return true
}

// IsUpstream checks if the error indicates the search source
// misbehaving (non-success status or undecodable payload).
func IsUpstream(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return true
	}
	return errors.Is(err, ErrMalformedPayload)
}

// IsDownload checks if the error is a document download failure.
func IsDownload(err error) bool {
	var dlErr *DownloadError
	return errors.As(err, &dlErr)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rlErr *RateLimitError
	return errors.As(err, &rlErr)
}
