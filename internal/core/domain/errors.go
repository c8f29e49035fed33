package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	// The document archive is write-once and returns this on a
	// second save for the same profile.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExportUnavailable indicates a profile cannot be exported
	// (not exportable, permission denied, or the export endpoint
	// returned no usable reference). Non-fatal: the pipeline skips
	// the identifier.
	ErrExportUnavailable = errors.New("export unavailable")

	// ErrUnrecognizedLayout indicates the extractor could not locate
	// a name in the document. Treated as a parse failure, not a crash;
	// the pipeline skips the identifier and logs the document reference.
	ErrUnrecognizedLayout = errors.New("unrecognized layout")

	// ErrRateLimited indicates the external source rejected a request
	// for rate limiting.
	ErrRateLimited = errors.New("rate limited")
)

// Retryable marks errors worth retrying (transient transport failures).
// The retry policy consults it through IsRetryable.
type Retryable interface {
	Retryable() bool
}

// IsRetryable reports whether err, anywhere in its chain, marks itself
// as retryable.
func IsRetryable(err error) bool {
	var r Retryable
	if errors.As(err, &r) {
		return r.Retryable()
	}
	return false
}
