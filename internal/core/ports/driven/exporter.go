package driven

import (
	"context"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
)

// DocumentExporter triggers remote document export and retrieves the
// resulting bytes. The two calls are sequential: TriggerExport returns a
// transient reference that Fetch then downloads.
type DocumentExporter interface {
	// TriggerExport requests an export job for the profile and returns
	// the transient download reference. Returns
	// domain.ErrExportUnavailable when the source yields no usable
	// reference (profile not exportable, permission denied).
	TriggerExport(ctx context.Context, id domain.ProfileID) (string, error)

	// Fetch downloads the bytes at the transient reference. Transport
	// failures are retryable (domain.IsRetryable).
	Fetch(ctx context.Context, ref string) ([]byte, error)
}
