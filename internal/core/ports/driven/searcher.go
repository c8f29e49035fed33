package driven

import (
	"context"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
)

// ProfileSearcher issues paged people searches against the external
// source and yields profile identifiers lazily.
type ProfileSearcher interface {
	// Search yields identifiers for results [start, end) in page order,
	// then within-page order. It advances the offset by the configured
	// page size until end is reached or a page comes back short (source
	// exhausted). Page failures are sent on the error channel; the
	// caller decides whether to continue with the next page or abort.
	// Both channels are closed when the search finishes.
	Search(ctx context.Context, query domain.SearchQuery, start, end int) (<-chan domain.ProfileID, <-chan error)
}
