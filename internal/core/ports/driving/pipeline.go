package driving

import (
	"context"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
)

// PipelineRunner coordinates the acquisition, extraction and
// persistence of profiles over an identifier range.
type PipelineRunner interface {
	// Run processes search results [start, end) sequentially: one
	// identifier is fully acquired, extracted and committed before the
	// next begins. Per-identifier failures are contained and counted;
	// the run aborts early only on cancellation or when consecutive
	// upstream failures exceed the configured limit. The summary is
	// returned even when the run aborts.
	Run(ctx context.Context, query domain.SearchQuery, start, end int) (*domain.RunSummary, error)
}

// ReplayRunner re-runs extraction and persistence over previously
// archived documents, without touching the search or export endpoints.
type ReplayRunner interface {
	// Replay processes every archived document in stable order.
	Replay(ctx context.Context) (*domain.RunSummary, error)
}

// StatusReporter reports the persisted table state.
type StatusReporter interface {
	// Counts returns row counts for the five persistent tables.
	Counts(ctx context.Context) (*domain.TableCounts, error)
}
