package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
	"github.com/custodia-labs/tenure-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tenure-cli/internal/core/ports/driving"
	"github.com/custodia-labs/tenure-cli/internal/logger"
)

// Ensure Replay implements the interface.
var _ driving.ReplayRunner = (*Replay)(nil)

// Replay re-runs extraction and persistence over archived documents.
// It never touches the network, so a fixed extractor bug can be applied
// to a past crawl without re-exporting anything.
type Replay struct {
	archive   driven.DocumentArchive
	decoder   driven.DocumentDecoder
	extractor driven.Extractor
	repo      driven.Repository
}

// NewReplay creates a new replay runner.
func NewReplay(
	archive driven.DocumentArchive,
	decoder driven.DocumentDecoder,
	extractor driven.Extractor,
	repo driven.Repository,
) *Replay {
	return &Replay{
		archive:   archive,
		decoder:   decoder,
		extractor: extractor,
		repo:      repo,
	}
}

// Replay processes every archived document in stable order. Failures
// are contained and counted per document, same as a live run.
func (r *Replay) Replay(ctx context.Context) (*domain.RunSummary, error) {
	summary := &domain.RunSummary{RunID: uuid.NewString()}

	ids, err := r.archive.List(ctx)
	if err != nil {
		return summary, fmt.Errorf("listing archive: %w", err)
	}

	logger.Info("Replaying %d archived documents (run %s)", len(ids), summary.RunID)

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Total++

		doc, err := r.archive.Get(ctx, id)
		if err != nil {
			summary.DownloadFailed++
			logger.Warn("Reading archived document %s: %v", id, err)
			continue
		}

		elems, err := r.decoder.Decode(doc.Content)
		if err != nil {
			summary.LayoutUnrecognized++
			logger.Warn("Decoding archived document %s: %v", id, err)
			continue
		}

		rec, err := r.extractor.Extract(elems)
		if err != nil {
			summary.LayoutUnrecognized++
			logger.Warn("Unrecognized layout in archived document %s: %v", id, err)
			continue
		}

		if _, err := r.repo.Commit(ctx, rec); err != nil {
			summary.PersistenceFailed++
			logger.Warn("Commit failed for %s: %v", id, err)
			continue
		}
		summary.Succeeded++
	}

	logger.Info("Replay %s complete: %s", summary.RunID, summary)
	return summary, nil
}
