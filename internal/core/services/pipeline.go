package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
	"github.com/custodia-labs/tenure-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tenure-cli/internal/core/ports/driving"
	"github.com/custodia-labs/tenure-cli/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.PipelineRunner = (*Pipeline)(nil)

// Pipeline coordinates one ingestion run: paged search, document
// acquisition, layout extraction and persistence.
type Pipeline struct {
	searcher  driven.ProfileSearcher
	acquirer  *Acquirer
	decoder   driven.DocumentDecoder
	extractor driven.Extractor
	repo      driven.Repository

	// upstreamErrorLimit is how many consecutive failed search pages
	// are tolerated before the run aborts.
	upstreamErrorLimit int
}

// NewPipeline creates a new pipeline runner.
func NewPipeline(
	searcher driven.ProfileSearcher,
	acquirer *Acquirer,
	decoder driven.DocumentDecoder,
	extractor driven.Extractor,
	repo driven.Repository,
	upstreamErrorLimit int,
) *Pipeline {
	return &Pipeline{
		searcher:           searcher,
		acquirer:           acquirer,
		decoder:            decoder,
		extractor:          extractor,
		repo:               repo,
		upstreamErrorLimit: upstreamErrorLimit,
	}
}

// Run processes search results [start, end) sequentially. One
// identifier is fully acquired, extracted and committed before the next
// begins; per-identifier failures are counted and contained. The
// summary is returned even when the run aborts early.
func (p *Pipeline) Run(ctx context.Context, query domain.SearchQuery, start, end int) (*domain.RunSummary, error) {
	summary := &domain.RunSummary{RunID: uuid.NewString()}

	logger.Info("Starting run %s for results [%d, %d)", summary.RunID, start, end)

	ids, errs := p.searcher.Search(ctx, query, start, end)

	consecutiveUpstream := 0
	for {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			summary.UpstreamErrors++
			consecutiveUpstream++
			logger.Warn("Search page failed: %v", err)
			if consecutiveUpstream > p.upstreamErrorLimit {
				return summary, fmt.Errorf("aborting after %d consecutive upstream errors: %w",
					consecutiveUpstream, err)
			}

		case id, ok := <-ids:
			if !ok {
				logger.Info("Run %s complete: %s", summary.RunID, summary)
				return summary, nil
			}
			consecutiveUpstream = 0
			summary.Total++
			p.processOne(ctx, id, summary)
		}
	}
}

// processOne runs one identifier through acquire, extract and commit,
// classifying any failure into the matching summary bucket.
func (p *Pipeline) processOne(ctx context.Context, id domain.ProfileID, summary *domain.RunSummary) {
	logger.Debug("Processing profile %s", id)

	doc, err := p.acquirer.Acquire(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrExportUnavailable) {
			summary.ExportSkipped++
			logger.Debug("Export unavailable for %s, skipping", id)
			return
		}
		summary.DownloadFailed++
		logger.Warn("Download failed for %s: %v", id, err)
		return
	}

	rec, err := p.extract(doc)
	if err != nil {
		summary.LayoutUnrecognized++
		logger.Warn("Unrecognized layout in document for %s: %v", id, err)
		return
	}

	if _, err := p.repo.Commit(ctx, rec); err != nil {
		summary.PersistenceFailed++
		logger.Warn("Commit failed for %s: %v", id, err)
		return
	}

	summary.Succeeded++
	logger.Debug("Committed record for %s (%s)", id, rec.Name)
}

// extract decodes the document bytes and classifies the layout into a
// person record.
func (p *Pipeline) extract(doc *domain.ProfileDocument) (*domain.PersonRecord, error) {
	elems, err := p.decoder.Decode(doc.Content)
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	rec, err := p.extractor.Extract(elems)
	if err != nil {
		return nil, fmt.Errorf("extracting record: %w", err)
	}
	return rec, nil
}
