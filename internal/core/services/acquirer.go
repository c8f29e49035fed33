package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
	"github.com/custodia-labs/tenure-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tenure-cli/internal/logger"
)

// Acquirer obtains the exported document for a profile: it triggers the
// remote export, downloads the result under the retry policy, and
// archives the bytes before handing them on. Profiles already in the
// archive are served from disk without touching the network.
type Acquirer struct {
	exporter driven.DocumentExporter
	archive  driven.DocumentArchive
	retry    driven.RetryPolicy
}

// NewAcquirer creates a new document acquirer.
func NewAcquirer(
	exporter driven.DocumentExporter,
	archive driven.DocumentArchive,
	retry driven.RetryPolicy,
) *Acquirer {
	return &Acquirer{
		exporter: exporter,
		archive:  archive,
		retry:    retry,
	}
}

// Acquire returns the exported document for the profile.
//
// Returns domain.ErrExportUnavailable when the source will not export
// the profile; the caller skips the identifier. Download failures are
// retried per the policy and surface as the last attempt's error.
func (a *Acquirer) Acquire(ctx context.Context, id domain.ProfileID) (*domain.ProfileDocument, error) {
	// Archived profiles are served from disk. The archive is
	// write-once, so a hit means a previous run completed the download.
	archived, err := a.archive.Get(ctx, id)
	if err == nil {
		logger.Debug("Profile %s already archived, skipping export", id)
		return archived, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking archive for %s: %w", id, err)
	}

	ref, err := a.exporter.TriggerExport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("triggering export for %s: %w", id, err)
	}

	var content []byte
	err = a.retry.Do(ctx, func(ctx context.Context) error {
		var fetchErr error
		content, fetchErr = a.exporter.Fetch(ctx, ref)
		return fetchErr
	})
	if err != nil {
		return nil, fmt.Errorf("downloading document for %s: %w", id, err)
	}

	doc := &domain.ProfileDocument{
		ProfileID: id,
		Content:   content,
		FetchedAt: time.Now(),
	}

	if err := a.archive.Save(ctx, doc); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("archiving document for %s: %w", id, err)
	}
	return doc, nil
}
