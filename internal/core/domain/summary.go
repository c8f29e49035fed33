package domain

import "fmt"

// RunSummary counts per-identifier outcomes across one pipeline run.
// Every identifier yielded by the paginator lands in exactly one bucket.
type RunSummary struct {
	// RunID correlates log lines for one run.
	RunID string

	// Total is the number of identifiers processed.
	Total int

	// Succeeded is the number of identifiers fully committed.
	Succeeded int

	// ExportSkipped counts profiles whose export was unavailable.
	ExportSkipped int

	// DownloadFailed counts profiles that exhausted download retries.
	DownloadFailed int

	// LayoutUnrecognized counts documents the extractor rejected.
	LayoutUnrecognized int

	// PersistenceFailed counts records whose commit failed.
	PersistenceFailed int

	// UpstreamErrors counts search pages that failed.
	UpstreamErrors int
}

// String renders the summary in one line for the run report.
func (s *RunSummary) String() string {
	return fmt.Sprintf(
		"processed=%d succeeded=%d export-skipped=%d download-failed=%d layout-unrecognized=%d persistence-failed=%d upstream-errors=%d",
		s.Total, s.Succeeded, s.ExportSkipped, s.DownloadFailed,
		s.LayoutUnrecognized, s.PersistenceFailed, s.UpstreamErrors)
}
