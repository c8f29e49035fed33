package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
	"github.com/custodia-labs/tenure-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tenure-cli/internal/core/ports/driving"
)

// Ensure Status implements the interface.
var _ driving.StatusReporter = (*Status)(nil)

// Status reports the persisted table state.
type Status struct {
	repo driven.Repository
}

// NewStatus creates a new status reporter.
func NewStatus(repo driven.Repository) *Status {
	return &Status{repo: repo}
}

// Counts returns row counts for the five persistent tables.
func (s *Status) Counts(ctx context.Context) (*domain.TableCounts, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting rows: %w", err)
	}
	return counts, nil
}
