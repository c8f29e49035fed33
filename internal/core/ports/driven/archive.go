package driven

import (
	"context"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
)

// DocumentArchive is write-once durable storage for exported documents,
// one entry per profile identifier. Archived documents allow extraction
// to be replayed without re-querying the external source.
type DocumentArchive interface {
	// Save stores a document keyed by its profile id. Returns
	// domain.ErrAlreadyExists if the profile was archived before;
	// existing content is never overwritten.
	Save(ctx context.Context, doc *domain.ProfileDocument) error

	// Get retrieves an archived document. Returns domain.ErrNotFound
	// when the profile was never archived.
	Get(ctx context.Context, id domain.ProfileID) (*domain.ProfileDocument, error)

	// List returns all archived profile ids in stable (lexicographic)
	// order.
	List(ctx context.Context) ([]domain.ProfileID, error)
}
