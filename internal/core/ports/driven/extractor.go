package driven

import (
	"github.com/custodia-labs/tenure-cli/internal/core/domain"
)

// DocumentDecoder turns raw document bytes into a flat list of
// positioned layout elements. It makes no structural judgements; that
// is the Extractor's job.
type DocumentDecoder interface {
	// Decode parses the document and returns its text fragments with
	// page coordinates and font-size hints. Element order follows the
	// document's internal storage order, not reading order.
	Decode(data []byte) ([]domain.LayoutElement, error)
}

// Extractor classifies layout elements into a person record. The
// extraction is heuristic and tuned to one known layout family; it is
// kept behind this interface so the fragile logic stays independently
// testable with synthetic element fixtures.
type Extractor interface {
	// Extract reconstructs reading order, segments sections and
	// entries, and returns the person record. Returns
	// domain.ErrUnrecognizedLayout when no name can be located.
	// A section with no recognized entries yields an empty list.
	Extract(elems []domain.LayoutElement) (*domain.PersonRecord, error)
}
