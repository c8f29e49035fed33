package layout

import (
	"sort"
	"strings"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
	"github.com/custodia-labs/tenure-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Font sizes of the known layout family, in points.
const (
	// HeaderFontSize marks section headers ("Experience", "Education").
	HeaderFontSize = 15.75

	// OrgFontSize marks organization and school names.
	OrgFontSize = 12.0

	// RoleFontSize marks position titles.
	RoleFontSize = 11.5

	// DetailFontSize marks tenure, location and degree lines.
	DetailFontSize = 10.5

	// fontSizeTolerance absorbs rendering jitter between documents.
	fontSizeTolerance = 0.3
)

// Section header vocabulary.
const (
	experienceHeader = "Experience"
	educationHeader  = "Education"
)

// Extractor classifies layout elements into a person record.
type Extractor struct{}

// New creates a new layout extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract reconstructs reading order, locates the name, segments the
// experience and education sections and decomposes each into entries.
// Returns domain.ErrUnrecognizedLayout when no name can be located.
func (e *Extractor) Extract(elems []domain.LayoutElement) (*domain.PersonRecord, error) {
	sorted := readingOrder(elems)

	name := findName(sorted)
	if name == "" {
		return nil, domain.ErrUnrecognizedLayout
	}

	experience, education := segmentSections(sorted)

	return &domain.PersonRecord{
		Name:       name,
		Experience: parseExperienceEntries(experience),
		Education:  parseEducationEntries(education),
	}, nil
}

// readingOrder returns a copy of elems sorted top to bottom, ties
// broken left to right, page-major. Documents store elements in
// arbitrary internal order; reading order is reconstructed here.
func readingOrder(elems []domain.LayoutElement) []domain.LayoutElement {
	sorted := make([]domain.LayoutElement, len(elems))
	copy(sorted, elems)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return sorted
}

// isHeaderSized reports whether the element renders at section-header
// size.
func isHeaderSized(el domain.LayoutElement) bool {
	return near(el.FontSize, HeaderFontSize)
}

// near reports whether a font size matches a layout-family size within
// tolerance.
func near(size, target float64) bool {
	diff := size - target
	return diff < fontSizeTolerance && diff > -fontSizeTolerance
}

// findName returns the first non-header, non-date text element
// preceding any recognized section, or "" when the document has none.
func findName(sorted []domain.LayoutElement) string {
	for _, el := range sorted {
		if isHeaderSized(el) {
			return ""
		}
		text := strings.TrimSpace(el.Text)
		if text == "" || isDateLine(text) {
			continue
		}
		return text
	}
	return ""
}

// segmentSections collects the elements strictly between each
// recognized section header and the next header-sized element (or end
// of document). Headers outside the vocabulary terminate the current
// section without opening a new one.
func segmentSections(sorted []domain.LayoutElement) (experience, education []domain.LayoutElement) {
	const (
		sectionNone = iota
		sectionExperience
		sectionEducation
	)

	section := sectionNone
	for _, el := range sorted {
		if isHeaderSized(el) {
			switch strings.TrimSpace(el.Text) {
			case experienceHeader:
				section = sectionExperience
			case educationHeader:
				section = sectionEducation
			default:
				section = sectionNone
			}
			continue
		}

		switch section {
		case sectionExperience:
			experience = append(experience, el)
		case sectionEducation:
			education = append(education, el)
		}
	}
	return experience, education
}
