package domain

// SearchQuery describes one people search against the external source.
// The zero value searches for all person-type results with no filters.
type SearchQuery struct {
	// Keywords is the free-text search term, empty for none.
	Keywords string

	// PastCompanyID restricts results to people who worked at the
	// given company, empty for no restriction.
	PastCompanyID string

	// SchoolID restricts results to people who attended the given
	// school, empty for no restriction.
	SchoolID string
}

// IsZero returns true when no filter is set.
func (q SearchQuery) IsZero() bool {
	return q.Keywords == "" && q.PastCompanyID == "" && q.SchoolID == ""
}
