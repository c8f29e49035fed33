package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
)

// el builds a synthetic layout element at the given vertical position.
func el(text string, y, size float64) domain.LayoutElement {
	return domain.LayoutElement{Text: text, Y: y, X: 40, FontSize: size}
}

// profileFixture encodes {name, 2 experience entries, 1 education
// entry} in the known layout family.
func profileFixture() []domain.LayoutElement {
	return []domain.LayoutElement{
		el("Alice Johnson", 40, 20.0),
		el("Experience", 100, HeaderFontSize),
		el("ACME Corp", 120, OrgFontSize),
		el("Staff Engineer", 135, RoleFontSize),
		el("May 2010 - April 2014 (4 years)", 150, DetailFontSize),
		el("Berlin, Germany", 165, DetailFontSize),
		el("Widget Labs", 190, OrgFontSize),
		el("Engineer", 205, RoleFontSize),
		el("2014 - Present", 220, DetailFontSize),
		el("Education", 260, HeaderFontSize),
		el("State University", 280, OrgFontSize),
		el("Bachelor of Science, Biochemistry · (August 2016 - December 2021)", 295, DetailFontSize),
		el("Skills", 340, HeaderFontSize),
		el("Go, SQL", 355, DetailFontSize),
	}
}

func TestExtract_RoundTrip(t *testing.T) {
	rec, err := New().Extract(profileFixture())
	require.NoError(t, err)

	assert.Equal(t, "Alice Johnson", rec.Name)
	require.Len(t, rec.Experience, 2)
	require.Len(t, rec.Education, 1)

	first := rec.Experience[0]
	assert.Equal(t, "ACME Corp", first.Organization)
	assert.Equal(t, "Staff Engineer", first.Role)
	require.NotNil(t, first.Start)
	assert.Equal(t, 2010, first.Start.Year())
	assert.Equal(t, time.May, first.Start.Month())
	require.NotNil(t, first.End)
	assert.Equal(t, 2014, first.End.Year())
	assert.False(t, first.Current)
	assert.Equal(t, "Berlin, Germany", first.Location)

	second := rec.Experience[1]
	assert.Equal(t, "Widget Labs", second.Organization)
	assert.Equal(t, "Engineer", second.Role)
	require.NotNil(t, second.Start)
	assert.Equal(t, 2014, second.Start.Year())
	assert.Nil(t, second.End)
	assert.True(t, second.Current)

	edu := rec.Education[0]
	assert.Equal(t, "State University", edu.School)
	assert.Equal(t, "Bachelor of Science, Biochemistry", edu.Degree)
	require.NotNil(t, edu.Start)
	assert.Equal(t, time.August, edu.Start.Month())
	require.NotNil(t, edu.End)
	assert.Equal(t, 2021, edu.End.Year())
}

func TestExtract_OrderIndependent(t *testing.T) {
	// The extractor must reconstruct reading order regardless of the
	// document's internal storage order.
	fixture := profileFixture()
	shuffled := []domain.LayoutElement{}
	for i := len(fixture) - 1; i >= 0; i-- {
		shuffled = append(shuffled, fixture[i])
	}

	rec, err := New().Extract(shuffled)
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", rec.Name)
	assert.Len(t, rec.Experience, 2)
	assert.Len(t, rec.Education, 1)
}

func TestExtract_EmptySection(t *testing.T) {
	// An experience header immediately followed by the next section
	// yields an empty list, not an error.
	elems := []domain.LayoutElement{
		el("Bob", 40, 20.0),
		el("Experience", 100, HeaderFontSize),
		el("Education", 120, HeaderFontSize),
		el("State University", 140, OrgFontSize),
		el("Physics", 155, DetailFontSize),
	}

	rec, err := New().Extract(elems)
	require.NoError(t, err)
	assert.Empty(t, rec.Experience)
	require.Len(t, rec.Education, 1)
	assert.Equal(t, "Physics", rec.Education[0].Degree)
	assert.Nil(t, rec.Education[0].Start)
}

func TestExtract_NoName(t *testing.T) {
	elems := []domain.LayoutElement{
		el("Experience", 40, HeaderFontSize),
		el("ACME Corp", 60, OrgFontSize),
		el("Engineer", 75, RoleFontSize),
	}

	rec, err := New().Extract(elems)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrUnrecognizedLayout)
}

func TestExtract_NoElements(t *testing.T) {
	rec, err := New().Extract(nil)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrUnrecognizedLayout)
}

func TestExtract_SharedOrganization(t *testing.T) {
	// Two roles at the same employer: the organization carries over.
	elems := []domain.LayoutElement{
		el("Carol", 40, 20.0),
		el("Experience", 100, HeaderFontSize),
		el("ACME Corp", 120, OrgFontSize),
		el("Senior Engineer", 135, RoleFontSize),
		el("2020 - Present", 150, DetailFontSize),
		el("Engineer", 180, RoleFontSize),
		el("2016 - 2020", 195, DetailFontSize),
	}

	rec, err := New().Extract(elems)
	require.NoError(t, err)
	require.Len(t, rec.Experience, 2)
	assert.Equal(t, "ACME Corp", rec.Experience[0].Organization)
	assert.Equal(t, "Senior Engineer", rec.Experience[0].Role)
	assert.Equal(t, "ACME Corp", rec.Experience[1].Organization)
	assert.Equal(t, "Engineer", rec.Experience[1].Role)
}

func TestExtract_UnparseableTenure(t *testing.T) {
	// An entry whose tenure line is not a date keeps nil dates rather
	// than failing the record.
	elems := []domain.LayoutElement{
		el("Dan", 40, 20.0),
		el("Experience", 100, HeaderFontSize),
		el("ACME Corp", 120, OrgFontSize),
		el("Engineer", 135, RoleFontSize),
		el("a while back", 150, DetailFontSize),
	}

	rec, err := New().Extract(elems)
	require.NoError(t, err)
	require.Len(t, rec.Experience, 1)
	assert.Nil(t, rec.Experience[0].Start)
	assert.Nil(t, rec.Experience[0].End)
}

func TestExtract_SectionCountsMatchFixture(t *testing.T) {
	// Entry counts equal the number of entries between the section
	// header and the next recognized header.
	tests := []struct {
		name    string
		entries int
	}{
		{name: "no entries", entries: 0},
		{name: "one entry", entries: 1},
		{name: "four entries", entries: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elems := []domain.LayoutElement{
				el("Eve", 40, 20.0),
				el("Experience", 100, HeaderFontSize),
			}
			y := 120.0
			for i := 0; i < tt.entries; i++ {
				elems = append(elems,
					el("Org", y, OrgFontSize),
					el("Role", y+15, RoleFontSize),
					el("2019 - 2021", y+30, DetailFontSize),
				)
				y += 60
			}
			elems = append(elems, el("Skills", y, HeaderFontSize))

			rec, err := New().Extract(elems)
			require.NoError(t, err)
			assert.Len(t, rec.Experience, tt.entries)
		})
	}
}

func TestExtract_FooterDiscarded(t *testing.T) {
	elems := []domain.LayoutElement{
		el("Frank", 40, 20.0),
		el("Education", 100, HeaderFontSize),
		el("State University", 120, OrgFontSize),
		el("Page 2 of 3", 130, DetailFontSize),
		el("Chemistry", 140, DetailFontSize),
	}

	rec, err := New().Extract(elems)
	require.NoError(t, err)
	require.Len(t, rec.Education, 1)
	assert.Equal(t, "Chemistry", rec.Education[0].Degree)
}

func TestReadingOrder(t *testing.T) {
	elems := []domain.LayoutElement{
		{Text: "c", Page: 1, Y: 10},
		{Text: "b", Page: 0, Y: 50, X: 20},
		{Text: "a", Page: 0, Y: 10},
		{Text: "b2", Page: 0, Y: 50, X: 80},
	}

	sorted := readingOrder(elems)
	got := make([]string, len(sorted))
	for i, e := range sorted {
		got[i] = e.Text
	}
	assert.Equal(t, []string{"a", "b", "b2", "c"}, got)
}
