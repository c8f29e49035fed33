package layout

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
)

// footerRegex matches page footer runs that leak into sections.
var footerRegex = regexp.MustCompile(`^Page \d+ of \d+$`)

// expBuilder accumulates one experience entry while scanning section
// elements in reading order.
type expBuilder struct {
	entry domain.ExperienceEntry
	dated bool
}

func (b *expBuilder) complete() bool {
	return b.entry.Organization != "" && b.entry.Role != ""
}

func (b *expBuilder) reset() {
	*b = expBuilder{}
}

// parseExperienceEntries decomposes the experience section into dated
// entries. A larger (organization-sized) run starts a new entry; the
// organization carries over when the same employer lists several roles.
// The first detail line of an entry is its tenure, the second its
// location. Unmatched trailing text is discarded.
func parseExperienceEntries(elems []domain.LayoutElement) []domain.ExperienceEntry {
	entries := []domain.ExperienceEntry{}
	var b expBuilder
	var lastOrg string

	flush := func() {
		if b.complete() {
			entries = append(entries, b.entry)
		}
		b.reset()
	}

	for _, el := range elems {
		text := strings.TrimSpace(el.Text)
		if text == "" || footerRegex.MatchString(text) {
			continue
		}

		switch {
		case near(el.FontSize, OrgFontSize):
			flush()
			b.entry.Organization = text
			lastOrg = text

		case near(el.FontSize, RoleFontSize):
			if b.entry.Role != "" {
				flush()
			}
			if b.entry.Organization == "" {
				b.entry.Organization = lastOrg
			}
			b.entry.Role = text

		case near(el.FontSize, DetailFontSize):
			if b.entry.Role == "" {
				// Stray detail with no entry open.
				continue
			}
			if !b.dated {
				// First detail line is the tenure. An unparseable
				// tenure keeps nil dates rather than dropping the entry.
				start, end, current, ok := ParseDateRange(text)
				if ok {
					b.entry.Start = start
					b.entry.End = end
					b.entry.Current = current
				}
				b.dated = true
			} else if b.entry.Location == "" {
				b.entry.Location = text
			}
			// Further detail lines are discarded.
		}
	}
	flush()

	return entries
}

// eduBuilder accumulates one education entry. Degree lines can wrap
// across several detail runs; they are joined until the next school or
// section end.
type eduBuilder struct {
	school string
	degree []string
}

// parseEducationEntries decomposes the education section, mapping
// organization to school and role to degree. Entries whose degree line
// never appears are kept with an empty degree.
func parseEducationEntries(elems []domain.LayoutElement) []domain.EducationEntry {
	entries := []domain.EducationEntry{}
	var b eduBuilder

	flush := func() {
		if b.school == "" {
			b = eduBuilder{}
			return
		}
		degree, start, end := ParseDegree(strings.Join(b.degree, " "))
		entries = append(entries, domain.EducationEntry{
			School: b.school,
			Degree: degree,
			Start:  start,
			End:    end,
		})
		b = eduBuilder{}
	}

	for _, el := range elems {
		text := strings.TrimSpace(el.Text)
		if text == "" || footerRegex.MatchString(text) {
			continue
		}

		switch {
		case near(el.FontSize, OrgFontSize):
			flush()
			b.school = text

		case near(el.FontSize, DetailFontSize):
			if b.school == "" {
				continue
			}
			b.degree = append(b.degree, text)
		}
	}
	flush()

	return entries
}
