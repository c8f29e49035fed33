package layout

import (
	"regexp"
	"strings"
	"time"
)

// presentMarker is how the source renders an ongoing position.
const presentMarker = "present"

// datePartLayouts are tried in order when parsing one side of a range.
var datePartLayouts = []string{
	"January 2006",
	"Jan 2006",
	"2006",
}

// rangeRegex splits "May 2010 - April 2014 (4 years)" into start, end
// and an optional parenthesised duration. The dash may be a hyphen or
// an en dash.
var rangeRegex = regexp.MustCompile(`^(.+?)\s*[-\x{2013}]\s*(.+?)(?:\s*\((.+)\))?\s*$`)

// degreeRegex splits "Bachelor of Science, Biochemistry · (August 2016 - December 2021)"
// into the degree text and the date pair.
var degreeRegex = regexp.MustCompile(`^(.+?)\s*[\x{00b7}\x{2022}]\s*\((.+?)\s*[-\x{2013}]\s*(.+?)\)\s*$`)

// ParseDatePart parses one side of a date range: "May 2010", "Apr 2014"
// or a bare "2014". Returns nil when the text is not a date.
func ParseDatePart(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range datePartLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseDateRange parses a tenure line such as
//
//	"May 2010 - April 2014 (4 years)"
//	"2014 - 2021"
//	"Aug 2019 - Present"
//
// ok is true when the line is recognizably a date range: at least one
// side parses as a date, or the end is the present marker. Unparseable
// sides stay nil rather than failing the line.
func ParseDateRange(s string) (start, end *time.Time, current bool, ok bool) {
	m := rangeRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		// A lone date with no end still counts as a range start.
		if t := ParseDatePart(s); t != nil {
			return t, nil, false, true
		}
		return nil, nil, false, false
	}

	start = ParseDatePart(m[1])
	endText := strings.TrimSpace(m[2])
	if strings.EqualFold(endText, presentMarker) {
		current = true
	} else {
		end = ParseDatePart(endText)
	}

	ok = start != nil || end != nil || current
	if !ok {
		return nil, nil, false, false
	}
	return start, end, current, true
}

// ParseDegree splits a degree line into its text and date pair.
// Lines without a recognizable "degree · (start - end)" shape keep the
// whole text as the degree with nil dates.
func ParseDegree(s string) (degree string, start, end *time.Time) {
	s = strings.TrimSpace(s)
	m := degreeRegex.FindStringSubmatch(s)
	if m == nil {
		return s, nil, nil
	}
	return strings.TrimSpace(m[1]), ParseDatePart(m[2]), ParseDatePart(m[3])
}

// isDateLine reports whether the text reads as a date range. Used when
// locating the name element, which must not be a date.
func isDateLine(s string) bool {
	_, _, _, ok := ParseDateRange(s)
	return ok
}
