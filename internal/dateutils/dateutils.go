// Package dateutils provides date extraction and formatting helpers for
// receipt text, where dates appear in several loosely standardized formats.
package dateutils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayoutISO is the canonical output format for transaction dates.
const DateLayoutISO = "2006-01-02"

// datePattern pairs a regular expression with the parse layouts to attempt on
// its match. Layouts are tried in order; ambiguous numeric dates try the
// day-first interpretation before the month-first one.
type datePattern struct {
	re      *regexp.Regexp
	layouts []string
}

// patterns are evaluated in strict priority order. Only the first occurrence
// of each pattern in the text is considered; if it fails to parse as a valid
// calendar date, extraction advances to the next pattern.
var patterns = []datePattern{
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2}`), []string{DateLayoutISO}},
	{regexp.MustCompile(`\d{2}/\d{2}/\d{4}`), []string{"02/01/2006", "01/02/2006"}},
	{regexp.MustCompile(`\d{2}-\d{2}-\d{4}`), []string{"02-01-2006", "01-02-2006"}},
	{regexp.MustCompile(`\d{2}/\d{2}/\d{2}`), nil}, // two-digit year, handled below
	{regexp.MustCompile(`\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{4}`), []string{"2 Jan 2006"}},
	{regexp.MustCompile(`\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}`), nil}, // generic, handled below
}

// ExtractDate finds the transaction date in raw receipt text. It returns the
// parsed date and true on success, or the zero time and false when no pattern
// yields a valid calendar date.
func ExtractDate(text string) (time.Time, bool) {
	for i, p := range patterns {
		match := p.re.FindString(text)
		if match == "" {
			continue
		}

		switch i {
		case 3:
			if t, ok := parseTwoDigitYear(match); ok {
				return t, true
			}
		case 5:
			if t, ok := parseGeneric(match); ok {
				return t, true
			}
		default:
			for _, layout := range p.layouts {
				if t, err := time.Parse(layout, match); err == nil {
					return t, true
				}
			}
		}
		// Matched but unparsable, e.g. day 31 in a 30-day month. Move on to
		// the next pattern.
	}

	return time.Time{}, false
}

// parseTwoDigitYear handles DD/MM/YY with the year assumed to be 2000+YY.
func parseTwoDigitYear(match string) (time.Time, bool) {
	parts := strings.Split(match, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	return makeDate(2000+year, month, day)
}

// parseGeneric handles the flexible D[-/.]M[-/.]Y form, trying day-first and
// then month-first.
func parseGeneric(match string) (time.Time, bool) {
	parts := regexp.MustCompile(`[-/.]`).Split(match, -1)
	if len(parts) != 3 {
		return time.Time{}, false
	}
	first, _ := strconv.Atoi(parts[0])
	second, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	if t, ok := makeDate(year, second, first); ok {
		return t, true
	}
	return makeDate(year, first, second)
}

// makeDate validates the components strictly; time.Date would silently
// normalize an out-of-range day into the next month.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}
