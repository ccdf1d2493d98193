// Package textutils provides text normalization helpers shared by the
// receipt field extractors.
package textutils

import (
	"regexp"
	"strings"
)

// Patterns shared by the extractors. OCR output is loosely tabular, one
// logical field per line, so these all operate on single lines or whole text.
var (
	// MoneyToken matches a standalone amount with exactly two fraction
	// digits, using either a comma or a dot separator.
	MoneyToken = regexp.MustCompile(`\b\d+[,.]\d{2}\b`)

	// DateLike matches anything shaped like a numeric date.
	DateLike = regexp.MustCompile(`\d{2,4}[-/.]\d{2}[-/.]\d{2,4}`)

	// TimeLike matches a clock time such as 14:05 or 9:30.
	TimeLike = regexp.MustCompile(`\d{1,2}:\d{2}`)

	// PureDate, PureTime and PureNumber match lines that consist of nothing
	// but a date, a time, or a bare number. Such lines are never item lines.
	PureDate   = regexp.MustCompile(`^\d{2,4}[-/.]\d{2}[-/.]\d{2,4}$`)
	PureTime   = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	PureNumber = regexp.MustCompile(`^\d+([,.]\d{2})?$`)
)

// SplitLines splits raw OCR text into trimmed, non-empty lines with the input
// order preserved. It never fails; empty input yields an empty slice.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// CleanMerchantName lowercases a merchant name and strips every character
// other than letters, digits and spaces, so that OCR noise like "WAL*MART"
// still matches the store table.
func CleanMerchantName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// ContainsAny reports whether text contains any of the given substrings.
func ContainsAny(text string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
