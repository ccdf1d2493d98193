package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoneyToken converts a two-fraction-digit money token into a decimal.
// OCR output uses either a comma or a dot as the decimal separator, so the
// comma form is normalized before conversion. The boolean result is false
// when the token does not convert; callers skip such tokens and move on.
func ParseMoneyToken(token string) (decimal.Decimal, bool) {
	normalized := strings.ReplaceAll(strings.TrimSpace(token), ",", ".")
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}
