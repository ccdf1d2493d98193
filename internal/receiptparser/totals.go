package receiptparser

import (
	"regexp"

	"github.com/shopspring/decimal"

	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/models"
	"fjacquet/receipt-csv/internal/textutils"
)

// Labeled-total patterns, strongest label set first. The optional [A-Z]
// absorbs a stray OCR character or currency letter between label and amount.
var (
	totalLabelPattern   = regexp.MustCompile(`(?i)(?:total|amount|sum|grand total|net amount|bill amount)[:\s]*[A-Z]?\s*(\d+[,.]\d{2})`)
	totalSettledPattern = regexp.MustCompile(`(?i)(?:cash received|paid|balance due)[:\s]*[A-Z]?\s*(\d+[,.]\d{2})`)
)

// extractTotal finds the receipt total. It prefers an amount next to a total
// label, then one next to a payment label, and finally falls back to the
// largest money token above the candidate floor. Returns zero when nothing
// matches.
func (p *Parser) extractTotal(text string) decimal.Decimal {
	match := totalLabelPattern.FindStringSubmatch(text)
	if match == nil {
		match = totalSettledPattern.FindStringSubmatch(text)
	}
	if match != nil {
		if total, ok := models.ParseMoneyToken(match[1]); ok {
			p.logger.WithField(logging.FieldTotal, total.StringFixed(2)).Debug("Total found via label")
			return total
		}
		return decimal.Zero
	}

	best := decimal.Zero
	for _, token := range textutils.MoneyToken.FindAllString(text, -1) {
		amount, ok := models.ParseMoneyToken(token)
		if !ok {
			continue
		}
		if amount.GreaterThan(p.opts.MinTotalCandidate) && amount.GreaterThan(best) {
			best = amount
		}
	}
	if best.IsPositive() {
		p.logger.WithField(logging.FieldTotal, best.StringFixed(2)).Debug("Total inferred from largest amount")
	}
	return best
}
