package receiptparser

import (
	"regexp"
	"strings"

	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/textutils"
)

const unknownMerchant = "Unknown Merchant"

// merchantAmountPattern deliberately matches dot amounts only. Comma amounts
// in a header line are usually part of an address or registration number, not
// a price.
var merchantAmountPattern = regexp.MustCompile(`\d+\.\d{2}`)

// merchantBoilerplatePattern matches leading words that mark header or footer
// boilerplate rather than a store name.
var merchantBoilerplatePattern = regexp.MustCompile(`^(gstin|tax|bill|receipt|invoice|total|subtotal|cash|change|thank you|visit again|phone|tel|email|www\.)`)

// merchantPreferenceWords pick the best candidate among plausible header
// lines. A line naming a business type beats an earlier generic line.
var merchantPreferenceWords = []string{
	"pvt ltd", "store", "supermarket", "cafe", "restaurant", "pharmacy", "mart",
}

// extractMerchant scans the top of the receipt for the store name. Candidate
// lines must look like prose rather than dates, times, amounts or
// boilerplate. Among candidates, the first one containing a business word
// wins, otherwise the first candidate. Returns "Unknown Merchant" when the
// header yields nothing usable.
func (p *Parser) extractMerchant(lines []string, text string) string {
	limit := p.opts.MerchantScanLines
	if limit > len(lines) {
		limit = len(lines)
	}

	var candidates []string
	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		if textutils.DateLike.MatchString(line) ||
			textutils.TimeLike.MatchString(line) ||
			merchantAmountPattern.MatchString(line) ||
			merchantBoilerplatePattern.MatchString(lower) {
			continue
		}
		if len(line) <= 3 || len(line) >= 50 {
			continue
		}
		candidates = append(candidates, line)
	}

	merchant := unknownMerchant
	if len(candidates) > 0 {
		merchant = candidates[0]
		for _, candidate := range candidates {
			if textutils.ContainsAny(strings.ToLower(candidate), merchantPreferenceWords) {
				merchant = candidate
				break
			}
		}
	}

	// OCR renders the Walmart logotype with a star or a space. Collapse the
	// variants to a canonical name so the store table matches, even when the
	// header produced no usable candidate line.
	lowerText := strings.ToLower(text)
	if strings.Contains(lowerText, "wal*mart") || strings.Contains(lowerText, "wal mart") {
		merchant = "Walmart"
	}

	p.logger.WithField(logging.FieldMerchant, merchant).Debug("Merchant extracted")
	return merchant
}
