package receiptparser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/models"
	"fjacquet/receipt-csv/internal/textutils"
)

// itemLinePattern captures an item description followed by an optional
// quantity, an optional currency marker, the price, and an optional
// single-letter tax flag at the end of the line. The price must be its own
// whitespace-separated token so a quantity cannot swallow its leading digits,
// and the currency marker is a whole token so a trailing "s" in the name is
// never read as a rupee sign.
var itemLinePattern = regexp.MustCompile(`(?i)^(.+?)(?:\s+\d+)?\s+(?:Rs\.?\s*|[$€¥£]\s*)?(\d+[,.]\d{2})(?:\s+[NRTX])?\s*$`)

// minItemPrice drops zero and near-zero prices, which are almost always
// OCR artifacts or free-item markers.
var minItemPrice = decimal.NewFromFloat(0.01)

// nonItemLineKeywords mark payment, tax and boilerplate lines that must not
// be parsed as items even when they end in an amount.
var nonItemLineKeywords = []string{
	"total", "subtotal", "tax", "gst", "cgst", "sgst", "cash", "change",
	"balance", "amount", "card", "round off", "thank you", "manager",
	"open 24 hours", "phone", "tel", "email", "www.",
}

// extractItems walks every line, keeps the ones that plausibly describe a
// purchased item, and classifies each extracted item. Non-spend lines that
// slip through the filters are dropped after classification.
func (p *Parser) extractItems(lines []string, overall models.Category, text string) []models.Item {
	items := make([]models.Item, 0)
	for _, line := range p.itemCandidateLines(lines) {
		match := itemLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		name := strings.TrimSpace(match[1])
		price, ok := models.ParseMoneyToken(match[2])
		if !ok || name == "" || !price.GreaterThan(minItemPrice) {
			continue
		}

		category := p.categorizer.ResolveItem(name, overall, text)
		if category == models.CategoryNonSpend {
			p.logger.WithField(logging.FieldItem, name).Debug("Skipping non-spend line")
			continue
		}
		items = append(items, models.Item{Name: name, Price: price, Category: category})
	}
	return items
}

// itemCandidateLines filters out lines that cannot be item descriptions:
// known boilerplate, bare dates, bare times, bare numbers, and lines outside
// the plausible description length.
func (p *Parser) itemCandidateLines(lines []string) []string {
	var candidates []string
	for _, line := range lines {
		lower := strings.ToLower(line)
		if textutils.ContainsAny(lower, nonItemLineKeywords) {
			continue
		}
		if textutils.PureDate.MatchString(line) ||
			textutils.PureTime.MatchString(line) ||
			textutils.PureNumber.MatchString(line) {
			continue
		}
		if len(line) < p.opts.MinItemLineLen || len(line) > p.opts.MaxItemLineLen {
			continue
		}
		candidates = append(candidates, line)
	}
	return candidates
}
