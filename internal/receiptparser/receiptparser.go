// Package receiptparser turns raw OCR receipt text into a structured,
// categorized receipt record. Every extraction stage is heuristic with a
// deterministic fallback, so the same input always yields the same output
// apart from the current-date default.
package receiptparser

import (
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/receipt-csv/internal/categorizer"
	"fjacquet/receipt-csv/internal/config"
	"fjacquet/receipt-csv/internal/dateutils"
	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/models"
	"fjacquet/receipt-csv/internal/parsererror"
	"fjacquet/receipt-csv/internal/textutils"
)

// now is a variable so tests can pin the date fallback.
var now = time.Now

// Options holds the tunable thresholds of the extraction heuristics. The
// defaults reproduce the historical behavior and changing them will shift
// which lines become items and when corrective entries appear.
type Options struct {
	// ReconcileTolerance is the maximum accepted gap between the item sum and
	// the extracted total before a corrective entry is added.
	ReconcileTolerance decimal.Decimal
	// MinRemainder is the smallest corrective entry worth recording.
	MinRemainder decimal.Decimal
	// MinTotalCandidate filters quantities and tiny prices out of the
	// largest-money-token fallback for the total.
	MinTotalCandidate decimal.Decimal
	// MerchantScanLines is how many leading lines are checked for the
	// merchant name.
	MerchantScanLines int
	// MinItemLineLen and MaxItemLineLen bound the length of a plausible
	// item description line.
	MinItemLineLen int
	MaxItemLineLen int
}

// DefaultOptions returns the historical threshold values.
func DefaultOptions() Options {
	return Options{
		ReconcileTolerance: decimal.NewFromFloat(0.5),
		MinRemainder:       decimal.NewFromFloat(0.01),
		MinTotalCandidate:  decimal.NewFromFloat(0.5),
		MerchantScanLines:  6,
		MinItemLineLen:     3,
		MaxItemLineLen:     70,
	}
}

// OptionsFromConfig converts the loaded application configuration into
// parser options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		ReconcileTolerance: decimal.NewFromFloat(cfg.Parser.ReconcileTolerance),
		MinRemainder:       decimal.NewFromFloat(cfg.Parser.MinRemainder),
		MinTotalCandidate:  decimal.NewFromFloat(cfg.Parser.MinTotalCandidate),
		MerchantScanLines:  cfg.Parser.MerchantScanLines,
		MinItemLineLen:     cfg.Parser.MinItemLineLen,
		MaxItemLineLen:     cfg.Parser.MaxItemLineLen,
	}
}

// Parser extracts structured receipt records from OCR text.
type Parser struct {
	categorizer *categorizer.Categorizer
	opts        Options
	logger      logging.Logger
}

// New creates a receipt parser using the given categorizer and thresholds.
func New(cat *categorizer.Categorizer, opts Options, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{
		categorizer: cat,
		opts:        opts,
		logger:      logger,
	}
}

// Parse reads all text from r and parses it into a receipt record.
func (p *Parser) Parse(r io.Reader) (*models.ParsedReceipt, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.ParseText(string(data))
}

// ParseFile parses the OCR text stored in the given file.
func (p *Parser) ParseFile(filePath string) (*models.ParsedReceipt, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, parsererror.FileNotFoundError(filePath)
		}
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close file")
		}
	}()
	return p.Parse(file)
}

// ParseText parses raw OCR text into a receipt record. The stages run in a
// fixed order because later stages depend on earlier results: the overall
// category needs the merchant, item classification needs the overall
// category, and reconciliation needs both the total and the item list.
//
// ParseText never fails. Input the extractors cannot make sense of, including
// an empty string, yields the documented defaults: zero total, "Unknown
// Merchant", the current date, and an empty item list.
func (p *Parser) ParseText(text string) (*models.ParsedReceipt, error) {
	lines := textutils.SplitLines(text)

	total := p.extractTotal(text)
	merchant := p.extractMerchant(lines, text)
	overall := p.categorizer.ResolveOverall(merchant, text)

	date := now().UTC()
	if extracted, ok := dateutils.ExtractDate(text); ok {
		date = extracted
	}

	items := p.extractItems(lines, overall, text)
	items = p.reconcile(items, total, overall)

	receipt := &models.ParsedReceipt{
		TotalAmount:  total,
		Merchant:     merchant,
		Date:         dateutils.ToISODate(date),
		Category:     overall,
		Items:        items,
		OriginalText: text,
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldMerchant, Value: receipt.Merchant},
		logging.Field{Key: logging.FieldCategory, Value: receipt.Category},
		logging.Field{Key: logging.FieldTotal, Value: receipt.TotalAmount.StringFixed(2)},
		logging.Field{Key: logging.FieldCount, Value: len(receipt.Items)},
	).Info("Parsed receipt")

	return receipt, nil
}

// reconcile compares the item sum against the extracted total and appends a
// corrective entry when they diverge. A receipt with a total but no items at
// all gets a single generic purchase instead of a remainder.
func (p *Parser) reconcile(items []models.Item, total decimal.Decimal, overall models.Category) []models.Item {
	if !total.IsPositive() {
		return items
	}

	if len(items) == 0 {
		return append(items, models.Item{
			Name:     "Misc. Purchase",
			Price:    total,
			Category: overall,
		})
	}

	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price)
	}
	gap := total.Sub(sum)
	if gap.Abs().GreaterThan(p.opts.ReconcileTolerance) && gap.GreaterThan(p.opts.MinRemainder) {
		items = append(items, models.Item{
			Name:     "Uncategorized Remainder",
			Price:    gap,
			Category: overall,
		})
	}
	return items
}
