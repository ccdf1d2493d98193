// Package categorizer resolves spending categories at two levels: the overall
// category of a whole bill, from merchant identity or whole-text keywords, and
// the category of each line item, from an ordered chain of keyword rule groups.
//
// Both resolvers share the same static store-category table, loaded once at
// construction and never mutated, so a single Categorizer is safe for
// concurrent use by any number of parse calls.
package categorizer

import (
	"regexp"
	"strings"

	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/models"
	"fjacquet/receipt-csv/internal/store"
	"fjacquet/receipt-csv/internal/textutils"
)

// priceOnlyName matches an item name that is nothing but a price, which is an
// OCR artifact rather than a purchasable good.
var priceOnlyName = regexp.MustCompile(`^\d+\.\d{2}$`)

// Categorizer assigns categories to whole bills and individual line items.
type Categorizer struct {
	storeMappings []models.StoreMapping
	logger        logging.Logger
}

// NewCategorizer creates a Categorizer backed by the given CategoryStore.
// A nil store falls back to the built-in store-category table.
func NewCategorizer(st *store.CategoryStore, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}

	c := &Categorizer{
		storeMappings: store.DefaultStoreMappings(),
		logger:        logger,
	}

	if st != nil {
		mappings, err := st.LoadStoreMappings()
		if err != nil {
			c.logger.WithError(err).Warn("Failed to load store mappings, using built-in table")
		} else {
			c.storeMappings = mappings
		}
	}

	return c
}

// StoreMappings returns the active store-category table in scan order.
func (c *Categorizer) StoreMappings() []models.StoreMapping {
	mappings := make([]models.StoreMapping, len(c.storeMappings))
	copy(mappings, c.storeMappings)
	return mappings
}

// storeEntryFor scans the table in declaration order and returns the first
// mapping whose fragment is contained in the cleaned name.
func (c *Categorizer) storeEntryFor(cleaned string) (models.StoreMapping, bool) {
	for _, mapping := range c.storeMappings {
		if strings.Contains(cleaned, mapping.Match) {
			return mapping, true
		}
	}
	return models.StoreMapping{}, false
}

// ResolveOverall determines the primary category of the entire bill from the
// merchant name and, failing that, keywords anywhere in the receipt text.
func (c *Categorizer) ResolveOverall(merchant, fullText string) models.Category {
	cleaned := textutils.CleanMerchantName(merchant)

	if mapping, found := c.storeEntryFor(cleaned); found {
		c.logger.WithFields(
			logging.Field{Key: logging.FieldMerchant, Value: merchant},
			logging.Field{Key: logging.FieldCategory, Value: mapping.Overall},
		).Debug("Bill categorized from store table")
		return mapping.Overall
	}

	textLower := strings.ToLower(fullText)
	for _, rule := range billRules {
		if rule.matches(textLower) {
			c.logger.WithFields(
				logging.Field{Key: logging.FieldMerchant, Value: merchant},
				logging.Field{Key: logging.FieldCategory, Value: rule.category},
			).Debug("Bill categorized from whole-text keywords")
			return rule.category
		}
	}

	return models.CategoryGeneral
}

// ResolveItem categorizes a single line item.
//
// When the overall category traces back to a store entry with an item default,
// that default applies to every item except bookkeeping lines, which become
// Non-Spend Item. Otherwise the item name runs through the exclusion check and
// the ordered keyword rule groups; if nothing fires, the overall category
// propagates down to the item.
func (c *Categorizer) ResolveItem(itemName string, overall models.Category, fullText string) models.Category {
	nameLower := strings.ToLower(itemName)

	// The store entry is re-resolved by scanning the table against the
	// cleaned overall category string. Quirky, but changing it would silently
	// recategorize existing records.
	if mapping, found := c.storeEntryFor(textutils.CleanMerchantName(string(overall))); found && mapping.ItemDefault != "" {
		if containsAny(nameLower, exclusionKeywords) {
			return models.CategoryNonSpend
		}
		return mapping.ItemDefault
	}

	if containsAny(nameLower, itemExclusionKeywords) || priceOnlyName.MatchString(nameLower) {
		return models.CategoryNonSpend
	}

	for _, rule := range itemRules {
		if rule.matches(nameLower) {
			return rule.category
		}
	}

	// No rule fired; the item inherits the category of the whole bill.
	return overall
}
