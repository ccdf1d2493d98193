package categorizer

import (
	"context"

	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/models"
)

// AIClient suggests an overall category for a merchant when the heuristic
// chain cannot do better than General. Implementations must constrain their
// answer to the closed category set.
type AIClient interface {
	SuggestCategory(ctx context.Context, merchant, receiptText string) (models.Category, error)
}

// ResolveOverallWithAI resolves the overall bill category heuristically and,
// only when the result is General, consults the AI client for a better
// suggestion. The parse core never calls this; it exists for the CLI path
// where a network round trip is acceptable. Any AI failure degrades back to
// the heuristic result.
func (c *Categorizer) ResolveOverallWithAI(ctx context.Context, ai AIClient, merchant, fullText string) models.Category {
	category := c.ResolveOverall(merchant, fullText)
	if category != models.CategoryGeneral || ai == nil {
		return category
	}

	suggested, err := ai.SuggestCategory(ctx, merchant, fullText)
	if err != nil {
		c.logger.WithError(err).WithField(logging.FieldMerchant, merchant).Warn("AI category suggestion failed")
		return category
	}
	if !suggested.IsValid() || suggested == models.CategoryNonSpend {
		c.logger.WithFields(
			logging.Field{Key: logging.FieldMerchant, Value: merchant},
			logging.Field{Key: logging.FieldCategory, Value: suggested},
		).Warn("AI suggested a category outside the closed set")
		return category
	}

	c.logger.WithFields(
		logging.Field{Key: logging.FieldMerchant, Value: merchant},
		logging.Field{Key: logging.FieldCategory, Value: suggested},
	).Debug("Bill categorized by AI suggestion")
	return suggested
}
