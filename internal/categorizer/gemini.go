package categorizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/models"
)

// GeminiClient implements AIClient on top of the Gemini API. It is only
// constructed when ai.enabled is set and an API key is present.
type GeminiClient struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	logger  logging.Logger
}

// NewGeminiClient creates a Gemini-backed category suggester.
func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   client.GenerativeModel(model),
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// SuggestCategory asks Gemini to place the merchant into exactly one of the
// known spend categories.
func (g *GeminiClient) SuggestCategory(ctx context.Context, merchant, receiptText string) (models.Category, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	names := make([]string, 0, len(models.AllCategories))
	for _, c := range models.AllCategories {
		if c == models.CategoryNonSpend {
			continue
		}
		names = append(names, c.String())
	}

	prompt := fmt.Sprintf(`Categorize the following purchase receipt:
Merchant: %s

Receipt text:
%s

Please assign this receipt to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`,
		merchant, receiptText, strings.Join(names, ", "))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	category, ok := extractCategoryFromResponse(responseText)
	if !ok {
		return "", fmt.Errorf("could not extract a known category from Gemini response")
	}

	g.logger.WithFields(
		logging.Field{Key: logging.FieldMerchant, Value: merchant},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Gemini classified receipt")
	return category, nil
}

// extractCategoryFromResponse parses the Gemini response text for a category
// line, falling back to scanning the whole response for a known name.
func extractCategoryFromResponse(response string) (models.Category, bool) {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			name := strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
			name = strings.Trim(name, "[]")
			category := models.Category(name)
			if category.IsValid() {
				return category, true
			}
		}
	}
	for _, c := range models.AllCategories {
		if strings.Contains(response, c.String()) {
			return c, true
		}
	}
	return "", false
}
