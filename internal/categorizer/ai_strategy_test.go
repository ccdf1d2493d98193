package categorizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/receipt-csv/internal/models"
)

type stubAIClient struct {
	category models.Category
	err      error
	called   bool
}

func (s *stubAIClient) SuggestCategory(ctx context.Context, merchant, receiptText string) (models.Category, error) {
	s.called = true
	return s.category, s.err
}

func TestResolveOverallWithAI(t *testing.T) {
	c := newTestCategorizer()
	ctx := context.Background()

	t.Run("heuristic hit skips AI", func(t *testing.T) {
		stub := &stubAIClient{category: models.CategoryTravel}
		got := c.ResolveOverallWithAI(ctx, stub, "Big Bazaar", "")
		assert.Equal(t, models.CategoryGrocery, got)
		assert.False(t, stub.called)
	})

	t.Run("AI refines General", func(t *testing.T) {
		stub := &stubAIClient{category: models.CategoryElectronics}
		got := c.ResolveOverallWithAI(ctx, stub, "Corner Shop", "1 2 3")
		assert.Equal(t, models.CategoryElectronics, got)
		assert.True(t, stub.called)
	})

	t.Run("AI error degrades to heuristic", func(t *testing.T) {
		stub := &stubAIClient{err: errors.New("quota exceeded")}
		got := c.ResolveOverallWithAI(ctx, stub, "Corner Shop", "1 2 3")
		assert.Equal(t, models.CategoryGeneral, got)
	})

	t.Run("invalid AI category rejected", func(t *testing.T) {
		stub := &stubAIClient{category: models.Category("Made Up")}
		got := c.ResolveOverallWithAI(ctx, stub, "Corner Shop", "1 2 3")
		assert.Equal(t, models.CategoryGeneral, got)
	})

	t.Run("nil client", func(t *testing.T) {
		got := c.ResolveOverallWithAI(ctx, nil, "Corner Shop", "1 2 3")
		assert.Equal(t, models.CategoryGeneral, got)
	})
}

func TestExtractCategoryFromResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected models.Category
		ok       bool
	}{
		{"Structured line", "Category: Electronics", models.CategoryElectronics, true},
		{"Bracketed answer", "Category: [Food & Dining]", models.CategoryFoodDining, true},
		{"Name buried in prose", "This looks like Healthcare/Pharmacy to me.", models.CategoryHealthcare, true},
		{"Unknown category", "Category: Unicorns", "", false},
		{"Empty response", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractCategoryFromResponse(tc.response)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}
