package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategoryIsValid(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		expected bool
	}{
		{"Known spend category", CategoryGrocery, true},
		{"Non-spend marker", CategoryNonSpend, true},
		{"Fallback category", CategoryGeneral, true},
		{"Unknown name", Category("Health & Fitness"), false},
		{"Empty", Category(""), false},
		{"Case matters", Category("grocery/supermarket"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.category.IsValid())
		})
	}
}

func TestAllCategoriesAreValid(t *testing.T) {
	assert.Len(t, AllCategories, 18)
	for _, c := range AllCategories {
		assert.True(t, c.IsValid(), "category %q should be valid", c)
	}
}

func TestParseMoneyToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
		ok       bool
	}{
		{"Dot separator", "45.23", "45.23", true},
		{"Comma separator", "45,23", "45.23", true},
		{"Leading whitespace", " 12.00", "12", true},
		{"Not a number", "abc", "", false},
		{"Empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			value, ok := ParseMoneyToken(tc.token)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, value.String())
			}
		})
	}
}

func TestItemsTotal(t *testing.T) {
	receipt := ParsedReceipt{
		Items: []Item{
			{Name: "milk", Price: decimal.NewFromFloat(3.50), Category: CategoryGrocery},
			{Name: "bread", Price: decimal.NewFromFloat(2.25), Category: CategoryGrocery},
		},
	}
	assert.Equal(t, "5.75", receipt.ItemsTotal().StringFixed(2))

	empty := ParsedReceipt{}
	assert.True(t, empty.ItemsTotal().IsZero())
}

func TestToRows(t *testing.T) {
	receipt := ParsedReceipt{
		Merchant: "Big Bazaar",
		Date:     "2024-01-15",
		Items: []Item{
			{Name: "rice 5kg", Price: decimal.NewFromFloat(12.5), Category: CategoryGrocery},
		},
	}

	rows := receipt.ToRows()
	assert.Len(t, rows, 1)
	assert.Equal(t, "Big Bazaar", rows[0].Merchant)
	assert.Equal(t, "2024-01-15", rows[0].Date)
	assert.Equal(t, "rice 5kg", rows[0].Name)
	assert.Equal(t, "12.50", rows[0].Price)
	assert.Equal(t, "Grocery/Supermarket", rows[0].Category)
}
