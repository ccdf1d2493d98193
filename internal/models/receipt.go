package models

import (
	"github.com/shopspring/decimal"
)

// Item is a single categorized line item extracted from a receipt.
type Item struct {
	Name     string          `json:"name" csv:"Name"`
	Price    decimal.Decimal `json:"price" csv:"Price"`
	Category Category        `json:"category" csv:"Category"`
}

// ParsedReceipt is the structured record produced from one OCR text dump.
// It is created once per parse call and never modified afterwards; callers
// own the value outright and may share it across goroutines freely.
type ParsedReceipt struct {
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Merchant     string          `json:"merchant"`
	Date         string          `json:"date"` // ISO YYYY-MM-DD
	Category     Category        `json:"category"`
	Items        []Item          `json:"items"`
	OriginalText string          `json:"original_text"`
}

// ItemsTotal returns the sum of all item prices.
func (r ParsedReceipt) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range r.Items {
		sum = sum.Add(item.Price)
	}
	return sum
}

// ItemRow is the flattened CSV representation of one receipt line item.
type ItemRow struct {
	Merchant string `csv:"Merchant"`
	Date     string `csv:"Date"`
	Name     string `csv:"Item"`
	Price    string `csv:"Price"`
	Category string `csv:"Category"`
}

// ToRows flattens the receipt into per-item CSV rows for export.
func (r ParsedReceipt) ToRows() []ItemRow {
	rows := make([]ItemRow, 0, len(r.Items))
	for _, item := range r.Items {
		rows = append(rows, ItemRow{
			Merchant: r.Merchant,
			Date:     r.Date,
			Name:     item.Name,
			Price:    item.Price.StringFixed(2),
			Category: string(item.Category),
		})
	}
	return rows
}
