package receiptparser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/receipt-csv/internal/categorizer"
	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/models"
)

func newTestParser() *Parser {
	cat := categorizer.NewCategorizer(nil, &logging.MockLogger{})
	return New(cat, DefaultOptions(), &logging.MockLogger{})
}

func pinnedClock(t *testing.T, fixed time.Time) {
	t.Helper()
	original := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = original })
}

func TestParseFastFoodReceipt(t *testing.T) {
	pinnedClock(t, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	p := newTestParser()

	receipt, err := p.ParseText(`MCDONALDS
123 Main St
Big Mac 5.99
Fries 2.49
Coke 1.99
Total: $10.47`)
	require.NoError(t, err)

	assert.Equal(t, "MCDONALDS", receipt.Merchant)
	assert.Equal(t, models.CategoryFoodDining, receipt.Category)
	assert.Equal(t, "10.47", receipt.TotalAmount.StringFixed(2))

	require.Len(t, receipt.Items, 3)
	for i, expected := range []struct {
		name  string
		price string
	}{
		{"Big Mac", "5.99"},
		{"Fries", "2.49"},
		{"Coke", "1.99"},
	} {
		assert.Equal(t, expected.name, receipt.Items[i].Name)
		assert.Equal(t, expected.price, receipt.Items[i].Price.StringFixed(2))
		assert.Equal(t, models.CategoryFoodDining, receipt.Items[i].Category)
	}

	// Sum already matches the total, so no corrective entry appears.
	assert.Equal(t, "10.47", receipt.ItemsTotal().StringFixed(2))
}

func TestParseGroceryReceiptItemRules(t *testing.T) {
	pinnedClock(t, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	p := newTestParser()

	receipt, err := p.ParseText(`DMART
Milk 45.00
Bread 30.00
Detergent 120.00
Total 195.00`)
	require.NoError(t, err)

	assert.Equal(t, "DMART", receipt.Merchant)
	assert.Equal(t, models.CategoryGrocery, receipt.Category)
	assert.Equal(t, "195.00", receipt.TotalAmount.StringFixed(2))

	require.Len(t, receipt.Items, 3)
	assert.Equal(t, models.CategoryGrocery, receipt.Items[0].Category)
	assert.Equal(t, models.CategoryGrocery, receipt.Items[1].Category)
	assert.Equal(t, models.CategoryHousehold, receipt.Items[2].Category)
}

func TestExtractItemLineShapes(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name      string
		line      string
		itemName  string
		itemPrice string
	}{
		{"Plain name and price", "Milk 45.00", "Milk", "45.00"},
		{"Quantity between name and price", "Milk 2 45.00", "Milk", "45.00"},
		{"Three-digit price kept whole", "Detergent 120.00", "Detergent", "120.00"},
		{"Name ending in s stays intact", "Fries 2.49", "Fries", "2.49"},
		{"Rupee marker before price", "Latte Rs 120.00", "Latte", "120.00"},
		{"Symbol marker before price", "Coke $1.99", "Coke", "1.99"},
		{"Trailing tax flag", "Bread 30.00 N", "Bread", "30.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items := p.extractItems([]string{tc.line}, models.CategoryGeneral, tc.line)
			require.Len(t, items, 1)
			assert.Equal(t, tc.itemName, items[0].Name)
			assert.Equal(t, tc.itemPrice, items[0].Price.StringFixed(2))
		})
	}
}

func TestExtractTotal(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"Labeled total", "Total 19.50\nItems 3", "19.50"},
		{"Subtotal label matches first", "Subtotal 9.00\nTotal 19.50", "9.00"},
		{"Labeled with colon", "Total: 45.23", "45.23"},
		{"Comma amount", "Total: 45,23", "45.23"},
		{"Payment label fallback", "Cash received 30.00", "30.00"},
		{"Largest token fallback", "stuff 2.50 other 1.20 big 45.00", "45.00"},
		{"Tokens below floor ignored", "a 0.30 b 0.40", "0.00"},
		{"No amounts at all", "nothing here", "0.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, p.extractTotal(tc.text).StringFixed(2))
		})
	}
}

func TestExtractMerchant(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"First plausible line", "SPAR SUPERMARKET\n12 High Street", "SPAR SUPERMARKET"},
		{"Business word preferred", "Welcome Dear Customer\nApollo Pharmacy\nBill No 12", "Apollo Pharmacy"},
		{"Header boilerplate skipped", "TAX INVOICE\nReceipt No 5\nCity Bakery House", "City Bakery House"},
		{"Date lines skipped", "15/01/2024\nCity Bakery House", "City Bakery House"},
		{"Amount lines skipped", "99.99\nCity Bakery House", "City Bakery House"},
		{"Too short lines skipped", "AB\nCity Bakery House", "City Bakery House"},
		{"Nothing plausible", "12.50\n2024-01-15", "Unknown Merchant"},
		{"Walmart star form", "WAL*MART\nSave money", "Walmart"},
		{"Walmart spaced form", "WAL MART SUPERCENTER\nSave money", "Walmart"},
		{"Walmart without candidate lines", "12.50\nWAL*MART 99.99", "Walmart"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lines := strings.Split(tc.text, "\n")
			assert.Equal(t, tc.expected, p.extractMerchant(lines, tc.text))
		})
	}
}

func TestMerchantScanStopsAfterConfiguredLines(t *testing.T) {
	p := newTestParser()

	lines := []string{"12.50", "12.50", "12.50", "12.50", "12.50", "12.50", "City Bakery House"}
	assert.Equal(t, "Unknown Merchant", p.extractMerchant(lines, strings.Join(lines, "\n")))
}

func TestReconcileMiscPurchaseWhenNoItems(t *testing.T) {
	pinnedClock(t, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	p := newTestParser()

	receipt, err := p.ParseText(`SOME STORE
Thank you
Total: 50.00`)
	require.NoError(t, err)

	assert.Equal(t, "50.00", receipt.TotalAmount.StringFixed(2))
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "Misc. Purchase", receipt.Items[0].Name)
	assert.Equal(t, "50.00", receipt.Items[0].Price.StringFixed(2))
	assert.Equal(t, receipt.Category, receipt.Items[0].Category)
}

func TestReconcileRemainder(t *testing.T) {
	pinnedClock(t, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	p := newTestParser()

	receipt, err := p.ParseText(`DMART
Milk 45.00
Total 195.00`)
	require.NoError(t, err)

	require.Len(t, receipt.Items, 2)
	assert.Equal(t, "Milk", receipt.Items[0].Name)
	assert.Equal(t, "Uncategorized Remainder", receipt.Items[1].Name)
	assert.Equal(t, "150.00", receipt.Items[1].Price.StringFixed(2))
	assert.Equal(t, models.CategoryGrocery, receipt.Items[1].Category)
}

func TestReconcileSkipsNegativeRemainder(t *testing.T) {
	pinnedClock(t, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	p := newTestParser()

	// Items sum above the total; the gap is large but negative, so no
	// corrective entry is added.
	receipt, err := p.ParseText(`DMART
Milk 45.00
Bread 30.00
Total 10.00`)
	require.NoError(t, err)

	require.Len(t, receipt.Items, 2)
	assert.Equal(t, "10.00", receipt.TotalAmount.StringFixed(2))
}

func TestReconcileWithinTolerance(t *testing.T) {
	pinnedClock(t, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	p := newTestParser()

	receipt, err := p.ParseText(`DMART
Milk 45.00
Total 45.40`)
	require.NoError(t, err)

	// Gap of 0.40 is inside the 0.5 tolerance.
	require.Len(t, receipt.Items, 1)
}

func TestParseDateHandling(t *testing.T) {
	p := newTestParser()

	t.Run("date extracted from text", func(t *testing.T) {
		receipt, err := p.ParseText("COFFEE HOUSE\n15 Jun 2024\nLatte 4.50")
		require.NoError(t, err)
		assert.Equal(t, "2024-06-15", receipt.Date)
	})

	t.Run("falls back to current date", func(t *testing.T) {
		pinnedClock(t, time.Date(2024, time.February, 2, 8, 0, 0, 0, time.UTC))
		receipt, err := p.ParseText("COFFEE HOUSE\nLatte 4.50")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-02", receipt.Date)
	})
}

func TestParseSkipsNonSpendLines(t *testing.T) {
	pinnedClock(t, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	p := newTestParser()

	receipt, err := p.ParseText(`CITY STORE HOUSE
Notebook Pro 899.00
Member discount 20.00
Total 899.00`)
	require.NoError(t, err)

	// The discount line survives the line filter but classifies as non-spend
	// and is dropped from the item list.
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "Notebook Pro", receipt.Items[0].Name)
	assert.Equal(t, models.CategoryElectronics, receipt.Items[0].Category)
}

func TestParseEmptyInputYieldsDefaults(t *testing.T) {
	pinnedClock(t, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	p := newTestParser()

	for _, text := range []string{"", "   \n \t \n"} {
		receipt, err := p.ParseText(text)
		require.NoError(t, err)
		assert.Equal(t, "Unknown Merchant", receipt.Merchant)
		assert.Equal(t, "0.00", receipt.TotalAmount.StringFixed(2))
		assert.Equal(t, "2024-06-01", receipt.Date)
		assert.Empty(t, receipt.Items)
		assert.NotNil(t, receipt.Items)
	}
}

func TestParseReader(t *testing.T) {
	pinnedClock(t, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	p := newTestParser()

	receipt, err := p.Parse(strings.NewReader("DMART\nMilk 45.00\nTotal 45.00"))
	require.NoError(t, err)
	assert.Equal(t, "DMART", receipt.Merchant)
}

func TestParseFileMissing(t *testing.T) {
	p := newTestParser()
	_, err := p.ParseFile("does-not-exist.txt")
	assert.Error(t, err)
}

func TestParseIsDeterministic(t *testing.T) {
	pinnedClock(t, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	p := newTestParser()

	text := "DMART\n15/01/2024\nMilk 45.00\nDetergent 120.00\nTotal 165.00"
	first, err := p.ParseText(text)
	require.NoError(t, err)
	second, err := p.ParseText(text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
