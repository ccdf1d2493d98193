// Package models provides the data structures used throughout the application.
package models

// Category is the closed set of spending categories a receipt or line item
// can be assigned to. Every categorization path resolves to one of these.
type Category string

// Categories
const (
	CategoryFoodDining    Category = "Food & Dining"
	CategoryGrocery       Category = "Grocery/Supermarket"
	CategoryElectronics   Category = "Electronics"
	CategoryOnlineShop    Category = "Online Shopping"
	CategoryClothing      Category = "Clothing/Apparel"
	CategoryTransport     Category = "Transportation/Fuel"
	CategoryHealthcare    Category = "Healthcare/Pharmacy"
	CategoryHousehold     Category = "Household"
	CategoryEntertainment Category = "Entertainment"
	CategoryBills         Category = "Bills/Utilities"
	CategoryTravel        Category = "Travel"
	CategoryPersonalCare  Category = "Personal Care"
	CategoryEducation     Category = "Education"
	CategoryGifts         Category = "Gifts & Donations"
	CategoryTools         Category = "Tools/Hardware"
	CategoryGeneral       Category = "General"
	CategoryNonSpend      Category = "Non-Spend Item"
	CategoryUncategorized Category = "Uncategorized"
)

// AllCategories lists every member of the closed category set.
var AllCategories = []Category{
	CategoryFoodDining,
	CategoryGrocery,
	CategoryElectronics,
	CategoryOnlineShop,
	CategoryClothing,
	CategoryTransport,
	CategoryHealthcare,
	CategoryHousehold,
	CategoryEntertainment,
	CategoryBills,
	CategoryTravel,
	CategoryPersonalCare,
	CategoryEducation,
	CategoryGifts,
	CategoryTools,
	CategoryGeneral,
	CategoryNonSpend,
	CategoryUncategorized,
}

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the display name of the category.
func (c Category) String() string {
	return string(c)
}

// StoreMapping associates a cleaned merchant-name fragment with the overall
// category of the whole bill and, optionally, a default category applied to
// every item on it. Mappings are scanned in declaration order and the first
// fragment contained in the cleaned merchant name wins.
type StoreMapping struct {
	Match       string   `yaml:"match"`
	Overall     Category `yaml:"category"`
	ItemDefault Category `yaml:"item_default,omitempty"`
}

// StoresConfig is the structure of the stores YAML file.
type StoresConfig struct {
	Stores []StoreMapping `yaml:"stores"`
}
