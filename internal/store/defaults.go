package store

import (
	"fjacquet/receipt-csv/internal/models"
)

// defaultStoreMappings is the built-in store-category table. Order matters:
// the table is scanned top to bottom and the first fragment contained in the
// cleaned merchant name wins. An empty ItemDefault means the merchant sells
// mixed goods and item-level rules apply instead.
var defaultStoreMappings = []models.StoreMapping{
	{Match: "mcdonalds", Overall: models.CategoryFoodDining, ItemDefault: models.CategoryFoodDining},
	{Match: "starbucks", Overall: models.CategoryFoodDining, ItemDefault: models.CategoryFoodDining},
	{Match: "kfc", Overall: models.CategoryFoodDining, ItemDefault: models.CategoryFoodDining},
	{Match: "dominos", Overall: models.CategoryFoodDining, ItemDefault: models.CategoryFoodDining},
	{Match: "pizza hut", Overall: models.CategoryFoodDining, ItemDefault: models.CategoryFoodDining},
	{Match: "subway", Overall: models.CategoryFoodDining, ItemDefault: models.CategoryFoodDining},
	{Match: "swiggy", Overall: models.CategoryFoodDining, ItemDefault: models.CategoryFoodDining},
	{Match: "zomato", Overall: models.CategoryFoodDining, ItemDefault: models.CategoryFoodDining},
	{Match: "paradise biryani", Overall: models.CategoryFoodDining, ItemDefault: models.CategoryFoodDining},
	{Match: "haldirams", Overall: models.CategoryFoodDining, ItemDefault: models.CategoryFoodDining},
	{Match: "barbeque nation", Overall: models.CategoryFoodDining, ItemDefault: models.CategoryFoodDining},

	{Match: "big bazaar", Overall: models.CategoryGrocery},
	{Match: "dmart", Overall: models.CategoryGrocery},
	{Match: "reliance fresh", Overall: models.CategoryGrocery},
	{Match: "more retail", Overall: models.CategoryGrocery},
	{Match: "spar", Overall: models.CategoryGrocery},
	{Match: "walmart", Overall: models.CategoryGrocery},
	{Match: "star bazaar", Overall: models.CategoryGrocery},
	{Match: "natures basket", Overall: models.CategoryGrocery},
	{Match: "easyday", Overall: models.CategoryGrocery},

	{Match: "croma", Overall: models.CategoryElectronics, ItemDefault: models.CategoryElectronics},
	{Match: "reliance digital", Overall: models.CategoryElectronics, ItemDefault: models.CategoryElectronics},
	// Marketplaces sell everything, so item-level rules decide per line.
	{Match: "amazon", Overall: models.CategoryOnlineShop},
	{Match: "flipkart", Overall: models.CategoryOnlineShop},

	{Match: "zara", Overall: models.CategoryClothing, ItemDefault: models.CategoryClothing},
	{Match: "h&m", Overall: models.CategoryClothing, ItemDefault: models.CategoryClothing},
	{Match: "lifestyle", Overall: models.CategoryClothing, ItemDefault: models.CategoryClothing},
	{Match: "shoppers stop", Overall: models.CategoryClothing, ItemDefault: models.CategoryClothing},
	{Match: "myntra", Overall: models.CategoryOnlineShop, ItemDefault: models.CategoryClothing},

	{Match: "hpcl", Overall: models.CategoryTransport, ItemDefault: models.CategoryTransport},
	{Match: "bpcl", Overall: models.CategoryTransport, ItemDefault: models.CategoryTransport},
	{Match: "indian oil", Overall: models.CategoryTransport, ItemDefault: models.CategoryTransport},
	{Match: "uber", Overall: models.CategoryTransport, ItemDefault: models.CategoryTransport},
	{Match: "ola", Overall: models.CategoryTransport, ItemDefault: models.CategoryTransport},

	{Match: "apollo pharmacy", Overall: models.CategoryHealthcare, ItemDefault: models.CategoryHealthcare},
	{Match: "netmeds", Overall: models.CategoryHealthcare, ItemDefault: models.CategoryHealthcare},
	{Match: "chemist warehouse", Overall: models.CategoryHealthcare, ItemDefault: models.CategoryHealthcare},
	{Match: "medplus", Overall: models.CategoryHealthcare, ItemDefault: models.CategoryHealthcare},

	{Match: "ikea", Overall: models.CategoryHousehold, ItemDefault: models.CategoryHousehold},
	{Match: "home centre", Overall: models.CategoryHousehold, ItemDefault: models.CategoryHousehold},
	{Match: "pepperfry", Overall: models.CategoryHousehold, ItemDefault: models.CategoryHousehold},

	{Match: "pvr", Overall: models.CategoryEntertainment, ItemDefault: models.CategoryEntertainment},
	{Match: "inox", Overall: models.CategoryEntertainment, ItemDefault: models.CategoryEntertainment},
	{Match: "bookmyshow", Overall: models.CategoryEntertainment, ItemDefault: models.CategoryEntertainment},

	// Generic fragments for less specific merchants.
	{Match: "hotel", Overall: models.CategoryTravel, ItemDefault: models.CategoryTravel},
	{Match: "airlines", Overall: models.CategoryTravel, ItemDefault: models.CategoryTravel},
	{Match: "flight", Overall: models.CategoryTravel, ItemDefault: models.CategoryTravel},
	{Match: "bus", Overall: models.CategoryTravel, ItemDefault: models.CategoryTravel},
	{Match: "railways", Overall: models.CategoryTravel, ItemDefault: models.CategoryTravel},
	{Match: "stationery", Overall: models.CategoryEducation, ItemDefault: models.CategoryEducation},
	{Match: "book store", Overall: models.CategoryEducation, ItemDefault: models.CategoryEducation},
	{Match: "spa", Overall: models.CategoryPersonalCare, ItemDefault: models.CategoryPersonalCare},
	{Match: "salon", Overall: models.CategoryPersonalCare, ItemDefault: models.CategoryPersonalCare},
	{Match: "gym", Overall: models.CategoryHealthcare, ItemDefault: models.CategoryHealthcare},
	{Match: "fitness", Overall: models.CategoryHealthcare, ItemDefault: models.CategoryHealthcare},
}

// DefaultStoreMappings returns a copy of the built-in store-category table.
func DefaultStoreMappings() []models.StoreMapping {
	mappings := make([]models.StoreMapping, len(defaultStoreMappings))
	copy(mappings, defaultStoreMappings)
	return mappings
}
