package categorizer

import (
	"strings"

	"fjacquet/receipt-csv/internal/models"
)

// keywordRule assigns a category when any of its keywords occurs in the
// lowercased text. A pairedKeyword only counts when its companions are
// present (anyOf) or absent (noneOf).
type keywordRule struct {
	category models.Category
	keywords []string
	paired   []pairedKeyword
}

type pairedKeyword struct {
	keyword string
	anyOf   []string
	noneOf  []string
}

// matches reports whether the rule fires for the given lowercased text.
func (r keywordRule) matches(text string) bool {
	for _, keyword := range r.keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	for _, p := range r.paired {
		if !strings.Contains(text, p.keyword) {
			continue
		}
		if p.anyOf != nil && !containsAny(text, p.anyOf) {
			continue
		}
		if p.noneOf != nil && containsAny(text, p.noneOf) {
			continue
		}
		return true
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// exclusionKeywords mark a line as bookkeeping rather than a purchasable
// good when the merchant supplies an item default category.
var exclusionKeywords = []string{
	"discount", "tax", "subtotal", "total", "cash", "change", "amount", "card",
}

// itemExclusionKeywords is the wider exclusion set applied before the
// item-level rule groups run.
var itemExclusionKeywords = []string{
	"discount", "tax", "subtotal", "total", "cash", "change", "amount", "card", "round off",
}

// billRules is the whole-text fallback chain for the overall bill category,
// used when the merchant is not in the store table. Evaluated top to bottom,
// first match wins; exhausting the chain yields General.
var billRules = []keywordRule{
	{category: models.CategoryFoodDining, keywords: []string{"restaurant", "cafe", "coffee", "dine"}},
	{category: models.CategoryTransport, keywords: []string{"fuel", "petrol", "diesel"}},
	{category: models.CategoryHealthcare, keywords: []string{"pharmacy", "chemist", "medicine"}},
	{category: models.CategoryElectronics, keywords: []string{"electronics", "gadget", "tv"}},
	{category: models.CategoryClothing, keywords: []string{"fashion", "apparel", "clothing"}},
	{category: models.CategoryEntertainment, keywords: []string{"movie", "cinema", "entertainment"}},
	{category: models.CategoryBills, keywords: []string{"bill", "utility"}},
	{category: models.CategoryTravel, keywords: []string{"hotel", "flight", "travel"}},
	{category: models.CategoryEducation, keywords: []string{"school", "college", "tuition"}},
	{category: models.CategoryPersonalCare, keywords: []string{"salon", "spa", "personal care"}},
	{category: models.CategoryTools, keywords: []string{"hardware", "tools"}},
	{category: models.CategoryHousehold, keywords: []string{"home", "furniture", "decor"}},
}

// itemRules is the item-name classification chain. Group order is load
// bearing: overlapping keywords ("rice" is both a grocery staple and a dish)
// resolve to whichever group is listed first, and existing records depend on
// that precedence.
var itemRules = []keywordRule{
	{category: models.CategoryGrocery, keywords: []string{
		"milk", "bread", "eggs", "vegetable", "fruit", "banana", "apple", "mango",
		"grape", "orange", "papaya", "pineapple", "watermelon", "pomegranate",
		"lemon", "potato", "tomato", "onion", "carrot", "beans", "cabbage",
		"cauliflower", "brinjal", "ladyfinger", "okra", "cucumber", "spinach",
		"beetroot", "pumpkin", "garlic", "ginger", "green chili", "red chili",
		"capsicum", "radish", "turnip", "spring onion", "peas", "broccoli",
		"mushroom", "sweet corn", "zucchini", "drumstick", "bitter gourd",
		"bottle gourd", "ridge gourd", "ash gourd", "tinda", "turmeric", "haldi",
		"chili powder", "masala", "spice", "salt", "sugar", "jaggery", "oil",
		"ghee", "rice", "basmati", "brown rice", "dal", "lentil", "chana",
		"moong", "toor", "urad", "rajma", "soya", "poha", "flattened rice",
		"suji", "rava", "maida", "wheat", "atta", "flour", "corn flour", "bajra",
		"jowar", "barley", "millet", "quinoa", "oats", "biscuit", "snack",
		"namkeen", "juice", "water bottle", "tea", "coffee", "pickle", "jam",
		"sprout", "mung bean", "black chana", "white chana", "green gram",
		"kidney bean", "mustard", "fennel", "fenugreek", "ajwain", "hing", "jeera",
	}},
	{category: models.CategoryFoodDining, keywords: []string{
		"burger", "pizza", "coffee", "tea", "chai", "latte", "cappuccino",
		"espresso", "sandwich", "sub", "wrap", "shawarma", "roll", "fries",
		"french fries", "nuggets", "taco", "nachos", "meal", "combo", "thali",
		"curry", "biryani", "rice", "noodles", "pasta", "maggi", "paratha",
		"roti", "naan", "paneer", "chicken", "mutton", "fish", "egg", "dal",
		"sabji", "veg", "nonveg", "buffet", "lunch", "dinner", "breakfast",
		"snack", "chaat", "pani puri", "samosa", "vada", "idli", "dosa",
		"uttapam", "poha", "upma", "kichdi", "dessert", "ice cream", "kulfi",
		"sweet", "cake", "pastry", "brownie", "cookie", "donut", "chocolate",
		"juice", "shake", "smoothie", "lassi", "buttermilk", "soda", "drink", "frap",
	}},
	{category: models.CategoryTransport,
		keywords: []string{"fuel", "petrol", "diesel", "gas", "fare", "cab"},
		paired: []pairedKeyword{
			{keyword: "ticket", anyOf: []string{"bus", "train", "metro"}},
		}},
	{category: models.CategoryHousehold,
		keywords: []string{
			"cleaner", "detergent", "utensil", "plate", "glass", "spoon", "fork",
			"knife", "bowl", "tray", "mug", "jug", "bottle", "bucket", "mop",
			"broom", "dustbin", "furniture", "sofa", "chair", "table", "bed",
			"mattress", "pillow", "curtain", "lamp", "light", "bulb", "fan",
			"decor", "vase", "photo frame", "wall art", "towel", "bedsheet",
			"blanket", "doormat", "floor mat", "air freshener", "insect repellent",
		},
		paired: []pairedKeyword{
			{keyword: "soap", noneOf: []string{"personal"}},
		}},
	{category: models.CategoryTools, keywords: []string{
		"hammer", "drill", "screwdriver", "wrench", "pliers", "spanner", "screw",
		"nut", "bolt", "nail", "tape", "saw", "cutter", "blade", "tool",
		"toolkit", "paint", "brush", "roller", "sandpaper", "chisel",
		"measuring tape", "level", "welding", "adhesive", "fevicol", "sealant",
		"putty", "hardware",
	}},
	{category: models.CategoryHealthcare, keywords: []string{
		"medicine", "pill", "tablet", "capsule", "syrup", "ointment", "gel",
		"cream", "injection", "vaccine", "bandage", "band-aid", "gauze",
		"cotton", "antiseptic", "disinfectant", "sanitizer", "mask", "glove",
		"thermometer", "bp monitor", "blood pressure", "oximeter", "inhaler",
		"nebulizer", "first aid", "painkiller", "paracetamol", "ibuprofen",
		"antacid", "allergy", "diabetic", "insulin", "multivitamin", "supplement",
	}},
	{category: models.CategoryElectronics, keywords: []string{
		"phone", "mobile", "smartphone", "charger", "power bank", "laptop",
		"notebook", "tablet", "ipad", "computer", "desktop", "monitor",
		"keyboard", "mouse", "printer", "scanner", "router", "modem",
		"headphones", "earphones", "earbuds", "airpods", "tv", "television",
		"speaker", "soundbar", "bluetooth", "smartwatch", "fitness band",
		"battery", "adapter", "usb", "cable", "memory card", "pen drive",
		"hard disk", "ssd", "webcam", "mic", "microphone", "projector",
	}},
	{category: models.CategoryClothing, keywords: []string{
		"shirt", "t-shirt", "pant", "jeans", "trouser", "shorts", "jacket",
		"coat", "blazer", "sweater", "hoodie", "kurta", "kurti", "saree",
		"salwar", "lehenga", "churidar", "dupatta", "dress", "gown", "skirt",
		"top", "blouse", "innerwear", "lingerie", "bra", "underwear",
		"nightwear", "nightdress", "pyjama", "pajama", "vest", "socks", "shoe",
		"slipper", "sandals", "sneaker", "boot", "cap", "hat", "scarf", "glove",
		"belt", "tie", "uniform",
	}},
	{category: models.CategoryEntertainment,
		keywords: []string{
			"movie ticket", "cinema", "game", "concert", "show", "theatre",
			"netflix", "amazon prime", "disney+", "hotstar", "zee5",
		},
		paired: []pairedKeyword{
			{keyword: "book", noneOf: []string{"notebook", "textbook", "account book"}},
			{keyword: "subscription", anyOf: []string{"netflix", "prime", "hotstar", "ott"}},
		}},
	{category: models.CategoryBills,
		keywords: []string{
			"electricity", "power bill", "water bill", "sewage", "gas bill",
			"lpg", "internet", "broadband", "wifi", "phone bill", "mobile bill",
			"postpaid", "prepaid", "utility bill",
		},
		paired: []pairedKeyword{
			{keyword: "recharge", anyOf: []string{"mobile", "data"}},
			{keyword: "plan", anyOf: []string{"mobile", "data", "internet"}},
		}},
	{category: models.CategoryTravel, keywords: []string{
		"flight", "hotel", "airline", "airfare", "train", "bus", "cab fare",
		"taxi", "uber", "ola", "lyft", "rental car", "car rental",
		"accommodation", "lodging", "motel", "guesthouse", "hostel", "resort",
		"vacation rental", "cruise", "travel insurance", "baggage fee",
		"airport transfer", "toll", "parking",
	}},
	{category: models.CategoryPersonalCare, keywords: []string{
		"shampoo", "soap", "body wash", "conditioner", "toothpaste",
		"toothbrush", "floss", "mouthwash", "deodorant", "antiperspirant",
		"cosmetics", "makeup", "lotion", "cream", "moisturizer", "serum",
		"perfume", "cologne", "razor", "shaving cream", "aftershave", "haircut",
		"hair dye", "nail polish", "manicure", "pedicure", "facial", "spa",
		"salon", "barber", "waxing", "epilator", "sunscreen", "hand sanitizer",
		"contact lens solution", "eyelash", "mascara", "lipstick", "eyeliner",
		"blush", "powder", "cotton pads", "q-tips", "sanitary napkins",
		"tampons", "mouth freshner",
	}},
	{category: models.CategoryEducation, keywords: []string{
		"tuition", "course fee", "school fee", "college fee", "university fee",
		"admission fee", "exam fee", "textbook", "notebook", "stationery",
		"pen", "pencil", "eraser", "ruler", "calculator", "backpack",
		"school supplies", "study guide", "online course", "e-learning",
		"workshop fee", "seminar fee", "training program",
		"educational software", "library fee", "student loan", "school trip",
		"extracurricular", "coaching", "tutoring",
	}},
	{category: models.CategoryGifts, keywords: []string{
		"gift", "donation", "charity", "present", "contribute", "fundraiser",
		"sponsorship", "tithe", "offering",
	}},
}
