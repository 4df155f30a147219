package catalog

// IngredientNutrition holds per-100g reference values.
type IngredientNutrition struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
	Calories float64 `json:"calories"`
}

// referenceTable seeds every new catalog. Values are per 100 g; keys are
// lower-case. Curated to avoid substring collisions that would make partial
// matching ambiguous.
var referenceTable = map[string]IngredientNutrition{
	// Grains
	"rice":         {Protein: 6.6, Carbs: 78, Fat: 0.3, Sugar: 0.1, Sodium: 10, Calories: 345},
	"wheat":        {Protein: 13.7, Carbs: 71, Fat: 1.7, Sugar: 0.4, Sodium: 2, Calories: 364},
	"basmati rice": {Protein: 6.3, Carbs: 80, Fat: 0.3, Sugar: 0, Sodium: 1, Calories: 350},
	"oats":         {Protein: 10.7, Carbs: 66.3, Fat: 6.9, Sugar: 0, Sodium: 30, Calories: 389},

	// Proteins
	"chicken breast":   {Protein: 31, Carbs: 0, Fat: 3.6, Sugar: 0, Sodium: 75, Calories: 165},
	"chicken":          {Protein: 26.3, Carbs: 0, Fat: 7.4, Sugar: 0, Sodium: 75, Calories: 165},
	"fish (salmon)":    {Protein: 25.4, Carbs: 0, Fat: 13.6, Sugar: 0, Sodium: 75, Calories: 208},
	"eggs":             {Protein: 13, Carbs: 1.1, Fat: 11, Sugar: 1.1, Sodium: 140, Calories: 155},
	"lentils (cooked)": {Protein: 9.0, Carbs: 20, Fat: 0.4, Sugar: 0.1, Sodium: 2, Calories: 116},
	"paneer":           {Protein: 23, Carbs: 1.2, Fat: 25, Sugar: 0, Sodium: 400, Calories: 321},
	"greek yogurt":     {Protein: 10.2, Carbs: 3.6, Fat: 0.4, Sugar: 3.3, Sodium: 75, Calories: 59},

	// Vegetables
	"broccoli":    {Protein: 2.8, Carbs: 7, Fat: 0.4, Sugar: 1.4, Sodium: 64, Calories: 34},
	"carrots":     {Protein: 0.9, Carbs: 10, Fat: 0.2, Sugar: 4.7, Sodium: 69, Calories: 41},
	"spinach":     {Protein: 2.7, Carbs: 3.6, Fat: 0.4, Sugar: 0.4, Sodium: 79, Calories: 23},
	"tomato":      {Protein: 0.9, Carbs: 3.9, Fat: 0.2, Sugar: 2.6, Sodium: 12, Calories: 18},
	"onion":       {Protein: 1.1, Carbs: 9, Fat: 0.1, Sugar: 4.2, Sodium: 4, Calories: 40},
	"cucumber":    {Protein: 0.7, Carbs: 3.6, Fat: 0.1, Sugar: 1.7, Sodium: 2, Calories: 16},
	"bell pepper": {Protein: 1, Carbs: 6, Fat: 0.3, Sugar: 3.2, Sodium: 2, Calories: 31},

	// Oils & fats
	"olive oil":   {Protein: 0, Carbs: 0, Fat: 100, Sugar: 0, Sodium: 2, Calories: 884},
	"coconut oil": {Protein: 0, Carbs: 0, Fat: 100, Sugar: 0, Sodium: 0, Calories: 892},
	"butter":      {Protein: 0.7, Carbs: 0.1, Fat: 81.7, Sugar: 0, Sodium: 714, Calories: 717},

	// Dairy
	"milk":   {Protein: 3.2, Carbs: 4.8, Fat: 3.3, Sugar: 4.8, Sodium: 44, Calories: 61},
	"cheese": {Protein: 25, Carbs: 1.3, Fat: 33, Sugar: 0.7, Sodium: 621, Calories: 402},

	// Spices & seasonings
	"salt":         {Protein: 0, Carbs: 0, Fat: 0, Sugar: 0, Sodium: 38758, Calories: 0},
	"black pepper": {Protein: 10.4, Carbs: 64.8, Fat: 3.3, Sugar: 0.6, Sodium: 20, Calories: 251},
	"turmeric":     {Protein: 7.8, Carbs: 67.1, Fat: 3.5, Sugar: 3.2, Sodium: 38, Calories: 312},

	// Legumes
	"chickpeas": {Protein: 15.4, Carbs: 27.4, Fat: 4.3, Sugar: 0.7, Sodium: 64, Calories: 210},
	"beans":     {Protein: 8.7, Carbs: 16.1, Fat: 0.4, Sugar: 0.3, Sodium: 3, Calories: 127},
}
