package models

// NutrientBudget holds a user's personalized daily targets across the six
// tracked channels. Calories/protein/carbs/fat are targets derived from body
// metrics; sugar and sodium are upper limits.
type NutrientBudget struct {
	Calories float64 `json:"calories" example:"2000"`
	Protein  float64 `json:"protein" example:"150"`
	Carbs    float64 `json:"carbs" example:"225"`
	Fat      float64 `json:"fat" example:"56"`
	Sugar    float64 `json:"sugar" example:"30"`
	Sodium   float64 `json:"sodium" example:"2300"`
}

// DailySummary is the running accumulation for one user and day, in the field
// naming used by the daily-summary storage. The rule engine reads the plain
// channel names, so callers map this through rules.IntakeFromSummary first.
type DailySummary struct {
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFat      float64 `json:"totalFat"`
	TotalSugar    float64 `json:"totalSugar"`
	TotalSodium   float64 `json:"totalSodium"`
}
