package nutrition

import (
	"errors"
	"math"

	"nutricheck/internal/models"
)

// Gender is a closed set; anything that is not GenderFemale uses the male
// additive constant in the BMR formula.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
	GenderUnspecified Gender = "unspecified"
)

// ParseGender validates a free-form gender string; empty input maps to
// unspecified.
func ParseGender(s string) (Gender, bool) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(s), true
	case GenderUnspecified, "":
		return GenderUnspecified, true
	}
	return "", false
}

// DefaultActivityFactor models a sedentary-to-light lifestyle and is the only
// factor wired through today. The parameterized CalculateTDEE leaves room for
// a real activity-level setting later.
const DefaultActivityFactor = 1.3

// Daily sugar ceiling in grams (WHO recommends 25-36g; we use the
// conservative middle).
const SugarLimitGrams = 30

// Daily sodium limits in mg.
const (
	SodiumLimitMg             = 2300
	SodiumLimitHypertensionMg = 1500
)

// Macro calorie split: protein 30%, carbs 45%, fat 25%.
const (
	proteinCalorieShare = 0.30
	carbCalorieShare    = 0.45
	fatCalorieShare     = 0.25
)

type MacroTargets struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

var ErrInvalidBodyMetrics = errors.New("weight, height and age must be positive")

// CalculateBMR computes the Basal Metabolic Rate via the Mifflin-St Jeor
// equation. Callers must pass positive weight/height/age; no clamping is done
// here.
func CalculateBMR(weightKg, heightCm float64, ageYears int, gender Gender) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == GenderFemale {
		return bmr - 161
	}
	return bmr + 5
}

// CalculateTDEE converts a BMR into total daily energy expenditure, rounded
// to the nearest calorie.
func CalculateTDEE(bmr, activityFactor float64) float64 {
	return math.Round(bmr * activityFactor)
}

// CalculateMacroTargets splits maintenance calories into gram targets at
// 4 kcal/g for protein and carbs, 9 kcal/g for fat. Each target is rounded
// independently, so the gram amounts need not multiply back to exactly the
// input calories.
func CalculateMacroTargets(maintenanceCalories float64) MacroTargets {
	return MacroTargets{
		Protein: math.Round(maintenanceCalories * proteinCalorieShare / 4),
		Carbs:   math.Round(maintenanceCalories * carbCalorieShare / 4),
		Fat:     math.Round(maintenanceCalories * fatCalorieShare / 9),
	}
}

// CalculateDailyNutritionGoals derives a full NutrientBudget from body
// metrics. This is the entry point the profile layer calls; the sub-functions
// are exported for reuse and testing.
func CalculateDailyNutritionGoals(weightKg, heightCm float64, ageYears int, gender Gender, hasHypertension bool) (models.NutrientBudget, error) {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return models.NutrientBudget{}, ErrInvalidBodyMetrics
	}

	bmr := CalculateBMR(weightKg, heightCm, ageYears, gender)
	maintenance := CalculateTDEE(bmr, DefaultActivityFactor)
	macros := CalculateMacroTargets(maintenance)

	sodium := float64(SodiumLimitMg)
	if hasHypertension {
		sodium = SodiumLimitHypertensionMg
	}

	return models.NutrientBudget{
		Calories: maintenance,
		Protein:  macros.Protein,
		Carbs:    macros.Carbs,
		Fat:      macros.Fat,
		Sugar:    SugarLimitGrams,
		Sodium:   sodium,
	}, nil
}
