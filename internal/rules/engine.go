package rules

import (
	"fmt"

	"nutricheck/internal/models"
)

// Decision is the outcome of evaluating one food against one user's profile
// and running daily intake.
type Decision string

const (
	DecisionSafe    Decision = "SAFE"
	DecisionWarning Decision = "WARNING"
	DecisionAvoid   Decision = "AVOID"
)

// Disease names are canonical; validate free-form input with ParseDisease at
// the ingestion boundary rather than inside the engine.
type Disease string

const (
	DiseaseDiabetes     Disease = "Diabetes"
	DiseaseHypertension Disease = "Hypertension"
)

// Limiting factors named in results.
const (
	FactorSugar  = "Sugar"
	FactorSodium = "Sodium"
)

// Per-item disease ceilings, independent of remaining budget.
const (
	diabetesSugarCeilingGrams   = 10
	hypertensionSodiumCeilingMg = 400
	budgetWarningShare          = 0.8
)

// FoodNutrient is a candidate food under evaluation. Carbs and protein are
// informational; only sugar and sodium gate the decision today.
type FoodNutrient struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
}

// Profile is the slice of the user profile the engine needs. Every field may
// be absent: a sparse profile means "no restriction", never an error.
type Profile struct {
	Diseases     []Disease              `json:"diseases"`
	CustomLimits map[string]float64     `json:"customLimits,omitempty"`
	Goals        *models.NutrientBudget `json:"dailyNutritionGoals,omitempty"`
}

// DailyIntake is an immutable snapshot of what the user has already consumed
// today. Missing channels are zero.
type DailyIntake struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

type EvaluationResult struct {
	Decision       Decision `json:"decision"`
	Reason         string   `json:"reason"`
	LimitingFactor string   `json:"limitingFactor,omitempty"`
}

// HasDisease reports whether the profile carries the given condition.
func (p Profile) HasDisease(d Disease) bool {
	for _, pd := range p.Diseases {
		if pd == d {
			return true
		}
	}
	return false
}

// IntakeFromSummary maps the daily-summary storage field names onto the
// channel names the engine reads.
func IntakeFromSummary(s models.DailySummary) DailyIntake {
	return DailyIntake{
		Calories: s.TotalCalories,
		Protein:  s.TotalProtein,
		Carbs:    s.TotalCarbs,
		Fat:      s.TotalFat,
		Sugar:    s.TotalSugar,
		Sodium:   s.TotalSodium,
	}
}

// EvaluateFood applies the safety rules in severity order and returns the
// first match. Hard medical contraindications come before budget rules, and
// only the single most severe applicable reason is surfaced.
func EvaluateFood(food FoodNutrient, profile Profile, intake DailyIntake) EvaluationResult {
	// Disease ceilings are absolute per-item checks; remaining budget is
	// irrelevant here.
	if profile.HasDisease(DiseaseDiabetes) && food.Sugar > diabetesSugarCeilingGrams {
		return EvaluationResult{
			Decision:       DecisionAvoid,
			Reason:         fmt.Sprintf("Sugar content (%dg+) is unsafe for Diabetes.", diabetesSugarCeilingGrams),
			LimitingFactor: FactorSugar,
		}
	}

	if profile.HasDisease(DiseaseHypertension) && food.Sodium > hypertensionSodiumCeilingMg {
		return EvaluationResult{
			Decision:       DecisionWarning,
			Reason:         "High sodium content for Hypertension.",
			LimitingFactor: FactorSodium,
		}
	}

	sugarLimit := ResolveSugarLimit(profile)
	sugarLeft := sugarLimit - intake.Sugar

	if food.Sugar > sugarLeft {
		return EvaluationResult{
			Decision:       DecisionAvoid,
			Reason:         fmt.Sprintf("Exceeds your remaining sugar for the day (%.4gg left).", sugarLeft),
			LimitingFactor: FactorSugar,
		}
	}

	if intake.Sugar+food.Sugar > sugarLimit*budgetWarningShare {
		return EvaluationResult{
			Decision:       DecisionWarning,
			Reason:         "This will push you close to your daily sugar limit.",
			LimitingFactor: FactorSugar,
		}
	}

	return EvaluationResult{
		Decision: DecisionSafe,
		Reason:   "Fits within your daily goals.",
	}
}

// ParseDisease validates a free-form condition name against the closed set.
func ParseDisease(s string) (Disease, bool) {
	switch Disease(s) {
	case DiseaseDiabetes:
		return DiseaseDiabetes, true
	case DiseaseHypertension:
		return DiseaseHypertension, true
	}
	return "", false
}
