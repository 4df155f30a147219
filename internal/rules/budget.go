package rules

import (
	"nutricheck/internal/models"
	"nutricheck/internal/nutrition"
)

// Budget resolution order: explicit custom limit, then the computed daily
// goals, then the hardcoded fallback. Kept as standalone functions so the
// chain is testable without the engine.

// ResolveSugarLimit returns the user's effective daily sugar limit in grams.
func ResolveSugarLimit(profile Profile) float64 {
	if v, ok := profile.CustomLimits["sugar"]; ok && v > 0 {
		return v
	}
	if profile.Goals != nil && profile.Goals.Sugar > 0 {
		return profile.Goals.Sugar
	}
	return nutrition.SugarLimitGrams
}

// ResolveSodiumLimit returns the effective daily sodium limit in mg. The
// hypertension-adjusted value normally arrives via the computed goals; the
// fallback assumes no condition.
func ResolveSodiumLimit(profile Profile) float64 {
	if v, ok := profile.CustomLimits["sodium"]; ok && v > 0 {
		return v
	}
	if profile.Goals != nil && profile.Goals.Sodium > 0 {
		return profile.Goals.Sodium
	}
	if profile.HasDisease(DiseaseHypertension) {
		return nutrition.SodiumLimitHypertensionMg
	}
	return nutrition.SodiumLimitMg
}

// ResolveBudget materializes the full effective budget after applying custom
// overrides on top of the computed goals.
func ResolveBudget(profile Profile) models.NutrientBudget {
	b := models.NutrientBudget{
		Sugar:  ResolveSugarLimit(profile),
		Sodium: ResolveSodiumLimit(profile),
	}
	if profile.Goals != nil {
		b.Calories = profile.Goals.Calories
		b.Protein = profile.Goals.Protein
		b.Carbs = profile.Goals.Carbs
		b.Fat = profile.Goals.Fat
	}
	for field, v := range profile.CustomLimits {
		switch field {
		case "calories":
			b.Calories = v
		case "protein":
			b.Protein = v
		case "carbs":
			b.Carbs = v
		case "fat":
			b.Fat = v
		}
	}
	return b
}
