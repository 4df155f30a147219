package rules

import (
	"encoding/json"

	"nutricheck/internal/models"
)

// ProfileFromModel projects a stored profile row onto the slice the engine
// reads. Unknown disease names and malformed JSON are dropped rather than
// propagated: a sparse or partially valid profile must still evaluate.
func ProfileFromModel(p *models.UserProfile) Profile {
	if p == nil {
		return Profile{}
	}

	profile := Profile{Goals: p.DailyNutritionGoals}

	if len(p.Diseases) > 0 {
		var names []string
		if err := json.Unmarshal(p.Diseases, &names); err == nil {
			for _, name := range names {
				if d, ok := ParseDisease(name); ok {
					profile.Diseases = append(profile.Diseases, d)
				}
			}
		}
	}

	if len(p.CustomLimits) > 0 {
		var limits map[string]float64
		if err := json.Unmarshal(p.CustomLimits, &limits); err == nil {
			profile.CustomLimits = limits
		}
	}

	return profile
}
