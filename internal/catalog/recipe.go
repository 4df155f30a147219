package catalog

import (
	"errors"
	"math"
)

// Unit is the declared measurement for an ingredient amount.
type Unit string

const (
	UnitGrams    Unit = "grams"
	UnitQuantity Unit = "quantity"
	UnitLiters   Unit = "liters"
)

// ParseUnit validates a free-form unit string; the zero value defaults to
// grams.
func ParseUnit(s string) (Unit, bool) {
	switch Unit(s) {
	case UnitGrams, "":
		return UnitGrams, true
	case UnitQuantity:
		return UnitQuantity, true
	case UnitLiters:
		return UnitLiters, true
	}
	return "", false
}

// Ingredient is one recipe line as entered by the user.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   Unit    `json:"unit,omitempty"`
}

// IngredientContribution is one resolved breakdown row: the input line plus
// its scaled contribution to each channel.
type IngredientContribution struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     Unit    `json:"unit,omitempty"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
	Calories float64 `json:"calories"`
}

// RecipeResult is the aggregate outcome. Ingredients that fail lookup are
// listed in FailedIngredients and contribute nothing; the rest of the recipe
// still computes.
type RecipeResult struct {
	Total             IngredientNutrition      `json:"total"`
	PerServing        IngredientNutrition      `json:"perServing"`
	Breakdown         []IngredientContribution `json:"breakdown"`
	FailedIngredients []string                 `json:"failedIngredients"`
}

var (
	ErrNoIngredients   = errors.New("ingredients array cannot be empty")
	ErrInvalidServings = errors.New("servings must be greater than 0")
)

// gramsEquivalent normalizes a declared amount to grams, the reference
// table's base. Liters assume water density; a quantity counts each piece as
// one 100 g reference portion.
func gramsEquivalent(amount float64, unit Unit) float64 {
	switch unit {
	case UnitLiters:
		return amount * 1000
	case UnitQuantity:
		return amount * 100
	default:
		return amount
	}
}

// CalculateRecipeNutrition resolves each ingredient against the catalog,
// scales its per-100g values by the gram amount, sums across the recipe and
// divides by servings. Each of the six channels is scaled and summed
// independently.
func (c *IngredientCatalog) CalculateRecipeNutrition(ingredients []Ingredient, servings int) (*RecipeResult, error) {
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}
	if servings <= 0 {
		return nil, ErrInvalidServings
	}

	result := &RecipeResult{
		Breakdown:         make([]IngredientContribution, 0, len(ingredients)),
		FailedIngredients: []string{},
	}

	var total IngredientNutrition
	for _, ing := range ingredients {
		if ing.Name == "" {
			result.FailedIngredients = append(result.FailedIngredients, "Unknown")
			continue
		}

		reference, ok := c.Lookup(ing.Name)
		if !ok {
			result.FailedIngredients = append(result.FailedIngredients, ing.Name)
			continue
		}

		ratio := gramsEquivalent(ing.Amount, ing.Unit) / 100
		contribution := IngredientContribution{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Protein:  reference.Protein * ratio,
			Carbs:    reference.Carbs * ratio,
			Fat:      reference.Fat * ratio,
			Sugar:    reference.Sugar * ratio,
			Sodium:   reference.Sodium * ratio,
			Calories: reference.Calories * ratio,
		}
		result.Breakdown = append(result.Breakdown, contribution)

		total.Protein += contribution.Protein
		total.Carbs += contribution.Carbs
		total.Fat += contribution.Fat
		total.Sugar += contribution.Sugar
		total.Sodium += contribution.Sodium
		total.Calories += contribution.Calories
	}

	s := float64(servings)
	result.PerServing = IngredientNutrition{
		Protein:  round1(total.Protein / s),
		Carbs:    round1(total.Carbs / s),
		Fat:      round1(total.Fat / s),
		Sugar:    round1(total.Sugar / s),
		Sodium:   round1(total.Sodium / s),
		Calories: math.Round(total.Calories / s),
	}
	result.Total = IngredientNutrition{
		Protein:  round1(total.Protein),
		Carbs:    round1(total.Carbs),
		Fat:      round1(total.Fat),
		Sugar:    round1(total.Sugar),
		Sodium:   round1(total.Sodium),
		Calories: math.Round(total.Calories),
	}

	return result, nil
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
