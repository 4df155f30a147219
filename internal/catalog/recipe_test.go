package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateRecipeNutritionPreconditions(t *testing.T) {
	c := NewIngredientCatalog()

	_, err := c.CalculateRecipeNutrition(nil, 2)
	assert.ErrorIs(t, err, ErrNoIngredients)

	_, err = c.CalculateRecipeNutrition([]Ingredient{{Name: "rice", Amount: 100}}, 0)
	assert.ErrorIs(t, err, ErrInvalidServings)

	_, err = c.CalculateRecipeNutrition([]Ingredient{{Name: "rice", Amount: 100}}, -1)
	assert.ErrorIs(t, err, ErrInvalidServings)
}

func TestCalculateRecipeNutritionScalingAndServings(t *testing.T) {
	c := NewIngredientCatalog()

	result, err := c.CalculateRecipeNutrition([]Ingredient{
		{Name: "rice", Amount: 200},
		{Name: "chicken breast", Amount: 150},
	}, 2)
	assert.NoError(t, err)

	// rice at 2x per-100g plus chicken breast at 1.5x
	assert.Equal(t, float64(59.7), result.Total.Protein)
	assert.Equal(t, float64(156), result.Total.Carbs)
	assert.Equal(t, float64(6), result.Total.Fat)
	assert.Equal(t, float64(0.2), result.Total.Sugar)
	assert.Equal(t, float64(132.5), result.Total.Sodium)
	assert.Equal(t, float64(938), result.Total.Calories)

	assert.Equal(t, float64(29.9), result.PerServing.Protein)
	assert.Equal(t, float64(78), result.PerServing.Carbs)
	assert.Equal(t, float64(469), result.PerServing.Calories)

	assert.Len(t, result.Breakdown, 2)
	assert.Equal(t, "rice", result.Breakdown[0].Name)
	assert.Equal(t, "chicken breast", result.Breakdown[1].Name)
	assert.Empty(t, result.FailedIngredients)
}

func TestCalculateRecipeNutritionFailedIngredients(t *testing.T) {
	c := NewIngredientCatalog()

	withUnknown, err := c.CalculateRecipeNutrition([]Ingredient{
		{Name: "dragonfruit", Amount: 500},
		{Name: "rice", Amount: 100},
	}, 1)
	assert.NoError(t, err)

	onlyRice, err := c.CalculateRecipeNutrition([]Ingredient{
		{Name: "rice", Amount: 100},
	}, 1)
	assert.NoError(t, err)

	// The unknown ingredient is reported and contributes exactly zero,
	// wherever it sits in the list.
	assert.Equal(t, []string{"dragonfruit"}, withUnknown.FailedIngredients)
	assert.Equal(t, onlyRice.Total, withUnknown.Total)
	assert.Len(t, withUnknown.Breakdown, 1)

	atEnd, err := c.CalculateRecipeNutrition([]Ingredient{
		{Name: "rice", Amount: 100},
		{Name: "dragonfruit", Amount: 500},
	}, 1)
	assert.NoError(t, err)
	assert.Equal(t, withUnknown.Total, atEnd.Total)
}

func TestCalculateRecipeNutritionAllUnknownStillReturns(t *testing.T) {
	c := NewIngredientCatalog()

	result, err := c.CalculateRecipeNutrition([]Ingredient{
		{Name: "dragonfruit", Amount: 100},
		{Name: "", Amount: 50},
	}, 1)
	assert.NoError(t, err)

	assert.Equal(t, []string{"dragonfruit", "Unknown"}, result.FailedIngredients)
	assert.Equal(t, IngredientNutrition{}, result.Total)
	assert.Empty(t, result.Breakdown)
}

func TestCalculateRecipeNutritionOrderIndependence(t *testing.T) {
	c := NewIngredientCatalog()
	ingredients := []Ingredient{
		{Name: "oats", Amount: 80},
		{Name: "milk", Amount: 250},
		{Name: "butter", Amount: 10},
	}
	reversed := []Ingredient{ingredients[2], ingredients[1], ingredients[0]}

	a, err := c.CalculateRecipeNutrition(ingredients, 3)
	assert.NoError(t, err)
	b, err := c.CalculateRecipeNutrition(reversed, 3)
	assert.NoError(t, err)

	assert.Equal(t, a.Total, b.Total)
	assert.Equal(t, a.PerServing, b.PerServing)
}

func TestCalculateRecipeNutritionUnitNormalization(t *testing.T) {
	c := NewIngredientCatalog()

	// 0.5 L of milk behaves like 500 g.
	byLiters, err := c.CalculateRecipeNutrition([]Ingredient{
		{Name: "milk", Amount: 0.5, Unit: UnitLiters},
	}, 1)
	assert.NoError(t, err)

	byGrams, err := c.CalculateRecipeNutrition([]Ingredient{
		{Name: "milk", Amount: 500, Unit: UnitGrams},
	}, 1)
	assert.NoError(t, err)
	assert.Equal(t, byGrams.Total, byLiters.Total)

	// 2 pieces count as two 100 g reference portions.
	byQuantity, err := c.CalculateRecipeNutrition([]Ingredient{
		{Name: "eggs", Amount: 2, Unit: UnitQuantity},
	}, 1)
	assert.NoError(t, err)
	assert.Equal(t, float64(26), byQuantity.Total.Protein)
	assert.Equal(t, float64(310), byQuantity.Total.Calories)
}

func TestCalculateRecipeNutritionUsesCustomEntries(t *testing.T) {
	c := NewIngredientCatalog()
	c.Add("protein powder", IngredientNutrition{Protein: 80, Carbs: 8, Fat: 5, Sugar: 4, Sodium: 150, Calories: 400})

	result, err := c.CalculateRecipeNutrition([]Ingredient{
		{Name: "protein powder", Amount: 30},
	}, 1)
	assert.NoError(t, err)
	assert.Equal(t, float64(24), result.Total.Protein)
	assert.Equal(t, float64(120), result.Total.Calories)
}
