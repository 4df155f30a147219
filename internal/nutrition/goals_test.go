package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		age      int
		gender   Gender
		expected float64
	}{
		{
			name:   "male",
			weight: 70, height: 175, age: 30, gender: GenderMale,
			// 10*70 + 6.25*175 - 5*30 + 5
			expected: 1648.75,
		},
		{
			name:   "female",
			weight: 60, height: 165, age: 25, gender: GenderFemale,
			// 10*60 + 6.25*165 - 5*25 - 161
			expected: 1345.25,
		},
		{
			name:   "unspecified gender uses male constant",
			weight: 70, height: 175, age: 30, gender: GenderUnspecified,
			expected: 1648.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBMR(tt.weight, tt.height, tt.age, tt.gender)
			assert.InDelta(t, tt.expected, got, 0.001)
		})
	}
}

func TestCalculateTDEE(t *testing.T) {
	assert.Equal(t, float64(2143), CalculateTDEE(1648.75, DefaultActivityFactor))
	assert.Equal(t, float64(1649), CalculateTDEE(1648.75, 1.0))
}

func TestCalculateMacroTargets(t *testing.T) {
	macros := CalculateMacroTargets(2000)

	// 30% of 2000 kcal at 4 kcal/g, 45% at 4, 25% at 9
	assert.Equal(t, float64(150), macros.Protein)
	assert.Equal(t, float64(225), macros.Carbs)
	assert.Equal(t, float64(56), macros.Fat)
}

func TestCalculateDailyNutritionGoals(t *testing.T) {
	goals, err := CalculateDailyNutritionGoals(70, 175, 30, GenderMale, false)
	assert.NoError(t, err)

	assert.Equal(t, float64(2143), goals.Calories)
	assert.Equal(t, math.Round(2143*0.30/4), goals.Protein)
	assert.Equal(t, math.Round(2143*0.45/4), goals.Carbs)
	assert.Equal(t, math.Round(2143*0.25/9), goals.Fat)
	assert.Equal(t, float64(SugarLimitGrams), goals.Sugar)
	assert.Equal(t, float64(SodiumLimitMg), goals.Sodium)
}

func TestCalculateDailyNutritionGoalsHypertension(t *testing.T) {
	with, err := CalculateDailyNutritionGoals(70, 175, 30, GenderMale, true)
	assert.NoError(t, err)
	without, err := CalculateDailyNutritionGoals(70, 175, 30, GenderMale, false)
	assert.NoError(t, err)

	// The flag only moves the sodium limit.
	assert.Equal(t, float64(SodiumLimitHypertensionMg), with.Sodium)
	assert.Equal(t, float64(SodiumLimitMg), without.Sodium)

	with.Sodium = 0
	without.Sodium = 0
	assert.Equal(t, without, with)
}

func TestCalculateDailyNutritionGoalsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
		age    int
	}{
		{"zero weight", 0, 175, 30},
		{"negative height", 70, -1, 30},
		{"zero age", 70, 175, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateDailyNutritionGoals(tt.weight, tt.height, tt.age, GenderMale, false)
			assert.ErrorIs(t, err, ErrInvalidBodyMetrics)
		})
	}
}

func TestCaloriesMonotonicInWeightAndHeight(t *testing.T) {
	base, err := CalculateDailyNutritionGoals(60, 160, 40, GenderFemale, false)
	assert.NoError(t, err)

	heavier, err := CalculateDailyNutritionGoals(75, 160, 40, GenderFemale, false)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, heavier.Calories, base.Calories)

	taller, err := CalculateDailyNutritionGoals(60, 180, 40, GenderFemale, false)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, taller.Calories, base.Calories)
}

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		expected float64
	}{
		{"normal range", 70, 175, 22.9},
		{"rounding to one decimal", 70, 170, 24.2},
		{"underweight", 45, 175, 14.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bmi, err := CalculateBMI(tt.weight, tt.height)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, bmi)
		})
	}
}

func TestCalculateBMIInvalidInput(t *testing.T) {
	_, err := CalculateBMI(0, 175)
	assert.Error(t, err)
	_, err = CalculateBMI(70, 0)
	assert.Error(t, err)
}

func TestBMICategoryBoundaries(t *testing.T) {
	tests := []struct {
		bmi      float64
		expected string
	}{
		{18.49, "Underweight"},
		{18.5, "Normal weight"},
		{24.99, "Normal weight"},
		{25, "Overweight"},
		{29.99, "Overweight"},
		{30, "Obese"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BMICategory(tt.bmi), "bmi %.2f", tt.bmi)
	}
}
