package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nutricheck/internal/catalog"
	"nutricheck/internal/models"
	"nutricheck/internal/repository"
)

type RecipeController struct {
	catalog        *catalog.IngredientCatalog
	ingredientRepo repository.IngredientRepository
}

func NewRecipeController(cat *catalog.IngredientCatalog, ingredientRepo repository.IngredientRepository) *RecipeController {
	return &RecipeController{catalog: cat, ingredientRepo: ingredientRepo}
}

type recipeIngredientRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type recipeRequest struct {
	Ingredients []recipeIngredientRequest `json:"ingredients"`
	Servings    int                       `json:"servings"`
}

type customIngredientRequest struct {
	Name     string  `json:"name" binding:"required"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
	Calories float64 `json:"calories"`
}

// CalculateRecipe godoc
// @Summary Calculate recipe nutrition
// @Description Sum per-100g reference nutrition across ingredients, scaled by amount, divided by servings
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipe body recipeRequest true "Ingredients and serving count"
// @Success 200 {object} map[string]interface{} "Recipe calculated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /recipes/calculate [post]
func (rc *RecipeController) CalculateRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	ingredients := make([]catalog.Ingredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		unit, ok := catalog.ParseUnit(ing.Unit)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "Unknown unit: " + ing.Unit,
			})
			return
		}
		ingredients = append(ingredients, catalog.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   unit,
		})
	}

	result, err := rc.catalog.CalculateRecipeNutrition(ingredients, req.Servings)
	if err != nil {
		if errors.Is(err, catalog.ErrNoIngredients) || errors.Is(err, catalog.ErrInvalidServings) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to calculate recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe calculated successfully",
		"data":    result,
	})
}

// ListIngredients godoc
// @Summary List known ingredients
// @Description Names available for autocomplete, built-in and custom
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Ingredients retrieved successfully"
// @Router /recipes/ingredients [get]
func (rc *RecipeController) ListIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredients retrieved successfully",
		"data":    rc.catalog.Names(),
	})
}

// AddCustomIngredient godoc
// @Summary Add a custom ingredient
// @Description Persist a per-100g reference entry and make it visible to all subsequent lookups
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ingredient body customIngredientRequest true "Per-100g nutrition"
// @Success 201 {object} map[string]interface{} "Ingredient added successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to store ingredient"
// @Router /recipes/ingredients [post]
func (rc *RecipeController) AddCustomIngredient(c *gin.Context) {
	var req customIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	row := &models.CustomIngredient{
		Name:     req.Name,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Sugar:    req.Sugar,
		Sodium:   req.Sodium,
		Calories: req.Calories,
	}

	if err := rc.ingredientRepo.Upsert(row); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store ingredient",
			"error":   err.Error(),
		})
		return
	}

	rc.catalog.Add(req.Name, catalog.IngredientNutrition{
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Sugar:    req.Sugar,
		Sodium:   req.Sodium,
		Calories: req.Calories,
	})

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Ingredient added successfully",
		"data":    row,
	})
}
