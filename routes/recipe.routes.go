package routes

import (
	"nutricheck/internal/controllers"
	"nutricheck/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecipeRoutes(router *gin.Engine, recipeController *controllers.RecipeController) {
	recipeRoutes := router.Group("/recipes")
	recipeRoutes.Use(middleware.AuthMiddleware())
	{
		recipeRoutes.POST("/calculate", recipeController.CalculateRecipe)
		recipeRoutes.GET("/ingredients", recipeController.ListIngredients)
		recipeRoutes.POST("/ingredients", recipeController.AddCustomIngredient)
	}
}
