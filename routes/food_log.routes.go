package routes

import (
	"nutricheck/internal/controllers"
	"nutricheck/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFoodLogRoutes(router *gin.Engine, foodLogController *controllers.FoodLogController) {
	foodLogRoutes := router.Group("/food-log")
	foodLogRoutes.Use(middleware.AuthMiddleware())
	{
		foodLogRoutes.POST("/", foodLogController.LogFood)
		foodLogRoutes.GET("/", foodLogController.GetFoodLog)
		foodLogRoutes.GET("/summary", foodLogController.GetDailySummary)
		foodLogRoutes.GET("/history", foodLogController.GetFoodLogHistory)
		foodLogRoutes.PUT("/:id", foodLogController.UpdateFoodLog)
		foodLogRoutes.DELETE("/:id", foodLogController.DeleteFoodLog)
	}
}
