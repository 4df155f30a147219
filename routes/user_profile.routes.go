package routes

import (
	"nutricheck/internal/controllers"
	"nutricheck/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserProfileRoutes(router *gin.Engine, profileController *controllers.UserProfileController) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware())
	{
		profileRoutes.GET("/", profileController.GetUserProfile)
		profileRoutes.POST("/", profileController.CreateUserProfile)
		profileRoutes.PUT("/", profileController.UpdateUserProfile)
		profileRoutes.PATCH("/", profileController.PatchUserProfile)
		profileRoutes.DELETE("/", profileController.DeleteUserProfile)
		profileRoutes.GET("/goals", profileController.GetNutritionGoals)
	}
}
