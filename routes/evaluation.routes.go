package routes

import (
	"nutricheck/internal/controllers"
	"nutricheck/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterEvaluationRoutes(router *gin.Engine, evaluationController *controllers.EvaluationController) {
	evaluationRoutes := router.Group("/evaluation")
	evaluationRoutes.Use(middleware.AuthMiddleware())
	{
		evaluationRoutes.POST("/", evaluationController.EvaluateFood)
		evaluationRoutes.POST("/jobs", evaluationController.CreateEvaluationJob)
		evaluationRoutes.GET("/jobs", evaluationController.ListEvaluationJobs)
		evaluationRoutes.GET("/jobs/:id", evaluationController.GetEvaluationJob)
	}
}
