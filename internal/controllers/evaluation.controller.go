package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"nutricheck/internal/cache"
	"nutricheck/internal/models"
	"nutricheck/internal/repository"
	"nutricheck/internal/rules"
	"nutricheck/internal/services"
)

// maxActiveJobsPerUser bounds how many pending or processing evaluations one
// user may hold at a time.
const maxActiveJobsPerUser = 5

type EvaluationController struct {
	profileRepo repository.UserProfileRepository
	foodLogRepo repository.FoodLogRepository
	jobRepo     repository.EvaluationJobRepository
	jobWorker   *services.EvaluationJobWorker
	intakeCache *cache.IntakeCache // optional
}

func NewEvaluationController(
	profileRepo repository.UserProfileRepository,
	foodLogRepo repository.FoodLogRepository,
	jobRepo repository.EvaluationJobRepository,
	jobWorker *services.EvaluationJobWorker,
	intakeCache *cache.IntakeCache,
) *EvaluationController {
	return &EvaluationController{
		profileRepo: profileRepo,
		foodLogRepo: foodLogRepo,
		jobRepo:     jobRepo,
		jobWorker:   jobWorker,
		intakeCache: intakeCache,
	}
}

type foodRequest struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
}

func (r foodRequest) toFood() rules.FoodNutrient {
	return rules.FoodNutrient{
		Name:     r.Name,
		Calories: r.Calories,
		Sugar:    r.Sugar,
		Sodium:   r.Sodium,
		Fat:      r.Fat,
		Carbs:    r.Carbs,
		Protein:  r.Protein,
	}
}

// loadProfile tolerates a missing profile row: evaluation falls back to the
// default limits.
func (ec *EvaluationController) loadProfile(userID uint) (rules.Profile, error) {
	stored, err := ec.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rules.Profile{}, nil
		}
		return rules.Profile{}, err
	}
	return rules.ProfileFromModel(stored), nil
}

func (ec *EvaluationController) loadIntake(userID uint) (rules.DailyIntake, error) {
	today := time.Now()

	if ec.intakeCache != nil {
		if summary, found, err := ec.intakeCache.GetSummary(userID, today); err == nil && found {
			return rules.IntakeFromSummary(*summary), nil
		}
	}

	summary, err := ec.foodLogRepo.SumByUserIDAndDate(userID, today)
	if err != nil {
		return rules.DailyIntake{}, err
	}

	if ec.intakeCache != nil {
		if err := ec.intakeCache.StoreSummary(userID, today, summary); err != nil {
			log.Printf("Failed to cache intake for user %d: %v", userID, err)
		}
	}

	return rules.IntakeFromSummary(*summary), nil
}

// EvaluateFood godoc
// @Summary Evaluate a food
// @Description Run the safety rules for a food against the user's profile and today's intake
// @Tags evaluation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param food body foodRequest true "Food nutrition facts"
// @Success 200 {object} map[string]interface{} "Food evaluated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to evaluate food"
// @Router /evaluation [post]
func (ec *EvaluationController) EvaluateFood(c *gin.Context) {
	var req foodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	profile, err := ec.loadProfile(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load profile",
			"error":   err.Error(),
		})
		return
	}

	intake, err := ec.loadIntake(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load daily intake",
			"error":   err.Error(),
		})
		return
	}

	result := rules.EvaluateFood(req.toFood(), profile, intake)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food evaluated successfully",
		"data":    result,
	})
}

// CreateEvaluationJob godoc
// @Summary Submit an async evaluation
// @Description Queue a food evaluation; the decided result is stored on the job and published for narrative generation
// @Tags evaluation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param food body foodRequest true "Food nutrition facts"
// @Success 202 {object} map[string]interface{} "Evaluation job queued"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 503 {object} map[string]interface{} "Worker unavailable"
// @Router /evaluation/jobs [post]
func (ec *EvaluationController) CreateEvaluationJob(c *gin.Context) {
	var req foodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	activeJobs, err := ec.jobRepo.GetActiveJobsCount(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to check active jobs",
			"error":   err.Error(),
		})
		return
	}
	if activeJobs >= maxActiveJobsPerUser {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"status":  "error",
			"message": "Too many active evaluation jobs",
			"error":   "Wait for queued evaluations to finish before submitting more",
		})
		return
	}

	foodJSON, err := json.Marshal(req.toFood())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	job := &models.EvaluationJob{
		ID:     uuid.New().String(),
		UserID: userID.(uint),
		Status: models.JobStatusPending,
		Food:   datatypes.JSON(foodJSON),
	}

	if err := ec.jobRepo.SaveJob(job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create evaluation job",
			"error":   err.Error(),
		})
		return
	}

	if err := ec.jobWorker.SubmitJob(models.EvaluationJobRequest{JobID: job.ID, UserID: job.UserID}); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Evaluation worker unavailable",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "success",
		"message": "Evaluation job queued",
		"data":    gin.H{"job_id": job.ID, "job_status": job.Status},
	})
}

// ListEvaluationJobs godoc
// @Summary List recent evaluation jobs
// @Description The authenticated user's evaluations, newest first
// @Tags evaluation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of jobs (default 10, max 50)"
// @Success 200 {object} map[string]interface{} "Jobs retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid limit parameter"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /evaluation/jobs [get]
func (ec *EvaluationController) ListEvaluationJobs(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 50 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit parameter",
				"error":   "limit must be an integer between 1 and 50",
			})
			return
		}
		limit = parsed
	}

	jobs, err := ec.jobRepo.GetJobsByUserID(userID.(uint), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve jobs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Jobs retrieved successfully",
		"data":    jobs,
	})
}

// GetEvaluationJob godoc
// @Summary Get an evaluation job
// @Description Poll an async evaluation by job id
// @Tags evaluation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Job retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Job belongs to another user"
// @Router /evaluation/jobs/{id} [get]
func (ec *EvaluationController) GetEvaluationJob(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	job, err := ec.jobRepo.GetJobByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Job not found",
			"error":   "No evaluation job with this id",
		})
		return
	}

	if job.UserID != userID.(uint) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Forbidden",
			"error":   "Job belongs to another user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Job retrieved successfully",
		"data":    job,
	})
}
