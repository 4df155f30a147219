package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"nutricheck/internal/cache"
	"nutricheck/internal/models"
	"nutricheck/internal/repository"
)

type FoodLogController struct {
	repo        repository.FoodLogRepository
	intakeCache *cache.IntakeCache // optional
}

func NewFoodLogController(repo repository.FoodLogRepository, intakeCache *cache.IntakeCache) *FoodLogController {
	return &FoodLogController{repo: repo, intakeCache: intakeCache}
}

type foodLogRequest struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
	Decision string  `json:"decision"`
}

func (flc *FoodLogController) invalidateIntake(userID uint, date time.Time) {
	if flc.intakeCache == nil {
		return
	}
	if err := flc.intakeCache.Invalidate(userID, date); err != nil {
		log.Printf("Failed to invalidate intake cache for user %d: %v", userID, err)
	}
}

// LogFood godoc
// @Summary Log a food
// @Description Append one entry to today's log; the daily totals accumulate it
// @Tags food-log
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body foodLogRequest true "Food entry"
// @Success 201 {object} map[string]interface{} "Food logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to log food"
// @Router /food-log [post]
func (flc *FoodLogController) LogFood(c *gin.Context) {
	var req foodLogRequest
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

	entry := &models.FoodLog{
		UserID:   userID.(uint),
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Sugar:    req.Sugar,
		Sodium:   req.Sodium,
		Decision: req.Decision,
		LogDate:  time.Now(),
	}

	if err := flc.repo.Create(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log food",
			"error":   err.Error(),
		})
		return
	}

	flc.invalidateIntake(entry.UserID, entry.LogDate)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food logged successfully",
		"data":    entry,
	})
}

// GetFoodLog godoc
// @Summary Get today's food log
// @Description List the authenticated user's entries for today
// @Tags food-log
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Food log retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /food-log [get]
func (flc *FoodLogController) GetFoodLog(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	entries, err := flc.repo.FindByUserIDAndDate(userID.(uint), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve food log",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food log retrieved successfully",
		"data":    entries,
	})
}

// historyDay is one day of accumulated intake in the history listing.
type historyDay struct {
	Date string `json:"date"`
	models.DailySummary
}

// GetFoodLogHistory godoc
// @Summary Get intake history
// @Description Per-day six-channel totals over the last N days, newest first; days without entries are omitted
// @Tags food-log
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param days query int false "Number of days to look back (default 7, max 90)"
// @Success 200 {object} map[string]interface{} "History retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid days parameter"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /food-log/history [get]
func (flc *FoodLogController) GetFoodLogHistory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 90 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid days parameter",
				"error":   "days must be an integer between 1 and 90",
			})
			return
		}
		days = parsed
	}

	now := time.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -days)

	entries, err := flc.repo.FindByUserIDAndDateRange(userID.(uint), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve history",
			"error":   err.Error(),
		})
		return
	}

	// Entries arrive ordered by day, so consecutive runs share a bucket.
	history := make([]historyDay, 0)
	for _, entry := range entries {
		date := entry.LogDate.Format("2006-01-02")
		if len(history) == 0 || history[len(history)-1].Date != date {
			history = append(history, historyDay{Date: date})
		}
		day := &history[len(history)-1]
		day.TotalCalories += entry.Calories
		day.TotalProtein += entry.Protein
		day.TotalCarbs += entry.Carbs
		day.TotalFat += entry.Fat
		day.TotalSugar += entry.Sugar
		day.TotalSodium += entry.Sodium
	}

	// Newest day first.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "History retrieved successfully",
		"data":    history,
	})
}

// UpdateFoodLog godoc
// @Summary Update a food log entry
// @Description Replace an entry's nutrition values, e.g. after a serving-size correction; the daily totals follow
// @Tags food-log
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param entry body foodLogRequest true "Updated food entry"
// @Success 200 {object} map[string]interface{} "Entry updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Entry belongs to another user"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Router /food-log/{id} [put]
func (flc *FoodLogController) UpdateFoodLog(c *gin.Context) {
	var req foodLogRequest
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

	id, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid entry id",
			"error":   err.Error(),
		})
		return
	}

	entry, err := flc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Entry not found",
			"error":   "No food log entry with this id",
		})
		return
	}

	if entry.UserID != userID.(uint) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Forbidden",
			"error":   "Entry belongs to another user",
		})
		return
	}

	entry.Name = req.Name
	entry.Calories = req.Calories
	entry.Protein = req.Protein
	entry.Carbs = req.Carbs
	entry.Fat = req.Fat
	entry.Sugar = req.Sugar
	entry.Sodium = req.Sodium
	entry.Decision = req.Decision

	if err := flc.repo.Update(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update entry",
			"error":   err.Error(),
		})
		return
	}

	flc.invalidateIntake(entry.UserID, entry.LogDate)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Entry updated successfully",
		"data":    entry,
	})
}

// GetDailySummary godoc
// @Summary Get today's totals
// @Description The six-channel running totals already consumed today
// @Tags food-log
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Summary retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /food-log/summary [get]
func (flc *FoodLogController) GetDailySummary(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	summary, err := flc.repo.SumByUserIDAndDate(userID.(uint), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve summary",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary retrieved successfully",
		"data":    summary,
	})
}

// DeleteFoodLog godoc
// @Summary Delete a food log entry
// @Description Remove one entry; the daily totals drop it
// @Tags food-log
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{} "Entry deleted successfully"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Entry belongs to another user"
// @Router /food-log/{id} [delete]
func (flc *FoodLogController) DeleteFoodLog(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid entry id",
			"error":   err.Error(),
		})
		return
	}

	entry, err := flc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Entry not found",
			"error":   "No food log entry with this id",
		})
		return
	}

	if entry.UserID != userID.(uint) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Forbidden",
			"error":   "Entry belongs to another user",
		})
		return
	}

	if err := flc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete entry",
			"error":   err.Error(),
		})
		return
	}

	flc.invalidateIntake(entry.UserID, entry.LogDate)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Entry deleted successfully",
		"data":    nil,
	})
}
