package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"nutricheck/internal/models"
	"nutricheck/internal/nutrition"
	"nutricheck/internal/repository"
	"nutricheck/internal/rules"
)

type UserProfileController struct {
	repo repository.UserProfileRepository
}

func NewUserProfileController(repo repository.UserProfileRepository) *UserProfileController {
	return &UserProfileController{repo: repo}
}

type profileRequest struct {
	Age          *int               `json:"age"`
	Height       *float64           `json:"height"`
	Weight       *float64           `json:"weight"`
	Gender       *string            `json:"gender"`
	Diseases     []string           `json:"diseases"`
	CustomLimits map[string]float64 `json:"custom_limits"`
}

// validate checks the closed enum fields at the ingestion boundary so the
// rule engine never sees free-form strings.
func (r *profileRequest) validate() (nutrition.Gender, []string, bool) {
	gender := nutrition.GenderUnspecified
	if r.Gender != nil {
		g, ok := nutrition.ParseGender(*r.Gender)
		if !ok {
			return "", nil, false
		}
		gender = g
	}

	diseases := make([]string, 0, len(r.Diseases))
	for _, name := range r.Diseases {
		d, ok := rules.ParseDisease(name)
		if !ok {
			return "", nil, false
		}
		diseases = append(diseases, string(d))
	}

	return gender, diseases, true
}

// applyDerivedFields recomputes BMI and the daily nutrition goals whenever
// the profile carries complete body metrics. Incomplete metrics clear the
// derived values instead of leaving stale ones.
func applyDerivedFields(profile *models.UserProfile, gender nutrition.Gender, diseases []string) {
	profile.BMI = nil
	profile.DailyNutritionGoals = nil

	if profile.Weight == nil || profile.Height == nil || profile.Age == nil {
		return
	}

	if bmi, err := nutrition.CalculateBMI(*profile.Weight, *profile.Height); err == nil {
		profile.BMI = &bmi
	}

	hasHypertension := false
	for _, d := range diseases {
		if d == string(rules.DiseaseHypertension) {
			hasHypertension = true
		}
	}

	goals, err := nutrition.CalculateDailyNutritionGoals(*profile.Weight, *profile.Height, *profile.Age, gender, hasHypertension)
	if err == nil {
		profile.DailyNutritionGoals = &goals
	}
}

func buildProfile(userID uint, req profileRequest, gender nutrition.Gender, diseases []string) (*models.UserProfile, error) {
	diseasesJSON, err := json.Marshal(diseases)
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		UserID:   userID,
		Age:      req.Age,
		Height:   req.Height,
		Weight:   req.Weight,
		Diseases: datatypes.JSON(diseasesJSON),
	}

	if req.Gender != nil {
		g := string(gender)
		profile.Gender = &g
	}

	if len(req.CustomLimits) > 0 {
		limitsJSON, err := json.Marshal(req.CustomLimits)
		if err != nil {
			return nil, err
		}
		profile.CustomLimits = datatypes.JSON(limitsJSON)
	}

	applyDerivedFields(profile, gender, diseases)
	return profile, nil
}

// GetUserProfile godoc
// @Summary Get user profile
// @Description Retrieve the authenticated user's profile with derived BMI and goals
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /profile [get]
func (pc *UserProfileController) GetUserProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	profile, err := pc.repo.FindByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User profile retrieved successfully",
		"data":    profile,
	})
}

// CreateUserProfile godoc
// @Summary Create user profile
// @Description Create a profile for the authenticated user; BMI and daily nutrition goals are computed from the body metrics
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body profileRequest true "Profile data"
// @Success 201 {object} map[string]interface{} "Profile created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to create profile"
// @Router /profile [post]
func (pc *UserProfileController) CreateUserProfile(c *gin.Context) {
	var req profileRequest
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

	gender, diseases, ok := req.validate()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Unknown gender or disease name",
		})
		return
	}

	profile, err := buildProfile(userID.(uint), req, gender, diseases)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := pc.repo.Create(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Profile created successfully",
		"data":    profile,
	})
}

// UpdateUserProfile godoc
// @Summary Update user profile
// @Description Replace the authenticated user's profile; BMI and daily nutrition goals are recomputed
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body profileRequest true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [put]
func (pc *UserProfileController) UpdateUserProfile(c *gin.Context) {
	var req profileRequest
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

	existing, err := pc.repo.FindByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	gender, diseases, ok := req.validate()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Unknown gender or disease name",
		})
		return
	}

	profile, err := buildProfile(userID.(uint), req, gender, diseases)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt

	if err := pc.repo.Update(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

// PatchUserProfile godoc
// @Summary Patch user profile
// @Description Update specific profile fields; BMI and daily nutrition goals are recomputed from the merged result
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body profileRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Profile patched successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [patch]
func (pc *UserProfileController) PatchUserProfile(c *gin.Context) {
	var req profileRequest
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

	existing, err := pc.repo.FindByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	merged := *existing
	updates := map[string]interface{}{}

	if req.Age != nil {
		merged.Age = req.Age
		updates["age"] = *req.Age
	}
	if req.Height != nil {
		merged.Height = req.Height
		updates["height"] = *req.Height
	}
	if req.Weight != nil {
		merged.Weight = req.Weight
		updates["weight"] = *req.Weight
	}
	if req.Gender != nil {
		g, ok := nutrition.ParseGender(*req.Gender)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "Unknown gender",
			})
			return
		}
		gs := string(g)
		merged.Gender = &gs
		updates["gender"] = gs
	}
	if req.Diseases != nil {
		names := make([]string, 0, len(req.Diseases))
		for _, name := range req.Diseases {
			d, ok := rules.ParseDisease(name)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{
					"status":  "error",
					"message": "Invalid request data",
					"error":   "Unknown disease name",
				})
				return
			}
			names = append(names, string(d))
		}
		diseasesJSON, err := json.Marshal(names)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   err.Error(),
			})
			return
		}
		merged.Diseases = datatypes.JSON(diseasesJSON)
		updates["diseases"] = merged.Diseases
	}
	if req.CustomLimits != nil {
		limitsJSON, err := json.Marshal(req.CustomLimits)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   err.Error(),
			})
			return
		}
		merged.CustomLimits = datatypes.JSON(limitsJSON)
		updates["custom_limits"] = merged.CustomLimits
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "No fields to update",
		})
		return
	}

	// Derived values follow the merged profile, never the raw patch.
	gender, diseases := mergedEnums(&merged)
	applyDerivedFields(&merged, gender, diseases)
	updates["bmi"] = merged.BMI
	if merged.DailyNutritionGoals != nil {
		updates["goal_calories"] = merged.DailyNutritionGoals.Calories
		updates["goal_protein"] = merged.DailyNutritionGoals.Protein
		updates["goal_carbs"] = merged.DailyNutritionGoals.Carbs
		updates["goal_fat"] = merged.DailyNutritionGoals.Fat
		updates["goal_sugar"] = merged.DailyNutritionGoals.Sugar
		updates["goal_sodium"] = merged.DailyNutritionGoals.Sodium
	} else {
		for _, col := range []string{"goal_calories", "goal_protein", "goal_carbs", "goal_fat", "goal_sugar", "goal_sodium"} {
			updates[col] = nil
		}
	}

	if err := pc.repo.Patch(userID.(uint), updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile patched successfully",
		"data":    &merged,
	})
}

// mergedEnums re-reads the closed enum fields from a stored profile. Values
// that fail to parse are dropped, matching the evaluation-side adapter.
func mergedEnums(profile *models.UserProfile) (nutrition.Gender, []string) {
	gender := nutrition.GenderUnspecified
	if profile.Gender != nil {
		if g, ok := nutrition.ParseGender(*profile.Gender); ok {
			gender = g
		}
	}

	var names []string
	if len(profile.Diseases) > 0 {
		var stored []string
		if err := json.Unmarshal(profile.Diseases, &stored); err == nil {
			for _, name := range stored {
				if d, ok := rules.ParseDisease(name); ok {
					names = append(names, string(d))
				}
			}
		}
	}

	return gender, names
}

// DeleteUserProfile godoc
// @Summary Delete user profile
// @Description Remove the authenticated user's profile; evaluations fall back to the default limits afterwards
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile deleted successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to delete profile"
// @Router /profile [delete]
func (pc *UserProfileController) DeleteUserProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	if err := pc.repo.DeleteByUserID(userID.(uint)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile deleted successfully",
		"data":    nil,
	})
}

// GetNutritionGoals godoc
// @Summary Get daily nutrition goals
// @Description Retrieve the stored daily nutrient budget plus the BMI category
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Goals retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile or goals not found"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /profile/goals [get]
func (pc *UserProfileController) GetNutritionGoals(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	profile, err := pc.repo.FindByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	if profile.DailyNutritionGoals == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Goals not computed",
			"error":   "Complete age, height and weight on the profile first",
		})
		return
	}

	data := gin.H{"goals": profile.DailyNutritionGoals}
	if profile.BMI != nil {
		data["bmi"] = *profile.BMI
		data["bmi_category"] = nutrition.BMICategory(*profile.BMI)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goals retrieved successfully",
		"data":    data,
	})
}
