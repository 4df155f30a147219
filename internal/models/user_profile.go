package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserProfile struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"unique" json:"user_id" example:"1"`
	Age       *int           `json:"age" example:"30"`
	Height    *float64       `json:"height" example:"175"`
	Weight    *float64       `json:"weight" example:"70"`
	Gender    *string        `json:"gender" example:"male"`
	BMI       *float64       `json:"bmi" example:"22.9"`

	// Diseases is a JSON array of canonical condition names,
	// e.g. ["Diabetes","Hypertension"].
	Diseases datatypes.JSON `gorm:"type:jsonb" json:"diseases" swaggertype:"array,string"`

	// CustomLimits is an optional partial NutrientBudget override map,
	// e.g. {"sugar": 25}. Consulted before the computed goals.
	CustomLimits datatypes.JSON `gorm:"type:jsonb" json:"custom_limits,omitempty" swaggertype:"object"`

	// DailyNutritionGoals is recomputed on every profile write that carries
	// complete body metrics.
	DailyNutritionGoals *NutrientBudget `gorm:"embedded;embeddedPrefix:goal_" json:"daily_nutrition_goals,omitempty"`
}
