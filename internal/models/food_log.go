package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodLog is one logged food entry. LogDate is truncated to midnight so the
// daily summation can group by an exact value.
type FoodLog struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Name      string         `json:"name" example:"banana"`
	Calories  float64        `json:"calories" example:"89"`
	Protein   float64        `json:"protein" example:"1.1"`
	Carbs     float64        `json:"carbs" example:"22.8"`
	Fat       float64        `json:"fat" example:"0.3"`
	Sugar     float64        `json:"sugar" example:"12.2"`
	Sodium    float64        `json:"sodium" example:"1"`
	Decision  string         `gorm:"type:varchar(10)" json:"decision,omitempty" example:"SAFE"`
	LogDate   time.Time      `gorm:"index" json:"log_date" example:"2023-01-01T00:00:00Z"`
}
