package models

import (
	"time"

	"gorm.io/gorm"
)

// CustomIngredient is a user-added reference entry, per 100 g. Rows are loaded
// into the in-memory ingredient catalog on startup and on every insert.
type CustomIngredient struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name" example:"ragi flour"`
	Protein   float64        `json:"protein" example:"7.3"`
	Carbs     float64        `json:"carbs" example:"72"`
	Fat       float64        `json:"fat" example:"1.3"`
	Sugar     float64        `json:"sugar" example:"0.6"`
	Sodium    float64        `json:"sodium" example:"11"`
	Calories  float64        `json:"calories" example:"328"`
}
