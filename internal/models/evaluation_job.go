package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EvaluationJob tracks one asynchronous food evaluation. The worker loads the
// user's profile and today's intake, runs the rule engine and writes the
// outcome back here; the decided result is also published for the narrative
// service.
type EvaluationJob struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	Status         string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Food           datatypes.JSON `gorm:"type:jsonb" json:"food" swaggertype:"object"`
	Decision       string         `gorm:"type:varchar(10)" json:"decision,omitempty"`
	Reason         string         `gorm:"type:text" json:"reason,omitempty"`
	LimitingFactor string         `gorm:"type:varchar(20)" json:"limiting_factor,omitempty"`
	ErrorMessage   *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Job status constants
const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

func (ej *EvaluationJob) TableName() string {
	return "evaluation_jobs"
}

// EvaluationJobRequest is the unit handed to the worker pool.
type EvaluationJobRequest struct {
	JobID  string `json:"job_id"`
	UserID uint   `json:"user_id"`
}
