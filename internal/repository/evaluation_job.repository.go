package repository

import (
	"time"

	"nutricheck/internal/models"

	"gorm.io/gorm"
)

type EvaluationJobRepository interface {
	SaveJob(job *models.EvaluationJob) error
	GetJobByID(id string) (*models.EvaluationJob, error)
	UpdateJobStatus(jobID, status string, errorMessage *string) error
	CompleteJob(jobID string, decision, reason, limitingFactor string) error
	GetJobsByUserID(userID uint, limit int) ([]*models.EvaluationJob, error)
	GetActiveJobsCount(userID uint) (int64, error)
	CleanupOldJobs(olderThan time.Time) error
}

type evaluationJobRepository struct {
	db *gorm.DB
}

func NewEvaluationJobRepository(db *gorm.DB) EvaluationJobRepository {
	return &evaluationJobRepository{db: db}
}

func (r *evaluationJobRepository) SaveJob(job *models.EvaluationJob) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	job.UpdatedAt = time.Now()
	return r.db.Create(job).Error
}

func (r *evaluationJobRepository) GetJobByID(id string) (*models.EvaluationJob, error) {
	var job models.EvaluationJob
	err := r.db.Where("id = ?", id).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *evaluationJobRepository) UpdateJobStatus(jobID, status string, errorMessage *string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if errorMessage != nil {
		updates["error_message"] = *errorMessage
	}
	if status == models.JobStatusCompleted || status == models.JobStatusFailed {
		updates["completed_at"] = time.Now()
	}
	return r.db.Model(&models.EvaluationJob{}).Where("id = ?", jobID).Updates(updates).Error
}

func (r *evaluationJobRepository) CompleteJob(jobID string, decision, reason, limitingFactor string) error {
	now := time.Now()
	return r.db.Model(&models.EvaluationJob{}).Where("id = ?", jobID).Updates(map[string]interface{}{
		"status":          models.JobStatusCompleted,
		"decision":        decision,
		"reason":          reason,
		"limiting_factor": limitingFactor,
		"updated_at":      now,
		"completed_at":    now,
	}).Error
}

func (r *evaluationJobRepository) GetJobsByUserID(userID uint, limit int) ([]*models.EvaluationJob, error) {
	var jobs []*models.EvaluationJob
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&jobs).Error
	return jobs, err
}

func (r *evaluationJobRepository) GetActiveJobsCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.EvaluationJob{}).
		Where("user_id = ? AND status IN ?", userID, []string{models.JobStatusPending, models.JobStatusProcessing}).
		Count(&count).Error
	return count, err
}

func (r *evaluationJobRepository) CleanupOldJobs(olderThan time.Time) error {
	return r.db.Where("created_at < ? AND status IN ?", olderThan,
		[]string{models.JobStatusCompleted, models.JobStatusFailed}).
		Delete(&models.EvaluationJob{}).Error
}
