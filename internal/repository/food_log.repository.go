package repository

import (
	"time"

	"nutricheck/internal/models"

	"gorm.io/gorm"
)

type FoodLogRepository interface {
	Create(entry *models.FoodLog) error
	Update(entry *models.FoodLog) error
	FindByID(id uint) (*models.FoodLog, error)
	FindByUserIDAndDate(userID uint, date time.Time) ([]models.FoodLog, error)
	FindByUserIDAndDateRange(userID uint, start, end time.Time) ([]models.FoodLog, error)
	Delete(id uint) error
	SumByUserIDAndDate(userID uint, date time.Time) (*models.DailySummary, error)
}

type foodLogRepository struct {
	db *gorm.DB
}

func NewFoodLogRepository(db *gorm.DB) FoodLogRepository {
	return &foodLogRepository{db: db}
}

func (r *foodLogRepository) Create(entry *models.FoodLog) error {
	entry.LogDate = truncateToDay(entry.LogDate)
	return r.db.Create(entry).Error
}

func (r *foodLogRepository) Update(entry *models.FoodLog) error {
	entry.LogDate = truncateToDay(entry.LogDate)
	return r.db.Save(entry).Error
}

func (r *foodLogRepository) FindByID(id uint) (*models.FoodLog, error) {
	var entry models.FoodLog
	err := r.db.First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *foodLogRepository) FindByUserIDAndDate(userID uint, date time.Time) ([]models.FoodLog, error) {
	var entries []models.FoodLog
	err := r.db.Where("user_id = ? AND log_date = ?", userID, truncateToDay(date)).
		Order("created_at ASC").Find(&entries).Error
	return entries, err
}

func (r *foodLogRepository) FindByUserIDAndDateRange(userID uint, start, end time.Time) ([]models.FoodLog, error) {
	var entries []models.FoodLog
	err := r.db.Where("user_id = ? AND log_date >= ? AND log_date < ?", userID, start, end).
		Order("log_date ASC, created_at ASC").Find(&entries).Error
	return entries, err
}

func (r *foodLogRepository) Delete(id uint) error {
	return r.db.Delete(&models.FoodLog{}, id).Error
}

// SumByUserIDAndDate aggregates the six channels across one day's entries.
// Days with no entries yield a zero summary, not an error.
func (r *foodLogRepository) SumByUserIDAndDate(userID uint, date time.Time) (*models.DailySummary, error) {
	var summary models.DailySummary
	err := r.db.Model(&models.FoodLog{}).
		Select(
			"COALESCE(SUM(calories), 0) AS total_calories, "+
				"COALESCE(SUM(protein), 0) AS total_protein, "+
				"COALESCE(SUM(carbs), 0) AS total_carbs, "+
				"COALESCE(SUM(fat), 0) AS total_fat, "+
				"COALESCE(SUM(sugar), 0) AS total_sugar, "+
				"COALESCE(SUM(sodium), 0) AS total_sodium").
		Where("user_id = ? AND log_date = ?", userID, truncateToDay(date)).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func truncateToDay(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
