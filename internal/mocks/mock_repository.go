package mocks

import (
	"nutricheck/internal/models"
	"time"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Shared MockUserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) Create(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Update(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) DeleteByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserProfileRepository) Patch(userID uint, data map[string]interface{}) error {
	args := m.Called(userID, data)
	return args.Error(0)
}

// Shared MockFoodLogRepository
type MockFoodLogRepository struct {
	mock.Mock
}

func (m *MockFoodLogRepository) Create(entry *models.FoodLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockFoodLogRepository) Update(entry *models.FoodLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockFoodLogRepository) FindByID(id uint) (*models.FoodLog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodLog), args.Error(1)
}

func (m *MockFoodLogRepository) FindByUserIDAndDate(userID uint, date time.Time) ([]models.FoodLog, error) {
	args := m.Called(userID, date)
	return args.Get(0).([]models.FoodLog), args.Error(1)
}

func (m *MockFoodLogRepository) FindByUserIDAndDateRange(userID uint, start, end time.Time) ([]models.FoodLog, error) {
	args := m.Called(userID, start, end)
	return args.Get(0).([]models.FoodLog), args.Error(1)
}

func (m *MockFoodLogRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFoodLogRepository) SumByUserIDAndDate(userID uint, date time.Time) (*models.DailySummary, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailySummary), args.Error(1)
}

// Shared MockIngredientRepository
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Upsert(ingredient *models.CustomIngredient) error {
	args := m.Called(ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) FindAll() ([]models.CustomIngredient, error) {
	args := m.Called()
	return args.Get(0).([]models.CustomIngredient), args.Error(1)
}

// Shared MockEvaluationJobRepository
type MockEvaluationJobRepository struct {
	mock.Mock
}

func (m *MockEvaluationJobRepository) SaveJob(job *models.EvaluationJob) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockEvaluationJobRepository) GetJobByID(id string) (*models.EvaluationJob, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EvaluationJob), args.Error(1)
}

func (m *MockEvaluationJobRepository) UpdateJobStatus(jobID, status string, errorMessage *string) error {
	args := m.Called(jobID, status, errorMessage)
	return args.Error(0)
}

func (m *MockEvaluationJobRepository) CompleteJob(jobID string, decision, reason, limitingFactor string) error {
	args := m.Called(jobID, decision, reason, limitingFactor)
	return args.Error(0)
}

func (m *MockEvaluationJobRepository) GetJobsByUserID(userID uint, limit int) ([]*models.EvaluationJob, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]*models.EvaluationJob), args.Error(1)
}

func (m *MockEvaluationJobRepository) GetActiveJobsCount(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEvaluationJobRepository) CleanupOldJobs(olderThan time.Time) error {
	args := m.Called(olderThan)
	return args.Error(0)
}
