package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"nutricheck/internal/mocks"
	"nutricheck/internal/models"
	"nutricheck/internal/services"
)

func waitForCall(t *testing.T, done chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the worker to finish the job")
	}
}

func TestWorkerCompletesJob(t *testing.T) {
	jobRepo := new(mocks.MockEvaluationJobRepository)
	profileRepo := new(mocks.MockUserProfileRepository)
	foodLogRepo := new(mocks.MockFoodLogRepository)

	job := &models.EvaluationJob{
		ID:     "job-1",
		UserID: 1,
		Status: models.JobStatusProcessing,
		Food:   datatypes.JSON([]byte(`{"name":"Gulab Jamun","sugar":15}`)),
	}

	profile := &models.UserProfile{
		UserID:   1,
		Diseases: datatypes.JSON([]byte(`["Diabetes"]`)),
	}

	done := make(chan struct{})

	jobRepo.On("UpdateJobStatus", "job-1", models.JobStatusProcessing, mock.Anything).Return(nil)
	jobRepo.On("GetJobByID", "job-1").Return(job, nil)
	jobRepo.On("CompleteJob", "job-1", "AVOID", mock.AnythingOfType("string"), "Sugar").Run(func(mock.Arguments) {
		close(done)
	}).Return(nil)
	profileRepo.On("FindByUserID", uint(1)).Return(profile, nil)
	foodLogRepo.On("SumByUserIDAndDate", uint(1), mock.AnythingOfType("time.Time")).Return(&models.DailySummary{}, nil)

	worker := services.NewEvaluationJobWorker(jobRepo, profileRepo, foodLogRepo, nil, nil, 1)
	worker.Start()
	defer worker.Stop()

	err := worker.SubmitJob(models.EvaluationJobRequest{JobID: "job-1", UserID: 1})
	assert.NoError(t, err)

	waitForCall(t, done)
	jobRepo.AssertExpectations(t)
}

func TestWorkerMarksFailedJob(t *testing.T) {
	jobRepo := new(mocks.MockEvaluationJobRepository)
	profileRepo := new(mocks.MockUserProfileRepository)
	foodLogRepo := new(mocks.MockFoodLogRepository)

	done := make(chan struct{})

	jobRepo.On("UpdateJobStatus", "job-2", models.JobStatusProcessing, mock.Anything).Return(nil)
	jobRepo.On("GetJobByID", "job-2").Return(nil, errors.New("connection refused"))
	jobRepo.On("UpdateJobStatus", "job-2", models.JobStatusFailed, mock.AnythingOfType("*string")).Run(func(mock.Arguments) {
		close(done)
	}).Return(nil)

	worker := services.NewEvaluationJobWorker(jobRepo, profileRepo, foodLogRepo, nil, nil, 1)
	worker.Start()
	defer worker.Stop()

	err := worker.SubmitJob(models.EvaluationJobRequest{JobID: "job-2", UserID: 1})
	assert.NoError(t, err)

	waitForCall(t, done)
	jobRepo.AssertExpectations(t)
}

func TestWorkerToleratesMissingProfile(t *testing.T) {
	jobRepo := new(mocks.MockEvaluationJobRepository)
	profileRepo := new(mocks.MockUserProfileRepository)
	foodLogRepo := new(mocks.MockFoodLogRepository)

	job := &models.EvaluationJob{
		ID:     "job-3",
		UserID: 2,
		Status: models.JobStatusProcessing,
		Food:   datatypes.JSON([]byte(`{"name":"Apple","sugar":10}`)),
	}

	done := make(chan struct{})

	jobRepo.On("UpdateJobStatus", "job-3", models.JobStatusProcessing, mock.Anything).Return(nil)
	jobRepo.On("GetJobByID", "job-3").Return(job, nil)
	jobRepo.On("CompleteJob", "job-3", "SAFE", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Run(func(mock.Arguments) {
		close(done)
	}).Return(nil)
	profileRepo.On("FindByUserID", uint(2)).Return(nil, gorm.ErrRecordNotFound)
	foodLogRepo.On("SumByUserIDAndDate", uint(2), mock.AnythingOfType("time.Time")).Return(&models.DailySummary{}, nil)

	worker := services.NewEvaluationJobWorker(jobRepo, profileRepo, foodLogRepo, nil, nil, 1)
	worker.Start()
	defer worker.Stop()

	err := worker.SubmitJob(models.EvaluationJobRequest{JobID: "job-3", UserID: 2})
	assert.NoError(t, err)

	waitForCall(t, done)
	jobRepo.AssertExpectations(t)
}

func TestSubmitJobWhenStopped(t *testing.T) {
	jobRepo := new(mocks.MockEvaluationJobRepository)
	profileRepo := new(mocks.MockUserProfileRepository)
	foodLogRepo := new(mocks.MockFoodLogRepository)

	worker := services.NewEvaluationJobWorker(jobRepo, profileRepo, foodLogRepo, nil, nil, 1)

	err := worker.SubmitJob(models.EvaluationJobRequest{JobID: "job-4", UserID: 1})
	assert.Error(t, err)
}

func TestStartIsIdempotent(t *testing.T) {
	jobRepo := new(mocks.MockEvaluationJobRepository)
	profileRepo := new(mocks.MockUserProfileRepository)
	foodLogRepo := new(mocks.MockFoodLogRepository)

	worker := services.NewEvaluationJobWorker(jobRepo, profileRepo, foodLogRepo, nil, nil, 2)
	worker.Start()
	worker.Start()
	worker.Stop()
	worker.Stop()
}
