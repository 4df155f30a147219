package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"nutricheck/internal/controllers"
	"nutricheck/internal/mocks"
	"nutricheck/internal/models"
	"nutricheck/internal/services"
)

type evaluationMocks struct {
	profileRepo *mocks.MockUserProfileRepository
	foodLogRepo *mocks.MockFoodLogRepository
	jobRepo     *mocks.MockEvaluationJobRepository
}

func setupEvaluationController(worker *services.EvaluationJobWorker) (*controllers.EvaluationController, *evaluationMocks) {
	m := &evaluationMocks{
		profileRepo: new(mocks.MockUserProfileRepository),
		foodLogRepo: new(mocks.MockFoodLogRepository),
		jobRepo:     new(mocks.MockEvaluationJobRepository),
	}
	controller := controllers.NewEvaluationController(m.profileRepo, m.foodLogRepo, m.jobRepo, worker, nil)
	return controller, m
}

func setupEvaluationTestRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	return router
}

func TestEvaluateFood(t *testing.T) {
	tests := []struct {
		name             string
		body             map[string]interface{}
		setupMock        func(*evaluationMocks)
		expectedDecision string
		expectedFactor   string
	}{
		{
			name: "diabetic user gets avoid on sugary food",
			body: map[string]interface{}{"name": "Gulab Jamun", "sugar": 15, "calories": 300},
			setupMock: func(m *evaluationMocks) {
				profile := &models.UserProfile{
					UserID:   1,
					Diseases: datatypes.JSON([]byte(`["Diabetes"]`)),
				}
				m.profileRepo.On("FindByUserID", uint(1)).Return(profile, nil)
				m.foodLogRepo.On("SumByUserIDAndDate", uint(1), mock.AnythingOfType("time.Time")).Return(&models.DailySummary{}, nil)
			},
			expectedDecision: "AVOID",
			expectedFactor:   "Sugar",
		},
		{
			name: "no profile falls back to default limits",
			body: map[string]interface{}{"name": "Apple", "sugar": 10, "sodium": 1, "calories": 52},
			setupMock: func(m *evaluationMocks) {
				m.profileRepo.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)
				m.foodLogRepo.On("SumByUserIDAndDate", uint(1), mock.AnythingOfType("time.Time")).Return(&models.DailySummary{}, nil)
			},
			expectedDecision: "SAFE",
		},
		{
			name: "accumulated intake exhausts the sugar budget",
			body: map[string]interface{}{"name": "Soda", "sugar": 10},
			setupMock: func(m *evaluationMocks) {
				m.profileRepo.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)
				m.foodLogRepo.On("SumByUserIDAndDate", uint(1), mock.AnythingOfType("time.Time")).Return(&models.DailySummary{TotalSugar: 25}, nil)
			},
			expectedDecision: "AVOID",
			expectedFactor:   "Sugar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupEvaluationController(nil)
			tt.setupMock(m)

			router := setupEvaluationTestRouter(1)
			router.POST("/evaluation", controller.EvaluateFood)

			payload, _ := json.Marshal(tt.body)
			req := httptest.NewRequest("POST", "/evaluation", bytes.NewBuffer(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			data := response["data"].(map[string]interface{})
			assert.Equal(t, tt.expectedDecision, data["decision"])
			if tt.expectedFactor != "" {
				assert.Equal(t, tt.expectedFactor, data["limitingFactor"])
			}

			m.profileRepo.AssertExpectations(t)
			m.foodLogRepo.AssertExpectations(t)
		})
	}
}

func TestCreateEvaluationJobQueues(t *testing.T) {
	jobRepo := new(mocks.MockEvaluationJobRepository)
	profileRepo := new(mocks.MockUserProfileRepository)
	foodLogRepo := new(mocks.MockFoodLogRepository)

	// The worker processes jobs asynchronously, so every call it can make
	// gets a stubbed answer.
	var savedJob *models.EvaluationJob
	jobRepo.On("GetActiveJobsCount", uint(1)).Return(int64(0), nil)
	jobRepo.On("SaveJob", mock.AnythingOfType("*models.EvaluationJob")).Run(func(args mock.Arguments) {
		savedJob = args.Get(0).(*models.EvaluationJob)
	}).Return(nil)
	jobRepo.On("UpdateJobStatus", mock.AnythingOfType("string"), models.JobStatusProcessing, mock.Anything).Return(nil)
	jobRepo.On("GetJobByID", mock.AnythingOfType("string")).Return(&models.EvaluationJob{
		UserID: 1,
		Status: models.JobStatusProcessing,
		Food:   datatypes.JSON([]byte(`{"name":"Apple","sugar":10}`)),
	}, nil)
	jobRepo.On("CompleteJob", mock.AnythingOfType("string"), "SAFE", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)
	profileRepo.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)
	foodLogRepo.On("SumByUserIDAndDate", uint(1), mock.AnythingOfType("time.Time")).Return(&models.DailySummary{}, nil)

	worker := services.NewEvaluationJobWorker(jobRepo, profileRepo, foodLogRepo, nil, nil, 1)
	worker.Start()
	defer worker.Stop()

	controller := controllers.NewEvaluationController(profileRepo, foodLogRepo, jobRepo, worker, nil)

	router := setupEvaluationTestRouter(1)
	router.POST("/evaluation/jobs", controller.CreateEvaluationJob)

	payload, _ := json.Marshal(map[string]interface{}{"name": "Apple", "sugar": 10})
	req := httptest.NewRequest("POST", "/evaluation/jobs", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["job_id"])
	assert.Equal(t, models.JobStatusPending, data["job_status"])

	if assert.NotNil(t, savedJob) {
		assert.Equal(t, uint(1), savedJob.UserID)
		assert.Equal(t, models.JobStatusPending, savedJob.Status)
	}
}

func TestCreateEvaluationJobWorkerStopped(t *testing.T) {
	jobRepo := new(mocks.MockEvaluationJobRepository)
	profileRepo := new(mocks.MockUserProfileRepository)
	foodLogRepo := new(mocks.MockFoodLogRepository)

	jobRepo.On("GetActiveJobsCount", uint(1)).Return(int64(0), nil)
	jobRepo.On("SaveJob", mock.AnythingOfType("*models.EvaluationJob")).Return(nil)

	worker := services.NewEvaluationJobWorker(jobRepo, profileRepo, foodLogRepo, nil, nil, 1)
	controller := controllers.NewEvaluationController(profileRepo, foodLogRepo, jobRepo, worker, nil)

	router := setupEvaluationTestRouter(1)
	router.POST("/evaluation/jobs", controller.CreateEvaluationJob)

	payload, _ := json.Marshal(map[string]interface{}{"name": "Apple"})
	req := httptest.NewRequest("POST", "/evaluation/jobs", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCreateEvaluationJobCapReached(t *testing.T) {
	jobRepo := new(mocks.MockEvaluationJobRepository)
	profileRepo := new(mocks.MockUserProfileRepository)
	foodLogRepo := new(mocks.MockFoodLogRepository)

	jobRepo.On("GetActiveJobsCount", uint(1)).Return(int64(5), nil)

	worker := services.NewEvaluationJobWorker(jobRepo, profileRepo, foodLogRepo, nil, nil, 1)
	worker.Start()
	defer worker.Stop()

	controller := controllers.NewEvaluationController(profileRepo, foodLogRepo, jobRepo, worker, nil)

	router := setupEvaluationTestRouter(1)
	router.POST("/evaluation/jobs", controller.CreateEvaluationJob)

	payload, _ := json.Marshal(map[string]interface{}{"name": "Apple"})
	req := httptest.NewRequest("POST", "/evaluation/jobs", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Too many active evaluation jobs", response["message"])

	jobRepo.AssertNotCalled(t, "SaveJob", mock.Anything)
}

func TestListEvaluationJobs(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockEvaluationJobRepository)
		expectedStatus int
		expectedCount  int
	}{
		{
			name:  "default limit returns recent jobs",
			query: "",
			setupMock: func(m *mocks.MockEvaluationJobRepository) {
				jobs := []*models.EvaluationJob{
					{ID: "job-2", UserID: 1, Status: models.JobStatusCompleted, Decision: "SAFE"},
					{ID: "job-1", UserID: 1, Status: models.JobStatusPending},
				}
				m.On("GetJobsByUserID", uint(1), 10).Return(jobs, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:  "explicit limit is passed through",
			query: "?limit=3",
			setupMock: func(m *mocks.MockEvaluationJobRepository) {
				m.On("GetJobsByUserID", uint(1), 3).Return([]*models.EvaluationJob{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "invalid limit is rejected",
			query:          "?limit=abc",
			setupMock:      func(m *mocks.MockEvaluationJobRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupEvaluationController(nil)
			tt.setupMock(m.jobRepo)

			router := setupEvaluationTestRouter(1)
			router.GET("/evaluation/jobs", controller.ListEvaluationJobs)

			req := httptest.NewRequest("GET", "/evaluation/jobs"+tt.query, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				data := response["data"].([]interface{})
				assert.Len(t, data, tt.expectedCount)
			}

			m.jobRepo.AssertExpectations(t)
		})
	}
}

func TestGetEvaluationJob(t *testing.T) {
	tests := []struct {
		name           string
		jobID          string
		setupMock      func(*mocks.MockEvaluationJobRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:  "successful retrieval",
			jobID: "job-1",
			setupMock: func(m *mocks.MockEvaluationJobRepository) {
				job := &models.EvaluationJob{
					ID:       "job-1",
					UserID:   1,
					Status:   models.JobStatusCompleted,
					Decision: "SAFE",
				}
				m.On("GetJobByID", "job-1").Return(job, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Job retrieved successfully",
		},
		{
			name:  "job not found",
			jobID: "missing",
			setupMock: func(m *mocks.MockEvaluationJobRepository) {
				m.On("GetJobByID", "missing").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Job not found",
		},
		{
			name:  "job belongs to another user",
			jobID: "job-2",
			setupMock: func(m *mocks.MockEvaluationJobRepository) {
				job := &models.EvaluationJob{ID: "job-2", UserID: 99}
				m.On("GetJobByID", "job-2").Return(job, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupEvaluationController(nil)
			tt.setupMock(m.jobRepo)

			router := setupEvaluationTestRouter(1)
			router.GET("/evaluation/jobs/:id", controller.GetEvaluationJob)

			req := httptest.NewRequest("GET", "/evaluation/jobs/"+tt.jobID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response["message"])

			m.jobRepo.AssertExpectations(t)
		})
	}
}
