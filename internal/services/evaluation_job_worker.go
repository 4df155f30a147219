package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"nutricheck/internal/cache"
	"nutricheck/internal/models"
	"nutricheck/internal/repository"
	"nutricheck/internal/rules"
)

// EvaluationJobWorker runs queued food evaluations on a worker pool. Each job
// loads the user's profile and today's intake, runs the rule engine, stores
// the outcome and hands the decided result to the publisher for the
// narrative service.
type EvaluationJobWorker struct {
	jobRepo     repository.EvaluationJobRepository
	profileRepo repository.UserProfileRepository
	foodLogRepo repository.FoodLogRepository

	intakeCache *cache.IntakeCache // optional
	publisher   *DecisionPublisher // optional

	jobQueue    chan models.EvaluationJobRequest
	workerCount int
	stopChan    chan struct{}
	wg          sync.WaitGroup
	running     bool
	mu          sync.RWMutex

	cleanupInterval time.Duration
	jobRetention    time.Duration
}

func NewEvaluationJobWorker(
	jobRepo repository.EvaluationJobRepository,
	profileRepo repository.UserProfileRepository,
	foodLogRepo repository.FoodLogRepository,
	intakeCache *cache.IntakeCache,
	publisher *DecisionPublisher,
	workerCount int,
) *EvaluationJobWorker {
	if workerCount <= 0 {
		workerCount = 3
	}

	return &EvaluationJobWorker{
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		foodLogRepo:     foodLogRepo,
		intakeCache:     intakeCache,
		publisher:       publisher,
		jobQueue:        make(chan models.EvaluationJobRequest, 100),
		workerCount:     workerCount,
		stopChan:        make(chan struct{}),
		cleanupInterval: 30 * time.Minute,
		jobRetention:    7 * 24 * time.Hour,
	}
}

func (w *EvaluationJobWorker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	for i := 0; i < w.workerCount; i++ {
		w.wg.Add(1)
		go w.worker(i)
	}

	w.wg.Add(1)
	go w.cleanupRoutine()
}

func (w *EvaluationJobWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopChan)
	w.wg.Wait()
}

// SubmitJob queues one evaluation. Fails when the worker is stopped or the
// queue is full; the job row stays pending in either case.
func (w *EvaluationJobWorker) SubmitJob(req models.EvaluationJobRequest) error {
	w.mu.RLock()
	running := w.running
	w.mu.RUnlock()
	if !running {
		return errors.New("evaluation worker is not running")
	}

	select {
	case w.jobQueue <- req:
		return nil
	default:
		return errors.New("evaluation queue is full")
	}
}

func (w *EvaluationJobWorker) worker(id int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case req := <-w.jobQueue:
			if err := w.processJob(req); err != nil {
				log.Printf("Worker %d: job %s failed: %v", id, req.JobID, err)
				msg := err.Error()
				if updateErr := w.jobRepo.UpdateJobStatus(req.JobID, models.JobStatusFailed, &msg); updateErr != nil {
					log.Printf("Worker %d: failed to mark job %s failed: %v", id, req.JobID, updateErr)
				}
			}
		}
	}
}

func (w *EvaluationJobWorker) processJob(req models.EvaluationJobRequest) error {
	if err := w.jobRepo.UpdateJobStatus(req.JobID, models.JobStatusProcessing, nil); err != nil {
		return fmt.Errorf("failed to mark job processing: %w", err)
	}

	job, err := w.jobRepo.GetJobByID(req.JobID)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}

	var food rules.FoodNutrient
	if err := json.Unmarshal(job.Food, &food); err != nil {
		return fmt.Errorf("invalid food payload: %w", err)
	}

	// A user without a profile still gets a decision against the fallback
	// limits.
	var profile rules.Profile
	stored, err := w.profileRepo.FindByUserID(req.UserID)
	if err == nil {
		profile = rules.ProfileFromModel(stored)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	intake, err := w.loadIntake(req.UserID)
	if err != nil {
		return fmt.Errorf("failed to load daily intake: %w", err)
	}

	result := rules.EvaluateFood(food, profile, intake)

	if err := w.jobRepo.CompleteJob(req.JobID, string(result.Decision), result.Reason, result.LimitingFactor); err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}

	if w.publisher != nil {
		msg := DecisionMessage{
			JobID:          job.ID,
			UserID:         job.UserID,
			Food:           json.RawMessage(job.Food),
			Decision:       string(result.Decision),
			Reason:         result.Reason,
			LimitingFactor: result.LimitingFactor,
			EvaluatedAt:    time.Now(),
		}
		if err := w.publisher.Publish(msg); err != nil {
			// The decision is already persisted; a lost narrative message is
			// not a job failure.
			log.Printf("Failed to publish decision for job %s: %v", job.ID, err)
		}
	}

	return nil
}

func (w *EvaluationJobWorker) loadIntake(userID uint) (rules.DailyIntake, error) {
	today := time.Now()

	if w.intakeCache != nil {
		if summary, found, err := w.intakeCache.GetSummary(userID, today); err == nil && found {
			return rules.IntakeFromSummary(*summary), nil
		}
	}

	summary, err := w.foodLogRepo.SumByUserIDAndDate(userID, today)
	if err != nil {
		return rules.DailyIntake{}, err
	}

	if w.intakeCache != nil {
		if err := w.intakeCache.StoreSummary(userID, today, summary); err != nil {
			log.Printf("Failed to cache intake for user %d: %v", userID, err)
		}
	}

	return rules.IntakeFromSummary(*summary), nil
}

func (w *EvaluationJobWorker) cleanupRoutine() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			if err := w.jobRepo.CleanupOldJobs(time.Now().Add(-w.jobRetention)); err != nil {
				log.Printf("Job cleanup failed: %v", err)
			}
		}
	}
}
