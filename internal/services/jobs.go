package services

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/maxaizer/talentflow/internal/logger"
	"github.com/maxaizer/talentflow/internal/query"
	log "github.com/sirupsen/logrus"
)

type jobRepository interface {
	Add(ctx context.Context, job *models.Job) error
	Get(ctx context.Context, id string) (*models.Job, error)
	Update(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error)
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]models.Job, error)
	BulkUpdate(ctx context.Context, changes []models.JobOrderChange) error
	NextOrder(ctx context.Context) (int, error)
}

// Jobs serializes every write that touches the order column (create, delete, reorder, compact)
// behind one mutex, so read-modify-write cycles over the collection never interleave.
type Jobs struct {
	repo            jobRepository
	bus             EventBus.Bus
	reorderFailures FailurePolicy
	mu              sync.Mutex
}

func NewJobsService(repo jobRepository, bus EventBus.Bus, reorderFailures FailurePolicy) *Jobs {
	if reorderFailures == nil {
		reorderFailures = NeverFail{}
	}
	return &Jobs{repo: repo, bus: bus, reorderFailures: reorderFailures}
}

func (s *Jobs) List(ctx context.Context, filter models.JobFilter) (models.Page[models.Job], error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return models.Page[models.Job]{}, err
	}
	return query.Jobs(all, filter), nil
}

func (s *Jobs) Get(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, &models.NotFoundError{Entity: "job", ID: id}
	}
	return job, nil
}

// Create appends the job at the end of the order sequence.
func (s *Jobs) Create(ctx context.Context, draft models.JobDraft) (*models.Job, error) {
	if err := models.Validate(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.repo.NextOrder(ctx)
	if err != nil {
		return nil, err
	}

	job := models.NewJob(draft, order)
	if err = s.repo.Add(ctx, &job); err != nil {
		return nil, err
	}
	log.Infof("job %v created at order %v", job.ID, job.Order)
	return &job, nil
}

func (s *Jobs) Update(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes the job and closes the gap it leaves in the order sequence.
// Candidates keep their jobId.
func (s *Jobs) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if _, err := s.compactLocked(ctx); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("job %v deleted but order compaction failed: %v", id, err)
	}
	return nil
}

func (s *Jobs) Statistics(ctx context.Context) (models.JobStatistics, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return models.JobStatistics{}, err
	}
	active := 0
	for _, job := range all {
		if job.Status == models.JobStatusActive {
			active++
		}
	}
	return models.JobStatistics{TotalJobs: len(all), ActiveJobs: active, ArchivedJobs: len(all) - active}, nil
}
