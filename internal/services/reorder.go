package services

import (
	"context"

	"github.com/maxaizer/talentflow/internal/domain/events"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/maxaizer/talentflow/internal/logger"
	"github.com/maxaizer/talentflow/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// Reorder moves the job to position toOrder and renumbers every job to 0..N-1.
// toOrder is clamped into range. An injected failure aborts before anything is read or
// written; a missing job fails with NotFoundError. Either way the collection is unchanged.
func (s *Jobs) Reorder(ctx context.Context, id string, toOrder int) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reorderFailures.Check("reorder"); err != nil {
		metrics.ReorderCounter.WithLabelValues("injected_failure").Inc()
		log.Warnf("reorder of job %v aborted: %v", id, err)
		return nil, err
	}

	jobs, err := s.repo.All(ctx)
	if err != nil {
		metrics.ReorderCounter.WithLabelValues("store_failure").Inc()
		return nil, err
	}

	from := -1
	for i, job := range jobs {
		if job.ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		metrics.ReorderCounter.WithLabelValues("not_found").Inc()
		return nil, &models.NotFoundError{Entity: "job", ID: id}
	}

	to := clamp(toOrder, 0, len(jobs)-1)
	moved := jobs[from]
	sequence := append(append([]models.Job{}, jobs[:from]...), jobs[from+1:]...)
	sequence = append(sequence[:to], append([]models.Job{moved}, sequence[to:]...)...)

	changes := make([]models.JobOrderChange, len(sequence))
	for position, job := range sequence {
		changes[position] = models.JobOrderChange{ID: job.ID, Order: position}
	}

	if err = s.repo.BulkUpdate(ctx, changes); err != nil {
		metrics.ReorderCounter.WithLabelValues("store_failure").Inc()
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeReorder).
			Errorf("failed to apply reorder of job %v: %v", id, err)
		return nil, err
	}
	metrics.ReorderCounter.WithLabelValues("committed").Inc()

	moved.Order = to
	s.bus.Publish(events.JobsReorderedTopic, events.JobsReordered{JobID: id, FromOrder: from, ToOrder: to})
	return &moved, nil
}

// Compact renumbers orders densely, keeping their relative sequence. It returns how many jobs moved.
func (s *Jobs) Compact(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compactLocked(ctx)
}

func (s *Jobs) compactLocked(ctx context.Context) (int, error) {
	jobs, err := s.repo.All(ctx)
	if err != nil {
		return 0, err
	}

	var changes []models.JobOrderChange
	for position, job := range jobs {
		if job.Order != position {
			changes = append(changes, models.JobOrderChange{ID: job.ID, Order: position})
		}
	}
	if len(changes) == 0 {
		return 0, nil
	}
	return len(changes), s.repo.BulkUpdate(ctx, changes)
}

func clamp(value, low, high int) int {
	return max(low, min(value, high))
}
