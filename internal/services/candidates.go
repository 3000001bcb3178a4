package services

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/talentflow/internal/domain/events"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/maxaizer/talentflow/internal/query"
	"github.com/maxaizer/talentflow/internal/repositories"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Candidates couples every stage change with its timeline entry: both are written in one
// transaction, the entry only after the candidate row is updated.
type Candidates struct {
	db         *gorm.DB
	candidates *repositories.Candidates
	timeline   *repositories.Timeline
	bus        EventBus.Bus
	now        func() time.Time
}

func NewCandidatesService(db *gorm.DB, bus EventBus.Bus) *Candidates {
	return &Candidates{
		db:         db,
		candidates: repositories.NewCandidatesRepository(db),
		timeline:   repositories.NewTimelineRepository(db),
		bus:        bus,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Candidates) List(ctx context.Context, filter models.CandidateFilter) (models.Page[models.Candidate], error) {
	all, err := s.candidates.All(ctx)
	if err != nil {
		return models.Page[models.Candidate]{}, err
	}
	return query.Candidates(all, filter), nil
}

func (s *Candidates) Get(ctx context.Context, id string) (*models.Candidate, error) {
	candidate, err := s.candidates.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, &models.NotFoundError{Entity: "candidate", ID: id}
	}
	return candidate, nil
}

// Create stores a new application in the applied stage together with its first timeline entry.
func (s *Candidates) Create(ctx context.Context, draft models.CandidateDraft) (*models.Candidate, error) {
	if err := models.Validate(draft); err != nil {
		return nil, err
	}

	candidate := models.NewCandidate(draft, s.now())
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.candidates.WithTx(tx).Add(ctx, &candidate); err != nil {
			return err
		}
		entry := models.NewTimelineEntry(candidate.ID, models.StageApplied, candidate.AppliedAt)
		return s.timeline.WithTx(tx).Add(ctx, &entry)
	})
	if err != nil {
		return nil, err
	}

	log.Infof("candidate %v applied to job %v", candidate.ID, candidate.JobID)
	return &candidate, nil
}

// Update merges the patch. A changed stage goes through the same path as UpdateStatus.
func (s *Candidates) Update(ctx context.Context, id string, patch models.CandidatePatch) (*models.Candidate, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	if patch.Stage != nil {
		if _, err := models.ParseStage(string(*patch.Stage)); err != nil {
			return nil, err
		}
	}

	var updated *models.Candidate
	var change *events.CandidateStageChanged
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidates := s.candidates.WithTx(tx)
		candidate, err := candidates.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		if patch.Stage != nil && *patch.Stage != candidate.Stage {
			if change, err = s.changeStage(ctx, tx, candidate, *patch.Stage); err != nil {
				return err
			}
		}
		updated = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}

	if change != nil {
		s.bus.Publish(events.CandidateStageChangedTopic, *change)
	}
	return updated, nil
}

// UpdateStatus moves the candidate to the given stage and records the transition.
// If any write fails both are rolled back: stage stays unchanged and no entry is left behind.
func (s *Candidates) UpdateStatus(ctx context.Context, id string, status string) (*models.Candidate, error) {
	stage, err := models.ParseStage(strings.TrimSpace(status))
	if err != nil {
		return nil, err
	}

	var updated *models.Candidate
	var change *events.CandidateStageChanged
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidate, err := s.candidates.WithTx(tx).Get(ctx, id)
		if err != nil {
			return err
		}
		if candidate == nil {
			return &models.NotFoundError{Entity: "candidate", ID: id}
		}
		if change, err = s.changeStage(ctx, tx, candidate, stage); err != nil {
			return err
		}
		updated = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.CandidateStageChangedTopic, *change)
	return updated, nil
}

func (s *Candidates) changeStage(ctx context.Context, tx *gorm.DB, candidate *models.Candidate,
	stage models.Stage) (*events.CandidateStageChanged, error) {

	at := s.now()
	if err := s.candidates.WithTx(tx).UpdateStage(ctx, candidate.ID, stage, at); err != nil {
		return nil, err
	}
	entry := models.NewTimelineEntry(candidate.ID, stage, at)
	if err := s.timeline.WithTx(tx).Add(ctx, &entry); err != nil {
		return nil, err
	}

	change := &events.CandidateStageChanged{CandidateID: candidate.ID, From: candidate.Stage, To: stage}
	candidate.Stage = stage
	candidate.UpdatedAt = at
	return change, nil
}

// AddNote appends a timestamped note to the candidate's notes.
func (s *Candidates) AddNote(ctx context.Context, id string, text string) (*models.Candidate, error) {
	note := models.Note{Text: strings.TrimSpace(text), CreatedAt: s.now()}
	if err := models.Validate(note); err != nil {
		return nil, err
	}

	var updated *models.Candidate
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidates := s.candidates.WithTx(tx)
		candidate, err := candidates.Get(ctx, id)
		if err != nil {
			return err
		}
		if candidate == nil {
			return &models.NotFoundError{Entity: "candidate", ID: id}
		}
		notes := append(append([]models.Note{}, candidate.Notes...), note)
		updated, err = candidates.Update(ctx, id, models.CandidatePatch{Notes: &notes})
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the candidate and all of its timeline entries.
func (s *Candidates) Delete(ctx context.Context, id string) error {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if removed, err = s.timeline.WithTx(tx).DeleteByCandidate(ctx, id); err != nil {
			return err
		}
		return s.candidates.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.bus.Publish(events.CandidateDeletedTopic, events.CandidateDeleted{CandidateID: id, TimelineEntries: removed})
	return nil
}

// Timeline returns the candidate's history sorted by date. An unknown or deleted candidate has
// an empty history.
func (s *Candidates) Timeline(ctx context.Context, id string) ([]models.TimelineEntry, error) {
	return s.timeline.ByCandidate(ctx, id)
}

func (s *Candidates) Statistics(ctx context.Context) (models.CandidateStatistics, error) {
	all, err := s.candidates.All(ctx)
	if err != nil {
		return models.CandidateStatistics{}, err
	}

	weekAgo := s.now().Add(-7 * 24 * time.Hour)
	stats := models.CandidateStatistics{TotalCandidates: len(all), StageCounts: map[models.Stage]int{}}
	for _, c := range all {
		if !c.AppliedAt.Before(weekAgo) {
			stats.NewCandidates++
		}
		stats.StageCounts[c.Stage]++
	}
	return stats, nil
}

func (s *Candidates) ApplicationStatistics(ctx context.Context) (models.ApplicationStatistics, error) {
	all, err := s.candidates.All(ctx)
	if err != nil {
		return models.ApplicationStatistics{}, err
	}

	stats := models.ApplicationStatistics{TotalApplications: len(all)}
	counters := map[models.Stage]*int{
		models.StageApplied:   &stats.Applied,
		models.StageScreening: &stats.Screening,
		models.StageInterview: &stats.Interview,
		models.StageOffer:     &stats.Offer,
		models.StageRejected:  &stats.Rejected,
		models.StageHired:     &stats.Hired,
	}
	for _, c := range all {
		if counter, ok := counters[c.Stage]; ok {
			*counter++
		}
	}
	return stats, nil
}
