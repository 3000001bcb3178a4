package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/talentflow/internal/domain/events"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/maxaizer/talentflow/internal/repositories"
	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Assessments struct {
	db          *gorm.DB
	assessments *repositories.Assessments
	responses   *repositories.Responses
	candidates  *repositories.Candidates
	bus         EventBus.Bus
	byJob       *gocache.Cache
	now         func() time.Time
}

func NewAssessmentsService(db *gorm.DB, bus EventBus.Bus) *Assessments {
	return &Assessments{
		db:          db,
		assessments: repositories.NewAssessmentsRepository(db),
		responses:   repositories.NewResponsesRepository(db),
		candidates:  repositories.NewCandidatesRepository(db),
		bus:         bus,
		byJob:       gocache.New(10*time.Minute, 20*time.Minute),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// List returns every assessment, or only the one of jobID when it is not empty.
func (s *Assessments) List(ctx context.Context, jobID string) ([]models.Assessment, error) {
	if jobID == "" {
		return s.assessments.All(ctx)
	}
	assessment, err := s.byJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return []models.Assessment{}, nil
	}
	return []models.Assessment{*assessment}, nil
}

func (s *Assessments) GetByJob(ctx context.Context, jobID string) (*models.Assessment, error) {
	assessment, err := s.byJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, &models.NotFoundError{Entity: "assessment for job", ID: jobID}
	}
	return assessment, nil
}

func (s *Assessments) byJobID(ctx context.Context, jobID string) (*models.Assessment, error) {
	if cached, found := s.byJob.Get(jobID); found {
		assessment := cached.(models.Assessment)
		return &assessment, nil
	}

	assessment, err := s.assessments.GetByJobID(ctx, jobID)
	if err != nil || assessment == nil {
		return nil, err
	}
	s.byJob.Set(jobID, *assessment, gocache.DefaultExpiration)
	return assessment, nil
}

// Save creates or replaces the assessment of assessment.JobID.
func (s *Assessments) Save(ctx context.Context, assessment models.Assessment) (*models.Assessment, error) {
	if err := models.Validate(assessment); err != nil {
		return nil, err
	}
	if assessment.Sections == nil {
		assessment.Sections = []models.Section{}
	}

	s.byJob.Delete(assessment.JobID)
	if err := s.assessments.Save(ctx, &assessment); err != nil {
		return nil, err
	}
	log.Infof("assessment %v saved for job %v", assessment.ID, assessment.JobID)
	return &assessment, nil
}

// Submit scores the answers against the job's assessment and stores the response.
func (s *Assessments) Submit(ctx context.Context, jobID string, submission models.Submission) (*models.AssessmentResponse, error) {
	if err := models.Validate(submission); err != nil {
		return nil, err
	}

	assessment, err := s.GetByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	candidate, err := s.candidates.Get(ctx, submission.CandidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, &models.NotFoundError{Entity: "candidate", ID: submission.CandidateID}
	}

	answers := submission.Responses
	if answers == nil {
		answers = map[string]any{}
	}
	response := models.AssessmentResponse{
		AssessmentID: assessment.ID,
		CandidateID:  candidate.ID,
		Score:        assessment.Score(answers),
		Responses:    answers,
		SubmittedAt:  s.now(),
	}
	if err = s.responses.Add(ctx, &response); err != nil {
		return nil, err
	}

	s.bus.Publish(events.AssessmentSubmittedTopic, events.AssessmentSubmitted{
		AssessmentID: assessment.ID,
		CandidateID:  candidate.ID,
		Score:        response.Score,
	})
	return &response, nil
}

func (s *Assessments) Responses(ctx context.Context, assessmentID string) ([]models.AssessmentResponse, error) {
	return s.responses.ByAssessment(ctx, assessmentID)
}

// Summary aggregates the scores submitted for the job's assessment.
func (s *Assessments) Summary(ctx context.Context, jobID string) (models.ScoreSummary, error) {
	assessment, err := s.GetByJob(ctx, jobID)
	if err != nil {
		return models.ScoreSummary{}, err
	}
	responses, err := s.responses.ByAssessment(ctx, assessment.ID)
	if err != nil {
		return models.ScoreSummary{}, err
	}
	return models.Summarize(responses), nil
}

// Delete removes the assessment and every response submitted to it.
func (s *Assessments) Delete(ctx context.Context, id string) error {
	var jobID string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assessments := s.assessments.WithTx(tx)
		assessment, err := assessments.Get(ctx, id)
		if err != nil {
			return err
		}
		if assessment == nil {
			return &models.NotFoundError{Entity: "assessment", ID: id}
		}
		jobID = assessment.JobID

		if _, err = s.responses.WithTx(tx).DeleteByAssessment(ctx, id); err != nil {
			return err
		}
		return assessments.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.byJob.Delete(jobID)
	return nil
}

func (s *Assessments) Statistics(ctx context.Context) (models.AssessmentStatistics, error) {
	total, err := s.assessments.Count(ctx)
	if err != nil {
		return models.AssessmentStatistics{}, err
	}
	answered, err := s.responses.CountAnsweredAssessments(ctx)
	if err != nil {
		return models.AssessmentStatistics{}, err
	}
	completed := lo.Min([]int64{answered, total})
	return models.AssessmentStatistics{
		TotalAssessments:     int(total),
		CompletedAssessments: int(completed),
		PendingAssessments:   int(total - completed),
	}, nil
}
