package services

import (
	"context"
	"sort"

	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/maxaizer/talentflow/internal/repositories"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type Analytics struct {
	jobs       *repositories.Jobs
	candidates *repositories.Candidates
}

func NewAnalyticsService(db *gorm.DB) *Analytics {
	return &Analytics{
		jobs:       repositories.NewJobsRepository(db),
		candidates: repositories.NewCandidatesRepository(db),
	}
}

// CandidatesPerJob counts candidates by job, labelled with the job title.
// Candidates of deleted jobs are reported under their job id. Sorted by count, then name.
func (s *Analytics) CandidatesPerJob(ctx context.Context) ([]models.CandidatesPerJob, error) {
	jobs, err := s.jobs.All(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := s.candidates.All(ctx)
	if err != nil {
		return nil, err
	}

	titles := lo.SliceToMap(jobs, func(j models.Job) (string, string) { return j.ID, j.Title })
	counts := lo.CountValuesBy(candidates, func(c models.Candidate) string { return c.JobID })

	result := lo.MapToSlice(counts, func(jobID string, count int) models.CandidatesPerJob {
		name, ok := titles[jobID]
		if !ok {
			name = jobID
		}
		return models.CandidatesPerJob{Name: name, Candidates: count}
	})
	sort.Slice(result, func(i, j int) bool {
		if result[i].Candidates != result[j].Candidates {
			return result[i].Candidates > result[j].Candidates
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}
