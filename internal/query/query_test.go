package query

import (
	"math"
	"testing"
	"time"

	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

var base = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func testJobs() []models.Job {
	return []models.Job{
		{ID: "job-4", Title: "Data Engineer", Status: models.JobStatusArchived, Order: 3, JobType: "Full-time", Tags: []string{"spark"}},
		{ID: "job-1", Title: "Senior Frontend Engineer", Status: models.JobStatusActive, Order: 0, JobType: "Full-time", Tags: []string{"react"}},
		{ID: "job-3", Title: "Product Designer", Status: models.JobStatusActive, Order: 2, JobType: "Contract", Tags: []string{"figma"}},
		{ID: "job-2", Title: "Backend Engineer", Status: models.JobStatusActive, Order: 1, JobType: "Full-time", Tags: []string{"go"}},
	}
}

func ids[T any](items []T, id func(T) string) []string {
	return lo.Map(items, func(item T, _ int) string { return id(item) })
}

func jobID(j models.Job) string { return j.ID }

func Test_Jobs_SortsByOrder(t *testing.T) {
	page := Jobs(testJobs(), models.JobFilter{})

	assert.Equal(t, []string{"job-1", "job-2", "job-3", "job-4"}, ids(page.Data, jobID))
	assert.Equal(t, 4, page.Total)
	assert.Zero(t, page.Page)
	assert.Zero(t, page.PageSize)
}

func Test_Jobs_SearchPaginatesFilteredSet(t *testing.T) {
	assert := assert.New(t)
	jobs := testJobs()

	first := Jobs(jobs, models.JobFilter{Search: "ENGINEER", Page: 1, PageSize: 2})
	second := Jobs(jobs, models.JobFilter{Search: "engineer", Page: 2, PageSize: 2})

	assert.Equal(3, first.Total)
	assert.Equal([]string{"job-1", "job-2"}, ids(first.Data, jobID))
	assert.Equal(3, second.Total)
	assert.Equal([]string{"job-4"}, ids(second.Data, jobID))
	assert.Equal(2, second.Page)
	assert.Equal(2, second.PageSize)
}

func Test_Jobs_SearchMatchesTags(t *testing.T) {
	page := Jobs(testJobs(), models.JobFilter{Search: "FIG"})
	assert.Equal(t, []string{"job-3"}, ids(page.Data, jobID))
}

func Test_Jobs_ExactFilters(t *testing.T) {
	jobs := testJobs()

	active := Jobs(jobs, models.JobFilter{Status: models.JobStatusActive})
	assert.Equal(t, []string{"job-1", "job-2", "job-3"}, ids(active.Data, jobID))

	fullTime := Jobs(jobs, models.JobFilter{JobType: "Full-time", Status: models.JobStatusActive})
	assert.Equal(t, []string{"job-1", "job-2"}, ids(fullTime.Data, jobID))

	all := Jobs(jobs, models.JobFilter{JobType: AllJobTypes})
	assert.Equal(t, 4, all.Total)
}

func Test_Jobs_PageBeyondRange(t *testing.T) {
	page := Jobs(testJobs(), models.JobFilter{Page: 5, PageSize: 2})

	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data)
	assert.Equal(t, 4, page.Total)
}

func Test_Jobs_HugePagesDoNotOverflow(t *testing.T) {
	cases := []models.JobFilter{
		{Page: math.MaxInt/2 + 2, PageSize: 2},
		{Page: math.MaxInt, PageSize: math.MaxInt},
		{Page: 2, PageSize: math.MaxInt},
	}

	for _, filter := range cases {
		page := Jobs(testJobs(), filter)
		assert.Empty(t, page.Data)
		assert.Equal(t, 4, page.Total)
	}

	whole := Jobs(testJobs(), models.JobFilter{Page: 1, PageSize: math.MaxInt})
	assert.Len(t, whole.Data, 4)
}

func Test_Jobs_DoesNotMutateInput(t *testing.T) {
	jobs := testJobs()
	before := append([]models.Job(nil), jobs...)

	Jobs(jobs, models.JobFilter{Search: "engineer", Page: 1, PageSize: 1})

	assert.Equal(t, before, jobs)
}

func testCandidates() []models.Candidate {
	return []models.Candidate{
		{ID: "c-1", Name: "Ada Byrne", Email: "ada@example.com", Stage: models.StageInterview, JobID: "job-1", AppliedAt: base},
		{ID: "c-2", Name: "Ben Okafor", Email: "ben@example.com", Stage: models.StageApplied, JobID: "job-1",
			AppliedAt: base.Add(48 * time.Hour), PreviousCompany: "Northwind"},
		{ID: "c-3", Name: "Chloe Martin", Email: "chloe@corp.io", Stage: models.StageApplied, JobID: "job-2",
			AppliedAt: base.Add(24 * time.Hour), PreviousRole: "Staff Engineer"},
	}
}

func candidateID(c models.Candidate) string { return c.ID }

func Test_Candidates_NewestFirst(t *testing.T) {
	page := Candidates(testCandidates(), models.CandidateFilter{})
	assert.Equal(t, []string{"c-2", "c-3", "c-1"}, ids(page.Data, candidateID))
}

func Test_Candidates_Filters(t *testing.T) {
	assert := assert.New(t)
	candidates := testCandidates()

	applied := Candidates(candidates, models.CandidateFilter{Stage: models.StageApplied})
	assert.Equal([]string{"c-2", "c-3"}, ids(applied.Data, candidateID))

	byJob := Candidates(candidates, models.CandidateFilter{JobID: "job-1", Stage: models.StageInterview})
	assert.Equal([]string{"c-1"}, ids(byJob.Data, candidateID))

	byCompany := Candidates(candidates, models.CandidateFilter{Search: "northwind"})
	assert.Equal([]string{"c-2"}, ids(byCompany.Data, candidateID))

	byRole := Candidates(candidates, models.CandidateFilter{Search: "staff"})
	assert.Equal([]string{"c-3"}, ids(byRole.Data, candidateID))

	byEmail := Candidates(candidates, models.CandidateFilter{Search: "EXAMPLE.com", Page: 2, PageSize: 1})
	assert.Equal(2, byEmail.Total)
	assert.Equal([]string{"c-1"}, ids(byEmail.Data, candidateID))
}
