package services

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/talentflow/internal/domain/events"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/maxaizer/talentflow/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Assessments_SubmitScoresAndStores(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	bus := EventBus.New()
	assessments := NewAssessmentsService(newTestDB(t, true), bus)

	var submitted events.AssessmentSubmitted
	require.NoError(t, bus.Subscribe(events.AssessmentSubmittedTopic, func(e events.AssessmentSubmitted) { submitted = e }))

	// q-0-0 correct, q-0-1 too short, q-0-2 optional and blank
	response, err := assessments.Submit(ctx, "job-2", models.Submission{
		CandidateID: "candidate-3",
		Responses:   map[string]any{"q-0-0": "go", "q-0-1": "ch"},
	})
	require.NoError(t, err)

	assert.Equal("assessment-job-2", response.AssessmentID)
	assert.Equal(67, response.Score)
	assert.Equal(events.AssessmentSubmitted{AssessmentID: "assessment-job-2", CandidateID: "candidate-3", Score: 67}, submitted)

	responses, err := assessments.Responses(ctx, "assessment-job-2")
	require.NoError(t, err)
	assert.Len(responses, 3)
	assert.Equal(response.ID, responses[0].ID)
}

func Test_Assessments_SubmitErrors(t *testing.T) {
	ctx := context.Background()
	assessments := NewAssessmentsService(newTestDB(t, true), EventBus.New())
	var notFound *models.NotFoundError
	var validation *models.ValidationError

	_, err := assessments.Submit(ctx, "job-5", models.Submission{CandidateID: "candidate-8"})
	assert.ErrorAs(t, err, &notFound)

	_, err = assessments.Submit(ctx, "job-1", models.Submission{CandidateID: "candidate-missing"})
	assert.ErrorAs(t, err, &notFound)

	_, err = assessments.Submit(ctx, "job-1", models.Submission{})
	assert.ErrorAs(t, err, &validation)
}

func Test_Assessments_SaveRefreshesCachedAssessment(t *testing.T) {
	ctx := context.Background()
	assessments := NewAssessmentsService(newTestDB(t, true), EventBus.New())

	first, err := assessments.GetByJob(ctx, "job-1")
	require.NoError(t, err)

	saved, err := assessments.Save(ctx, models.Assessment{JobID: "job-1", Title: "Frontend take-home"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, saved.ID)

	again, err := assessments.GetByJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "Frontend take-home", again.Title)

	listed, err := assessments.List(ctx, "job-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Frontend take-home", listed[0].Title)

	none, err := assessments.List(ctx, "job-5")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func Test_Assessments_SaveValidates(t *testing.T) {
	assessments := NewAssessmentsService(newTestDB(t, true), EventBus.New())

	_, err := assessments.Save(context.Background(), models.Assessment{JobID: "job-3"})

	var validation *models.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func Test_Assessments_DeleteCascadesResponses(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t, true)
	assessments := NewAssessmentsService(db, EventBus.New())

	_, err := assessments.GetByJob(ctx, "job-1")
	require.NoError(t, err)

	require.NoError(t, assessments.Delete(ctx, "assessment-job-1"))

	remaining, err := repositories.NewResponsesRepository(db).ByAssessment(ctx, "assessment-job-1")
	require.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = assessments.GetByJob(ctx, "job-1")
	var notFound *models.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	assert.ErrorAs(t, assessments.Delete(ctx, "assessment-job-1"), &notFound)
}

func Test_Assessments_SummaryAndStatistics(t *testing.T) {
	ctx := context.Background()
	assessments := NewAssessmentsService(newTestDB(t, true), EventBus.New())

	summary, err := assessments.Summary(ctx, "job-2")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 83.5, summary.Average)
	assert.Equal(t, 2, summary.Passed)

	_, err = assessments.Save(ctx, models.Assessment{JobID: "job-3", Title: "Portfolio review"})
	require.NoError(t, err)

	stats, err := assessments.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AssessmentStatistics{TotalAssessments: 3, CompletedAssessments: 2, PendingAssessments: 1}, stats)
}
