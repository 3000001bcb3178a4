package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Candidates_MissingIdPolicy(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	candidates := NewCandidatesRepository(newTestContext(t).DB)
	var notFound *models.NotFoundError

	candidate, err := candidates.Get(ctx, "candidate-missing")
	assert.NoError(err)
	assert.Nil(candidate)

	name := "Nobody"
	_, err = candidates.Update(ctx, "candidate-missing", models.CandidatePatch{Name: &name})
	assert.ErrorAs(err, &notFound)

	err = candidates.UpdateStage(ctx, "candidate-missing", models.StageHired, time.Now())
	assert.ErrorAs(err, &notFound)

	err = candidates.Delete(ctx, "candidate-missing")
	assert.ErrorAs(err, &notFound)
}

func Test_Candidates_UpdateKeepsStageAndReplacesNotes(t *testing.T) {
	ctx := context.Background()
	candidates := NewCandidatesRepository(newSeededContext(t).DB)
	hired := models.StageHired
	notes := []models.Note{{Text: "Strong portfolio", CreatedAt: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)}}

	_, err := candidates.Update(ctx, "candidate-2", models.CandidatePatch{Stage: &hired, Notes: &notes})
	require.NoError(t, err)

	stored, err := candidates.Get(ctx, "candidate-2")
	require.NoError(t, err)
	assert.Equal(t, models.StageApplied, stored.Stage)
	assert.Len(t, stored.Notes, 1)
	assert.Equal(t, "Strong portfolio", stored.Notes[0].Text)
}

func Test_Candidates_AddGeneratesIdAndAllIsNewestFirst(t *testing.T) {
	ctx := context.Background()
	candidates := NewCandidatesRepository(newSeededContext(t).DB)

	candidate := models.Candidate{Name: "Ivy Chen", Email: "ivy@example.com", Stage: models.StageApplied,
		JobID: "job-1", AppliedAt: time.Now().UTC()}
	require.NoError(t, candidates.Add(ctx, &candidate))
	assert.NotEmpty(t, candidate.ID)

	all, err := candidates.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, candidate.ID, all[0].ID)
	assert.NotNil(t, all[0].Notes)
}
