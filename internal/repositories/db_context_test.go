package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/maxaizer/talentflow/internal/repositories/seed"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *DbContext {
	t.Helper()

	dbContext, err := NewDbContext(filepath.Join(t.TempDir(), "talentflow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbContext.Close() })

	require.NoError(t, dbContext.Migrate())
	return dbContext
}

func newSeededContext(t *testing.T) *DbContext {
	t.Helper()

	dbContext := newTestContext(t)
	data, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, dbContext.Seed(context.Background(), data))
	return dbContext
}

func Test_DbContext_SeedIsIdempotent(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	dbContext := newSeededContext(t)

	data, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, dbContext.Seed(ctx, data))

	jobs, err := NewJobsRepository(dbContext.DB).Count(ctx)
	assert.NoError(err)
	assert.Equal(int64(len(data.Jobs)), jobs)

	candidates, err := NewCandidatesRepository(dbContext.DB).Count(ctx)
	assert.NoError(err)
	assert.Equal(int64(len(data.Candidates)), candidates)

	assessments, err := NewAssessmentsRepository(dbContext.DB).Count(ctx)
	assert.NoError(err)
	assert.Equal(int64(len(data.Assessments)), assessments)

	var timeline int64
	require.NoError(t, dbContext.DB.Model(&models.TimelineEntry{}).Count(&timeline).Error)
	assert.Equal(int64(len(seed.Timeline(data.Candidates))), timeline)
}

func Test_DbContext_SeedSkipsPopulatedTables(t *testing.T) {
	ctx := context.Background()
	dbContext := newTestContext(t)

	jobs := NewJobsRepository(dbContext.DB)
	require.NoError(t, jobs.Add(ctx, &models.Job{ID: "job-own", Title: "Own job", Status: models.JobStatusActive}))

	data, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, dbContext.Seed(ctx, data))

	count, err := jobs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	candidates, err := NewCandidatesRepository(dbContext.DB).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data.Candidates)), candidates)
}

func Test_Seed_TimelineCoversCurrentStage(t *testing.T) {
	data, err := seed.Default()
	require.NoError(t, err)

	entries := seed.Timeline(data.Candidates)
	for _, c := range data.Candidates {
		var last models.TimelineEntry
		for _, e := range entries {
			if e.CandidateID == c.ID {
				last = e
			}
		}
		assert.Equal(t, c.Stage, last.Stage, c.ID)
	}
}

func Test_DbContext_MissingRowIsNotLogged(t *testing.T) {
	hook := logtest.NewGlobal()
	t.Cleanup(func() { log.StandardLogger().ReplaceHooks(make(log.LevelHooks)) })

	dbContext := newSeededContext(t)
	hook.Reset()

	job, err := NewJobsRepository(dbContext.DB).Get(context.Background(), "job-missing")
	require.NoError(t, err)
	assert.Nil(t, job)
	assert.Empty(t, hook.AllEntries())

	require.Error(t, dbContext.DB.Exec("SELECT * FROM no_such_table").Error)
	assert.NotEmpty(t, hook.AllEntries())
}
