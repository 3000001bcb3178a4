package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/maxaizer/talentflow/internal/repositories"
	"github.com/maxaizer/talentflow/internal/repositories/seed"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, seeded bool) *gorm.DB {
	t.Helper()

	dbContext, err := repositories.NewDbContext(filepath.Join(t.TempDir(), "talentflow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbContext.Close() })
	require.NoError(t, dbContext.Migrate())

	if seeded {
		data, err := seed.Default()
		require.NoError(t, err)
		require.NoError(t, dbContext.Seed(context.Background(), data))
	}
	return dbContext.DB
}

func newJobsService(t *testing.T, db *gorm.DB, failures FailurePolicy) *Jobs {
	t.Helper()
	return NewJobsService(repositories.NewJobsRepository(db), EventBus.New(), failures)
}

func jobIDs(jobs []models.Job) []string {
	return lo.Map(jobs, func(j models.Job, _ int) string { return j.ID })
}

func jobOrders(jobs []models.Job) []int {
	return lo.Map(jobs, func(j models.Job, _ int) int { return j.Order })
}
