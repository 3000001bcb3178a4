package services

import (
	"context"
	"math/rand"
	"net/http"
	"sync"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/talentflow/internal/domain/events"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/maxaizer/talentflow/internal/repositories"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type jobRepositoryMock struct {
	mock.Mock
}

func (m *jobRepositoryMock) Add(ctx context.Context, job *models.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *jobRepositoryMock) Get(ctx context.Context, id string) (*models.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *jobRepositoryMock) Update(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error) {
	args := m.Called(ctx, id, patch)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *jobRepositoryMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *jobRepositoryMock) All(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *jobRepositoryMock) BulkUpdate(ctx context.Context, changes []models.JobOrderChange) error {
	return m.Called(ctx, changes).Error(0)
}

func (m *jobRepositoryMock) NextOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func createJobs(t *testing.T, jobs *Jobs, titles ...string) []string {
	t.Helper()
	ids := make([]string, len(titles))
	for i, title := range titles {
		job, err := jobs.Create(context.Background(), models.JobDraft{Title: title})
		require.NoError(t, err)
		ids[i] = job.ID
	}
	return ids
}

func allJobs(t *testing.T, jobs *Jobs) []models.Job {
	t.Helper()
	page, err := jobs.List(context.Background(), models.JobFilter{})
	require.NoError(t, err)
	return page.Data
}

func Test_Reorder_MovesJobAndRenumbers(t *testing.T) {
	assert := assert.New(t)
	jobs := newJobsService(t, newTestDB(t, false), NeverFail{})
	ids := createJobs(t, jobs, "A", "B", "C")

	moved, err := jobs.Reorder(context.Background(), ids[2], 0)
	require.NoError(t, err)

	assert.Equal(ids[2], moved.ID)
	assert.Equal(0, moved.Order)

	after := allJobs(t, jobs)
	assert.Equal([]string{ids[2], ids[0], ids[1]}, jobIDs(after))
	assert.Equal([]int{0, 1, 2}, jobOrders(after))
}

func Test_Reorder_ClampsTargetIndex(t *testing.T) {
	jobs := newJobsService(t, newTestDB(t, false), NeverFail{})
	ids := createJobs(t, jobs, "A", "B", "C")

	moved, err := jobs.Reorder(context.Background(), ids[0], 99)
	require.NoError(t, err)
	assert.Equal(t, 2, moved.Order)

	_, err = jobs.Reorder(context.Background(), ids[0], -5)
	require.NoError(t, err)
	assert.Equal(t, ids, jobIDs(allJobs(t, jobs)))
}

func Test_Reorder_KeepsOrdersDense(t *testing.T) {
	jobs := newJobsService(t, newTestDB(t, true), NeverFail{})
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 25; i++ {
		current := allJobs(t, jobs)
		before := jobIDs(current)
		target := current[rnd.Intn(len(current))].ID
		to := rnd.Intn(len(current))

		_, err := jobs.Reorder(context.Background(), target, to)
		require.NoError(t, err)

		after := allJobs(t, jobs)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, jobOrders(after))
		assert.ElementsMatch(t, before, jobIDs(after))
		assert.Equal(t, target, after[to].ID)
	}
}

func Test_Reorder_ConcurrentCallsNeverInterleave(t *testing.T) {
	jobs := newJobsService(t, newTestDB(t, true), NeverFail{})
	seeded := jobIDs(allJobs(t, jobs))
	ctx := context.Background()

	const reorderers, reordersEach, creators = 8, 10, 2
	errs := make(chan error, reorderers*reordersEach+creators*4)
	var wg sync.WaitGroup

	for r := 0; r < reorderers; r++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			for i := 0; i < reordersEach; i++ {
				_, err := jobs.Reorder(ctx, seeded[rnd.Intn(len(seeded))], rnd.Intn(len(seeded)+2))
				errs <- err
			}
		}(int64(r))
	}

	for c := 0; c < creators; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var created []string
			for i := 0; i < 3; i++ {
				job, err := jobs.Create(ctx, models.JobDraft{Title: "Concurrent"})
				errs <- err
				if err == nil {
					created = append(created, job.ID)
				}
			}
			if len(created) > 0 {
				errs <- jobs.Delete(ctx, created[0])
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	after := allJobs(t, jobs)
	assert.Len(t, after, len(seeded)+creators*2)
	assert.Equal(t, lo.Range(len(after)), jobOrders(after))
	assert.Len(t, lo.Uniq(jobIDs(after)), len(after))
}

func Test_Reorder_InjectedFailureLeavesStoreUntouched(t *testing.T) {
	db := newTestDB(t, true)
	jobs := newJobsService(t, db, AlwaysFail{Code: http.StatusServiceUnavailable})
	before, err := repositories.NewJobsRepository(db).All(context.Background())
	require.NoError(t, err)

	_, err = jobs.Reorder(context.Background(), "job-3", 0)

	var transient *models.TransientError
	require.ErrorAs(t, err, &transient)
	assert.Equal(t, http.StatusServiceUnavailable, transient.Code)

	after, err := repositories.NewJobsRepository(db).All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func Test_Reorder_FailureCheckedBeforeAnyRead(t *testing.T) {
	repo := &jobRepositoryMock{}
	jobs := NewJobsService(repo, EventBus.New(), AlwaysFail{})

	_, err := jobs.Reorder(context.Background(), "job-1", 1)

	var transient *models.TransientError
	assert.ErrorAs(t, err, &transient)
	repo.AssertNotCalled(t, "All", mock.Anything)
	repo.AssertNotCalled(t, "BulkUpdate", mock.Anything, mock.Anything)
}

func Test_Reorder_MissingJobIsNotFound(t *testing.T) {
	repo := &jobRepositoryMock{}
	repo.On("All", mock.Anything).Return([]models.Job{{ID: "job-1"}, {ID: "job-2", Order: 1}}, nil)
	jobs := NewJobsService(repo, EventBus.New(), NeverFail{})

	_, err := jobs.Reorder(context.Background(), "job-missing", 0)

	var notFound *models.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	repo.AssertNotCalled(t, "BulkUpdate", mock.Anything, mock.Anything)
}

func Test_Reorder_PublishesEvent(t *testing.T) {
	bus := EventBus.New()
	jobs := NewJobsService(repositories.NewJobsRepository(newTestDB(t, true)), bus, NeverFail{})

	var published []events.JobsReordered
	require.NoError(t, bus.Subscribe(events.JobsReorderedTopic, func(e events.JobsReordered) {
		published = append(published, e)
	}))

	_, err := jobs.Reorder(context.Background(), "job-4", 1)
	require.NoError(t, err)

	assert.Equal(t, []events.JobsReordered{{JobID: "job-4", FromOrder: 3, ToOrder: 1}}, published)
}

func Test_Jobs_DeleteCompactsOrders(t *testing.T) {
	jobs := newJobsService(t, newTestDB(t, true), NeverFail{})

	require.NoError(t, jobs.Delete(context.Background(), "job-2"))

	after := allJobs(t, jobs)
	assert.Equal(t, []string{"job-1", "job-3", "job-4", "job-5"}, jobIDs(after))
	assert.Equal(t, []int{0, 1, 2, 3}, jobOrders(after))

	created, err := jobs.Create(context.Background(), models.JobDraft{Title: "Platform Engineer"})
	require.NoError(t, err)
	assert.Equal(t, 4, created.Order)
}

func Test_Jobs_DeleteMissingIsNotFound(t *testing.T) {
	jobs := newJobsService(t, newTestDB(t, true), NeverFail{})

	err := jobs.Delete(context.Background(), "job-missing")

	var notFound *models.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func Test_Jobs_CompactOnlyMovesGaps(t *testing.T) {
	repo := &jobRepositoryMock{}
	repo.On("All", mock.Anything).Return([]models.Job{{ID: "a", Order: 0}, {ID: "b", Order: 3}, {ID: "c", Order: 7}}, nil)
	repo.On("BulkUpdate", mock.Anything, []models.JobOrderChange{{ID: "b", Order: 1}, {ID: "c", Order: 2}}).Return(nil)
	jobs := NewJobsService(repo, EventBus.New(), NeverFail{})

	changed, err := jobs.Compact(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, changed)
	repo.AssertExpectations(t)
}

func Test_Jobs_CreateValidatesAndStatistics(t *testing.T) {
	jobs := newJobsService(t, newTestDB(t, true), NeverFail{})

	_, err := jobs.Create(context.Background(), models.JobDraft{})
	var validation *models.ValidationError
	assert.ErrorAs(t, err, &validation)

	stats, err := jobs.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.JobStatistics{TotalJobs: 5, ActiveJobs: 4, ArchivedJobs: 1}, stats)
}
