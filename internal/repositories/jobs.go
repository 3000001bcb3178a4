package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (repo *Jobs) WithTx(tx *gorm.DB) *Jobs {
	return &Jobs{db: tx}
}

func (repo *Jobs) Add(ctx context.Context, job *models.Job) error {
	if job.ID == "" {
		job.ID = "job-" + uuid.NewString()
	}
	return storeError("jobs.add", repo.db.WithContext(ctx).Create(job).Error)
}

// Get returns nil without an error when the job does not exist.
func (repo *Jobs) Get(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := repo.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, storeError("jobs.get", err)
	}
	return &job, nil
}

func (repo *Jobs) Update(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error) {
	var updated *models.Job
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := repo.WithTx(tx).Get(ctx, id)
		if err != nil {
			return err
		}
		if job == nil {
			return &models.NotFoundError{Entity: "job", ID: id}
		}
		patch.Apply(job)
		if err = tx.Save(job).Error; err != nil {
			return err
		}
		updated = job
		return nil
	})
	if err != nil {
		return nil, storeError("jobs.update", err)
	}
	return updated, nil
}

func (repo *Jobs) Delete(ctx context.Context, id string) error {
	res := repo.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if res.Error != nil {
		return storeError("jobs.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "job", ID: id}
	}
	return nil
}

// All returns every job sorted by order.
func (repo *Jobs) All(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := repo.db.WithContext(ctx).Order("sort_order ASC").Order("created_at ASC").
		Find(&jobs).Error; err != nil {
		return nil, storeError("jobs.all", err)
	}
	return jobs, nil
}

func (repo *Jobs) BulkAdd(ctx context.Context, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	for i := range jobs {
		if jobs[i].ID == "" {
			jobs[i].ID = "job-" + uuid.NewString()
		}
	}
	return storeError("jobs.bulk_add", repo.db.WithContext(ctx).CreateInBatches(jobs, 100).Error)
}

// BulkUpdate writes every order change in one transaction. An unknown id rolls back all of them.
func (repo *Jobs) BulkUpdate(ctx context.Context, changes []models.JobOrderChange) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, change := range changes {
			res := tx.Model(&models.Job{}).Where("id = ?", change.ID).Update("sort_order", change.Order)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &models.NotFoundError{Entity: "job", ID: change.ID}
			}
		}
		return nil
	})
	return storeError("jobs.bulk_update", err)
}

func (repo *Jobs) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.Job{}).Count(&count).Error; err != nil {
		return 0, storeError("jobs.count", err)
	}
	return count, nil
}

// NextOrder returns max(order)+1, or 0 for an empty table.
func (repo *Jobs) NextOrder(ctx context.Context) (int, error) {
	var maxOrder int
	if err := repo.db.WithContext(ctx).Model(&models.Job{}).Select("COALESCE(MAX(sort_order), -1)").
		Row().Scan(&maxOrder); err != nil {
		return 0, storeError("jobs.next_order", err)
	}
	return maxOrder + 1, nil
}
