package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"gorm.io/gorm"
)

type Assessments struct {
	db *gorm.DB
}

func NewAssessmentsRepository(db *gorm.DB) *Assessments {
	return &Assessments{db: db}
}

func (repo *Assessments) WithTx(tx *gorm.DB) *Assessments {
	return &Assessments{db: tx}
}

// Save upserts by job id: a job keeps a single assessment and its id survives re-saves.
func (repo *Assessments) Save(ctx context.Context, assessment *models.Assessment) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped := repo.WithTx(tx)
		existing, err := scoped.GetByJobID(ctx, assessment.JobID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if existing != nil {
			assessment.ID = existing.ID
			assessment.CreatedAt = existing.CreatedAt
		} else {
			if assessment.ID == "" {
				assessment.ID = "assessment-" + uuid.NewString()
			} else if taken, err := scoped.Get(ctx, assessment.ID); err != nil {
				return err
			} else if taken != nil {
				return &models.ValidationError{Field: "id", Message: "assessment belongs to job " + taken.JobID}
			}
			assessment.CreatedAt = now
		}
		assessment.UpdatedAt = now
		return tx.Save(assessment).Error
	})
	return storeError("assessments.save", err)
}

// Get returns nil without an error when the assessment does not exist.
func (repo *Assessments) Get(ctx context.Context, id string) (*models.Assessment, error) {
	var assessment models.Assessment
	if err := repo.db.WithContext(ctx).First(&assessment, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, storeError("assessments.get", err)
	}
	return &assessment, nil
}

func (repo *Assessments) GetByJobID(ctx context.Context, jobID string) (*models.Assessment, error) {
	var assessment models.Assessment
	if err := repo.db.WithContext(ctx).First(&assessment, "job_id = ?", jobID).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, storeError("assessments.get_by_job", err)
	}
	return &assessment, nil
}

func (repo *Assessments) All(ctx context.Context) ([]models.Assessment, error) {
	assessments := make([]models.Assessment, 0)
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&assessments).Error; err != nil {
		return nil, storeError("assessments.all", err)
	}
	return assessments, nil
}

func (repo *Assessments) Delete(ctx context.Context, id string) error {
	res := repo.db.WithContext(ctx).Delete(&models.Assessment{}, "id = ?", id)
	if res.Error != nil {
		return storeError("assessments.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "assessment", ID: id}
	}
	return nil
}

func (repo *Assessments) BulkAdd(ctx context.Context, assessments []models.Assessment) error {
	if len(assessments) == 0 {
		return nil
	}
	return storeError("assessments.bulk_add", repo.db.WithContext(ctx).CreateInBatches(assessments, 100).Error)
}

func (repo *Assessments) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.Assessment{}).Count(&count).Error; err != nil {
		return 0, storeError("assessments.count", err)
	}
	return count, nil
}
