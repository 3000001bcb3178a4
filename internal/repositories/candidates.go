package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"gorm.io/gorm"
)

type Candidates struct {
	db *gorm.DB
}

func NewCandidatesRepository(db *gorm.DB) *Candidates {
	return &Candidates{db: db}
}

func (repo *Candidates) WithTx(tx *gorm.DB) *Candidates {
	return &Candidates{db: tx}
}

func (repo *Candidates) Add(ctx context.Context, candidate *models.Candidate) error {
	if candidate.ID == "" {
		candidate.ID = "candidate-" + uuid.NewString()
	}
	if candidate.Notes == nil {
		candidate.Notes = []models.Note{}
	}
	return storeError("candidates.add", repo.db.WithContext(ctx).Create(candidate).Error)
}

// Get returns nil without an error when the candidate does not exist.
func (repo *Candidates) Get(ctx context.Context, id string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := repo.db.WithContext(ctx).First(&candidate, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, storeError("candidates.get", err)
	}
	return &candidate, nil
}

// Update merges the patch into the stored candidate and bumps updatedAt. Stage is ignored here.
func (repo *Candidates) Update(ctx context.Context, id string, patch models.CandidatePatch) (*models.Candidate, error) {
	var updated *models.Candidate
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidate, err := repo.WithTx(tx).Get(ctx, id)
		if err != nil {
			return err
		}
		if candidate == nil {
			return &models.NotFoundError{Entity: "candidate", ID: id}
		}
		patch.Apply(candidate)
		candidate.UpdatedAt = time.Now().UTC()
		if err = tx.Save(candidate).Error; err != nil {
			return err
		}
		updated = candidate
		return nil
	})
	if err != nil {
		return nil, storeError("candidates.update", err)
	}
	return updated, nil
}

func (repo *Candidates) UpdateStage(ctx context.Context, id string, stage models.Stage, at time.Time) error {
	res := repo.db.WithContext(ctx).Model(&models.Candidate{}).Where("id = ?", id).
		Updates(map[string]any{"stage": stage, "updated_at": at})
	if res.Error != nil {
		return storeError("candidates.update_stage", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "candidate", ID: id}
	}
	return nil
}

func (repo *Candidates) Delete(ctx context.Context, id string) error {
	res := repo.db.WithContext(ctx).Delete(&models.Candidate{}, "id = ?", id)
	if res.Error != nil {
		return storeError("candidates.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "candidate", ID: id}
	}
	return nil
}

// All returns every candidate, newest application first.
func (repo *Candidates) All(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := repo.db.WithContext(ctx).Order("applied_at DESC").Find(&candidates).Error; err != nil {
		return nil, storeError("candidates.all", err)
	}
	return candidates, nil
}

func (repo *Candidates) BulkAdd(ctx context.Context, candidates []models.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}
	for i := range candidates {
		if candidates[i].ID == "" {
			candidates[i].ID = "candidate-" + uuid.NewString()
		}
		if candidates[i].Notes == nil {
			candidates[i].Notes = []models.Note{}
		}
	}
	return storeError("candidates.bulk_add", repo.db.WithContext(ctx).CreateInBatches(candidates, 100).Error)
}

type CandidateChange struct {
	ID    string
	Patch models.CandidatePatch
}

// BulkUpdate applies every change or none of them.
func (repo *Candidates) BulkUpdate(ctx context.Context, changes []CandidateChange) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidates := repo.WithTx(tx)
		for _, change := range changes {
			if _, err := candidates.Update(ctx, change.ID, change.Patch); err != nil {
				return err
			}
		}
		return nil
	})
	return storeError("candidates.bulk_update", err)
}

func (repo *Candidates) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.Candidate{}).Count(&count).Error; err != nil {
		return 0, storeError("candidates.count", err)
	}
	return count, nil
}
