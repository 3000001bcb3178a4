package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"gorm.io/gorm"
)

// Responses stores immutable assessment submissions.
type Responses struct {
	db *gorm.DB
}

func NewResponsesRepository(db *gorm.DB) *Responses {
	return &Responses{db: db}
}

func (repo *Responses) WithTx(tx *gorm.DB) *Responses {
	return &Responses{db: tx}
}

func (repo *Responses) Add(ctx context.Context, response *models.AssessmentResponse) error {
	if response.ID == "" {
		response.ID = "response-" + uuid.NewString()
	}
	return storeError("responses.add", repo.db.WithContext(ctx).Create(response).Error)
}

func (repo *Responses) BulkAdd(ctx context.Context, responses []models.AssessmentResponse) error {
	if len(responses) == 0 {
		return nil
	}
	return storeError("responses.bulk_add", repo.db.WithContext(ctx).CreateInBatches(responses, 100).Error)
}

// ByAssessment returns the submissions of one assessment, newest first.
func (repo *Responses) ByAssessment(ctx context.Context, assessmentID string) ([]models.AssessmentResponse, error) {
	responses := make([]models.AssessmentResponse, 0)
	if err := repo.db.WithContext(ctx).Where("assessment_id = ?", assessmentID).
		Order("submitted_at DESC").Find(&responses).Error; err != nil {
		return nil, storeError("responses.by_assessment", err)
	}
	return responses, nil
}

func (repo *Responses) DeleteByAssessment(ctx context.Context, assessmentID string) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&models.AssessmentResponse{}, "assessment_id = ?", assessmentID)
	return res.RowsAffected, storeError("responses.delete_by_assessment", res.Error)
}

// CountAnsweredAssessments counts assessments that received at least one submission.
func (repo *Responses) CountAnsweredAssessments(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.AssessmentResponse{}).
		Distinct("assessment_id").Count(&count).Error; err != nil {
		return 0, storeError("responses.count_answered", err)
	}
	return count, nil
}
