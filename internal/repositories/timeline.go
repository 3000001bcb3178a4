package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"gorm.io/gorm"
)

// Timeline is append-only: entries are never updated.
type Timeline struct {
	db *gorm.DB
}

func NewTimelineRepository(db *gorm.DB) *Timeline {
	return &Timeline{db: db}
}

func (repo *Timeline) WithTx(tx *gorm.DB) *Timeline {
	return &Timeline{db: tx}
}

func (repo *Timeline) Add(ctx context.Context, entry *models.TimelineEntry) error {
	if entry.ID == "" {
		entry.ID = "timeline-" + uuid.NewString()
	}
	return storeError("timeline.add", repo.db.WithContext(ctx).Create(entry).Error)
}

func (repo *Timeline) BulkAdd(ctx context.Context, entries []models.TimelineEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return storeError("timeline.bulk_add", repo.db.WithContext(ctx).CreateInBatches(entries, 100).Error)
}

// ByCandidate returns the entries of one candidate in insertion order by date.
func (repo *Timeline) ByCandidate(ctx context.Context, candidateID string) ([]models.TimelineEntry, error) {
	entries := make([]models.TimelineEntry, 0)
	if err := repo.db.WithContext(ctx).Where("candidate_id = ?", candidateID).
		Order("date ASC").Order("rowid ASC").Find(&entries).Error; err != nil {
		return nil, storeError("timeline.by_candidate", err)
	}
	return entries, nil
}

func (repo *Timeline) DeleteByCandidate(ctx context.Context, candidateID string) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&models.TimelineEntry{}, "candidate_id = ?", candidateID)
	return res.RowsAffected, storeError("timeline.delete_by_candidate", res.Error)
}

func (repo *Timeline) CountByCandidate(ctx context.Context, candidateID string) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.TimelineEntry{}).
		Where("candidate_id = ?", candidateID).Count(&count).Error; err != nil {
		return 0, storeError("timeline.count", err)
	}
	return count, nil
}
