package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/maxaizer/talentflow/internal/repositories/seed"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		// a missing row is reported as (nil, nil) by the repositories, not as an error
		Logger: logger.New(log.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite has a single writer; one connection also keeps ":memory:" databases shared
	sqlDB.SetMaxOpenConns(1)

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	entities := []struct {
		name  string
		model any
	}{
		{"Job", models.Job{}},
		{"Candidate", models.Candidate{}},
		{"TimelineEntry", models.TimelineEntry{}},
		{"Assessment", models.Assessment{}},
		{"AssessmentResponse", models.AssessmentResponse{}},
	}

	for _, entity := range entities {
		if err := c.DB.AutoMigrate(entity.model); err != nil {
			return fmt.Errorf("failed to migrate %s entity: %w", entity.name, err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_candidates_job_stage ON candidates (job_id, stage)",
		"CREATE INDEX IF NOT EXISTS idx_timeline_candidate_date ON timeline_entries (candidate_id, date)",
	}
	for _, statement := range indexes {
		if err := c.DB.Exec(statement).Error; err != nil {
			return fmt.Errorf("failed to create secondary indexes: %w", err)
		}
	}

	return nil
}

// Seed populates every empty table from the dataset. Tables that already hold rows are left alone,
// so calling it on each launch never duplicates data.
func (c *DbContext) Seed(ctx context.Context, data seed.Dataset) error {
	db := c.DB.WithContext(ctx)

	seeders := []struct {
		name     string
		model    any
		populate func(tx *gorm.DB) error
	}{
		{"jobs", models.Job{}, func(tx *gorm.DB) error {
			return NewJobsRepository(tx).BulkAdd(ctx, data.Jobs)
		}},
		{"candidates", models.Candidate{}, func(tx *gorm.DB) error {
			if err := NewCandidatesRepository(tx).BulkAdd(ctx, data.Candidates); err != nil {
				return err
			}
			return NewTimelineRepository(tx).BulkAdd(ctx, seed.Timeline(data.Candidates))
		}},
		{"assessments", models.Assessment{}, func(tx *gorm.DB) error {
			return NewAssessmentsRepository(tx).BulkAdd(ctx, data.Assessments)
		}},
		{"assessment responses", models.AssessmentResponse{}, func(tx *gorm.DB) error {
			return NewResponsesRepository(tx).BulkAdd(ctx, data.Responses)
		}},
	}

	for _, seeder := range seeders {
		var count int64
		if err := db.Model(seeder.model).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count %s: %w", seeder.name, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Transaction(seeder.populate); err != nil {
			return fmt.Errorf("failed to populate %s: %w", seeder.name, err)
		}
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
