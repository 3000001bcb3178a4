package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusArchived JobStatus = "archived"
)

type Job struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Slug        string    `json:"slug" gorm:"index"`
	Title       string    `json:"title"`
	Status      JobStatus `json:"status" gorm:"index"`
	Order       int       `json:"order" gorm:"column:sort_order;index"`
	JobType     string    `json:"jobType" gorm:"index"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"createdAt"`
}

// JobDraft holds the fields a caller supplies when creating a job.
type JobDraft struct {
	Title       string    `json:"title" validate:"required,notblank,max=200"`
	Status      JobStatus `json:"status" validate:"omitempty,oneof=active archived"`
	JobType     string    `json:"jobType"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags" validate:"dive,required"`
}

// NewJob builds a job placed at the given order. Status defaults to active.
func NewJob(draft JobDraft, order int) Job {
	status := draft.Status
	if status == "" {
		status = JobStatusActive
	}
	return Job{
		ID:          "job-" + uuid.NewString(),
		Slug:        Slugify(draft.Title) + "-" + uuid.NewString()[:4],
		Title:       strings.TrimSpace(draft.Title),
		Status:      status,
		Order:       order,
		JobType:     draft.JobType,
		Location:    draft.Location,
		Description: draft.Description,
		Tags:        NormalizeTags(draft.Tags),
		CreatedAt:   time.Now().UTC(),
	}
}

var whitespace = regexp.MustCompile(`\s+`)

func Slugify(title string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
}

// NormalizeTags trims tags and drops empties and duplicates, keeping first occurrence order.
func NormalizeTags(tags []string) []string {
	trimmed := lo.FilterMap(tags, func(tag string, _ int) (string, bool) {
		tag = strings.TrimSpace(tag)
		return tag, tag != ""
	})
	return lo.Uniq(trimmed)
}

// JobPatch is a partial update. Nil fields are left untouched.
// Order is not patchable: it only changes through a reorder.
type JobPatch struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,notblank,max=200"`
	Status      *JobStatus `json:"status,omitempty" validate:"omitempty,oneof=active archived"`
	JobType     *string    `json:"jobType,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Description *string    `json:"description,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
}

func (p JobPatch) Apply(job *Job) {
	if p.Title != nil {
		job.Title = strings.TrimSpace(*p.Title)
	}
	if p.Status != nil {
		job.Status = *p.Status
	}
	if p.JobType != nil {
		job.JobType = *p.JobType
	}
	if p.Location != nil {
		job.Location = *p.Location
	}
	if p.Description != nil {
		job.Description = *p.Description
	}
	if p.Tags != nil {
		job.Tags = NormalizeTags(*p.Tags)
	}
}

// JobOrderChange is one entry of a bulk order update.
type JobOrderChange struct {
	ID    string
	Order int
}

type JobStatistics struct {
	TotalJobs    int `json:"totalJobs"`
	ActiveJobs   int `json:"activeJobs"`
	ArchivedJobs int `json:"archivedJobs"`
}
