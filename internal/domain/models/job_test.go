package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewJob_Defaults(t *testing.T) {
	assert := assert.New(t)

	job := NewJob(JobDraft{Title: "  Senior  Go Engineer ", Tags: []string{"go", " go", "", "backend"}}, 7)

	assert.True(strings.HasPrefix(job.ID, "job-"))
	assert.True(strings.HasPrefix(job.Slug, "senior-go-engineer-"))
	assert.Equal("Senior  Go Engineer", job.Title)
	assert.Equal(JobStatusActive, job.Status)
	assert.Equal(7, job.Order)
	assert.Equal([]string{"go", "backend"}, job.Tags)
	assert.False(job.CreatedAt.IsZero())
}

func Test_JobPatch_AppliesOnlySetFields(t *testing.T) {
	job := Job{Title: "Designer", Status: JobStatusActive, Location: "Remote", Order: 3}
	archived := JobStatusArchived
	tags := []string{"ux", "ux"}

	JobPatch{Status: &archived, Tags: &tags}.Apply(&job)

	assert.Equal(t, Job{Title: "Designer", Status: JobStatusArchived, Location: "Remote", Order: 3, Tags: []string{"ux"}}, job)
}

func Test_Validate_ReportsJsonFieldName(t *testing.T) {
	err := Validate(JobDraft{Title: ""})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "title", validation.Field)

	status := JobStatus("paused")
	assert.Error(t, Validate(JobPatch{Status: &status}))
	assert.NoError(t, Validate(JobDraft{Title: "Recruiter"}))
}

func Test_Validate_RejectsBlankTitles(t *testing.T) {
	blank := "   "
	var validation *ValidationError

	require.ErrorAs(t, Validate(JobPatch{Title: &blank}), &validation)
	assert.Equal(t, "title", validation.Field)
	assert.Error(t, Validate(JobDraft{Title: "\t \n"}))

	empty := ""
	assert.Error(t, Validate(JobPatch{Title: &empty}))

	title := " Recruiter "
	assert.NoError(t, Validate(JobPatch{Title: &title}))
}
