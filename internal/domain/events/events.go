package events

import (
	"github.com/maxaizer/talentflow/internal/domain/models"
)

var (
	CandidateStageChangedTopic = "CandidateStageChangedEvent"
	CandidateDeletedTopic      = "CandidateDeletedEvent"
	JobsReorderedTopic         = "JobsReorderedEvent"
	AssessmentSubmittedTopic   = "AssessmentSubmittedEvent"
)

type CandidateStageChanged struct {
	CandidateID string
	From        models.Stage
	To          models.Stage
}

type CandidateDeleted struct {
	CandidateID     string
	TimelineEntries int64
}

type JobsReordered struct {
	JobID     string
	FromOrder int
	ToOrder   int
}

type AssessmentSubmitted struct {
	AssessmentID string
	CandidateID  string
	Score        int
}
