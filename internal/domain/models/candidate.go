package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Stage string

const (
	StageApplied   Stage = "applied"
	StageScreening Stage = "screening"
	StageInterview Stage = "interview"
	StageOffer     Stage = "offer"
	StageRejected  Stage = "rejected"
	StageHired     Stage = "hired"
)

var Stages = []Stage{StageApplied, StageScreening, StageInterview, StageOffer, StageRejected, StageHired}

func ParseStage(s string) (Stage, error) {
	for _, stage := range Stages {
		if string(stage) == s {
			return stage, nil
		}
	}
	return "", &ValidationError{Field: "stage", Message: fmt.Sprintf("unknown stage %q", s)}
}

type Note struct {
	Text      string    `json:"text" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

type Candidate struct {
	ID                string     `json:"id" gorm:"primaryKey"`
	Name              string     `json:"name"`
	Email             string     `json:"email" gorm:"index"`
	Stage             Stage      `json:"stage" gorm:"index"`
	JobID             string     `json:"jobId" gorm:"index"`
	AppliedAt         time.Time  `json:"appliedAt" gorm:"index"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	Notes             []Note     `json:"notes" gorm:"serializer:json"`
	PreviousCompany   string     `json:"previousCompany"`
	PreviousRole      string     `json:"previousRole"`
	YearsOfExperience int        `json:"yearsOfExperience"`
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty"`
	ProfilePicture    string     `json:"profilePicture"`
}

// CandidateDraft is the payload of a new application.
type CandidateDraft struct {
	Name              string     `json:"name" validate:"required,notblank,max=200"`
	Email             string     `json:"email" validate:"required,email"`
	JobID             string     `json:"jobId" validate:"required"`
	PreviousCompany   string     `json:"previousCompany"`
	PreviousRole      string     `json:"previousRole"`
	YearsOfExperience int        `json:"yearsOfExperience" validate:"gte=0,lte=80"`
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty"`
	ProfilePicture    string     `json:"profilePicture"`
}

// NewCandidate builds a candidate in the applied stage with an empty notes list.
func NewCandidate(draft CandidateDraft, now time.Time) Candidate {
	return Candidate{
		ID:                "candidate-" + uuid.NewString(),
		Name:              strings.TrimSpace(draft.Name),
		Email:             strings.TrimSpace(draft.Email),
		Stage:             StageApplied,
		JobID:             draft.JobID,
		AppliedAt:         now,
		UpdatedAt:         now,
		Notes:             []Note{},
		PreviousCompany:   draft.PreviousCompany,
		PreviousRole:      draft.PreviousRole,
		YearsOfExperience: draft.YearsOfExperience,
		DateOfBirth:       draft.DateOfBirth,
		ProfilePicture:    draft.ProfilePicture,
	}
}

// CandidatePatch is a partial update. Notes, when present, replace the whole list.
// A Stage change is routed through the status update so that the timeline stays complete.
type CandidatePatch struct {
	Name              *string    `json:"name,omitempty" validate:"omitempty,notblank,max=200"`
	Email             *string    `json:"email,omitempty" validate:"omitempty,email"`
	Stage             *Stage     `json:"stage,omitempty"`
	JobID             *string    `json:"jobId,omitempty"`
	Notes             *[]Note    `json:"notes,omitempty" validate:"omitempty,dive"`
	PreviousCompany   *string    `json:"previousCompany,omitempty"`
	PreviousRole      *string    `json:"previousRole,omitempty"`
	YearsOfExperience *int       `json:"yearsOfExperience,omitempty" validate:"omitempty,gte=0,lte=80"`
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty"`
	ProfilePicture    *string    `json:"profilePicture,omitempty"`
}

// Apply writes every field except Stage.
func (p CandidatePatch) Apply(c *Candidate) {
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		c.Email = strings.TrimSpace(*p.Email)
	}
	if p.JobID != nil {
		c.JobID = *p.JobID
	}
	if p.Notes != nil {
		c.Notes = append([]Note{}, *p.Notes...)
	}
	if p.PreviousCompany != nil {
		c.PreviousCompany = *p.PreviousCompany
	}
	if p.PreviousRole != nil {
		c.PreviousRole = *p.PreviousRole
	}
	if p.YearsOfExperience != nil {
		c.YearsOfExperience = *p.YearsOfExperience
	}
	if p.DateOfBirth != nil {
		dob := *p.DateOfBirth
		c.DateOfBirth = &dob
	}
	if p.ProfilePicture != nil {
		c.ProfilePicture = *p.ProfilePicture
	}
}

func (p CandidatePatch) IsEmpty() bool {
	return p == CandidatePatch{}
}

type TimelineEntry struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CandidateID string    `json:"candidateId" gorm:"index"`
	Stage       Stage     `json:"stage"`
	Date        time.Time `json:"date" gorm:"index"`
	Note        string    `json:"note"`
}

func NewTimelineEntry(candidateID string, stage Stage, at time.Time) TimelineEntry {
	note := "Moved to " + string(stage)
	if stage == StageApplied {
		note = "Application submitted"
	}
	return TimelineEntry{
		ID:          "timeline-" + uuid.NewString(),
		CandidateID: candidateID,
		Stage:       stage,
		Date:        at,
		Note:        note,
	}
}

type CandidateStatistics struct {
	TotalCandidates int           `json:"totalCandidates"`
	NewCandidates   int           `json:"newCandidates"`
	StageCounts     map[Stage]int `json:"stageCounts"`
}

type ApplicationStatistics struct {
	TotalApplications int `json:"totalApplications"`
	Applied           int `json:"applied"`
	Screening         int `json:"screening"`
	Interview         int `json:"interview"`
	Offer             int `json:"offer"`
	Rejected          int `json:"rejected"`
	Hired             int `json:"hired"`
}

type CandidatesPerJob struct {
	Name       string `json:"name"`
	Candidates int    `json:"candidates"`
}
