// Package seed holds the fixed dataset used to populate empty stores on first launch.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/maxaizer/talentflow/internal/domain/models"
)

//go:embed dataset.json
var dataset []byte

type Dataset struct {
	Jobs        []models.Job                `json:"jobs"`
	Candidates  []models.Candidate          `json:"candidates"`
	Assessments []models.Assessment         `json:"assessments"`
	Responses   []models.AssessmentResponse `json:"responses"`
}

// Default decodes the embedded dataset. Every call returns fresh slices.
func Default() (Dataset, error) {
	var data Dataset
	if err := json.Unmarshal(dataset, &data); err != nil {
		return Dataset{}, fmt.Errorf("failed to decode seed dataset: %w", err)
	}
	return data, nil
}

// Timeline derives the history of seeded candidates: the application itself and,
// for candidates past the first stage, the move to their current stage.
func Timeline(candidates []models.Candidate) []models.TimelineEntry {
	entries := make([]models.TimelineEntry, 0, len(candidates)*2)
	for _, c := range candidates {
		entries = append(entries, models.NewTimelineEntry(c.ID, models.StageApplied, c.AppliedAt))
		if c.Stage != models.StageApplied {
			entries = append(entries, models.NewTimelineEntry(c.ID, c.Stage, c.UpdatedAt))
		}
	}
	return entries
}
