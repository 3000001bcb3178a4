package models

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

type QuestionType string

const (
	QuestionSingleChoice QuestionType = "single-choice"
	QuestionMultiChoice  QuestionType = "multi-choice"
	QuestionShortText    QuestionType = "short-text"
	QuestionLongText     QuestionType = "long-text"
	QuestionNumeric      QuestionType = "numeric"
	QuestionFileUpload   QuestionType = "file-upload"
)

type Validation struct {
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
}

type Question struct {
	ID         string       `json:"id" validate:"required"`
	Type       QuestionType `json:"type" validate:"required,oneof=single-choice multi-choice short-text long-text numeric file-upload"`
	Question   string       `json:"question" validate:"required"`
	Required   bool         `json:"required"`
	Options    []string     `json:"options,omitempty"`
	Validation *Validation  `json:"validation,omitempty"`
}

type Section struct {
	ID        string     `json:"id" validate:"required"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions" validate:"dive"`
}

type Assessment struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	JobID       string    `json:"jobId" gorm:"uniqueIndex" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections" gorm:"serializer:json" validate:"dive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (a Assessment) Questions() []Question {
	return lo.FlatMap(a.Sections, func(s Section, _ int) []Question { return s.Questions })
}

// Score returns the share of questions, 0..100, whose answer is acceptable.
// An unanswered optional question counts as acceptable; an unanswered required one does not.
func (a Assessment) Score(answers map[string]any) int {
	questions := a.Questions()
	if len(questions) == 0 {
		return 0
	}

	accepted := lo.CountBy(questions, func(q Question) bool {
		answer, ok := answers[q.ID]
		if !ok || isBlank(answer) {
			return !q.Required
		}
		return q.Accepts(answer)
	})
	return int(math.Round(float64(accepted) * 100 / float64(len(questions))))
}

// Accepts reports whether a non-blank answer satisfies the question's type and validation.
func (q Question) Accepts(answer any) bool {
	switch q.Type {
	case QuestionSingleChoice:
		choice, ok := answer.(string)
		return ok && q.allowsOption(choice)
	case QuestionMultiChoice:
		choices, ok := toStrings(answer)
		if !ok || len(choices) == 0 {
			return false
		}
		return lo.EveryBy(choices, q.allowsOption)
	case QuestionShortText, QuestionLongText:
		text, ok := answer.(string)
		return ok && q.Validation.acceptsLength(len([]rune(strings.TrimSpace(text))))
	case QuestionNumeric:
		number, ok := toFloat(answer)
		return ok && q.Validation.acceptsNumber(number)
	case QuestionFileUpload:
		name, ok := answer.(string)
		return ok && strings.TrimSpace(name) != ""
	default:
		return false
	}
}

func (q Question) allowsOption(choice string) bool {
	return len(q.Options) == 0 || lo.Contains(q.Options, choice)
}

func (v *Validation) acceptsLength(n int) bool {
	if v == nil {
		return n > 0
	}
	if v.MinLength != nil && n < *v.MinLength {
		return false
	}
	if v.MaxLength != nil && n > *v.MaxLength {
		return false
	}
	return true
}

func (v *Validation) acceptsNumber(x float64) bool {
	if v == nil {
		return true
	}
	if v.Min != nil && x < *v.Min {
		return false
	}
	if v.Max != nil && x > *v.Max {
		return false
	}
	return true
}

func isBlank(answer any) bool {
	switch value := answer.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(value) == ""
	case []any:
		return len(value) == 0
	case []string:
		return len(value) == 0
	}
	return false
}

func toStrings(answer any) ([]string, bool) {
	switch value := answer.(type) {
	case []string:
		return value, true
	case []any:
		result := make([]string, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			result = append(result, s)
		}
		return result, true
	}
	return nil, false
}

func toFloat(answer any) (float64, bool) {
	switch value := answer.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		return f, err == nil
	}
	return 0, false
}

type AssessmentResponse struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	AssessmentID string         `json:"assessmentId" gorm:"index"`
	CandidateID  string         `json:"candidateId" gorm:"index"`
	Score        int            `json:"score"`
	Responses    map[string]any `json:"responses" gorm:"serializer:json"`
	SubmittedAt  time.Time      `json:"submittedAt"`
}

// Submission is the body of an assessment submit call.
type Submission struct {
	CandidateID string         `json:"candidateId" validate:"required"`
	Responses   map[string]any `json:"responses"`
}

type AssessmentStatistics struct {
	TotalAssessments     int `json:"totalAssessments"`
	CompletedAssessments int `json:"completedAssessments"`
	PendingAssessments   int `json:"pendingAssessments"`
}

// ScoreSummary aggregates the responses of one assessment.
type ScoreSummary struct {
	Total   int            `json:"total"`
	Average float64        `json:"average"`
	Above70 int            `json:"above70"`
	Above60 int            `json:"above60"`
	Buckets map[string]int `json:"buckets"`
	Passed  int            `json:"passed"`
	Failed  int            `json:"failed"`
}

const PassingScore = 60

// Summarize computes totals, average, percentage shares at or above 70 and 60,
// ten-point score buckets and pass/fail counts.
func Summarize(responses []AssessmentResponse) ScoreSummary {
	summary := ScoreSummary{
		Total:   len(responses),
		Buckets: map[string]int{"90-100": 0, "80-89": 0, "70-79": 0, "60-69": 0, "50-59": 0, "<50": 0},
	}
	if len(responses) == 0 {
		return summary
	}

	above70, above60 := 0, 0
	for _, r := range responses {
		summary.Buckets[scoreBucket(r.Score)]++
		if r.Score >= 70 {
			above70++
		}
		if r.Score >= PassingScore {
			above60++
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	total := float64(len(responses))
	average := float64(lo.SumBy(responses, func(r AssessmentResponse) int { return r.Score })) / total
	summary.Average = math.Round(average*10) / 10
	summary.Above70 = int(math.Round(float64(above70) * 100 / total))
	summary.Above60 = int(math.Round(float64(above60) * 100 / total))
	return summary
}

func scoreBucket(score int) string {
	switch {
	case score >= 90:
		return "90-100"
	case score >= 80:
		return "80-89"
	case score >= 70:
		return "70-79"
	case score >= 60:
		return "60-69"
	case score >= 50:
		return "50-59"
	default:
		return "<50"
	}
}
