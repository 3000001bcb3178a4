package talentflow

import (
	"context"
	"net/http"
	"net/url"

	"github.com/maxaizer/talentflow/internal/domain/models"
)

// responsesList is the envelope of the responses route.
type responsesList struct {
	Data []models.AssessmentResponse `json:"data"`
}

func (c *Client) ListAssessments(ctx context.Context, jobID string) (models.Page[models.Assessment], error) {
	params := url.Values{}
	if jobID != "" {
		params.Add("jobId", jobID)
	}
	return decode[models.Page[models.Assessment]](c.sendRequest(ctx, http.MethodGet, withQuery("/assessments", params), nil))
}

func (c *Client) GetAssessment(ctx context.Context, jobID string) (models.Assessment, error) {
	return decode[models.Assessment](c.sendRequest(ctx, http.MethodGet, "/assessments/"+url.PathEscape(jobID), nil))
}

func (c *Client) SaveAssessment(ctx context.Context, jobID string, assessment models.Assessment) (models.Assessment, error) {
	path := "/assessments/" + url.PathEscape(jobID)
	return decode[models.Assessment](c.sendRequest(ctx, http.MethodPut, path, assessment))
}

func (c *Client) SubmitAssessment(ctx context.Context, jobID string, submission models.Submission) (models.AssessmentResponse, error) {
	path := "/assessments/" + url.PathEscape(jobID) + "/submit"
	return decode[models.AssessmentResponse](c.sendRequest(ctx, http.MethodPost, path, submission))
}

func (c *Client) AssessmentResponses(ctx context.Context, assessmentID string) ([]models.AssessmentResponse, error) {
	path := "/assessments/" + url.PathEscape(assessmentID) + "/responses"
	list, err := decode[responsesList](c.sendRequest(ctx, http.MethodGet, path, nil))
	if err != nil {
		return nil, err
	}
	return list.Data, nil
}

func (c *Client) DeleteAssessment(ctx context.Context, assessmentID string) error {
	_, err := c.sendRequest(ctx, http.MethodDelete, "/assessments/"+url.PathEscape(assessmentID), nil)
	return err
}
