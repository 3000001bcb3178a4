package talentflow

import (
	"context"
	"net/http"
	"net/url"

	"github.com/maxaizer/talentflow/internal/domain/models"
)

func (c *Client) ListCandidates(ctx context.Context, query CandidatesQuery) (models.Page[models.Candidate], error) {
	path := withQuery("/candidates", query.ToUrlParams())
	return decode[models.Page[models.Candidate]](c.sendRequest(ctx, http.MethodGet, path, nil))
}

func (c *Client) GetCandidate(ctx context.Context, id string) (models.Candidate, error) {
	return decode[models.Candidate](c.sendRequest(ctx, http.MethodGet, "/candidates/"+url.PathEscape(id), nil))
}

func (c *Client) UpdateCandidate(ctx context.Context, id string, patch models.CandidatePatch) (models.Candidate, error) {
	return decode[models.Candidate](c.sendRequest(ctx, http.MethodPatch, "/candidates/"+url.PathEscape(id), patch))
}

func (c *Client) CandidateTimeline(ctx context.Context, id string) ([]models.TimelineEntry, error) {
	path := "/candidates/" + url.PathEscape(id) + "/timeline"
	return decode[[]models.TimelineEntry](c.sendRequest(ctx, http.MethodGet, path, nil))
}

func (c *Client) AddNote(ctx context.Context, id string, text string) (models.Candidate, error) {
	path := "/candidates/" + url.PathEscape(id) + "/notes"
	return decode[models.Candidate](c.sendRequest(ctx, http.MethodPost, path, map[string]string{"text": text}))
}

func (c *Client) CreateApplication(ctx context.Context, draft models.CandidateDraft) (models.Candidate, error) {
	return decode[models.Candidate](c.sendRequest(ctx, http.MethodPost, "/applications", draft))
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id string, stage models.Stage) (models.Candidate, error) {
	path := "/applications/" + url.PathEscape(id) + "/status"
	return decode[models.Candidate](c.sendRequest(ctx, http.MethodPatch, path, map[string]string{"status": string(stage)}))
}

func (c *Client) DeleteApplication(ctx context.Context, id string) error {
	_, err := c.sendRequest(ctx, http.MethodDelete, "/applications/"+url.PathEscape(id), nil)
	return err
}
