package talentflow

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/maxaizer/talentflow/internal/domain/models"
)

func (c *Client) ListJobs(ctx context.Context, query JobsQuery) (models.Page[models.Job], error) {
	if err := query.Validate(); err != nil {
		return models.Page[models.Job]{}, fmt.Errorf("invalid parameters: %w", err)
	}
	return decode[models.Page[models.Job]](c.sendRequest(ctx, http.MethodGet, withQuery("/jobs", query.ToUrlParams()), nil))
}

func (c *Client) GetJob(ctx context.Context, id string) (models.Job, error) {
	return decode[models.Job](c.sendRequest(ctx, http.MethodGet, "/jobs/"+url.PathEscape(id), nil))
}

func (c *Client) CreateJob(ctx context.Context, draft models.JobDraft) (models.Job, error) {
	return decode[models.Job](c.sendRequest(ctx, http.MethodPost, "/jobs", draft))
}

func (c *Client) UpdateJob(ctx context.Context, id string, patch models.JobPatch) (models.Job, error) {
	return decode[models.Job](c.sendRequest(ctx, http.MethodPatch, "/jobs/"+url.PathEscape(id), patch))
}

func (c *Client) ReorderJob(ctx context.Context, id string, fromOrder, toOrder int) (models.Job, error) {
	body := map[string]int{"fromOrder": fromOrder, "toOrder": toOrder}
	return decode[models.Job](c.sendRequest(ctx, http.MethodPatch, "/jobs/"+url.PathEscape(id)+"/reorder", body))
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	_, err := c.sendRequest(ctx, http.MethodDelete, "/jobs/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) JobStatistics(ctx context.Context) (models.JobStatistics, error) {
	return decode[models.JobStatistics](c.sendRequest(ctx, http.MethodGet, "/jobs/statistics", nil))
}
