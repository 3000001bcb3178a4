package talentflow

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/maxaizer/talentflow/internal/domain/models"
)

type JobsQuery struct {
	Search   string
	Status   models.JobStatus
	JobType  string
	Page     int
	PageSize int
}

func (q JobsQuery) Validate() error {
	if q.Page < 0 {
		return fmt.Errorf("page must be non-negative")
	}
	if q.PageSize < 0 || q.PageSize > 100 {
		return fmt.Errorf("page size must be between 0 and 100")
	}
	return nil
}

func (q JobsQuery) ToUrlParams() url.Values {
	params := url.Values{}
	if q.Search != "" {
		params.Add("search", q.Search)
	}
	if q.Status != "" {
		params.Add("status", string(q.Status))
	}
	if q.JobType != "" {
		params.Add("jobType", q.JobType)
	}
	if q.Page > 0 {
		params.Add("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		params.Add("pageSize", strconv.Itoa(q.PageSize))
	}
	return params
}

// CandidatesQuery paginates only when both Page and PageSize are set.
type CandidatesQuery struct {
	Search   string
	Stage    models.Stage
	JobID    string
	Page     int
	PageSize int
}

func (q CandidatesQuery) ToUrlParams() url.Values {
	params := url.Values{}
	if q.Search != "" {
		params.Add("search", q.Search)
	}
	if q.Stage != "" {
		params.Add("stage", string(q.Stage))
	}
	if q.JobID != "" {
		params.Add("jobId", q.JobID)
	}
	if q.Page > 0 && q.PageSize > 0 {
		params.Add("page", strconv.Itoa(q.Page))
		params.Add("pageSize", strconv.Itoa(q.PageSize))
	}
	return params
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
