package models

type JobFilter struct {
	Search   string
	Status   JobStatus
	JobType  string
	Page     int
	PageSize int
}

type CandidateFilter struct {
	Search   string
	Stage    Stage
	JobID    string
	Page     int
	PageSize int
}

// Page is a filtered, optionally paginated result. Total is the filtered count before pagination.
type Page[T any] struct {
	Data     []T `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page,omitempty"`
	PageSize int `json:"pageSize,omitempty"`
}
