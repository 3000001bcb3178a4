// Package query filters, searches, sorts and paginates full store scans in memory.
// Inputs are never modified; every result is a fresh slice.
package query

import (
	"sort"
	"strings"

	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/samber/lo"
)

// AllJobTypes is the job type filter value that disables the filter.
const AllJobTypes = "All"

// Jobs returns the jobs matching the filter sorted by order ascending.
func Jobs(all []models.Job, filter models.JobFilter) models.Page[models.Job] {
	sorted := append([]models.Job(nil), all...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := lo.Filter(sorted, func(job models.Job, _ int) bool {
		if filter.Status != "" && job.Status != filter.Status {
			return false
		}
		if filter.JobType != "" && filter.JobType != AllJobTypes && job.JobType != filter.JobType {
			return false
		}
		if term == "" {
			return true
		}
		return contains(job.Title, term) || lo.SomeBy(job.Tags, func(tag string) bool { return contains(tag, term) })
	})

	return paginate(matched, filter.Page, filter.PageSize)
}

// Candidates returns the candidates matching the filter, newest application first.
func Candidates(all []models.Candidate, filter models.CandidateFilter) models.Page[models.Candidate] {
	sorted := append([]models.Candidate(nil), all...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AppliedAt.After(sorted[j].AppliedAt)
	})

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := lo.Filter(sorted, func(c models.Candidate, _ int) bool {
		if filter.Stage != "" && c.Stage != filter.Stage {
			return false
		}
		if filter.JobID != "" && c.JobID != filter.JobID {
			return false
		}
		if term == "" {
			return true
		}
		return contains(c.Name, term) || contains(c.Email, term) ||
			contains(c.PreviousCompany, term) || contains(c.PreviousRole, term)
	})

	return paginate(matched, filter.Page, filter.PageSize)
}

func contains(field, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(field), lowerTerm)
}

// paginate slices one page out of items. Page numbers start at 1; without a positive page and
// page size everything is returned.
func paginate[T any](items []T, page, pageSize int) models.Page[T] {
	if page <= 0 || pageSize <= 0 {
		return models.Page[T]{Data: items, Total: len(items)}
	}

	// compare before multiplying so huge page numbers cannot overflow
	start := len(items)
	if page-1 <= len(items)/pageSize {
		start = min((page-1)*pageSize, len(items))
	}
	end := start + min(pageSize, len(items)-start)

	return models.Page[T]{
		Data:     items[start:end],
		Total:    len(items),
		Page:     page,
		PageSize: pageSize,
	}
}
