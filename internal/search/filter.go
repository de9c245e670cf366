// Package search filters the job catalog by keyword, location and employment type.
package search

import (
	"strings"

	"github.com/jonathan/jobboard/internal/types"
)

// Criteria are the three structured filter terms. The zero value matches every job.
// An empty Type is treated the same as types.JobTypeAny.
type Criteria struct {
	Keyword  string        `json:"keyword"`
	Location string        `json:"location"`
	Type     types.JobType `json:"type"`
}

// Active reports whether any term narrows the result.
func (c Criteria) Active() bool {
	return c.Keyword != "" || c.Location != "" || !c.anyType()
}

// Matches reports whether job satisfies every active term.
func (c Criteria) Matches(job types.Job) bool {
	return c.matchesKeyword(job) && c.matchesLocation(job) && c.matchesType(job)
}

func (c Criteria) matchesKeyword(job types.Job) bool {
	if c.Keyword == "" {
		return true
	}
	kw := strings.ToLower(c.Keyword)
	return strings.Contains(strings.ToLower(job.Title), kw) ||
		strings.Contains(strings.ToLower(job.Company), kw)
}

func (c Criteria) matchesLocation(job types.Job) bool {
	if c.Location == "" {
		return true
	}
	return strings.Contains(strings.ToLower(job.Location), strings.ToLower(c.Location))
}

func (c Criteria) matchesType(job types.Job) bool {
	return c.anyType() || job.Type == c.Type
}

func (c Criteria) anyType() bool {
	return c.Type == "" || c.Type == types.JobTypeAny
}

// Filter returns the jobs matching c, in their original order.
// The result is never nil.
func Filter(jobs []types.Job, c Criteria) []types.Job {
	out := make([]types.Job, 0, len(jobs))
	for _, job := range jobs {
		if c.Matches(job) {
			out = append(out, job)
		}
	}
	return out
}
