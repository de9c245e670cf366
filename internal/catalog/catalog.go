// Package catalog holds the read-only set of published jobs.
package catalog

import (
	"strconv"

	"github.com/jonathan/jobboard/internal/types"
)

// Catalog is an immutable, ordered collection of jobs.
// It is safe for concurrent use because nothing mutates it after construction.
type Catalog struct {
	jobs []types.Job
	byID map[int]int
}

// New builds a catalog from jobs, keeping their order. Jobs are deep-copied so
// later changes to the input do not leak in. A duplicate id keeps the first job.
func New(jobs []types.Job) *Catalog {
	c := &Catalog{
		jobs: make([]types.Job, 0, len(jobs)),
		byID: make(map[int]int, len(jobs)),
	}
	for _, job := range jobs {
		if _, exists := c.byID[job.ID]; exists {
			continue
		}
		c.byID[job.ID] = len(c.jobs)
		c.jobs = append(c.jobs, copyJob(job))
	}
	return c
}

// Default returns the catalog of listings shipped with the site.
func Default() *Catalog {
	return New(defaultJobs)
}

// All returns a copy of every job in catalog order.
func (c *Catalog) All() []types.Job {
	out := make([]types.Job, len(c.jobs))
	for i, job := range c.jobs {
		out[i] = copyJob(job)
	}
	return out
}

// Len returns the number of jobs.
func (c *Catalog) Len() int {
	return len(c.jobs)
}

// Get returns the job with the given id.
func (c *Catalog) Get(id int) (types.Job, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return types.Job{}, false
	}
	return copyJob(c.jobs[idx]), true
}

// Lookup resolves a job id in its string form, as it arrives from a URL or form.
func (c *Catalog) Lookup(id string) (types.Job, bool) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return types.Job{}, false
	}
	return c.Get(n)
}

func copyJob(job types.Job) types.Job {
	job.Responsibilities = append([]string(nil), job.Responsibilities...)
	job.Qualifications = append([]string(nil), job.Qualifications...)
	return job
}
