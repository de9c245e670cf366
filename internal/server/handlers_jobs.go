package server

import (
	"net/http"

	"github.com/jonathan/jobboard/internal/search"
	"github.com/jonathan/jobboard/internal/types"
)

// JobListResponse is the body of GET /api/jobs.
type JobListResponse struct {
	Jobs          []types.Job `json:"jobs"`
	Count         int         `json:"count"`
	FiltersActive bool        `json:"filtersActive"`
}

// handleListJobs returns the catalog narrowed by the keyword, location and type query parameters.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := search.Criteria{
		Keyword:  q.Get("keyword"),
		Location: q.Get("location"),
		Type:     types.JobType(q.Get("type")),
	}

	jobs := search.Filter(s.catalog.All(), criteria)
	s.jsonResponse(w, http.StatusOK, JobListResponse{
		Jobs:          jobs,
		Count:         len(jobs),
		FiltersActive: criteria.Active(),
	})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	job, ok := s.catalog.Lookup(id)
	if !ok {
		s.errorResponse(w, r, &ErrJobNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}
