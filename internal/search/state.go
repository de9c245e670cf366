package search

import (
	"context"

	"github.com/jonathan/jobboard/internal/types"
)

// QueryParser turns a natural-language phrase into filter terms.
// Implementations never fail; they fall back to a deterministic result.
type QueryParser interface {
	ParseSearchQuery(ctx context.Context, query string) types.ParsedQuery
}

// State is the filter state of one browsing session.
type State struct {
	Criteria
	NaturalQuery string `json:"naturalQuery"`
}

// NewState returns a state that matches every job.
func NewState() *State {
	return &State{Criteria: Criteria{Type: types.JobTypeAny}}
}

// Clear resets every term, including the natural query.
func (s *State) Clear() {
	*s = *NewState()
}

// ApplyParsed replaces keyword and location together. The type selector is kept.
func (s *State) ApplyParsed(q types.ParsedQuery) {
	next := s.Criteria
	next.Keyword = q.Keywords
	next.Location = q.Location
	s.Criteria = next
}

// ApplyNatural parses the session's natural query and applies the result.
// It does nothing when the natural query is empty.
func (s *State) ApplyNatural(ctx context.Context, p QueryParser) {
	if s.NaturalQuery == "" {
		return
	}
	s.ApplyParsed(p.ParseSearchQuery(ctx, s.NaturalQuery))
}

// Results filters jobs with the session's current terms.
func (s *State) Results(jobs []types.Job) []types.Job {
	return Filter(jobs, s.Criteria)
}
