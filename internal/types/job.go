// Package types provides type definitions for the records and wire envelopes used throughout the job board.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobType is the employment category of a job.
type JobType string

// Employment categories. JobTypeAny is the filter sentinel and never appears on a record.
const (
	JobTypeFullTime JobType = "Full-time"
	JobTypePartTime JobType = "Part-time"
	JobTypeContract JobType = "Contract"
	JobTypeAny      JobType = "All"
)

// JobTypes lists the categories a record can carry, in display order.
var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract}

// Valid reports whether t is one of the record categories.
func (t JobType) Valid() bool {
	for _, jt := range JobTypes {
		if t == jt {
			return true
		}
	}
	return false
}

// Job represents a published job listing.
// Salary is display text only; nothing does arithmetic on it.
type Job struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Type             JobType  `json:"type"`
	Salary           string   `json:"salary"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Qualifications   []string `json:"qualifications"`
}

// ParsedQuery is the structured form of a natural-language job search.
type ParsedQuery struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
}
