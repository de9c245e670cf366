package types

import (
	"context"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Application is a candidate's application to a listed job.
type Application struct {
	JobID  string `json:"jobId" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Resume string `json:"resume" validate:"required"`
}

// JobSubmission is an employer's job posting awaiting approval.
// Responsibilities and Qualifications stay newline-delimited until publication.
type JobSubmission struct {
	JobTitle         string  `json:"jobTitle" validate:"required"`
	CompanyName      string  `json:"companyName" validate:"required"`
	Location         string  `json:"location" validate:"required"`
	JobType          JobType `json:"jobType" validate:"required,oneof=Full-time Part-time Contract"`
	SalaryRange      string  `json:"salaryRange" validate:"required"`
	JobDescription   string  `json:"jobDescription" validate:"required"`
	Responsibilities string  `json:"responsibilities" validate:"required"`
	Qualifications   string  `json:"qualifications" validate:"required"`
	ContactEmail     string  `json:"contactEmail" validate:"required,email"`
}

// Type implements Request.
func (a *Application) Type() RequestType { return TypeApplication }

// Validate validates the Application using the validator.
func (a *Application) Validate() error { return validate.Struct(a) }

// Dispatch implements Request.
func (a *Application) Dispatch(ctx context.Context, d Dispatcher) (any, error) {
	return d.Application(ctx, a)
}

// Type implements Request.
func (s *JobSubmission) Type() RequestType { return TypeJobSubmission }

// Validate validates the JobSubmission using the validator.
func (s *JobSubmission) Validate() error { return validate.Struct(s) }

// Dispatch implements Request.
func (s *JobSubmission) Dispatch(ctx context.Context, d Dispatcher) (any, error) {
	return d.JobSubmission(ctx, s)
}
