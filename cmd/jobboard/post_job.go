package main

import (
	"fmt"

	"github.com/jonathan/jobboard/internal/observability"
	"github.com/jonathan/jobboard/internal/types"
	"github.com/spf13/cobra"
)

var postJobCmd = &cobra.Command{
	Use:   "post-job",
	Short: "Submit a job posting for approval",
	Long:  "Submit a job posting for approval. Responsibilities and qualifications are newline-delimited.",
	Args:  cobra.NoArgs,
	RunE:  runPostJob,
}

var postJob types.JobSubmission

var postJobType string

func init() {
	f := postJobCmd.Flags()
	f.StringVar(&postJob.JobTitle, "title", "", "Job title (required)")
	f.StringVar(&postJob.CompanyName, "company", "", "Company name (required)")
	f.StringVar(&postJob.Location, "location", "", "Location (required)")
	f.StringVar(&postJobType, "type", string(types.JobTypeFullTime), "Full-time, Part-time or Contract")
	f.StringVar(&postJob.SalaryRange, "salary", "", "Salary range (required)")
	f.StringVar(&postJob.JobDescription, "description", "", "Job description (required)")
	f.StringVar(&postJob.Responsibilities, "responsibilities", "", "Responsibilities, one per line (required)")
	f.StringVar(&postJob.Qualifications, "qualifications", "", "Qualifications, one per line (required)")
	f.StringVar(&postJob.ContactEmail, "contact-email", "", "Contact email (required)")
	rootCmd.AddCommand(postJobCmd)
}

func runPostJob(cmd *cobra.Command, _ []string) error {
	sub := postJob
	sub.JobType = types.JobType(postJobType)
	if err := sub.Validate(); err != nil {
		return fmt.Errorf("invalid job posting: %w", err)
	}

	c, err := newGatewayClient()
	if err != nil {
		return err
	}
	ack, err := c.SubmitJobPosting(cmd.Context(), &sub)
	if err != nil {
		return fmt.Errorf("job posting was not submitted, please try again: %w", err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintAck("Job posting", ack)
	return nil
}
