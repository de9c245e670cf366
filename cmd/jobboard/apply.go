package main

import (
	"fmt"
	"strconv"

	"github.com/jonathan/jobboard/internal/catalog"
	"github.com/jonathan/jobboard/internal/observability"
	"github.com/jonathan/jobboard/internal/types"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <job-id>",
	Short: "Apply to a listed job",
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,
}

var (
	applyName       string
	applyEmail      string
	applyResumeFile string
)

func init() {
	applyCmd.Flags().StringVar(&applyName, "name", "", "Full name (required)")
	applyCmd.Flags().StringVar(&applyEmail, "email", "", "Contact email (required)")
	applyCmd.Flags().StringVar(&applyResumeFile, "resume", "", "Path to the resume text file (required)")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	job, ok := catalog.Default().Lookup(args[0])
	if !ok {
		return fmt.Errorf("job not found: %s", args[0])
	}

	resume, err := readFile(applyResumeFile, "resume")
	if err != nil {
		return err
	}

	app := &types.Application{
		JobID:  strconv.Itoa(job.ID),
		Name:   applyName,
		Email:  applyEmail,
		Resume: resume,
	}
	if err := app.Validate(); err != nil {
		return fmt.Errorf("invalid application: %w", err)
	}

	c, err := newGatewayClient()
	if err != nil {
		return err
	}
	ack, err := c.SubmitApplication(cmd.Context(), app)
	if err != nil {
		return fmt.Errorf("application was not submitted, please try again: %w", err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintAck(fmt.Sprintf("Application for %s at %s", job.Title, job.Company), ack)
	return nil
}
