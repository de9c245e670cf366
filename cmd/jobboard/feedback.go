package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobboard/internal/feedback"
	"github.com/jonathan/jobboard/internal/observability"
	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Get AI feedback on a resume for a job description",
	Args:  cobra.NoArgs,
	RunE:  runFeedback,
}

var (
	feedbackResumeFile string
	feedbackJobFile    string
	feedbackHTML       bool
)

func init() {
	feedbackCmd.Flags().StringVarP(&feedbackResumeFile, "resume", "r", "", "Path to the resume text file (required)")
	feedbackCmd.Flags().StringVarP(&feedbackJobFile, "job", "j", "", "Path to the job description text file (required)")
	feedbackCmd.Flags().BoolVar(&feedbackHTML, "html", false, "Print the feedback as an HTML fragment")
	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(cmd *cobra.Command, _ []string) error {
	resume, err := readFile(feedbackResumeFile, "resume")
	if err != nil {
		return err
	}
	jobDescription, err := readFile(feedbackJobFile, "job")
	if err != nil {
		return err
	}
	if strings.TrimSpace(resume) == "" || strings.TrimSpace(jobDescription) == "" {
		return fmt.Errorf("resume and job description must not be empty")
	}

	c, err := newGatewayClient()
	if err != nil {
		return err
	}
	text := c.ResumeFeedback(cmd.Context(), resume, jobDescription)

	if feedbackHTML {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), feedback.RenderHTML(feedback.Parse(text)))
		return nil
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintFeedback(text)
	return nil
}
