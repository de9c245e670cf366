package main

import (
	"fmt"

	"github.com/jonathan/jobboard/internal/catalog"
	"github.com/jonathan/jobboard/internal/observability"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs [id]",
	Short: "List the job catalog or show one listing",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJobs,
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()
	printer := observability.NewPrinter(cmd.OutOrStdout())

	if len(args) == 0 {
		printer.PrintJobs(cat.All(), false)
		return nil
	}

	job, ok := cat.Lookup(args[0])
	if !ok {
		return fmt.Errorf("job not found: %s", args[0])
	}
	printer.PrintJob(&job)
	return nil
}
