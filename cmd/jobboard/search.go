package main

import (
	"fmt"

	"github.com/jonathan/jobboard/internal/catalog"
	"github.com/jonathan/jobboard/internal/observability"
	"github.com/jonathan/jobboard/internal/search"
	"github.com/jonathan/jobboard/internal/types"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Filter the job catalog",
	Long: `Filter the job catalog by keyword, location and type.
With --ai the phrase is first parsed by the gateway into keyword and location terms;
if the gateway fails the whole phrase is used as the keyword.`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

var (
	searchKeyword  string
	searchLocation string
	searchType     string
	searchAI       string
)

func init() {
	searchCmd.Flags().StringVarP(&searchKeyword, "keyword", "k", "", "Match title or company")
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "Match location")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", string(types.JobTypeAny), "Full-time, Part-time, Contract or All")
	searchCmd.Flags().StringVar(&searchAI, "ai", "", "Natural-language search phrase")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	jobType := types.JobType(searchType)
	if jobType != types.JobTypeAny && !jobType.Valid() {
		return fmt.Errorf("invalid --type %q: must be one of %v or %s", searchType, types.JobTypes, types.JobTypeAny)
	}

	state := search.NewState()
	state.Keyword = searchKeyword
	state.Location = searchLocation
	state.Type = jobType

	if searchAI != "" {
		c, err := newGatewayClient()
		if err != nil {
			return err
		}
		state.NaturalQuery = searchAI
		state.ApplyNatural(cmd.Context(), c)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintJobs(state.Results(catalog.Default().All()), state.Active())
	return nil
}
