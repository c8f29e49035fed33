package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
)

var (
	runStart       int
	runEnd         int
	runKeywords    string
	runPastCompany string
	runSchool      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Ingest profiles from a search result range",
	Long: `Searches the configured source, exports each result's profile
document, extracts career history and commits it to the local store.
Results [start, end) are processed one at a time; per-profile failures
are counted and skipped.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&runStart, "start", 0, "first result offset (inclusive)")
	runCmd.Flags().IntVar(&runEnd, "end", 10, "last result offset (exclusive)")
	runCmd.Flags().StringVar(&runKeywords, "keywords", "", "free-text search term")
	runCmd.Flags().StringVar(&runPastCompany, "past-company", "", "past company id filter")
	runCmd.Flags().StringVar(&runSchool, "school", "", "school id filter")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	if pipelineRunner == nil {
		return errors.New("pipeline service not configured")
	}
	if runEnd <= runStart {
		return fmt.Errorf("end (%d) must be greater than start (%d)", runEnd, runStart)
	}

	// Ctrl-C stops cleanly between profiles, never mid-commit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	query := domain.SearchQuery{
		Keywords:      runKeywords,
		PastCompanyID: runPastCompany,
		SchoolID:      runSchool,
	}

	cmd.Printf("Processing results [%d, %d)...\n", runStart, runEnd)

	summary, err := pipelineRunner.Run(ctx, query, runStart, runEnd)
	if summary != nil {
		printSummary(cmd, summary)
	}
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	return nil
}

func printSummary(cmd *cobra.Command, summary *domain.RunSummary) {
	cmd.Printf("Run %s: %s\n", summary.RunID, summary)
}
