package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Re-extract archived profile documents",
	Long: `Re-runs extraction and persistence over every document in the local
archive, without contacting the external source. Useful after an
extractor fix to re-process a past crawl.`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, _ []string) error {
	if replayRunner == nil {
		return errors.New("replay service not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd.Println("Replaying archived documents...")

	summary, err := replayRunner.Replay(ctx)
	if summary != nil {
		printSummary(cmd, summary)
	}
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}
	return nil
}
