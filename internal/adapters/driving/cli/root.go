// Package cli implements the cobra command surface. Commands hold no
// business logic; they call the driving services wired in by main.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/tenure-cli/internal/core/ports/driving"
	"github.com/custodia-labs/tenure-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	pipelineRunner driving.PipelineRunner
	replayRunner   driving.ReplayRunner
	statusReporter driving.StatusReporter
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tenure",
	Short: "Career history ingestion pipeline",
	Long: `Tenure searches an external professional network, exports profile
documents, extracts career history from their layout and persists it
into a local relational store.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetPipelineRunner injects the pipeline service.
func SetPipelineRunner(r driving.PipelineRunner) {
	pipelineRunner = r
}

// SetReplayRunner injects the replay service.
func SetReplayRunner(r driving.ReplayRunner) {
	replayRunner = r
}

// SetStatusReporter injects the status service.
func SetStatusReporter(r driving.StatusReporter) {
	statusReporter = r
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
}
