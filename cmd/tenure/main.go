// Command tenure ingests career histories from an external
// professional network into a local SQLite store.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/custodia-labs/tenure-cli/internal/adapters/driven/archive/file"
	configfile "github.com/custodia-labs/tenure-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tenure-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/tenure-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/tenure-cli/internal/connectors/voyager"
	"github.com/custodia-labs/tenure-cli/internal/core/domain"
	"github.com/custodia-labs/tenure-cli/internal/core/services"
	"github.com/custodia-labs/tenure-cli/internal/extractor/layout"
	"github.com/custodia-labs/tenure-cli/internal/logger"
	"github.com/custodia-labs/tenure-cli/internal/retry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// TENURE_CONFIG_DIR overrides the default ~/.tenure.
	settingsStore, err := configfile.NewSettingsStore(os.Getenv("TENURE_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("opening settings store: %w", err)
	}

	settings, err := settingsStore.Load()
	if err != nil && !errors.Is(err, domain.ErrSettingsNotFound) {
		return fmt.Errorf("loading settings: %w", err)
	}
	if errors.Is(err, domain.ErrSettingsNotFound) {
		// First run: write the defaults so there is a file to edit.
		if saveErr := settingsStore.Save(settings); saveErr != nil {
			return fmt.Errorf("writing default settings: %w", saveErr)
		}
		logger.Info("Wrote default settings to %s", settingsStore.Path())
	}

	archive, err := file.NewArchive(settings.ArchiveDir)
	if err != nil {
		return fmt.Errorf("opening document archive: %w", err)
	}

	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	decoder := layout.NewDecoder()
	extractor := layout.New()
	policy := retry.NewBackoff(settings.MaxRetries)

	// The network client is only built when the settings carry a
	// session cookie; replay and status work without one.
	if settings.Validate() == nil {
		client, err := voyager.NewClient(voyager.FromSettings(settings))
		if err != nil {
			return fmt.Errorf("building connector: %w", err)
		}
		acquirer := services.NewAcquirer(client, archive, policy)
		cli.SetPipelineRunner(services.NewPipeline(
			client, acquirer, decoder, extractor, store, settings.UpstreamErrorLimit))
	}

	cli.SetReplayRunner(services.NewReplay(archive, decoder, extractor, store))
	cli.SetStatusReporter(services.NewStatus(store))

	return cli.Execute()
}
