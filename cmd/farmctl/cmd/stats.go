package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agrolab/farm-controller/internal/service/report"
)

var (
	// statsJournal overrides the configured journal path.
	statsJournal string

	// statsCmd reports statistics over the persisted journal.
	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Report statistics over the recorded history.",
		Long: `Loads the journal file and reports min/avg/max temperature and humidity,
device runtimes and duty cycles over the recorded observations. A missing or
empty journal is reported as "no data".`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &report.Options{
				ConfigPath:  configPath,
				JournalFile: statsJournal,
			}

			return report.Run(ctx, options)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	statsCmd.Flags().StringVarP(&statsJournal, "journal", "j", "", "override journal file path")

	rootCmd.AddCommand(statsCmd)
}
