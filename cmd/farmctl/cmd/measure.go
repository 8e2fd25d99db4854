package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agrolab/farm-controller/internal/service/measure"
)

var (
	// measureJournal overrides the configured journal path.
	measureJournal string
	// measureSeed fixes the simulator random source for reproducible runs.
	measureSeed int64

	// measureCmd performs a single measurement and control cycle.
	measureCmd = &cobra.Command{
		Use:   "measure",
		Short: "Run a single measurement and control cycle.",
		Long: `Performs exactly one cycle: read the sensors, decide and apply fan and pump
states, log the resulting status, and append the observation to the journal
file (trimmed to the configured history capacity).`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &measure.Options{
				ConfigPath:  configPath,
				JournalFile: measureJournal,
				Seed:        measureSeed,
			}

			return measure.Run(ctx, options)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	measureCmd.Flags().StringVarP(&measureJournal, "journal", "j", "", "override journal file path")
	measureCmd.Flags().Int64Var(&measureSeed, "seed", 0, "simulator random seed (0 = from clock)")

	rootCmd.AddCommand(measureCmd)
}
