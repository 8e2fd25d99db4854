package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/agrolab/farm-controller/internal/service/monitor"
)

var (
	// monitorMinutes is the session length in minutes.
	monitorMinutes int
	// monitorCycles is an explicit cycle budget overriding the duration.
	monitorCycles int
	// monitorInterval overrides the configured cycle cadence.
	monitorInterval time.Duration
	// monitorJournal overrides the configured journal path.
	monitorJournal string
	// monitorSeed fixes the simulator random source for reproducible runs.
	monitorSeed int64

	// monitorCmd runs the monitoring loop for a bounded or unbounded duration.
	monitorCmd = &cobra.Command{
		Use:   "monitor",
		Short: "Run the monitoring loop.",
		Long: `Runs the closed control loop on its cadence: read sensors, decide fan and
pump states through the hysteresis engine, apply them, and record the
observation. Press Ctrl+C to stop between cycles; the session statistics are
reported and the history is saved to the journal file either way.

Use --cycles for an exact cycle budget (negative runs until interrupted),
otherwise the session length is --minutes at the configured cadence.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &monitor.Options{
				ConfigPath:  configPath,
				Cycles:      monitorCycles,
				Minutes:     monitorMinutes,
				Interval:    monitorInterval,
				JournalFile: monitorJournal,
				Seed:        monitorSeed,
			}

			return monitor.Run(ctx, options)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	monitorCmd.Flags().IntVarP(&monitorMinutes, "minutes", "m", monitor.DefaultMinutes, "session length in minutes")
	monitorCmd.Flags().IntVarP(&monitorCycles, "cycles", "n", 0, "explicit cycle budget (negative = run until interrupted)")
	monitorCmd.Flags().DurationVarP(&monitorInterval, "interval", "i", 0, "override cycle cadence (e.g. 5s)")
	monitorCmd.Flags().StringVarP(&monitorJournal, "journal", "j", "", "override journal file path")
	monitorCmd.Flags().Int64Var(&monitorSeed, "seed", 0, "simulator random seed (0 = from clock)")

	rootCmd.AddCommand(monitorCmd)
}
