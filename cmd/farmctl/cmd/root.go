package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agrolab/farm-controller/internal/config"
	"github.com/agrolab/farm-controller/internal/logger"
	"github.com/agrolab/farm-controller/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel selects the minimum level for console logging.
	logLevel string

	// rootCmd represents the base command for the farm controller CLI.
	rootCmd = &cobra.Command{
		Use:   "farmctl",
		Short: "Closed-loop temperature and humidity controller.",
		Long: `farmctl runs a closed-loop environmental controller: it samples temperature
and humidity on a fixed cadence, switches a ventilation fan and a water pump
using hysteresis thresholds, records every observation in a bounded history
log, and derives running statistics from it.

Settings (control thresholds, history capacity, cycle cadence, journal
location) live in a YAML file; every subcommand accepts --config to point at
it. Without a settings file the reference defaults are used.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}
		},
	}
)

// Execute runs the farmctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup persistent flags shared by all subcommands.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&logLevel, "log-level", "l", "info", "minimum log level (debug, info, warn, error, fatal)")
}
