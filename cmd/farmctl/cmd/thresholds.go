package cmd

import (
	"context"
	"math"

	"github.com/spf13/cobra"

	"github.com/agrolab/farm-controller/internal/config"
	"github.com/agrolab/farm-controller/internal/logger"
)

var (
	// newTempThreshold is the fan turn-on temperature to set, NaN keeps current.
	newTempThreshold float64
	// newTempHysteresis is the fan dead-band width to set, NaN keeps current.
	newTempHysteresis float64
	// newHumidityThreshold is the pump turn-on humidity to set, NaN keeps current.
	newHumidityThreshold float64
	// newHumidityHysteresis is the pump dead-band width to set, NaN keeps current.
	newHumidityHysteresis float64

	// thresholdsCmd shows the active control bands.
	thresholdsCmd = &cobra.Command{
		Use:   "thresholds",
		Short: "Show the configured control thresholds.",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := logger.WithName(context.Background(), "farm-thresholds")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger.InfoKV(ctx, "Thresholds",
				"temp_threshold", cfg.Thresholds.TempThreshold,
				"temp_hysteresis", cfg.Thresholds.TempHysteresis,
				"humidity_threshold", cfg.Thresholds.HumidityThreshold,
				"humidity_hysteresis", cfg.Thresholds.HumidityHysteresis,
			)

			return nil
		},
	}

	// thresholdsSetCmd updates the control bands and persists the settings.
	thresholdsSetCmd = &cobra.Command{
		Use:   "set",
		Short: "Update control thresholds and persist the settings file.",
		Long: `Updates the given control band values in the settings file. Omitted flags
keep their current values. Values that would invert a control band are
rejected and the prior settings stay in effect.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := logger.WithName(context.Background(), "farm-thresholds")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if !math.IsNaN(newTempThreshold) {
				cfg.Thresholds.TempThreshold = newTempThreshold
			}

			if !math.IsNaN(newTempHysteresis) {
				cfg.Thresholds.TempHysteresis = newTempHysteresis
			}

			if !math.IsNaN(newHumidityThreshold) {
				cfg.Thresholds.HumidityThreshold = newHumidityThreshold
			}

			if !math.IsNaN(newHumidityHysteresis) {
				cfg.Thresholds.HumidityHysteresis = newHumidityHysteresis
			}

			// Save validates and rejects inverted bands before touching disk.
			if err := config.Save(configPath, cfg); err != nil {
				return err
			}

			logger.InfoKV(ctx, "Thresholds updated",
				"temp_threshold", cfg.Thresholds.TempThreshold,
				"temp_hysteresis", cfg.Thresholds.TempHysteresis,
				"humidity_threshold", cfg.Thresholds.HumidityThreshold,
				"humidity_hysteresis", cfg.Thresholds.HumidityHysteresis,
			)

			return nil
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	thresholdsSetCmd.Flags().Float64Var(&newTempThreshold, "temp", math.NaN(), "fan turn-on temperature in °C")
	thresholdsSetCmd.Flags().Float64Var(&newTempHysteresis, "temp-hysteresis", math.NaN(), "fan dead-band width in °C")
	thresholdsSetCmd.Flags().Float64Var(&newHumidityThreshold, "humidity", math.NaN(), "pump turn-on humidity in %")
	thresholdsSetCmd.Flags().Float64Var(&newHumidityHysteresis, "humidity-hysteresis", math.NaN(), "pump dead-band width in %")

	thresholdsCmd.AddCommand(thresholdsSetCmd)
	rootCmd.AddCommand(thresholdsCmd)
}
