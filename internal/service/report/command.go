package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrolab/farm-controller/internal/config"
	"github.com/agrolab/farm-controller/internal/logger"
	"github.com/agrolab/farm-controller/internal/repository/journal"
	"github.com/agrolab/farm-controller/internal/stats"
)

// Options controls the statistics report.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// JournalFile overrides the configured journal path.
	JournalFile string
}

// Run loads the persisted journal and logs the aggregate statistics,
// including device duty cycles. A missing or empty journal is reported as
// "no data", not as a failure.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "farm-report")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	journalFile := cfg.JournalFile
	if opts.JournalFile != "" {
		journalFile = opts.JournalFile
	}

	entries, err := journal.NewFileJournal(journalFile).Load(ctx)
	if err != nil && !errors.Is(err, journal.ErrNotFound) {
		return fmt.Errorf("load journal: %w", err)
	}

	result, ok := stats.Compute(entries)
	if !ok {
		logger.InfoKV(ctx, "No data recorded yet", "journal_file", journalFile)
		return nil
	}

	logger.InfoKV(ctx, "Journal statistics",
		"journal_file", journalFile,
		"total_records", result.TotalRecords,
		"avg_temperature", result.AvgTemperature,
		"min_temperature", result.MinTemperature,
		"max_temperature", result.MaxTemperature,
		"avg_humidity", result.AvgHumidity,
		"min_humidity", result.MinHumidity,
		"max_humidity", result.MaxHumidity,
		"fan_duty_cycle_pct", result.FanDutyCycle(),
		"pump_duty_cycle_pct", result.PumpDutyCycle(),
	)

	return nil
}
