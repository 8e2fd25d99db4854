package measure

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/agrolab/farm-controller/internal/config"
	"github.com/agrolab/farm-controller/internal/controller"
	"github.com/agrolab/farm-controller/internal/domain/farm"
	"github.com/agrolab/farm-controller/internal/logger"
	"github.com/agrolab/farm-controller/internal/repository/journal"
	"github.com/agrolab/farm-controller/internal/sensor"
)

// Options controls the single-measurement command.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// JournalFile overrides the configured journal path.
	JournalFile string
	// Seed fixes the simulator random source; zero seeds from the clock.
	Seed int64
}

// Run executes exactly one read-decide-apply-log cycle, logs the resulting
// status, and appends the observation to the journal, trimming it to the
// configured history capacity.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "farm-measure")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	journalFile := cfg.JournalFile
	if opts.JournalFile != "" {
		journalFile = opts.JournalFile
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var ctrl *controller.Controller

	sim := sensor.NewSimulator(
		cfg.InitialTemperature,
		cfg.InitialHumidity,
		rand.New(rand.NewSource(seed)),
		func() farm.ActuatorState { return ctrl.ActuatorState() },
	)

	ctrl, err = controller.New(controller.Options{
		Sensor:          sim,
		Thresholds:      cfg.Thresholds,
		HistoryCapacity: cfg.HistoryCapacity,
		Interval:        cfg.CycleInterval,
	})
	if err != nil {
		return fmt.Errorf("initialise controller: %w", err)
	}

	entry, err := ctrl.SingleCycle(ctx)
	if err != nil {
		return fmt.Errorf("run cycle: %w", err)
	}

	logger.InfoKV(ctx, "Measurement",
		"temperature", entry.Reading.Temperature,
		"humidity", entry.Reading.Humidity,
		"fan_on", entry.FanOn,
		"pump_on", entry.PumpOn,
		"temp_alert", entry.Reading.Temperature > cfg.Thresholds.TempThreshold,
		"humidity_alert", entry.Reading.Humidity < cfg.Thresholds.HumidityThreshold,
	)

	return appendToJournal(ctx, journalFile, entry, cfg.HistoryCapacity)
}

// appendToJournal adds the entry to the persisted history, keeping at most
// capacity records (oldest evicted first).
func appendToJournal(ctx context.Context, path string, entry farm.LogEntry, capacity int) error {
	j := journal.NewFileJournal(path)

	entries, err := j.Load(ctx)
	if err != nil && !errors.Is(err, journal.ErrNotFound) {
		return fmt.Errorf("load journal: %w", err)
	}

	entries = append(entries, entry)
	if capacity > 0 && len(entries) > capacity {
		entries = entries[len(entries)-capacity:]
	}

	if err := j.Save(ctx, entries); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}

	logger.InfoKV(ctx, "Journal updated", "journal_file", path, "total_records", len(entries))

	return nil
}
