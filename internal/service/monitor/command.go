package monitor

import (
	"context"
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

// Options controls the monitoring session.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Cycles is an explicit cycle budget. Zero derives the budget from
	// Minutes; negative runs until the context is canceled.
	Cycles int
	// Minutes is the session length in minutes, used when Cycles is zero.
	Minutes int
	// Interval overrides the configured cycle cadence when positive.
	Interval time.Duration
	// JournalFile overrides the configured journal path.
	JournalFile string
	// Seed fixes the simulator random source; zero seeds from the clock.
	Seed int64
}

// DefaultMinutes is the session length when no duration is given.
const DefaultMinutes = 5

// Run executes a monitoring session and blocks until it completes or the
// context is canceled. On the way out it reports the session statistics and
// persists the history snapshot to the journal file.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "farm-monitor")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	interval := cfg.CycleInterval
	if opts.Interval > 0 {
		interval = opts.Interval
	}

	journalFile := cfg.JournalFile
	if opts.JournalFile != "" {
		journalFile = opts.JournalFile
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cycles := cycleBudget(opts.Cycles, opts.Minutes, interval)

	// The simulator needs actuator feedback, the controller needs the
	// sensor; the state provider closure breaks the construction cycle.
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
		Interval:        interval,
	})
	if err != nil {
		return fmt.Errorf("initialise controller: %w", err)
	}

	logger.InfoKV(ctx, "Monitoring session started",
		"cycles", cycles,
		"interval", interval.String(),
		"temp_threshold", cfg.Thresholds.TempThreshold,
		"humidity_threshold", cfg.Thresholds.HumidityThreshold,
	)

	if err = ctrl.Run(ctx, cycles); err != nil {
		return fmt.Errorf("run controller: %w", err)
	}

	logger.InfoKV(ctx, "Monitoring session finished", "phase", ctrl.Phase().String())

	reportStatistics(ctx, ctrl)

	if err = journal.NewFileJournal(journalFile).Save(ctx, ctrl.Snapshot()); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}

	logger.InfoKV(ctx, "Journal saved", "journal_file", journalFile)

	return nil
}

// cycleBudget resolves the session cycle budget. An explicit cycle count
// wins (negative means unbounded); otherwise the budget is the session
// duration in minutes divided by the cadence.
func cycleBudget(cycles, minutes int, interval time.Duration) int {
	if cycles != 0 {
		return cycles
	}

	if minutes <= 0 {
		minutes = DefaultMinutes
	}

	return int(time.Duration(minutes) * time.Minute / interval)
}

// reportStatistics logs the session aggregates, or a notice when no cycle
// produced data.
func reportStatistics(ctx context.Context, ctrl *controller.Controller) {
	result, ok := ctrl.Statistics()
	if !ok {
		logger.Info(ctx, "No observations recorded")
		return
	}

	logger.InfoKV(ctx, "Session statistics",
		"avg_temperature", result.AvgTemperature,
		"min_temperature", result.MinTemperature,
		"max_temperature", result.MaxTemperature,
		"avg_humidity", result.AvgHumidity,
		"min_humidity", result.MinHumidity,
		"max_humidity", result.MaxHumidity,
		"fan_runtime", result.FanRuntime,
		"pump_runtime", result.PumpRuntime,
		"total_records", result.TotalRecords,
	)
}
