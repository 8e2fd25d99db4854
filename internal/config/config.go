package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/agrolab/farm-controller/internal/domain/farm"
)

// Config holds the settings shared by the farmctl subcommands.
type Config struct {
	// Thresholds configures the hysteresis control bands.
	Thresholds farm.Thresholds `yaml:"thresholds"`
	// HistoryCapacity is the maximum number of retained log entries.
	HistoryCapacity int `yaml:"history_capacity"`
	// CycleInterval is the cadence between controller cycles.
	CycleInterval time.Duration `yaml:"cycle_interval"`
	// JournalFile is the path where history snapshots are persisted.
	JournalFile string `yaml:"journal_file"`
	// InitialTemperature seeds the simulated environment in °C.
	InitialTemperature float64 `yaml:"initial_temperature"`
	// InitialHumidity seeds the simulated environment in %.
	InitialHumidity float64 `yaml:"initial_humidity"`
}

const (
	// DefaultConfigFilename is the default filename for controller settings.
	DefaultConfigFilename = "farm-controller-settings.yaml"

	// DefaultJournalFilename is the default filename for the history journal.
	DefaultJournalFilename = "farm-journal.json"

	// DefaultCycleInterval is the reference cadence between cycles.
	DefaultCycleInterval = 5 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

// errConfigIsNotSet is returned when a nil configuration is provided.
var errConfigIsNotSet = errors.New("configuration is not set")

// Default returns the reference configuration: the bands and seed environment
// the controller assumes when no settings file exists yet.
func Default() *Config {
	return &Config{
		Thresholds: farm.Thresholds{
			TempThreshold:      30.0,
			TempHysteresis:     2.0,
			HumidityThreshold:  40.0,
			HumidityHysteresis: 10.0,
		},
		HistoryCapacity:    100,
		CycleInterval:      DefaultCycleInterval,
		JournalFile:        DefaultJournalFilename,
		InitialTemperature: 25.0,
		InitialHumidity:    45.0,
	}
}

// Load reads configuration from the provided path and validates it.
// A missing path falls back to DefaultConfigFilename; a missing file yields
// the default configuration so first runs work without any setup.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the configuration and fills in defaults for omitted fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if err := cfg.Thresholds.Validate(); err != nil {
		return err
	}

	if cfg.HistoryCapacity < 0 {
		return fmt.Errorf("history capacity must be non-negative, got %d", cfg.HistoryCapacity)
	}

	if cfg.CycleInterval < 0 {
		return fmt.Errorf("cycle interval must be non-negative, got %s", cfg.CycleInterval)
	}

	// Fill defaults for omitted fields.
	defaults := Default()

	if cfg.HistoryCapacity == 0 {
		cfg.HistoryCapacity = defaults.HistoryCapacity
	}

	if cfg.CycleInterval == 0 {
		cfg.CycleInterval = defaults.CycleInterval
	}

	if cfg.JournalFile == "" {
		cfg.JournalFile = defaults.JournalFile
	}

	if cfg.InitialTemperature == 0 {
		cfg.InitialTemperature = defaults.InitialTemperature
	}

	if cfg.InitialHumidity == 0 {
		cfg.InitialHumidity = defaults.InitialHumidity
	}

	// The simulated environment is clamped to these physical bounds; a seed
	// outside them would be corrected away on the first cycle anyway.
	if cfg.InitialTemperature < 15 || cfg.InitialTemperature > 45 {
		return fmt.Errorf("initial temperature must be within [15, 45] °C, got %g", cfg.InitialTemperature)
	}

	if cfg.InitialHumidity < 20 || cfg.InitialHumidity > 90 {
		return fmt.Errorf("initial humidity must be within [20, 90] %%, got %g", cfg.InitialHumidity)
	}

	return nil
}
