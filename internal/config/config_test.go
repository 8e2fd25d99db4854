package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agrolab/farm-controller/internal/domain/farm"
)

// TestValidate checks required invariants and default filling.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Invalid thresholds are rejected.
	cfg := Default()
	cfg.Thresholds.TempHysteresis = -3
	require.ErrorIs(t, Validate(cfg), farm.ErrInvalidThresholds)

	cfg = Default()
	cfg.HistoryCapacity = -1
	require.Error(t, Validate(cfg))

	cfg = Default()
	cfg.CycleInterval = -time.Second
	require.Error(t, Validate(cfg))

	// Omitted fields are filled with defaults.
	cfg = &Config{
		Thresholds: Default().Thresholds,
	}
	require.NoError(t, Validate(cfg))
	require.Equal(t, 100, cfg.HistoryCapacity)
	require.Equal(t, DefaultCycleInterval, cfg.CycleInterval)
	require.Equal(t, DefaultJournalFilename, cfg.JournalFile)
	require.InDelta(t, 25.0, cfg.InitialTemperature, 1e-9)
	require.InDelta(t, 45.0, cfg.InitialHumidity, 1e-9)

	// Seeds outside the physical clamp range are rejected.
	cfg = Default()
	cfg.InitialTemperature = 50
	require.Error(t, Validate(cfg))

	cfg = Default()
	cfg.InitialHumidity = 10
	require.Error(t, Validate(cfg))
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg := Default()
	cfg.Thresholds.TempThreshold = 28.5
	cfg.HistoryCapacity = 50
	cfg.CycleInterval = 2 * time.Second

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

// TestLoadMissingFileUsesDefaults lets first runs work without a settings file.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	loaded, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), loaded)
}

// TestSaveRejectsInvalid ensures broken settings never reach disk.
func TestSaveRejectsInvalid(t *testing.T) {
	t.Parallel()

	require.Error(t, Save(filepath.Join(t.TempDir(), "settings.yaml"), nil))

	cfg := Default()
	cfg.Thresholds.HumidityHysteresis = -1
	require.ErrorIs(t, Save(filepath.Join(t.TempDir(), "settings.yaml"), cfg), farm.ErrInvalidThresholds)
}
