package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agrolab/farm-controller/internal/domain/farm"
)

// TestComputeEmptyHistory returns the explicit no-data result, never zeros
// dressed up as measurements.
func TestComputeEmptyHistory(t *testing.T) {
	t.Parallel()

	result, ok := Compute(nil)
	require.False(t, ok)
	require.Zero(t, result)

	result, ok = Compute([]farm.LogEntry{})
	require.False(t, ok)
	require.Zero(t, result)
}

// TestComputeAggregates checks min/avg/max, runtime counters and rounding.
func TestComputeAggregates(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	entries := []farm.LogEntry{
		{
			Timestamp: base,
			Reading:   farm.Reading{Temperature: 25.0, Humidity: 45.0},
			FanOn:     false,
			PumpOn:    true,
		},
		{
			Timestamp: base.Add(5 * time.Second),
			Reading:   farm.Reading{Temperature: 31.2, Humidity: 38.4},
			FanOn:     true,
			PumpOn:    true,
		},
		{
			Timestamp: base.Add(10 * time.Second),
			Reading:   farm.Reading{Temperature: 28.5, Humidity: 55.1},
			FanOn:     true,
			PumpOn:    false,
		},
	}

	result, ok := Compute(entries)
	require.True(t, ok)

	// (25.0+31.2+28.5)/3 = 28.233... -> 28.2
	require.InDelta(t, 28.2, result.AvgTemperature, 1e-9)
	require.InDelta(t, 25.0, result.MinTemperature, 1e-9)
	require.InDelta(t, 31.2, result.MaxTemperature, 1e-9)

	// (45.0+38.4+55.1)/3 = 46.166... -> 46.2
	require.InDelta(t, 46.2, result.AvgHumidity, 1e-9)
	require.InDelta(t, 38.4, result.MinHumidity, 1e-9)
	require.InDelta(t, 55.1, result.MaxHumidity, 1e-9)

	require.Equal(t, 2, result.FanRuntime)
	require.Equal(t, 2, result.PumpRuntime)
	require.Equal(t, 3, result.TotalRecords)
}

// TestComputeDoesNotMutate verifies the aggregator leaves the snapshot alone.
func TestComputeDoesNotMutate(t *testing.T) {
	t.Parallel()

	entries := []farm.LogEntry{
		{Reading: farm.Reading{Temperature: 20.0, Humidity: 60.0}},
		{Reading: farm.Reading{Temperature: 22.0, Humidity: 62.0}, FanOn: true},
	}
	original := make([]farm.LogEntry, len(entries))
	copy(original, entries)

	_, ok := Compute(entries)
	require.True(t, ok)
	require.Equal(t, original, entries)
}

// TestComputeSingleEntry degenerates min, avg and max to the same values.
func TestComputeSingleEntry(t *testing.T) {
	t.Parallel()

	result, ok := Compute([]farm.LogEntry{
		{Reading: farm.Reading{Temperature: 27.3, Humidity: 41.8}, FanOn: true, PumpOn: true},
	})
	require.True(t, ok)

	require.InDelta(t, 27.3, result.AvgTemperature, 1e-9)
	require.InDelta(t, 27.3, result.MinTemperature, 1e-9)
	require.InDelta(t, 27.3, result.MaxTemperature, 1e-9)
	require.InDelta(t, 41.8, result.AvgHumidity, 1e-9)
	require.Equal(t, 1, result.FanRuntime)
	require.Equal(t, 1, result.PumpRuntime)
	require.Equal(t, 1, result.TotalRecords)
}
