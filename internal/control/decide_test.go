package control

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agrolab/farm-controller/internal/domain/farm"
)

// testThresholds matches the reference configuration: fan on above 30 °C,
// off below 28 °C; pump on below 40 %, off above 50 %.
var testThresholds = farm.Thresholds{
	TempThreshold:      30,
	TempHysteresis:     2,
	HumidityThreshold:  40,
	HumidityHysteresis: 10,
}

// TestDecideReferenceScenario drives the documented three-step sequence:
// hot and dry turns both devices on, readings inside the bands keep them on,
// and readings past the off-bounds turn both off.
func TestDecideReferenceScenario(t *testing.T) {
	t.Parallel()

	state := farm.ActuatorState{}

	state = Decide(farm.Reading{Temperature: 32.0, Humidity: 35.0}, testThresholds, state)
	require.True(t, state.FanOn)
	require.True(t, state.PumpOn)

	// 31 > 28 keeps the fan on, 45 <= 50 keeps the pump on.
	state = Decide(farm.Reading{Temperature: 31.0, Humidity: 45.0}, testThresholds, state)
	require.True(t, state.FanOn)
	require.True(t, state.PumpOn)

	// 27 < 28 releases the fan, 52 > 50 releases the pump.
	state = Decide(farm.Reading{Temperature: 27.0, Humidity: 52.0}, testThresholds, state)
	require.False(t, state.FanOn)
	require.False(t, state.PumpOn)
}

// TestDecideHysteresisStickiness verifies the dead-band: once the fan is on,
// temperatures inside (T-H, T] keep it on, and once off the same range keeps
// it off.
func TestDecideHysteresisStickiness(t *testing.T) {
	t.Parallel()

	inBand := farm.Reading{Temperature: 29.0, Humidity: 45.0}

	on := Decide(inBand, testThresholds, farm.ActuatorState{FanOn: true, PumpOn: true})
	require.True(t, on.FanOn)
	require.True(t, on.PumpOn)

	off := Decide(inBand, testThresholds, farm.ActuatorState{})
	require.False(t, off.FanOn)
	require.False(t, off.PumpOn)

	// Band edges: exactly T retains state, just above turns on.
	edge := Decide(farm.Reading{Temperature: 30.0, Humidity: 40.0}, testThresholds, farm.ActuatorState{})
	require.False(t, edge.FanOn)
	require.False(t, edge.PumpOn)

	over := Decide(farm.Reading{Temperature: 30.1, Humidity: 39.9}, testThresholds, farm.ActuatorState{})
	require.True(t, over.FanOn)
	require.True(t, over.PumpOn)
}

// TestDecideRulesIndependent checks that fan and pump decisions never couple.
func TestDecideRulesIndependent(t *testing.T) {
	t.Parallel()

	// Hot but humid: fan on, pump off.
	state := Decide(farm.Reading{Temperature: 35.0, Humidity: 80.0}, testThresholds, farm.ActuatorState{PumpOn: true})
	require.True(t, state.FanOn)
	require.False(t, state.PumpOn)

	// Cold but dry: fan off, pump on.
	state = Decide(farm.Reading{Temperature: 20.0, Humidity: 25.0}, testThresholds, farm.ActuatorState{FanOn: true})
	require.False(t, state.FanOn)
	require.True(t, state.PumpOn)
}

// TestDecideIsPure calls the engine repeatedly with identical inputs and
// expects identical outputs: there is no hidden state across calls.
func TestDecideIsPure(t *testing.T) {
	t.Parallel()

	reading := farm.Reading{Temperature: 29.5, Humidity: 44.0}
	current := farm.ActuatorState{FanOn: true}

	first := Decide(reading, testThresholds, current)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Decide(reading, testThresholds, current))
	}
}

// TestDecideZeroHysteresis degenerates to plain threshold control.
func TestDecideZeroHysteresis(t *testing.T) {
	t.Parallel()

	th := farm.Thresholds{TempThreshold: 30, HumidityThreshold: 40}

	state := Decide(farm.Reading{Temperature: 29.9, Humidity: 40.1}, th, farm.ActuatorState{FanOn: true, PumpOn: true})
	require.False(t, state.FanOn)
	require.False(t, state.PumpOn)
}
