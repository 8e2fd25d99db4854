package sensor

import (
	"context"
	"math/rand"
	"time"

	"github.com/agrolab/farm-controller/internal/domain/farm"
)

// Physical bounds of the simulated environment.
const (
	minTemperature = 15.0
	maxTemperature = 45.0
	minHumidity    = 20.0
	maxHumidity    = 90.0
)

// Simulation coefficients. Perturbations are drawn per cycle and scaled by
// driftScale before being applied; actuator biases model the fan cooling the
// air and the pump raising humidity.
const (
	driftScale      = 0.1
	tempDriftLow    = -2.0
	tempDriftHigh   = 3.0
	humidDriftLow   = -5.0
	humidDriftHigh  = 8.0
	fanCoolingBias  = 2.0
	pumpHumidifying = 5.0
)

// Default seed values for the simulated environment.
const (
	DefaultTemperature = 25.0
	DefaultHumidity    = 45.0
)

// Simulator models a drifting greenhouse environment influenced by the
// actuators. It stands in for a real sensor adapter: each Read advances the
// internal state by one cycle and returns the new sample.
//
// Randomness is constructor-injected so tests can drive the model
// deterministically. The actuator state provider decouples the simulation
// from the controller: the simulator only sees the current fan/pump flags.
type Simulator struct {
	// temperature is the unrounded internal temperature in °C.
	temperature float64
	// humidity is the unrounded internal relative humidity in %.
	humidity float64
	// rng draws the per-cycle perturbations.
	rng *rand.Rand
	// actuators reports the current device state, nil means all off.
	actuators func() farm.ActuatorState
}

// NewSimulator creates a simulator seeded with the given initial environment.
// A nil rng falls back to a clock-seeded source; the actuators function may
// be nil when no feedback loop is wanted.
func NewSimulator(temperature, humidity float64, rng *rand.Rand, actuators func() farm.ActuatorState) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // simulation drift, not cryptography.
	}

	return &Simulator{
		temperature: temperature,
		humidity:    humidity,
		rng:         rng,
		actuators:   actuators,
	}
}

// Read advances the simulation by one cycle and returns the resulting sample.
// It never fails.
func (s *Simulator) Read(_ context.Context) (farm.Reading, error) {
	var state farm.ActuatorState
	if s.actuators != nil {
		state = s.actuators()
	}

	tempDrift := s.uniform(tempDriftLow, tempDriftHigh)
	humidDrift := s.uniform(humidDriftLow, humidDriftHigh)

	// Running devices bias the drift: the fan cools, the pump humidifies.
	if state.FanOn {
		tempDrift -= fanCoolingBias
	}

	if state.PumpOn {
		humidDrift += pumpHumidifying
	}

	s.temperature = clamp(s.temperature+tempDrift*driftScale, minTemperature, maxTemperature)
	s.humidity = clamp(s.humidity+humidDrift*driftScale, minHumidity, maxHumidity)

	return farm.Reading{
		Temperature: farm.Round1(s.temperature),
		Humidity:    farm.Round1(s.humidity),
	}, nil
}

// uniform draws a pseudo-random value in [low, high).
func (s *Simulator) uniform(low, high float64) float64 {
	return low + s.rng.Float64()*(high-low)
}

// clamp limits v to the inclusive range [low, high].
func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}

	if v > high {
		return high
	}

	return v
}
