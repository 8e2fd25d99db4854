package control

import "github.com/agrolab/farm-controller/internal/domain/farm"

// Decide maps a sensor reading to the desired actuator state using bang-bang
// control with hysteresis dead-bands.
//
// Fan (temperature control): on above TempThreshold, off below
// TempThreshold-TempHysteresis, otherwise unchanged.
//
// Pump (humidity control, inverted sense since the pump raises humidity):
// on below HumidityThreshold, off above HumidityThreshold+HumidityHysteresis,
// otherwise unchanged.
//
// Readings inside a dead-band retain the current device state, which prevents
// rapid toggling around a single threshold value. The two rules are evaluated
// independently.
func Decide(reading farm.Reading, thresholds farm.Thresholds, current farm.ActuatorState) farm.ActuatorState {
	desired := current

	switch {
	case reading.Temperature > thresholds.TempThreshold:
		desired.FanOn = true
	case reading.Temperature < thresholds.TempThreshold-thresholds.TempHysteresis:
		desired.FanOn = false
	}

	switch {
	case reading.Humidity < thresholds.HumidityThreshold:
		desired.PumpOn = true
	case reading.Humidity > thresholds.HumidityThreshold+thresholds.HumidityHysteresis:
		desired.PumpOn = false
	}

	return desired
}
