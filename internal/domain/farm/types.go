package farm

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Reading is a single sensor sample. It is immutable once produced:
// the controller consumes it within the same cycle it was read.
type Reading struct {
	// Temperature in degrees Celsius, one decimal place.
	Temperature float64
	// Humidity is relative humidity in percent, one decimal place.
	Humidity float64
}

// ActuatorState holds the on/off flags of the two controlled devices.
type ActuatorState struct {
	// FanOn reports whether the ventilation fan is running.
	FanOn bool
	// PumpOn reports whether the water pump is running.
	PumpOn bool
}

// Thresholds configures the hysteresis control bands.
//
// The fan turns on above TempThreshold and off below
// TempThreshold-TempHysteresis. The pump turns on below HumidityThreshold
// and off above HumidityThreshold+HumidityHysteresis. Readings inside a band
// leave the device state unchanged.
type Thresholds struct {
	// TempThreshold is the fan turn-on temperature in °C.
	TempThreshold float64 `yaml:"temp_threshold"`
	// TempHysteresis is the width of the fan dead-band in °C.
	TempHysteresis float64 `yaml:"temp_hysteresis"`
	// HumidityThreshold is the pump turn-on humidity in %.
	HumidityThreshold float64 `yaml:"humidity_threshold"`
	// HumidityHysteresis is the width of the pump dead-band in %.
	HumidityHysteresis float64 `yaml:"humidity_hysteresis"`
}

// ErrInvalidThresholds indicates threshold values that do not form
// usable control bands.
var ErrInvalidThresholds = errors.New("invalid thresholds")

// Validate checks that the thresholds form well-defined control bands.
// Hysteresis widths must be non-negative and every value must be a finite
// number, otherwise the on and off bounds of a band lose their ordering.
func (t Thresholds) Validate() error {
	for name, v := range map[string]float64{
		"temp_threshold":      t.TempThreshold,
		"temp_hysteresis":     t.TempHysteresis,
		"humidity_threshold":  t.HumidityThreshold,
		"humidity_hysteresis": t.HumidityHysteresis,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidThresholds, name)
		}
	}

	if t.TempHysteresis < 0 {
		return fmt.Errorf("%w: temp_hysteresis must be non-negative", ErrInvalidThresholds)
	}

	if t.HumidityHysteresis < 0 {
		return fmt.Errorf("%w: humidity_hysteresis must be non-negative", ErrInvalidThresholds)
	}

	return nil
}

// LogEntry is one recorded observation: the reading of a cycle together with
// the actuator state after control decisions were applied. Entries are never
// mutated after creation.
type LogEntry struct {
	// Timestamp is when the cycle completed.
	Timestamp time.Time
	// Reading is the sensor sample of the cycle.
	Reading Reading
	// FanOn is the fan state after the cycle's decisions were applied.
	FanOn bool
	// PumpOn is the pump state after the cycle's decisions were applied.
	PumpOn bool
}

// Statistics aggregates the current history log contents.
type Statistics struct {
	// AvgTemperature is the mean temperature, rounded to one decimal.
	AvgTemperature float64
	// MinTemperature is the lowest recorded temperature.
	MinTemperature float64
	// MaxTemperature is the highest recorded temperature.
	MaxTemperature float64
	// AvgHumidity is the mean humidity, rounded to one decimal.
	AvgHumidity float64
	// MinHumidity is the lowest recorded humidity.
	MinHumidity float64
	// MaxHumidity is the highest recorded humidity.
	MaxHumidity float64
	// FanRuntime is the number of records with the fan running.
	FanRuntime int
	// PumpRuntime is the number of records with the pump running.
	PumpRuntime int
	// TotalRecords is the number of records the aggregate covers.
	TotalRecords int
}

// FanDutyCycle returns the fraction of records with the fan running, in percent.
func (s Statistics) FanDutyCycle() float64 {
	if s.TotalRecords == 0 {
		return 0
	}

	return float64(s.FanRuntime) / float64(s.TotalRecords) * 100
}

// PumpDutyCycle returns the fraction of records with the pump running, in percent.
func (s Statistics) PumpDutyCycle() float64 {
	if s.TotalRecords == 0 {
		return 0
	}

	return float64(s.PumpRuntime) / float64(s.TotalRecords) * 100
}

// Round1 rounds v to one decimal place. Sensor readings and statistic
// averages use this precision throughout the system.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
