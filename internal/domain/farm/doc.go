// Package farm contains core domain types for the environmental controller.
//
// It defines Reading (one sensor sample), ActuatorState (fan and pump flags),
// Thresholds (hysteresis control bands), LogEntry (one recorded observation)
// and Statistics (aggregates over the history log).
package farm
