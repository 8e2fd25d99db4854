// Package control implements the hysteresis decision engine.
//
// Decide is a pure function of the current reading, the configured
// thresholds and the present actuator state. It never reads the clock or
// randomness, so identical inputs always produce identical output.
package control
