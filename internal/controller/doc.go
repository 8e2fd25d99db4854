// Package controller orchestrates the closed control loop: read a sensor
// sample, decide actuator states through the hysteresis engine, apply the
// decision, and record the observation in the bounded history log.
//
// A controller instance runs strictly sequential cycles on a fixed cadence
// with cooperative cancellation between cycles, and exposes the operator
// surface: thresholds, single cycles, snapshots and statistics. Multiple
// instances share no state and may run independently.
package controller
