// Package actuator owns the mutable device state and turns desired states
// into transition events.
//
// Apply is idempotent: commanding a device into the state it is already in
// produces no event, so consumers such as operator dashboards only ever see
// real transitions.
package actuator
