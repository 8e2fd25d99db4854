// Package sensor defines the sensor capability consumed by the controller
// and a simulated implementation used when no hardware is attached.
//
// Source is the only contract the controller depends on; the Simulator is a
// drop-in stand-in for a real temperature/humidity sensor adapter.
package sensor
