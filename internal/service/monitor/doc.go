// Package monitor runs a monitoring session: the controller loop on its
// cadence for a bounded or unbounded duration, followed by a statistics
// report and a journal save.
package monitor
