// Package config loads, validates and persists the controller settings
// stored as a YAML file: control thresholds, history capacity, cycle cadence
// and the journal location.
package config
