package actuator

import (
	"sync"

	"github.com/agrolab/farm-controller/internal/domain/farm"
)

// Device identifies one of the controlled binary devices.
type Device int

// The controlled devices.
const (
	Fan Device = iota
	Pump
)

// String returns the lowercase device name for logging.
func (d Device) String() string {
	switch d {
	case Fan:
		return "fan"
	case Pump:
		return "pump"
	default:
		return "unknown"
	}
}

// Transition records a single device changing state.
type Transition struct {
	// Device is the device that changed.
	Device Device
	// On is the state the device changed to.
	On bool
}

// Bank holds the authoritative actuator state. Exactly one instance exists
// per controller; only the controller mutates it, through Apply. The bank
// carries its own lock so State stays safe to call from sensor callbacks
// while a cycle is in flight.
type Bank struct {
	// mu guards state against concurrent State/Apply calls.
	mu sync.Mutex
	// state is the current device states.
	state farm.ActuatorState
}

// NewBank creates a bank with both devices off.
func NewBank() *Bank {
	return &Bank{}
}

// Apply moves the bank to the desired state and returns one transition event
// per device that actually changed, fan first. Unchanged devices produce no
// event: repeated identical commands are silent no-ops.
func (b *Bank) Apply(desired farm.ActuatorState) []Transition {
	b.mu.Lock()
	defer b.mu.Unlock()

	var transitions []Transition

	if desired.FanOn != b.state.FanOn {
		transitions = append(transitions, Transition{Device: Fan, On: desired.FanOn})
	}

	if desired.PumpOn != b.state.PumpOn {
		transitions = append(transitions, Transition{Device: Pump, On: desired.PumpOn})
	}

	b.state = desired

	return transitions
}

// State returns a copy of the current actuator state.
func (b *Bank) State() farm.ActuatorState {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}
