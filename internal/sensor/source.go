package sensor

import (
	"context"
	"errors"

	"github.com/agrolab/farm-controller/internal/domain/farm"
)

// Source produces one temperature/humidity sample per controller cycle.
// Real hardware adapters and the Simulator both satisfy this interface.
type Source interface {
	// Read returns the current sample. Implementations backed by real
	// hardware may fail with ErrUnavailable (possibly wrapped); the
	// controller treats that as a skipped cycle, never as a fatal error.
	Read(ctx context.Context) (farm.Reading, error)
}

// ErrUnavailable indicates a transient sensor failure. The cycle that
// encounters it records nothing and leaves the actuators untouched.
var ErrUnavailable = errors.New("sensor unavailable")
