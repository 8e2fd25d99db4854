package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/agrolab/farm-controller/internal/actuator"
	"github.com/agrolab/farm-controller/internal/control"
	"github.com/agrolab/farm-controller/internal/domain/farm"
	"github.com/agrolab/farm-controller/internal/history"
	"github.com/agrolab/farm-controller/internal/logger"
	"github.com/agrolab/farm-controller/internal/sensor"
	"github.com/agrolab/farm-controller/internal/stats"
)

// Phase is the controller lifecycle state.
type Phase int

// Controller lifecycle states. A controller starts Idle, moves to Running on
// Run, and ends Completed (cycle budget exhausted) or Stopped (canceled).
const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseStopped
	PhaseCompleted
)

// String returns the lowercase phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseStopped:
		return "stopped"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ErrAlreadyRunning is returned by Run when a monitoring loop is active.
var ErrAlreadyRunning = errors.New("controller is already running")

// statusEvery is how many cycles pass between periodic status reports.
const statusEvery = 10

// Options configures a controller instance.
type Options struct {
	// Sensor produces one reading per cycle. Required.
	Sensor sensor.Source
	// Thresholds are the initial hysteresis control bands.
	Thresholds farm.Thresholds
	// HistoryCapacity bounds the observation log; non-positive values fall
	// back to history.DefaultCapacity.
	HistoryCapacity int
	// Interval is the cadence between cycles. Required for Run.
	Interval time.Duration
	// Now supplies log entry timestamps; nil means time.Now.
	Now func() time.Time
}

// Controller owns the actuator state, the thresholds and the history log,
// and executes control cycles strictly sequentially.
//
// A single mutex serializes cycles and operator calls, so threshold changes
// always land on cycle boundaries, never mid-cycle. Actuator state and
// history reads go through their own locks and stay available mid-cycle,
// which lets sensors observe the device states from inside Read.
type Controller struct {
	// mu serializes cycles against operator calls.
	mu sync.Mutex
	// sensor produces the per-cycle readings.
	sensor sensor.Source
	// bank holds the authoritative actuator state.
	bank *actuator.Bank
	// thresholds are the active control bands.
	thresholds farm.Thresholds
	// log is the bounded observation history.
	log *history.Log
	// interval is the cadence between cycles.
	interval time.Duration
	// now supplies log entry timestamps.
	now func() time.Time
	// phase is the lifecycle state of the monitoring loop.
	phase Phase
	// cancel interrupts the cadence wait of an active loop.
	cancel context.CancelFunc
	// cycleCount is the total number of completed cycles.
	cycleCount int
}

// New creates an idle controller. The initial thresholds are validated; the
// actuator state starts with both devices off and the history empty.
func New(opts Options) (*Controller, error) {
	if opts.Sensor == nil {
		return nil, errors.New("sensor source is required")
	}

	if err := opts.Thresholds.Validate(); err != nil {
		return nil, err
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Controller{
		sensor:     opts.Sensor,
		bank:       actuator.NewBank(),
		thresholds: opts.Thresholds,
		log:        history.NewLog(opts.HistoryCapacity),
		interval:   opts.Interval,
		now:        now,
		phase:      PhaseIdle,
	}, nil
}

// Run executes the monitoring loop: one cycle immediately, then one per
// interval. It blocks until the cycle budget is exhausted (Completed) or the
// context is canceled between cycles (Stopped). cycles <= 0 runs until
// cancellation.
//
// A sensor failure degrades the affected cycle: nothing is applied or
// recorded, a warning is logged, and the loop continues.
func (c *Controller) Run(ctx context.Context, cycles int) error {
	runCtx, err := c.beginRun(ctx)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for completed := 0; ; {
		// Cooperative cancellation: checked between cycles only, so a log
		// entry is always fully written or not written at all.
		if runCtx.Err() != nil {
			c.endRun(PhaseStopped)
			return nil
		}

		entry, err := c.runCycle(runCtx)
		if err != nil {
			logger.WarnKV(runCtx, "Cycle skipped", "error", err)
		} else if completed%statusEvery == 0 {
			logger.InfoKV(runCtx, "Status",
				"temperature", entry.Reading.Temperature,
				"humidity", entry.Reading.Humidity,
				"fan_on", entry.FanOn,
				"pump_on", entry.PumpOn,
			)
		}

		completed++
		if cycles > 0 && completed >= cycles {
			c.endRun(PhaseCompleted)
			return nil
		}

		select {
		case <-runCtx.Done():
			c.endRun(PhaseStopped)
			return nil
		case <-ticker.C:
		}
	}
}

// Stop interrupts the cadence wait of an active monitoring loop. The loop
// finishes its current cycle, transitions to Stopped and returns. Stopping
// an idle or already-stopped controller is a no-op.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// SingleCycle executes exactly one read-decide-apply-log cycle for ad-hoc
// invocation. It does not affect the Running/Stopped/Completed machine.
func (c *Controller) SingleCycle(ctx context.Context) (farm.LogEntry, error) {
	return c.runCycle(ctx)
}

// Thresholds returns the active control bands.
func (c *Controller) Thresholds() farm.Thresholds {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.thresholds
}

// SetThresholds replaces the control bands. Invalid values are rejected
// synchronously and the prior thresholds stay in effect. A change issued
// while a cycle is in flight waits for the cycle boundary.
func (c *Controller) SetThresholds(t farm.Thresholds) error {
	if err := t.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.thresholds = t

	return nil
}

// ActuatorState returns a copy of the current device states. The bank is
// self-locked, so this never takes the controller mutex and stays safe to
// call from a sensor's Read while a cycle is in flight.
func (c *Controller) ActuatorState() farm.ActuatorState {
	return c.bank.State()
}

// Snapshot returns the history log contents in chronological order.
// It succeeds regardless of any downstream persistence failures.
func (c *Controller) Snapshot() []farm.LogEntry {
	return c.log.Snapshot()
}

// Statistics aggregates the current history snapshot. The second return
// value is false while no observations have been recorded.
func (c *Controller) Statistics() (farm.Statistics, bool) {
	return stats.Compute(c.log.Snapshot())
}

// Phase returns the lifecycle state of the monitoring loop.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.phase
}

// CycleCount returns the total number of completed cycles, including those
// run through SingleCycle.
func (c *Controller) CycleCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cycleCount
}

// beginRun transitions Idle/Stopped/Completed to Running and derives the
// cancellable loop context.
func (c *Controller) beginRun(ctx context.Context) (context.Context, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseRunning {
		return nil, ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.phase = PhaseRunning

	return runCtx, nil
}

// endRun records the terminal phase of a finished loop.
func (c *Controller) endRun(phase Phase) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	c.phase = phase
}

// runCycle performs one read-decide-apply-log sequence under the mutex.
// On a sensor failure nothing is applied or recorded.
func (c *Controller) runCycle(ctx context.Context) (farm.LogEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	reading, err := c.sensor.Read(ctx)
	if err != nil {
		return farm.LogEntry{}, fmt.Errorf("read sensor: %w", err)
	}

	desired := control.Decide(reading, c.thresholds, c.bank.State())

	for _, transition := range c.bank.Apply(desired) {
		logger.InfoKV(ctx, "Actuator transition",
			"device", transition.Device.String(),
			"on", transition.On,
		)
	}

	entry := farm.LogEntry{
		Timestamp: c.now(),
		Reading:   reading,
		FanOn:     desired.FanOn,
		PumpOn:    desired.PumpOn,
	}

	c.log.Append(entry)
	c.cycleCount++

	logger.DebugKV(ctx, "Cycle recorded",
		"temperature", reading.Temperature,
		"humidity", reading.Humidity,
		"fan_on", entry.FanOn,
		"pump_on", entry.PumpOn,
	)

	return entry, nil
}
