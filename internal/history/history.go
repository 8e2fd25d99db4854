package history

import (
	"sync"

	"github.com/agrolab/farm-controller/internal/domain/farm"
)

// DefaultCapacity is the number of entries kept when no capacity is configured.
const DefaultCapacity = 100

// Log is a bounded FIFO buffer of observation records.
//
// A mutex guards the buffer so snapshot reads never block on or tear an
// in-progress append; given the multi-second cycle cadence this is cheap.
type Log struct {
	// mu protects entries against concurrent append and snapshot.
	mu sync.Mutex
	// entries is a ring buffer of at most capacity records.
	entries []farm.LogEntry
	// head is the index of the oldest entry once the buffer is full.
	head int
	// capacity is the maximum number of retained entries.
	capacity int
}

// NewLog creates a log retaining at most capacity entries. Non-positive
// capacities fall back to DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Log{
		entries:  make([]farm.LogEntry, 0, capacity),
		capacity: capacity,
	}
}

// Append inserts an entry at the tail, evicting the oldest entry when the
// log is at capacity. Amortized O(1).
func (l *Log) Append(entry farm.LogEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) < l.capacity {
		l.entries = append(l.entries, entry)
		return
	}

	// Full: overwrite the oldest slot and advance the ring head.
	l.entries[l.head] = entry
	l.head = (l.head + 1) % l.capacity
}

// Snapshot returns a copy of the log contents in insertion order. The copy
// is independent of the log: later appends do not affect it and mutating it
// does not affect the log.
func (l *Log) Snapshot() []farm.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]farm.LogEntry, 0, len(l.entries))
	snapshot = append(snapshot, l.entries[l.head:]...)
	snapshot = append(snapshot, l.entries[:l.head]...)

	return snapshot
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// Capacity returns the maximum number of retained entries.
func (l *Log) Capacity() int {
	return l.capacity
}
