package history

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agrolab/farm-controller/internal/domain/farm"
)

// entryAt builds a distinguishable test entry from a sequence number.
func entryAt(i int) farm.LogEntry {
	return farm.LogEntry{
		Timestamp: time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Second),
		Reading: farm.Reading{
			Temperature: float64(i),
			Humidity:    float64(i) / 2,
		},
		FanOn: i%2 == 0,
	}
}

// TestLogFIFOEviction appends past capacity and expects exactly the last N
// entries in original chronological order.
func TestLogFIFOEviction(t *testing.T) {
	t.Parallel()

	const (
		capacity = 5
		appends  = 12
	)

	log := NewLog(capacity)
	for i := 0; i < appends; i++ {
		log.Append(entryAt(i))
	}

	require.Equal(t, capacity, log.Len())

	snapshot := log.Snapshot()
	require.Len(t, snapshot, capacity)

	for i, entry := range snapshot {
		require.Equal(t, entryAt(appends-capacity+i), entry)
	}
}

// TestLogSnapshotIsolation checks copy-on-read semantics both ways.
func TestLogSnapshotIsolation(t *testing.T) {
	t.Parallel()

	log := NewLog(3)
	log.Append(entryAt(0))

	snapshot := log.Snapshot()
	require.Len(t, snapshot, 1)

	// Later appends do not leak into the snapshot.
	log.Append(entryAt(1))
	require.Len(t, snapshot, 1)

	// Mutating the snapshot does not touch the log.
	snapshot[0].Reading.Temperature = 99
	require.Equal(t, entryAt(0), log.Snapshot()[0])
}

// TestLogBelowCapacity keeps everything while under the limit.
func TestLogBelowCapacity(t *testing.T) {
	t.Parallel()

	log := NewLog(100)
	for i := 0; i < 7; i++ {
		log.Append(entryAt(i))
	}

	snapshot := log.Snapshot()
	require.Len(t, snapshot, 7)

	for i, entry := range snapshot {
		require.Equal(t, entryAt(i), entry)
	}
}

// TestLogDefaultCapacity applies when the configured capacity is not usable.
func TestLogDefaultCapacity(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultCapacity, NewLog(0).Capacity())
	require.Equal(t, DefaultCapacity, NewLog(-1).Capacity())
	require.Equal(t, 10, NewLog(10).Capacity())
}

// TestLogConcurrentSnapshots exercises appends racing snapshot reads.
func TestLogConcurrentSnapshots(t *testing.T) {
	t.Parallel()

	log := NewLog(16)

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		for i := 0; i < 200; i++ {
			log.Append(entryAt(i))
		}
	}()

	go func() {
		defer wg.Done()

		for i := 0; i < 200; i++ {
			snapshot := log.Snapshot()
			require.LessOrEqual(t, len(snapshot), 16)
		}
	}()

	wg.Wait()
}
