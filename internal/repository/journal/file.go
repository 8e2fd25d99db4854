package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/agrolab/farm-controller/internal/config"
	"github.com/agrolab/farm-controller/internal/domain/farm"
)

// timestampLayout is the persisted timestamp format.
const timestampLayout = "2006-01-02 15:04:05"

// ErrNotFound is returned when the journal file does not exist yet.
var ErrNotFound = errors.New("journal not found")

// record is the persisted shape of a single log entry.
type record struct {
	// Timestamp is the cycle completion time in local time.
	Timestamp string `json:"timestamp"`
	// Temperature in °C, one decimal place.
	Temperature float64 `json:"temperature"`
	// Humidity in %, one decimal place.
	Humidity float64 `json:"humidity"`
	// FanStatus is the fan state at the end of the cycle.
	FanStatus bool `json:"fan_status"`
	// PumpStatus is the pump state at the end of the cycle.
	PumpStatus bool `json:"pump_status"`
}

// FileJournal persists history snapshots to a JSON file on disk.
type FileJournal struct {
	// path is the filesystem location of the journal file.
	path string
	// mu protects concurrent access to the journal file.
	mu sync.Mutex
}

// NewFileJournal creates a journal that reads/writes JSON at the provided path.
func NewFileJournal(path string) *FileJournal {
	return &FileJournal{
		path: filepath.Clean(path),
	}
}

// Save writes the snapshot to disk, replacing any previous contents.
func (j *FileJournal) Save(_ context.Context, entries []farm.LogEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	records := make([]record, 0, len(entries))
	for _, entry := range entries {
		records = append(records, record{
			Timestamp:   entry.Timestamp.Local().Format(timestampLayout),
			Temperature: entry.Reading.Temperature,
			Humidity:    entry.Reading.Humidity,
			FanStatus:   entry.FanOn,
			PumpStatus:  entry.PumpOn,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}

	if err := os.WriteFile(j.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write journal file: %w", err)
	}

	return nil
}

// Load reads the journal from disk and converts it back to log entries.
func (j *FileJournal) Load(_ context.Context) ([]farm.LogEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	contents, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read journal file: %w", err)
	}

	var records []record
	if err := json.Unmarshal(contents, &records); err != nil {
		return nil, fmt.Errorf("decode journal file: %w", err)
	}

	entries := make([]farm.LogEntry, 0, len(records))

	for i, rec := range records {
		timestamp, err := time.ParseInLocation(timestampLayout, rec.Timestamp, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp of record %d: %w", i, err)
		}

		entries = append(entries, farm.LogEntry{
			Timestamp: timestamp,
			Reading: farm.Reading{
				Temperature: rec.Temperature,
				Humidity:    rec.Humidity,
			},
			FanOn:  rec.FanStatus,
			PumpOn: rec.PumpStatus,
		})
	}

	return entries, nil
}
