package report

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agrolab/farm-controller/internal/domain/farm"
	"github.com/agrolab/farm-controller/internal/repository/journal"
)

// TestRunWithMissingJournal treats an absent journal as "no data", not an error.
func TestRunWithMissingJournal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	opts := &Options{
		ConfigPath:  filepath.Join(dir, "settings.yaml"),
		JournalFile: filepath.Join(dir, "missing.json"),
	}

	require.NoError(t, Run(context.Background(), opts))
}

// TestRunWithRecordedHistory reports over a persisted journal without error.
func TestRunWithRecordedHistory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	journalFile := filepath.Join(dir, "journal.json")

	entries := []farm.LogEntry{
		{
			Timestamp: time.Date(2026, 8, 27, 8, 0, 0, 0, time.Local),
			Reading:   farm.Reading{Temperature: 31.0, Humidity: 38.0},
			FanOn:     true,
			PumpOn:    true,
		},
		{
			Timestamp: time.Date(2026, 8, 27, 8, 0, 5, 0, time.Local),
			Reading:   farm.Reading{Temperature: 27.5, Humidity: 51.0},
		},
	}
	require.NoError(t, journal.NewFileJournal(journalFile).Save(context.Background(), entries))

	opts := &Options{
		ConfigPath:  filepath.Join(dir, "settings.yaml"),
		JournalFile: journalFile,
	}

	require.NoError(t, Run(context.Background(), opts))
}
