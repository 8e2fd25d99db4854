// Package history provides the bounded, insertion-ordered observation log.
//
// The log holds at most its configured capacity; appending beyond that
// evicts the oldest entry first (pure FIFO). Snapshots are fresh copies,
// so readers never observe or influence later appends.
package history
