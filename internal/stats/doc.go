// Package stats derives aggregate statistics from a history log snapshot.
package stats
