// Package journal persists history log snapshots to a JSON file.
//
// The on-disk shape is an ordered array of objects with a string-formatted
// local timestamp, one-decimal temperature and humidity, and boolean fan and
// pump flags, for compatibility with existing dashboards.
package journal
