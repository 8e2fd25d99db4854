// Package measure performs a single ad-hoc measurement cycle and appends the
// observation to the journal file.
package measure
