// Package report computes and logs statistics over the persisted journal.
package report
