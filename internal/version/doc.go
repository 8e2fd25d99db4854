// Package version exposes build metadata injected at link time and a cobra
// `version` subcommand for the CLI.
package version
