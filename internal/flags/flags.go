// Package flags defines canonical CLI flag names shared across the CLI and
// its tests.
// IMPORTANT: These are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringVar(&cfg.Workspace.Dir, flags.FlagDir, "", "...")
//	arg := "--" + flags.FlagDir
package flags

const (
	// Workspace
	FlagDir = "dir"

	// Checklist
	FlagManifest = "manifest"
	FlagPhases   = "phases"

	// Output
	FlagOut       = "out"
	FlagOutFormat = "out-format"
	FlagReport    = "report"
	FlagNoColor   = "no-color"

	// Runtime
	FlagVerbose = "verbose"
)
