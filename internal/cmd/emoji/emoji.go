// Package emoji provides symbol constants for CLI output.
package emoji

// Symbols used for status indicators and user feedback in terminal output.
const (
	// Success marks a held certification or a passed check.
	Success = "✓"

	// Error marks a failed check.
	Error = "✗"

	// Warning marks a non-fatal finding.
	Warning = "!"

	// Optional marks an absent value.
	Optional = "-"

	// Star marks the excellent certification.
	Star = "★"
)
