// Package emoji provides symbol constants for CLI output.
package emoji

// Status symbols shared by every command.
const (
	// Success marks a course or file that was processed.
	Success = "✓"

	// Error marks a course that was aborted.
	Error = "✗"

	// Warning marks a source file that was skipped.
	Warning = "!"

	// Info prefixes summary lines.
	Info = "i"
)
