// Package exitcode defines named exit codes for the has CLI.
//
// A normal probe run exits with the number of tools that were not found,
// so shell scripts can test `has git curl || ...` directly.
package exitcode

const (
	Success   = 0   // Every requested tool was found, or -v/-h was requested
	Usage     = 1   // No arguments or an unknown leading option
	MaxStatus = 255 // Largest status a POSIX parent can observe
)

// FromFailures maps a not-found count to a process exit status.
// Counts above MaxStatus are clamped so they never wrap around to 0.
func FromFailures(n int) int {
	switch {
	case n <= 0:
		return Success
	case n > MaxStatus:
		return MaxStatus
	default:
		return n
	}
}

// Name returns the human-readable name for the given exit code.
func Name(code int) string {
	switch {
	case code == Success:
		return "Success"
	case code > 0 && code <= MaxStatus:
		return "NotFound"
	default:
		return "unknown"
	}
}
