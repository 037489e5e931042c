package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders a duration at a precision matching its
// size: whole microseconds under a millisecond, whole milliseconds under a
// second, and time.Duration notation beyond that.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}

// FormatElapsed formats a running duration at whole-second granularity, for
// live progress suffixes where sub-second churn is noise. Durations under one
// second render as "0s".
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: The duration truncated to seconds, in time.Duration notation.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return d.Truncate(time.Second).String()
}
