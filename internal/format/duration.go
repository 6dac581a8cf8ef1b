// Package format renders durations and floating-point values as text.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for log output: whole
// microseconds below a millisecond, whole milliseconds below a second, and
// time.Duration's own representation above. Zero renders as "< 1µs".
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
