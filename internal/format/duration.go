// Package format holds small display helpers that are not part of the
// numeric core: human-readable durations for logs and timing output.
package format

import (
	"fmt"
	"time"
)

// Duration formats a time.Duration for display. It shows microseconds for
// durations less than a millisecond, milliseconds for durations less than a
// second, and the default string representation otherwise.
func Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
