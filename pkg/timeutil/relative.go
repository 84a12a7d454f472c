package timeutil

import (
	"fmt"
	"time"
)

const dateFormat = "Jan 2, 2006"

// Relative renders how long ago t was relative to now using the largest
// fitting unit ("just now", "5m ago", "3d ago"). Anything older than eight
// weeks falls back to the calendar date.
func Relative(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	case d < 8*7*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(d/(7*24*time.Hour)))
	default:
		return t.Local().Format(dateFormat)
	}
}
