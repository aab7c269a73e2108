package utils

import "fmt"

// FormatRoundedUnit renders a duration in seconds using its largest whole unit,
// e.g. 45s, 12m, 3h. Negative values are treated as their magnitude.
func FormatRoundedUnit(seconds int64) string {
	if seconds < 0 {
		seconds = -seconds
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds >= 3600 {
		return fmt.Sprintf("%dh", seconds/3600)
	}
	return fmt.Sprintf("%dm", seconds/60)
}
