package core

import "fmt"

// FormatElapsed renders a millisecond count as
// "<days> days <hh> hours <mm> minutes <ss> seconds". Sub-second precision is
// dropped and the unit names are always plural.
func FormatElapsed(ms uint64) string {
	seconds := ms / MillisecondsPerSecond
	minutes := seconds / SecondsPerMinute
	hours := minutes / MinutesPerHour
	days := hours / HoursPerDay

	seconds %= SecondsPerMinute
	minutes %= MinutesPerHour
	hours %= HoursPerDay

	return fmt.Sprintf("%d days %02d hours %02d minutes %02d seconds", days, hours, minutes, seconds)
}
