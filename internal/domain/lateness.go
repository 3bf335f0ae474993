package domain

import "time"

// Cutoff for an on-time check-in. 09:15 exactly is still on time;
// anything past it counts as late. Both halves are independently
// adjustable.
const (
	LateThresholdHour   = 9
	LateThresholdMinute = 15
)

// IsLate reports whether a check-in timestamp is past the cutoff.
//
// The verdict uses the wall-clock hour and minute in the timestamp's own
// location, never a UTC-normalized view: shifting a timestamp to another
// zone changes the verdict, which is intended.
func IsLate(t time.Time) bool {
	h, m := t.Hour(), t.Minute()
	if h > LateThresholdHour {
		return true
	}
	return h == LateThresholdHour && m > LateThresholdMinute
}
