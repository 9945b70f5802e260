package wellbeing

import "time"

// SchedulePolicy picks the slot for an auto-linked counseling session.
// It is a plain function so tests can substitute deterministic time and
// deployments can swap the booking rule without touching the matcher.
type SchedulePolicy func(now time.Time) time.Time

// FixedNextDayPolicy books the next day at the given hour, minute zero.
func FixedNextDayPolicy(hour int) SchedulePolicy {
	return func(now time.Time) time.Time {
		next := now.UTC().AddDate(0, 0, 1)
		return time.Date(next.Year(), next.Month(), next.Day(), hour, 0, 0, 0, time.UTC)
	}
}
