package history

import "jobtimeline/internal/models"

const (
	minutesPerDay = 1440
	// rolloverCutoff separates "probably yesterday" from "probably later today"
	// when the recorded hour is ahead of the current hour.
	rolloverCutoff = 660
)

// StartOffset places a bare time of day on the rolling timeline anchored at now.
// Values are minutes since today's midnight; runs inferred to belong to
// yesterday come out negative.
func StartOffset(t, now models.ClockTime) float64 {
	raw := t.Minutes()
	switch {
	case now.Hour == t.Hour:
		if now.Minute >= t.Minute {
			return raw
		}
		return raw - minutesPerDay
	case now.Hour < t.Hour:
		if raw > rolloverCutoff {
			return raw - minutesPerDay
		}
		return raw
	default:
		return raw
	}
}

// DailyStartOffset is the reduced rule used by the daily view: only late
// times at or after the current hour roll back a day.
func DailyStartOffset(t, now models.ClockTime) float64 {
	raw := t.Minutes()
	if now.Hour <= t.Hour && raw > rolloverCutoff {
		return raw - minutesPerDay
	}
	return raw
}

// offsetFunc returns the normaliser matching the view's rollover policy.
func offsetFunc(view models.View) func(t, now models.ClockTime) float64 {
	if view.SingleBranchRollover {
		return DailyStartOffset
	}
	return StartOffset
}
