package history

import (
	"fmt"

	"jobtimeline/internal/models"
)

const (
	// DisplayWindowMinutes is the initially visible lookback.
	DisplayWindowMinutes = 180
	// DomainWindowMinutes is the full scrollable lookback covered by ticks.
	DomainWindowMinutes = minutesPerDay
)

// StepInterval picks the tick spacing in minutes for an elapsed span.
func StepInterval(elapsed int) int {
	switch {
	case elapsed < 60:
		return 1
	case elapsed < 120:
		return 5
	case elapsed < 360:
		return 10
	default:
		return 15
	}
}

// TickLabel formats an offset as the zero padded HH:MM it lands on when added
// to a reference midnight.
func TickLabel(offset int) string {
	m := offset % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// TickLabels returns labels for start, start+step, ... up to and including end.
func TickLabels(start, end, step int) []string {
	if step <= 0 {
		return nil
	}
	labels := make([]string, 0, (end-start)/step+1)
	for cur := start; cur <= end; cur += step {
		labels = append(labels, TickLabel(cur))
	}
	return labels
}

// HoverTime formats an offset for hover text as H:MM.
func HoverTime(offset float64) string {
	if offset < 0 {
		offset += minutesPerDay
	}
	total := int(offset)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// PlanAxis computes the visible range and tick layout for the given moment.
func PlanAxis(now models.ClockTime) models.AxisPlan {
	nowMinutes := now.Hour*60 + now.Minute
	domainStart := nowMinutes - DomainWindowMinutes
	step := StepInterval(nowMinutes - domainStart)

	values := make([]int, 0, DomainWindowMinutes/step+1)
	for cur := domainStart; cur <= nowMinutes; cur += step {
		values = append(values, cur)
	}

	return models.AxisPlan{
		NowMinutes:  nowMinutes,
		RangeStart:  nowMinutes - DisplayWindowMinutes,
		DomainStart: domainStart,
		StepMinutes: step,
		TickValues:  values,
		TickLabels:  TickLabels(domainStart, nowMinutes, step),
	}
}
