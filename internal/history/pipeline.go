package history

import "jobtimeline/internal/models"

// Timeline is everything the renderer needs for one page.
type Timeline struct {
	View   models.View
	Series []models.Series
	Bars   []models.TimelineBar
	Axis   models.AxisPlan
}

// Build runs the normalise, interval and axis stages for a fetch result.
func Build(records []models.JobRunRecord, view models.View, now models.ClockTime) Timeline {
	bars := BuildBars(records, view, now)
	return Timeline{
		View:   view,
		Series: GroupByStatus(bars),
		Bars:   bars,
		Axis:   PlanAxis(now),
	}
}
