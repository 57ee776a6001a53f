package history

import (
	"fmt"
	"html"
	"strings"

	"jobtimeline/internal/models"
)

const missingValue = "n/a"

// BuildBars converts fetched run records into timeline bars for the view.
// Output order follows input order.
func BuildBars(records []models.JobRunRecord, view models.View, now models.ClockTime) []models.TimelineBar {
	offset := offsetFunc(view)
	bars := make([]models.TimelineBar, 0, len(records))
	for _, rec := range records {
		start := offset(rec.ScheduledStart, now)
		duration := rec.Duration.Seconds() / 60
		visible := duration
		if visible < view.MinVisibleMinutes {
			visible = view.MinVisibleMinutes
		}
		bars = append(bars, models.TimelineBar{
			JobName:                rec.JobName,
			Status:                 rec.Status,
			Color:                  rec.Status.Color(),
			StartOffsetMinutes:     start,
			DurationMinutes:        duration,
			VisibleDurationMinutes: visible,
			EndOffsetMinutes:       start + visible,
			HoverText:              hoverText(rec, start, duration),
		})
	}
	return bars
}

// GroupByStatus partitions bars into one series per status. Series appear in
// order of first occurrence; bars keep their relative order.
func GroupByStatus(bars []models.TimelineBar) []models.Series {
	index := make(map[models.Status]int)
	var series []models.Series
	for _, bar := range bars {
		i, ok := index[bar.Status]
		if !ok {
			i = len(series)
			index[bar.Status] = i
			series = append(series, models.Series{
				Status: bar.Status,
				Color:  bar.Status.Color(),
			})
		}
		series[i].Bars = append(series[i].Bars, bar)
	}
	return series
}

// FormatMinutes renders a duration in minutes the way bars and hovers show it.
func FormatMinutes(minutes float64) string {
	return fmt.Sprintf("%.1f min", minutes)
}

func hoverText(rec models.JobRunRecord, start, duration float64) string {
	var b strings.Builder
	b.WriteString("Job Name: ")
	b.WriteString(html.EscapeString(rec.JobName))
	b.WriteString("<br>Start: ")
	b.WriteString(HoverTime(start))
	b.WriteString("<br>Duration: ")
	b.WriteString(FormatMinutes(duration))
	b.WriteString("<br>Run: ")
	b.WriteString(html.EscapeString(joinNonEmpty(rec.RunDate, rec.ScheduledStart.String())))
	b.WriteString("<br>Next Run: ")
	b.WriteString(html.EscapeString(joinNonEmpty(rec.NextRunDate, rec.NextRunTime)))
	return b.String()
}

func joinNonEmpty(date, clock string) string {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	switch {
	case date == "" && clock == "":
		return missingValue
	case date == "":
		return clock
	case clock == "":
		return date
	default:
		return date + " " + clock
	}
}
