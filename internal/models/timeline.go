package models

// TimelineBar is the chart-ready interval of a single job run.
type TimelineBar struct {
	JobName                string  `json:"job_name"`
	Status                 Status  `json:"status"`
	Color                  string  `json:"color"`
	StartOffsetMinutes     float64 `json:"start_offset_minutes"`
	DurationMinutes        float64 `json:"duration_minutes"`
	VisibleDurationMinutes float64 `json:"visible_duration_minutes"`
	EndOffsetMinutes       float64 `json:"end_offset_minutes"`
	HoverText              string  `json:"hover_text"`
}

// Series groups the bars sharing one status, in fetch order.
type Series struct {
	Status Status        `json:"status"`
	Color  string        `json:"color"`
	Bars   []TimelineBar `json:"bars"`
}

// AxisPlan describes the rolling time axis of the chart.
type AxisPlan struct {
	NowMinutes  int      `json:"now_minutes"`
	RangeStart  int      `json:"range_start"`
	DomainStart int      `json:"domain_start"`
	StepMinutes int      `json:"step_minutes"`
	TickValues  []int    `json:"tick_values"`
	TickLabels  []string `json:"tick_labels"`
}
