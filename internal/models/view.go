package models

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// ViewKind selects which family of schedules the dashboard shows.
type ViewKind string

const (
	ViewSubdaily ViewKind = "subdaily"
	ViewDaily    ViewKind = "daily"
)

// View is a presentation policy over the shared timeline pipeline.
type View struct {
	Kind  ViewKind
	Title string

	// FreqSubdayType is the msdb schedule filter (8 = hours, 1 = once a day).
	FreqSubdayType int
	Statuses       StatusTable

	// SingleBranchRollover enables the simplified daily rollover rule.
	SingleBranchRollover bool
	MinVisibleMinutes    float64
	BarWidth             float64
	TickLabelLimit       int

	ReloadInterval time.Duration
	ClampPan       bool
	DefaultPort    int
}

// ParseViewKind validates a view name.
func ParseViewKind(name string) (ViewKind, error) {
	switch ViewKind(strings.ToLower(strings.TrimSpace(name))) {
	case ViewSubdaily, "":
		return ViewSubdaily, nil
	case ViewDaily:
		return ViewDaily, nil
	default:
		return "", errors.Newf("unknown view %q (want subdaily or daily)", name)
	}
}

// ViewFor returns the built-in policy for kind.
func ViewFor(kind ViewKind) View {
	if kind == ViewDaily {
		return View{
			Kind:                 ViewDaily,
			Title:                "Job Status Visualization",
			FreqSubdayType:       1,
			Statuses:             DailyStatuses,
			SingleBranchRollover: true,
			MinVisibleMinutes:    0,
			BarWidth:             0.3,
			TickLabelLimit:       7,
			ClampPan:             true,
			DefaultPort:          3002,
		}
	}
	return View{
		Kind:              ViewSubdaily,
		Title:             "Job Status Visualization",
		FreqSubdayType:    8,
		Statuses:          SubdailyStatuses,
		MinVisibleMinutes: 5,
		TickLabelLimit:    20,
		ReloadInterval:    30 * time.Second,
		DefaultPort:       80,
	}
}
