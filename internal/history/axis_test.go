package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepIntervalBoundaries(t *testing.T) {
	cases := map[int]int{
		0:    1,
		59:   1,
		60:   5,
		119:  5,
		120:  10,
		359:  10,
		360:  15,
		1440: 15,
	}
	for elapsed, want := range cases {
		assert.Equal(t, want, StepInterval(elapsed), "elapsed=%d", elapsed)
	}
}

func TestTickLabel(t *testing.T) {
	assert.Equal(t, "00:00", TickLabel(0))
	assert.Equal(t, "09:05", TickLabel(545))
	assert.Equal(t, "23:45", TickLabel(-15))
	assert.Equal(t, "10:30", TickLabel(630-1440))
	assert.Equal(t, "00:00", TickLabel(-1440))
}

func TestTickLabelsIncludeEnd(t *testing.T) {
	assert.Equal(t, []string{"23:30", "23:45", "00:00", "00:15"}, TickLabels(-30, 15, 15))
	assert.Equal(t, []string{"01:00", "01:10"}, TickLabels(60, 79, 10))
	assert.Nil(t, TickLabels(0, 10, 0))
}

func TestHoverTime(t *testing.T) {
	assert.Equal(t, "9:00", HoverTime(540))
	assert.Equal(t, "0:05", HoverTime(5))
	assert.Equal(t, "23:50", HoverTime(-10))
	assert.Equal(t, "10:40", HoverTime(640-1440))
	assert.Equal(t, "10:05", HoverTime(605.5))
}

func TestPlanAxis(t *testing.T) {
	plan := PlanAxis(clock(9, 30, 12))

	assert.Equal(t, 570, plan.NowMinutes)
	assert.Equal(t, 390, plan.RangeStart)
	assert.Equal(t, 570-1440, plan.DomainStart)
	assert.Equal(t, 15, plan.StepMinutes)

	require.Len(t, plan.TickValues, 1440/15+1)
	require.Len(t, plan.TickLabels, len(plan.TickValues))
	assert.Equal(t, plan.DomainStart, plan.TickValues[0])
	assert.Equal(t, plan.NowMinutes, plan.TickValues[len(plan.TickValues)-1])
	assert.Equal(t, "09:30", plan.TickLabels[0])
	assert.Equal(t, "09:30", plan.TickLabels[len(plan.TickLabels)-1])
	assert.Equal(t, "09:45", plan.TickLabels[1])
}
