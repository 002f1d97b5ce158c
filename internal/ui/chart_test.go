package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sleepsim/internal/sim"
)

func TestChartRow(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected int
	}{
		{"top", 100, 0},
		{"bottom", 0, 10},
		{"middle", 50, 5},
		{"above range", 150, 0},
		{"below range", -5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, chartRow(tt.value, 11))
		})
	}
}

func TestRenderChartEmpty(t *testing.T) {
	assert.Contains(t, RenderChart(sim.Trajectory{Name: "A"}, 40, 11), "No days simulated.")
}

func TestRenderChart(t *testing.T) {
	traj := trajectory("Alice", 5)
	out := RenderChart(traj, DefaultChartWidth, DefaultChartHeight)

	assert.Contains(t, out, "Sleep Deprivation Simulation Over Time for Alice")
	assert.Contains(t, out, "100 ┤")
	assert.Contains(t, out, " 50 ┤")
	assert.Contains(t, out, "  0 ┤")
	assert.Contains(t, out, "5  Days")
	assert.Contains(t, out, "Alice Energy Level")
	assert.Contains(t, out, "Alice Mood Level")
	assert.Contains(t, out, "Alice Productivity Level")

	// title, grid rows, axis, day labels, legend
	assert.Len(t, strings.Split(out, "\n"), DefaultChartHeight+4)
}

func TestRenderChartSamplesLongRuns(t *testing.T) {
	out := RenderChart(trajectory("Bob", 40), 10, 5)

	assert.Contains(t, out, "└"+strings.Repeat("─", 10)+"\n")
	assert.Contains(t, out, "40  Days")
	assert.Len(t, strings.Split(out, "\n"), 5+4)
}

func TestRenderChartMinimumSize(t *testing.T) {
	out := RenderChart(trajectory("Cy", 3), 1, 1)
	assert.Len(t, strings.Split(out, "\n"), minChartHeight+4)
}

func TestRenderChartPlotsFinalDay(t *testing.T) {
	const days = 100
	traj := sim.Trajectory{
		Name:       "Dee",
		Energy:     make([]int, days),
		Mood:       make([]int, days),
		Efficiency: make([]float64, days),
		Reports:    make([]sim.DayReport, days),
	}
	traj.Energy[days-1] = 100

	lines := strings.Split(RenderChart(traj, 60, DefaultChartHeight), "\n")
	top := lines[1]
	assert.True(t, strings.HasPrefix(top, "100 ┤"))
	assert.Equal(t, 1, strings.Count(top, "●"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(top, " "), "●"))
	assert.Contains(t, lines[DefaultChartHeight+2], "100  Days")
}

func TestRenderChartPlotsFirstDay(t *testing.T) {
	const days = 80
	traj := sim.Trajectory{
		Name:       "Eve",
		Energy:     make([]int, days),
		Mood:       make([]int, days),
		Efficiency: make([]float64, days),
		Reports:    make([]sim.DayReport, days),
	}
	traj.Energy[0] = 100

	top := strings.Split(RenderChart(traj, 30, DefaultChartHeight), "\n")[1]
	assert.True(t, strings.HasPrefix(top, "100 ┤●"))
}
