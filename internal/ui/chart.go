package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sleepsim/internal/player"
	"sleepsim/internal/sim"
)

// Chart dimensions used when the terminal size is unknown
const (
	DefaultChartWidth  = 60
	DefaultChartHeight = 11
	minChartWidth      = 10
	minChartHeight     = 5
)

type series struct {
	label  string
	mark   string
	style  lipgloss.Style
	values []float64
}

var chartStyles = struct {
	energy     lipgloss.Style
	mood       lipgloss.Style
	efficiency lipgloss.Style
	axis       lipgloss.Style
}{
	energy:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF75B5")),
	mood:       lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF")),
	efficiency: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
	axis:       lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
}

func toFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// chartRow maps a percentage onto a grid row, 0 being the top
func chartRow(v float64, height int) int {
	v = math.Max(player.MinStat, math.Min(v, player.MaxStat))
	return height - 1 - int(math.Round(v/player.MaxStat*float64(height-1)))
}

// RenderChart draws energy, mood and work efficiency per day as a line chart.
// Days run left to right from 1; when there are more days than columns,
// columns sample the days evenly from the first day to the last.
func RenderChart(t sim.Trajectory, width, height int) string {
	days := t.Days()
	if days == 0 {
		return chartStyles.axis.Render("No days simulated.")
	}
	width = max(width, minChartWidth)
	height = max(height, minChartHeight)
	cols := min(days, width)

	all := []series{
		{label: "Energy Level", mark: "●", style: chartStyles.energy, values: toFloats(t.Energy)},
		{label: "Mood Level", mark: "◆", style: chartStyles.mood, values: toFloats(t.Mood)},
		{label: "Productivity Level", mark: "▲", style: chartStyles.efficiency, values: t.Efficiency},
	}

	grid := make([][]string, height)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	for _, s := range all {
		for c := 0; c < cols; c++ {
			day := c * (days - 1) / max(cols-1, 1)
			grid[chartRow(s.values[day], height)][c] = s.style.Render(s.mark)
		}
	}

	var b strings.Builder
	b.WriteString(gameStyles.title.Render("Sleep Deprivation Simulation Over Time for " + t.Name))
	b.WriteString("\n")

	for r, row := range grid {
		label := "    "
		tick := "│"
		if r == 0 || r == height-1 || r == (height-1)/2 {
			label = fmt.Sprintf("%3d ", player.MaxStat-r*player.MaxStat/(height-1))
			tick = "┤"
		}
		b.WriteString(chartStyles.axis.Render(label + tick))
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}

	b.WriteString(chartStyles.axis.Render("    └" + strings.Repeat("─", cols)))
	b.WriteString("\n")

	first, last := "1", fmt.Sprintf("%d", days)
	gap := max(cols-len(first)-len(last), 1)
	b.WriteString(chartStyles.axis.Render("     " + first + strings.Repeat(" ", gap) + last + "  Days"))
	b.WriteString("\n")

	legend := make([]string, 0, len(all))
	for _, s := range all {
		legend = append(legend, s.style.Render(s.mark)+" "+t.Name+" "+s.label)
	}
	b.WriteString(strings.Join(legend, "   "))
	return b.String()
}
