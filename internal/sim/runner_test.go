package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sleepsim/internal/player"
)

func TestRunNonPositiveDays(t *testing.T) {
	for _, days := range []int{0, -3} {
		p := player.New("Alice")
		called := false
		traj := Run(&p, days, midpointSource{}, func(int, DayReport) { called = true })

		assert.Empty(t, traj.Energy)
		assert.Empty(t, traj.Mood)
		assert.Empty(t, traj.Efficiency)
		assert.Zero(t, traj.Days())
		assert.False(t, called)
		assert.Equal(t, player.New("Alice"), p)
	}
}

func TestRunAlignedSequences(t *testing.T) {
	p := player.New("Bob")
	var observed []int
	traj := Run(&p, 30, NewStream(99, 0), func(day int, r DayReport) {
		observed = append(observed, day)
	})

	require.Equal(t, 30, traj.Days())
	require.Len(t, traj.Energy, 30)
	require.Len(t, traj.Mood, 30)
	require.Len(t, traj.Efficiency, 30)
	assert.Equal(t, "Bob", traj.Name)

	for i, r := range traj.Reports {
		assert.Equal(t, r.Energy, traj.Energy[i])
		assert.Equal(t, r.Mood, traj.Mood[i])
		assert.Equal(t, r.WorkEfficiency, traj.Efficiency[i])
		assert.Equal(t, i+1, observed[i])
	}

	// the player is left in the final day's state
	assert.Equal(t, traj.Energy[29], p.Energy)
	assert.Equal(t, traj.Mood[29], p.Mood)
}

func TestRunMidpointTrajectory(t *testing.T) {
	p := player.New("Carol")
	traj := Run(&p, 3, midpointSource{}, nil)

	// energy recovers to the cap each night; mood climbs by 2 a day
	assert.Equal(t, []int{100, 100, 100}, traj.Energy)
	assert.Equal(t, []int{52, 54, 56}, traj.Mood)
	assert.Equal(t, []float64{65, 65, 65}, traj.Efficiency)
}

func TestRunReproducibleWithSameStream(t *testing.T) {
	a, b := player.New("Dan"), player.New("Dan")
	ta := Run(&a, 50, NewStream(12345, 2), nil)
	tb := Run(&b, 50, NewStream(12345, 2), nil)

	assert.Equal(t, ta, tb)
	assert.Equal(t, a, b)
}

func TestNarrate(t *testing.T) {
	p := player.New("Eve")
	r := Step(&p, midpointSource{})
	lines := Narrate("Eve", 1, r)

	want := []string{
		"Day 1 for Eve:",
		"Waking up... Energy level: 80% (lost 20%)",
		"Had breakfast. Energy level: 90% (gained 10%)",
		"Commute was exhausting. Mood level: 42 (lost 8)",
		"Worked for 8 hours with 65.00% efficiency.",
		"Felt productive. Mood level: 52 (gained 10)",
		"Sleep was okay. Energy level: 120% (gained 30%)",
		player.SummaryManageable,
	}
	assert.Equal(t, want, lines)
}

func TestNarrateStruggleAndSkippedBreakfast(t *testing.T) {
	p := player.Player{Name: "Frank", Energy: 40, Mood: 30, Productivity: 40}
	r := Step(&p, lowSource{})
	text := strings.Join(Narrate("Frank", 4, r), "\n")

	assert.Contains(t, text, "Day 4 for Frank:")
	assert.Contains(t, text, "Skipped breakfast. Energy level remains low.")
	assert.Contains(t, text, "Struggled to concentrate. Mood level: 20 (lost 5)")
	assert.Contains(t, text, "Sleep was poor.")
	assert.Contains(t, text, player.SummaryExhausted)
}
