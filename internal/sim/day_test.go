package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sleepsim/internal/player"
)

func TestStepMidpointScenario(t *testing.T) {
	p := player.New("Alice")
	r := Step(&p, midpointSource{})

	assert.Equal(t, 20, r.EnergyLoss)
	assert.Equal(t, 80, r.EnergyAfterWake)
	assert.True(t, r.AteBreakfast)
	assert.Equal(t, 10, r.BreakfastGain)
	assert.Equal(t, 90, r.EnergyAtWork)
	assert.Equal(t, 8, r.CommuteMoodLoss)
	assert.Equal(t, 42, r.MoodAfterCommute)
	assert.InDelta(t, 65.0, r.WorkEfficiency, 1e-9)
	assert.Equal(t, 8, r.WorkHours)
	assert.Equal(t, 10, r.MoodDelta)
	assert.Equal(t, 52, r.MoodAfterWork)
	assert.Equal(t, SleepOkay, r.SleepQuality)
	assert.Equal(t, 30, r.SleepGain)
	assert.Equal(t, 120, r.EnergyAfterSleep)

	assert.Equal(t, 100, r.Energy)
	assert.Equal(t, 52, r.Mood)
	assert.Equal(t, player.Player{Name: "Alice", Energy: 100, Mood: 52, Productivity: 70}, p)
}

func TestStepSkippedBreakfast(t *testing.T) {
	// A roll of exactly 0.2 is not strictly greater, so breakfast is skipped.
	src := &scriptedSource{
		ints:   []int{0, 0, 0, 0, 0, 0},
		floats: []float64{BreakfastSkipChance},
	}
	p := player.New("Bob")
	r := Step(&p, src)

	assert.False(t, r.AteBreakfast)
	assert.Zero(t, r.BreakfastGain)
	assert.Equal(t, r.EnergyAfterWake, r.EnergyAtWork)
	assert.Equal(t, 90, r.EnergyAtWork)
}

func TestStepStrugglingAtWork(t *testing.T) {
	p := player.Player{Name: "Carol", Energy: 40, Mood: 60, Productivity: 40}
	r := Step(&p, lowSource{})

	// 40-10 = 30 energy at work; efficiency 40 - 70*0.5 = 5
	assert.Equal(t, 30, r.EnergyAtWork)
	assert.InDelta(t, 5.0, r.WorkEfficiency, 1e-9)
	assert.True(t, r.Struggled())
	assert.Equal(t, -5, r.MoodDelta)
	assert.Equal(t, 60-5-5, r.Mood)
	assert.Equal(t, SleepPoor, r.SleepQuality)
	assert.Equal(t, 35, r.Energy)
}

func TestStepEfficiencyNeverNegative(t *testing.T) {
	p := player.Player{Name: "Dan", Energy: 10, Mood: 50, Productivity: 0}
	r := Step(&p, lowSource{})

	assert.Zero(t, r.WorkEfficiency)
	assert.True(t, r.Struggled())
}

func TestStepKeepsStatsInRange(t *testing.T) {
	starts := []player.Player{
		player.New("default"),
		{Name: "drained", Energy: 0, Mood: 0, Productivity: 0},
		{Name: "peak", Energy: 100, Mood: 100, Productivity: 100},
		{Name: "overflow", Energy: 500, Mood: -300, Productivity: 250},
	}

	for i, start := range starts {
		t.Run(start.Name, func(t *testing.T) {
			p := start
			src := NewStream(42, i)
			for day := 0; day < 500; day++ {
				Step(&p, src)
				require.GreaterOrEqual(t, p.Energy, 0)
				require.LessOrEqual(t, p.Energy, 100)
				require.GreaterOrEqual(t, p.Mood, 0)
				require.LessOrEqual(t, p.Mood, 100)
				require.Equal(t, start.Productivity, p.Productivity)
			}
		})
	}
}

func TestStepDrawsStayInRange(t *testing.T) {
	src := NewStream(7, 0)
	p := player.New("Eve")
	seen := map[SleepQuality]int{}

	for day := 0; day < 10000; day++ {
		productivity := p.Productivity
		r := Step(&p, src)

		assert.True(t, WakeEnergyLoss.Contains(r.EnergyLoss))
		if r.AteBreakfast {
			assert.True(t, BreakfastGain.Contains(r.BreakfastGain))
		}
		assert.True(t, CommuteMoodLoss.Contains(r.CommuteMoodLoss))
		assert.True(t, WorkHours.Contains(r.WorkHours))
		if r.Struggled() {
			assert.True(t, StruggleMoodLoss.Contains(-r.MoodDelta))
		} else {
			assert.True(t, ProductiveMoodGain.Contains(r.MoodDelta))
		}

		// efficiency depends only on productivity and the energy carried into work
		assert.GreaterOrEqual(t, r.WorkEfficiency, 0.0)
		assert.Equal(t, WorkEfficiency(productivity, r.EnergyAtWork), r.WorkEfficiency)

		require.Truef(t, SleepRange(r.SleepQuality).Contains(r.SleepGain),
			"day %d: %s sleep gained %d", day, r.SleepQuality, r.SleepGain)
		seen[r.SleepQuality]++
	}

	for _, q := range sleepQualities {
		assert.Greater(t, seen[q], 3000, "sleep quality %s", q)
	}
}

func TestSleepRangesOrdered(t *testing.T) {
	poor, okay, good := SleepRange(SleepPoor), SleepRange(SleepOkay), SleepRange(SleepGood)

	assert.Equal(t, Range{5, 20}, poor)
	assert.Equal(t, Range{20, 40}, okay)
	assert.Equal(t, Range{40, 60}, good)
	assert.LessOrEqual(t, poor.Hi, okay.Lo)
	assert.LessOrEqual(t, okay.Hi, good.Lo)
}

func TestBreakfastFrequency(t *testing.T) {
	const days = 20000
	src := NewStream(2024, 3)
	eaten := 0

	for i := 0; i < days; i++ {
		p := player.New("Frank")
		if Step(&p, src).AteBreakfast {
			eaten++
		}
	}

	assert.InDelta(t, 0.8, float64(eaten)/days, 0.02)
}

func TestSleepQualityString(t *testing.T) {
	assert.Equal(t, "poor", SleepPoor.String())
	assert.Equal(t, "okay", SleepOkay.String())
	assert.Equal(t, "good", SleepGood.String())
	assert.Equal(t, "unknown", SleepQuality(9).String())
}

func TestBetweenInclusive(t *testing.T) {
	src := NewStream(1, 1)
	hitLo, hitHi := false, false
	for i := 0; i < 2000; i++ {
		v := between(src, 6, 9)
		require.True(t, v >= 6 && v <= 9)
		hitLo = hitLo || v == 6
		hitHi = hitHi || v == 9
	}
	assert.True(t, hitLo)
	assert.True(t, hitHi)
}
