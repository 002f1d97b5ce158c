package sim

import (
	"sleepsim/internal/player"
)

// SleepQuality is the categorical outcome of a night's sleep
type SleepQuality int

const (
	SleepPoor SleepQuality = iota
	SleepOkay
	SleepGood
)

var sleepQualities = []SleepQuality{SleepPoor, SleepOkay, SleepGood}

func (q SleepQuality) String() string {
	switch q {
	case SleepPoor:
		return "poor"
	case SleepOkay:
		return "okay"
	case SleepGood:
		return "good"
	default:
		return "unknown"
	}
}

// Range is an inclusive integer range
type Range struct {
	Lo, Hi int
}

// Contains reports whether v is within the range
func (r Range) Contains(v int) bool {
	return v >= r.Lo && v <= r.Hi
}

// Draw ranges for each stage of the day
var (
	WakeEnergyLoss     = Range{10, 30}
	BreakfastGain      = Range{5, 15}
	CommuteMoodLoss    = Range{5, 10}
	WorkHours          = Range{6, 9}
	StruggleMoodLoss   = Range{5, 20}
	ProductiveMoodGain = Range{5, 15}
)

const (
	BreakfastSkipChance  = 0.2 // breakfast happens when the roll is strictly above this
	EfficiencyThreshold  = 50.0
	EnergyEfficiencyCost = 0.5 // efficiency lost per point of missing energy
)

// SleepRange returns the energy recovery range for a sleep quality
func SleepRange(q SleepQuality) Range {
	switch q {
	case SleepPoor:
		return Range{5, 20}
	case SleepOkay:
		return Range{20, 40}
	default:
		return Range{40, 60}
	}
}

// DayReport records every draw and intermediate value of one simulated day
type DayReport struct {
	EnergyLoss       int
	EnergyAfterWake  int
	AteBreakfast     bool
	BreakfastGain    int
	EnergyAtWork     int
	CommuteMoodLoss  int
	MoodAfterCommute int
	WorkEfficiency   float64
	WorkHours        int
	MoodDelta        int // negative when work was a struggle
	MoodAfterWork    int
	SleepQuality     SleepQuality
	SleepGain        int
	EnergyAfterSleep int // before clamping
	Energy           int
	Mood             int
}

// Struggled reports whether work efficiency fell under the threshold
func (r DayReport) Struggled() bool {
	return r.WorkEfficiency < EfficiencyThreshold
}

// WorkEfficiency computes the same-day efficiency from productivity and current energy
func WorkEfficiency(productivity, energy int) float64 {
	return max(0, float64(productivity)-float64(player.MaxStat-energy)*EnergyEfficiencyCost)
}

// Step advances p by one day. Each stage reads the state left by the previous
// one. Energy and mood are clamped at the end of the day.
func Step(p *player.Player, src Source) DayReport {
	var r DayReport

	// Wake up
	r.EnergyLoss = between(src, WakeEnergyLoss.Lo, WakeEnergyLoss.Hi)
	p.Energy -= r.EnergyLoss
	r.EnergyAfterWake = p.Energy

	// Breakfast
	if src.Float64() > BreakfastSkipChance {
		r.AteBreakfast = true
		r.BreakfastGain = between(src, BreakfastGain.Lo, BreakfastGain.Hi)
		p.Energy += r.BreakfastGain
	}
	r.EnergyAtWork = p.Energy

	// Commute
	r.CommuteMoodLoss = between(src, CommuteMoodLoss.Lo, CommuteMoodLoss.Hi)
	p.Mood -= r.CommuteMoodLoss
	r.MoodAfterCommute = p.Mood

	// Work
	r.WorkEfficiency = WorkEfficiency(p.Productivity, p.Energy)
	r.WorkHours = between(src, WorkHours.Lo, WorkHours.Hi)

	// Productivity feeds back into mood
	if r.Struggled() {
		r.MoodDelta = -between(src, StruggleMoodLoss.Lo, StruggleMoodLoss.Hi)
	} else {
		r.MoodDelta = between(src, ProductiveMoodGain.Lo, ProductiveMoodGain.Hi)
	}
	p.Mood += r.MoodDelta
	r.MoodAfterWork = p.Mood

	// Sleep
	r.SleepQuality = sleepQualities[src.IntN(len(sleepQualities))]
	sleep := SleepRange(r.SleepQuality)
	r.SleepGain = between(src, sleep.Lo, sleep.Hi)
	p.Energy += r.SleepGain
	r.EnergyAfterSleep = p.Energy

	p.ClampStats()
	r.Energy = p.Energy
	r.Mood = p.Mood
	return r
}
