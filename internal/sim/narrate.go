package sim

import (
	"fmt"

	"sleepsim/internal/player"
)

// Observer is called after each simulated day with that day's report.
// Days are numbered from 1.
type Observer func(day int, r DayReport)

// Narrate renders the human-readable account of one day
func Narrate(name string, day int, r DayReport) []string {
	lines := []string{
		fmt.Sprintf("Day %d for %s:", day, name),
		fmt.Sprintf("Waking up... Energy level: %d%% (lost %d%%)", r.EnergyAfterWake, r.EnergyLoss),
	}

	if r.AteBreakfast {
		lines = append(lines, fmt.Sprintf("Had breakfast. Energy level: %d%% (gained %d%%)", r.EnergyAtWork, r.BreakfastGain))
	} else {
		lines = append(lines, "Skipped breakfast. Energy level remains low.")
	}

	lines = append(lines,
		fmt.Sprintf("Commute was exhausting. Mood level: %d (lost %d)", r.MoodAfterCommute, r.CommuteMoodLoss),
		fmt.Sprintf("Worked for %d hours with %.2f%% efficiency.", r.WorkHours, r.WorkEfficiency),
	)

	if r.Struggled() {
		lines = append(lines, fmt.Sprintf("Struggled to concentrate. Mood level: %d (lost %d)", r.MoodAfterWork, -r.MoodDelta))
	} else {
		lines = append(lines, fmt.Sprintf("Felt productive. Mood level: %d (gained %d)", r.MoodAfterWork, r.MoodDelta))
	}

	lines = append(lines,
		fmt.Sprintf("Sleep was %s. Energy level: %d%% (gained %d%%)", r.SleepQuality, r.EnergyAfterSleep, r.SleepGain),
		player.Summary(r.Mood),
	)
	return lines
}
