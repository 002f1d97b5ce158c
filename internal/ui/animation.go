package ui

import (
	"strings"
	"time"

	"sleepsim/internal/player"
	"sleepsim/internal/sim"
)

// Stage is one step of the simulated day
type Stage int

const (
	StageWake Stage = iota
	StageBreakfast
	StageCommute
	StageWork
	StageFeedback
	StageSleep
	StageSummary
)

// StagesPerDay is the number of narrated stages after the day header
const StagesPerDay = int(StageSummary) + 1

// MinStageFrameDuration keeps playback from spinning when the day pause is tiny
const MinStageFrameDuration = 20 * time.Millisecond

// StageFrameDuration spreads one day's pause evenly over its stages
func StageFrameDuration(dayPause time.Duration) time.Duration {
	return max(dayPause/time.Duration(StagesPerDay), MinStageFrameDuration)
}

// StageIcon returns the icon for a stage, reflecting how that stage went
func StageIcon(stage Stage, r sim.DayReport) string {
	switch stage {
	case StageWake:
		return "⏰"
	case StageBreakfast:
		if r.AteBreakfast {
			return "🍳"
		}
		return "🚫"
	case StageCommute:
		return "🚌"
	case StageWork:
		return "💼"
	case StageFeedback:
		if r.Struggled() {
			return "😩"
		}
		return "💪"
	case StageSleep:
		switch r.SleepQuality {
		case sim.SleepPoor:
			return "😫"
		case sim.SleepOkay:
			return "😪"
		default:
			return "😴"
		}
	case StageSummary:
		switch player.Summary(r.Mood) {
		case player.SummaryExhausted:
			return "😵"
		case player.SummaryGoodMood:
			return "😄"
		default:
			return "😐"
		}
	default:
		return "❓"
	}
}

// DayStrip renders the icons of the first n stages of a day
func DayStrip(r sim.DayReport, n int) string {
	n = max(0, min(n, StagesPerDay))
	icons := make([]string, 0, n)
	for s := 0; s < n; s++ {
		icons = append(icons, StageIcon(Stage(s), r))
	}
	return strings.Join(icons, " → ")
}
