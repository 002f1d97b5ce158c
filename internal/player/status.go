package player

// Summary returns the end-of-day line for the given mood
func Summary(mood int) string {
	switch {
	case mood < ExhaustedMoodThreshold:
		return SummaryExhausted
	case mood > GoodMoodThreshold:
		return SummaryGoodMood
	default:
		return SummaryManageable
	}
}

// Exhausted reports whether a player can no longer keep going.
// Once true, a batch run for this player ends.
func Exhausted(p Player) bool {
	if p.Energy < LowStatThreshold || p.Mood < LowStatThreshold {
		return true
	}
	return p.Energy+p.Mood+p.Productivity < MinCombinedStats
}

// StatusEmoji returns a face for the player's current condition
func StatusEmoji(p Player) string {
	switch {
	case Exhausted(p):
		return "😵"
	case p.Energy < LowStatThreshold+10:
		return "🥱"
	case p.Mood > GoodMoodThreshold:
		return "😄"
	case p.Mood < ExhaustedMoodThreshold+10:
		return "😠"
	default:
		return "🙂"
	}
}
