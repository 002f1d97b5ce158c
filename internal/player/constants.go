package player

// Game constants
const (
	DefaultRosterFile = "player_data.json"
	MaxStat           = 100
	MinStat           = 0
	LowStatThreshold  = 30 // Energy or mood below this ends a batch run
	MinCombinedStats  = 100

	// Starting attributes for a new player
	DefaultEnergy       = 100
	DefaultMood         = 50
	DefaultProductivity = 70

	// End-of-day summary thresholds
	ExhaustedMoodThreshold = 30
	GoodMoodThreshold      = 70
)

// End-of-day summaries
const (
	SummaryExhausted  = "The day ended with a feeling of exhaustion and irritability."
	SummaryGoodMood   = "Despite the lack of sleep, ended the day with a surprisingly good mood."
	SummaryManageable = "The day ended feeling tired but manageable."
)
