package parameter

import "time"

// Session Progression
const (
	// InitialRoundTime is the remaining time granted at the start of a new session
	InitialRoundTime = 30.0

	// RoundTransitionDelay is the real-time pause between rounds, unaffected
	// by the game clock so presentation can play out while the timeline is frozen
	RoundTransitionDelay = 2 * time.Second

	// DayEndBonusPerDay is the score bonus granted per completed day
	// Day N completion awards DayEndBonusPerDay * N
	DayEndBonusPerDay = 100

	// BonusChoiceCount is how many upgrade options are drawn at a day boundary
	BonusChoiceCount = 3
)

// Per-day balance tables, indexed by day-1 and clamped to the last entry
// for days beyond the table
var (
	// DefaultTargetScorePerDay is the round target score for each day
	DefaultTargetScorePerDay = []int{5, 8, 12}

	// DefaultTimeIncreasePerDay is the seconds added to the round clock each
	// round, looked up by the current day
	DefaultTimeIncreasePerDay = []float64{10, 15, 20}
)
