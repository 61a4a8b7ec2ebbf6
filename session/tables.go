package session

import "github.com/mkotake/sushi-survivor/parameter"

// Tables holds the per-day progression curves. Both slices are indexed
// by day-1 and clamp to their last entry for days beyond table length,
// so short tables degrade to a flat curve instead of faulting.
type Tables struct {
	TargetScorePerDay  []int
	TimeIncreasePerDay []float64
	// InitialRoundTime is the day-1 round clock in seconds; zero or
	// negative falls back to the built-in default.
	InitialRoundTime float64
}

// DefaultTables returns the built-in progression curves.
func DefaultTables() Tables {
	return Tables{
		TargetScorePerDay:  append([]int(nil), parameter.DefaultTargetScorePerDay...),
		TimeIncreasePerDay: append([]float64(nil), parameter.DefaultTimeIncreasePerDay...),
		InitialRoundTime:   parameter.InitialRoundTime,
	}
}

// StartTime returns the initial round clock.
func (t Tables) StartTime() float64 {
	if t.InitialRoundTime <= 0 {
		return parameter.InitialRoundTime
	}
	return t.InitialRoundTime
}

// TargetScore returns the round target for the given day (1-based).
func (t Tables) TargetScore(day int) int {
	if len(t.TargetScorePerDay) == 0 {
		return 0
	}
	return t.TargetScorePerDay[clampIndex(day-1, len(t.TargetScorePerDay))]
}

// TimeIncrease returns the seconds added to the round clock on
// completing a round of the given day (1-based).
func (t Tables) TimeIncrease(day int) float64 {
	if len(t.TimeIncreasePerDay) == 0 {
		return 0
	}
	return t.TimeIncreasePerDay[clampIndex(day-1, len(t.TimeIncreasePerDay))]
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}
