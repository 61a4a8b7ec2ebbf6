package event

import (
	"github.com/mkotake/sushi-survivor/bonus"
	"github.com/mkotake/sushi-survivor/core"
)

// TimeChangedPayload carries the remaining round time in seconds
// Negative values can appear transiently on the tick that latches game over
type TimeChangedPayload struct {
	Remaining float64
}

// ScoreChangedPayload carries round-local progress toward the round target
type ScoreChangedPayload struct {
	Current int
	Target  int
}

// TotalScoreChangedPayload carries the session total score
type TotalScoreChangedPayload struct {
	Total int
}

// DayChangedPayload carries the new day number (1-based)
type DayChangedPayload struct {
	Day int
}

// RoundChangedPayload carries the new round index (1-based)
type RoundChangedPayload struct {
	Round int
}

// TimeOfDayChangedPayload carries the new time-of-day phase
type TimeOfDayChangedPayload struct {
	TimeOfDay core.TimeOfDay
}

// BonusChoicePayload carries the drawn upgrade options for day-end selection
// Options keep a stable order; the chooser passes the chosen index back into
// the session machine
type BonusChoicePayload struct {
	Options []bonus.Definition
}

// BonusAppliedPayload reports the applied upgrade and its dispatched multiplier
type BonusAppliedPayload struct {
	Definition bonus.Definition
	Level      int
	Multiplier float64
}

// SushiSpawnedPayload places a pickup on the board
type SushiSpawnedPayload struct {
	Kind core.SushiKind
	Pos  core.Point
}

// CarSpawnedPayload emits a vehicle at the lane entry point
type CarSpawnedPayload struct {
	Kind core.CarKind
	Pos  core.Point
}

// SushiEatenPayload reports a consumed pickup and its score value
type SushiEatenPayload struct {
	Kind   core.SushiKind
	Points int
}

// CarExplodedPayload reports a detonated car and its effective blast radius
type CarExplodedPayload struct {
	Pos    core.Point
	Radius float64
}

// SoundCue identifies a synthesized audio cue
type SoundCue int

const (
	CueEat SoundCue = iota
	CueRareEat
	CueWasabi
	CueOneMore
	CueRoundComplete
	CueDayChange
	CueBonusApplied
	CueHorn
	CueExplosion
	CueGameOver
)

// SoundRequestPayload requests playback of a one-shot cue
type SoundRequestPayload struct {
	Cue SoundCue
}
