package game

import "github.com/mkotake/sushi-survivor/core"

// Sushi is a pickup sitting on the board until eaten or expired.
type Sushi struct {
	Kind      core.SushiKind
	Pos       Vec
	ExpiresAt float64 // game-time seconds
}

// Car drives along the road lane and explodes on contact with the
// player. Wrecks linger briefly for presentation before despawn.
type Car struct {
	Kind       core.CarKind
	Pos        Vec
	Speed      float64 // along +X
	Exploded   bool
	WreckUntil float64 // game-time seconds, valid once exploded
}

// PlayerState tells the renderer how to draw the player.
type PlayerState uint8

const (
	PlayerIdle PlayerState = iota
	PlayerDashing
	PlayerStunned
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "Idle"
	case PlayerDashing:
		return "Dashing"
	case PlayerStunned:
		return "Stunned"
	default:
		return "Unknown"
	}
}
