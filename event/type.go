package event

// EventType represents the type of game event
type EventType int

const (
	// === Session Lifecycle ===

	// EventSessionStarted signals a fresh session has been initialized
	// Trigger: session.Machine.StartNewSession
	// Consumer: render HUD, audio | Payload: nil
	EventSessionStarted EventType = iota

	// EventRoundStart signals a new round has begun and the timeline resumed
	// Trigger: session.Machine round start
	// Consumer: render HUD, spawn gating, audio | Payload: nil
	EventRoundStart

	// EventRoundComplete signals the round target was reached
	// Trigger: session.Machine on roundScore >= target
	// Consumer: render transition banner, audio | Payload: nil
	EventRoundComplete

	// EventGameOver signals the round clock expired, session is terminal
	// Trigger: session.Machine.Tick crossing zero
	// Consumer: render result overlay, audio, spawn gating | Payload: nil
	EventGameOver

	// EventTimeChanged carries the remaining round time each tick
	// Trigger: session.Machine.Tick
	// Consumer: render timer bar | Payload: TimeChangedPayload
	EventTimeChanged

	// EventScoreChanged carries round-local progress toward the target
	// Trigger: session.Machine on score events and round refresh
	// Consumer: render HUD | Payload: ScoreChangedPayload
	EventScoreChanged

	// EventTotalScoreChanged carries the session total after any change
	// Trigger: session.Machine on score events and day-end bonus
	// Consumer: render HUD | Payload: TotalScoreChangedPayload
	EventTotalScoreChanged

	// EventDayChanged signals the day counter advanced
	// Trigger: session.Machine on Evening->Morning wrap
	// Consumer: render HUD, audio | Payload: DayChangedPayload
	EventDayChanged

	// EventRoundChanged carries the new round index after completion
	// Trigger: session.Machine round transition
	// Consumer: render HUD | Payload: RoundChangedPayload
	EventRoundChanged

	// EventTimeOfDayChanged signals the Morning/Afternoon/Evening step
	// Trigger: session.Machine round transition
	// Consumer: render palette, audio | Payload: TimeOfDayChangedPayload
	EventTimeOfDayChanged

	// EventOneMore signals the round is exactly one point short of its target
	// Trigger: session.Machine on score events
	// Consumer: render banner, audio | Payload: nil
	EventOneMore

	// === Bonus Selection ===

	// EventBonusChoiceRequired asks the presentation layer to show the
	// day-end upgrade options and call Machine.ChooseBonus with the pick
	// Trigger: session.Machine entering AwaitingBonus
	// Consumer: render dialog | Payload: BonusChoicePayload
	EventBonusChoiceRequired

	// EventBonusApplied signals an upgrade was applied and leveled
	// Trigger: session.Machine.ChooseBonus via bonus.Engine
	// Consumer: render HUD, audio | Payload: BonusAppliedPayload
	EventBonusApplied

	// === Spawning ===

	// EventSushiSpawned signals the sushi scheduler placed an item
	// Trigger: spawn sushi scheduler fire with successful ground probe
	// Consumer: game world | Payload: SushiSpawnedPayload
	EventSushiSpawned

	// EventCarSpawned signals the car scheduler emitted a vehicle
	// Trigger: spawn car scheduler fire
	// Consumer: game world | Payload: CarSpawnedPayload
	EventCarSpawned

	// === Gameplay ===

	// EventSushiEaten signals the player consumed a sushi
	// Trigger: game world pickup collision
	// Consumer: audio, render splash | Payload: SushiEatenPayload
	EventSushiEaten

	// EventWasabiHit signals the player ate a wasabi hazard
	// Trigger: game world pickup collision
	// Consumer: audio, render splash | Payload: nil
	EventWasabiHit

	// EventCarExploded signals a car blew up on the board
	// Trigger: game world collision
	// Consumer: audio, render flash | Payload: CarExplodedPayload
	EventCarExploded

	// EventSoundRequest requests a one-shot audio cue
	// Trigger: any system requiring audio feedback
	// Consumer: audio.Player | Payload: SoundRequestPayload
	EventSoundRequest
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventSessionStarted:
		return "SessionStarted"
	case EventRoundStart:
		return "RoundStart"
	case EventRoundComplete:
		return "RoundComplete"
	case EventGameOver:
		return "GameOver"
	case EventTimeChanged:
		return "TimeChanged"
	case EventScoreChanged:
		return "ScoreChanged"
	case EventTotalScoreChanged:
		return "TotalScoreChanged"
	case EventDayChanged:
		return "DayChanged"
	case EventRoundChanged:
		return "RoundChanged"
	case EventTimeOfDayChanged:
		return "TimeOfDayChanged"
	case EventOneMore:
		return "OneMore"
	case EventBonusChoiceRequired:
		return "BonusChoiceRequired"
	case EventBonusApplied:
		return "BonusApplied"
	case EventSushiSpawned:
		return "SushiSpawned"
	case EventCarSpawned:
		return "CarSpawned"
	case EventSushiEaten:
		return "SushiEaten"
	case EventWasabiHit:
		return "WasabiHit"
	case EventCarExploded:
		return "CarExploded"
	case EventSoundRequest:
		return "SoundRequest"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
}
