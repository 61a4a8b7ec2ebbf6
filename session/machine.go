// Package session owns run progression: day, round, time-of-day,
// score and the remaining round clock. It is the only component
// allowed to mutate those fields; everything else observes them
// through emitted events or a read-only snapshot.
package session

import (
	"fmt"
	"sync"

	"github.com/mkotake/sushi-survivor/bonus"
	"github.com/mkotake/sushi-survivor/core"
	"github.com/mkotake/sushi-survivor/event"
	"github.com/mkotake/sushi-survivor/parameter"
)

// Phase is the lifecycle state of a session.
type Phase uint8

const (
	// PhaseIdle is the pre-session state, before StartNewSession.
	PhaseIdle Phase = iota
	// PhaseRoundActive is normal play: the clock runs, score events count.
	PhaseRoundActive
	// PhaseRoundTransition is the fixed real-time delay after a round
	// completes, giving presentation layers time to play the transition.
	PhaseRoundTransition
	// PhaseAwaitingBonus suspends the machine at a day boundary until
	// the presentation layer calls ChooseBonus.
	PhaseAwaitingBonus
	// PhaseGameOver is terminal; only StartNewSession exits it.
	PhaseGameOver
)

// String returns the phase name for logging and debugging.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRoundActive:
		return "RoundActive"
	case PhaseRoundTransition:
		return "RoundTransition"
	case PhaseAwaitingBonus:
		return "AwaitingBonus"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// validTransitions defines the allowed phase graph.
var validTransitions = map[Phase][]Phase{
	PhaseIdle:            {PhaseRoundActive},
	PhaseRoundActive:     {PhaseRoundActive, PhaseRoundTransition, PhaseGameOver},
	PhaseRoundTransition: {PhaseRoundActive, PhaseAwaitingBonus},
	PhaseAwaitingBonus:   {PhaseRoundActive},
	PhaseGameOver:        {PhaseRoundActive},
}

// CanTransition reports whether moving from one phase to another is legal.
func CanTransition(from, to Phase) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Timeline is the pausable clock the machine suspends during round
// transitions and bonus selection so spawn schedulers and entity
// lifetimes freeze with it.
type Timeline interface {
	Pause()
	Resume()
}

// Snapshot is a read-only copy of the machine state for presentation.
type Snapshot struct {
	Phase      Phase
	Day        int
	Round      int
	TimeOfDay  core.TimeOfDay
	TotalScore int
	RoundScore int
	Target     int
	Remaining  float64
	Paused     bool
}

// Machine drives the session lifecycle. All methods must be called
// from the game loop goroutine; the mutex only guards Snapshot reads
// from other goroutines (the render path).
type Machine struct {
	mu sync.Mutex

	queue    *event.Queue
	bonuses  *bonus.Engine
	timeline Timeline
	tables   Tables

	phase      Phase
	day        int
	round      int
	timeOfDay  core.TimeOfDay
	totalScore int
	roundScore int
	target     int
	remaining  float64
	paused     bool

	// Round-transition bookkeeping. transitionElapsed accumulates
	// unscaled real time so slow-motion or pause effects on game time
	// never stretch the presentation delay.
	transitionElapsed float64
	dayEndPending     bool
	oneMoreFired      bool

	// Options drawn for the current day-end choice; valid only in
	// PhaseAwaitingBonus. Callers index into this exact slice.
	pendingOptions []bonus.Definition
}

// NewMachine wires a session machine to its collaborators. The machine
// starts in PhaseIdle; call StartNewSession to begin play.
func NewMachine(queue *event.Queue, bonuses *bonus.Engine, timeline Timeline, tables Tables) *Machine {
	return &Machine{
		queue:    queue,
		bonuses:  bonuses,
		timeline: timeline,
		tables:   tables,
		phase:    PhaseIdle,
	}
}

// Snapshot returns a consistent copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Phase:      m.phase,
		Day:        m.day,
		Round:      m.round,
		TimeOfDay:  m.timeOfDay,
		TotalScore: m.totalScore,
		RoundScore: m.roundScore,
		Target:     m.target,
		Remaining:  m.remaining,
		Paused:     m.paused,
	}
}

// Phase returns the current lifecycle phase.
func (m *Machine) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// Active reports whether a round is in normal play. Spawn schedulers
// gate on this.
func (m *Machine) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase == PhaseRoundActive && !m.paused
}

// StartNewSession resets all progression state and begins day 1,
// round 1, Morning. Also exits a terminal GameOver. Calling it while a
// round transition is pending is a caller error and is rejected.
func (m *Machine) StartNewSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase == PhaseRoundTransition || m.phase == PhaseAwaitingBonus {
		return fmt.Errorf("cannot start session during %s", m.phase)
	}

	m.day = 1
	m.round = 1
	m.timeOfDay = core.Morning
	m.totalScore = 0
	m.remaining = m.tables.StartTime()
	m.target = m.tables.TargetScore(m.day)
	m.dayEndPending = false
	m.transitionElapsed = 0
	m.pendingOptions = nil
	m.bonuses.Reset()

	m.queue.Emit(event.EventSessionStarted, nil)
	m.queue.Emit(event.EventDayChanged, event.DayChangedPayload{Day: m.day})
	m.queue.Emit(event.EventRoundChanged, event.RoundChangedPayload{Round: m.round})
	m.queue.Emit(event.EventTimeOfDayChanged, event.TimeOfDayChangedPayload{TimeOfDay: m.timeOfDay})
	m.queue.Emit(event.EventTotalScoreChanged, event.TotalScoreChangedPayload{Total: m.totalScore})
	m.queue.Emit(event.EventTimeChanged, event.TimeChangedPayload{Remaining: m.remaining})

	m.startRoundLocked()
	return nil
}

// OnScoreEvent credits points from a pickup. Score events delivered
// outside active play (late pickups racing a round transition, or
// after game over) are rejected rather than queued.
func (m *Machine) OnScoreEvent(points int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != PhaseRoundActive {
		return
	}

	m.totalScore += points
	m.roundScore += points
	m.queue.Emit(event.EventScoreChanged, event.ScoreChangedPayload{Current: m.roundScore, Target: m.target})
	m.queue.Emit(event.EventTotalScoreChanged, event.TotalScoreChangedPayload{Total: m.totalScore})

	if m.roundScore >= m.target {
		m.completeRoundLocked()
		return
	}
	if !m.oneMoreFired && m.roundScore == m.target-1 {
		m.oneMoreFired = true
		m.queue.Emit(event.EventOneMore, nil)
	}
}

// AddTime adjusts the remaining round clock. Sign is unconstrained;
// negative adjustments can push the round toward game over.
func (m *Machine) AddTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase == PhaseGameOver {
		return
	}
	m.remaining += seconds
	m.queue.Emit(event.EventTimeChanged, event.TimeChangedPayload{Remaining: m.remaining})
}

// Pause sets the pause latch and suspends the timeline. Tick keeps
// being called while paused; it just skips mutation.
func (m *Machine) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.paused || m.phase != PhaseRoundActive {
		return
	}
	m.paused = true
	m.timeline.Pause()
}

// Resume clears the pause latch.
func (m *Machine) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.paused {
		return
	}
	m.paused = false
	m.timeline.Resume()
}

// Tick advances the machine. gameDelta is scaled game time driving
// the round clock; realDelta is unscaled wall time driving the
// transition delay. Both are in seconds.
func (m *Machine) Tick(gameDelta, realDelta float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.phase {
	case PhaseRoundActive:
		if m.paused {
			return
		}
		m.remaining -= gameDelta
		m.queue.Emit(event.EventTimeChanged, event.TimeChangedPayload{Remaining: m.remaining})
		if m.remaining <= 0 {
			m.gameOverLocked()
		}

	case PhaseRoundTransition:
		m.transitionElapsed += realDelta
		if m.transitionElapsed >= parameter.RoundTransitionDelay.Seconds() {
			m.finishTransitionLocked()
		}
	}
}

// StartRound resets round-local state and enters active play. Exposed
// for tests and session restarts; normal flow reaches it through the
// transition sequence.
func (m *Machine) StartRound() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startRoundLocked()
}

// ChooseBonus completes the day-end handshake. index addresses the
// options carried by the preceding bonus-choice event; -1 declines the
// choice. Any other out-of-range index is a contract violation by the
// presentation layer.
func (m *Machine) ChooseBonus(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != PhaseAwaitingBonus {
		return fmt.Errorf("no bonus choice pending in %s", m.phase)
	}
	if index != -1 && (index < 0 || index >= len(m.pendingOptions)) {
		return fmt.Errorf("bonus choice index %d out of range [0,%d)", index, len(m.pendingOptions))
	}

	if index >= 0 {
		def := m.pendingOptions[index]
		if multiplier, applied := m.bonuses.Apply(def); applied {
			m.queue.Emit(event.EventBonusApplied, event.BonusAppliedPayload{
				Definition: def,
				Level:      m.bonuses.Level(def.Category),
				Multiplier: multiplier,
			})
		}
	}
	m.pendingOptions = nil
	m.startRoundLocked()
	return nil
}

// completeRoundLocked runs the synchronous half of the completion
// sequence: lifecycle events fire in a fixed order (round complete,
// time of day, day, then clock/score adjustments after the delay).
func (m *Machine) completeRoundLocked() {
	m.transitionLocked(PhaseRoundTransition)
	m.queue.Emit(event.EventRoundComplete, nil)

	next, wrapped := m.timeOfDay.Next()
	m.timeOfDay = next
	m.queue.Emit(event.EventTimeOfDayChanged, event.TimeOfDayChangedPayload{TimeOfDay: m.timeOfDay})

	m.round++
	m.queue.Emit(event.EventRoundChanged, event.RoundChangedPayload{Round: m.round})

	m.dayEndPending = wrapped
	if wrapped {
		m.day++
		m.queue.Emit(event.EventDayChanged, event.DayChangedPayload{Day: m.day})
	}

	m.transitionElapsed = 0
	m.timeline.Pause()
}

// finishTransitionLocked runs the post-delay half: day-end score
// bonus, next target, time allotment, then either the bonus handshake
// or directly into the next round.
func (m *Machine) finishTransitionLocked() {
	if m.dayEndPending {
		m.totalScore += parameter.DayEndBonusPerDay * (m.day - 1)
		m.queue.Emit(event.EventTotalScoreChanged, event.TotalScoreChangedPayload{Total: m.totalScore})
	}

	m.target = m.tables.TargetScore(m.day)
	m.remaining += m.tables.TimeIncrease(m.day)
	m.queue.Emit(event.EventTimeChanged, event.TimeChangedPayload{Remaining: m.remaining})

	if m.dayEndPending {
		m.dayEndPending = false
		options := m.bonuses.DrawOptions(parameter.BonusChoiceCount)
		// An empty catalog is a config gap, not a reason to gate the
		// run on a choice that can never be made.
		if len(options) > 0 {
			m.transitionLocked(PhaseAwaitingBonus)
			m.pendingOptions = options
			m.queue.Emit(event.EventBonusChoiceRequired, event.BonusChoicePayload{Options: m.pendingOptions})
			return
		}
	}
	m.startRoundLocked()
}

func (m *Machine) startRoundLocked() {
	m.transitionLocked(PhaseRoundActive)
	m.roundScore = 0
	m.oneMoreFired = false
	m.paused = false
	m.timeline.Resume()
	m.queue.Emit(event.EventScoreChanged, event.ScoreChangedPayload{Current: m.roundScore, Target: m.target})
	m.queue.Emit(event.EventRoundStart, nil)
}

func (m *Machine) gameOverLocked() {
	m.transitionLocked(PhaseGameOver)
	m.timeline.Pause()
	m.queue.Emit(event.EventGameOver, nil)
}

func (m *Machine) transitionLocked(to Phase) {
	if !CanTransition(m.phase, to) {
		// Illegal transitions indicate a machine bug, not caller input.
		panic(fmt.Sprintf("session: illegal transition %s -> %s", m.phase, to))
	}
	m.phase = to
}
