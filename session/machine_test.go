package session

import (
	"math/rand"
	"testing"

	"github.com/mkotake/sushi-survivor/bonus"
	"github.com/mkotake/sushi-survivor/core"
	"github.com/mkotake/sushi-survivor/event"
	"github.com/mkotake/sushi-survivor/parameter"
)

type stubTimeline struct {
	pauses  int
	resumes int
}

func (s *stubTimeline) Pause()  { s.pauses++ }
func (s *stubTimeline) Resume() { s.resumes++ }

func testCatalog() *bonus.Catalog {
	return bonus.NewCatalog([]bonus.Definition{
		{Category: bonus.MoveSpeed, Name: "Move Speed", Values: []float64{10, 12, 14}},
		{Category: bonus.SushiSpawnRate, Name: "Sushi Rate", Values: []float64{2, 1.6, 1.2}},
		{Category: bonus.ShockwaveSize, Name: "Shockwave", Values: []float64{2, 2.5, 3}},
		{Category: bonus.SushiSensorRange, Name: "Sensor", Values: []float64{3, 4}},
	})
}

func newTestMachine(t *testing.T) (*Machine, *event.Queue, *stubTimeline) {
	t.Helper()
	queue := event.NewQueue()
	engine := bonus.NewEngine(testCatalog(), rand.New(rand.NewSource(1)))
	tl := &stubTimeline{}
	m := NewMachine(queue, engine, tl, Tables{
		TargetScorePerDay:  []int{5, 8, 12},
		TimeIncreasePerDay: []float64{10, 15, 20},
	})
	return m, queue, tl
}

func eventTypes(events []event.GameEvent) []event.EventType {
	types := make([]event.EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

func hasEvent(events []event.GameEvent, t event.EventType) bool {
	for _, e := range events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// runTransition ticks the machine through the fixed transition delay
// using unscaled real time.
func runTransition(m *Machine) {
	delay := parameter.RoundTransitionDelay.Seconds()
	for elapsed := 0.0; elapsed <= delay; elapsed += 0.1 {
		m.Tick(0, 0.1)
	}
}

func TestStartNewSessionInitialState(t *testing.T) {
	m, queue, _ := newTestMachine(t)

	if err := m.StartNewSession(); err != nil {
		t.Fatalf("StartNewSession: %v", err)
	}

	snap := m.Snapshot()
	if snap.Phase != PhaseRoundActive {
		t.Errorf("phase = %s, want RoundActive", snap.Phase)
	}
	if snap.Day != 1 || snap.Round != 1 {
		t.Errorf("day/round = %d/%d, want 1/1", snap.Day, snap.Round)
	}
	if snap.TimeOfDay != core.Morning {
		t.Errorf("timeOfDay = %s, want Morning", snap.TimeOfDay)
	}
	if snap.Target != 5 {
		t.Errorf("target = %d, want 5", snap.Target)
	}
	if snap.Remaining != parameter.InitialRoundTime {
		t.Errorf("remaining = %v, want %v", snap.Remaining, parameter.InitialRoundTime)
	}

	events := queue.Consume()
	if !hasEvent(events, event.EventSessionStarted) || !hasEvent(events, event.EventRoundStart) {
		t.Errorf("missing lifecycle events, got %v", eventTypes(events))
	}
}

func TestRoundCompletionOnExactTarget(t *testing.T) {
	m, queue, _ := newTestMachine(t)
	m.StartNewSession()
	queue.Consume()

	m.OnScoreEvent(4)
	if m.Phase() != PhaseRoundActive {
		t.Fatalf("phase after 4 points = %s, want RoundActive", m.Phase())
	}
	if !hasEvent(queue.Consume(), event.EventOneMore) {
		t.Error("expected one-more cue at target-1")
	}

	m.OnScoreEvent(1)
	if m.Phase() != PhaseRoundTransition {
		t.Errorf("phase after reaching target = %s, want RoundTransition", m.Phase())
	}
}

func TestRoundCompletionOnOvershoot(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.StartNewSession()

	m.OnScoreEvent(10)
	if m.Phase() != PhaseRoundTransition {
		t.Errorf("phase after overshoot = %s, want RoundTransition", m.Phase())
	}
}

func TestCompletionEventOrder(t *testing.T) {
	m, queue, _ := newTestMachine(t)
	m.StartNewSession()
	queue.Consume()

	m.OnScoreEvent(5)
	types := eventTypes(queue.Consume())

	// Completion half: score events first, then the fixed lifecycle order.
	want := []event.EventType{
		event.EventScoreChanged,
		event.EventTotalScoreChanged,
		event.EventRoundComplete,
		event.EventTimeOfDayChanged,
		event.EventRoundChanged,
	}
	if len(types) != len(want) {
		t.Fatalf("event count = %d (%v), want %d", len(types), types, len(want))
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event[%d] = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestTransitionAddsTimeAndResumesRound(t *testing.T) {
	m, queue, tl := newTestMachine(t)
	m.StartNewSession()
	m.OnScoreEvent(5)
	queue.Consume()

	pausesBefore := tl.pauses
	if pausesBefore == 0 {
		t.Error("timeline not paused on round completion")
	}

	before := m.Snapshot().Remaining
	runTransition(m)

	snap := m.Snapshot()
	if snap.Phase != PhaseRoundActive {
		t.Fatalf("phase after transition = %s, want RoundActive", snap.Phase)
	}
	if got, want := snap.Remaining, before+10; got != want {
		t.Errorf("remaining = %v, want %v (day 1 allotment)", got, want)
	}
	if snap.RoundScore != 0 {
		t.Errorf("roundScore = %d, want 0", snap.RoundScore)
	}
	if !hasEvent(queue.Consume(), event.EventRoundStart) {
		t.Error("missing round-start event after transition")
	}
}

func TestScoreEventsRejectedOutsideActiveRound(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.StartNewSession()
	m.OnScoreEvent(5)

	total := m.Snapshot().TotalScore
	m.OnScoreEvent(3)
	if got := m.Snapshot().TotalScore; got != total {
		t.Errorf("score during transition mutated total: %d -> %d", total, got)
	}
}

// completeDay drives the machine through all three rounds of the
// current day, answering the day-end bonus prompt with a decline.
func completeDay(t *testing.T, m *Machine) {
	t.Helper()
	for i := 0; i < 3; i++ {
		target := m.Snapshot().Target
		m.OnScoreEvent(target)
		runTransition(m)
		if m.Phase() == PhaseAwaitingBonus {
			if err := m.ChooseBonus(-1); err != nil {
				t.Fatalf("ChooseBonus(-1): %v", err)
			}
		}
	}
}

func TestDayAdvanceAfterThreeRounds(t *testing.T) {
	m, queue, _ := newTestMachine(t)
	m.StartNewSession()
	queue.Consume()

	m.OnScoreEvent(5)
	runTransition(m)
	m.OnScoreEvent(5)
	runTransition(m)
	if d := m.Snapshot().Day; d != 1 {
		t.Fatalf("day after 2 rounds = %d, want 1", d)
	}

	// Evening round completion wraps to Morning and suspends for the
	// bonus choice.
	scoreBefore := m.Snapshot().TotalScore
	m.OnScoreEvent(5)
	runTransition(m)

	snap := m.Snapshot()
	if snap.Phase != PhaseAwaitingBonus {
		t.Fatalf("phase at day end = %s, want AwaitingBonus", snap.Phase)
	}
	if snap.Day != 2 {
		t.Errorf("day = %d, want 2", snap.Day)
	}
	if snap.TimeOfDay != core.Morning {
		t.Errorf("timeOfDay = %s, want Morning", snap.TimeOfDay)
	}
	// Day-end bonus is 100 x (newDay-1), plus the round's own 5 points.
	if got, want := snap.TotalScore, scoreBefore+5+100; got != want {
		t.Errorf("totalScore = %d, want %d", got, want)
	}
	if snap.Target != 8 {
		t.Errorf("day 2 target = %d, want 8", snap.Target)
	}
	if !hasEvent(queue.Consume(), event.EventBonusChoiceRequired) {
		t.Error("missing bonus-choice event at day end")
	}
}

func TestDayEndWithEmptyCatalogSkipsBonusChoice(t *testing.T) {
	queue := event.NewQueue()
	engine := bonus.NewEngine(bonus.NewCatalog(nil), rand.New(rand.NewSource(1)))
	m := NewMachine(queue, engine, &stubTimeline{}, Tables{
		TargetScorePerDay:  []int{5, 8, 12},
		TimeIncreasePerDay: []float64{10, 15, 20},
	})
	m.StartNewSession()
	queue.Consume()

	// Three rounds close out day 1. With nothing to draw, the day-end
	// choice cannot suspend the run.
	for i := 0; i < 3; i++ {
		m.OnScoreEvent(m.Snapshot().Target)
		runTransition(m)
	}

	snap := m.Snapshot()
	if snap.Phase != PhaseRoundActive {
		t.Fatalf("phase at day end = %s, want RoundActive", snap.Phase)
	}
	if snap.Day != 2 {
		t.Errorf("day = %d, want 2", snap.Day)
	}
	events := queue.Consume()
	if hasEvent(events, event.EventBonusChoiceRequired) {
		t.Error("bonus-choice event emitted with nothing to choose")
	}
	if !hasEvent(events, event.EventRoundStart) {
		t.Error("missing round-start event after skipped bonus choice")
	}
}

func TestDayEndBonusScales(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.StartNewSession()

	completeDay(t, m) // day 1 -> 2: +100
	completeDay(t, m) // day 2 -> 3: +200

	// Round scores: 5+5+5 + 8+8+8 = 39, bonuses 100+200 = 300.
	if got, want := m.Snapshot().TotalScore, 39+300; got != want {
		t.Errorf("totalScore after two days = %d, want %d", got, want)
	}
	if d := m.Snapshot().Day; d != 3 {
		t.Errorf("day = %d, want 3", d)
	}
}

func TestChooseBonusAppliesAndResumes(t *testing.T) {
	m, queue, _ := newTestMachine(t)
	m.StartNewSession()
	completeDayToChoice(t, m)
	queue.Consume()

	if err := m.ChooseBonus(0); err != nil {
		t.Fatalf("ChooseBonus(0): %v", err)
	}
	if m.Phase() != PhaseRoundActive {
		t.Errorf("phase after choice = %s, want RoundActive", m.Phase())
	}
	events := queue.Consume()
	if !hasEvent(events, event.EventBonusApplied) {
		t.Error("missing bonus-applied event")
	}
	if !hasEvent(events, event.EventRoundStart) {
		t.Error("missing round-start event after choice")
	}
}

func TestChooseBonusValidation(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.StartNewSession()

	if err := m.ChooseBonus(0); err == nil {
		t.Error("ChooseBonus outside AwaitingBonus should fail")
	}

	completeDayToChoice(t, m)
	if err := m.ChooseBonus(99); err == nil {
		t.Error("out-of-range index should fail")
	}
	if m.Phase() != PhaseAwaitingBonus {
		t.Errorf("failed choice changed phase to %s", m.Phase())
	}
	if err := m.ChooseBonus(-1); err != nil {
		t.Errorf("decline should succeed: %v", err)
	}
}

func completeDayToChoice(t *testing.T, m *Machine) {
	t.Helper()
	for i := 0; i < 3; i++ {
		m.OnScoreEvent(m.Snapshot().Target)
		runTransition(m)
	}
	if m.Phase() != PhaseAwaitingBonus {
		t.Fatalf("phase = %s, want AwaitingBonus", m.Phase())
	}
}

func TestTickExpiryLatchesGameOver(t *testing.T) {
	m, queue, _ := newTestMachine(t)
	m.StartNewSession()
	m.AddTime(0.05 - parameter.InitialRoundTime)
	queue.Consume()

	m.Tick(0.1, 0.1)

	if m.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, want GameOver", m.Phase())
	}
	if !hasEvent(queue.Consume(), event.EventGameOver) {
		t.Error("missing game-over event")
	}

	total := m.Snapshot().TotalScore
	m.OnScoreEvent(3)
	if got := m.Snapshot().TotalScore; got != total {
		t.Errorf("score after game over mutated total: %d -> %d", total, got)
	}

	m.Tick(1.0, 1.0)
	if m.Phase() != PhaseGameOver {
		t.Error("Tick after game over changed phase")
	}
}

func TestStartNewSessionExitsGameOver(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.StartNewSession()
	m.AddTime(-parameter.InitialRoundTime)
	m.Tick(0.1, 0.1)
	if m.Phase() != PhaseGameOver {
		t.Fatal("setup: expected GameOver")
	}

	if err := m.StartNewSession(); err != nil {
		t.Fatalf("restart after game over: %v", err)
	}
	snap := m.Snapshot()
	if snap.Phase != PhaseRoundActive || snap.Day != 1 || snap.TotalScore != 0 {
		t.Errorf("restart snapshot = %+v, want fresh day 1", snap)
	}
}

func TestStartNewSessionRejectedMidTransition(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.StartNewSession()
	m.OnScoreEvent(5)

	if err := m.StartNewSession(); err == nil {
		t.Error("StartNewSession during RoundTransition should fail")
	}
}

func TestPauseSkipsTickMutation(t *testing.T) {
	m, _, tl := newTestMachine(t)
	m.StartNewSession()

	m.Pause()
	if tl.pauses == 0 {
		t.Error("timeline not paused")
	}
	before := m.Snapshot().Remaining
	m.Tick(1.0, 1.0)
	if got := m.Snapshot().Remaining; got != before {
		t.Errorf("paused tick mutated remaining: %v -> %v", before, got)
	}

	m.Resume()
	m.Tick(1.0, 1.0)
	if got := m.Snapshot().Remaining; got != before-1.0 {
		t.Errorf("remaining after resume = %v, want %v", got, before-1.0)
	}
}

func TestTableClampBeyondLength(t *testing.T) {
	tables := Tables{
		TargetScorePerDay:  []int{5, 8, 12},
		TimeIncreasePerDay: []float64{10, 15, 20},
	}
	cases := []struct {
		day        int
		wantTarget int
		wantTime   float64
	}{
		{1, 5, 10},
		{3, 12, 20},
		{4, 12, 20},
		{99, 12, 20},
	}
	for _, tc := range cases {
		if got := tables.TargetScore(tc.day); got != tc.wantTarget {
			t.Errorf("TargetScore(%d) = %d, want %d", tc.day, got, tc.wantTarget)
		}
		if got := tables.TimeIncrease(tc.day); got != tc.wantTime {
			t.Errorf("TimeIncrease(%d) = %v, want %v", tc.day, got, tc.wantTime)
		}
	}
}

func TestAddTimeUnconstrainedSign(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.StartNewSession()

	before := m.Snapshot().Remaining
	m.AddTime(5)
	m.AddTime(-2)
	if got := m.Snapshot().Remaining; got != before+3 {
		t.Errorf("remaining = %v, want %v", got, before+3)
	}
}
