package game

import (
	"math/rand"
	"testing"

	"github.com/mkotake/sushi-survivor/bonus"
	"github.com/mkotake/sushi-survivor/core"
	"github.com/mkotake/sushi-survivor/event"
	"github.com/mkotake/sushi-survivor/parameter"
	"github.com/mkotake/sushi-survivor/player"
	"github.com/mkotake/sushi-survivor/session"
	"github.com/mkotake/sushi-survivor/spawn"
)

type nopTimeline struct{}

func (nopTimeline) Pause()  {}
func (nopTimeline) Resume() {}

func newTestWorld(t *testing.T) (*World, *session.Machine, *event.Queue) {
	t.Helper()
	queue := event.NewQueue()
	engine := bonus.NewEngine(bonus.NewCatalog(nil), rand.New(rand.NewSource(1)))
	machine := session.NewMachine(queue, engine, nopTimeline{}, session.DefaultTables())

	bounds := core.Rect{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 40, Y: 20}}
	w := NewWorld(bounds, 5, player.NewParameters(), machine, queue, rand.New(rand.NewSource(2)))
	return w, machine, queue
}

func hasEvent(events []event.GameEvent, t event.EventType) bool {
	for _, e := range events {
		if e.Type == t {
			return true
		}
	}
	return false
}

func TestEatingSushiScores(t *testing.T) {
	w, m, queue := newTestWorld(t)
	m.StartNewSession()
	queue.Consume()

	w.SpawnSushi(spawn.Normal, w.PlayerPos())
	w.Update(0.1, 0.1)

	if got := m.Snapshot().RoundScore; got != parameter.SushiPointsNormal {
		t.Errorf("round score = %d, want %d", got, parameter.SushiPointsNormal)
	}
	if len(w.Sushi()) != 0 {
		t.Errorf("sushi remaining = %d, want 0 after eat", len(w.Sushi()))
	}
	if !hasEvent(queue.Consume(), event.EventSushiEaten) {
		t.Error("missing sushi-eaten event")
	}
}

func TestRareSushiScoresMore(t *testing.T) {
	w, m, queue := newTestWorld(t)
	m.StartNewSession()
	queue.Consume()

	w.SpawnSushi(spawn.Rare, w.PlayerPos())
	w.Update(0.1, 0.1)

	if got := m.Snapshot().RoundScore; got != parameter.SushiPointsRare {
		t.Errorf("round score = %d, want %d", got, parameter.SushiPointsRare)
	}
}

func TestWasabiStunsInsteadOfScoring(t *testing.T) {
	w, m, queue := newTestWorld(t)
	m.StartNewSession()
	queue.Consume()

	w.SpawnSushi(spawn.Secondary, w.PlayerPos())
	w.Update(0.1, 0.1)

	if got := m.Snapshot().RoundScore; got != 0 {
		t.Errorf("round score = %d, want 0 for wasabi", got)
	}
	if w.PlayerState() != PlayerStunned {
		t.Errorf("player state = %s, want Stunned", w.PlayerState())
	}
	if !hasEvent(queue.Consume(), event.EventWasabiHit) {
		t.Error("missing wasabi-hit event")
	}

	// Stun wears off.
	after := 0.1 + parameter.WasabiStunDuration.Seconds() + 0.1
	w.Update(after, 0.1)
	if w.PlayerState() != PlayerIdle {
		t.Errorf("player state after stun = %s, want Idle", w.PlayerState())
	}
}

func TestStunnedPlayerDoesNotMove(t *testing.T) {
	w, m, _ := newTestWorld(t)
	m.StartNewSession()

	w.SpawnSushi(spawn.Secondary, w.PlayerPos())
	w.Update(0.1, 0.1)
	pos := w.PlayerPos()

	w.SetMoveDirection(1, 0)
	w.Update(0.2, 0.1)
	if got := w.PlayerPos(); got != pos {
		t.Errorf("stunned player moved %v -> %v", pos, got)
	}
}

func TestSushiExpires(t *testing.T) {
	w, m, _ := newTestWorld(t)
	m.StartNewSession()

	// Far from the player so it cannot be eaten or pulled.
	w.Update(0, 0)
	w.SpawnSushi(spawn.Normal, core.Point{X: 0, Y: 0})

	w.Update(w.sushiLifetime()-0.1, 0.1)
	if len(w.Sushi()) != 1 {
		t.Fatalf("sushi expired early, remaining = %d", len(w.Sushi()))
	}

	w.Update(w.sushiLifetime()+0.1, 0.1)
	if len(w.Sushi()) != 0 {
		t.Errorf("sushi remaining = %d, want 0 after lifetime", len(w.Sushi()))
	}
}

func TestSushiLifetimeMultiplier(t *testing.T) {
	w, m, _ := newTestWorld(t)
	m.StartNewSession()

	w.SetSushiLifetimeMultiplier(2)
	w.Update(0, 0)
	w.SpawnSushi(spawn.Normal, core.Point{X: 0, Y: 0})

	w.Update(parameter.SushiDespawnTime+1, 0.1)
	if len(w.Sushi()) != 1 {
		t.Error("extended-lifetime sushi expired at base lifetime")
	}
}

func TestSensorPullsSushi(t *testing.T) {
	w, m, _ := newTestWorld(t)
	m.StartNewSession()

	// Just inside sensor range, well outside pickup range.
	target := w.PlayerPos()
	pos := core.Point{X: target.X - 2, Y: target.Y}
	w.Update(0, 0)
	w.SpawnSushi(spawn.Normal, pos)

	before := w.Sushi()[0].Pos.DistTo(Vec{X: float64(target.X), Y: float64(target.Y)})
	w.Update(0.1, 0.1)
	if len(w.Sushi()) == 0 {
		return // pulled all the way in and eaten, also acceptable
	}
	after := w.Sushi()[0].Pos.DistTo(Vec{X: float64(target.X), Y: float64(target.Y)})
	if after >= before {
		t.Errorf("sensor did not pull sushi: dist %v -> %v", before, after)
	}
}

func TestCarDrivesAndDespawnsOffBoard(t *testing.T) {
	w, m, _ := newTestWorld(t)
	m.StartNewSession()
	w.Update(0, 0)

	w.SpawnCar(spawn.Normal, core.Point{X: 0, Y: 5})
	if len(w.Cars()) != 1 {
		t.Fatal("car not spawned")
	}

	x0 := w.Cars()[0].Pos.X
	w.Update(0.5, 0.5)
	if len(w.Cars()) == 1 && w.Cars()[0].Pos.X <= x0 {
		t.Error("car did not advance")
	}

	// Drive far past the right edge.
	for now := 1.0; now < 20; now += 0.5 {
		w.Update(now, 0.5)
	}
	if len(w.Cars()) != 0 {
		t.Errorf("cars remaining = %d, want 0 after leaving the board", len(w.Cars()))
	}
}

func TestCarHoldsFollowDistance(t *testing.T) {
	w, m, _ := newTestWorld(t)
	m.StartNewSession()
	w.Update(0, 0)

	// A slow car with a fast rare car closing in from behind.
	w.SpawnCar(spawn.Normal, core.Point{X: 20, Y: 5})
	w.SpawnCar(spawn.Rare, core.Point{X: 16, Y: 5})
	if len(w.Cars()) != 2 {
		t.Fatal("cars not spawned")
	}

	for now := 0.05; now < 2.0; now += 0.05 {
		w.Update(now, 0.05)
		if len(w.Cars()) != 2 {
			break // leader left the board
		}
		var lead, chase float64
		for _, c := range w.Cars() {
			if c.Kind == core.CarRare {
				chase = c.Pos.X
			} else {
				lead = c.Pos.X
			}
		}
		if gap := lead - chase; gap < parameter.CarFollowDistance-1e-9 {
			t.Fatalf("follow gap = %v, want >= %v", gap, parameter.CarFollowDistance)
		}
	}
}

func TestCarCollisionStunsAndDropsSushi(t *testing.T) {
	w, m, queue := newTestWorld(t)
	m.StartNewSession()
	w.Update(0, 0)
	queue.Consume()

	// Put the car on top of the player.
	w.SpawnCar(spawn.Rare, w.PlayerPos())
	w.Update(0.01, 0.01)

	if w.PlayerState() != PlayerStunned {
		t.Errorf("player state = %s, want Stunned after collision", w.PlayerState())
	}
	if len(w.Cars()) != 1 || !w.Cars()[0].Exploded {
		t.Fatal("car did not explode on collision")
	}
	if !hasEvent(queue.Consume(), event.EventCarExploded) {
		t.Error("missing car-exploded event")
	}

	// Rare car drops a rare sushi.
	found := false
	for _, s := range w.Sushi() {
		if s.Kind == core.SushiRare {
			found = true
		}
	}
	if !found {
		t.Error("rare car did not drop rare sushi")
	}

	// Wreck despawns after its lifetime.
	w.Update(0.01+parameter.CarWreckLifetime.Seconds()+0.1, 0.1)
	if len(w.Cars()) != 0 {
		t.Errorf("wreck remaining after lifetime, cars = %d", len(w.Cars()))
	}
}

func TestDashShockwaveExplodesNearbyCar(t *testing.T) {
	w, m, _ := newTestWorld(t)
	m.StartNewSession()
	w.Update(0, 0)

	// Car near the player but outside collision contact.
	p := w.PlayerPos()
	w.SpawnCar(spawn.Normal, core.Point{X: p.X + 2, Y: p.Y})

	w.Dash()
	engage := parameter.PlayerDashDelay.Seconds() + 0.01
	w.Update(engage, 0.01)

	if len(w.Cars()) == 0 || !w.Cars()[0].Exploded {
		t.Error("shockwave did not explode car in radius")
	}
	if w.PlayerState() != PlayerDashing {
		t.Errorf("player state = %s, want Dashing at engage", w.PlayerState())
	}
}

func TestDashCooldownGatesRequests(t *testing.T) {
	w, m, _ := newTestWorld(t)
	m.StartNewSession()
	w.Update(0, 0)

	w.Dash()
	engage := parameter.PlayerDashDelay.Seconds() + 0.01
	w.Update(engage, 0.01)
	if w.PlayerState() != PlayerDashing {
		t.Fatal("dash did not engage")
	}

	// A request during the dash or cooldown is ignored.
	w.Dash()
	afterDash := engage + w.params.DashDuration().Seconds() + 0.1
	w.Update(afterDash, 0.1)
	if w.PlayerState() != PlayerIdle {
		t.Errorf("state after dash = %s, want Idle", w.PlayerState())
	}

	w.Dash()
	w.Update(afterDash+parameter.PlayerDashDelay.Seconds()+0.01, 0.01)
	if w.PlayerState() == PlayerDashing {
		t.Error("dash engaged during cooldown")
	}
}

func TestGroundPlacerAvoidsBlockedCells(t *testing.T) {
	area := core.Rect{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 10, Y: 10}}
	placer := GroundPlacer{
		Area:    area,
		Blocked: func(p core.Point) bool { return p.Y == 3 },
	}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		pos, ok := placer.Place(rng)
		if !ok {
			continue
		}
		if !area.Contains(pos) {
			t.Fatalf("placed outside area: %v", pos)
		}
		if pos.Y == 3 {
			t.Fatalf("placed on blocked row: %v", pos)
		}
	}
}

func TestGroundPlacerFullyBlockedSkips(t *testing.T) {
	placer := GroundPlacer{
		Area:    core.Rect{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 5, Y: 5}},
		Blocked: func(core.Point) bool { return true },
	}
	if _, ok := placer.Place(rand.New(rand.NewSource(1))); ok {
		t.Error("fully blocked area placed a spawn")
	}
}

func TestResetClearsEntities(t *testing.T) {
	w, m, _ := newTestWorld(t)
	m.StartNewSession()
	w.Update(0, 0)
	w.SpawnSushi(spawn.Normal, core.Point{X: 1, Y: 1})
	w.SpawnCar(spawn.Normal, core.Point{X: 0, Y: 5})

	w.Reset()
	if len(w.Sushi()) != 0 || len(w.Cars()) != 0 {
		t.Error("reset left entities on the board")
	}
	if w.PlayerState() != PlayerIdle {
		t.Errorf("reset state = %s, want Idle", w.PlayerState())
	}
}
