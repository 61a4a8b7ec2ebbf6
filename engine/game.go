// Package engine wires the game together: clocks, event routing, the
// session machine, the bonus engine, both spawn schedulers and the
// world. It owns the tick loop; nothing else constructs or connects
// these pieces.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mkotake/sushi-survivor/bonus"
	"github.com/mkotake/sushi-survivor/config"
	"github.com/mkotake/sushi-survivor/core"
	"github.com/mkotake/sushi-survivor/event"
	"github.com/mkotake/sushi-survivor/game"
	"github.com/mkotake/sushi-survivor/parameter"
	"github.com/mkotake/sushi-survivor/player"
	"github.com/mkotake/sushi-survivor/session"
	"github.com/mkotake/sushi-survivor/spawn"
)

// Game is the composition root. All subsystems are constructed and
// connected here and handed out by reference; there are no
// package-level instances.
type Game struct {
	queue  *event.Queue
	router *event.Router
	clock  *PausableClock
	epoch  time.Time

	balance config.Balance
	bounds  core.Rect
	roadY   int

	machine  *session.Machine
	bonuses  *bonus.Engine
	params   *player.Parameters
	world    *game.World
	sushiSch *spawn.Scheduler
	carSch   *spawn.Scheduler

	lastGame time.Time
	lastReal time.Time

	// schedulersRunning tracks the session-active edge so resumed
	// schedulers recompute their next fire instead of bursting.
	schedulersRunning bool
}

// NewGame builds the full object graph from a balance sheet. seed
// fixes both schedulers and the bonus draws; pass 0 to seed from the
// clock. bounds is the playable board; roadY the car lane row.
func NewGame(balance config.Balance, seed int64, bounds core.Rect, real TimeProvider) (*Game, error) {
	catalog, err := balance.Catalog()
	if err != nil {
		return nil, fmt.Errorf("build upgrade catalog: %w", err)
	}

	if seed == 0 {
		seed = real.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	clock := NewPausableClock(real)
	queue := event.NewQueue()

	g := &Game{
		queue:   queue,
		router:  event.NewRouter(queue),
		clock:   clock,
		epoch:   clock.Now(),
		balance: balance,
		bounds:  bounds,
		roadY:   roadRow(bounds),
		bonuses: bonus.NewEngine(catalog, rng),
		params:  player.NewParameters(),
	}

	g.params.SetBases(
		balance.Player.MoveSpeed,
		balance.Player.DashSpeed,
		secondsToDuration(balance.Player.DashDuration),
		secondsToDuration(balance.Player.DashCooldown),
		balance.Player.ShockwaveRadius,
		balance.Player.SensorRange,
	)

	g.machine = session.NewMachine(queue, g.bonuses, clock, session.Tables{
		TargetScorePerDay:  balance.Session.TargetScorePerDay,
		TimeIncreasePerDay: balance.Session.TimeIncreasePerDay,
		InitialRoundTime:   balance.Session.InitialRoundTime,
	})

	g.world = game.NewWorld(bounds, g.roadY, g.params, g.machine, queue, rng)
	g.world.SetBases(balance.Sushi.Lifetime, parameter.CarMoveSpeed, parameter.CarExplosionRadius)

	groundArea := core.Rect{
		Min: core.Point{X: bounds.Min.X, Y: g.roadY + 1},
		Max: bounds.Max,
	}
	g.sushiSch = spawn.NewScheduler(rng, game.GroundPlacer{Area: groundArea, Blocked: g.world.Blocked}, g.world.SpawnSushi)
	g.carSch = spawn.NewScheduler(rng, spawn.FixedPlacer{Pos: core.Point{X: bounds.Min.X, Y: g.roadY}}, g.world.SpawnCar)
	g.configureSchedulers()

	g.bindBonuses()
	return g, nil
}

func (g *Game) configureSchedulers() {
	g.sushiSch.Configure(
		g.balance.Sushi.FixedInterval,
		g.balance.Sushi.MeanInterval,
		g.balance.Sushi.RareProbability,
		g.balance.Sushi.SecondaryProbability,
	)
	g.carSch.Configure(
		g.balance.Cars.FixedInterval,
		g.balance.Cars.MeanInterval,
		g.balance.Cars.RareProbability,
		g.balance.Cars.SecondaryProbability,
	)
}

// bindBonuses builds the category to setter dispatch table. Exactly
// one setter per category; the bonus engine calls through on apply.
func (g *Game) bindBonuses() {
	g.bonuses.Bind(bonus.MoveSpeed, g.params.SetMoveSpeedMultiplier)
	g.bonuses.Bind(bonus.DashCooldown, g.params.SetDashCooldownMultiplier)
	g.bonuses.Bind(bonus.DashSpeed, g.params.SetDashSpeedMultiplier)
	g.bonuses.Bind(bonus.DashDuration, g.params.SetDashDurationMultiplier)
	g.bonuses.Bind(bonus.ShockwaveSize, g.params.SetShockwaveMultiplier)
	g.bonuses.Bind(bonus.SushiSensorRange, g.params.SetSensorRangeMultiplier)
	g.bonuses.Bind(bonus.SushiSpawnRate, g.sushiSch.SetIntervalMultiplier)
	g.bonuses.Bind(bonus.SushiDuration, g.world.SetSushiLifetimeMultiplier)
	g.bonuses.Bind(bonus.RareSushiSpawnRate, g.sushiSch.SetRareProbabilityMultiplier)
	g.bonuses.Bind(bonus.WasabiSpawnRate, g.sushiSch.SetSecondaryProbabilityMultiplier)
	g.bonuses.Bind(bonus.CarSpawnRate, g.carSch.SetIntervalMultiplier)
	g.bonuses.Bind(bonus.RareCarSpawnRate, g.carSch.SetRareProbabilityMultiplier)
	g.bonuses.Bind(bonus.CarExplosionRange, g.world.SetCarExplosionMultiplier)
}

// Accessors for presentation and input layers.

func (g *Game) Router() *event.Router      { return g.router }
func (g *Game) Queue() *event.Queue        { return g.queue }
func (g *Game) Machine() *session.Machine  { return g.machine }
func (g *Game) Bonuses() *bonus.Engine     { return g.bonuses }
func (g *Game) Params() *player.Parameters { return g.params }
func (g *Game) World() *game.World         { return g.world }
func (g *Game) Bounds() core.Rect          { return g.bounds }
func (g *Game) RoadRow() int               { return g.roadY }

// GameSeconds returns elapsed game time, frozen while paused.
func (g *Game) GameSeconds() float64 {
	return g.clock.Now().Sub(g.epoch).Seconds()
}

// StartSession resets everything and begins a fresh run.
func (g *Game) StartSession() error {
	g.world.Reset()
	g.params.Reset()
	g.configureSchedulers()
	if err := g.machine.StartNewSession(); err != nil {
		return err
	}
	g.lastGame = g.clock.Now()
	g.lastReal = g.clock.RealTime()
	return nil
}

// ChooseBonus forwards a day-end choice from the UI.
func (g *Game) ChooseBonus(index int) error {
	return g.machine.ChooseBonus(index)
}

// TogglePause flips the session pause latch.
func (g *Game) TogglePause() {
	if g.machine.Snapshot().Paused {
		g.machine.Resume()
	} else {
		g.machine.Pause()
	}
}

// Tick advances one frame: session machine, then world and
// schedulers while play is active, then event dispatch. Call it at a
// fixed cadence from the main loop.
func (g *Game) Tick() {
	gameNow := g.clock.Now()
	realNow := g.clock.RealTime()
	if g.lastGame.IsZero() {
		g.lastGame, g.lastReal = gameNow, realNow
	}
	gameDt := gameNow.Sub(g.lastGame).Seconds()
	realDt := realNow.Sub(g.lastReal).Seconds()
	g.lastGame, g.lastReal = gameNow, realNow

	g.machine.Tick(gameDt, realDt)

	active := g.machine.Active()
	now := gameNow.Sub(g.epoch).Seconds()

	if active && !g.schedulersRunning {
		g.sushiSch.Start(now)
		g.carSch.Start(now)
	} else if !active && g.schedulersRunning {
		g.sushiSch.Stop()
		g.carSch.Stop()
	}
	g.schedulersRunning = active

	if active {
		g.world.Update(now, gameDt)
		g.sushiSch.Tick(now)
		g.carSch.Tick(now)
	}

	g.router.DispatchAll()
}

func roadRow(bounds core.Rect) int {
	// The road sits a third of the way down the board.
	return bounds.Min.Y + bounds.Height()/3
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
