// Package game is the presentation-side world: the player actor,
// sushi pickups and cars living on the board. It feeds discrete
// pickup/collision notifications into the session core and consumes
// spawn fires from the schedulers; it never reaches into core state
// directly.
package game

import (
	"math"
	"math/rand"

	"github.com/mkotake/sushi-survivor/core"
	"github.com/mkotake/sushi-survivor/event"
	"github.com/mkotake/sushi-survivor/parameter"
	"github.com/mkotake/sushi-survivor/player"
	"github.com/mkotake/sushi-survivor/session"
	"github.com/mkotake/sushi-survivor/spawn"
)

// pickupRadius is the contact distance for eating sushi and for
// car-player collision, in cells.
const pickupRadius = 0.95

// World owns all board entities and advances them on game time.
// Everything runs on the game loop goroutine.
type World struct {
	bounds core.Rect
	roadY  int

	params  *player.Parameters
	machine *session.Machine
	queue   *event.Queue
	rng     *rand.Rand

	// Bases mutated only via SetBases; multipliers via the bonus
	// setter surface.
	sushiLifetimeBase float64
	sushiLifetimeMult float64
	carExplosionBase  float64
	carExplosionMult  float64
	carSpeed          float64

	now float64

	playerPos    Vec
	moveDir      Vec
	dashPending  bool
	dashStartAt  float64
	dashUntil    float64
	dashReadyAt  float64
	stunnedUntil float64

	sushi []*Sushi
	cars  []*Car
}

// NewWorld creates a world over the given board. roadY is the lane
// row cars drive along.
func NewWorld(bounds core.Rect, roadY int, params *player.Parameters, machine *session.Machine, queue *event.Queue, rng *rand.Rand) *World {
	w := &World{
		bounds:            bounds,
		roadY:             roadY,
		params:            params,
		machine:           machine,
		queue:             queue,
		rng:               rng,
		sushiLifetimeBase: parameter.SushiDespawnTime,
		sushiLifetimeMult: 1,
		carExplosionBase:  parameter.CarExplosionRadius,
		carExplosionMult:  1,
		carSpeed:          parameter.CarMoveSpeed,
	}
	w.resetPlayer()
	return w
}

// SetBases overrides world tuning from the balance config.
func (w *World) SetBases(sushiLifetime, carSpeed, carExplosionRadius float64) {
	w.sushiLifetimeBase = sushiLifetime
	w.carSpeed = carSpeed
	w.carExplosionBase = carExplosionRadius
}

// SetSushiLifetimeMultiplier is the bonus setter for sushi freshness.
func (w *World) SetSushiLifetimeMultiplier(m float64) { w.sushiLifetimeMult = m }

// SetCarExplosionMultiplier is the bonus setter for explosion scale.
// Magnitude tables for it descend, so upgrades shrink the blast.
func (w *World) SetCarExplosionMultiplier(m float64) { w.carExplosionMult = m }

func (w *World) sushiLifetime() float64 { return w.sushiLifetimeBase * w.sushiLifetimeMult }

func (w *World) explosionRadius() float64 { return w.carExplosionBase * w.carExplosionMult }

// Reset clears entities and recenters the player for a new session.
// Bonus multipliers reset separately with the bonus engine.
func (w *World) Reset() {
	w.sushi = w.sushi[:0]
	w.cars = w.cars[:0]
	w.sushiLifetimeMult = 1
	w.carExplosionMult = 1
	w.resetPlayer()
}

func (w *World) resetPlayer() {
	w.playerPos = Vec{
		X: float64(w.bounds.Min.X+w.bounds.Max.X) / 2,
		Y: float64(w.bounds.Max.Y - 1),
	}
	w.moveDir = Vec{}
	w.dashPending = false
	w.dashStartAt = 0
	w.dashUntil = 0
	w.dashReadyAt = 0
	w.stunnedUntil = 0
}

// SetMoveDirection sets the player input direction; zero stops.
func (w *World) SetMoveDirection(dx, dy float64) {
	w.moveDir = Vec{X: dx, Y: dy}
}

// Dash requests a dash. It engages after a short wind-up and is
// ignored while stunned, mid-dash or cooling down.
func (w *World) Dash() {
	if w.now < w.dashReadyAt || w.now < w.stunnedUntil || w.dashPending || w.now < w.dashUntil {
		return
	}
	w.dashPending = true
	w.dashStartAt = w.now + parameter.PlayerDashDelay.Seconds()
}

// PlayerState reports how the player should be drawn.
func (w *World) PlayerState() PlayerState {
	switch {
	case w.now < w.stunnedUntil:
		return PlayerStunned
	case w.now < w.dashUntil:
		return PlayerDashing
	default:
		return PlayerIdle
	}
}

// PlayerPos returns the player cell.
func (w *World) PlayerPos() core.Point { return w.playerPos.Cell() }

// Sushi returns live pickups. Read-only; valid until the next Update.
func (w *World) Sushi() []*Sushi { return w.sushi }

// Cars returns live cars. Read-only; valid until the next Update.
func (w *World) Cars() []*Car { return w.cars }

// SpawnSushi is the sink for the sushi scheduler.
func (w *World) SpawnSushi(category spawn.Category, pos core.Point) {
	var kind core.SushiKind
	switch category {
	case spawn.Rare:
		kind = core.SushiRare
	case spawn.Secondary:
		kind = core.Wasabi
	default:
		kind = core.SushiNormal
	}
	w.dropSushi(kind, FromCell(pos))
	w.queue.Emit(event.EventSushiSpawned, event.SushiSpawnedPayload{Kind: kind, Pos: pos})
}

// SpawnCar is the sink for the car scheduler.
func (w *World) SpawnCar(category spawn.Category, pos core.Point) {
	kind := core.CarNormal
	speed := w.carSpeed
	if category == spawn.Rare {
		kind = core.CarRare
		speed *= 1.5
	}
	w.cars = append(w.cars, &Car{Kind: kind, Pos: FromCell(pos), Speed: speed})
	w.queue.Emit(event.EventCarSpawned, event.CarSpawnedPayload{Kind: kind, Pos: pos})
	w.queue.Emit(event.EventSoundRequest, event.SoundRequestPayload{Cue: event.CueHorn})
}

func (w *World) dropSushi(kind core.SushiKind, pos Vec) {
	w.sushi = append(w.sushi, &Sushi{
		Kind:      kind,
		Pos:       pos,
		ExpiresAt: w.now + w.sushiLifetime(),
	})
}

// Blocked reports whether a cell cannot take a sushi spawn. The road
// lane and occupied cells reject the ground probe.
func (w *World) Blocked(p core.Point) bool {
	if p.Y == w.roadY {
		return true
	}
	for _, s := range w.sushi {
		if s.Pos.Cell() == p {
			return true
		}
	}
	return false
}

// Update advances the world by dt game-seconds. now is game time.
// The caller skips Update entirely while the session is not in active
// play, so entity lifetimes freeze with the game clock.
func (w *World) Update(now, dt float64) {
	w.now = now

	w.updatePlayer(now, dt)
	w.updateSushi(now, dt)
	w.updateCars(now, dt)
	w.eat(now)
}

func (w *World) updatePlayer(now, dt float64) {
	if now < w.stunnedUntil {
		return
	}

	if w.dashPending && now >= w.dashStartAt {
		w.dashPending = false
		w.dashUntil = now + w.params.DashDuration().Seconds()
		w.dashReadyAt = w.dashUntil + w.params.DashCooldown().Seconds()
		w.shockwave(now)
	}

	speed := w.params.MoveSpeed()
	if now < w.dashUntil {
		speed = w.params.DashSpeed()
	}

	w.playerPos = w.playerPos.Add(w.moveDir.Normalize().Scale(speed * dt))
	w.playerPos.X = clamp(w.playerPos.X, float64(w.bounds.Min.X), float64(w.bounds.Max.X-1))
	w.playerPos.Y = clamp(w.playerPos.Y, float64(w.bounds.Min.Y), float64(w.bounds.Max.Y-1))
}

// shockwave fires at dash engage: cars inside the blast radius
// explode immediately.
func (w *World) shockwave(now float64) {
	radius := w.params.ShockwaveRadius()
	for _, c := range w.cars {
		if !c.Exploded && c.Pos.DistTo(w.playerPos) <= radius {
			w.explodeCar(c, now)
		}
	}
}

func (w *World) updateSushi(now, dt float64) {
	// Sensor pull: sushi inside sensor range drifts toward the player.
	sensor := w.params.SensorRange()
	for _, s := range w.sushi {
		if d := s.Pos.DistTo(w.playerPos); d > pickupRadius && d <= sensor {
			step := w.playerPos.Sub(s.Pos).Normalize().Scale(parameter.PlayerSensorPullSpeed * dt)
			s.Pos = s.Pos.Add(step)
		}
	}

	live := w.sushi[:0]
	for _, s := range w.sushi {
		if now < s.ExpiresAt {
			live = append(live, s)
		}
	}
	w.sushi = live
}

func (w *World) updateCars(now, dt float64) {
	live := w.cars[:0]
	for _, c := range w.cars {
		if c.Exploded {
			if now < c.WreckUntil {
				live = append(live, c)
			}
			continue
		}

		next := c.Pos.X + c.Speed*dt
		// Fast cars queue up behind slower traffic and wrecks instead
		// of driving through them.
		if ahead := w.carAhead(c); ahead != nil {
			if limit := ahead.Pos.X - parameter.CarFollowDistance; next > limit {
				next = math.Max(c.Pos.X, limit)
			}
		}
		c.Pos.X = next
		if c.Pos.X >= float64(w.bounds.Max.X) {
			continue // drove off the board
		}

		if c.Pos.DistTo(w.playerPos) <= pickupRadius {
			w.explodeCar(c, now)
			if w.PlayerState() != PlayerDashing {
				w.stun(now)
			}
		}
		live = append(live, c)
	}
	w.cars = live
}

// carAhead returns the nearest car further along the road, or nil.
func (w *World) carAhead(c *Car) *Car {
	var nearest *Car
	for _, o := range w.cars {
		if o == c || o.Pos.X <= c.Pos.X {
			continue
		}
		if nearest == nil || o.Pos.X < nearest.Pos.X {
			nearest = o
		}
	}
	return nearest
}

// explodeCar turns a car into a wreck, stuns the player if caught in
// the blast, and drops a sushi where it died. Rare cars drop rare.
func (w *World) explodeCar(c *Car, now float64) {
	c.Exploded = true
	c.WreckUntil = now + parameter.CarWreckLifetime.Seconds()

	radius := w.explosionRadius()
	w.queue.Emit(event.EventCarExploded, event.CarExplodedPayload{Pos: c.Pos.Cell(), Radius: radius})
	w.queue.Emit(event.EventSoundRequest, event.SoundRequestPayload{Cue: event.CueExplosion})

	if w.PlayerState() != PlayerDashing && c.Pos.DistTo(w.playerPos) <= radius {
		w.stun(now)
	}

	kind := core.SushiNormal
	if c.Kind == core.CarRare {
		kind = core.SushiRare
	}
	drop := c.Pos
	drop.Y = float64(w.roadY + 1)
	if drop.Y > float64(w.bounds.Max.Y-1) {
		drop.Y = float64(w.bounds.Max.Y - 1)
	}
	w.dropSushi(kind, drop)
}

func (w *World) stun(now float64) {
	w.stunnedUntil = now + parameter.WasabiStunDuration.Seconds()
	w.dashPending = false
	w.dashUntil = 0
}

// eat resolves pickups in contact with the player. Wasabi stuns
// instead of scoring; everything else is credited to the session.
func (w *World) eat(now float64) {
	live := w.sushi[:0]
	for _, s := range w.sushi {
		if s.Pos.DistTo(w.playerPos) > pickupRadius {
			live = append(live, s)
			continue
		}

		switch s.Kind {
		case core.Wasabi:
			w.stun(now)
			w.queue.Emit(event.EventWasabiHit, nil)
			w.queue.Emit(event.EventSoundRequest, event.SoundRequestPayload{Cue: event.CueWasabi})
		case core.SushiRare:
			w.machine.OnScoreEvent(parameter.SushiPointsRare)
			w.queue.Emit(event.EventSushiEaten, event.SushiEatenPayload{Kind: s.Kind, Points: parameter.SushiPointsRare})
			w.queue.Emit(event.EventSoundRequest, event.SoundRequestPayload{Cue: event.CueRareEat})
		default:
			w.machine.OnScoreEvent(parameter.SushiPointsNormal)
			w.queue.Emit(event.EventSushiEaten, event.SushiEatenPayload{Kind: s.Kind, Points: parameter.SushiPointsNormal})
			w.queue.Emit(event.EventSoundRequest, event.SoundRequestPayload{Cue: event.CueEat})
		}
	}
	w.sushi = live
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
