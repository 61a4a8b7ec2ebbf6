// Package spawn implements a Poisson-process spawn scheduler with a
// deterministic minimum spacing floor and rarity-weighted category
// selection. The game runs two instances, one for sushi and one for
// cars, distinguished only by their Placer and configured rates.
package spawn

import (
	"math"
	"math/rand"

	"github.com/mkotake/sushi-survivor/core"
	"github.com/mkotake/sushi-survivor/parameter"
)

// Category is the rarity class selected on each fire.
type Category int

const (
	// Normal is the default category when neither special roll hits.
	Normal Category = iota
	// Rare is the low-probability high-value category.
	Rare
	// Secondary is the second special category (wasabi for sushi;
	// unused by the car scheduler, which leaves its probability at 0).
	Secondary
)

func (c Category) String() string {
	switch c {
	case Normal:
		return "Normal"
	case Rare:
		return "Rare"
	case Secondary:
		return "Secondary"
	default:
		return "Unknown"
	}
}

// Placer resolves a world position for one spawn attempt. A false
// return skips the spawn silently, e.g. a ground probe over a hole.
type Placer interface {
	Place(rng *rand.Rand) (core.Point, bool)
}

// FixedPlacer always places at one point. Used by the car scheduler.
type FixedPlacer struct {
	Pos core.Point
}

func (f FixedPlacer) Place(*rand.Rand) (core.Point, bool) {
	return f.Pos, true
}

// Sink receives successful spawns.
type Sink func(category Category, pos core.Point)

// Scheduler maintains the inter-arrival timer and category weights
// for one spawn stream. It is driven from the game loop goroutine;
// time values are game-time seconds, so pausing the game clock
// freezes the stream without touching scheduler state.
type Scheduler struct {
	rng    *rand.Rand
	placer Placer
	sink   Sink

	// Base values from Configure, preserved so multipliers compose
	// against the original rates rather than each other.
	baseFixed     float64
	baseMean      float64
	baseRare      float64
	baseSecondary float64

	// Effective values after multiplier application.
	mean      float64
	rare      float64
	secondary float64

	active   bool
	nextFire float64
}

// NewScheduler creates an inactive scheduler. Configure then Start it.
func NewScheduler(rng *rand.Rand, placer Placer, sink Sink) *Scheduler {
	return &Scheduler{rng: rng, placer: placer, sink: sink}
}

// Configure sets base rates. Probabilities are clamped to [0,1] and
// become the reference point for later multiplier calls.
func (s *Scheduler) Configure(fixedInterval, meanRandomInterval, rareProbability, secondaryProbability float64) {
	s.baseFixed = math.Max(0, fixedInterval)
	s.baseMean = math.Max(parameter.MinMeanInterval, meanRandomInterval)
	s.baseRare = clampUnit(rareProbability)
	s.baseSecondary = clampUnit(secondaryProbability)

	s.mean = s.baseMean
	s.rare = s.baseRare
	s.secondary = s.baseSecondary
}

// SetIntervalMultiplier divides the base mean interval, so a higher
// multiplier means more frequent spawns. Non-positive multipliers are
// treated as 1.
func (s *Scheduler) SetIntervalMultiplier(m float64) {
	if m <= 0 {
		m = 1
	}
	s.mean = math.Max(parameter.MinMeanInterval, s.baseMean/m)
}

// SetRareProbabilityMultiplier scales the base rare probability,
// clamped to [0,1].
func (s *Scheduler) SetRareProbabilityMultiplier(m float64) {
	s.rare = clampUnit(s.baseRare * m)
}

// SetSecondaryProbabilityMultiplier scales the base secondary
// probability, clamped to [0,1].
func (s *Scheduler) SetSecondaryProbabilityMultiplier(m float64) {
	s.secondary = clampUnit(s.baseSecondary * m)
}

// Start activates the stream and schedules the first fire relative to
// now, so reactivation after a pause never releases a backlog burst.
func (s *Scheduler) Start(now float64) {
	s.active = true
	s.nextFire = now + s.gap()
}

// Stop deactivates the stream. Ticks become no-ops until Start.
func (s *Scheduler) Stop() {
	s.active = false
}

// Active reports whether the stream is running.
func (s *Scheduler) Active() bool {
	return s.active
}

// Tick fires at most one spawn per call. now is game-time seconds.
func (s *Scheduler) Tick(now float64) {
	if !s.active || now < s.nextFire {
		return
	}
	s.nextFire = now + s.gap()

	category := s.selectCategory()
	pos, ok := s.placer.Place(s.rng)
	if !ok {
		return
	}
	s.sink(category, pos)
}

// gap draws one inter-arrival gap: the fixed floor plus an
// exponential tail with the effective mean.
func (s *Scheduler) gap() float64 {
	u := s.rng.Float64()
	if 1-u <= 0 {
		u = parameter.UnitIntervalEpsilonSubstitute
	}
	return s.baseFixed + (-math.Log(1-u) * s.mean)
}

// selectCategory rolls the rarity class. When rare+secondary exceed 1
// they are renormalized proportionally and the normal category becomes
// unreachable; that saturation is intentional.
func (s *Scheduler) selectCategory() Category {
	roll := s.rng.Float64()
	sum := s.rare + s.secondary
	if sum > 1 {
		if roll < s.rare/sum {
			return Rare
		}
		return Secondary
	}
	if roll < s.rare {
		return Rare
	}
	if roll > 1-s.secondary {
		return Secondary
	}
	return Normal
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
