package game

import (
	"math/rand"

	"github.com/mkotake/sushi-survivor/core"
)

// GroundPlacer resolves sushi spawn positions: a random point inside
// the area, probed downward until a free ground cell is found. A
// probe that runs off the area without finding ground skips the
// spawn silently.
type GroundPlacer struct {
	Area    core.Rect
	Blocked func(core.Point) bool
}

func (g GroundPlacer) Place(rng *rand.Rand) (core.Point, bool) {
	if g.Area.Width() <= 0 || g.Area.Height() <= 0 {
		return core.Point{}, false
	}

	x := g.Area.Min.X + rng.Intn(g.Area.Width())
	startY := g.Area.Min.Y + rng.Intn(g.Area.Height())

	for y := startY; y < g.Area.Max.Y; y++ {
		p := core.Point{X: x, Y: y}
		if g.Blocked == nil || !g.Blocked(p) {
			return p, true
		}
	}
	return core.Point{}, false
}
