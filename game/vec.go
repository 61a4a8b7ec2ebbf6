package game

import (
	"math"

	"github.com/mkotake/sushi-survivor/core"
)

// Vec is a world-space position or direction. Entities move in
// continuous coordinates; the renderer rounds to cells.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector, zero-safe.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

func (v Vec) DistTo(o Vec) float64 {
	return v.Sub(o).Len()
}

// Cell rounds to the containing grid cell.
func (v Vec) Cell() core.Point {
	return core.Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// FromCell places a vector at a cell center.
func FromCell(p core.Point) Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}
