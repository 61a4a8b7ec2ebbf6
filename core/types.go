package core

// TimeOfDay is the phase of the in-game day
// A day is three rounds: Morning, Afternoon, Evening
type TimeOfDay int

const (
	Morning TimeOfDay = iota
	Afternoon
	Evening
)

// Next returns the following time of day and whether the day wrapped
// Evening wraps back to Morning and advances the day counter
func (t TimeOfDay) Next() (TimeOfDay, bool) {
	switch t {
	case Morning:
		return Afternoon, false
	case Afternoon:
		return Evening, false
	default:
		return Morning, true
	}
}

// String returns the name of the time of day for display and debugging
func (t TimeOfDay) String() string {
	switch t {
	case Morning:
		return "Morning"
	case Afternoon:
		return "Afternoon"
	case Evening:
		return "Evening"
	default:
		return "Unknown"
	}
}

// Point is a position on the game board
type Point struct {
	X, Y int
}

// Rect is an axis-aligned area on the game board, inclusive of Min, exclusive of Max
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Width returns the horizontal extent of the rectangle
func (r Rect) Width() int { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rectangle
func (r Rect) Height() int { return r.Max.Y - r.Min.Y }
