package maze

import "github.com/vovakirdan/maze-arcade/internal/core"

// Direction is a movement direction on the grid.
// DirNone is used by agents that have not moved yet.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Directions lists the four movement directions in neighbor enumeration order.
var Directions = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// IsOpposite reports whether d and other point in opposite directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d != DirNone && d.Opposite() == other
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "None"
	}
}

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Step returns the neighboring point in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Offset returns the point n tiles away in direction d.
func (p Point) Offset(d Direction, n int) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx*n, Y: p.Y + dy*n}
}

// Neighbors returns the four adjacent points in Left, Right, Up, Down order.
func (p Point) Neighbors() [4]Point {
	var out [4]Point
	for i, d := range Directions {
		out[i] = p.Step(d)
	}
	return out
}

// DirectionTo returns the direction leading from p to an adjacent point q.
// Returns DirNone when q is not adjacent.
func (p Point) DirectionTo(q Point) Direction {
	for _, d := range Directions {
		if p.Step(d) == q {
			return d
		}
	}
	return DirNone
}

// Clamp restricts the point to the grid bounds.
func (p Point) Clamp() Point {
	return Point{X: core.Clamp(p.X, 0, Width-1), Y: core.Clamp(p.Y, 0, Height-1)}
}
