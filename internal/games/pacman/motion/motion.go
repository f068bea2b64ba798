// Package motion is the grid-aligned pixel movement shared by Pacman and
// the ghosts.
package motion

import "github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"

// TileSize is the width of a tile in pixels.
const TileSize = 40

// Motion is a pixel position with a heading and a speed.
// X and Y are the top-left corner of the agent's tile-sized box.
type Motion struct {
	X, Y  int
	Dir   maze.Direction
	Speed int // pixels per logic tick
}

// At places an agent exactly on a tile.
func At(tile maze.Point, dir maze.Direction, speed int) Motion {
	return Motion{
		X:     tile.X * TileSize,
		Y:     tile.Y * TileSize,
		Dir:   dir,
		Speed: speed,
	}
}

// Aligned reports whether both axes sit exactly on a tile boundary.
// Turning decisions are only taken while aligned.
func (m Motion) Aligned() bool {
	return m.X%TileSize == 0 && m.Y%TileSize == 0
}

// Center returns the pixel center of the agent.
func (m Motion) Center() (x, y int) {
	return m.X + TileSize/2, m.Y + TileSize/2
}

// Tile returns the tile holding the agent's center.
func (m Motion) Tile() maze.Point {
	cx, cy := m.Center()
	return maze.Point{X: floorDiv(cx, TileSize), Y: floorDiv(cy, TileSize)}
}

// NextTile returns the tile adjacent to the current one in direction d.
func (m Motion) NextTile(d maze.Direction) maze.Point {
	return m.Tile().Step(d)
}

// PreviousTile returns the tile behind the agent.
func (m Motion) PreviousTile() maze.Point {
	return m.Tile().Step(m.Dir.Opposite())
}

// Advance moves the agent Speed pixels along its heading.
func (m *Motion) Advance() {
	dx, dy := m.Dir.Delta()
	m.X += dx * m.Speed
	m.Y += dy * m.Speed
}

// Reverse flips the heading in place.
func (m *Motion) Reverse() {
	if m.Dir != maze.DirNone {
		m.Dir = m.Dir.Opposite()
	}
}

// Progress returns how far, in percent, the agent has travelled through the
// current tile boundary along its heading. 75 means the agent's center is
// three quarters of the way into the tile it is entering.
func (m Motion) Progress() int {
	switch m.Dir {
	case maze.DirLeft:
		return 100 - mod(m.X, TileSize)*100/TileSize
	case maze.DirRight:
		return mod(m.X, TileSize) * 100 / TileSize
	case maze.DirUp:
		return 100 - mod(m.Y, TileSize)*100/TileSize
	case maze.DirDown:
		return mod(m.Y, TileSize) * 100 / TileSize
	default:
		return 0
	}
}

// SnapEven removes an odd pixel on the travel axis so that a speed of two
// can land on tile boundaries again. The correction steps backwards along
// the heading.
func (m *Motion) SnapEven() {
	switch m.Dir {
	case maze.DirLeft:
		m.X += mod(m.X, 2)
	case maze.DirUp:
		m.Y += mod(m.Y, 2)
	case maze.DirDown:
		m.Y -= mod(m.Y, 2)
	default:
		m.X -= mod(m.X, 2)
	}
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
