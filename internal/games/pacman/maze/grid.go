// Package maze holds the fixed tile maze: wall topology, edible occupants
// and the collision query shared by every moving agent.
package maze

import (
	"fmt"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

// Grid dimensions in tiles.
const (
	Width  = 15
	Height = 20
)

// Well-known tiles of the default layout.
var (
	// PacmanStart is where Pacman spawns and where fruit appears.
	PacmanStart = Point{X: 7, Y: 10}
	// HouseCenter is the middle tile of the ghost house.
	HouseCenter = Point{X: 7, Y: 9}
	// HouseExit is the tile right above the house door.
	HouseExit = Point{X: 7, Y: 8}
)

// Layout legend: '#' wall, '.' dot, 'o' power pellet, anything else empty.
// The ghost house occupies (6..8, 9) and is a wall for every roaming agent.
var Layout = []string{
	".......#.......",
	".##.##.#.##.##.",
	".o...........o.",
	".#####.#.#####.",
	".....#.#.#.....",
	".#.#.#.#.#.#.#.",
	".#...........#.",
	".#####.#.#####.",
	"...............",
	"#####.###.#####",
	"....... .......",
	"####.#####.####",
	"..o#...#...#o..",
	".#.#.#.#.#.#.#.",
	"...#.#.#.#.#...",
	".#...#...#...#.",
	".#####.#.#####.",
	".......#.......",
	".#############.",
	"...............",
}

// CollisionQuery answers whether a tile can be entered.
// Out-of-range coordinates are always blocked.
type CollisionQuery interface {
	IsBlocked(x, y int) bool
}

// Grid is the maze. Walls are fixed at construction; occupants change as
// edibles are eaten and fruit comes and goes.
type Grid struct {
	walls     [Height][Width]bool
	occupants [Height][Width]Occupant
	initial   [Height][Width]Occupant
}

// NewGrid builds the default maze.
func NewGrid() *Grid {
	g, err := Parse(Layout)
	if err != nil {
		// Layout is a compiled-in constant.
		panic(err)
	}
	return g
}

// Parse builds a grid from layout rows. Each row must be exactly Width
// characters and there must be exactly Height rows.
func Parse(rows []string) (*Grid, error) {
	if len(rows) != Height {
		return nil, fmt.Errorf("maze: layout has %d rows, want %d", len(rows), Height)
	}
	g := &Grid{}
	for y, row := range rows {
		if len(row) != Width {
			return nil, fmt.Errorf("maze: row %d has %d columns, want %d", y, len(row), Width)
		}
		for x, ch := range row {
			switch ch {
			case '#':
				g.walls[y][x] = true
			case '.':
				g.initial[y][x] = DotTile
			case 'o':
				g.initial[y][x] = PowerPelletTile
			}
		}
	}
	g.Reset()
	return g, nil
}

// bounds is the tile area of the maze.
var bounds = core.NewRect(0, 0, Width, Height)

// InBounds reports whether (x, y) lies inside the grid.
func InBounds(x, y int) bool {
	return bounds.Contains(x, y)
}

// IsWall reports whether (x, y) is a wall. Out-of-range is a wall.
func (g *Grid) IsWall(x, y int) bool {
	if !InBounds(x, y) {
		return true
	}
	return g.walls[y][x]
}

// IsBlocked implements CollisionQuery.
func (g *Grid) IsBlocked(x, y int) bool {
	return g.IsWall(x, y)
}

// Occupant returns what lies on the tile. Out-of-range tiles are empty.
func (g *Grid) Occupant(x, y int) Occupant {
	if !InBounds(x, y) {
		return EmptyTile
	}
	return g.occupants[y][x]
}

// SetOccupant places an occupant on the tile. Out-of-range and wall tiles
// are ignored.
func (g *Grid) SetOccupant(x, y int, o Occupant) {
	if g.IsWall(x, y) {
		return
	}
	g.occupants[y][x] = o
}

// ClearOccupant empties the tile and returns what was there.
func (g *Grid) ClearOccupant(x, y int) Occupant {
	prev := g.Occupant(x, y)
	g.SetOccupant(x, y, EmptyTile)
	return prev
}

// Count returns the number of tiles whose occupant matches the predicate.
func (g *Grid) Count(match func(Occupant) bool) int {
	n := 0
	for y := range Height {
		for x := range Width {
			if match(g.occupants[y][x]) {
				n++
			}
		}
	}
	return n
}

// PowerPellets returns the tiles currently holding a power pellet.
func (g *Grid) PowerPellets() []Point {
	var out []Point
	for y := range Height {
		for x := range Width {
			if g.occupants[y][x].Kind == PowerPellet {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Reset restores every tile to its initial occupant.
func (g *Grid) Reset() {
	g.occupants = g.initial
}
