package pacman

import (
	"time"

	"github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/signal"
)

// Level tracks the edibles of the current maze and announces progress.
type Level struct {
	grid    *maze.Grid
	signals *signal.Dispatcher
	number  int
	total   int
	eaten   int
}

// NewLevel creates a level bound to grid. Call Start before use.
func NewLevel(grid *maze.Grid, d *signal.Dispatcher) *Level {
	return &Level{grid: grid, signals: d}
}

// Start refills the maze for a 1-indexed level number.
func (l *Level) Start(number int) {
	l.grid.Reset()
	l.number = number
	l.eaten = 0
	l.total = l.grid.Count(maze.Occupant.CountsForLevel)
}

// Eat removes whatever lies on tile and emits the matching signals.
// Dots and pellets advance the level; fruit does not.
func (l *Level) Eat(tile maze.Point, now time.Duration) maze.Occupant {
	o := l.grid.ClearOccupant(tile.X, tile.Y)
	switch o.Kind {
	case maze.Empty:
		return o
	case maze.Fruit:
		l.signals.Emit(signal.FruitEaten{Tile: tile, Fruit: o.Fruit, At: now})
		return o
	}

	l.eaten++
	l.signals.Emit(signal.DotEaten{Tile: tile, Occupant: o, Eaten: l.eaten, Total: l.total, At: now})
	if o.Kind == maze.PowerPellet {
		l.signals.Emit(signal.PelletEaten{Tile: tile, At: now})
	}
	if l.Remaining() <= 0 {
		l.signals.Emit(signal.LevelFinished{Level: l.number, At: now})
	}
	return o
}

// Number returns the 1-indexed level number.
func (l *Level) Number() int { return l.number }

// Eaten returns how many dots and pellets were eaten this level.
func (l *Level) Eaten() int { return l.eaten }

// Total returns the number of dots and pellets the level started with.
func (l *Level) Total() int { return l.total }

// Remaining returns the dots and pellets still on the maze.
func (l *Level) Remaining() int { return l.total - l.eaten }
