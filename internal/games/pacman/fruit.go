package pacman

import (
	"math"
	"time"

	"github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/signal"
)

// FruitManager makes a bonus fruit appear on Pacman's start tile at regular
// intervals and takes it away again when it is ignored.
type FruitManager struct {
	grid        *maze.Grid
	signals     *signal.Dispatcher
	rand        func() float64
	appearAfter time.Duration
	visible     time.Duration

	waiting   bool // Counting towards the next fruit
	startedAt time.Duration
	shown     bool
	shownAt   time.Duration
	kind      maze.FruitKind
}

// NewFruitManager creates a manager. rand returns values in [0, 1).
// The manager restarts its timer whenever a fruit is eaten.
func NewFruitManager(grid *maze.Grid, d *signal.Dispatcher, rand func() float64, appearAfter, visible time.Duration) *FruitManager {
	f := &FruitManager{
		grid:        grid,
		signals:     d,
		rand:        rand,
		appearAfter: appearAfter,
		visible:     visible,
	}
	signal.Subscribe(d, func(s signal.FruitEaten) { f.Start(s.At) })
	return f
}

// Start (re)starts the countdown to the next fruit. A fruit still on the
// maze is forgotten; the caller owns the grid.
func (f *FruitManager) Start(now time.Duration) {
	f.waiting = true
	f.startedAt = now
	f.shown = false
}

// Update spawns or expires the fruit.
func (f *FruitManager) Update(now time.Duration) {
	switch {
	case f.waiting && now-f.startedAt > f.appearAfter:
		f.spawn(now)
	case f.shown && now-f.shownAt > f.visible:
		f.remove(now)
	}
}

// Visible reports the fruit currently on the maze.
func (f *FruitManager) Visible() (maze.FruitKind, bool) {
	return f.kind, f.shown
}

func (f *FruitManager) spawn(now time.Duration) {
	f.waiting = false
	f.shown = true
	f.shownAt = now
	f.kind = pickFruit(f.rand())

	tile := maze.PacmanStart
	f.grid.SetOccupant(tile.X, tile.Y, maze.FruitTile(f.kind))
	f.signals.Emit(signal.FruitSpawned{Tile: tile, Fruit: f.kind, At: now})
}

func (f *FruitManager) remove(now time.Duration) {
	f.Start(now)

	tile := maze.PacmanStart
	if f.grid.Occupant(tile.X, tile.Y).Kind == maze.Fruit {
		f.grid.ClearOccupant(tile.X, tile.Y)
	}
	f.signals.Emit(signal.FruitRemoved{Tile: tile, At: now})
}

// pickFruit maps x in [0, 1) to a fruit. Each fruit weighs the inverse of
// its score relative to the Key, so cheap fruit is the most common.
func pickFruit(x float64) maze.FruitKind {
	base := float64(maze.Key.Score())
	bounds := make([]float64, len(maze.FruitKinds))
	sum := 0.0
	for i, k := range maze.FruitKinds {
		sum += base / float64(k.Score())
		bounds[i] = sum
	}

	r := math.Round(x*(sum-bounds[0]) + bounds[0])
	for i, k := range maze.FruitKinds {
		if r <= bounds[i] {
			return k
		}
	}
	return maze.FruitKinds[len(maze.FruitKinds)-1]
}
