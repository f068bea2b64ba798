package pacman

import (
	"testing"
	"time"

	"github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/signal"
)

func TestPickFruit(t *testing.T) {
	tests := []struct {
		x    float64
		want maze.FruitKind
	}{
		{0, maze.Key},
		{0.01, maze.Bell},
		{0.03, maze.Galaxian},
		{0.05, maze.Melon},
		{0.15, maze.Apple},
		{0.2, maze.Orange},
		{0.4, maze.Strawberry},
		{0.5, maze.Cherry},
		{0.999, maze.Cherry},
	}

	for _, tt := range tests {
		if got := pickFruit(tt.x); got != tt.want {
			t.Errorf("pickFruit(%v) = %s, expected %s", tt.x, got, tt.want)
		}
	}
}

func TestFruitTiming(t *testing.T) {
	grid := maze.NewGrid()
	d := signal.New()
	var spawned, removed int
	signal.Subscribe(d, func(signal.FruitSpawned) { spawned++ })
	signal.Subscribe(d, func(signal.FruitRemoved) { removed++ })

	f := NewFruitManager(grid, d, func() float64 { return 0 }, 30*time.Second, 10*time.Second)
	f.Start(0)

	at := maze.PacmanStart
	f.Update(30 * time.Second)
	if _, shown := f.Visible(); shown || spawned != 0 {
		t.Fatal("fruit appeared before the interval passed")
	}

	appear := 30*time.Second + time.Millisecond
	f.Update(appear)
	kind, shown := f.Visible()
	if !shown || kind != maze.Key || spawned != 1 {
		t.Fatalf("Visible() = %s, %v; spawned=%d", kind, shown, spawned)
	}
	if o := grid.Occupant(at.X, at.Y); o != maze.FruitTile(maze.Key) {
		t.Errorf("start tile holds %v, expected the key", o)
	}

	f.Update(appear + 10*time.Second)
	if _, shown := f.Visible(); !shown {
		t.Fatal("fruit removed after exactly the visible time")
	}

	gone := appear + 10*time.Second + time.Millisecond
	f.Update(gone)
	if _, shown := f.Visible(); shown || removed != 1 {
		t.Fatalf("fruit still shown after expiry (removed=%d)", removed)
	}
	if !grid.Occupant(at.X, at.Y).IsEmpty() {
		t.Error("expired fruit left on the grid")
	}

	// The next fruit waits a full interval from the removal.
	f.Update(gone + 30*time.Second)
	if spawned != 1 {
		t.Error("second fruit appeared too early")
	}
	f.Update(gone + 30*time.Second + time.Millisecond)
	if spawned != 2 {
		t.Errorf("spawned = %d, expected 2", spawned)
	}
}

func TestEatingFruitRestartsTimer(t *testing.T) {
	grid := maze.NewGrid()
	d := signal.New()
	level := NewLevel(grid, d)
	level.Start(1)

	f := NewFruitManager(grid, d, func() float64 { return 0.5 }, 30*time.Second, 10*time.Second)
	f.Start(0)
	f.Update(31 * time.Second)

	o := level.Eat(maze.PacmanStart, 35*time.Second)
	if o != maze.FruitTile(maze.Cherry) {
		t.Fatalf("ate %v, expected a cherry", o)
	}
	if _, shown := f.Visible(); shown {
		t.Error("fruit still visible after being eaten")
	}
	if level.Eaten() != 0 {
		t.Errorf("fruit counted towards the level: Eaten() = %d", level.Eaten())
	}

	f.Update(65 * time.Second)
	if _, shown := f.Visible(); shown {
		t.Error("fruit reappeared before a full interval after eating")
	}
	f.Update(65*time.Second + time.Millisecond)
	if _, shown := f.Visible(); !shown {
		t.Error("fruit did not reappear a full interval after eating")
	}
}
