package motion

import (
	"testing"

	"github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"
)

func TestAtIsAligned(t *testing.T) {
	m := At(maze.Point{X: 7, Y: 10}, maze.DirRight, 2)

	if m.X != 280 || m.Y != 400 {
		t.Errorf("pixel position = (%d, %d), expected (280, 400)", m.X, m.Y)
	}
	if !m.Aligned() {
		t.Error("agent placed on a tile should be aligned")
	}
	if got := m.Tile(); got != (maze.Point{X: 7, Y: 10}) {
		t.Errorf("Tile() = %v, expected (7, 10)", got)
	}
}

func TestAdvanceAndAlignment(t *testing.T) {
	m := At(maze.Point{X: 1, Y: 1}, maze.DirRight, 2)

	steps := 0
	for {
		m.Advance()
		steps++
		if m.Aligned() {
			break
		}
		if steps > 100 {
			t.Fatal("never re-aligned")
		}
	}

	if steps != TileSize/2 {
		t.Errorf("steps to next tile = %d, expected %d", steps, TileSize/2)
	}
	if got := m.Tile(); got != (maze.Point{X: 2, Y: 1}) {
		t.Errorf("Tile() = %v, expected (2, 1)", got)
	}
}

func TestTileUsesCenter(t *testing.T) {
	m := At(maze.Point{X: 3, Y: 3}, maze.DirRight, 2)

	m.X += 19
	if got := m.Tile(); got.X != 3 {
		t.Errorf("19px into the move: tile x = %d, expected 3", got.X)
	}
	m.X++
	if got := m.Tile(); got.X != 4 {
		t.Errorf("20px into the move: tile x = %d, expected 4", got.X)
	}
	if got := m.PreviousTile(); got.X != 3 {
		t.Errorf("PreviousTile x = %d, expected 3", got.X)
	}
	if got := m.NextTile(maze.DirDown); got != (maze.Point{X: 4, Y: 4}) {
		t.Errorf("NextTile(Down) = %v, expected (4, 4)", got)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		dir  maze.Direction
		x, y int
		want int
	}{
		{"right at boundary", maze.DirRight, 40, 0, 0},
		{"right three quarters", maze.DirRight, 70, 0, 75},
		{"left three quarters", maze.DirLeft, 50, 0, 75},
		{"down three quarters", maze.DirDown, 0, 110, 75},
		{"up three quarters", maze.DirUp, 0, 90, 75},
		{"up at boundary", maze.DirUp, 0, 80, 100},
		{"none", maze.DirNone, 13, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Motion{X: tt.x, Y: tt.y, Dir: tt.dir}
			if got := m.Progress(); got != tt.want {
				t.Errorf("Progress() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestSnapEven(t *testing.T) {
	tests := []struct {
		dir   maze.Direction
		x, y  int
		wantX int
		wantY int
	}{
		{maze.DirLeft, 41, 80, 42, 80},
		{maze.DirRight, 41, 80, 40, 80},
		{maze.DirUp, 80, 41, 80, 42},
		{maze.DirDown, 80, 41, 80, 40},
		{maze.DirRight, 42, 80, 42, 80},
	}

	for _, tt := range tests {
		m := Motion{X: tt.x, Y: tt.y, Dir: tt.dir}
		m.SnapEven()
		if m.X != tt.wantX || m.Y != tt.wantY {
			t.Errorf("%v from (%d, %d): got (%d, %d), expected (%d, %d)",
				tt.dir, tt.x, tt.y, m.X, m.Y, tt.wantX, tt.wantY)
		}
	}
}

func TestReverse(t *testing.T) {
	m := Motion{Dir: maze.DirUp}
	m.Reverse()
	if m.Dir != maze.DirDown {
		t.Errorf("Reverse() = %v, expected Down", m.Dir)
	}

	none := Motion{}
	none.Reverse()
	if none.Dir != maze.DirNone {
		t.Errorf("Reverse() of None = %v, expected None", none.Dir)
	}
}
