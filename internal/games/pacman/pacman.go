package pacman

import (
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/motion"
)

// eatProgress is how far into a tile Pacman must be before its edible is eaten.
const eatProgress = 75

// Pacman is the player-controlled agent.
type Pacman struct {
	motion motion.Motion
	next   maze.Direction // Buffered turn, applied at the next open alignment
	speed  int
}

// NewPacman creates Pacman on the start tile.
func NewPacman(speed int) *Pacman {
	p := &Pacman{speed: speed}
	p.Reset()
	return p
}

// Reset puts Pacman back on the start tile heading right.
func (p *Pacman) Reset() {
	p.motion = motion.At(maze.PacmanStart, maze.DirRight, p.speed)
	p.next = maze.DirRight
}

// Turn buffers a direction change. A reversal is honored at once, even
// between tiles.
func (p *Pacman) Turn(d maze.Direction) {
	if d == maze.DirNone {
		return
	}
	p.next = d
	if !p.motion.Aligned() && p.motion.Dir.IsOpposite(d) {
		p.motion.Dir = d
	}
}

// Move advances Pacman by one logic tick. When Pacman is three quarters
// into a tile, that tile is returned with ok set so its edible can be eaten.
func (p *Pacman) Move(q maze.CollisionQuery) (tile maze.Point, ok bool) {
	blockedNext, blockedCur := false, false
	if p.motion.Aligned() {
		n := p.motion.NextTile(p.next)
		c := p.motion.NextTile(p.motion.Dir)
		blockedNext = q.IsBlocked(n.X, n.Y)
		blockedCur = q.IsBlocked(c.X, c.Y)
		if !blockedNext {
			p.motion.Dir = p.next
		}
	}

	progress := p.motion.Progress()
	if !blockedNext || !blockedCur {
		p.motion.Advance()
	}
	if progress == eatProgress {
		return p.motion.Tile(), true
	}
	return maze.Point{}, false
}

// Tile returns the tile holding Pacman's center.
func (p *Pacman) Tile() maze.Point { return p.motion.Tile() }

// Direction returns the current heading.
func (p *Pacman) Direction() maze.Direction { return p.motion.Dir }

// Next returns the buffered direction.
func (p *Pacman) Next() maze.Direction { return p.next }

// Motion returns the pixel state.
func (p *Pacman) Motion() motion.Motion { return p.motion }
