package ghost

import (
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/motion"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/path"
)

// Ghost is one autonomous pursuer.
type Ghost struct {
	persona  Persona
	strategy Strategy
	speeds   Speeds
	motion   motion.Motion
	mode     Mode

	// leaving is set while the ghost still has to walk out of the house,
	// whatever its mode.
	leaving bool
	// spent marks a ghost eaten during the current fright.
	spent bool
}

// New creates a ghost idle on its spawn tile.
func New(p Persona, speeds Speeds) *Ghost {
	g := &Ghost{
		persona:  p,
		strategy: StrategyFor(p),
		speeds:   speeds,
	}
	g.Respawn()
	return g
}

// Respawn puts the ghost back on its spawn tile in Idle.
// Blinky starts outside the house facing right.
func (g *Ghost) Respawn() {
	dir := maze.DirNone
	if g.persona == Blinky {
		dir = maze.DirRight
	}
	g.mode = ModeIdle
	g.leaving, g.spent = false, false
	g.motion = motion.At(g.persona.Spawn(), dir, g.speeds.Normal)
}

func (g *Ghost) Persona() Persona { return g.persona }
func (g *Ghost) Mode() Mode { return g.mode }
func (g *Ghost) Tile() maze.Point { return g.motion.Tile() }
func (g *Ghost) Motion() motion.Motion { return g.motion }
func (g *Ghost) Direction() maze.Direction { return g.motion.Dir }
func (g *Ghost) Speed() int { return g.motion.Speed }

// ChangeMode applies a mode change. Idle ghosts ignore it unless force is
// set. A ghost on its way out of the house only takes a fright, and drops
// back to leaving when the fright ends. Reports whether the mode changed.
func (g *Ghost) ChangeMode(to Mode, force bool) bool {
	// Any global change ends the fright a spent ghost was eaten in.
	g.spent = false
	from := g.mode
	switch {
	case force:
		g.leaving = false
	case from == ModeIdle:
		return false
	case g.leaving && to == ModeFrightened:
	case g.leaving && from == ModeFrightened:
		to = ModeOutFromHome
	case g.leaving:
		return false
	}
	if from == to {
		return false
	}

	g.mode = to
	switch {
	case to == ModeFrightened:
		g.motion.Speed = g.speeds.Frightened
	case to == ModeOutFromHome:
		g.motion.Speed = g.speeds.OutFromHome
	case from == ModeFrightened:
		g.motion.Speed = g.speeds.Normal
		g.motion.SnapEven()
	case to == ModeScatter:
		g.turnAround()
	}
	return true
}

// Leaving reports whether the ghost still has to walk out of the house.
func (g *Ghost) Leaving() bool { return g.leaving }

// Release starts an idle ghost on its way out of the house.
func (g *Ghost) Release() bool {
	if g.mode != ModeIdle {
		return false
	}
	g.mode = ModeOutFromHome
	g.leaving = true
	g.motion.Speed = g.speeds.OutFromHome
	return true
}

// SendHome puts an eaten ghost back in the middle of the house; it leaves
// again on its own and sits out the rest of the fright.
func (g *Ghost) SendHome() {
	g.mode = ModeOutFromHome
	g.leaving, g.spent = true, true
	g.motion = motion.At(maze.HouseCenter, maze.DirNone, g.speeds.OutFromHome)
}

// leaveHouse switches a ghost standing on the exit tile to the global mode.
// A ghost eaten in the running fright takes the resume mode instead. resume
// also picks the exit heading.
func (g *Ghost) leaveHouse(global, resume Mode) {
	mode := global
	if mode == ModeFrightened && g.spent {
		mode = resume
	}
	g.mode = mode
	g.leaving, g.spent = false, false
	g.motion.Dir = g.persona.ExitDirection(resume)
	g.motion.Speed = g.speeds.forMode(mode)
}

func (g *Ghost) turnAround() {
	if g.motion.Dir == maze.DirNone {
		g.motion.Dir = maze.DirLeft
		return
	}
	g.motion.Reverse()
}

// steer picks a heading when the ghost is tile-aligned. It reports true when
// a ghost leaving the house has reached the exit tile.
func (g *Ghost) steer(in TargetInput) bool {
	if !g.motion.Aligned() {
		return false
	}
	tile := g.motion.Tile()

	if g.leaving {
		return g.steerOut(tile)
	}

	switch g.mode {
	case ModeScatter:
		g.head(in, tile, g.persona.Corner())
	case ModeChase:
		g.head(in, tile, g.strategy.Target(in))
	case ModeFrightened:
		g.wander(in, tile)
	}
	return false
}

// steerOut walks the ghost to the house center column and up to the exit.
// It reports true on the exit tile.
func (g *Ghost) steerOut(tile maze.Point) bool {
	switch {
	case tile == maze.HouseExit:
		return true
	case tile.X < maze.HouseCenter.X:
		g.motion.Dir = maze.DirRight
	case tile.X > maze.HouseCenter.X:
		g.motion.Dir = maze.DirLeft
	default:
		g.motion.Dir = maze.DirUp
	}
	return false
}

// head turns toward target. Without a path the ghost keeps going, unless
// that runs it into a wall.
func (g *Ghost) head(in TargetInput, tile, target maze.Point) {
	res := path.Find(in.Rand, tile, target, in.Grid, path.Behind(g.motion.Dir))
	if res.Found {
		g.motion.Dir = res.Direction(tile)
		return
	}
	if next := tile.Step(g.motion.Dir); g.motion.Dir != maze.DirNone && !in.Grid.IsBlocked(next.X, next.Y) {
		return
	}
	g.pickOpen(in.Grid, tile, tile.Neighbors())
}

// wander takes one random legal step; frightened ghosts do not path.
func (g *Ghost) wander(in TargetInput, tile maze.Point) {
	candidates := tile.Neighbors()
	in.Rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	g.pickOpen(in.Grid, tile, candidates)
}

// pickOpen takes the first open non-reversal candidate, else turns around.
func (g *Ghost) pickOpen(q maze.CollisionQuery, tile maze.Point, candidates [4]maze.Point) {
	behind := path.Behind(g.motion.Dir)
	for _, c := range candidates {
		if !q.IsBlocked(c.X, c.Y) && !behind(tile, c) {
			g.motion.Dir = tile.DirectionTo(c)
			return
		}
	}
	if back := tile.Step(g.motion.Dir.Opposite()); g.motion.Dir != maze.DirNone && !q.IsBlocked(back.X, back.Y) {
		g.motion.Dir = g.motion.Dir.Opposite()
	}
}
