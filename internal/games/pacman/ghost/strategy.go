package ghost

import (
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/path"
)

// ClydeShyDistance is the path length at or below which Clyde gives up the
// chase and heads for his corner.
const ClydeShyDistance = 8

// PacmanView is the pursued agent as seen by the ghosts during one tick.
type PacmanView struct {
	Tile maze.Point
	Dir  maze.Direction
}

// TargetInput carries everything a strategy may look at.
type TargetInput struct {
	Pacman PacmanView
	Self   maze.Point     // the ghost's tile
	Dir    maze.Direction // the ghost's heading
	Blinky maze.Point     // reference ghost for Inky
	Corner maze.Point
	Grid   maze.CollisionQuery
	Rand   path.Shuffler
}

// Strategy computes a chase target tile.
type Strategy interface {
	Target(in TargetInput) maze.Point
}

// StrategyFor returns the chase strategy of a persona.
func StrategyFor(p Persona) Strategy {
	switch p {
	case Pinky:
		return ambusher{}
	case Inky:
		return flanker{}
	case Clyde:
		return shy{}
	default:
		return chaser{}
	}
}

// chaser goes straight for Pacman.
type chaser struct{}

func (chaser) Target(in TargetInput) maze.Point {
	return in.Pacman.Tile.Clamp()
}

// ambusher aims four tiles ahead of Pacman.
type ambusher struct{}

func (ambusher) Target(in TargetInput) maze.Point {
	return in.Pacman.Tile.Offset(in.Pacman.Dir, 4).Clamp()
}

// flanker doubles the vector from Blinky to two tiles ahead of Pacman.
type flanker struct{}

func (flanker) Target(in TargetInput) maze.Point {
	p := in.Pacman.Tile.Offset(in.Pacman.Dir, 2).Clamp()
	q := in.Blinky
	return maze.Point{X: 2*p.X - q.X, Y: 2*p.Y - q.Y}.Clamp()
}

// shy chases from afar and retreats to its corner up close.
type shy struct{}

func (shy) Target(in TargetInput) maze.Point {
	res := path.Find(in.Rand, in.Self, in.Pacman.Tile, in.Grid, path.Behind(in.Dir))
	if res.Found && res.Distance > ClydeShyDistance {
		return in.Pacman.Tile.Clamp()
	}
	return in.Corner
}
