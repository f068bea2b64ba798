// Package ghost is the ghost decision engine: per-persona targeting, the
// global mode schedule and the coordinator that moves all four ghosts.
package ghost

import "github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"

// Persona identifies one of the four ghosts.
type Persona int

const (
	Blinky Persona = iota
	Pinky
	Inky
	Clyde
)

// PersonaCount is the number of ghosts.
const PersonaCount = 4

// Personas lists every persona in tick order.
var Personas = [PersonaCount]Persona{Blinky, Pinky, Inky, Clyde}

var personaNames = [PersonaCount]string{"blinky", "pinky", "inky", "clyde"}

var spawns = [PersonaCount]maze.Point{
	Blinky: maze.HouseExit,
	Pinky:  maze.HouseCenter,
	Inky:   {X: 6, Y: 9},
	Clyde:  {X: 8, Y: 9},
}

var corners = [PersonaCount]maze.Point{
	Blinky: {X: maze.Width - 1, Y: 0},
	Pinky:  {X: 0, Y: 0},
	Inky:   {X: maze.Width - 1, Y: maze.Height - 1},
	Clyde:  {X: 0, Y: maze.Height - 1},
}

func (p Persona) String() string {
	if p < 0 || int(p) >= PersonaCount {
		return "unknown"
	}
	return personaNames[p]
}

// Spawn returns the tile the ghost starts a life on.
func (p Persona) Spawn() maze.Point {
	return spawns[p]
}

// Corner returns the ghost's scatter corner.
func (p Persona) Corner() maze.Point {
	return corners[p]
}

// ExitDirection is the heading a ghost takes when it steps out of the house
// into the given mode. Scatter turns toward the ghost's own corner.
func (p Persona) ExitDirection(m Mode) maze.Direction {
	if m == ModeScatter && corners[p].X > maze.HouseExit.X {
		return maze.DirRight
	}
	return maze.DirLeft
}

// Mode is a ghost behaviour mode.
type Mode int

const (
	ModeIdle Mode = iota
	ModeOutFromHome
	ModeScatter
	ModeChase
	ModeFrightened
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeOutFromHome:
		return "out_from_home"
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	default:
		return "unknown"
	}
}

// Speeds are ghost speeds in pixels per logic tick.
type Speeds struct {
	Normal      int
	Frightened  int
	OutFromHome int
}

// DefaultSpeeds returns the classic speeds.
func DefaultSpeeds() Speeds {
	return Speeds{Normal: 2, Frightened: 1, OutFromHome: 1}
}

func (s Speeds) forMode(m Mode) int {
	switch m {
	case ModeFrightened:
		return s.Frightened
	case ModeOutFromHome:
		return s.OutFromHome
	default:
		return s.Normal
	}
}
