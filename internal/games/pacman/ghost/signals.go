package ghost

import "github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"

// ModeChanged is emitted whenever a ghost's mode changes.
type ModeChanged struct {
	Persona Persona
	From    Mode
	To      Mode
}

func (ModeChanged) SignalName() string { return "ghost_mode_changed" }

// Moved is emitted for every ghost that moved during a tick.
type Moved struct {
	Persona Persona
	X, Y    int
	Dir     maze.Direction
}

func (Moved) SignalName() string { return "ghost_moved" }

// HouseExitEligible is emitted once per level when a persona may leave the
// house.
type HouseExitEligible struct {
	Persona Persona
}

func (HouseExitEligible) SignalName() string { return "house_exit_eligible" }

// Exited is emitted when a ghost steps out of the house onto the exit tile.
type Exited struct {
	Persona Persona
	Mode    Mode
}

func (Exited) SignalName() string { return "ghost_exited" }
