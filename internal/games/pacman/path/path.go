// Package path resolves "I am on tile A and want to reach tile B" into a
// single next step plus a distance estimate.
//
// The search is a level-order frontier expansion keyed by first-step
// ancestor rather than a plain BFS with a visited set: the same tile may be
// reached through different first steps, and only the first step that
// reaches the goal wins. Ties between equally short first steps are broken
// by shuffling the root neighbors with the caller's random source.
package path

import "github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"

// Shuffler permutes n elements. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// ReversalFunc reports whether stepping from one tile to an adjacent one is
// a forbidden 180° turn for the mover.
type ReversalFunc func(from, to maze.Point) bool

// Behind forbids the tile directly behind a mover heading in dir.
// A mover with no direction may go anywhere.
func Behind(dir maze.Direction) ReversalFunc {
	return func(from, to maze.Point) bool {
		return dir != maze.DirNone && from.DirectionTo(to) == dir.Opposite()
	}
}

// Result is the outcome of a search.
type Result struct {
	Next     maze.Point // first step toward the goal
	Distance int        // reported path length
	Found    bool       // false when no step could be produced
}

// Direction returns the direction leading from start to Next.
// Returns maze.DirNone when nothing was found.
func (r Result) Direction(start maze.Point) maze.Direction {
	if !r.Found {
		return maze.DirNone
	}
	return start.DirectionTo(r.Next)
}

type node struct {
	at    maze.Point
	depth int
	first maze.Point
}

type nodeKey struct {
	at    maze.Point
	first maze.Point
}

// Find searches from start to goal.
//
// Reversal is only checked for the root neighbors; deeper tiles are
// traversed freely. When every open root neighbor is a reversal the mover is
// in a dead end and the reversal is admitted. The goal itself may be a
// blocked tile: it is matched as a neighbor of an expanded entry.
//
// A goal equal to start yields no step.
func Find(rng Shuffler, start, goal maze.Point, q maze.CollisionQuery, reversal ReversalFunc) Result {
	if start == goal {
		return Result{}
	}
	if reversal == nil {
		reversal = func(_, _ maze.Point) bool { return false }
	}

	open := func(p maze.Point) bool {
		return !q.IsBlocked(p.X, p.Y)
	}

	candidates := start.Neighbors()
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	frontier := make([]node, 1, 64)
	frontier[0] = node{at: start}
	seen := make(map[nodeKey]struct{})

	var backwards []maze.Point
	for _, c := range candidates {
		if !open(c) {
			continue
		}
		if reversal(start, c) {
			backwards = append(backwards, c)
			continue
		}
		if c == goal {
			return Result{Next: c, Distance: 1, Found: true}
		}
		frontier = append(frontier, node{at: c, depth: 1, first: c})
		seen[nodeKey{at: c, first: c}] = struct{}{}
	}

	// Dead end: turning around is the only way out.
	if len(frontier) == 1 {
		for _, c := range backwards {
			if c == goal {
				return Result{Next: c, Distance: 1, Found: true}
			}
			frontier = append(frontier, node{at: c, depth: 1, first: c})
			seen[nodeKey{at: c, first: c}] = struct{}{}
		}
	}

	for i := 1; i < len(frontier); i++ {
		cur := frontier[i]
		for _, n := range cur.at.Neighbors() {
			if n != start && open(n) {
				k := nodeKey{at: n, first: cur.first}
				if _, dup := seen[k]; !dup {
					seen[k] = struct{}{}
					frontier = append(frontier, node{at: n, depth: cur.depth + 1, first: cur.first})
				}
			}
			// Entries 1 and 2 sit right next to the start; matching there
			// would report a mover standing on its own goal.
			if n == goal && i > 2 {
				return Result{Next: cur.first, Distance: cur.depth, Found: true}
			}
		}
	}

	return Result{}
}
