// Package signal is an injected, synchronous dispatcher for game signals.
//
// Emit runs every handler subscribed to the signal's concrete type, in
// subscription order, before it returns. Nothing is queued. Handlers must
// not emit a signal that leads back into themselves.
package signal

import (
	"reflect"
	"time"

	"github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"
)

// Signal is anything that can be emitted through a Dispatcher.
type Signal interface {
	SignalName() string
}

// Dispatcher delivers signals to subscribed handlers.
// The zero value is not usable; call New.
type Dispatcher struct {
	handlers map[reflect.Type][]func(Signal)
	all      []func(Signal)
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[reflect.Type][]func(Signal)),
	}
}

// Subscribe registers h for every signal of type T.
func Subscribe[T Signal](d *Dispatcher, h func(T)) {
	t := reflect.TypeFor[T]()
	d.handlers[t] = append(d.handlers[t], func(s Signal) {
		h(s.(T))
	})
}

// SubscribeAll registers h for every signal regardless of type.
// These handlers run after the typed ones.
func (d *Dispatcher) SubscribeAll(h func(Signal)) {
	d.all = append(d.all, h)
}

// Emit delivers s synchronously.
func (d *Dispatcher) Emit(s Signal) {
	if d == nil || s == nil {
		return
	}
	for _, h := range d.handlers[reflect.TypeOf(s)] {
		h(s)
	}
	for _, h := range d.all {
		h(s)
	}
}

// DotEaten is emitted when Pacman eats a dot or a power pellet.
// Eaten is the running count for the level and Total the level's size.
type DotEaten struct {
	Tile     maze.Point
	Occupant maze.Occupant
	Eaten    int
	Total    int
	At       time.Duration
}

func (DotEaten) SignalName() string { return "dot_eaten" }

// PelletEaten is emitted when a power pellet is eaten, after DotEaten.
type PelletEaten struct {
	Tile maze.Point
	At   time.Duration
}

func (PelletEaten) SignalName() string { return "pellet_eaten" }

// FruitSpawned is emitted when a bonus fruit appears.
type FruitSpawned struct {
	Tile  maze.Point
	Fruit maze.FruitKind
	At    time.Duration
}

func (FruitSpawned) SignalName() string { return "fruit_spawned" }

// FruitRemoved is emitted when an uneaten fruit expires.
type FruitRemoved struct {
	Tile maze.Point
	At   time.Duration
}

func (FruitRemoved) SignalName() string { return "fruit_removed" }

// FruitEaten is emitted when Pacman eats the bonus fruit.
type FruitEaten struct {
	Tile  maze.Point
	Fruit maze.FruitKind
	At    time.Duration
}

func (FruitEaten) SignalName() string { return "fruit_eaten" }

// LevelFinished is emitted once every dot and pellet of a level is gone.
type LevelFinished struct {
	Level int
	At    time.Duration
}

func (LevelFinished) SignalName() string { return "level_finished" }
