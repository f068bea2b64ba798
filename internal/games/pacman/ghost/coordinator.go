package ghost

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/path"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/signal"
)

// Config configures a Coordinator.
type Config struct {
	Durations Durations
	Speeds    Speeds

	// InkyDots is the eaten-dot count that lets Inky out.
	InkyDots int
	// ClydeDivisor lets Clyde out once total/ClydeDivisor dots are eaten.
	ClydeDivisor int
}

// DefaultConfig returns the classic settings.
func DefaultConfig() Config {
	return Config{
		Durations:    DefaultDurations(),
		Speeds:       DefaultSpeeds(),
		InkyDots:     30,
		ClydeDivisor: 3,
	}
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the debug logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// Coordinator owns the four ghosts, applies the global schedule to them,
// releases them from the house and moves them once per tick.
type Coordinator struct {
	cfg      Config
	grid     maze.CollisionQuery
	rng      path.Shuffler
	signals  *signal.Dispatcher
	logger   *log.Logger
	sched    *Scheduler
	ghosts   [PersonaCount]*Ghost
	released [PersonaCount]bool
}

// NewCoordinator creates a coordinator and subscribes it to dot and pellet
// signals on d.
func NewCoordinator(grid maze.CollisionQuery, rng path.Shuffler, d *signal.Dispatcher, cfg Config, opts ...Option) *Coordinator {
	c := &Coordinator{
		cfg:     cfg,
		grid:    grid,
		rng:     rng,
		signals: d,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Configure(cfg)

	if d != nil {
		signal.Subscribe(d, c.onDotEaten)
		signal.Subscribe(d, c.onPelletEaten)
	}
	return c
}

// Configure replaces durations, speeds and thresholds, for instance when a
// new level scales the schedule. Ghosts are rebuilt idle on their spawns;
// call Start afterwards.
func (c *Coordinator) Configure(cfg Config) {
	c.cfg = cfg
	c.sched = NewScheduler(cfg.Durations)
	for _, p := range Personas {
		c.ghosts[p] = New(p, cfg.Speeds)
	}
}

// Start begins a level: every ghost respawns, the schedule restarts in
// Scatter, Blinky is forced out and Pinky released.
func (c *Coordinator) Start(now time.Duration) {
	c.released = [PersonaCount]bool{}
	c.Restart(now)
	c.makeEligible(Pinky)
}

// Restart puts every ghost back on its spawn after Pacman lost a life.
// Ghosts already released this level leave the house again.
func (c *Coordinator) Restart(now time.Duration) {
	c.sched.Start(now, ModeScatter)
	for _, g := range c.ghosts {
		g.Respawn()
	}
	c.changeMode(c.ghosts[Blinky], c.sched.Mode(), true)
	for _, p := range Personas {
		if c.released[p] {
			c.release(p)
		}
	}
}

// Tick advances the schedule and moves every active ghost by one step.
// All ghosts see the same pacman view and Blinky's tile as of tick start.
func (c *Coordinator) Tick(now time.Duration, pac PacmanView) {
	if tr, ok := c.sched.Update(now); ok {
		c.apply(tr)
	}

	blinky := c.ghosts[Blinky].Tile()
	for _, g := range c.ghosts {
		if g.mode == ModeIdle {
			continue
		}
		in := TargetInput{
			Pacman: pac,
			Self:   g.Tile(),
			Dir:    g.motion.Dir,
			Blinky: blinky,
			Corner: g.persona.Corner(),
			Grid:   c.grid,
			Rand:   c.rng,
		}
		if g.steer(in) {
			c.exitHouse(g)
		}
		g.motion.Advance()
		c.signals.Emit(Moved{Persona: g.persona, X: g.motion.X, Y: g.motion.Y, Dir: g.motion.Dir})
	}
}

// EnterFrightened frightens every roaming ghost.
func (c *Coordinator) EnterFrightened(now time.Duration) {
	if tr, ok := c.sched.EnterFrightened(now); ok {
		c.apply(tr)
	} else {
		c.logger.Debug("fright extended", "until", now+c.cfg.Durations.Frightened)
	}
}

// SendHome returns an eaten ghost to the house. It comes out in the mode
// the schedule resumes to, so one fright cannot eat it twice.
func (c *Coordinator) SendHome(p Persona) {
	g := c.ghosts[p]
	from := g.mode
	g.SendHome()
	c.logger.Debug("ghost sent home", "ghost", p)
	c.signals.Emit(ModeChanged{Persona: p, From: from, To: g.mode})
}

// GhostsAt returns the personas whose tile is t, ignoring idle ghosts.
func (c *Coordinator) GhostsAt(t maze.Point) []Persona {
	var out []Persona
	for _, g := range c.ghosts {
		if g.mode != ModeIdle && g.Tile() == t {
			out = append(out, g.persona)
		}
	}
	return out
}

// Ghost returns the ghost of a persona.
func (c *Coordinator) Ghost(p Persona) *Ghost { return c.ghosts[p] }

// Ghosts returns all four ghosts in persona order.
func (c *Coordinator) Ghosts() [PersonaCount]*Ghost { return c.ghosts }

// Scheduler exposes the global schedule for display.
func (c *Coordinator) Scheduler() *Scheduler { return c.sched }

// Released reports whether a persona's house exit has fired this level.
func (c *Coordinator) Released(p Persona) bool { return c.released[p] }

func (c *Coordinator) onDotEaten(s signal.DotEaten) {
	if !c.released[Inky] && s.Eaten >= c.cfg.InkyDots {
		c.makeEligible(Inky)
	}
	if !c.released[Clyde] && s.Eaten >= clydeDots(s.Total, c.cfg.ClydeDivisor) {
		c.makeEligible(Clyde)
	}
}

func (c *Coordinator) onPelletEaten(s signal.PelletEaten) {
	c.EnterFrightened(s.At)
}

func clydeDots(total, divisor int) int {
	if divisor <= 0 {
		divisor = 1
	}
	return int(math.Round(float64(total) / float64(divisor)))
}

func (c *Coordinator) makeEligible(p Persona) {
	c.released[p] = true
	c.release(p)
	c.signals.Emit(HouseExitEligible{Persona: p})
}

func (c *Coordinator) release(p Persona) {
	g := c.ghosts[p]
	if g.Release() {
		c.logger.Debug("ghost released", "ghost", p)
		c.signals.Emit(ModeChanged{Persona: p, From: ModeIdle, To: ModeOutFromHome})
	}
}

func (c *Coordinator) exitHouse(g *Ghost) {
	from := g.mode
	g.leaveHouse(c.sched.Mode(), c.sched.ResumeMode())
	c.logger.Debug("ghost left house", "ghost", g.persona, "mode", g.mode, "dir", g.motion.Dir)
	c.signals.Emit(Exited{Persona: g.persona, Mode: g.mode})
	if g.mode != from {
		c.signals.Emit(ModeChanged{Persona: g.persona, From: from, To: g.mode})
	}
}

func (c *Coordinator) apply(tr Transition) {
	c.logger.Debug("mode change", "from", tr.From, "to", tr.To, "wave", c.sched.Wave())
	for _, g := range c.ghosts {
		c.changeMode(g, tr.To, false)
	}
}

func (c *Coordinator) changeMode(g *Ghost, to Mode, force bool) {
	from := g.mode
	if g.ChangeMode(to, force) {
		c.signals.Emit(ModeChanged{Persona: g.persona, From: from, To: g.mode})
	}
}
