package ghost

import "time"

// Durations configures the global mode schedule.
type Durations struct {
	Chase       time.Duration
	Scatter     time.Duration
	LateScatter time.Duration // scatter length once the wave passes LateAfterWave
	Frightened  time.Duration

	MaxWaves      int
	LateAfterWave int
}

// DefaultDurations returns the classic schedule.
func DefaultDurations() Durations {
	return Durations{
		Chase:         20 * time.Second,
		Scatter:       7 * time.Second,
		LateScatter:   5 * time.Second,
		Frightened:    7 * time.Second,
		MaxWaves:      4,
		LateAfterWave: 2,
	}
}

// Transition is a change of the global mode.
type Transition struct {
	From Mode
	To   Mode
}

// Scheduler is the global mode state machine shared by all ghosts.
// Times are offsets on the caller's clock.
type Scheduler struct {
	d Durations

	mode       Mode
	wave       int
	phaseStart time.Duration
	scatter    time.Duration

	// Only meaningful while frightened.
	resume      Mode
	frightSince time.Duration
	frightUntil time.Duration
}

// NewScheduler creates a scheduler. Call Start before Update.
func NewScheduler(d Durations) *Scheduler {
	return &Scheduler{d: d, mode: ModeIdle}
}

// Start resets the schedule to wave 1 in the given mode.
func (s *Scheduler) Start(now time.Duration, initial Mode) {
	s.mode = initial
	s.wave = 1
	s.phaseStart = now
	s.scatter = s.d.Scatter
	s.resume = initial
	s.frightSince = 0
	s.frightUntil = 0
}

// Mode returns the current global mode.
func (s *Scheduler) Mode() Mode { return s.mode }

// Wave returns the wave counter, starting at 1.
func (s *Scheduler) Wave() int { return s.wave }

// ResumeMode is the mode the schedule is in, or returns to after a fright.
func (s *Scheduler) ResumeMode() Mode {
	if s.mode == ModeFrightened {
		return s.resume
	}
	return s.mode
}

// Update advances the schedule to now and reports a transition if one fired.
func (s *Scheduler) Update(now time.Duration) (Transition, bool) {
	switch s.mode {
	case ModeChase:
		if s.wave < s.d.MaxWaves && now-s.phaseStart >= s.d.Chase {
			s.wave++
			if s.wave > s.d.LateAfterWave {
				s.scatter = s.d.LateScatter
			}
			s.phaseStart = now
			return s.set(ModeScatter), true
		}
	case ModeScatter:
		if now-s.phaseStart >= s.scatter {
			s.phaseStart = now
			return s.set(ModeChase), true
		}
	case ModeFrightened:
		if now >= s.frightUntil {
			// The fright does not consume scatter or chase time.
			s.phaseStart += now - s.frightSince
			return s.set(s.resume), true
		}
	}
	return Transition{}, false
}

// EnterFrightened starts a fright. A pellet eaten while already frightened
// extends the fright and keeps the original resume mode; no transition is
// reported then.
func (s *Scheduler) EnterFrightened(now time.Duration) (Transition, bool) {
	if s.mode == ModeFrightened {
		s.phaseStart += now - s.frightSince
		s.frightSince = now
		s.frightUntil = now + s.d.Frightened
		return Transition{}, false
	}
	s.resume = s.mode
	s.frightSince = now
	s.frightUntil = now + s.d.Frightened
	return s.set(ModeFrightened), true
}

// Remaining returns what is left of the current scatter or chase phase.
// While frightened it is the frozen budget of the phase to resume.
// ok is false for the final, unbounded chase.
func (s *Scheduler) Remaining(now time.Duration) (left time.Duration, ok bool) {
	mode, elapsed := s.mode, now-s.phaseStart
	if mode == ModeFrightened {
		mode, elapsed = s.resume, s.frightSince-s.phaseStart
	}
	var length time.Duration
	switch mode {
	case ModeChase:
		if s.wave >= s.d.MaxWaves {
			return 0, false
		}
		length = s.d.Chase
	case ModeScatter:
		length = s.scatter
	default:
		return 0, false
	}
	return max(length-elapsed, 0), true
}

// FrightenedRemaining returns how long the current fright still lasts.
func (s *Scheduler) FrightenedRemaining(now time.Duration) time.Duration {
	if s.mode != ModeFrightened {
		return 0
	}
	return max(s.frightUntil-now, 0)
}

func (s *Scheduler) set(m Mode) Transition {
	t := Transition{From: s.mode, To: m}
	s.mode = m
	return t
}
