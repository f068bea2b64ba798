package ghost

import (
	"testing"
	"time"
)

const ms = time.Millisecond

func TestSchedulerWaves(t *testing.T) {
	s := NewScheduler(DefaultDurations())
	s.Start(0, ModeChase)

	steps := []struct {
		at       time.Duration
		fired    bool
		wantMode Mode
		wantWave int
	}{
		{19999 * ms, false, ModeChase, 1},
		{20000 * ms, true, ModeScatter, 2},
		{26999 * ms, false, ModeScatter, 2},
		{27000 * ms, true, ModeChase, 2}, // 7000ms scatter in wave 2
		{47000 * ms, true, ModeScatter, 3},
		{51999 * ms, false, ModeScatter, 3},
		{52000 * ms, true, ModeChase, 3}, // 5000ms once the wave passes 2
		{72000 * ms, true, ModeScatter, 4},
		{77000 * ms, true, ModeChase, 4},
		{97000 * ms, false, ModeChase, 4},
		{500000 * ms, false, ModeChase, 4},
	}

	for _, st := range steps {
		_, fired := s.Update(st.at)
		if fired != st.fired {
			t.Errorf("at %v: fired = %v, expected %v", st.at, fired, st.fired)
		}
		if s.Mode() != st.wantMode {
			t.Errorf("at %v: mode = %v, expected %v", st.at, s.Mode(), st.wantMode)
		}
		if s.Wave() != st.wantWave {
			t.Errorf("at %v: wave = %d, expected %d", st.at, s.Wave(), st.wantWave)
		}
	}

	if _, ok := s.Remaining(600000 * ms); ok {
		t.Error("the final chase should be unbounded")
	}
}

func TestSchedulerStartsInScatter(t *testing.T) {
	s := NewScheduler(DefaultDurations())
	s.Start(1000*ms, ModeScatter)

	if tr, ok := s.Update(8000 * ms); !ok || tr.From != ModeScatter || tr.To != ModeChase {
		t.Errorf("Update() = %+v, %v; expected scatter -> chase", tr, ok)
	}
	if s.Wave() != 1 {
		t.Errorf("wave = %d, expected 1", s.Wave())
	}
}

func TestFrightenedResumesWithBudget(t *testing.T) {
	s := NewScheduler(DefaultDurations())
	s.Start(0, ModeChase)
	s.Update(5000 * ms)

	before, _ := s.Remaining(5000 * ms)
	if before != 15000*ms {
		t.Fatalf("remaining before fright = %v, expected 15s", before)
	}

	tr, ok := s.EnterFrightened(5000 * ms)
	if !ok || tr.From != ModeChase || tr.To != ModeFrightened {
		t.Fatalf("EnterFrightened() = %+v, %v", tr, ok)
	}
	if s.ResumeMode() != ModeChase {
		t.Errorf("ResumeMode() = %v, expected chase", s.ResumeMode())
	}
	if got, _ := s.Remaining(9000 * ms); got != before {
		t.Errorf("remaining during fright = %v, expected frozen %v", got, before)
	}

	if _, fired := s.Update(11999 * ms); fired {
		t.Error("fright ended early")
	}
	tr, fired := s.Update(12000 * ms)
	if !fired || tr.To != ModeChase {
		t.Fatalf("Update() = %+v, %v; expected return to chase", tr, fired)
	}
	if got, _ := s.Remaining(12000 * ms); got != before {
		t.Errorf("remaining after fright = %v, expected %v", got, before)
	}

	// The resumed chase ends 15s later, not 8s.
	if _, fired := s.Update(26999 * ms); fired {
		t.Error("chase ended before its remaining budget")
	}
	if tr, fired := s.Update(27000 * ms); !fired || tr.To != ModeScatter {
		t.Errorf("Update() = %+v, %v; expected scatter", tr, fired)
	}
}

func TestFrightenedExtendedByAnotherPellet(t *testing.T) {
	s := NewScheduler(DefaultDurations())
	s.Start(0, ModeScatter)
	s.EnterFrightened(1000 * ms)

	if _, ok := s.EnterFrightened(5000 * ms); ok {
		t.Error("a second pellet should not report a transition")
	}
	if s.ResumeMode() != ModeScatter {
		t.Errorf("ResumeMode() = %v, expected scatter", s.ResumeMode())
	}
	if got := s.FrightenedRemaining(5000 * ms); got != 7000*ms {
		t.Errorf("FrightenedRemaining() = %v, expected 7s", got)
	}

	if _, fired := s.Update(11999 * ms); fired {
		t.Error("extended fright ended early")
	}
	if tr, fired := s.Update(12000 * ms); !fired || tr.To != ModeScatter {
		t.Fatalf("Update() = %+v, %v; expected scatter", tr, fired)
	}
	if got, _ := s.Remaining(12000 * ms); got != 6000*ms {
		t.Errorf("remaining scatter = %v, expected 6s", got)
	}
}
