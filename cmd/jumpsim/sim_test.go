package main

import (
	"math"
	"testing"

	"github.com/automoto/platformer/shared/collision"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/shared/movement"
)

var room = []string{
	"##########",
	"#........#",
	"#........#",
	"#........#",
	"#........#",
	"#........#",
	"#........#",
	"#........#",
	"#........#",
	"#.P......#",
	"##########",
}

func newTestSim(t *testing.T, rows []string) *Simulator {
	t.Helper()
	data, err := leveldata.ParseGrid(rows, 16)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	sim, err := NewSimulator(data, movement.DefaultParams(), collision.DefaultConfig(), 12, 24)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return sim
}

func runScript(sim *Simulator, s Script, ticks int) Report {
	for i := 0; i < ticks; i++ {
		sim.Step(1.0/60, s.Events(i))
	}
	return sim.Report()
}

func TestFullJumpReachesMaxHeight(t *testing.T) {
	sim := newTestSim(t, room)
	r := runScript(sim, Script{JumpAt: 5, JumpHold: 60, JumpCount: 1}, 90)

	if r.Takeoffs != 1 || r.Landings != 1 {
		t.Errorf("takeoffs/landings = %d/%d, want 1/1", r.Takeoffs, r.Landings)
	}
	if r.MaxApex < 3.5 || r.MaxApex > 4.5 {
		t.Errorf("apex = %.2f units, want about 4", r.MaxApex)
	}
	if r.Final.Y != 160 || r.Final.Status.State != movement.Grounded {
		t.Errorf("final = (%v, %v) %s, want grounded on y=160", r.Final.X, r.Final.Y, r.Final.Status.State)
	}
}

func TestShortHopIsLower(t *testing.T) {
	full := runScript(newTestSim(t, room), Script{JumpAt: 5, JumpHold: 60, JumpCount: 1}, 90)
	short := runScript(newTestSim(t, room), Script{JumpAt: 5, JumpHold: 1, JumpCount: 1}, 90)

	if short.MaxApex >= full.MaxApex {
		t.Errorf("short hop apex %.2f not below full jump %.2f", short.MaxApex, full.MaxApex)
	}
	if short.MaxApex < 0.8 {
		t.Errorf("short hop apex %.2f below min jump height", short.MaxApex)
	}
}

func TestAirJumpUsedOnce(t *testing.T) {
	sim := newTestSim(t, room)
	r := runScript(sim, Script{JumpAt: 5, JumpHold: 10, JumpCount: 3, JumpGap: 12}, 30)

	if !r.AirJumped {
		t.Error("expected an air jump")
	}
	if got := sim.Core().RemainingAirJumps(); got != 0 {
		t.Errorf("remaining air jumps = %d, want 0", got)
	}
}

func TestRunStopsAtWall(t *testing.T) {
	sim := newTestSim(t, room)
	r := runScript(sim, Script{RunAxis: 1, RunFor: 120, JumpAt: -1}, 120)

	// Right wall inner face is at x=144; the body is 12 wide.
	if math.Abs(r.Final.X-138) > 1e-6 {
		t.Errorf("final x = %v, want 138", r.Final.X)
	}
	if !r.Final.Status.Contacts.Right {
		t.Error("expected right contact against the wall")
	}
}

func TestDeadZoneRespawns(t *testing.T) {
	sim := newTestSim(t, []string{
		"#####",
		"#...#",
		"#.P.#",
		"#...#",
		"#...#",
		"#xxx#",
		"#####",
	})
	r := runScript(sim, Script{JumpAt: -1}, 60)

	if r.Respawns == 0 {
		t.Fatal("expected a respawn after falling into the dead zone")
	}
	if r.Landings != 0 {
		t.Errorf("landings = %d, want 0", r.Landings)
	}
}

func TestScriptEvents(t *testing.T) {
	s := Script{RunAxis: -1, RunFrom: 2, RunFor: 3, JumpAt: 1, JumpHold: 2, Sprint: true}

	kinds := func(tick int) []movement.EventKind {
		var out []movement.EventKind
		for _, e := range s.Events(tick) {
			out = append(out, e.Kind)
		}
		return out
	}

	if got := kinds(1); len(got) != 2 || got[1] != movement.EventJumpPressed {
		t.Errorf("tick 1 events = %v, want direction then jump press", got)
	}
	if got := kinds(2); len(got) != 2 || got[1] != movement.EventSprintPressed {
		t.Errorf("tick 2 events = %v, want direction then sprint press", got)
	}
	if got := kinds(3); len(got) != 2 || got[1] != movement.EventJumpReleased {
		t.Errorf("tick 3 events = %v, want direction then jump release", got)
	}
	if e := s.Events(4)[0]; e.Axis.X != -1 {
		t.Errorf("tick 4 axis = %v, want -1", e.Axis.X)
	}
	if e := s.Events(5)[0]; e.Axis.X != 0 {
		t.Errorf("tick 5 axis = %v, want 0", e.Axis.X)
	}
}

func TestRepeatedJumpsReleaseBeforeNextPress(t *testing.T) {
	s := Script{JumpAt: 0, JumpHold: 10, JumpCount: 3, JumpGap: 4}

	tests := []struct {
		tick int
		want []movement.EventKind
	}{
		{0, []movement.EventKind{movement.EventDirection, movement.EventJumpPressed}},
		{4, []movement.EventKind{movement.EventDirection, movement.EventJumpReleased, movement.EventJumpPressed}},
		{8, []movement.EventKind{movement.EventDirection, movement.EventJumpReleased, movement.EventJumpPressed}},
		{10, []movement.EventKind{movement.EventDirection}},
		{12, []movement.EventKind{movement.EventDirection, movement.EventJumpReleased}},
	}
	for _, tt := range tests {
		events := s.Events(tt.tick)
		if len(events) != len(tt.want) {
			t.Errorf("tick %d: got %d events, want %v", tt.tick, len(events), tt.want)
			continue
		}
		for i, e := range events {
			if e.Kind != tt.want[i] {
				t.Errorf("tick %d event %d = %v, want %v", tt.tick, i, e.Kind, tt.want[i])
			}
		}
	}
}

func TestContactString(t *testing.T) {
	got := contactString(movement.Contacts{Below: true, Right: true, SlopeAngle: 45})
	if want := "B..R slope 45"; got != want {
		t.Errorf("contactString = %q, want %q", got, want)
	}
}
