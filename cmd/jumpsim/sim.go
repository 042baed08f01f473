package main

import (
	"fmt"
	"strings"

	"github.com/automoto/platformer/shared/collision"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/shared/movement"
	"github.com/automoto/platformer/tags"
	dmath "github.com/yohamta/donburi/features/math"
)

// Script is a scripted input sequence, expressed in ticks. When jumps
// repeat, JumpHold is capped at JumpGap.
type Script struct {
	RunAxis   float64
	RunFrom   int
	RunFor    int
	JumpAt    int // negative disables jumping
	JumpHold  int
	JumpCount int
	JumpGap   int
	Sprint    bool
}

// Events returns the input edges for tick.
func (s Script) Events(tick int) []movement.Event {
	var events []movement.Event

	axis := 0.0
	if tick >= s.RunFrom && tick < s.RunFrom+s.RunFor {
		axis = s.RunAxis
	}
	events = append(events, movement.Event{Kind: movement.EventDirection, Axis: dmath.Vec2{X: axis}})

	if s.Sprint && tick == s.RunFrom {
		events = append(events, movement.Event{Kind: movement.EventSprintPressed})
	}
	if s.Sprint && tick == s.RunFrom+s.RunFor {
		events = append(events, movement.Event{Kind: movement.EventSprintReleased})
	}

	if s.JumpAt < 0 {
		return events
	}
	var released, pressed bool
	for i := 0; i < max(s.JumpCount, 1); i++ {
		start := s.JumpAt + i*s.JumpGap
		released = released || tick == start+s.hold()
		pressed = pressed || tick == start
	}
	// A release sharing a tick with the next press goes first.
	if released {
		events = append(events, movement.Event{Kind: movement.EventJumpReleased})
	}
	if pressed {
		events = append(events, movement.Event{Kind: movement.EventJumpPressed})
	}
	return events
}

// hold returns the ticks each jump is held, at least one and, when jumps
// repeat, ending no later than the next press.
func (s Script) hold() int {
	h := max(s.JumpHold, 1)
	if s.JumpCount > 1 && s.JumpGap > 0 {
		h = min(h, s.JumpGap)
	}
	return h
}

// Sample is the body state after one tick. Position is the feet center in
// pixels, y down.
type Sample struct {
	Tick     int
	X, Y     float64
	Move     dmath.Vec2
	Status   movement.Status
	Respawns int
}

// Report summarizes a run. Heights are in units.
type Report struct {
	Ticks     int
	Takeoffs  int
	Landings  int
	Respawns  int
	MaxApex   float64
	MaxAir    int
	Final     Sample
	AirJumped bool
}

// Simulator steps one body through a level without a renderer.
type Simulator struct {
	probe  *collision.Probe
	core   *movement.Core
	queue  movement.EventQueue
	spawn  leveldata.SpawnPoint
	ppu    float64
	tick   int
	report Report

	airborne bool
	airTicks int
	takeoff  float64
	apex     float64
}

// NewSimulator builds a collision space for data and places a w x h body
// at its spawn point.
func NewSimulator(data *leveldata.CollisionData, params movement.Params, cc collision.Config, w, h float64) (*Simulator, error) {
	space := collision.BuildSpace(data, int(data.TileSize))
	spawn := data.Spawn()
	obj := collision.SpawnBody(space, spawn, w, h, tags.ResolvPlayer)

	probe, err := collision.NewProbe(obj, cc)
	if err != nil {
		return nil, fmt.Errorf("create probe: %w", err)
	}
	core, err := movement.NewCore(probe, params)
	if err != nil {
		return nil, fmt.Errorf("create core: %w", err)
	}

	return &Simulator{
		probe:   probe,
		core:    core,
		spawn:   spawn,
		ppu:     cc.PixelsPerUnit,
		takeoff: spawn.Y,
		apex:    spawn.Y,
	}, nil
}

func (s *Simulator) Core() *movement.Core { return s.core }

// Step queues events, runs one tick of dt seconds and returns the result.
func (s *Simulator) Step(dt float64, events []movement.Event) Sample {
	for _, e := range events {
		s.queue.Push(e)
	}
	jumpsLeft := s.core.RemainingAirJumps()
	s.queue.Drain(s.core)
	if s.airborne && s.core.RemainingAirJumps() < jumpsLeft {
		s.report.AirJumped = true
	}

	move := s.core.Tick(dt)
	s.tick++

	obj := s.probe.Object()
	feet := obj.Y + obj.H
	if s.core.Contacts().Below {
		if s.airborne {
			s.report.Landings++
			s.closeJump()
		}
		s.airborne = false
		s.airTicks = 0
		s.takeoff = feet
	} else {
		if !s.airborne {
			s.airborne = true
			s.report.Takeoffs++
			s.apex = s.takeoff
		}
		s.airTicks++
		s.report.MaxAir = max(s.report.MaxAir, s.airTicks)
		s.apex = min(s.apex, feet)
	}

	if s.probe.Touching(collision.TagDeadZone) {
		s.respawn()
	}

	sample := Sample{
		Tick:     s.tick,
		X:        obj.X + obj.W/2,
		Y:        obj.Y + obj.H,
		Move:     move,
		Status:   s.core.Status(),
		Respawns: s.report.Respawns,
	}
	s.report.Ticks = s.tick
	s.report.Final = sample
	return sample
}

// Report returns the summary so far, including any jump still in the air.
func (s *Simulator) Report() Report {
	r := s.report
	if s.airborne {
		r.MaxApex = max(r.MaxApex, (s.takeoff-s.apex)/s.ppu)
	}
	return r
}

func (s *Simulator) closeJump() {
	s.report.MaxApex = max(s.report.MaxApex, (s.takeoff-s.apex)/s.ppu)
}

func (s *Simulator) respawn() {
	obj := s.probe.Object()
	s.probe.Teleport(s.spawn.X-obj.W/2, s.spawn.Y-obj.H)
	s.core.Stop()
	s.queue = movement.EventQueue{}
	s.report.Respawns++
	s.airborne = false
	s.airTicks = 0
	s.takeoff = s.spawn.Y
	s.apex = s.spawn.Y
}

// contactString renders contact flags as a compact "B.LR" style string.
func contactString(c movement.Contacts) string {
	var b strings.Builder
	for _, f := range []struct {
		on bool
		r  byte
	}{{c.Below, 'B'}, {c.Above, 'A'}, {c.Left, 'L'}, {c.Right, 'R'}} {
		if f.on {
			b.WriteByte(f.r)
		} else {
			b.WriteByte('.')
		}
	}
	if c.SlopeAngle != 0 {
		fmt.Fprintf(&b, " slope %.0f", c.SlopeAngle)
	}
	if c.SlidingDownMaxSlope {
		b.WriteString(" sliding")
	}
	return b.String()
}
