package main

import (
	"log"
	"time"
)

// Loop drives a Simulator through a script, either as fast as possible or
// paced by a ticker at tickRate.
type Loop struct {
	sim      *Simulator
	script   Script
	tickRate int
	ticks    int
	every    int
	realtime bool
	stopChan chan struct{}
}

func NewLoop(sim *Simulator, script Script, tickRate, ticks, every int, realtime bool) *Loop {
	return &Loop{
		sim:      sim,
		script:   script,
		tickRate: tickRate,
		ticks:    ticks,
		every:    every,
		realtime: realtime,
		stopChan: make(chan struct{}),
	}
}

// Run steps the simulator until the tick budget is spent or Stop is called.
func (l *Loop) Run() Report {
	dt := 1.0 / float64(l.tickRate)

	if !l.realtime {
		for i := 0; i < l.ticks; i++ {
			select {
			case <-l.stopChan:
				return l.sim.Report()
			default:
			}
			l.tick(i, dt)
		}
		return l.sim.Report()
	}

	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Simulation loop started at %d ticks/second", l.tickRate)

	for i := 0; i < l.ticks; i++ {
		select {
		case <-l.stopChan:
			log.Println("Simulation loop stopped")
			return l.sim.Report()
		case <-ticker.C:
			l.tick(i, dt)
		}
	}
	return l.sim.Report()
}

func (l *Loop) Stop() {
	close(l.stopChan)
}

func (l *Loop) tick(i int, dt float64) {
	s := l.sim.Step(dt, l.script.Events(i))
	if l.every > 0 && s.Tick%l.every == 0 {
		log.Printf("tick %4d pos (%7.1f, %7.1f) vel (%6.2f, %6.2f) %-12s contacts %s air jumps %d",
			s.Tick, s.X, s.Y, s.Status.Velocity.X, s.Status.Velocity.Y,
			s.Status.State, contactString(s.Status.Contacts), s.Status.RemainingAirJumps)
	}
}
