// Command jumpsim runs the movement core headless against a level and logs
// the resulting trajectory. It is used to tune movement params without
// opening a window.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/automoto/platformer/shared/collision"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/shared/movement"
)

type overrides []string

func (o *overrides) String() string     { return strings.Join(*o, ",") }
func (o *overrides) Set(v string) error { *o = append(*o, v); return nil }

func main() {
	var sets overrides
	levelPath := flag.String("level", "", "TMX level to load instead of the built-in course")
	ticks := flag.Int("ticks", 180, "Number of ticks to simulate")
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (ticks per second)")
	realtime := flag.Bool("realtime", false, "Pace ticks with a wall clock ticker")
	every := flag.Int("every", 5, "Log a sample every N ticks (0 = summary only)")
	run := flag.Float64("run", 1, "Horizontal input while running, -1..1")
	runFrom := flag.Int("run-from", 0, "Tick to start running")
	runFor := flag.Int("run-for", 120, "Ticks to keep running")
	sprint := flag.Bool("sprint", false, "Hold sprint while running")
	jumpAt := flag.Int("jump-at", 30, "Tick of the first jump press (-1 = never)")
	jumpHold := flag.Int("jump-hold", 30, "Ticks to hold each jump")
	jumpCount := flag.Int("jumps", 1, "Number of jump presses")
	jumpGap := flag.Int("jump-gap", 20, "Ticks between jump presses")
	width := flag.Float64("width", 12, "Body width in pixels")
	height := flag.Float64("height", 24, "Body height in pixels")
	flag.Var(&sets, "set", "Override a movement tunable, name=value (repeatable): "+strings.Join(movement.ParamNames(), ", "))
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("Invalid tick rate %d", *tickRate)
	}

	params, err := movement.ApplyOverrides(movement.DefaultParams(), sets)
	if err != nil {
		log.Fatalf("Invalid -set: %v", err)
	}

	cc := collision.DefaultConfig()
	name, data, err := leveldata.Load(*levelPath, cc.PixelsPerUnit)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	log.Printf("Loaded level %q: %d solid tiles, %d platforms, %d dead zones, %dx%d map",
		name, len(data.SolidRects), len(data.Platforms), len(data.DeadZones), data.MapWidth, data.MapHeight)

	sim, err := NewSimulator(data, params, cc, *width, *height)
	if err != nil {
		log.Fatalf("Failed to create simulator: %v", err)
	}
	phys := sim.Core().Physics()
	log.Printf("Gravity %.2f, jump velocity %.2f..%.2f, apex in %.2fs",
		phys.Gravity(), phys.MinJumpVelocity(), phys.MaxJumpVelocity(), phys.TimeToJumpApex())

	script := Script{
		RunAxis:   *run,
		RunFrom:   *runFrom,
		RunFor:    *runFor,
		JumpAt:    *jumpAt,
		JumpHold:  *jumpHold,
		JumpCount: *jumpCount,
		JumpGap:   *jumpGap,
		Sprint:    *sprint,
	}
	loop := NewLoop(sim, script, *tickRate, *ticks, *every, *realtime)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		loop.Stop()
	}()

	r := loop.Run()
	log.Printf("Ran %d ticks: %d takeoffs, %d landings, %d respawns, air jump used: %v",
		r.Ticks, r.Takeoffs, r.Landings, r.Respawns, r.AirJumped)
	log.Printf("Max apex %.2f units, longest airtime %d ticks, final pos (%.1f, %.1f) %s",
		r.MaxApex, r.MaxAir, r.Final.X, r.Final.Y, r.Final.Status.State)
}
