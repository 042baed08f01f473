package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/collision"
	"github.com/automoto/platformer/shared/movement"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovementInput turns this frame's actions into movement events.
// Each edge is queued once; the direction is queued every frame and
// collapses to the latest value.
func UpdateMovementInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Movement.Get(e)

		dir := DirectionalInput(input)
		m.Events.Push(movement.Event{Kind: movement.EventDirection, Axis: dir})
		if dir.X != 0 {
			m.Facing = 1
			if dir.X < 0 {
				m.Facing = -1
			}
		}

		jump := GetAction(input, cfg.ActionJump)
		if jump.JustPressed {
			m.Events.Push(movement.Event{Kind: movement.EventJumpPressed})
		}
		if jump.JustReleased {
			m.Events.Push(movement.Event{Kind: movement.EventJumpReleased})
		}

		sprint := GetAction(input, cfg.ActionSprint)
		if sprint.JustPressed {
			m.Events.Push(movement.Event{Kind: movement.EventSprintPressed})
		}
		if sprint.JustReleased {
			m.Events.Push(movement.Event{Kind: movement.EventSprintReleased})
		}

		if GetAction(input, cfg.ActionRespawn).JustPressed {
			RespawnPlayer(e)
		}
	})
}

// UpdateMovement drains queued events into each core and runs one fixed tick.
func UpdateMovement(ecs *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Movement.Get(e)

		m.Events.Drain(m.Core)
		m.LastMove = m.Core.Tick(dt)

		obj := components.Object.Get(e)
		feet := obj.Y + obj.H
		if m.Core.Contacts().Below {
			m.Airborne = false
			m.Takeoff = feet
		} else {
			if !m.Airborne {
				m.Airborne = true
				m.Apex = m.Takeoff
			}
			if feet < m.Apex {
				m.Apex = feet
			}
		}

		if m.Probe.Touching(collision.TagDeadZone) {
			RespawnPlayer(e)
		}
	})
}

// RespawnPlayer moves the player back to its spawn point at rest.
func RespawnPlayer(e *donburi.Entry) {
	m := components.Movement.Get(e)
	obj := components.Object.Get(e)

	m.Probe.Teleport(m.Spawn.X-obj.W/2, m.Spawn.Y-obj.H)
	m.Core.Stop()
	m.Events = movement.EventQueue{}
	m.Airborne = false
	m.Takeoff = m.Spawn.Y
	m.Apex = m.Spawn.Y
}
