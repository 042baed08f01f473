package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/collision"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/shared/movement"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player body with its feet at spawn and wires a
// movement core to a collision probe over the level space.
func CreatePlayer(ecs *ecs.ECS, spawn leveldata.SpawnPoint, params movement.Params) (*donburi.Entry, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, errors.New("create player: no collision space")
	}
	space := components.Space.Get(spaceEntry)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := collision.SpawnBody(space, spawn, w, h, tags.ResolvPlayer)

	probe, err := collision.NewProbe(obj, cfg.Collision)
	if err != nil {
		space.Remove(obj)
		return nil, fmt.Errorf("create player: %w", err)
	}
	core, err := movement.NewCore(probe, params)
	if err != nil {
		space.Remove(obj)
		return nil, fmt.Errorf("create player: %w", err)
	}

	player := archetypes.Player.Spawn(ecs)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Movement.SetValue(player, components.MovementData{
		Core:    core,
		Probe:   probe,
		Spawn:   math.Vec2{X: spawn.X, Y: spawn.Y},
		Facing:  1,
		Takeoff: obj.Y + obj.H,
		Apex:    obj.Y + obj.H,
	})

	return player, nil
}
