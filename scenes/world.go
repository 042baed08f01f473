package scenes

import (
	"fmt"
	"sync"

	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type PlatformerScene struct {
	ecs       *ecs.ECS
	levelPath string
	once      sync.Once
	err       error
}

// NewPlatformerScene creates a scene for the TMX level at levelPath, or the
// built-in level when levelPath is empty.
func NewPlatformerScene(levelPath string) *PlatformerScene {
	return &PlatformerScene{levelPath: levelPath}
}

// Update returns the configuration error, if any, so the game loop stops.
func (ps *PlatformerScene) Update() error {
	ps.once.Do(func() { ps.err = ps.configure() })
	if ps.err != nil {
		return ps.err
	}
	ps.ecs.Update()
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() error {
	name, data, err := factory.LoadLevel(ps.levelPath)
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, then platforms move, then characters react to both.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateMovementInput)
	ecs.AddSystem(systems.UpdateFloatingPlatforms)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	factory.CreateSpace(ecs, data.MapWidth, data.MapHeight, cfg.C.CellSize, cfg.C.CellSize)
	factory.CreateLevel(ecs, name, data)

	settings := systems.GetOrCreateSettings(ecs)
	spawn := data.Spawn()
	if _, err := factory.CreatePlayer(ecs, spawn, cfg.Profiles[settings.ProfileIndex].Params); err != nil {
		return err
	}

	// Snap camera to the spawn to prevent panning from (0,0)
	factory.CreateCamera(ecs, math.Vec2{X: spawn.X, Y: spawn.Y})

	return nil
}
