package systems

import (
	"math"

	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	m := components.Movement.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Data == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(m.Core.Velocity().X) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := m.Facing * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := playerObject.X + playerObject.W/2 + camera.LookAheadX
	targetY := playerObject.Y + playerObject.H/2

	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1
	}
	halfW := float64(config.C.Width) / 2 / zoom
	halfH := float64(config.C.Height) / 2 / zoom
	levelWidth := float64(levelData.Data.MapWidth)
	levelHeight := float64(levelData.Data.MapHeight)

	// Camera bounds: keep the level filling the screen; center small levels.
	targetX = clampCamera(targetX, halfW, levelWidth)
	targetY = clampCamera(targetY, halfH, levelHeight)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

func clampCamera(target, half, extent float64) float64 {
	if extent <= 2*half {
		return extent / 2
	}
	return math.Max(half, math.Min(extent-half, target))
}
