package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			if !v.visible(obj) {
				continue
			}

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvRamp):
				c = color.RGBA{160, 160, 160, 255}
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvDeadZone):
				c = color.RGBA{255, 0, 0, 255}
			}

			v.line(screen, obj.X, obj.Y, obj.X+obj.W, obj.Y, c)
			v.line(screen, obj.X, obj.Y+obj.H, obj.X+obj.W, obj.Y+obj.H, c)
			v.line(screen, obj.X, obj.Y, obj.X, obj.Y+obj.H, c)
			v.line(screen, obj.X+obj.W, obj.Y, obj.X+obj.W, obj.Y+obj.H, c)
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	m := components.Movement.Get(playerEntry)
	s := m.Core.Status()
	o := components.Object.Get(playerEntry)

	// Contact flags drawn on the sides they refer to.
	if s.Contacts.Below {
		v.line(screen, o.X, o.Y+o.H+1, o.X+o.W, o.Y+o.H+1, cfg.Green)
	}
	if s.Contacts.Above {
		v.line(screen, o.X, o.Y-1, o.X+o.W, o.Y-1, cfg.Green)
	}
	if s.Contacts.Left {
		v.line(screen, o.X-1, o.Y, o.X-1, o.Y+o.H, cfg.Green)
	}
	if s.Contacts.Right {
		v.line(screen, o.X+o.W+1, o.Y, o.X+o.W+1, o.Y+o.H, cfg.Green)
	}
	if s.Contacts.SlidingDownMaxSlope {
		cx, cy := o.X+o.W/2, o.Y+o.H
		v.line(screen, cx, cy, cx+s.Contacts.SlopeNormal.X*12, cy-s.Contacts.SlopeNormal.Y*12, cfg.Red)
	}

	apex := (m.Takeoff - m.Apex) / cfg.C.PixelsPerUnit
	lines := []string{
		fmt.Sprintf("vel %.2f, %.2f  input %.1f, %.1f", s.Velocity.X, s.Velocity.Y, s.DirectionalInput.X, s.DirectionalInput.Y),
		fmt.Sprintf("below %t above %t left %t right %t slope %.0f", s.Contacts.Below, s.Contacts.Above, s.Contacts.Left, s.Contacts.Right, s.Contacts.SlopeAngle),
		fmt.Sprintf("jumping %t sprint %t unstick %.2f wall %d", s.Jumping, s.Sprinting, s.WallUnstickTimer, s.WallDirX),
		fmt.Sprintf("gravity %.1f jump %.1f/%.1f apex %.2f", m.Core.Physics().Gravity(), m.Core.Physics().MaxJumpVelocity(), m.Core.Physics().MinJumpVelocity(), apex),
	}

	face := fonts.Mono.Get()
	x := cfg.C.Width - 320
	y := cfg.HUD.Margin + cfg.HUD.LineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, x, y, cfg.HUD.TextColor)
		y += cfg.HUD.LineHeight
	}
}
