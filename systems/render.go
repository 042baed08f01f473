package systems

import (
	"image/color"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/movement"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps world pixels to screen pixels for the current camera.
type view struct {
	offX, offY float64
	zoom       float64
	minX, minY float64
	maxX, maxY float64
}

func cameraView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	halfW := float64(screen.Bounds().Dx()) / 2 / zoom
	halfH := float64(screen.Bounds().Dy()) / 2 / zoom
	return view{
		offX: halfW - camera.Position.X,
		offY: halfH - camera.Position.Y,
		zoom: zoom,
		minX: camera.Position.X - halfW,
		minY: camera.Position.Y - halfH,
		maxX: camera.Position.X + halfW,
		maxY: camera.Position.Y + halfH,
	}, true
}

func (v view) visible(o *resolv.Object) bool {
	return o.X+o.W >= v.minX && o.X <= v.maxX && o.Y+o.H >= v.minY && o.Y <= v.maxY
}

func (v view) rect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen,
		float32((x+v.offX)*v.zoom), float32((y+v.offY)*v.zoom),
		float32(w*v.zoom), float32(h*v.zoom), c, false)
}

func (v view) line(screen *ebiten.Image, x0, y0, x1, y1 float64, c color.Color) {
	vector.StrokeLine(screen,
		float32((x0+v.offX)*v.zoom), float32((y0+v.offY)*v.zoom),
		float32((x1+v.offX)*v.zoom), float32((y1+v.offY)*v.zoom),
		1, c, false)
}

// ramp fills the solid half of a ramp tile column by column.
func (v view) ramp(screen *ebiten.Image, o *resolv.Object, c color.Color) {
	for dx := 0.0; dx < o.W; dx++ {
		rel := (dx + 0.5) / o.W
		depth := o.H * rel
		if o.HasTags(tags.Slope45UpLeft) {
			depth = o.H * (1 - rel)
		}
		v.rect(screen, o.X+dx, o.Y+o.H-depth, 1, depth, c)
	}
}

// DrawLevel renders the background and every level object.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Palette.Background)

	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !v.visible(o.Object) {
			return
		}
		if o.HasTags(tags.ResolvRamp) {
			v.ramp(screen, o.Object, cfg.Palette.Ramp)
			return
		}
		v.rect(screen, o.X, o.Y, o.W, o.H, cfg.Palette.Solid)
	})

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.visible(o.Object) {
			v.rect(screen, o.X, o.Y, o.W, o.H, cfg.Palette.Platform)
		}
	})

	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.visible(o.Object) {
			v.rect(screen, o.X, o.Y, o.W, o.H, cfg.Palette.Floating)
		}
	})

	tags.DeadZone.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.visible(o.Object) {
			v.rect(screen, o.X, o.Y, o.W, o.H, cfg.Palette.DeadZone)
		}
	})
}

// DrawPlayer renders the player body tinted by its vertical state, with a
// marker on the facing side.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		m := components.Movement.Get(e)

		body := color.Color(cfg.Player.Color)
		switch m.Core.State() {
		case movement.WallSliding:
			body = cfg.Magenta
		case movement.Airborne:
			body = cfg.LightGreen
		}
		if m.Core.IsSprinting() {
			body = cfg.Yellow
		}
		v.rect(screen, o.X, o.Y, o.W, o.H, body)

		markerX := o.X + o.W - 3
		if m.Facing < 0 {
			markerX = o.X + 1
		}
		v.rect(screen, markerX, o.Y+4, 2, 4, cfg.Player.FacingColor)
	})
}
