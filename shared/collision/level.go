package collision

import (
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/solarlune/resolv"
)

// SolidObject returns the collision object for a solid or ramp tile.
func SolidObject(r leveldata.SolidRect) *resolv.Object {
	var obj *resolv.Object
	if r.IsRamp() {
		obj = resolv.NewObject(r.X, r.Y, r.W, r.H, TagRamp, r.SlopeType)
	} else {
		obj = resolv.NewObject(r.X, r.Y, r.W, r.H, TagSolid)
	}
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	return obj
}

// PlatformObject returns the collision object for a one-way platform.
func PlatformObject(p leveldata.PlatformRect) *resolv.Object {
	obj := resolv.NewObject(p.X, p.Y, p.W, p.H, TagPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, p.W, p.H))
	return obj
}

// DeadZoneObject returns the trigger object for a dead zone.
func DeadZoneObject(d leveldata.DeadZone) *resolv.Object {
	obj := resolv.NewObject(d.X, d.Y, d.W, d.H, TagDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, d.W, d.H))
	return obj
}

// BuildSpace creates a space sized to the level holding every static
// object. Floating platforms are added at their resting position.
func BuildSpace(data *leveldata.CollisionData, cellSize int) *resolv.Space {
	space := resolv.NewSpace(data.MapWidth, data.MapHeight, cellSize, cellSize)
	for _, r := range data.SolidRects {
		space.Add(SolidObject(r))
	}
	for _, p := range data.Platforms {
		space.Add(PlatformObject(p))
	}
	for _, d := range data.DeadZones {
		space.Add(DeadZoneObject(d))
	}
	return space
}

// SpawnBody adds a body of size w x h to space with its feet at spawn.
func SpawnBody(space *resolv.Space, spawn leveldata.SpawnPoint, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Add(obj)
	return obj
}
