// Package leveldata parses level geometry from Tiled TMX maps or ASCII grids.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// Slope types carried by ramp tiles.
const (
	SlopeUpRight = "45_up_right"
	SlopeUpLeft  = "45_up_left"
)

// CollisionData holds all collision-relevant data parsed from a level.
// Coordinates are pixels with y pointing down.
type CollisionData struct {
	SolidRects  []SolidRect
	Platforms   []PlatformRect
	DeadZones   []DeadZone
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
	TileSize    float64
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
	SlopeType  string // "", "45_up_right", "45_up_left"
}

// IsRamp reports whether the tile is a walkable slope rather than a block.
func (r SolidRect) IsRamp() bool { return r.SlopeType != "" }

// PlatformRect is a one-way platform. Float is the vertical travel distance
// in pixels of a floating platform; zero means static.
type PlatformRect struct {
	X, Y, W, H float64
	Float      float64
}

// DeadZone respawns the player on contact.
type DeadZone struct {
	X, Y, W, H float64
}

// SpawnPoint is where the player's feet are placed: X is the horizontal
// center, Y the bottom edge.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the lowest-index spawn point, or the map's top-left corner
// when the level defines none.
func (d *CollisionData) Spawn() SpawnPoint {
	if len(d.SpawnPoints) == 0 {
		return SpawnPoint{X: d.TileSize, Y: d.TileSize}
	}
	best := d.SpawnPoints[0]
	for _, s := range d.SpawnPoints[1:] {
		if s.Index < best.Index {
			best = s
		}
	}
	return best
}
