package components

import (
	"github.com/automoto/platformer/shared/collision"
	"github.com/automoto/platformer/shared/movement"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MovementData drives a character body with the kinematic movement core.
type MovementData struct {
	Core   *movement.Core
	Probe  *collision.Probe
	Events movement.EventQueue

	// Spawn is the feet position (pixels) used on respawn.
	Spawn math.Vec2
	// Facing is -1 or 1, the last horizontal input direction.
	Facing float64
	// LastMove is the displacement applied on the previous tick, in units.
	LastMove math.Vec2
	// Takeoff and Apex are the feet heights (pixels, y down) when the body
	// last left the ground and at the highest point since.
	Takeoff  float64
	Apex     float64
	Airborne bool
}

var Movement = donburi.NewComponentType[MovementData]()
