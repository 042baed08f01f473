package movement

import dmath "github.com/yohamta/donburi/features/math"

// Contacts is a snapshot of which sides of the character touch level
// geometry, taken by the collision collaborator after its last move.
type Contacts struct {
	Below bool
	Above bool
	Left  bool
	Right bool

	// SlidingDownMaxSlope is set while standing on a ramp steeper than the
	// walkable limit.
	SlidingDownMaxSlope bool
	// SlopeNormal is the unit normal (y up) of the ramp underfoot, or zero.
	SlopeNormal dmath.Vec2
	// SlopeAngle is the incline of the ramp underfoot in degrees.
	SlopeAngle float64
}

// CollisionProbe is the collision collaborator the Core drives.
type CollisionProbe interface {
	// Contacts returns the snapshot produced by the most recent ResolveMove.
	Contacts() Contacts
	// ResolveMove sweeps the body by desired (units, y up), moves it, and
	// returns the displacement actually applied. directionalInput lets the
	// probe honour intent such as dropping through one-way platforms.
	ResolveMove(desired, directionalInput dmath.Vec2) dmath.Vec2
}
