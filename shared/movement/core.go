package movement

import (
	"fmt"
	"math"

	"github.com/automoto/platformer/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// VerticalState is the coarse vertical movement state of a character.
type VerticalState int

const (
	Grounded VerticalState = iota
	Airborne
	WallSliding
)

func (s VerticalState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	case WallSliding:
		return "wall sliding"
	}
	return "unknown"
}

// Core owns the velocity state of one character and advances it once per
// fixed tick. The pipeline order is CalculateVelocity, HandleWallSliding,
// GetMove, PostMoveUpdate; Tick runs all four. Input handlers may be called
// between ticks and never integrate velocity themselves.
//
// A Core is not safe for concurrent use.
type Core struct {
	probe   CollisionProbe
	params  Params
	physics PhysicsConfig

	// Snapshot seen by the most recent pipeline step.
	contacts Contacts

	velocity           dmath.Vec2
	directionalInput   dmath.Vec2
	velocityXSmoothing float64

	sprinting         bool
	remainingAirJumps int

	wallDirX         int
	wallUnstickTimer float64

	jumping     bool
	wallSliding bool
}

// NewCore returns a Core driven by probe. The probe must already hold a
// valid contact snapshot; it is read once here.
func NewCore(probe CollisionProbe, params Params) (*Core, error) {
	if probe == nil {
		return nil, ErrNilProbe
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	c := &Core{
		probe:    probe,
		params:   params,
		physics:  NewPhysicsConfig(params.MaxJumpHeight, params.MinJumpHeight, params.TimeToJumpApex),
		contacts: probe.Contacts(),
		wallDirX: 1,
	}
	c.remainingAirJumps = params.MaxAirJumps
	c.wallUnstickTimer = params.WallStickTime
	return c, nil
}

// Tick runs one full pipeline step and returns the displacement applied by
// the probe.
func (c *Core) Tick(deltaTime float64) dmath.Vec2 {
	before := c.probe.Contacts()
	c.CalculateVelocity(deltaTime, before)
	c.HandleWallSliding(deltaTime, before)
	move := c.GetMove(deltaTime)
	c.PostMoveUpdate(deltaTime, c.probe.Contacts())
	return move
}

// CalculateVelocity smooths horizontal velocity toward the input target and
// integrates gravity.
func (c *Core) CalculateVelocity(deltaTime float64, contacts Contacts) {
	c.contacts = contacts

	targetX := c.directionalInput.X * c.moveSpeed()
	smoothTime := c.params.AccelerationTimeAir
	if contacts.Below {
		smoothTime = c.params.AccelerationTimeGround
	}
	c.velocity.X = gamemath.SmoothDamp(c.velocity.X, targetX, &c.velocityXSmoothing, smoothTime, deltaTime)
	c.velocity.Y += c.physics.Gravity() * deltaTime
}

// HandleWallSliding caps the fall speed against a wall and holds the
// character on it until opposing input has been held for WallStickTime.
func (c *Core) HandleWallSliding(deltaTime float64, contacts Contacts) {
	c.contacts = contacts

	// Not touching the left wall reads as the right side. The value is only
	// consumed while a wall is touched.
	c.wallDirX = 1
	if contacts.Left {
		c.wallDirX = -1
	}

	c.wallSliding = false
	if !(contacts.Left || contacts.Right) || contacts.Below || c.velocity.Y >= 0 {
		return
	}
	c.wallSliding = true

	if c.velocity.Y < -c.params.WallSlideSpeedMax {
		c.velocity.Y = -c.params.WallSlideSpeedMax
	}

	if c.wallUnstickTimer <= 0 {
		c.wallUnstickTimer = c.params.WallStickTime
		return
	}

	c.velocityXSmoothing = 0
	c.velocity.X = 0

	inputX := c.directionalInput.X
	if inputX != float64(c.wallDirX) && inputX != 0 {
		c.wallUnstickTimer = math.Max(c.wallUnstickTimer-deltaTime, 0)
	} else {
		c.wallUnstickTimer = c.params.WallStickTime
	}
}

// GetMove asks the probe to move the body by velocity*deltaTime and returns
// the displacement it actually applied.
func (c *Core) GetMove(deltaTime float64) dmath.Vec2 {
	desired := dmath.Vec2{X: c.velocity.X * deltaTime, Y: c.velocity.Y * deltaTime}
	return c.probe.ResolveMove(desired, c.directionalInput)
}

// PostMoveUpdate reacts to the contacts produced by the move: it stops
// vertical motion against floors and ceilings, kills residual horizontal
// creep and refills air jumps on solid ground.
func (c *Core) PostMoveUpdate(deltaTime float64, contacts Contacts) {
	c.contacts = contacts

	if contacts.Above || contacts.Below {
		if contacts.SlidingDownMaxSlope {
			c.velocity.Y += contacts.SlopeNormal.Y * -c.physics.Gravity() * deltaTime
		} else {
			c.velocity.Y = 0
		}
	}

	if c.directionalInput.X == 0 && math.Abs(c.velocity.X) < c.params.StopDeaccelerationThreshold {
		c.velocity.X = 0
	}

	if contacts.Below && !contacts.SlidingDownMaxSlope {
		c.remainingAirJumps = c.params.MaxAirJumps
		if c.velocity.Y <= 0 {
			c.jumping = false
		}
	}
}

// Stop clears velocity and smoothing state and re-reads the probe contacts,
// for use after the body is teleported.
func (c *Core) Stop() {
	c.velocity = dmath.Vec2{}
	c.velocityXSmoothing = 0
	c.jumping = false
	c.wallSliding = false
	c.wallUnstickTimer = c.params.WallStickTime
	c.contacts = c.probe.Contacts()
	c.remainingAirJumps = c.params.MaxAirJumps
}

// SetDirectionalInput overwrites the held direction. Each axis is expected
// in [-1, 1].
func (c *Core) SetDirectionalInput(input dmath.Vec2) {
	c.directionalInput = input
}

// OnJumpPressed launches a wall jump, a ground jump or an air jump, in that
// priority. It does nothing when none is available.
func (c *Core) OnJumpPressed() {
	switch {
	case c.wallSliding:
		c.velocity.X = -float64(c.wallDirX) * c.params.WallJump.X
		c.velocity.Y = c.params.WallJump.Y
	case c.contacts.Below:
		c.velocity.Y = c.physics.MaxJumpVelocity()
	case c.remainingAirJumps > 0:
		c.velocity.Y = c.physics.MaxJumpVelocity()
		c.remainingAirJumps--
	default:
		return
	}
	c.jumping = true
}

// OnJumpReleased cuts the rise short so that jump height follows how long
// the button was held.
func (c *Core) OnJumpReleased() {
	if c.velocity.Y > c.physics.MinJumpVelocity() {
		c.velocity.Y = c.physics.MinJumpVelocity()
	}
}

// OnSprintPressed engages sprint speed, only from the ground.
func (c *Core) OnSprintPressed() {
	if c.contacts.Below {
		c.sprinting = true
	}
}

// OnSprintReleased reverts to walk speed wherever the character is.
func (c *Core) OnSprintReleased() {
	c.sprinting = false
}

func (c *Core) moveSpeed() float64 {
	if c.sprinting {
		return c.params.SprintSpeed
	}
	return c.params.WalkSpeed
}

// SetParam updates a single tunable. Jump inputs re-derive gravity and jump
// velocities before SetParam returns.
func (c *Core) SetParam(param Param, v float64) error {
	next, err := c.params.With(param, v)
	if err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	physics := c.physics
	switch param {
	case ParamMaxJumpHeight:
		physics.SetMaxJumpHeight(v)
	case ParamMinJumpHeight:
		physics.SetMinJumpHeight(v)
	case ParamTimeToJumpApex:
		physics.SetTimeToJumpApex(v)
	}
	c.apply(next, physics)
	return nil
}

// SetParams replaces every tunable at once.
func (c *Core) SetParams(params Params) error {
	if err := params.Validate(); err != nil {
		return fmt.Errorf("set params: %w", err)
	}
	c.apply(params, NewPhysicsConfig(params.MaxJumpHeight, params.MinJumpHeight, params.TimeToJumpApex))
	return nil
}

// SetWallJump sets the wall jump launch velocity.
func (c *Core) SetWallJump(v dmath.Vec2) error {
	next := c.params
	next.WallJump = v
	return c.SetParams(next)
}

func (c *Core) apply(params Params, physics PhysicsConfig) {
	c.params = params
	c.physics = physics

	if c.remainingAirJumps > params.MaxAirJumps {
		c.remainingAirJumps = params.MaxAirJumps
	}
	if !c.wallSliding || c.wallUnstickTimer > params.WallStickTime {
		c.wallUnstickTimer = params.WallStickTime
	}
}

func (c *Core) Params() Params               { return c.params }
func (c *Core) Physics() PhysicsConfig       { return c.physics }
func (c *Core) Velocity() dmath.Vec2         { return c.velocity }
func (c *Core) DirectionalInput() dmath.Vec2 { return c.directionalInput }
func (c *Core) Contacts() Contacts           { return c.contacts }
func (c *Core) RemainingAirJumps() int       { return c.remainingAirJumps }
func (c *Core) WallUnstickTimer() float64    { return c.wallUnstickTimer }
func (c *Core) IsJumping() bool              { return c.jumping }
func (c *Core) IsWallSliding() bool          { return c.wallSliding }
func (c *Core) IsSprinting() bool            { return c.sprinting }

// State reports the vertical state machine position.
func (c *Core) State() VerticalState {
	switch {
	case c.wallSliding:
		return WallSliding
	case c.contacts.Below:
		return Grounded
	}
	return Airborne
}

// Status is a copy of the observable Core state.
type Status struct {
	State             VerticalState
	Velocity          dmath.Vec2
	DirectionalInput  dmath.Vec2
	Contacts          Contacts
	RemainingAirJumps int
	WallUnstickTimer  float64
	WallDirX          int
	Jumping           bool
	WallSliding       bool
	Sprinting         bool
}

func (c *Core) Status() Status {
	return Status{
		State:             c.State(),
		Velocity:          c.velocity,
		DirectionalInput:  c.directionalInput,
		Contacts:          c.contacts,
		RemainingAirJumps: c.remainingAirJumps,
		WallUnstickTimer:  c.wallUnstickTimer,
		WallDirX:          c.wallDirX,
		Jumping:           c.jumping,
		WallSliding:       c.wallSliding,
		Sprinting:         c.sprinting,
	}
}
