package movement

import (
	"errors"
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

// fakeProbe passes moves through unchanged unless onMove is set.
type fakeProbe struct {
	contacts Contacts
	position dmath.Vec2
	moves    int
	onMove   func(p *fakeProbe, desired dmath.Vec2) (dmath.Vec2, Contacts)
}

func (p *fakeProbe) Contacts() Contacts { return p.contacts }

func (p *fakeProbe) ResolveMove(desired, _ dmath.Vec2) dmath.Vec2 {
	p.moves++
	actual := desired
	if p.onMove != nil {
		actual, p.contacts = p.onMove(p, desired)
	}
	p.position.X += actual.X
	p.position.Y += actual.Y
	return actual
}

// floorAtZero lands the body on y = 0.
func floorAtZero(p *fakeProbe, desired dmath.Vec2) (dmath.Vec2, Contacts) {
	if p.position.Y+desired.Y <= 0 {
		return dmath.Vec2{X: desired.X, Y: -p.position.Y}, Contacts{Below: true}
	}
	return desired, Contacts{}
}

func newTestCore(t *testing.T, probe *fakeProbe, params Params) *Core {
	t.Helper()
	c, err := NewCore(probe, params)
	if err != nil {
		t.Fatalf("NewCore: %v", err)
	}
	return c
}

func TestNewCoreRejectsNilProbe(t *testing.T) {
	if _, err := NewCore(nil, DefaultParams()); !errors.Is(err, ErrNilProbe) {
		t.Fatalf("expected ErrNilProbe, got %v", err)
	}
}

func TestNewCoreRejectsInvalidParams(t *testing.T) {
	p := DefaultParams()
	p.MaxAirJumps = -1
	if _, err := NewCore(&fakeProbe{}, p); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
}

func TestGroundedDeadbandSnapsToZero(t *testing.T) {
	probe := &fakeProbe{contacts: Contacts{Below: true}}
	c := newTestCore(t, probe, DefaultParams())

	c.velocity.X = 0.3
	c.Tick(1.0 / 60)

	if c.Velocity().X != 0 {
		t.Errorf("expected vx snapped to 0, got %v", c.Velocity().X)
	}
}

func TestDeadbandIgnoredWithInput(t *testing.T) {
	probe := &fakeProbe{contacts: Contacts{Below: true}}
	c := newTestCore(t, probe, DefaultParams())

	c.SetDirectionalInput(dmath.Vec2{X: 1})
	c.Tick(1.0 / 60)

	if v := c.Velocity().X; v <= 0 || v >= c.Params().StopDeaccelerationThreshold {
		t.Errorf("expected small positive vx from acceleration, got %v", v)
	}
}

func TestFloorAndCeilingZeroVerticalVelocity(t *testing.T) {
	tests := []struct {
		name     string
		contacts Contacts
		vy       float64
	}{
		{"floor", Contacts{Below: true}, -7},
		{"ceiling", Contacts{Above: true}, 9},
	}
	for _, tt := range tests {
		probe := &fakeProbe{contacts: tt.contacts}
		c := newTestCore(t, probe, DefaultParams())
		c.velocity.Y = tt.vy

		c.Tick(1.0 / 60)

		if c.Velocity().Y != 0 {
			t.Errorf("%s: expected vy == 0, got %v", tt.name, c.Velocity().Y)
		}
	}
}

func simulateApex(t *testing.T, release bool) float64 {
	t.Helper()
	probe := &fakeProbe{contacts: Contacts{Below: true}, onMove: floorAtZero}
	c := newTestCore(t, probe, DefaultParams())

	c.OnJumpPressed()
	if release {
		c.OnJumpReleased()
	}

	dt := 1.0 / 120
	apex := 0.0
	for i := 0; i < 240; i++ {
		c.Tick(dt)
		apex = math.Max(apex, probe.position.Y)
		if c.Velocity().Y <= 0 && i > 0 {
			break
		}
	}
	return apex
}

func TestJumpHeightLaw(t *testing.T) {
	p := DefaultParams()

	if apex := simulateApex(t, false); math.Abs(apex-p.MaxJumpHeight) > 0.15 {
		t.Errorf("held jump apex = %v, want ~%v", apex, p.MaxJumpHeight)
	}
	if apex := simulateApex(t, true); math.Abs(apex-p.MinJumpHeight) > 0.15 {
		t.Errorf("released jump apex = %v, want ~%v", apex, p.MinJumpHeight)
	}
}

func TestAirJumpBudget(t *testing.T) {
	params := DefaultParams()
	params.MaxAirJumps = 2
	probe := &fakeProbe{}
	c := newTestCore(t, probe, params)

	for i := 0; i < 2; i++ {
		c.velocity.Y = -3
		c.OnJumpPressed()
		if c.Velocity().Y != c.Physics().MaxJumpVelocity() {
			t.Fatalf("air jump %d did not launch, vy = %v", i+1, c.Velocity().Y)
		}
	}
	if c.RemainingAirJumps() != 0 {
		t.Fatalf("expected budget exhausted, got %d", c.RemainingAirJumps())
	}

	c.velocity.Y = -3
	c.OnJumpPressed()
	if c.Velocity().Y != -3 {
		t.Errorf("extra air jump should have no effect, vy = %v", c.Velocity().Y)
	}
	if c.RemainingAirJumps() != 0 {
		t.Errorf("budget went negative: %d", c.RemainingAirJumps())
	}
}

func TestAirJumpsRefillOnLanding(t *testing.T) {
	probe := &fakeProbe{}
	c := newTestCore(t, probe, DefaultParams())
	c.OnJumpPressed()
	if c.RemainingAirJumps() != 0 {
		t.Fatalf("expected air jump consumed")
	}

	probe.contacts = Contacts{Below: true}
	c.Tick(1.0 / 60)
	if c.RemainingAirJumps() != c.Params().MaxAirJumps {
		t.Errorf("expected refill to %d, got %d", c.Params().MaxAirJumps, c.RemainingAirJumps())
	}
}

func TestWallStickRelease(t *testing.T) {
	params := DefaultParams()
	probe := &fakeProbe{contacts: Contacts{Left: true}}
	c := newTestCore(t, probe, params)
	c.SetDirectionalInput(dmath.Vec2{X: 1}) // away from the left wall

	dt := 0.02
	held := 0.0
	released := false
	for i := 0; i < 40; i++ {
		counting := c.WallUnstickTimer() > 0

		c.CalculateVelocity(dt, probe.Contacts())
		c.HandleWallSliding(dt, probe.Contacts())

		if c.WallUnstickTimer() < 0 {
			t.Fatalf("tick %d: timer went negative: %v", i, c.WallUnstickTimer())
		}
		if counting && c.IsWallSliding() {
			if c.Velocity().X != 0 {
				t.Fatalf("tick %d: vx = %v while stuck", i, c.Velocity().X)
			}
			held += dt
		} else if c.Velocity().X > 0 {
			released = true
			break
		}

		c.GetMove(dt)
		c.PostMoveUpdate(dt, probe.Contacts())
	}

	if !released {
		t.Fatal("never released from the wall")
	}
	if held < params.WallStickTime-1e-9 {
		t.Errorf("released after %v, want at least %v", held, params.WallStickTime)
	}
}

func TestWallStickResetsWhileHoldingTowardWall(t *testing.T) {
	params := DefaultParams()
	probe := &fakeProbe{contacts: Contacts{Left: true}}
	c := newTestCore(t, probe, params)
	c.SetDirectionalInput(dmath.Vec2{X: -1})

	for i := 0; i < 10; i++ {
		c.Tick(0.02)
	}
	if !c.IsWallSliding() {
		t.Fatal("expected wall slide")
	}
	if c.WallUnstickTimer() != params.WallStickTime {
		t.Errorf("timer = %v, want %v", c.WallUnstickTimer(), params.WallStickTime)
	}
	if c.Velocity().Y < -params.WallSlideSpeedMax {
		t.Errorf("fall speed %v exceeds slide max %v", c.Velocity().Y, params.WallSlideSpeedMax)
	}
}

func TestWallJump(t *testing.T) {
	params := DefaultParams()
	probe := &fakeProbe{contacts: Contacts{Left: true}}
	c := newTestCore(t, probe, params)
	c.velocity.Y = -1

	c.HandleWallSliding(1.0/60, probe.Contacts())
	if c.State() != WallSliding {
		t.Fatalf("state = %v, want wall sliding", c.State())
	}
	c.OnJumpPressed()

	want := dmath.Vec2{X: params.WallJump.X, Y: params.WallJump.Y}
	if c.Velocity() != want {
		t.Errorf("wall jump velocity = %v, want %v", c.Velocity(), want)
	}
	if !c.IsJumping() {
		t.Error("expected jumping flag")
	}
	if c.RemainingAirJumps() != params.MaxAirJumps {
		t.Error("wall jump should not consume an air jump")
	}
}

func TestNoWallSlideWhileRising(t *testing.T) {
	probe := &fakeProbe{contacts: Contacts{Right: true}}
	c := newTestCore(t, probe, DefaultParams())
	c.velocity.Y = 5

	c.HandleWallSliding(1.0/60, probe.Contacts())
	if c.IsWallSliding() {
		t.Error("rising against a wall is not a wall slide")
	}
}

func TestHorizontalApproachIsMonotonic(t *testing.T) {
	params := DefaultParams()
	params.WalkSpeed = 5
	params.AccelerationTimeGround = 0.1
	probe := &fakeProbe{contacts: Contacts{Below: true}}
	c := newTestCore(t, probe, params)
	c.SetDirectionalInput(dmath.Vec2{X: 1})

	prev := 0.0
	for i := 0; i < 30; i++ {
		c.Tick(0.02)
		vx := c.Velocity().X
		if vx < prev {
			t.Fatalf("tick %d: vx decreased %v -> %v", i, prev, vx)
		}
		if vx > 5 {
			t.Fatalf("tick %d: vx overshot to %v", i, vx)
		}
		prev = vx
	}
	if math.Abs(prev-5) > 0.01 {
		t.Errorf("vx = %v after 0.6s, want ~5", prev)
	}
}

func TestSprintOnlyFromGround(t *testing.T) {
	probe := &fakeProbe{}
	c := newTestCore(t, probe, DefaultParams())

	c.OnSprintPressed()
	if c.IsSprinting() {
		t.Fatal("sprint engaged in the air")
	}

	probe.contacts = Contacts{Below: true}
	c.Tick(1.0 / 60)
	c.OnSprintPressed()
	if !c.IsSprinting() {
		t.Fatal("sprint not engaged on the ground")
	}

	// Sprint carries into the air until release.
	probe.contacts = Contacts{}
	c.Tick(1.0 / 60)
	if !c.IsSprinting() {
		t.Fatal("sprint dropped when leaving the ground")
	}
	c.OnSprintReleased()
	if c.IsSprinting() {
		t.Fatal("release did not revert to walk")
	}
}

func TestJumpingClearsOnLanding(t *testing.T) {
	probe := &fakeProbe{contacts: Contacts{Below: true}, onMove: floorAtZero}
	c := newTestCore(t, probe, DefaultParams())

	c.OnJumpPressed()
	if !c.IsJumping() {
		t.Fatal("expected jumping after launch")
	}
	c.Tick(1.0 / 60)
	if !c.IsJumping() || c.State() != Airborne {
		t.Fatalf("expected airborne jump, state %v jumping %v", c.State(), c.IsJumping())
	}

	for i := 0; i < 120 && c.State() != Grounded; i++ {
		c.Tick(1.0 / 60)
	}
	if c.State() != Grounded {
		t.Fatal("never landed")
	}
	if c.IsJumping() {
		t.Error("jumping flag not cleared on landing")
	}
}

func TestTickUsesPostMoveContacts(t *testing.T) {
	probe := &fakeProbe{onMove: func(p *fakeProbe, desired dmath.Vec2) (dmath.Vec2, Contacts) {
		return dmath.Vec2{}, Contacts{Below: true}
	}}
	c := newTestCore(t, probe, DefaultParams())
	c.velocity.Y = -10

	c.Tick(1.0 / 60)

	if probe.moves != 1 {
		t.Fatalf("expected exactly one move per tick, got %d", probe.moves)
	}
	if c.Velocity().Y != 0 {
		t.Errorf("landing contact from the move should zero vy, got %v", c.Velocity().Y)
	}
	if c.State() != Grounded {
		t.Errorf("state = %v, want grounded", c.State())
	}
}

func TestSlidingDownMaxSlope(t *testing.T) {
	normal := dmath.Vec2{X: -math.Sqrt2 / 2, Y: math.Sqrt2 / 2}
	probe := &fakeProbe{contacts: Contacts{Below: true, SlidingDownMaxSlope: true, SlopeNormal: normal}}
	c := newTestCore(t, probe, DefaultParams())
	c.remainingAirJumps = 0

	dt := 1.0 / 60
	c.Tick(dt)

	g := c.Physics().Gravity()
	want := g*dt + normal.Y*-g*dt
	if c.Velocity().Y != want {
		t.Errorf("vy = %v, want %v", c.Velocity().Y, want)
	}
	if c.RemainingAirJumps() != 0 {
		t.Error("air jumps refilled while sliding down a steep slope")
	}
}

func TestSetParamRederivesPhysics(t *testing.T) {
	c := newTestCore(t, &fakeProbe{}, DefaultParams())

	if err := c.SetParam(ParamTimeToJumpApex, 0.5); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	phys := c.Physics()
	if math.Abs(phys.Gravity()+32) > 1e-9 {
		t.Errorf("gravity = %v, want -32", phys.Gravity())
	}
	if math.Abs(phys.MaxJumpVelocity()-16) > 1e-9 {
		t.Errorf("max jump velocity = %v, want 16", phys.MaxJumpVelocity())
	}
	if math.Abs(phys.MinJumpVelocity()-8) > 1e-9 {
		t.Errorf("min jump velocity = %v, want 8", phys.MinJumpVelocity())
	}
	if c.Params().TimeToJumpApex != 0.5 {
		t.Errorf("params not updated: %v", c.Params().TimeToJumpApex)
	}
}

func TestSetParamErrors(t *testing.T) {
	c := newTestCore(t, &fakeProbe{}, DefaultParams())
	before := c.Params()

	if err := c.SetParam(Param(99), 1); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
	if err := c.SetParam(ParamWalkSpeed, -1); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}
	if err := c.SetParam(ParamWallStickTime, math.NaN()); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams for NaN, got %v", err)
	}
	if c.Params() != before {
		t.Error("failed SetParam modified params")
	}
}

func TestLoweringMaxAirJumpsClampsBudget(t *testing.T) {
	params := DefaultParams()
	params.MaxAirJumps = 3
	c := newTestCore(t, &fakeProbe{}, params)

	if err := c.SetParam(ParamMaxAirJumps, 1); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	if c.RemainingAirJumps() != 1 {
		t.Errorf("remaining = %d, want 1", c.RemainingAirJumps())
	}
}

func TestSetWallJump(t *testing.T) {
	c := newTestCore(t, &fakeProbe{}, DefaultParams())
	v := dmath.Vec2{X: 3, Y: 4}
	if err := c.SetWallJump(v); err != nil {
		t.Fatalf("SetWallJump: %v", err)
	}
	if c.Params().WallJump != v {
		t.Errorf("wall jump = %v, want %v", c.Params().WallJump, v)
	}
}

func TestWalkSpeedChangeAppliesWhileWalking(t *testing.T) {
	probe := &fakeProbe{contacts: Contacts{Below: true}}
	c := newTestCore(t, probe, DefaultParams())
	c.SetDirectionalInput(dmath.Vec2{X: 1})

	if err := c.SetParam(ParamWalkSpeed, 2); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 120; i++ {
		c.Tick(1.0 / 60)
	}
	if math.Abs(c.Velocity().X-2) > 1e-3 {
		t.Errorf("vx = %v, want ~2", c.Velocity().X)
	}
}

func TestStopClearsMotion(t *testing.T) {
	probe := &fakeProbe{}
	c := newTestCore(t, probe, DefaultParams())
	c.OnJumpPressed()
	c.velocity = dmath.Vec2{X: 4, Y: -9}
	c.velocityXSmoothing = 2

	probe.contacts = Contacts{Below: true}
	c.Stop()

	if c.Velocity() != (dmath.Vec2{}) || c.velocityXSmoothing != 0 {
		t.Errorf("velocity = %+v smoothing = %v, want zero", c.Velocity(), c.velocityXSmoothing)
	}
	if c.State() != Grounded {
		t.Errorf("State() = %v, want grounded after re-reading contacts", c.State())
	}
	if c.RemainingAirJumps() != DefaultParams().MaxAirJumps {
		t.Errorf("air jumps = %d, want refilled", c.RemainingAirJumps())
	}
}
