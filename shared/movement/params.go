package movement

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	ErrNilProbe      = errors.New("movement: collision probe is nil")
	ErrInvalidParams = errors.New("movement: invalid params")
	ErrUnknownParam  = errors.New("movement: unknown param")
)

// Params holds the designer-facing movement tunables. Speeds are in
// units/second, times in seconds, heights in units.
type Params struct {
	// Horizontal
	WalkSpeed                   float64
	SprintSpeed                 float64
	AccelerationTimeGround      float64
	AccelerationTimeAir         float64
	StopDeaccelerationThreshold float64 // |vx| below this snaps to 0 with no input

	// Jumping
	MaxJumpHeight  float64
	MinJumpHeight  float64
	TimeToJumpApex float64
	MaxAirJumps    int

	// Walls
	WallJump          dmath.Vec2 // launch velocity, x pointing away from the wall
	WallSlideSpeedMax float64
	WallStickTime     float64
}

// DefaultParams returns tunables that produce a 4 unit max jump reached in
// 0.4s, one air jump and a short wall stick.
func DefaultParams() Params {
	return Params{
		WalkSpeed:                   6,
		SprintSpeed:                 10,
		AccelerationTimeGround:      0.1,
		AccelerationTimeAir:         0.2,
		StopDeaccelerationThreshold: 0.5,
		MaxJumpHeight:               4,
		MinJumpHeight:               1,
		TimeToJumpApex:              0.4,
		MaxAirJumps:                 1,
		WallJump:                    dmath.Vec2{X: 12, Y: 16},
		WallSlideSpeedMax:           3,
		WallStickTime:               0.25,
	}
}

// Validate rejects values the Core cannot use, including a min jump height
// above the max. Otherwise jump heights and time to apex are floored by
// PhysicsConfig instead of rejected.
func (p Params) Validate() error {
	values := []struct {
		name string
		v    float64
	}{
		{"walkSpeed", p.WalkSpeed},
		{"sprintSpeed", p.SprintSpeed},
		{"accelerationTimeGround", p.AccelerationTimeGround},
		{"accelerationTimeAir", p.AccelerationTimeAir},
		{"stopDeaccelerationThreshold", p.StopDeaccelerationThreshold},
		{"wallSlideSpeedMax", p.WallSlideSpeedMax},
		{"wallStickTime", p.WallStickTime},
	}
	for _, f := range values {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidParams, f.name, f.v)
		}
	}

	for _, f := range []float64{p.MaxJumpHeight, p.MinJumpHeight, p.TimeToJumpApex, p.WallJump.X, p.WallJump.Y} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite jump value %v", ErrInvalidParams, f)
		}
	}

	if p.MinJumpHeight > p.MaxJumpHeight {
		return fmt.Errorf("%w: minJumpHeight %v > maxJumpHeight %v", ErrInvalidParams, p.MinJumpHeight, p.MaxJumpHeight)
	}

	if p.MaxAirJumps < 0 {
		return fmt.Errorf("%w: maxAirJumps = %d", ErrInvalidParams, p.MaxAirJumps)
	}
	return nil
}

// Param names a single scalar tunable.
type Param int

const (
	ParamWalkSpeed Param = iota
	ParamSprintSpeed
	ParamAccelerationTimeGround
	ParamAccelerationTimeAir
	ParamStopDeaccelerationThreshold
	ParamMaxJumpHeight
	ParamMinJumpHeight
	ParamTimeToJumpApex
	ParamMaxAirJumps
	ParamWallJumpX
	ParamWallJumpY
	ParamWallSlideSpeedMax
	ParamWallStickTime
)

var paramTable = newParamTable()

func newParamTable() *orderedmap.OrderedMap[string, Param] {
	m := orderedmap.NewOrderedMap[string, Param]()
	m.Set("walkSpeed", ParamWalkSpeed)
	m.Set("sprintSpeed", ParamSprintSpeed)
	m.Set("accelerationTimeGround", ParamAccelerationTimeGround)
	m.Set("accelerationTimeAir", ParamAccelerationTimeAir)
	m.Set("stopDeaccelerationThreshold", ParamStopDeaccelerationThreshold)
	m.Set("maxJumpHeight", ParamMaxJumpHeight)
	m.Set("minJumpHeight", ParamMinJumpHeight)
	m.Set("timeToJumpApex", ParamTimeToJumpApex)
	m.Set("maxAirJumps", ParamMaxAirJumps)
	m.Set("wallJumpX", ParamWallJumpX)
	m.Set("wallJumpY", ParamWallJumpY)
	m.Set("wallSlideSpeedMax", ParamWallSlideSpeedMax)
	m.Set("wallStickTime", ParamWallStickTime)
	return m
}

// ParamNames lists every tunable name in declaration order.
func ParamNames() []string {
	names := make([]string, 0, paramTable.Len())
	for el := paramTable.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// ParseParam maps a tunable name such as "walkSpeed" to its Param.
// Matching ignores case.
func ParseParam(name string) (Param, error) {
	if p, ok := paramTable.Get(name); ok {
		return p, nil
	}
	for el := paramTable.Front(); el != nil; el = el.Next() {
		if strings.EqualFold(el.Key, name) {
			return el.Value, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParam, name)
}

func (p Param) String() string {
	for el := paramTable.Front(); el != nil; el = el.Next() {
		if el.Value == p {
			return el.Key
		}
	}
	return fmt.Sprintf("Param(%d)", int(p))
}

// Get returns the current value of a scalar tunable.
func (p Params) Get(param Param) (float64, error) {
	switch param {
	case ParamWalkSpeed:
		return p.WalkSpeed, nil
	case ParamSprintSpeed:
		return p.SprintSpeed, nil
	case ParamAccelerationTimeGround:
		return p.AccelerationTimeGround, nil
	case ParamAccelerationTimeAir:
		return p.AccelerationTimeAir, nil
	case ParamStopDeaccelerationThreshold:
		return p.StopDeaccelerationThreshold, nil
	case ParamMaxJumpHeight:
		return p.MaxJumpHeight, nil
	case ParamMinJumpHeight:
		return p.MinJumpHeight, nil
	case ParamTimeToJumpApex:
		return p.TimeToJumpApex, nil
	case ParamMaxAirJumps:
		return float64(p.MaxAirJumps), nil
	case ParamWallJumpX:
		return p.WallJump.X, nil
	case ParamWallJumpY:
		return p.WallJump.Y, nil
	case ParamWallSlideSpeedMax:
		return p.WallSlideSpeedMax, nil
	case ParamWallStickTime:
		return p.WallStickTime, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownParam, int(param))
}

// With returns a copy of p with one tunable replaced. MaxAirJumps is
// truncated toward zero.
func (p Params) With(param Param, v float64) (Params, error) {
	switch param {
	case ParamWalkSpeed:
		p.WalkSpeed = v
	case ParamSprintSpeed:
		p.SprintSpeed = v
	case ParamAccelerationTimeGround:
		p.AccelerationTimeGround = v
	case ParamAccelerationTimeAir:
		p.AccelerationTimeAir = v
	case ParamStopDeaccelerationThreshold:
		p.StopDeaccelerationThreshold = v
	case ParamMaxJumpHeight:
		p.MaxJumpHeight = v
	case ParamMinJumpHeight:
		p.MinJumpHeight = v
	case ParamTimeToJumpApex:
		p.TimeToJumpApex = v
	case ParamMaxAirJumps:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return p, fmt.Errorf("%w: maxAirJumps = %v", ErrInvalidParams, v)
		}
		p.MaxAirJumps = int(v)
	case ParamWallJumpX:
		p.WallJump.X = v
	case ParamWallJumpY:
		p.WallJump.Y = v
	case ParamWallSlideSpeedMax:
		p.WallSlideSpeedMax = v
	case ParamWallStickTime:
		p.WallStickTime = v
	default:
		return p, fmt.Errorf("%w: %d", ErrUnknownParam, int(param))
	}
	return p, nil
}

// ApplyOverrides applies "name=value" assignments to p in order and
// validates the result.
func ApplyOverrides(p Params, overrides []string) (Params, error) {
	for _, o := range overrides {
		name, raw, ok := strings.Cut(o, "=")
		if !ok {
			return p, fmt.Errorf("%w: override %q is not name=value", ErrInvalidParams, o)
		}
		param, err := ParseParam(strings.TrimSpace(name))
		if err != nil {
			return p, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return p, fmt.Errorf("%w: %s: %v", ErrInvalidParams, name, err)
		}
		if p, err = p.With(param, v); err != nil {
			return p, err
		}
	}
	return p, p.Validate()
}
