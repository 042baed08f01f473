package movement

import "math"

// minTimeToJumpApex keeps gravity finite.
const minTimeToJumpApex = 0.001

// PhysicsConfig derives gravity and jump launch speeds from designer-facing
// jump parameters. The derived values are recomputed by every setter, so a
// PhysicsConfig never exposes values that disagree with its inputs.
type PhysicsConfig struct {
	maxJumpHeight  float64
	minJumpHeight  float64
	timeToJumpApex float64

	gravity         float64
	maxJumpVelocity float64
	minJumpVelocity float64
}

// NewPhysicsConfig returns a PhysicsConfig for the given jump heights and
// time to apex.
func NewPhysicsConfig(maxJumpHeight, minJumpHeight, timeToJumpApex float64) PhysicsConfig {
	p := PhysicsConfig{
		maxJumpHeight:  maxJumpHeight,
		minJumpHeight:  minJumpHeight,
		timeToJumpApex: timeToJumpApex,
	}
	p.derive()
	return p
}

func (p *PhysicsConfig) SetMaxJumpHeight(h float64) {
	p.maxJumpHeight = h
	p.derive()
}

func (p *PhysicsConfig) SetMinJumpHeight(h float64) {
	p.minJumpHeight = h
	p.derive()
}

func (p *PhysicsConfig) SetTimeToJumpApex(t float64) {
	p.timeToJumpApex = t
	p.derive()
}

func (p *PhysicsConfig) derive() {
	p.maxJumpHeight = math.Max(p.maxJumpHeight, 0)
	p.minJumpHeight = math.Max(p.minJumpHeight, 0)
	p.timeToJumpApex = math.Max(p.timeToJumpApex, minTimeToJumpApex)

	p.gravity = -(2 * p.maxJumpHeight) / (p.timeToJumpApex * p.timeToJumpApex)
	p.maxJumpVelocity = math.Abs(p.gravity) * p.timeToJumpApex
	p.minJumpVelocity = math.Sqrt(2 * math.Abs(p.gravity) * p.minJumpHeight)
}

func (p PhysicsConfig) MaxJumpHeight() float64  { return p.maxJumpHeight }
func (p PhysicsConfig) MinJumpHeight() float64  { return p.minJumpHeight }
func (p PhysicsConfig) TimeToJumpApex() float64 { return p.timeToJumpApex }

// Gravity is the vertical acceleration in units/s². It is negative (down).
func (p PhysicsConfig) Gravity() float64 { return p.gravity }

// MaxJumpVelocity is the launch speed that reaches MaxJumpHeight at the apex.
func (p PhysicsConfig) MaxJumpVelocity() float64 { return p.maxJumpVelocity }

// MinJumpVelocity is the speed a released jump is clamped to, reaching
// MinJumpHeight.
func (p PhysicsConfig) MinJumpVelocity() float64 { return p.minJumpVelocity }
