// Package collision resolves character moves against a resolv space and
// reports the contact flags the movement core consumes.
package collision

import (
	"errors"
	"math"

	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/shared/movement"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Resolv tags understood by the probe.
const (
	TagSolid    = "solid"
	TagRamp     = "ramp"
	TagPlatform = "platform"
	TagDeadZone = "deadzone"

	SlopeUpRight = "45_up_right"
	SlopeUpLeft  = "45_up_left"
)

// skin absorbs float error when bodies rest exactly against each other.
const skin = 0.01

var (
	ErrNoObject   = errors.New("collision: probe object is nil")
	ErrNotInSpace = errors.New("collision: probe object is not in a space")
	ErrBadScale   = errors.New("collision: pixels per unit must be positive")
)

// Config tunes how the probe maps core units to pixels and treats terrain.
type Config struct {
	PixelsPerUnit     float64
	MaxSlopeAngle     float64 // degrees; steeper ramps slide
	MaxStep           float64 // pixels per sub-step
	StepHeight        float64 // pixels a grounded body may step up
	SnapDistance      float64 // pixels a grounded body sticks down
	PlatformTolerance float64 // pixels below a platform top that still land on it
	DropThroughAxis   float64 // input.y below -DropThroughAxis drops through platforms
}

func DefaultConfig() Config {
	return Config{
		PixelsPerUnit:     16,
		MaxSlopeAngle:     50,
		MaxStep:           6,
		StepHeight:        8,
		SnapDistance:      2,
		PlatformTolerance: 4,
		DropThroughAxis:   0.5,
	}
}

// Probe moves one resolv object through its space. It implements
// movement.CollisionProbe; core units are y-up and scaled by PixelsPerUnit,
// the space is y-down in pixels.
type Probe struct {
	object *resolv.Object
	cfg    Config

	contacts       movement.Contacts
	faceDir        float64
	ignorePlatform *resolv.Object
}

// NewProbe returns a probe for object, which must already be added to a
// space. The initial contact snapshot is sensed immediately.
func NewProbe(object *resolv.Object, cfg Config) (*Probe, error) {
	if object == nil {
		return nil, ErrNoObject
	}
	if object.Space == nil {
		return nil, ErrNotInSpace
	}
	if cfg.PixelsPerUnit <= 0 {
		return nil, ErrBadScale
	}
	if cfg.MaxStep <= 0 {
		cfg.MaxStep = DefaultConfig().MaxStep
	}

	p := &Probe{
		object:  object,
		cfg:     cfg,
		faceDir: 1,
	}
	p.Refresh()
	return p, nil
}

func (p *Probe) Object() *resolv.Object { return p.object }

func (p *Probe) Contacts() movement.Contacts { return p.contacts }

// Refresh re-senses contacts at the current position without moving.
func (p *Probe) Refresh() {
	var c movement.Contacts
	if top, ground := p.findGround(0, skin, false); ground != nil && top >= p.object.Y+p.object.H-skin {
		p.markGround(&c, ground)
	}
	p.senseSides(&c)
	p.contacts = c
}

// Touching reports whether the body overlaps any object carrying tag.
func (p *Probe) Touching(tag string) bool {
	o := p.object
	for _, s := range p.nearby(0, 0, tag) {
		if gamemath.Overlaps(o.X, o.X+o.W, s.X, s.X+s.W) && gamemath.Overlaps(o.Y, o.Y+o.H, s.Y, s.Y+s.H) {
			return true
		}
	}
	return false
}

// Teleport places the body at x, y (pixels) and re-senses contacts.
func (p *Probe) Teleport(x, y float64) {
	p.object.X = x
	p.object.Y = y
	p.object.Update()
	p.ignorePlatform = nil
	p.Refresh()
}

// ResolveMove implements movement.CollisionProbe.
func (p *Probe) ResolveMove(desired, directionalInput dmath.Vec2) dmath.Vec2 {
	o := p.object
	startX, startY := o.X, o.Y
	prev := p.contacts

	dx := desired.X * p.cfg.PixelsPerUnit
	dy := -desired.Y * p.cfg.PixelsPerUnit

	// Falling on a steep ramp becomes motion down the ramp.
	if prev.SlidingDownMaxSlope && dy > 0 && prev.SlopeAngle > 0 && prev.SlopeAngle < 90 {
		dx += gamemath.Sign(prev.SlopeNormal.X) * dy / math.Tan(prev.SlopeAngle*math.Pi/180)
	}
	if dx != 0 {
		p.faceDir = gamemath.Sign(dx)
	}

	dropping := directionalInput.Y < -p.cfg.DropThroughAxis
	if dropping && prev.Below {
		if _, ground := p.findGround(0, skin, false); ground != nil && ground.HasTags(TagPlatform) {
			p.ignorePlatform = ground
		}
	}

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / p.cfg.MaxStep))
	if steps < 1 {
		steps = 1
	}
	stepX, stepY := dx/float64(steps), dy/float64(steps)

	var c movement.Contacts
	for i := 0; i < steps; i++ {
		grounded := prev.Below || c.Below
		p.moveX(stepX, grounded, &c)
		p.moveY(stepY, math.Abs(stepX), grounded, dropping, &c)
	}
	p.releasePlatform()
	p.senseSides(&c)
	p.contacts = c

	return dmath.Vec2{
		X: (o.X - startX) / p.cfg.PixelsPerUnit,
		Y: -(o.Y - startY) / p.cfg.PixelsPerUnit,
	}
}

func (p *Probe) moveX(dx float64, grounded bool, c *movement.Contacts) {
	if dx == 0 {
		return
	}
	o := p.object

	for _, s := range p.nearby(dx, 0, TagSolid) {
		if !gamemath.Overlaps(o.Y+skin, o.Y+o.H-skin, s.Y, s.Y+s.H) {
			continue
		}

		var gap float64
		var hit bool
		if dx > 0 {
			gap = s.X - (o.X + o.W)
			hit = gap >= -skin && gap < dx
		} else {
			gap = s.X + s.W - o.X
			hit = gap <= skin && gap > dx
		}
		if !hit {
			continue
		}

		// Small ledges, such as the lip at the top of a ramp, are stepped onto.
		bottom := o.Y + o.H
		if grounded && s.Y < bottom && s.Y >= bottom-p.cfg.StepHeight && !p.blockedAbove(s.Y-o.H) {
			o.Y = s.Y - o.H
			continue
		}

		if dx > 0 {
			dx = math.Max(gap, 0)
			c.Right = true
		} else {
			dx = math.Min(gap, 0)
			c.Left = true
		}
	}

	o.X += dx
	o.Update()
}

// blockedAbove reports whether moving the body's top to y would overlap a solid.
func (p *Probe) blockedAbove(y float64) bool {
	o := p.object
	for _, s := range p.nearby(0, y-o.Y, TagSolid) {
		if gamemath.Overlaps(o.X+skin, o.X+o.W-skin, s.X, s.X+s.W) &&
			gamemath.Overlaps(y+skin, y+o.H-skin, s.Y, s.Y+s.H) {
			return true
		}
	}
	return false
}

func (p *Probe) moveY(dy, stepX float64, grounded, dropping bool, c *movement.Contacts) {
	o := p.object

	if dy < 0 {
		for _, s := range p.nearby(0, dy, TagSolid) {
			if !gamemath.Overlaps(o.X+skin, o.X+o.W-skin, s.X, s.X+s.W) {
				continue
			}
			if gap := o.Y - (s.Y + s.H); gap >= -skin && -gap > dy {
				dy = -math.Max(gap, 0)
				c.Above = true
			}
		}
		o.Y += dy
		o.Update()
		return
	}

	reach := dy
	if grounded {
		reach = math.Max(dy, p.cfg.SnapDistance+stepX)
	}

	if top, ground := p.findGround(reach, reach, dropping); ground != nil {
		o.Y = top - o.H
		p.markGround(c, ground)
	} else {
		o.Y += dy
	}
	o.Update()
}

// findGround returns the highest surface top within reach pixels below the
// body's feet, or a nil object when there is none.
func (p *Probe) findGround(dy, reach float64, dropping bool) (float64, *resolv.Object) {
	o := p.object
	bottom := o.Y + o.H
	centerX := o.X + o.W/2

	best := math.Inf(1)
	var ground *resolv.Object
	for _, s := range p.nearby(0, math.Max(dy, reach), TagSolid, TagRamp, TagPlatform) {
		if !gamemath.Overlaps(o.X+skin, o.X+o.W-skin, s.X, s.X+s.W) {
			continue
		}

		var top float64
		switch {
		case s.HasTags(TagRamp):
			top = gamemath.SlopeSurfaceY(centerX, s, SlopeUpRight, SlopeUpLeft)
			if top < bottom-p.cfg.StepHeight {
				continue
			}
		case s.HasTags(TagPlatform):
			if dropping || s == p.ignorePlatform {
				continue
			}
			top = s.Y
			if bottom > top+p.cfg.PlatformTolerance {
				continue
			}
		case s.HasTags(TagSolid):
			top = s.Y
			if bottom > top+skin {
				continue
			}
		default:
			continue
		}

		if top-bottom > reach+skin {
			continue
		}
		// Prefer flat ground over a ramp at the same height.
		if top < best || (top == best && ground != nil && ground.HasTags(TagRamp) && !s.HasTags(TagRamp)) {
			best = top
			ground = s
		}
	}
	return best, ground
}

func (p *Probe) markGround(c *movement.Contacts, ground *resolv.Object) {
	c.Below = true
	if !ground.HasTags(TagRamp) {
		return
	}

	o := p.object
	centerX := o.X + o.W/2
	if centerX < ground.X || centerX > ground.X+ground.W {
		return
	}

	angle := gamemath.SlopeAngle(ground)
	nx, ny := gamemath.SlopeNormal(ground, SlopeUpRight, SlopeUpLeft)
	c.SlopeAngle = angle
	c.SlopeNormal = dmath.Vec2{X: nx, Y: ny}
	c.SlidingDownMaxSlope = angle > p.cfg.MaxSlopeAngle
}

// senseSides marks a wall touching the side the body last moved toward.
func (p *Probe) senseSides(c *movement.Contacts) {
	o := p.object
	for _, s := range p.nearby(p.faceDir, 0, TagSolid) {
		if !gamemath.Overlaps(o.Y+skin, o.Y+o.H-skin, s.Y, s.Y+s.H) {
			continue
		}
		if p.faceDir > 0 && math.Abs(s.X-(o.X+o.W)) <= 1 {
			c.Right = true
		}
		if p.faceDir < 0 && math.Abs(s.X+s.W-o.X) <= 1 {
			c.Left = true
		}
	}
}

// nearby returns the objects carrying any of tags in the cells under the
// body's bounds swept by dx, dy and grown by a pixel on every side.
// Object.Check insets its far edges by a pixel, so it misses neighbours
// that sit on a cell boundary.
func (p *Probe) nearby(dx, dy float64, tags ...string) []*resolv.Object {
	o := p.object
	space := o.Space
	if space == nil {
		return nil
	}

	cx, cy := space.WorldToSpace(math.Min(o.X, o.X+dx)-1, math.Min(o.Y, o.Y+dy)-1)
	ex, ey := space.WorldToSpace(math.Max(o.X, o.X+dx)+o.W+1, math.Max(o.Y, o.Y+dy)+o.H+1)

	var found []*resolv.Object
	seen := map[*resolv.Object]bool{}
	for y := cy; y <= ey; y++ {
		for x := cx; x <= ex; x++ {
			cell := space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, s := range cell.Objects {
				if s == o || seen[s] || !s.HasTags(tags...) {
					continue
				}
				seen[s] = true
				found = append(found, s)
			}
		}
	}
	return found
}

// releasePlatform forgets a dropped-through platform once the body is clear of it.
func (p *Probe) releasePlatform() {
	ip := p.ignorePlatform
	if ip == nil {
		return
	}
	o := p.object
	if o.Y >= ip.Y+ip.H || !gamemath.Overlaps(o.X, o.X+o.W, ip.X, ip.X+ip.W) {
		p.ignorePlatform = nil
	}
}
