package tags

import (
	"github.com/automoto/platformer/shared/collision"
	"github.com/yohamta/donburi"
)

var (
	Player           = donburi.NewTag().SetName("Player")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Wall             = donburi.NewTag().SetName("Wall")
	DeadZone         = donburi.NewTag().SetName("DeadZone")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = collision.TagSolid
	ResolvRamp     = collision.TagRamp
	ResolvPlatform = collision.TagPlatform
	ResolvPlayer   = "Player"
	ResolvDeadZone = collision.TagDeadZone

	// Slope type tags
	Slope45UpRight = collision.SlopeUpRight
	Slope45UpLeft  = collision.SlopeUpLeft
)
