package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

// UpdateFloatingPlatforms advances each platform's tween sequence, looping
// it when finished. Runs before UpdateMovement so riders see the new height.
func UpdateFloatingPlatforms(ecs *ecs.ECS) {
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		y, _, done := tw.Update(1 / float32(cfg.C.TPS))
		if done {
			tw.Reset()
		}

		obj := components.Object.Get(e)
		obj.Y = float64(y)
		obj.Update()
	})
}
