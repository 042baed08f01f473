package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/shared/collision"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a solid tile or, when the rect carries a slope type, a
// ramp whose surface height is calculated in the collision probe.
func CreateWall(ecs *ecs.ECS, rect leveldata.SolidRect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := collision.SolidObject(rect)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}
