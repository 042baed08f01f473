package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/shared/collision"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible zone that respawns the player on contact
func CreateDeadZone(ecs *ecs.ECS, zone leveldata.DeadZone) *donburi.Entry {
	entry := archetypes.DeadZone.Spawn(ecs)

	obj := collision.DeadZoneObject(zone)
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return entry
}
