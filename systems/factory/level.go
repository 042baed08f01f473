package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoadLevel reads a TMX file, or the built-in course when path is empty.
func LoadLevel(path string) (string, *leveldata.CollisionData, error) {
	return leveldata.Load(path, float64(cfg.C.CellSize))
}

// CreateLevel stores the level data and creates an entity for every solid
// tile, platform and dead zone. The space must already exist.
func CreateLevel(ecs *ecs.ECS, name string, data *leveldata.CollisionData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Name: name,
		Data: data,
	})

	for _, rect := range data.SolidRects {
		CreateWall(ecs, rect)
	}
	for _, p := range data.Platforms {
		CreatePlatform(ecs, p)
	}
	for _, dz := range data.DeadZones {
		CreateDeadZone(ecs, dz)
	}

	return level
}
