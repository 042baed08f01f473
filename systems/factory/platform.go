package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/collision"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a one-way platform, floating when rect.Float is set.
func CreatePlatform(ecs *ecs.ECS, rect leveldata.PlatformRect) *donburi.Entry {
	if rect.Float != 0 {
		return CreateFloatingPlatform(ecs, rect)
	}

	platform := archetypes.Platform.Spawn(ecs)
	obj := collision.PlatformObject(rect)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return platform
}

func CreateFloatingPlatform(ecs *ecs.ECS, rect leveldata.PlatformRect) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)
	obj := collision.PlatformObject(rect)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	// The floating platform moves using a *gween.Sequence of tweens, moving it up and back down.
	leg := float32(cfg.Floating.LegSeconds)
	top := float32(rect.Y - rect.Float)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(rect.Y), top, leg, ease.InOutSine),
		gween.New(top, float32(rect.Y), leg, ease.InOutSine),
	)
	components.Tween.Set(platform, tw)

	return platform
}
