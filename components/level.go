package components

import (
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name string
	Data *leveldata.CollisionData
}

var Level = donburi.NewComponentType[LevelData]()
